package flow_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	"github.com/mehmetcepni/bincard-auth/internal/auth/flow"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
	"github.com/mehmetcepni/bincard-auth/internal/mocks"
)

// enterVerification drives a login flow into VerificationRequired.
func enterVerification(t *testing.T, f *flow.LoginFlow, mockGw *mocks.MockGateway) {
	t.Helper()
	mockGw.EXPECT().Login(gomock.Any(), testPhoneE164, testPassword).
		Return(&domain.Response{Success: false, Message: "Yeni cihaz algılandı"}, nil)

	res, err := f.Submit(context.Background(), testPhone, testPassword)
	require.NoError(t, err)
	require.Equal(t, flow.StateVerificationRequired, res.State)
}

func TestVerificationGate_EmptyCodeIsLocal(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	// No VerifyPhone expectation: validation must not reach the network.
	_, err := f.SubmitCode(context.Background(), "")
	assert.ErrorIs(t, err, autherror.ErrEmptyCode)
	assert.Equal(t, flow.StateVerificationRequired, f.State())
}

func TestVerificationGate_InvalidCodeKeepsGateOpen(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	gomock.InOrder(
		mockGw.EXPECT().VerifyPhone(gomock.Any(), "111111", testMeta).
			Return(&domain.Response{Success: false, Message: "Geçersiz kod"}, nil),
		mockGw.EXPECT().VerifyPhone(gomock.Any(), "222222", testMeta).
			Return(&domain.Response{Success: false, Message: "Kodun süresi dolmuş"}, nil),
		mockGw.EXPECT().VerifyPhone(gomock.Any(), "123456", testMeta).
			Return(&domain.Response{Success: true, Token: testToken}, nil),
	)

	res, err := f.SubmitCode(context.Background(), "111111")
	require.NoError(t, err)
	assert.Equal(t, flow.StateVerificationRequired, res.State)
	assert.Equal(t, domain.KindInvalidCode, res.Kind)

	res, err = f.SubmitCode(context.Background(), "222222")
	require.NoError(t, err)
	assert.Equal(t, flow.StateVerificationRequired, res.State)
	assert.Equal(t, domain.KindExpiredCode, res.Kind)

	res, err = f.SubmitCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, flow.StateSuccess, res.State)
}

func TestVerificationGate_OtherFailuresStillPermitRetry(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	mockGw.EXPECT().VerifyPhone(gomock.Any(), "123456", testMeta).
		Return(nil, context.DeadlineExceeded)

	res, err := f.SubmitCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, flow.StateVerificationRequired, res.State)
	assert.Equal(t, domain.KindNetworkFault, res.Kind)
}

func TestVerificationGate_SuccessCommitsSession(t *testing.T) {
	f, mockGw, fin := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	mockGw.EXPECT().VerifyPhone(gomock.Any(), "123456", testMeta).
		Return(&domain.Response{Success: true, Token: testToken}, nil)

	res, err := f.SubmitCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, flow.StateSuccess, res.State)
	assert.True(t, fin.IsAuthenticated(context.Background()))

	// Pending verification is destroyed with the flow's terminal state.
	_, err = f.SubmitCode(context.Background(), "123456")
	assert.ErrorIs(t, err, autherror.ErrFlowFinished)
}

func TestVerificationGate_CancelDiscardsPending(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	f.Cancel()
	assert.Equal(t, flow.StateIdle, f.State())

	_, ok := f.Pending()
	assert.False(t, ok)

	_, err := f.SubmitCode(context.Background(), "123456")
	assert.ErrorIs(t, err, autherror.ErrNoPendingVerification)
}

func TestVerificationGate_CancelDropsLateVerifySuccess(t *testing.T) {
	f, mockGw, fin := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	started := make(chan struct{})
	release := make(chan struct{})

	mockGw.EXPECT().VerifyPhone(gomock.Any(), "123456", testMeta).
		DoAndReturn(func(context.Context, string, domain.DeviceMetadata) (*domain.Response, error) {
			close(started)
			<-release
			return &domain.Response{Success: true, Token: testToken}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.SubmitCode(context.Background(), "123456")
		assert.NoError(t, err)
	}()

	<-started
	f.Cancel()
	close(release)
	wg.Wait()

	// The verification succeeded on the wire after Cancel; neither the state
	// machine nor the session may observe it.
	assert.Equal(t, flow.StateIdle, f.State())
	assert.False(t, fin.IsAuthenticated(context.Background()))
}

func TestResend_Success(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	mockGw.EXPECT().ResendLoginCode(gomock.Any(), testPhoneE164).
		Return(&domain.Response{Success: true}, nil)

	res, err := f.ResendCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, flow.StateVerificationRequired, res.State)
	assert.NotEmpty(t, res.Notice)
}

func TestResend_RejectedWhileVerifyInFlight(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	started := make(chan struct{})
	release := make(chan struct{})

	mockGw.EXPECT().VerifyPhone(gomock.Any(), "123456", testMeta).
		DoAndReturn(func(context.Context, string, domain.DeviceMetadata) (*domain.Response, error) {
			close(started)
			<-release
			return &domain.Response{Success: true, Token: testToken}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.SubmitCode(context.Background(), "123456")
		assert.NoError(t, err)
	}()

	<-started
	// No ResendLoginCode expectation: the rejection must issue no request.
	_, err := f.ResendCode(context.Background())
	assert.ErrorIs(t, err, autherror.ErrRequestInFlight)

	close(release)
	wg.Wait()
}

func TestResend_FailureIsClassified(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)
	enterVerification(t, f, mockGw)

	mockGw.EXPECT().ResendLoginCode(gomock.Any(), testPhoneE164).
		Return(&domain.Response{Success: false, Message: "Sunucu hatası", StatusCode: 500}, nil)

	res, err := f.ResendCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.KindServerFault, res.Kind)
	assert.Equal(t, flow.StateVerificationRequired, f.State())
}

func TestFrozenAccountRecovery_SuccessReplaysLoginOnce(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)

	gomock.InOrder(
		mockGw.EXPECT().Login(gomock.Any(), testPhoneE164, testPassword).
			Return(&domain.Response{Success: false, Message: "Hesap dondurulmuş"}, nil),
		mockGw.EXPECT().UnfreezeAccount(gomock.Any(), domain.UnfreezeRequest{
			Phone: testPhoneE164, Password: testPassword, Note: "geri döndüm",
		}).Return(&domain.Response{Success: true, Message: "Hesabınız yeniden aktifleştirildi"}, nil),
		mockGw.EXPECT().Login(gomock.Any(), testPhoneE164, testPassword).
			Return(&domain.Response{Success: true, Token: testToken}, nil),
	)

	res, err := f.Submit(context.Background(), testPhone, testPassword)
	require.NoError(t, err)
	require.Equal(t, flow.StateAccountFrozenRecovery, res.State)

	recovery, ok := f.Recovery()
	require.True(t, ok)

	req := recovery.Request()
	req.Note = "geri döndüm"
	res, err = recovery.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, flow.StateSuccess, res.State)
}

func TestFrozenAccountRecovery_FailureStaysOnRecoverySurface(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)

	gomock.InOrder(
		mockGw.EXPECT().Login(gomock.Any(), testPhoneE164, testPassword).
			Return(&domain.Response{Success: false, Message: "Hesap dondurulmuş"}, nil),
		mockGw.EXPECT().UnfreezeAccount(gomock.Any(), gomock.Any()).
			Return(&domain.Response{Success: false, Message: "Şifre hatalı", StatusCode: 401}, nil),
	)

	_, err := f.Submit(context.Background(), testPhone, testPassword)
	require.NoError(t, err)

	recovery, ok := f.Recovery()
	require.True(t, ok)

	res, err := recovery.Submit(context.Background(), recovery.Request())
	require.NoError(t, err)

	// The failure message belongs to the recovery surface; the flow does not
	// fall back to the generic Failed state.
	assert.Equal(t, flow.StateAccountFrozenRecovery, res.State)
	assert.Equal(t, domain.KindIncorrectPassword, res.Kind)
	assert.NotEmpty(t, res.Message)
}

func TestFrozenAccountRecovery_RequiresPhoneAndPassword(t *testing.T) {
	f, mockGw, _ := newLoginFixture(t)

	mockGw.EXPECT().Login(gomock.Any(), testPhoneE164, testPassword).
		Return(&domain.Response{Success: false, Message: "Hesap dondurulmuş"}, nil)

	_, err := f.Submit(context.Background(), testPhone, testPassword)
	require.NoError(t, err)

	recovery, ok := f.Recovery()
	require.True(t, ok)

	_, err = recovery.Submit(context.Background(), domain.UnfreezeRequest{Phone: testPhoneE164})
	assert.ErrorIs(t, err, autherror.ErrMissingUnfreezeFields)
	assert.Equal(t, flow.StateAccountFrozenRecovery, f.State())
}
