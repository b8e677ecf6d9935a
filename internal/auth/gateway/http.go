// Package gateway implements domain.Gateway over the backend's JSON HTTP API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	"github.com/mehmetcepni/bincard-auth/internal/auth/dto"
)

const (
	pathLogin              = "/api/v1/auth/login"
	pathRegister           = "/api/v1/auth/register"
	pathVerifyPhone        = "/api/v1/auth/verify-phone"
	pathResendLoginCode    = "/api/v1/auth/login/resend-code"
	pathResendRegisterCode = "/api/v1/auth/register/resend-code"
	pathForgotPassword     = "/api/v1/auth/password/forgot"
	pathPasswordVerifyCode = "/api/v1/auth/password/verify-code"
	pathPasswordReset      = "/api/v1/auth/password/reset"
	pathUnfreezeAccount    = "/api/v1/auth/account/unfreeze"
)

// Client talks to the backend auth endpoints. A transport-level problem is
// returned as an error; a backend rejection comes back as a Response with
// Success=false so the caller can classify it.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) Login(ctx context.Context, phone, password string) (*domain.Response, error) {
	return c.post(ctx, pathLogin, dto.LoginRequest{Phone: phone, Password: password})
}

func (c *Client) Register(ctx context.Context, firstName, lastName, phone, password string) (*domain.Response, error) {
	return c.post(ctx, pathRegister, dto.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Password:  password,
	})
}

func (c *Client) VerifyPhone(ctx context.Context, code string, meta domain.DeviceMetadata) (*domain.Response, error) {
	return c.post(ctx, pathVerifyPhone, dto.VerifyPhoneRequest{
		Code:       code,
		DeviceInfo: meta.Descriptor,
		AppVersion: meta.AppVersion,
		Platform:   meta.Platform,
		IPAddress:  meta.IPAddress,
	})
}

func (c *Client) ResendLoginCode(ctx context.Context, phone string) (*domain.Response, error) {
	return c.post(ctx, pathResendLoginCode, dto.PhoneRequest{Phone: phone})
}

func (c *Client) ResendRegisterCode(ctx context.Context, phone string) (*domain.Response, error) {
	return c.post(ctx, pathResendRegisterCode, dto.PhoneRequest{Phone: phone})
}

func (c *Client) ForgotPassword(ctx context.Context, phone string) (*domain.Response, error) {
	return c.post(ctx, pathForgotPassword, dto.PhoneRequest{Phone: phone})
}

func (c *Client) PasswordVerifyCode(ctx context.Context, code string) (*domain.Response, error) {
	return c.post(ctx, pathPasswordVerifyCode, dto.CodeRequest{Code: code})
}

func (c *Client) PasswordReset(ctx context.Context, resetToken, newPassword string) (*domain.Response, error) {
	return c.post(ctx, pathPasswordReset, dto.PasswordResetRequest{
		ResetToken:  resetToken,
		NewPassword: newPassword,
	})
}

func (c *Client) UnfreezeAccount(ctx context.Context, req domain.UnfreezeRequest) (*domain.Response, error) {
	return c.post(ctx, pathUnfreezeAccount, dto.UnfreezeRequest{
		Phone:    req.Phone,
		Password: req.Password,
		Note:     req.Note,
	})
}

func (c *Client) post(ctx context.Context, path string, body any) (*domain.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env dto.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Not the JSON envelope (proxy error page etc). Hand the body text to
		// the classifier rather than failing the call.
		c.log.Debug("non-envelope response", zap.String("path", path), zap.Int("status", httpResp.StatusCode))
		return &domain.Response{
			Success:    false,
			Message:    strings.TrimSpace(string(raw)),
			StatusCode: httpResp.StatusCode,
		}, nil
	}

	return &domain.Response{
		Success:    env.Success,
		Message:    env.Message,
		Token:      env.AccessToken(),
		ResetToken: env.PasswordResetToken(),
		StatusCode: httpResp.StatusCode,
	}, nil
}
