// Package backendstub is a local stand-in for the BinCard backend: the same
// JSON envelope, the same Turkish failure messages, canned OTP codes. It
// backs cmd/stubserver for development and the gateway integration tests.
package backendstub

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mehmetcepni/bincard-auth/internal/auth/dto"
)

// Fixed codes the stub accepts: ValidCode verifies, ExpiredCode always
// reports expiry, anything else is invalid.
const (
	ValidCode   = "123456"
	ExpiredCode = "000000"
)

type account struct {
	FirstName string
	LastName  string
	Password  string
	Frozen    bool
	Verified  bool
}

// Stub holds the fake backend state behind a fiber app.
type Stub struct {
	app *fiber.App

	mu           sync.Mutex
	accounts     map[string]*account
	pendingPhone string            // account awaiting a verification code
	resetTokens  map[string]string // token -> phone, consumed on use
}

// New seeds a stub with one verified account (+905551234567 / 123456), one
// unverified (+905552222222 / 123456) and one frozen (+905550000001 / 123456).
func New() *Stub {
	s := &Stub{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
		accounts: map[string]*account{
			"+905551234567": {FirstName: "Ayşe", LastName: "Yılmaz", Password: "123456", Verified: true},
			"+905552222222": {FirstName: "Ali", LastName: "Demir", Password: "123456", Verified: false},
			"+905550000001": {FirstName: "Veli", LastName: "Kaya", Password: "123456", Verified: true, Frozen: true},
		},
		resetTokens: make(map[string]string),
	}
	s.routes()
	return s
}

// App exposes the fiber app for adaptor-based test servers.
func (s *Stub) App() *fiber.App {
	return s.app
}

// Listen serves the stub on the given address.
func (s *Stub) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Stub) routes() {
	api := s.app.Group("/api/v1/auth")
	api.Post("/login", s.login)
	api.Post("/register", s.register)
	api.Post("/verify-phone", s.verifyPhone)
	api.Post("/login/resend-code", s.resendCode)
	api.Post("/register/resend-code", s.resendCode)
	api.Post("/password/forgot", s.forgotPassword)
	api.Post("/password/verify-code", s.passwordVerifyCode)
	api.Post("/password/reset", s.passwordReset)
	api.Post("/account/unfreeze", s.unfreeze)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}

func (s *Stub) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.Phone]
	if !ok {
		return fail(c, fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
	if acc.Password != req.Password {
		return fail(c, fiber.StatusUnauthorized, "Şifre hatalı")
	}
	if acc.Frozen {
		return fail(c, fiber.StatusForbidden, "Hesap dondurulmuş. Hesabınızı yeniden aktifleştirin.")
	}
	if !acc.Verified {
		s.pendingPhone = req.Phone
		return fail(c, fiber.StatusOK, "Yeni cihaz algılandı. Telefonunuza doğrulama kodu gönderildi.")
	}

	return c.JSON(dto.Envelope{Success: true, Token: uuid.NewString()})
}

func (s *Stub) register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Phone]; exists {
		return fail(c, fiber.StatusConflict, "Bu telefon numarası zaten kayıtlı")
	}
	s.accounts[req.Phone] = &account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	s.pendingPhone = req.Phone

	return c.JSON(dto.Envelope{Success: true, Message: "Telefonunuza doğrulama kodu gönderildi"})
}

func (s *Stub) verifyPhone(c *fiber.Ctx) error {
	var req dto.VerifyPhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	switch req.Code {
	case ValidCode:
	case ExpiredCode:
		return fail(c, fiber.StatusBadRequest, "Kodun süresi dolmuş")
	default:
		return fail(c, fiber.StatusBadRequest, "Geçersiz kod")
	}

	s.mu.Lock()
	// Only the account the code was issued for is verified.
	if acc, ok := s.accounts[s.pendingPhone]; ok {
		acc.Verified = true
	}
	s.pendingPhone = ""
	s.mu.Unlock()

	return c.JSON(dto.Envelope{Success: true, Token: uuid.NewString()})
}

func (s *Stub) resendCode(c *fiber.Ctx) error {
	return c.JSON(dto.Envelope{Success: true, Message: "Doğrulama kodu gönderildi"})
}

func (s *Stub) forgotPassword(c *fiber.Ctx) error {
	var req dto.PhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	s.mu.Lock()
	_, ok := s.accounts[req.Phone]
	s.mu.Unlock()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Doğrulama kodu gönderildi"})
}

func (s *Stub) passwordVerifyCode(c *fiber.Ctx) error {
	var req dto.CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	switch req.Code {
	case ValidCode:
	case ExpiredCode:
		return fail(c, fiber.StatusBadRequest, "Kodun süresi dolmuş")
	default:
		return fail(c, fiber.StatusBadRequest, "Geçersiz kod")
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.resetTokens[token] = ""
	s.mu.Unlock()

	return c.JSON(dto.Envelope{Success: true, ResetToken: token})
}

func (s *Stub) passwordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Token is single-use: consumed on first successful reset.
	if _, ok := s.resetTokens[req.ResetToken]; !ok {
		return fail(c, fiber.StatusBadRequest, "Geçersiz veya kullanılmış token")
	}
	delete(s.resetTokens, req.ResetToken)

	return c.JSON(dto.Envelope{Success: true, Message: "Şifreniz güncellendi"})
}

func (s *Stub) unfreeze(c *fiber.Ctx) error {
	var req dto.UnfreezeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Geçersiz istek")
	}
	if req.Phone == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Telefon ve şifre gerekli")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.Phone]
	if !ok || acc.Password != req.Password {
		return fail(c, fiber.StatusUnauthorized, "Şifre hatalı")
	}
	if !acc.Frozen {
		return fail(c, fiber.StatusBadRequest, "Hesap zaten aktif")
	}
	acc.Frozen = false

	return c.JSON(dto.Envelope{Success: true, Message: "Hesabınız yeniden aktifleştirildi"})
}
