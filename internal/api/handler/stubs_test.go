package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/api/middleware"
	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func withUser(c echo.Context, userID string) echo.Context {
	c.Set(middleware.UserIDKey, userID)
	return c
}

// --- Credential service ---

type stubCredentialService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, *ports.Session, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, *ports.Session, error)
	validToken string
}

func (s *stubCredentialService) HashPassword(p string) (string, error) { return "hash:" + p, nil }
func (s *stubCredentialService) VerifyPassword(p, h string) bool     { return h == "hash:"+p }
func (s *stubCredentialService) VerifySessionToken(token string) (string, error) {
	if token != "" && token == s.validToken {
		return "user-1", nil
	}
	return "", domain.ErrUnauthorized
}
func (s *stubCredentialService) IssueSessionToken(userID string) (*ports.Session, error) {
	return testSession(), nil
}
func (s *stubCredentialService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, *ports.Session, error) {
	return s.registerFn(ctx, in)
}
func (s *stubCredentialService) Login(ctx context.Context, email, password string) (*domain.User, *ports.Session, error) {
	return s.loginFn(ctx, email, password)
}
func (s *stubCredentialService) LoginStatus(token string) bool {
	_, err := s.VerifySessionToken(token)
	return err == nil
}

func testSession() *ports.Session {
	return &ports.Session{Token: "session-token", ExpiresAt: time.Now().Add(24 * time.Hour)}
}

// --- Reset service ---

type stubResetService struct {
	requestFn func(ctx context.Context, email string) error
	consumeFn func(ctx context.Context, credential, password string) error
}

func (s *stubResetService) RequestReset(ctx context.Context, email string) error {
	return s.requestFn(ctx, email)
}

func (s *stubResetService) ConsumeReset(ctx context.Context, credential, password string) error {
	return s.consumeFn(ctx, credential, password)
}

// --- Account service ---

type stubAccountService struct {
	getFn    func(ctx context.Context, userID string) (*domain.User, error)
	updateFn func(ctx context.Context, userID string, u ports.ProfileUpdate) (*domain.User, error)
	changeFn func(ctx context.Context, userID, oldPassword, newPassword string) error
}

func (s *stubAccountService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubAccountService) UpdateUser(ctx context.Context, userID string, u ports.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, userID, u)
}

func (s *stubAccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return s.changeFn(ctx, userID, oldPassword, newPassword)
}

// --- Product service ---

type stubProductService struct {
	createFn func(ctx context.Context, userID string, in ports.ProductInput, image *ports.FileUpload) (*domain.Product, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Product, error)
	getFn    func(ctx context.Context, userID, id string) (*domain.Product, error)
	updateFn func(ctx context.Context, userID, id string, in ports.ProductInput, image *ports.FileUpload) (*domain.Product, error)
	deleteFn func(ctx context.Context, userID, id string) error
}

func (s *stubProductService) Create(ctx context.Context, userID string, in ports.ProductInput, image *ports.FileUpload) (*domain.Product, error) {
	return s.createFn(ctx, userID, in, image)
}

func (s *stubProductService) List(ctx context.Context, userID string) ([]*domain.Product, error) {
	return s.listFn(ctx, userID)
}

func (s *stubProductService) Get(ctx context.Context, userID, id string) (*domain.Product, error) {
	return s.getFn(ctx, userID, id)
}

func (s *stubProductService) Update(ctx context.Context, userID, id string, in ports.ProductInput, image *ports.FileUpload) (*domain.Product, error) {
	return s.updateFn(ctx, userID, id, in, image)
}

func (s *stubProductService) Delete(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

// --- Contact service ---

type stubContactService struct {
	sendFn func(ctx context.Context, userID, subject, message string) error
}

func (s *stubContactService) Send(ctx context.Context, userID, subject, message string) error {
	return s.sendFn(ctx, userID, subject, message)
}
