package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// CredentialConfig is the immutable configuration of a CredentialService.
type CredentialConfig struct {
	JWTSecret  string
	SessionTTL time.Duration // defaults to 24h
	BcryptCost int           // defaults to bcrypt.DefaultCost
	Clock      func() time.Time
}

// CredentialService implements password hashing, session tokens, registration
// and login.
type CredentialService struct {
	repo       ports.UserRepository
	secret     []byte
	sessionTTL time.Duration
	cost       int
	now        func() time.Time
	log        zerolog.Logger
}

// sessionClaims is the payload of a session token. The subject is the user id.
type sessionClaims struct {
	jwt.RegisteredClaims
}

func NewCredentialService(repo ports.UserRepository, cfg CredentialConfig, log zerolog.Logger) *CredentialService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &CredentialService{
		repo:       repo,
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: cfg.SessionTTL,
		cost:       cfg.BcryptCost,
		now:        cfg.Clock,
		log:        log,
	}
}

// HashPassword returns a salted bcrypt hash; every call uses a fresh salt.
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.Invalid(fmt.Sprintf("password must be at most %d bytes", domain.MaxPasswordLength))
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash.
func (s *CredentialService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueSessionToken signs an HS256 token for userID that expires sessionTTL
// after issuance. Issuance is truncated to the second, the precision of the
// token's time claims, so ExpiresAt matches the exp claim exactly.
func (s *CredentialService) IssueSessionToken(userID string) (*ports.Session, error) {
	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(s.sessionTTL)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &ports.Session{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifySessionToken returns the user id carried by a valid token. Any
// malformed, foreign, unsigned or expired token yields domain.ErrUnauthorized.
func (s *CredentialService) VerifySessionToken(token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

// LoginStatus reports whether token is a currently valid session.
func (s *CredentialService) LoginStatus(token string) bool {
	_, err := s.VerifySessionToken(token)
	return err == nil
}

func (s *CredentialService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, *ports.Session, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, nil, domain.Invalid("please fill in all required fields")
	}
	if err := domain.CheckPassword(input.Password); err != nil {
		return nil, nil, err
	}

	// Fast path for the common case; the unique index on email is what
	// actually rejects a concurrent duplicate.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, err
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.ApplyDefaults()

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.IssueSessionToken(created.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, session, nil
}

func (s *CredentialService) Login(ctx context.Context, email, password string) (*domain.User, *ports.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, nil, domain.Invalid("please add email and password")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Msg("login rejected: unknown email")
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !s.VerifyPassword(password, user.PasswordHash) {
		s.log.Debug().Str("user_id", user.ID).Msg("login rejected: password mismatch")
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.IssueSessionToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, session, nil
}
