package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// resetSecretBytes is the amount of randomness in a reset credential.
const resetSecretBytes = 32

const resetSubject = "Password Reset Request"

var resetEmailTmpl = template.Must(template.New("reset").Parse(`
<h2>Hello {{.Name}}!</h2>
<p>Please use the url below to reset your password</p>
<p>Please note that the reset link is valid for only {{.Minutes}} minutes.</p>
<a href="{{.URL}}" clicktracking=off>{{.URL}}</a>
<p>Kind regards...</p>
<p>J88Moja Team</p>
`))

// ResetConfig is the immutable configuration of a ResetService.
type ResetConfig struct {
	FrontendURL string
	EmailFrom   string
	TokenTTL    time.Duration // defaults to domain.ResetTokenTTL
	Clock       func() time.Time
}

// ResetService issues and redeems password-reset credentials.
type ResetService struct {
	users  ports.UserRepository
	tokens ports.ResetTokenRepository
	hasher ports.PasswordHasher
	mailer ports.Mailer
	cfg    ResetConfig
	log    zerolog.Logger
}

func NewResetService(
	users ports.UserRepository,
	tokens ports.ResetTokenRepository,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	cfg ResetConfig,
	log zerolog.Logger,
) *ResetService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = domain.ResetTokenTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	return &ResetService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		mailer: mailer,
		cfg:    cfg,
		log:    log,
	}
}

// RequestReset replaces any outstanding token for the account with a new one
// and emails the credential. If delivery fails the new token stays stored and
// domain.ErrEmailDelivery is returned.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Invalid("please enter an email address")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.tokens.DeleteByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("request reset: delete previous token: %w", err)
	}

	secret, err := randomHex(resetSecretBytes)
	if err != nil {
		return fmt.Errorf("request reset: generate secret: %w", err)
	}
	credential := secret + user.ID

	now := s.cfg.Clock().UTC()
	token := &domain.ResetToken{
		UserID:    user.ID,
		TokenHash: HashResetCredential(credential),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return fmt.Errorf("request reset: store token: %w", err)
	}

	body, err := s.renderResetEmail(user.Name, s.cfg.FrontendURL+"/resetpassword/"+credential)
	if err != nil {
		return fmt.Errorf("request reset: render email: %w", err)
	}

	if err := s.mailer.Send(ctx, ports.Email{
		Subject:  resetSubject,
		HTMLBody: body,
		To:       user.Email,
		From:     s.cfg.EmailFrom,
	}); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("reset email not delivered")
		return fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}

	s.log.Info().Str("user_id", user.ID).Time("expires_at", token.ExpiresAt).Msg("reset token issued")
	return nil
}

// ConsumeReset redeems credential exactly once and stores newPassword for its
// owner. Unknown, expired and already used credentials are indistinguishable
// and return domain.ErrInvalidResetToken.
func (s *ResetService) ConsumeReset(ctx context.Context, credential, newPassword string) error {
	if credential == "" {
		return domain.ErrInvalidResetToken
	}
	if err := domain.CheckPassword(newPassword); err != nil {
		return err
	}

	// Hash before consuming so a hashing failure leaves the token usable.
	hash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		return err
	}

	now := s.cfg.Clock().UTC()
	token, err := s.tokens.Consume(ctx, HashResetCredential(credential), now)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("consume reset: update password: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *ResetService) renderResetEmail(name, url string) (string, error) {
	var buf bytes.Buffer
	err := resetEmailTmpl.Execute(&buf, struct {
		Name    string
		URL     string
		Minutes int
	}{Name: name, URL: url, Minutes: int(s.cfg.TokenTTL / time.Minute)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HashResetCredential returns the hex SHA-256 digest stored for a credential.
// The credential carries 256 bits of randomness, so no salt is needed.
func HashResetCredential(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
