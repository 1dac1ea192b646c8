package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// ContactService emails a user's message to the support inbox.
type ContactService struct {
	users   ports.UserRepository
	mailer  ports.Mailer
	from    string
	support string
	log     zerolog.Logger
}

func NewContactService(users ports.UserRepository, mailer ports.Mailer, from, support string, log zerolog.Logger) *ContactService {
	return &ContactService{users: users, mailer: mailer, from: from, support: support, log: log}
}

func (s *ContactService) Send(ctx context.Context, userID, subject, message string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return domain.Invalid("please add subject and message")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	err = s.mailer.Send(ctx, ports.Email{
		Subject:  subject,
		HTMLBody: "<p>" + html.EscapeString(message) + "</p>",
		To:       s.support,
		From:     s.from,
		ReplyTo:  user.Email,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("contact email not delivered")
		return fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}
	return nil
}
