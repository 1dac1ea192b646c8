package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// AccountService implements profile reads/updates and password changes for
// the signed-in user.
type AccountService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	now    func() time.Time
	log    zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, now: time.Now, log: log}
}

func (s *AccountService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateUser applies the non-empty fields of update. Email cannot be changed.
func (s *AccountService) UpdateUser(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(update.Name); v != "" {
		user.Name = v
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Bio != "" {
		if len(update.Bio) > domain.MaxBioLength {
			return nil, domain.Invalid("bio must be at most 255 characters")
		}
		user.Bio = update.Bio
	}
	if update.Photo != "" {
		user.Photo = update.Photo
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return domain.Invalid("please enter old and new password")
	}
	if err := domain.CheckPassword(newPassword); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.VerifyPassword(oldPassword, user.PasswordHash) {
		return domain.ErrIncorrectPassword
	}

	hash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}
