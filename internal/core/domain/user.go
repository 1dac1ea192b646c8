package domain

import (
	"fmt"
	"time"
)

// Profile defaults applied when a user registers without them.
const (
	DefaultPhoto = "https://i.ibb.co/4pDNDk1/avatar.png"
	DefaultPhone = "+27"
	DefaultBio   = "Bio"

	MinPasswordLength = 6
	MaxPasswordLength = 72 // bytes; bcrypt rejects anything longer
	MaxBioLength      = 255
)

// User is an account holder. PasswordHash is a bcrypt digest and is never
// rendered to clients.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Photo        string    `json:"photo"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CheckPassword reports a validation error when a new password is outside
// the accepted length range.
func CheckPassword(password string) error {
	if len(password) < MinPasswordLength {
		return Invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordLength {
		return Invalid(fmt.Sprintf("password must be at most %d bytes", MaxPasswordLength))
	}
	return nil
}

// ApplyDefaults fills empty profile fields with their default values.
func (u *User) ApplyDefaults() {
	if u.Photo == "" {
		u.Photo = DefaultPhoto
	}
	if u.Phone == "" {
		u.Phone = DefaultPhone
	}
	if u.Bio == "" {
		u.Bio = DefaultBio
	}
}
