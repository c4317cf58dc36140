package auth

import (
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/users"
)

// Validator checks submitted credentials against the user store
type Validator struct {
	users users.Repo
}

func NewValidator(userRepo users.Repo) *Validator {
	return &Validator{users: userRepo}
}

// Validate returns the identity for an exact match on both email and
// password. Failures never reveal which field was wrong.
func (v *Validator) Validate(email, password string) (*users.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := v.users.GetByCredentials(email, password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) || apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "Validator.Validate")
	}
	return user, nil
}
