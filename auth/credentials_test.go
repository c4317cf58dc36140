package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/therapistsfriend/practice-server/auth"
	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/users"
	fakeuserrepo "github.com/therapistsfriend/practice-server/users/repofake"
)

func TestValidator_Validate(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	require.NoError(t, repo.Upsert(&users.User{
		ID:       "1",
		Name:     "Demo User",
		Email:    "demo@therapistsfriend.com",
		Password: "demo123",
		Role:     users.RoleTherapist,
	}))
	v := auth.NewValidator(repo)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := v.Validate("demo@therapistsfriend.com", "demo123")
		require.NoError(t, err)
		require.Equal(t, "1", user.ID)
		require.Equal(t, users.RoleTherapist, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := v.Validate("demo@therapistsfriend.com", "wrong")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := v.Validate("nobody@therapistsfriend.com", "demo123")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong email and wrong password fail identically", func(t *testing.T) {
		_, emailErr := v.Validate("nobody@therapistsfriend.com", "demo123")
		_, passErr := v.Validate("demo@therapistsfriend.com", "wrong")
		require.Equal(t, emailErr, passErr)
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := v.Validate("", "")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("no email normalisation", func(t *testing.T) {
		_, err := v.Validate("DEMO@therapistsfriend.com", "demo123")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
