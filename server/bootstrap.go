package server

import (
	"github.com/therapistsfriend/practice-server/auth"
	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/users"
)

// ensureDemoAccount guarantees the bootstrap demo account exists so a fresh
// deployment can be logged into. The literal id "1" is what the tenant
// mapper remaps to the demo tenant key.
func (s *Server) ensureDemoAccount() error {
	if _, err := s.repos.Users.GetByID(auth.BootstrapUserID); err == nil {
		return nil
	} else if !isNotFound(err) {
		return err
	}

	return s.repos.Users.Upsert(&users.User{
		ID:       auth.BootstrapUserID,
		Name:     "Demo User",
		Email:    "demo@therapistsfriend.com",
		Password: "demo123",
		Role:     users.RoleTherapist,
	})
}

func isNotFound(err error) bool {
	return apperrors.Is(err, apperrors.ErrNotFound)
}
