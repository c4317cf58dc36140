package auth

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/notes"
	"github.com/therapistsfriend/practice-server/sessions"
)

// Gate decides per request whether a resolved tenant may act on a resource
// instance, and which owner key scopes collection reads. Demo mode is decided
// here once rather than re-checked in every handler.
type Gate struct {
	notes notes.Repo
}

func NewGate(noteRepo notes.Repo) *Gate {
	return &Gate{notes: noteRepo}
}

// Scope returns the owner key collection reads must filter by
func (g *Gate) Scope(tenantKey string, demo bool) string {
	if demo {
		return DemoTenantKey
	}
	return tenantKey
}

// Authorize checks whether tenantKey may act on a resource owned by ownerID.
// The returned error carries no owner information; the mismatch is logged
// server-side only.
func (g *Gate) Authorize(tenantKey, ownerID string, demo bool) error {
	if demo {
		return nil
	}
	if ownerID != tenantKey {
		log.Debug().
			Str("requested_by", tenantKey).
			Msg("ownership check failed")
		return apperrors.ErrForbidden
	}
	return nil
}

// AuthorizeSessionDelete gates deletion of a therapy session. Ownership is
// checked first; sessions carrying clinical notes cannot be deleted at all
// and must be transitioned to CANCELLED instead.
func (g *Gate) AuthorizeSessionDelete(tenantKey string, session *sessions.Session, demo bool) error {
	if err := g.Authorize(tenantKey, session.OwnerID, demo); err != nil {
		return err
	}

	count, err := g.notes.CountBySession(session.ID)
	if err != nil {
		return errors.Wrap(err, "Gate.AuthorizeSessionDelete")
	}
	if count > 0 {
		return errors.Wrap(apperrors.ErrConflict,
			"session has clinical notes; set status to CANCELLED instead of deleting")
	}
	return nil
}
