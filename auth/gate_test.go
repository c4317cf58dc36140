package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/therapistsfriend/practice-server/auth"
	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/notes"
	fakenoterepo "github.com/therapistsfriend/practice-server/notes/repofake"
	"github.com/therapistsfriend/practice-server/sessions"
)

func TestGate_Scope(t *testing.T) {
	gate := auth.NewGate(fakenoterepo.NewFakeNoteRepo())

	require.Equal(t, "tenant-a", gate.Scope("tenant-a", false))
	require.Equal(t, auth.DemoTenantKey, gate.Scope("tenant-a", true))
	require.Equal(t, auth.DemoTenantKey, gate.Scope("", true))
}

func TestGate_Authorize(t *testing.T) {
	gate := auth.NewGate(fakenoterepo.NewFakeNoteRepo())

	t.Run("owner is allowed", func(t *testing.T) {
		require.NoError(t, gate.Authorize("tenant-a", "tenant-a", false))
	})

	t.Run("other tenant is forbidden", func(t *testing.T) {
		err := gate.Authorize("tenant-b", "tenant-a", false)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("forbidden error does not name the owner", func(t *testing.T) {
		err := gate.Authorize("tenant-b", "tenant-a", false)
		require.NotContains(t, err.Error(), "tenant-a")
	})

	t.Run("demo mode bypasses ownership", func(t *testing.T) {
		require.NoError(t, gate.Authorize("tenant-b", "tenant-a", true))
	})
}

func TestGate_AuthorizeSessionDelete(t *testing.T) {
	noteRepo := fakenoterepo.NewFakeNoteRepo()
	gate := auth.NewGate(noteRepo)

	withNotes := &sessions.Session{ID: "session-1", OwnerID: "tenant-a"}
	require.NoError(t, noteRepo.Create(&notes.Note{
		OwnerID:   "tenant-a",
		SessionID: "session-1",
		Title:     "Intake",
		Content:   "First visit.",
	}))
	bare := &sessions.Session{ID: "session-2", OwnerID: "tenant-a"}

	t.Run("session with notes conflicts", func(t *testing.T) {
		err := gate.AuthorizeSessionDelete("tenant-a", withNotes, false)
		require.ErrorIs(t, err, apperrors.ErrConflict)
		require.Contains(t, err.Error(), "CANCELLED")
	})

	t.Run("session without notes may be deleted", func(t *testing.T) {
		require.NoError(t, gate.AuthorizeSessionDelete("tenant-a", bare, false))
	})

	t.Run("ownership is checked first", func(t *testing.T) {
		err := gate.AuthorizeSessionDelete("tenant-b", withNotes, false)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("notes rule applies in demo mode too", func(t *testing.T) {
		err := gate.AuthorizeSessionDelete("tenant-b", withNotes, true)
		require.ErrorIs(t, err, apperrors.ErrConflict)
	})
}
