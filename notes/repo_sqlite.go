package notes

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

var _ Repo = (*SQLiteRepo)(nil)

// SQLiteRepo is the persistent note store
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) Create(note *Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(`
		INSERT INTO notes (id, owner_id, session_id, client_id, title, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID, note.OwnerID, nullable(note.SessionID), nullable(note.ClientID),
		note.Title, note.Content, note.CreatedAt.Unix())
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (r *SQLiteRepo) ListBySession(sessionID string) ([]*Note, error) {
	rows, err := r.db.Query(`
		SELECT id, owner_id, session_id, client_id, title, content, created_at
		FROM notes WHERE session_id = ? ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	defer rows.Close()

	result := make([]*Note, 0)
	for rows.Next() {
		var n Note
		var sessionID, clientID sql.NullString
		var created int64
		if err := rows.Scan(&n.ID, &n.OwnerID, &sessionID, &clientID, &n.Title, &n.Content, &created); err != nil {
			return nil, err
		}
		n.SessionID = sessionID.String
		n.ClientID = clientID.String
		n.CreatedAt = time.Unix(created, 0).UTC()
		result = append(result, &n)
	}
	return result, rows.Err()
}

func (r *SQLiteRepo) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM notes WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return count, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
