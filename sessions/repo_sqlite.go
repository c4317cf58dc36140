package sessions

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

var _ Repo = (*SQLiteRepo)(nil)

// SQLiteRepo is the persistent session store
type SQLiteRepo struct {
	db      *sql.DB
	nowFunc func() time.Time
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db, nowFunc: time.Now}
}

const sessionColumns = "id, owner_id, client_id, start_time, end_time, status, notes, created_at, updated_at"

func (r *SQLiteRepo) List(ownerID string, filter Filter) ([]*Session, error) {
	query := "SELECT " + sessionColumns + " FROM therapy_sessions WHERE owner_id = ?"
	args := []any{ownerID}

	if filter.Start != nil && filter.End != nil {
		query += " AND start_time >= ? AND start_time <= ?"
		args = append(args, filter.Start.Unix(), filter.End.Unix())
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.ClientID != "" {
		query += " AND client_id = ?"
		args = append(args, filter.ClientID)
	}
	query += " ORDER BY start_time ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	defer rows.Close()

	result := make([]*Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, session)
	}
	return result, rows.Err()
}

func (r *SQLiteRepo) Get(id string) (*Session, error) {
	row := r.db.QueryRow("SELECT "+sessionColumns+" FROM therapy_sessions WHERE id = ?", id)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return session, nil
}

func (r *SQLiteRepo) Create(session *Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Status == "" {
		session.Status = StatusScheduled
	}
	now := r.nowFunc()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO therapy_sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.OwnerID, session.ClientID,
		session.StartTime.Unix(), session.EndTime.Unix(),
		string(session.Status), session.Notes, now.Unix(), now.Unix())
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (r *SQLiteRepo) Update(id, ownerID string, update Update) (*Session, error) {
	sets := []string{"updated_at = ?"}
	args := []any{r.nowFunc().Unix()}

	if update.ClientID != nil {
		sets = append(sets, "client_id = ?")
		args = append(args, *update.ClientID)
	}
	if update.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, update.StartTime.Unix())
	}
	if update.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, update.EndTime.Unix())
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *update.Notes)
	}

	args = append(args, id, ownerID)
	res, err := r.db.Exec("UPDATE therapy_sessions SET "+strings.Join(sets, ", ")+" WHERE id = ? AND owner_id = ?", args...)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "SQLiteRepo.Update")
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.Get(id)
}

func (r *SQLiteRepo) Delete(id, ownerID string) error {
	res, err := r.db.Exec("DELETE FROM therapy_sessions WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "SQLiteRepo.Delete")
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var status string
	var notes sql.NullString
	var start, end, created, updated int64

	err := row.Scan(&s.ID, &s.OwnerID, &s.ClientID, &start, &end, &status, &notes, &created, &updated)
	if err != nil {
		return nil, err
	}
	s.StartTime = time.Unix(start, 0).UTC()
	s.EndTime = time.Unix(end, 0).UTC()
	s.Status = Status(status)
	s.Notes = notes.String
	s.CreatedAt = time.Unix(created, 0).UTC()
	s.UpdatedAt = time.Unix(updated, 0).UTC()
	return &s, nil
}
