package users

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

var _ Repo = (*SQLiteRepo)(nil)

// SQLiteRepo is the persistent user store
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) Upsert(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Created.IsZero() {
		user.Created = time.Now()
	}
	_, err := r.db.Exec(`
		INSERT INTO users (id, email, password, name, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			password = excluded.password,
			name = excluded.name,
			role = excluded.role`,
		user.ID, user.Email, user.Password, user.Name, string(user.Role), user.Created.Unix())
	if err != nil {
		return errors.Wrap(err, "SQLiteRepo.Upsert")
	}
	return nil
}

func (r *SQLiteRepo) GetByID(id string) (*User, error) {
	return r.get(`SELECT id, email, password, name, role, created_at FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepo) GetByEmail(email string) (*User, error) {
	return r.get(`SELECT id, email, password, name, role, created_at FROM users WHERE email = ?`, email)
}

func (r *SQLiteRepo) GetByCredentials(email, password string) (*User, error) {
	user, err := r.get(`SELECT id, email, password, name, role, created_at FROM users WHERE email = ? AND password = ?`, email, password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (r *SQLiteRepo) get(query string, args ...any) (*User, error) {
	var u User
	var role string
	var createdAt int64
	err := r.db.QueryRow(query, args...).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &role, &createdAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	u.Role = Role(role)
	u.Created = time.Unix(createdAt, 0)
	return &u, nil
}
