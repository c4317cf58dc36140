package clients

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

var _ Repo = (*SQLiteRepo)(nil)

// SQLiteRepo is the persistent client store
type SQLiteRepo struct {
	db      *sql.DB
	nowFunc func() time.Time
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db, nowFunc: time.Now}
}

const clientColumns = "id, owner_id, first_name, last_name, email, phone_number, status, created_at, updated_at"

func (r *SQLiteRepo) List(ownerID string) ([]*Client, error) {
	rows, err := r.db.Query("SELECT "+clientColumns+" FROM clients WHERE owner_id = ? ORDER BY last_name ASC", ownerID)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	defer rows.Close()

	result := make([]*Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, client)
	}
	return result, rows.Err()
}

func (r *SQLiteRepo) Get(id string) (*Client, error) {
	row := r.db.QueryRow("SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return client, nil
}

func (r *SQLiteRepo) Create(client *Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.Status == "" {
		client.Status = StatusActive
	}
	now := r.nowFunc()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID, client.OwnerID, client.FirstName, client.LastName,
		client.Email, client.Phone, string(client.Status), now.Unix(), now.Unix())
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (r *SQLiteRepo) Update(id, ownerID string, update Update) (*Client, error) {
	sets := []string{"updated_at = ?"}
	args := []any{r.nowFunc().Unix()}

	if update.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *update.FirstName)
	}
	if update.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *update.LastName)
	}
	if update.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *update.Email)
	}
	if update.Phone != nil {
		sets = append(sets, "phone_number = ?")
		args = append(args, *update.Phone)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}

	args = append(args, id, ownerID)
	res, err := r.db.Exec("UPDATE clients SET "+strings.Join(sets, ", ")+" WHERE id = ? AND owner_id = ?", args...)
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
	res, err := r.db.Exec("DELETE FROM clients WHERE id = ? AND owner_id = ?", id, ownerID)
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

func scanClient(row rowScanner) (*Client, error) {
	var c Client
	var status string
	var email, phone sql.NullString
	var created, updated int64

	err := row.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &email, &phone, &status, &created, &updated)
	if err != nil {
		return nil, err
	}
	c.Email = email.String
	c.Phone = phone.String
	c.Status = Status(status)
	c.CreatedAt = time.Unix(created, 0).UTC()
	c.UpdatedAt = time.Unix(updated, 0).UTC()
	return &c, nil
}
