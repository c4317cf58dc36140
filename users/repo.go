package users

type Repo interface {
	Upsert(user *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	// GetByCredentials performs an exact match on email and password and
	// returns the user only when both match. Callers must not surface which
	// field was wrong.
	GetByCredentials(email, password string) (*User, error)
}
