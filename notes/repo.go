package notes

type Repo interface {
	Create(note *Note) error
	ListBySession(sessionID string) ([]*Note, error)
	// CountBySession feeds the session-delete conflict rule
	CountBySession(sessionID string) (int, error)
}
