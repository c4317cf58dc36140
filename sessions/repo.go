package sessions

type Repo interface {
	// List returns the owner's sessions matching the filter, ordered by
	// start time ascending.
	List(ownerID string, filter Filter) ([]*Session, error)
	Get(id string) (*Session, error)
	Create(session *Session) error
	// Update applies a partial mutation. The owner key is folded into the
	// statement so an ownership change between check and write cannot leak
	// a cross-tenant mutation.
	Update(id, ownerID string, update Update) (*Session, error)
	Delete(id, ownerID string) error
}
