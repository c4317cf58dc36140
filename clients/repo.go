package clients

type Repo interface {
	// List returns the owner's clients ordered by last name ascending
	List(ownerID string) ([]*Client, error)
	Get(id string) (*Client, error)
	Create(client *Client) error
	// Update and Delete fold the owner key into the statement; see
	// sessions.Repo for the rationale.
	Update(id, ownerID string, update Update) (*Client, error)
	Delete(id, ownerID string) error
}
