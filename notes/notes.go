package notes

import "time"

// Note is a clinical note attached to a session and/or client. Sessions with
// notes cannot be deleted; see auth.Gate.AuthorizeSessionDelete.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"therapistId"`
	SessionID string    `json:"sessionId,omitempty"`
	ClientID  string    `json:"clientId,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
