package sessions

import "time"

// Status is the lifecycle state of a therapy session
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// Session is a tenant-scoped appointment between a therapist and a client.
// OwnerID is stamped from the authenticated tenant at creation and is never
// mutated by a different tenant.
type Session struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"therapistId"`
	ClientID  string    `json:"clientId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter narrows a collection read. All set fields are AND-combined with the
// owner scope; Start/End are inclusive on session start time.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Status   Status
	ClientID string
}

// Update carries a partial mutation; nil fields are left untouched
type Update struct {
	ClientID  *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *Status
	Notes     *string
}
