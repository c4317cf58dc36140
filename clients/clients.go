package clients

import "time"

// Status is the lifecycle state of a client record
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusArchived Status = "ARCHIVED"
)

// Client is a tenant-scoped patient record. OwnerID is stamped from the
// authenticated tenant at creation.
type Client struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"therapistId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update carries a partial mutation; nil fields are left untouched
type Update struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *Status
}
