package models

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Admin is the administrative-capability record bound to a provider
// identity, looked up by uid. It is the same document whether resolved
// for a session or listed on the management screen.
type Admin struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsActive reports whether the record grants administrative capability.
func (a *Admin) IsActive() bool {
	return a != nil && a.Status == StatusActive
}

type AdminCreate struct {
	UID     string `json:"uid"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Role    string `json:"role" binding:"required"`
	Phone   string `json:"phone"`
	Status  string `json:"status" binding:"required"`
}
