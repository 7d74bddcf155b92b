package domain

import "time"

// User is an application user able to act on workflow entities.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}
