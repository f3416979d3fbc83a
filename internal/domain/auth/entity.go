// internal/domain/auth/entity.go
package auth

import (
	"time"
)

// User represents a registered support-desk account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CustomerID   string    `json:"customer_id" db:"customer_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
