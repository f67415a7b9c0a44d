package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account. There are no roles: any account can use
// the whole system.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
