package entity

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON output.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
