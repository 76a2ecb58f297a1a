package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`       // Unique email
	Username     string    `json:"username" db:"username"` // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`   // bcrypt hash, never plaintext
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
