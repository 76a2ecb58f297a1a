package models

import "time"

// ContactMessageDB represents a message sent through the contact form.
type ContactMessageDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Subject   *string   `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	IsReplied bool      `json:"is_replied" db:"is_replied"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
