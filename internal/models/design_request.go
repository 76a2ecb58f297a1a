package models

import "time"

// Design request statuses. Plain tagged values; no transition rules
// are enforced.
const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// DesignRequestDB represents a design request submitted through the
// public form. UserID links the submitter when they were logged in.
type DesignRequestDB struct {
	ID                 int64      `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	Email              string     `json:"email" db:"email"`
	Phone              *string    `json:"phone" db:"phone"`
	Company            *string    `json:"company" db:"company"`
	ServiceType        string     `json:"service_type" db:"service_type"`
	ProjectDescription string     `json:"project_description" db:"project_description"`
	BudgetRange        *string    `json:"budget_range" db:"budget_range"`
	Deadline           *time.Time `json:"deadline" db:"deadline"`
	Status             string     `json:"status" db:"status"`
	UserID             *int64     `json:"user_id" db:"user_id"`
	Notes              *string    `json:"notes" db:"notes"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}
