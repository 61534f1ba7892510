package models

import "time"

type Feedback struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Type         string    `json:"type"`     // suggestion, bug, feature, general
	Category     string    `json:"category"` // free-form, e.g. "Quiz System"
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"` // low, medium, high, critical
	ContactEmail string    `json:"contactEmail,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
