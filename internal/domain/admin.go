package domain

import "time"

// Admin is the operator account that can view and reply to inquiries.
// Username and email are unique; the store enforces both.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
