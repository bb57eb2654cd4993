package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string // stored normalized: trimmed and lower-cased
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
