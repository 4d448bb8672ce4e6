package models

import "time"

// BaristaCredential is a row from barista_credentials. PasswordHash is
// bcrypt; never serialize it.
type BaristaCredential struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
