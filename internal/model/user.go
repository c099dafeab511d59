package model

import "time"

// User mirrors the 'users' table.  Passwords are stored as bcrypt hashes
// and never leave the repository layer.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
