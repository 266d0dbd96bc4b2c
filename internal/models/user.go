package models

import "time"

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           int64     `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Identity is the subset of a user carried in the session token and
// returned to the client.
type Identity struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// Identity strips credentials and bookkeeping from u.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Firstname: u.Firstname, Lastname: u.Lastname, Email: u.Email}
}
