package domain

import "time"

// User models a registered account. The password digest is persisted by
// the credential store and never serialized to clients.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
}
