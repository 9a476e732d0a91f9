// Package models holds the persistent entities of the accounts backend.
package models

import "time"

// Role enumerates the account types a user can sign up as.
type Role string

const (
	RoleClient   Role = "Client"
	RoleOwner    Role = "Owner"
	RoleDelivery Role = "Delivery"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

// User is an identity record. Password always carries the bcrypt hash,
// never the plaintext; hashing happens exactly once, in the account
// service, when the plaintext is first seen.
type User struct {
	ID        int64
	Email     string
	Password  string
	Role      Role
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
