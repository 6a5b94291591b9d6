// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity record. The PasswordHash is the only credential
// material ever persisted; the plaintext password never leaves the hasher.
type User struct {
	ID           int64     // Store-assigned unique identifier.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across all records.
	PasswordHash string    // bcrypt output, salt and cost parameters embedded.
	Role         Role      // Single string tag, compared for equality only.
	CreatedAt    time.Time // Set by the store at creation, immutable.
}
