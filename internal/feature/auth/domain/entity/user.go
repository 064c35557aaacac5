// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// Field names on the wire follow the public API contract (Portuguese
// attribute names inherited from the product's first release).
type User struct {
	// ID is the unique identifier for the user, assigned by the database.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's full name (3-255 characters).
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Pass is the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted, and the hash is never
	// serialized into a response body.
	Pass string `gorm:"size:255;not null" json:"-"`

	// CPF is the national identifier, exactly 11 digits, unique.
	CPF string `gorm:"column:cpf;uniqueIndex;size:11;not null" json:"cpf"`

	// DataNascimento is the birth date as an ISO YYYY-MM-DD string.
	DataNascimento string `gorm:"size:10;not null" json:"dataNascimento"`

	// Telefone is the phone number, 10-15 digits.
	Telefone string `gorm:"size:15;not null" json:"telefone"`

	// Endereco is the free-text address, up to 500 characters.
	Endereco string `gorm:"size:500" json:"endereco"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// Identity is the minimal projection returned by narrow operations
// (name update, removal).
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity returns the minimal projection of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}
