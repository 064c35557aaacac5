// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email is already registered,
	// either by the pre-insert lookup or by the unique index at insert time.
	ErrEmailTaken = errors.New("email already registered")

	// ErrCPFTaken is returned when the CPF is already registered.
	ErrCPFTaken = errors.New("cpf already registered")

	// ErrWrongPassword is returned when the submitted password does not
	// match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
)
