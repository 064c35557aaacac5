package dto

import "auth_backend/internal/feature/auth/domain/entity"

// MessageRes is the generic response carrying only a human-readable message.
type MessageRes struct {
	Message string `json:"message"`
}

// ValidationErrorRes reports per-field validation or conflict errors.
// Errors maps a field name to an ordered list of messages.
type ValidationErrorRes struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// UserRes wraps a single user profile.
type UserRes struct {
	Message string       `json:"message,omitempty"`
	User    *entity.User `json:"user"`
}

// UserListRes wraps the full user listing.
type UserListRes struct {
	Users []entity.User `json:"users"`
}

// IdentityRes wraps the minimal id/name/email projection returned by
// the name update and removal endpoints.
type IdentityRes struct {
	Message string          `json:"message,omitempty"`
	User    entity.Identity `json:"user"`
}

// LoginRes is the successful login response. The refresh token travels
// in an HTTP-only cookie, never in the body.
type LoginRes struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"accessToken"`
	User        *entity.User `json:"user"`
}
