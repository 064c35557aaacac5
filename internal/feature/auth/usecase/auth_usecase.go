package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain/entity"
)

// bcryptCost is the fixed work factor applied to new password hashes.
const bcryptCost = bcrypt.DefaultCost

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken or ErrCPFTaken
	// when the corresponding unique index is violated.
	Create(ctx context.Context, user *entity.User) error

	// List returns all users without their password hashes.
	List(ctx context.Context) ([]entity.User, error)

	// FindByID returns a user without the password hash, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail returns a user including the password hash, or
	// ErrUserNotFound. The hash is needed for login verification.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update replaces the user's mutable fields and returns the updated
	// record without the password hash.
	Update(ctx context.Context, id uint, user *entity.User) (*entity.User, error)

	// UpdateName updates only the name column and returns the user's
	// minimal projection fields.
	UpdateName(ctx context.Context, id uint, name string) (*entity.User, error)

	// Remove deletes the user and returns its minimal projection fields.
	Remove(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer signs session tokens for an authenticated user.
// Defined by the consumer; implemented by platform/jwt.
type TokenIssuer interface {
	GenerateAccessToken(userID uint, email string) (string, error)
	GenerateRefreshToken(userID uint, email string) (string, error)
}

// LoginResult carries everything the transport layer needs to answer a
// successful login: the authenticated user (hash cleared) and both tokens.
type LoginResult struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// AuthUsecase implements the signup and login flows.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new AuthUsecase with its dependencies injected.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Signup registers a new user. The caller passes a structurally validated
// user whose Pass field holds the plaintext password; Signup hashes it,
// persists the record and returns it with the hash cleared.
//
// The pre-insert email lookup catches the common duplicate case early, but
// the unique indexes remain the authority: a concurrent insert between the
// lookup and Create still surfaces as ErrEmailTaken or ErrCPFTaken.
func (u *AuthUsecase) Signup(ctx context.Context, user *entity.User) (*entity.User, error) {
	_, err := u.users.FindByEmail(ctx, user.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Pass), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Pass = string(hashed)

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Pass = ""
	return user, nil
}

// Login authenticates a user by email and password and issues the token
// pair on success. A dummy bcrypt comparison runs even when the email is
// unknown so the two failure paths take comparable time.
func (u *AuthUsecase) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the not-found path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if findErr == nil {
		passwordHash = user.Pass
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass))

	if findErr != nil {
		if errors.Is(findErr, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", findErr)
	}
	if compareErr != nil {
		return nil, ErrWrongPassword
	}

	access, err := u.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	user.Pass = ""
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
