package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserUsecase implements the user management operations exposed on top
// of the credential store: listing, lookup, full and narrow updates, and
// removal.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the repository injected.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// List returns all users, password hashes excluded.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// Get returns a single user by id, password hash excluded.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update replaces the user's mutable fields. When the incoming record
// carries a plaintext password it is re-hashed before persisting;
// otherwise the stored hash is left untouched.
func (u *UserUsecase) Update(ctx context.Context, id uint, user *entity.User) (*entity.User, error) {
	if user.Pass != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Pass), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Pass = string(hashed)
	}
	return u.users.Update(ctx, id, user)
}

// UpdateName changes only the user's name and returns the minimal
// id/name/email projection.
func (u *UserUsecase) UpdateName(ctx context.Context, id uint, name string) (*entity.User, error) {
	return u.users.UpdateName(ctx, id, name)
}

// Remove deletes the user and returns the minimal projection of the
// removed record.
func (u *UserUsecase) Remove(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.Remove(ctx, id)
}
