// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// profileColumns are the columns loaded by every lookup except
// FindByEmail. The pass column is deliberately absent so hashes never
// leave the adapter outside the login path.
var profileColumns = []string{"id", "name", "email", "cpf", "data_nascimento", "telefone", "endereco"}

// identityColumns are the columns returned by the narrow operations.
var identityColumns = []string{"id", "name", "email"}

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements the usecase interface.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm on the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Unique-index violations on email or cpf are
// translated into the usecase sentinel errors so the signup flow can tag
// the offending field. The hash is cleared from the returned record.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateDuplicate(err)
	}
	u.Pass = ""
	return nil
}

// List returns all users without their password hashes.
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Select(profileColumns).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user without the password hash, or ErrUserNotFound.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Select(profileColumns).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the full record including the password hash, or
// ErrUserNotFound. Login verification is the only caller that needs the
// hash.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update replaces the user's mutable fields and returns the updated
// record without the hash. The pass column is only touched when the
// incoming record carries a (pre-hashed) value.
func (r *userGorm) Update(ctx context.Context, id uint, u *entity.User) (*entity.User, error) {
	fields := map[string]any{
		"name":            u.Name,
		"email":           u.Email,
		"cpf":             u.CPF,
		"data_nascimento": u.DataNascimento,
		"telefone":        u.Telefone,
		"endereco":        u.Endereco,
	}
	if u.Pass != "" {
		fields["pass"] = u.Pass
	}

	tx := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, translateDuplicate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdateName updates only the name column and returns the minimal
// id/name/email projection.
func (r *userGorm) UpdateName(ctx context.Context, id uint, name string) (*entity.User, error) {
	tx := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("name", name)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.findIdentity(ctx, id)
}

// Remove deletes the user and returns the minimal projection of the
// removed record.
func (r *userGorm) Remove(ctx context.Context, id uint) (*entity.User, error) {
	u, err := r.findIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.User{}, id).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// findIdentity loads only the id/name/email columns.
func (r *userGorm) findIdentity(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Select(identityColumns).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// translateDuplicate maps a unique-constraint violation to the sentinel
// error for the violated field. Postgres reports SQLSTATE 23505 with the
// constraint name; the SQLite driver used in tests reports a plain
// "UNIQUE constraint failed: users.<column>" message.
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return usecase.ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "cpf"):
			return usecase.ErrCPFTaken
		}
		return err
	}

	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint") {
		switch {
		case strings.Contains(msg, "email"):
			return usecase.ErrEmailTaken
		case strings.Contains(msg, "cpf"):
			return usecase.ErrCPFTaken
		}
	}
	return err
}
