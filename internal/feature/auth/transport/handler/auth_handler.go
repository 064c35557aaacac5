// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/feature/auth/validation"
	jwtmw "auth_backend/internal/platform/jwt"
)

// refreshCookieName is the cookie carrying the refresh token.
const refreshCookieName = "refreshToken"

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a validated user and returns the persisted record
	// without the password hash.
	Signup(ctx context.Context, user *entity.User) (*entity.User, error)
	// Login authenticates the credentials and returns the user plus the
	// signed token pair.
	Login(ctx context.Context, email, pass string) (*usecase.LoginResult, error)
}

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the usecase injected.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
// - validates the payload (every field required; the id is system-assigned)
// - 400 with field errors on validation failure or duplicate email/cpf
// - 500 on any other persistence failure
// - 201 with the created profile on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Erro ao validar os dados do usuário!"})
		return
	}

	result := validation.ValidateUser(req)
	if !result.OK {
		slog.Warn("signup validation failed", "fields", len(result.FieldErrors), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
			Message: "Erro ao validar os dados do usuário!",
			Errors:  result.FieldErrors,
		})
		return
	}

	user := &entity.User{
		Name:           result.Data.Name,
		Email:          result.Data.Email,
		Pass:           result.Data.Pass,
		CPF:            result.Data.CPF,
		DataNascimento: result.Data.DataNascimento,
		Telefone:       result.Data.Telefone,
		Endereco:       result.Data.Endereco,
	}

	created, err := h.auth.Signup(c.Request.Context(), user)
	if err != nil {
		// Duplicates surfaced either by the pre-insert lookup or by the
		// unique indexes at insert time map to the same field-tagged 400.
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Erro ao criar usuário!",
				Errors:  map[string][]string{"email": {"Email já cadastrado!"}},
			})
		case errors.Is(err, usecase.ErrCPFTaken):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Erro ao criar usuário!",
				Errors:  map[string][]string{"cpf": {"CPF já cadastrado!"}},
			})
		default:
			slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Erro ao criar usuário!"})
		}
		return
	}

	slog.Info("user signup successful", "email", created.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserRes{Message: "Usuário criado com sucesso!", User: created})
}

// Login handles POST /login.
// - validates the payload (only email and pass are required)
// - 400 tagged on email when the email is not registered
// - 400 tagged on pass when the password does not match
// - 200 with the access token and the profile on success; the refresh
//   token is delivered via an HTTP-only, secure, SameSite=None cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Erro ao validar os dados do login!"})
		return
	}

	result := validation.ValidateUser(req,
		validation.FieldName,
		validation.FieldCPF,
		validation.FieldDataNascimento,
		validation.FieldTelefone,
		validation.FieldEndereco,
	)
	if !result.OK {
		slog.Warn("login validation failed", "fields", len(result.FieldErrors), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
			Message: "Erro ao validar os dados do login!",
			Errors:  result.FieldErrors,
		})
		return
	}

	login, err := h.auth.Login(c.Request.Context(), result.Data.Email, result.Data.Pass)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Credenciais inválidas!",
				Errors:  map[string][]string{"email": {"Email não cadastrado"}},
			})
		case errors.Is(err, usecase.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Credenciais inválidas!",
				Errors:  map[string][]string{"pass": {"Senha incorreta"}},
			})
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Erro ao realizar login!"})
		}
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookieName, login.RefreshToken,
		int(jwtmw.RefreshTokenTTL.Seconds()), "/", "", true, true)

	slog.Info("user login successful", "email", login.User.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Message:     "Login realizado com sucesso!",
		AccessToken: login.AccessToken,
		User:        login.User,
	})
}
