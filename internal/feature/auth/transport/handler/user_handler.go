package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/feature/auth/validation"
)

// UserUsecase defines the user management operations the handler needs.
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, user *entity.User) (*entity.User, error)
	UpdateName(ctx context.Context, id uint, name string) (*entity.User, error)
	Remove(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler handles the user management endpoints mounted behind the
// authentication middleware.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler with the usecase injected.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Erro ao listar usuários!"})
		return
	}
	c.JSON(http.StatusOK, dto.UserListRes{Users: users})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{User: user})
}

// Update handles PUT /users/:id. The password is optional; when present
// it is validated and replaced, otherwise the stored hash is kept.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Erro ao validar os dados do usuário!"})
		return
	}

	result := validation.ValidateUser(req, validation.FieldPass)
	if !result.OK {
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

	updated, err := h.users.Update(c.Request.Context(), id, user)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Erro ao atualizar usuário!",
				Errors:  map[string][]string{"email": {"Email já cadastrado!"}},
			})
		case errors.Is(err, usecase.ErrCPFTaken):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
				Message: "Erro ao atualizar usuário!",
				Errors:  map[string][]string{"cpf": {"CPF já cadastrado!"}},
			})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Usuário não encontrado!"})
		default:
			slog.Error("user update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Erro ao atualizar usuário!"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UserRes{Message: "Usuário atualizado com sucesso!", User: updated})
}

// UpdateName handles PATCH /users/:id/name, the narrow single-field update.
func (h *UserHandler) UpdateName(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.UpdateNamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Erro ao validar os dados do usuário!"})
		return
	}

	result := validation.ValidateUser(dto.UserPayload{Name: req.Name},
		validation.FieldEmail,
		validation.FieldPass,
		validation.FieldCPF,
		validation.FieldDataNascimento,
		validation.FieldTelefone,
		validation.FieldEndereco,
	)
	if !result.OK {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
			Message: "Erro ao validar os dados do usuário!",
			Errors:  result.FieldErrors,
		})
		return
	}

	updated, err := h.users.UpdateName(c.Request.Context(), id, result.Data.Name)
	if err != nil {
		h.renderLookupError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, dto.IdentityRes{Message: "Usuário atualizado com sucesso!", User: updated.Identity()})
}

// Remove handles DELETE /users/:id.
func (h *UserHandler) Remove(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	removed, err := h.users.Remove(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, dto.IdentityRes{Message: "Usuário removido com sucesso!", User: removed.Identity()})
}

// userID parses the :id route parameter. On failure it writes the 400
// response and reports false.
func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Id inválido."})
		return 0, false
	}
	return uint(id), true
}

// renderLookupError maps a lookup failure to 404 or 500.
func (h *UserHandler) renderLookupError(c *gin.Context, err error, id uint) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Usuário não encontrado!"})
		return
	}
	slog.Error("user lookup failed", "error", err, "id", id)
	c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Erro ao buscar usuário!"})
}
