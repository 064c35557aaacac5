package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a hand-rolled mock of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, user *entity.User) (*entity.User, error)
	LoginFunc  func(ctx context.Context, email, pass string) (*usecase.LoginResult, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, user)
	}
	return nil, errors.New("signup failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, pass)
	}
	return nil, errors.New("login failed")
}

// anaPayload is the canonical valid signup body used across the tests.
func anaPayload() gin.H {
	return gin.H{
		"name":           "Ana Silva",
		"email":          "ana@x.com",
		"pass":           "secret1",
		"cpf":            "12345678901",
		"dataNascimento": "1990-01-01",
		"telefone":       "11987654321",
		"endereco":       "Rua A, 1",
	}
}

func anaUser() *entity.User {
	return &entity.User{
		ID:             1,
		Name:           "Ana Silva",
		Email:          "ana@x.com",
		CPF:            "12345678901",
		DataNascimento: "1990-01-01",
		Telefone:       "11987654321",
		Endereco:       "Rua A, 1",
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newAuthRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("valid payload is created", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				assert.Equal(t, "secret1", user.Pass, "handler passes the plaintext to the usecase")
				out := anaUser()
				return out, nil
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/signup", anaPayload())

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Usuário criado com sucesso!", body["message"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok, "response should contain the user")
		assert.Equal(t, "ana@x.com", user["email"])
		assert.NotContains(t, user, "pass", "no password field may appear in the response")
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		router := newAuthRouter(&mockAuthUsecase{})

		payload := anaPayload()
		payload["cpf"] = "123"
		w := postJSON(t, router, "/signup", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Erro ao validar os dados do usuário!", body.Message)
		assert.Contains(t, body.Errors, "cpf")
	})

	t.Run("missing required field", func(t *testing.T) {
		router := newAuthRouter(&mockAuthUsecase{})

		payload := anaPayload()
		delete(payload, "telefone")
		w := postJSON(t, router, "/signup", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Errors, "telefone")
	})

	t.Run("duplicate email is tagged on the email field", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				return nil, usecase.ErrEmailTaken
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/signup", anaPayload())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Email já cadastrado!"}, body.Errors["email"])
	})

	t.Run("duplicate cpf at insert time is tagged on the cpf field", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				return nil, usecase.ErrCPFTaken
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/signup", anaPayload())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cpf")
	})

	t.Run("unexpected store failure is a plain 500", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/signup", anaPayload())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused", "internal detail must not leak")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns the access token and sets the refresh cookie", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
				return &usecase.LoginResult{
					User:         anaUser(),
					AccessToken:  "signed-access",
					RefreshToken: "signed-refresh",
				}, nil
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/login", gin.H{"email": "ana@x.com", "pass": "secret1"})

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Login realizado com sucesso!", body["message"])
		assert.Equal(t, "signed-access", body["accessToken"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ana@x.com", user["email"])
		assert.NotContains(t, user, "pass")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1, "login must set exactly one cookie")
		cookie := cookies[0]
		assert.Equal(t, "refreshToken", cookie.Name)
		assert.Equal(t, "signed-refresh", cookie.Value)
		assert.True(t, cookie.HttpOnly, "refresh cookie must be HttpOnly")
		assert.True(t, cookie.Secure, "refresh cookie must be Secure")
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
		assert.Equal(t, 3*24*60*60, cookie.MaxAge, "cookie lifetime must match the refresh token")
	})

	t.Run("unknown email is tagged on the email field", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
				return nil, usecase.ErrUserNotFound
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/login", gin.H{"email": "ghost@x.com", "pass": "secret1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Credenciais inválidas!", body.Message)
		assert.Equal(t, []string{"Email não cadastrado"}, body.Errors["email"])
	})

	t.Run("wrong password is tagged on the pass field", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
				return nil, usecase.ErrWrongPassword
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/login", gin.H{"email": "ana@x.com", "pass": "wrong12"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Senha incorreta"}, body.Errors["pass"])
	})

	t.Run("credentials are the only required fields", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
				return &usecase.LoginResult{User: anaUser(), AccessToken: "a", RefreshToken: "r"}, nil
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/login", gin.H{"email": "ana@x.com", "pass": "secret1"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed email fails validation before the store", func(t *testing.T) {
		called := false
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, pass string) (*usecase.LoginResult, error) {
				called = true
				return nil, usecase.ErrUserNotFound
			},
		}
		router := newAuthRouter(uc)

		w := postJSON(t, router, "/login", gin.H{"email": "not-an-email", "pass": "secret1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called, "usecase must not run on invalid input")
		assert.Contains(t, w.Body.String(), "email")
	})
}
