// Package router assembles the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	platformhandler "auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"
)

// NewRouter wires the handlers onto a gin engine.
func NewRouter(auth *authhandler.AuthHandler, users *authhandler.UserHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// User management requires a valid access token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/users", users.List)
		protected.GET("/users/:id", users.Get)
		protected.PUT("/users/:id", users.Update)
		protected.PATCH("/users/:id/name", users.UpdateName)
		protected.DELETE("/users/:id", users.Remove)
	}

	return r
}
