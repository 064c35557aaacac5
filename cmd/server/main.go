package main

import (
	"log"
	"log/slog"
	"os"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/db"
	jwtmw "auth_backend/internal/platform/jwt"
)

func main() {
	// db
	gormDB := db.OpenDB()

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gormDB)

	// Token generator
	tokens := jwtmw.NewGenerator(secret, jwtmw.AccessTokenTTL, jwtmw.RefreshTokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	userUC := authusecase.NewUserUsecase(userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := authhandler.NewUserHandler(userUC)

	r := router.NewRouter(authH, userH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
