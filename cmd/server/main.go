package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"agroform_backend/internal/app/di"
	"agroform_backend/internal/app/router"
	authadapters "agroform_backend/internal/feature/auth/adapters"
	authhandler "agroform_backend/internal/feature/auth/transport/handler"
	authusecase "agroform_backend/internal/feature/auth/usecase"
	commentadapters "agroform_backend/internal/feature/comments/adapters"
	commenthandler "agroform_backend/internal/feature/comments/transport/handler"
	commentusecase "agroform_backend/internal/feature/comments/usecase"
	formadapters "agroform_backend/internal/feature/forms/adapters"
	formhandler "agroform_backend/internal/feature/forms/transport/handler"
	formusecase "agroform_backend/internal/feature/forms/usecase"
	infradb "agroform_backend/internal/platform/db"
	infraredis "agroform_backend/internal/platform/redis"
	jwtmw "agroform_backend/internal/platform/jwt"
	"agroform_backend/internal/shared/ratelimiter"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional; sessions fall back to the SQL store)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using SQL session store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRET check
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	formRepo := formadapters.NewFormPostgres(db)
	commentRepo := commentadapters.NewCommentPostgres(db)

	// Usecase
	tokens := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens)
	formUC := formusecase.NewFormUsecase(formRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, formRepo)

	// Handler
	loginAttempts := ratelimiter.NewAttemptLimiter(5, 10*time.Minute)
	authH := authhandler.NewAuthHandler(authUC, loginAttempts)
	formH := formhandler.NewFormHandler(formUC)
	commentH := commenthandler.NewCommentHandler(commentUC)

	// Hourly cleanup of expired SQL sessions (Redis expires its own)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Println("[ERROR] session cleanup failed:", err)
			} else if n > 0 {
				log.Printf("[INFO] deleted %d expired sessions", n)
			}
		}
	}()

	r := router.NewRouter(authH, formH, commentH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
