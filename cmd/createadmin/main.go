// Command createadmin creates a superuser account (is_staff and
// is_superuser set) directly against the database.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	authadapters "agroform_backend/internal/feature/auth/adapters"
	authusecase "agroform_backend/internal/feature/auth/usecase"
	infradb "agroform_backend/internal/platform/db"
)

func main() {
	email := flag.String("email", "", "email address of the new superuser")
	username := flag.String("username", "", "username of the new superuser")
	flag.Parse()

	if *email == "" || *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Password comes from the environment so it never lands in shell history.
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	userRepo := authadapters.NewUserPostgres(db)
	authUC := authusecase.NewAuthUsecase(userRepo, nil, nil)

	if err := authUC.CreateSuperuser(context.Background(), *email, *username, password); err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}

	log.Printf("superuser %s created", *username)
}
