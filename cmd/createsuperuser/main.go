// Command createsuperuser provisions an active staff account that can open
// the admin console.
//
//	createsuperuser -email admin@example.com -name Admin
//
// The password is read from -password or, when omitted, from the
// SUPERUSER_PASSWORD environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"recipe-be/internal/config"
	"recipe-be/internal/database"
	"recipe-be/internal/logging"
	"recipe-be/internal/models"
	"recipe-be/internal/repository"
	"recipe-be/internal/service"
	"recipe-be/internal/validation"
)

func main() {
	email := flag.String("email", "", "superuser email")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "password (defaults to $SUPERUSER_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("SUPERUSER_PASSWORD")
	}

	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Error(ctx, "failed to run migrations", "error", err)
		os.Exit(1)
	}

	users := service.NewUserService(repository.NewUserRepository(db), nil, logger)
	user, err := users.CreateSuperuser(ctx, &models.CreateUserRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
	})
	if verr, ok := validation.As(err); ok {
		for field, msgs := range verr {
			for _, msg := range msgs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
		}
		os.Exit(2)
	}
	if err != nil {
		logger.Error(ctx, "failed to create superuser", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Superuser %s created (id %d)\n", user.Email, user.ID)
}
