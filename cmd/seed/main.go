// Command seed creates an admin account.
//
//	go run ./cmd/seed -email admin@glamping.test -password secret123 -name Admin -role admin
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"glamping-api/internal/domain/user"
	"glamping-api/internal/infra"
	"glamping-api/internal/infra/db"
	"glamping-api/internal/infra/repository"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/config"
	"glamping-api/internal/pkg/password"
)

func main() {
	var (
		name  = flag.String("name", "Admin", "display name")
		email = flag.String("email", "", "login e-mail (required)")
		plain = flag.String("password", "", "password, at least 8 characters (required)")
		role  = flag.String("role", string(user.RoleAdmin), "viewer | operator | admin")
	)
	flag.Parse()

	if err := run(*name, *email, *plain, *role); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(name, emailStr, plain, roleStr string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return err
	}
	if _, err := user.NewPassword(plain); err != nil {
		return err
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(plain)
	if err != nil {
		return err
	}

	admin, err := user.NewUser(name, email, hash, role, time.Now())
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := repository.NewUserRepository(sqlc.New(), pool).Create(ctx, admin)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Info("user already exists, nothing to do", "email", email.Value())
			return nil
		}
		return err
	}

	slog.Info("user created", "id", id, "email", email.Value(), "role", role.String())
	return nil
}
