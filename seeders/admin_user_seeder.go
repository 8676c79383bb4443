package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"repair-tracking/pkg/utils"
)

// SeedAdminUser creates the bootstrap account. Credentials come from the
// environment so they never end up in the repository.
func SeedAdminUser(db *pgxpool.Pool) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("  - ADMIN_USERNAME / ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (username, password_hash) VALUES ($1, $2)
			  ON CONFLICT (username) DO NOTHING`
	_, err = db.Exec(context.Background(), query, username, hash)
	if err != nil {
		return err
	}
	log.Printf("  - admin user %q ready", username)
	return nil
}
