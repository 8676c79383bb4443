package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the catalogs a fresh installation needs before
// intake works.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding dictionaries...")

	if err := seedFaultTypes(ctx, db); err != nil {
		log.Fatalf("failed to seed fault types: %v", err)
	}

	log.Println("dictionaries seeded")
}
