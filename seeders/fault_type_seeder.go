package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type faultTypeSeed struct {
	Name           string
	RequiresSensor bool
}

// Default fault catalog. New installations need these before intake
// can classify anything.
var defaultFaultTypes = []faultTypeSeed{
	{Name: "SENSOR LEAKING ACID, PCB DAMAGED", RequiresSensor: true},
	{Name: "SENSOR FAILURE", RequiresSensor: true},
	{Name: "AIR LEAK", RequiresSensor: false},
	{Name: "LOW SOUND", RequiresSensor: false},
	{Name: "OTHER", RequiresSensor: false},
}

func seedFaultTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding table 'fault_types'...")

	query := `INSERT INTO fault_types (id, name, requires_sensor) VALUES ($1, $2, $3)
			  ON CONFLICT (name) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, ft := range defaultFaultTypes {
		if _, err := tx.Exec(ctx, query, uuid.NewString(), ft.Name, ft.RequiresSensor); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
