package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

const (
	manufacturerTable  = "manufacturers"
	manufacturerFields = "id, name"
)

type ManufacturerRepositoryInterface interface {
	GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error)
	CreateManufacturer(ctx context.Context, m *entities.Manufacturer) error
}

type manufacturerRepository struct{ storage *pgxpool.Pool }

func NewManufacturerRepository(storage *pgxpool.Pool) ManufacturerRepositoryInterface {
	return &manufacturerRepository{storage: storage}
}

func (r *manufacturerRepository) GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", manufacturerFields, manufacturerTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	manufacturers := make([]entities.Manufacturer, 0)
	for rows.Next() {
		var m entities.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		manufacturers = append(manufacturers, m)
	}
	return manufacturers, rows.Err()
}

func (r *manufacturerRepository) CreateManufacturer(ctx context.Context, m *entities.Manufacturer) error {
	query := fmt.Sprintf("INSERT INTO %s (id, name) VALUES ($1, $2)", manufacturerTable)
	if _, err := r.storage.Exec(ctx, query, m.ID, m.Name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}
