package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

const (
	faultTypeTable  = "fault_types"
	faultTypeFields = "id, name, requires_sensor"
)

type FaultTypeRepositoryInterface interface {
	GetFaultTypes(ctx context.Context) ([]entities.FaultType, error)
	FindByName(ctx context.Context, name string) (*entities.FaultType, error)
	CreateFaultType(ctx context.Context, ft *entities.FaultType) error
}

type faultTypeRepository struct{ storage *pgxpool.Pool }

func NewFaultTypeRepository(storage *pgxpool.Pool) FaultTypeRepositoryInterface {
	return &faultTypeRepository{storage: storage}
}

func (r *faultTypeRepository) GetFaultTypes(ctx context.Context) ([]entities.FaultType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", faultTypeFields, faultTypeTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faultTypes := make([]entities.FaultType, 0)
	for rows.Next() {
		var ft entities.FaultType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.RequiresSensor); err != nil {
			return nil, err
		}
		faultTypes = append(faultTypes, ft)
	}
	return faultTypes, rows.Err()
}

func (r *faultTypeRepository) FindByName(ctx context.Context, name string) (*entities.FaultType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE name = $1", faultTypeFields, faultTypeTable)
	var ft entities.FaultType
	err := r.storage.QueryRow(ctx, query, name).Scan(&ft.ID, &ft.Name, &ft.RequiresSensor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &ft, nil
}

func (r *faultTypeRepository) CreateFaultType(ctx context.Context, ft *entities.FaultType) error {
	query := fmt.Sprintf("INSERT INTO %s (id, name, requires_sensor) VALUES ($1, $2, $3)", faultTypeTable)
	if _, err := r.storage.Exec(ctx, query, ft.ID, ft.Name, ft.RequiresSensor); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}
