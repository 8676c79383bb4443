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
	modelTable  = "models"
	modelFields = "id, name, equipment_type"
)

type ModelRepositoryInterface interface {
	GetModels(ctx context.Context, equipmentType string) ([]entities.Model, error)
	CreateModel(ctx context.Context, m *entities.Model) error
}

type modelRepository struct{ storage *pgxpool.Pool }

func NewModelRepository(storage *pgxpool.Pool) ModelRepositoryInterface {
	return &modelRepository{storage: storage}
}

// GetModels returns all models, or only those of one equipment type when
// equipmentType is non-empty.
func (r *modelRepository) GetModels(ctx context.Context, equipmentType string) ([]entities.Model, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", modelFields, modelTable)
	args := []interface{}{}
	if equipmentType != "" {
		query = fmt.Sprintf("SELECT %s FROM %s WHERE equipment_type = $1 ORDER BY name", modelFields, modelTable)
		args = append(args, equipmentType)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]entities.Model, 0)
	for rows.Next() {
		var m entities.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.EquipmentType); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *modelRepository) CreateModel(ctx context.Context, m *entities.Model) error {
	query := fmt.Sprintf("INSERT INTO %s (id, name, equipment_type) VALUES ($1, $2, $3)", modelTable)
	if _, err := r.storage.Exec(ctx, query, m.ID, m.Name, m.EquipmentType); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}
