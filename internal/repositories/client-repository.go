package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type dbClient struct {
	ID        string
	Name      string
	TaxID     string
	Phone     string
	Email     sql.NullString
	CreatedAt sql.NullTime
}

func (db *dbClient) toEntity() entities.Client {
	c := entities.Client{
		ID:    db.ID,
		Name:  db.Name,
		TaxID: db.TaxID,
		Phone: db.Phone,
		Email: utils.NullStringToPtr(db.Email),
	}
	if db.CreatedAt.Valid {
		c.CreatedAt = db.CreatedAt.Time
	}
	return c
}

const (
	clientTable      = "clients"
	clientFields     = "id, name, tax_id, phone, email, created_at"
	workCenterTable  = "work_centers"
	workCenterFields = "id, client_id, name, address"
)

type ClientRepositoryInterface interface {
	CreateClient(ctx context.Context, c *entities.Client) error
	GetClients(ctx context.Context) ([]entities.Client, error)
	FindClient(ctx context.Context, id string) (*entities.Client, error)
	UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) error
	AddWorkCenter(ctx context.Context, wc *entities.WorkCenter) error
	ListWorkCenters(ctx context.Context, clientID string) ([]entities.WorkCenter, error)
	FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error)
}

type clientRepository struct{ storage *pgxpool.Pool }

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &clientRepository{storage: storage}
}

// CreateClient inserts the client and any embedded work centers in a single
// transaction.
func (r *clientRepository) CreateClient(ctx context.Context, c *entities.Client) (err error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	query := fmt.Sprintf("INSERT INTO %s (id, name, tax_id, phone, email) VALUES ($1, $2, $3, $4, $5) RETURNING created_at", clientTable)
	if err = tx.QueryRow(ctx, query, c.ID, c.Name, c.TaxID, c.Phone, c.Email).Scan(&c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}

	for i := range c.WorkCenters {
		wc := &c.WorkCenters[i]
		wc.ClientID = c.ID
		insert := fmt.Sprintf("INSERT INTO %s (id, client_id, name, address) VALUES ($1, $2, $3, $4)", workCenterTable)
		if _, err = tx.Exec(ctx, insert, wc.ID, wc.ClientID, wc.Name, wc.Address); err != nil {
			return err
		}
	}
	return nil
}

func (r *clientRepository) GetClients(ctx context.Context) ([]entities.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at, id", clientFields, clientTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		var dbRow dbClient
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.Phone, &dbRow.Email, &dbRow.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, dbRow.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range clients {
		centers, err := r.ListWorkCenters(ctx, clients[i].ID)
		if err != nil {
			return nil, err
		}
		clients[i].WorkCenters = centers
	}
	return clients, nil
}

func (r *clientRepository) FindClient(ctx context.Context, id string) (*entities.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", clientFields, clientTable)
	var dbRow dbClient
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.Phone, &dbRow.Email, &dbRow.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	client := dbRow.toEntity()
	client.WorkCenters, err = r.ListWorkCenters(ctx, id)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient patches only the basic fields that were supplied. Work centers
// are managed through their own sub-resource and are never touched here.
func (r *clientRepository) UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if payload.TaxID != nil {
		setClauses = append(setClauses, fmt.Sprintf("tax_id = $%d", argID))
		args = append(args, *payload.TaxID)
		argID++
	}
	if payload.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", argID))
		args = append(args, *payload.Phone)
		argID++
	}
	if payload.Email.Valid {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argID))
		args = append(args, payload.Email.String)
		argID++
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", clientTable, strings.Join(setClauses, ", "), argID)
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) AddWorkCenter(ctx context.Context, wc *entities.WorkCenter) error {
	query := fmt.Sprintf("INSERT INTO %s (id, client_id, name, address) VALUES ($1, $2, $3, $4)", workCenterTable)
	_, err := r.storage.Exec(ctx, query, wc.ID, wc.ClientID, wc.Name, wc.Address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *clientRepository) ListWorkCenters(ctx context.Context, clientID string) ([]entities.WorkCenter, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE client_id = $1 ORDER BY name", workCenterFields, workCenterTable)
	rows, err := r.storage.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]entities.WorkCenter, 0)
	for rows.Next() {
		var wc entities.WorkCenter
		if err := rows.Scan(&wc.ID, &wc.ClientID, &wc.Name, &wc.Address); err != nil {
			return nil, err
		}
		centers = append(centers, wc)
	}
	return centers, rows.Err()
}

func (r *clientRepository) FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", workCenterFields, workCenterTable)
	var wc entities.WorkCenter
	err := r.storage.QueryRow(ctx, query, id).Scan(&wc.ID, &wc.ClientID, &wc.Name, &wc.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &wc, nil
}
