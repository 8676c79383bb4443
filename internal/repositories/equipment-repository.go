package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type dbEquipment struct {
	ID                  string
	WorkOrder           string
	ClientID            string
	ClientName          string
	WorkCenterID        sql.NullString
	WorkCenterName      sql.NullString
	EquipmentType       string
	Model               string
	AssetTag            sql.NullString
	Manufacturer        string
	SerialNumber        string
	ManufactureDate     sql.NullTime
	FaultType           string
	Notes               sql.NullString
	SensorSerial        sql.NullString
	SensorInstalledAt   sql.NullTime
	Status              string
	PurchaseOrderNumber sql.NullString
	ManufacturerReceipt sql.NullString
	Warranty            sql.NullBool
	QuoteNumber         sql.NullString
	QuoteAccepted       sql.NullBool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (db *dbEquipment) toEntity() entities.Equipment {
	return entities.Equipment{
		ID:                  db.ID,
		WorkOrder:           db.WorkOrder,
		ClientID:            db.ClientID,
		ClientName:          db.ClientName,
		WorkCenterID:        utils.NullStringToPtr(db.WorkCenterID),
		WorkCenterName:      utils.NullStringToPtr(db.WorkCenterName),
		EquipmentType:       db.EquipmentType,
		Model:               db.Model,
		AssetTag:            utils.NullStringToPtr(db.AssetTag),
		Manufacturer:        db.Manufacturer,
		SerialNumber:        db.SerialNumber,
		ManufactureDate:     utils.NullTimeToPtr(db.ManufactureDate),
		FaultType:           db.FaultType,
		Notes:               utils.NullStringToPtr(db.Notes),
		SensorSerial:        utils.NullStringToPtr(db.SensorSerial),
		SensorInstalledAt:   utils.NullTimeToPtr(db.SensorInstalledAt),
		Status:              entities.Status(db.Status),
		PurchaseOrderNumber: utils.NullStringToPtr(db.PurchaseOrderNumber),
		ManufacturerReceipt: utils.NullStringToPtr(db.ManufacturerReceipt),
		Warranty:            utils.NullBoolToPtr(db.Warranty),
		QuoteNumber:         utils.NullStringToPtr(db.QuoteNumber),
		QuoteAccepted:       utils.NullBoolToPtr(db.QuoteAccepted),
		CreatedAt:           db.CreatedAt,
		UpdatedAt:           db.UpdatedAt,
	}
}

const (
	equipmentTable  = "equipment"
	equipmentFields = `id, work_order, client_id, client_name, work_center_id, work_center_name,
		equipment_type, model, asset_tag, manufacturer, serial_number, manufacture_date,
		fault_type, notes, sensor_serial, sensor_installed_at, status,
		purchase_order_number, manufacturer_receipt, warranty, quote_number, quote_accepted,
		created_at, updated_at`
)

func scanEquipment(row pgx.Row) (*dbEquipment, error) {
	var dbRow dbEquipment
	err := row.Scan(
		&dbRow.ID, &dbRow.WorkOrder, &dbRow.ClientID, &dbRow.ClientName,
		&dbRow.WorkCenterID, &dbRow.WorkCenterName, &dbRow.EquipmentType, &dbRow.Model,
		&dbRow.AssetTag, &dbRow.Manufacturer, &dbRow.SerialNumber, &dbRow.ManufactureDate,
		&dbRow.FaultType, &dbRow.Notes, &dbRow.SensorSerial, &dbRow.SensorInstalledAt,
		&dbRow.Status, &dbRow.PurchaseOrderNumber, &dbRow.ManufacturerReceipt,
		&dbRow.Warranty, &dbRow.QuoteNumber, &dbRow.QuoteAccepted,
		&dbRow.CreatedAt, &dbRow.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

// ManufacturerResponseParams is the uniform outcome applied to every record
// of one response batch.
type ManufacturerResponseParams struct {
	ReceiptNumber string
	Warranty      bool
	QuoteNumber   sql.NullString
	QuoteAccepted sql.NullBool
}

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, e *entities.Equipment) error
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	ListEquipment(ctx context.Context, status *entities.Status) ([]entities.Equipment, error)
	ListByOrder(ctx context.Context, orderNumber string, status *entities.Status) ([]entities.Equipment, error)
	ListActivePurchaseOrders(ctx context.Context) ([]entities.ActivePurchaseOrder, error)

	// Transactional batch primitives. LockForTransition takes row locks so
	// two concurrent batches cannot both pass the same precondition check.
	LockForTransition(ctx context.Context, tx pgx.Tx, ids []string) ([]entities.TransitionTarget, error)
	AssignPurchaseOrder(ctx context.Context, tx pgx.Tx, orderNumber string, ids []string) (int64, error)
	ApplyManufacturerResponse(ctx context.Context, tx pgx.Tx, ids []string, params ManufacturerResponseParams) (int64, error)
	MarkReceived(ctx context.Context, tx pgx.Tx, ids []string) (int64, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	builder sq.StatementBuilderType
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{
		storage: storage,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	query := fmt.Sprintf(`INSERT INTO %s (
			id, work_order, client_id, client_name, work_center_id, work_center_name,
			equipment_type, model, asset_tag, manufacturer, serial_number, manufacture_date,
			fault_type, notes, sensor_serial, sensor_installed_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at`, equipmentTable)

	err := r.storage.QueryRow(ctx, query,
		e.ID, e.WorkOrder, e.ClientID, e.ClientName, e.WorkCenterID, e.WorkCenterName,
		e.EquipmentType, e.Model, e.AssetTag, e.Manufacturer, e.SerialNumber, e.ManufactureDate,
		e.FaultType, e.Notes, e.SensorSerial, e.SensorInstalledAt, e.Status.String(),
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	dbRow, err := scanEquipment(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	e := dbRow.toEntity()
	return &e, nil
}

func (r *equipmentRepository) ListEquipment(ctx context.Context, status *entities.Status) ([]entities.Equipment, error) {
	qb := r.builder.Select(equipmentFields).From(equipmentTable).OrderBy("created_at", "id")
	if status != nil {
		qb = qb.Where(sq.Eq{"status": status.String()})
	}
	return r.queryMany(ctx, qb)
}

func (r *equipmentRepository) ListByOrder(ctx context.Context, orderNumber string, status *entities.Status) ([]entities.Equipment, error) {
	qb := r.builder.Select(equipmentFields).From(equipmentTable).
		Where(sq.Eq{"purchase_order_number": orderNumber}).
		OrderBy("created_at", "id")
	if status != nil {
		qb = qb.Where(sq.Eq{"status": status.String()})
	}
	return r.queryMany(ctx, qb)
}

func (r *equipmentRepository) queryMany(ctx context.Context, qb sq.SelectBuilder) ([]entities.Equipment, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]entities.Equipment, 0)
	for rows.Next() {
		dbRow, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, dbRow.toEntity())
	}
	return result, rows.Err()
}

// ListActivePurchaseOrders returns order numbers that still have at least one
// record not yet received, oldest assignment first.
func (r *equipmentRepository) ListActivePurchaseOrders(ctx context.Context) ([]entities.ActivePurchaseOrder, error) {
	query := fmt.Sprintf(`
		SELECT purchase_order_number, COUNT(*), MIN(po_assigned_at)
		FROM %s
		WHERE purchase_order_number IS NOT NULL
		GROUP BY purchase_order_number
		HAVING bool_or(status <> $1)
		ORDER BY MIN(po_assigned_at)`, equipmentTable)

	rows, err := r.storage.Query(ctx, query, entities.StatusReceived.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entities.ActivePurchaseOrder, 0)
	for rows.Next() {
		var o entities.ActivePurchaseOrder
		if err := rows.Scan(&o.OrderNumber, &o.EquipmentCount, &o.FirstAssigned); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *equipmentRepository) LockForTransition(ctx context.Context, tx pgx.Tx, ids []string) ([]entities.TransitionTarget, error) {
	query, args, err := r.builder.
		Select("id", "status", "purchase_order_number").
		From(equipmentTable).
		Where(sq.Eq{"id": ids}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]entities.TransitionTarget, 0, len(ids))
	for rows.Next() {
		var t entities.TransitionTarget
		var status string
		var poNumber sql.NullString
		if err := rows.Scan(&t.ID, &status, &poNumber); err != nil {
			return nil, err
		}
		t.Status = entities.Status(status)
		if poNumber.Valid {
			t.PurchaseOrderNumber = &poNumber.String
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *equipmentRepository) AssignPurchaseOrder(ctx context.Context, tx pgx.Tx, orderNumber string, ids []string) (int64, error) {
	query, args, err := r.builder.
		Update(equipmentTable).
		Set("purchase_order_number", orderNumber).
		Set("status", entities.StatusShipped.String()).
		Set("po_assigned_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *equipmentRepository) ApplyManufacturerResponse(ctx context.Context, tx pgx.Tx, ids []string, params ManufacturerResponseParams) (int64, error) {
	query, args, err := r.builder.
		Update(equipmentTable).
		Set("manufacturer_receipt", params.ReceiptNumber).
		Set("warranty", params.Warranty).
		Set("quote_number", params.QuoteNumber).
		Set("quote_accepted", params.QuoteAccepted).
		Set("status", entities.StatusAtManufacturer.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkReceived stamps updated_at, which doubles as the reception date in
// reporting.
func (r *equipmentRepository) MarkReceived(ctx context.Context, tx pgx.Tx, ids []string) (int64, error) {
	query, args, err := r.builder.
		Update(equipmentTable).
		Set("status", entities.StatusReceived.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
