package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
)

// fakeTxManager runs the callback without a real transaction. The fake
// repositories below ignore the tx handle, so nil is fine here.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// fakeEquipmentRepository keeps records in memory, in insertion order, and
// mirrors the SQL semantics of the real repository closely enough for the
// service-level rules to be exercised.
type fakeEquipmentRepository struct {
	records    map[string]*entities.Equipment
	order      []string
	assignedAt map[string]time.Time
	clock      time.Time
}

func newFakeEquipmentRepository() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{
		records:    make(map[string]*entities.Equipment),
		assignedAt: make(map[string]time.Time),
		clock:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeEquipmentRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeEquipmentRepository) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	now := r.tick()
	e.CreatedAt = now
	e.UpdatedAt = now
	clone := *e
	r.records[e.ID] = &clone
	r.order = append(r.order, e.ID)
	return nil
}

func (r *fakeEquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	e, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEquipmentRepository) ListEquipment(ctx context.Context, status *entities.Status) ([]entities.Equipment, error) {
	var result []entities.Equipment
	for _, id := range r.order {
		e := r.records[id]
		if status != nil && e.Status != *status {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (r *fakeEquipmentRepository) ListByOrder(ctx context.Context, orderNumber string, status *entities.Status) ([]entities.Equipment, error) {
	var result []entities.Equipment
	for _, id := range r.order {
		e := r.records[id]
		if e.PurchaseOrderNumber == nil || *e.PurchaseOrderNumber != orderNumber {
			continue
		}
		if status != nil && e.Status != *status {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (r *fakeEquipmentRepository) ListActivePurchaseOrders(ctx context.Context) ([]entities.ActivePurchaseOrder, error) {
	type agg struct {
		count     int64
		first     time.Time
		allClosed bool
	}
	groups := make(map[string]*agg)
	var seen []string
	for _, id := range r.order {
		e := r.records[id]
		if e.PurchaseOrderNumber == nil {
			continue
		}
		number := *e.PurchaseOrderNumber
		g, ok := groups[number]
		if !ok {
			g = &agg{first: r.assignedAt[id], allClosed: true}
			groups[number] = g
			seen = append(seen, number)
		}
		g.count++
		if at := r.assignedAt[id]; at.Before(g.first) {
			g.first = at
		}
		if e.Status != entities.StatusReceived {
			g.allClosed = false
		}
	}

	var result []entities.ActivePurchaseOrder
	for _, number := range seen {
		g := groups[number]
		if g.allClosed {
			continue
		}
		result = append(result, entities.ActivePurchaseOrder{
			OrderNumber:    number,
			EquipmentCount: g.count,
			FirstAssigned:  g.first,
		})
	}
	return result, nil
}

func (r *fakeEquipmentRepository) LockForTransition(ctx context.Context, tx pgx.Tx, ids []string) ([]entities.TransitionTarget, error) {
	var targets []entities.TransitionTarget
	for _, id := range ids {
		e, ok := r.records[id]
		if !ok {
			continue
		}
		targets = append(targets, entities.TransitionTarget{
			ID:                  e.ID,
			Status:              e.Status,
			PurchaseOrderNumber: e.PurchaseOrderNumber,
		})
	}
	return targets, nil
}

func (r *fakeEquipmentRepository) AssignPurchaseOrder(ctx context.Context, tx pgx.Tx, orderNumber string, ids []string) (int64, error) {
	now := r.tick()
	var count int64
	for _, id := range ids {
		e, ok := r.records[id]
		if !ok {
			continue
		}
		number := orderNumber
		e.PurchaseOrderNumber = &number
		e.Status = entities.StatusShipped
		e.UpdatedAt = now
		r.assignedAt[id] = now
		count++
	}
	return count, nil
}

func (r *fakeEquipmentRepository) ApplyManufacturerResponse(ctx context.Context, tx pgx.Tx, ids []string, params repositories.ManufacturerResponseParams) (int64, error) {
	now := r.tick()
	var count int64
	for _, id := range ids {
		e, ok := r.records[id]
		if !ok {
			continue
		}
		receipt := params.ReceiptNumber
		warranty := params.Warranty
		e.ManufacturerReceipt = &receipt
		e.Warranty = &warranty
		e.QuoteNumber = nil
		e.QuoteAccepted = nil
		if params.QuoteNumber.Valid {
			quote := params.QuoteNumber.String
			e.QuoteNumber = &quote
		}
		if params.QuoteAccepted.Valid {
			accepted := params.QuoteAccepted.Bool
			e.QuoteAccepted = &accepted
		}
		e.Status = entities.StatusAtManufacturer
		e.UpdatedAt = now
		count++
	}
	return count, nil
}

func (r *fakeEquipmentRepository) MarkReceived(ctx context.Context, tx pgx.Tx, ids []string) (int64, error) {
	now := r.tick()
	var count int64
	for _, id := range ids {
		e, ok := r.records[id]
		if !ok {
			continue
		}
		e.Status = entities.StatusReceived
		e.UpdatedAt = now
		count++
	}
	return count, nil
}

// warrantyParams is the outcome batch used by helpers that only need to
// advance a record past the shipped stage.
func warrantyParams(receipt string) repositories.ManufacturerResponseParams {
	return repositories.ManufacturerResponseParams{ReceiptNumber: receipt, Warranty: true}
}

type fakeClientRepository struct {
	clients     map[string]*entities.Client
	workCenters map[string]*entities.WorkCenter
}

func newFakeClientRepository() *fakeClientRepository {
	return &fakeClientRepository{
		clients:     make(map[string]*entities.Client),
		workCenters: make(map[string]*entities.WorkCenter),
	}
}

func (r *fakeClientRepository) CreateClient(ctx context.Context, c *entities.Client) error {
	clone := *c
	r.clients[c.ID] = &clone
	for i := range c.WorkCenters {
		wc := c.WorkCenters[i]
		r.workCenters[wc.ID] = &wc
	}
	return nil
}

func (r *fakeClientRepository) GetClients(ctx context.Context) ([]entities.Client, error) {
	var result []entities.Client
	for _, c := range r.clients {
		result = append(result, *c)
	}
	return result, nil
}

func (r *fakeClientRepository) FindClient(ctx context.Context, id string) (*entities.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeClientRepository) UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) error {
	if _, ok := r.clients[id]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *fakeClientRepository) AddWorkCenter(ctx context.Context, wc *entities.WorkCenter) error {
	clone := *wc
	r.workCenters[wc.ID] = &clone
	return nil
}

func (r *fakeClientRepository) ListWorkCenters(ctx context.Context, clientID string) ([]entities.WorkCenter, error) {
	var result []entities.WorkCenter
	for _, wc := range r.workCenters {
		if wc.ClientID == clientID {
			result = append(result, *wc)
		}
	}
	return result, nil
}

func (r *fakeClientRepository) FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error) {
	wc, ok := r.workCenters[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *wc
	return &clone, nil
}

type fakeFaultTypeRepository struct {
	faultTypes map[string]*entities.FaultType
}

func newFakeFaultTypeRepository() *fakeFaultTypeRepository {
	return &fakeFaultTypeRepository{faultTypes: make(map[string]*entities.FaultType)}
}

func (r *fakeFaultTypeRepository) GetFaultTypes(ctx context.Context) ([]entities.FaultType, error) {
	var result []entities.FaultType
	for _, ft := range r.faultTypes {
		result = append(result, *ft)
	}
	return result, nil
}

func (r *fakeFaultTypeRepository) FindByName(ctx context.Context, name string) (*entities.FaultType, error) {
	ft, ok := r.faultTypes[name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *ft
	return &clone, nil
}

func (r *fakeFaultTypeRepository) CreateFaultType(ctx context.Context, ft *entities.FaultType) error {
	clone := *ft
	r.faultTypes[ft.Name] = &clone
	return nil
}
