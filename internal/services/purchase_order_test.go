package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

func seedEquipment(t *testing.T, repo *fakeEquipmentRepository, status entities.Status, orderNumber string) string {
	t.Helper()

	id := uuid.NewString()
	err := repo.CreateEquipment(context.Background(), &entities.Equipment{
		ID:            id,
		WorkOrder:     "WO-100",
		ClientID:      uuid.NewString(),
		ClientName:    "Mining Co",
		EquipmentType: "Regulator",
		Model:         "R-2",
		Manufacturer:  "Drager",
		SerialNumber:  "SN-" + id[:8],
		FaultType:     "AIR LEAK",
		Status:        entities.StatusPending,
	})
	require.NoError(t, err)

	if orderNumber != "" {
		_, err = repo.AssignPurchaseOrder(context.Background(), nil, orderNumber, []string{id})
		require.NoError(t, err)
	}
	if status == entities.StatusAtManufacturer || status == entities.StatusReceived {
		_, err = repo.ApplyManufacturerResponse(context.Background(), nil, []string{id}, warrantyParams("R-1"))
		require.NoError(t, err)
	}
	if status == entities.StatusReceived {
		_, err = repo.MarkReceived(context.Background(), nil, []string{id})
		require.NoError(t, err)
	}
	return id
}

func TestAssignPurchaseOrder(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewPurchaseOrderService(repo, &fakeTxManager{}, zap.NewNop())

	first := seedEquipment(t, repo, entities.StatusPending, "")
	second := seedEquipment(t, repo, entities.StatusPending, "")

	result, err := svc.AssignPurchaseOrder(context.Background(), dto.AssignPurchaseOrderDTO{
		OrderNumber:  "PO-2025-001",
		EquipmentIDs: []string{first, second, first}, // duplicate must not inflate the count
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-001", result.OrderNumber)
	assert.Equal(t, int64(2), result.AssignedCount)

	for _, id := range []string{first, second} {
		e, err := repo.FindEquipment(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, e.Status)
		require.NotNil(t, e.PurchaseOrderNumber)
		assert.Equal(t, "PO-2025-001", *e.PurchaseOrderNumber)
	}
}

func TestAssignPurchaseOrderIsAtomic(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewPurchaseOrderService(repo, &fakeTxManager{}, zap.NewNop())

	pending := seedEquipment(t, repo, entities.StatusPending, "")
	shipped := seedEquipment(t, repo, entities.StatusShipped, "PO-OLD")
	missing := uuid.NewString()

	_, err := svc.AssignPurchaseOrder(context.Background(), dto.AssignPurchaseOrderDTO{
		OrderNumber:  "PO-2025-002",
		EquipmentIDs: []string{pending, shipped, missing},
	})

	var precondition *apperrors.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.ElementsMatch(t, []string{shipped, missing}, precondition.FailedIDs())

	// The valid record must be untouched: all-or-nothing.
	e, findErr := repo.FindEquipment(context.Background(), pending)
	require.NoError(t, findErr)
	assert.Equal(t, entities.StatusPending, e.Status)
	assert.Nil(t, e.PurchaseOrderNumber)

	// The already shipped record keeps its original order number.
	e, findErr = repo.FindEquipment(context.Background(), shipped)
	require.NoError(t, findErr)
	assert.Equal(t, "PO-OLD", *e.PurchaseOrderNumber)
}

func TestAssignPurchaseOrderRejectsBadInput(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewPurchaseOrderService(repo, &fakeTxManager{}, zap.NewNop())

	var validation *apperrors.ValidationError

	_, err := svc.AssignPurchaseOrder(context.Background(), dto.AssignPurchaseOrderDTO{
		OrderNumber:  "   ",
		EquipmentIDs: []string{uuid.NewString()},
	})
	require.ErrorAs(t, err, &validation)

	_, err = svc.AssignPurchaseOrder(context.Background(), dto.AssignPurchaseOrderDTO{
		OrderNumber:  "PO-2025-003",
		EquipmentIDs: nil,
	})
	require.ErrorAs(t, err, &validation)
}

func TestListActivePurchaseOrders(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewPurchaseOrderService(repo, &fakeTxManager{}, zap.NewNop())

	// PO-A assigned first, still shipped. PO-B fully received, must drop
	// out. PO-C has one received and one still at the manufacturer, so it
	// stays active.
	seedEquipment(t, repo, entities.StatusShipped, "PO-A")
	seedEquipment(t, repo, entities.StatusReceived, "PO-B")
	seedEquipment(t, repo, entities.StatusReceived, "PO-C")
	seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-C")

	orders, err := svc.ListActivePurchaseOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PO-A", orders[0].OrderNumber)
	assert.Equal(t, int64(1), orders[0].EquipmentCount)
	assert.Equal(t, "PO-C", orders[1].OrderNumber)
	assert.Equal(t, int64(2), orders[1].EquipmentCount)
}

func TestEquipmentByOrder(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewPurchaseOrderService(repo, &fakeTxManager{}, zap.NewNop())

	seedEquipment(t, repo, entities.StatusShipped, "PO-X")
	seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-X")
	seedEquipment(t, repo, entities.StatusShipped, "PO-Y")

	all, err := svc.EquipmentByOrder(context.Background(), "PO-X", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	shippedOnly, err := svc.EquipmentByOrder(context.Background(), "PO-X", "shipped")
	require.NoError(t, err)
	assert.Len(t, shippedOnly, 1)

	var validation *apperrors.ValidationError
	_, err = svc.EquipmentByOrder(context.Background(), "PO-X", "lost_in_transit")
	require.ErrorAs(t, err, &validation)

	_, err = svc.EquipmentByOrder(context.Background(), "  ", "")
	require.ErrorAs(t, err, &validation)
}
