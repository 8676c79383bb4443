package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

func TestReceiveEquipment(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewReceptionService(repo, &fakeTxManager{}, zap.NewNop())

	first := seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-RCV")
	second := seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-RCV")

	result, err := svc.ReceiveEquipment(context.Background(), dto.ReceiveEquipmentDTO{
		EquipmentIDs: []string{first, second},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ReceivedCount)

	for _, id := range []string{first, second} {
		e, err := repo.FindEquipment(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusReceived, e.Status)
	}
}

func TestReceiveEquipmentIsAtomic(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewReceptionService(repo, &fakeTxManager{}, zap.NewNop())

	ready := seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-RCV2")
	notReady := seedEquipment(t, repo, entities.StatusShipped, "PO-RCV2")

	_, err := svc.ReceiveEquipment(context.Background(), dto.ReceiveEquipmentDTO{
		EquipmentIDs: []string{ready, notReady},
	})

	var precondition *apperrors.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, []string{notReady}, precondition.FailedIDs())

	e, findErr := repo.FindEquipment(context.Background(), ready)
	require.NoError(t, findErr)
	assert.Equal(t, entities.StatusAtManufacturer, e.Status)
}

func TestReceiveEquipmentRejectsEmptySet(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewReceptionService(repo, &fakeTxManager{}, zap.NewNop())

	var validation *apperrors.ValidationError
	_, err := svc.ReceiveEquipment(context.Background(), dto.ReceiveEquipmentDTO{})
	require.ErrorAs(t, err, &validation)
}

func TestReceptionLists(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewReceptionService(repo, &fakeTxManager{}, zap.NewNop())

	seedEquipment(t, repo, entities.StatusPending, "")
	awaiting := seedEquipment(t, repo, entities.StatusAtManufacturer, "PO-L")
	done := seedEquipment(t, repo, entities.StatusReceived, "PO-L")

	awaitingList, err := svc.ListAwaitingReception(context.Background())
	require.NoError(t, err)
	require.Len(t, awaitingList, 1)
	assert.Equal(t, awaiting, awaitingList[0].ID)

	completedList, err := svc.ListCompleted(context.Background())
	require.NoError(t, err)
	require.Len(t, completedList, 1)
	assert.Equal(t, done, completedList[0].ID)
}
