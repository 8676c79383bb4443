package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

type equipmentTestEnv struct {
	svc          *EquipmentService
	repo         *fakeEquipmentRepository
	clientID     string
	workCenterID string
}

func newEquipmentTestEnv(t *testing.T) *equipmentTestEnv {
	t.Helper()

	equipmentRepo := newFakeEquipmentRepository()
	clientRepo := newFakeClientRepository()
	faultTypeRepo := newFakeFaultTypeRepository()

	clientID := uuid.NewString()
	workCenterID := uuid.NewString()
	err := clientRepo.CreateClient(context.Background(), &entities.Client{
		ID:   clientID,
		Name: "Minera Norte",
		WorkCenters: []entities.WorkCenter{
			{ID: workCenterID, ClientID: clientID, Name: "Faena Sur"},
		},
	})
	require.NoError(t, err)

	for _, ft := range []entities.FaultType{
		{ID: uuid.NewString(), Name: "SENSOR FAILURE", RequiresSensor: true},
		{ID: uuid.NewString(), Name: "AIR LEAK", RequiresSensor: false},
	} {
		ft := ft
		require.NoError(t, faultTypeRepo.CreateFaultType(context.Background(), &ft))
	}

	return &equipmentTestEnv{
		svc:          NewEquipmentService(equipmentRepo, clientRepo, faultTypeRepo, zap.NewNop()),
		repo:         equipmentRepo,
		clientID:     clientID,
		workCenterID: workCenterID,
	}
}

func basePayload(env *equipmentTestEnv) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		WorkOrder:     "WO-500",
		ClientID:      env.clientID,
		EquipmentType: "Regulator",
		Model:         "PSS-3000",
		Manufacturer:  "Drager",
		SerialNumber:  "SN-1001",
		FaultType:     "AIR LEAK",
	}
}

func TestCreateEquipment(t *testing.T) {
	env := newEquipmentTestEnv(t)

	payload := basePayload(env)
	payload.WorkCenterID = null.StringFrom(env.workCenterID)

	created, err := env.svc.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(entities.StatusPending), created.Status)
	// Display names are denormalized at intake.
	assert.Equal(t, "Minera Norte", created.ClientName)
	assert.Equal(t, "Faena Sur", created.WorkCenterName.String)
	assert.False(t, created.PurchaseOrderNumber.Valid)
}

func TestCreateEquipmentUnknownClient(t *testing.T) {
	env := newEquipmentTestEnv(t)

	payload := basePayload(env)
	payload.ClientID = uuid.NewString()

	_, err := env.svc.CreateEquipment(context.Background(), payload)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateEquipmentForeignWorkCenter(t *testing.T) {
	env := newEquipmentTestEnv(t)

	// Register a work center owned by some other client.
	foreignWorkCenter := uuid.NewString()
	clientRepo := env.svc.clientRepository.(*fakeClientRepository)
	require.NoError(t, clientRepo.AddWorkCenter(context.Background(), &entities.WorkCenter{
		ID: foreignWorkCenter, ClientID: uuid.NewString(), Name: "Ajena",
	}))

	payload := basePayload(env)
	payload.WorkCenterID = null.StringFrom(foreignWorkCenter)

	_, err := env.svc.CreateEquipment(context.Background(), payload)

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateEquipmentSensorRule(t *testing.T) {
	env := newEquipmentTestEnv(t)

	// Gas detector with a sensor fault and no sensor data is rejected.
	payload := basePayload(env)
	payload.EquipmentType = entities.EquipmentTypeGasDetector
	payload.FaultType = "SENSOR FAILURE"

	_, err := env.svc.CreateEquipment(context.Background(), payload)
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)

	// With sensor serial and install date it goes through.
	payload.SensorSerial = null.StringFrom("SEN-42")
	payload.SensorInstalledAt = null.TimeFrom(time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC))

	created, err := env.svc.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "SEN-42", created.SensorSerial.String)
	assert.True(t, created.SensorInstalledAt.Valid)
}

func TestCreateEquipmentDropsSensorFieldsOutsideRule(t *testing.T) {
	env := newEquipmentTestEnv(t)

	// A regulator never stores sensor data, even when supplied.
	payload := basePayload(env)
	payload.SensorSerial = null.StringFrom("SEN-99")
	payload.SensorInstalledAt = null.TimeFrom(time.Now())

	created, err := env.svc.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, created.SensorSerial.Valid)
	assert.False(t, created.SensorInstalledAt.Valid)
}

func TestGetEquipmentStatusFilter(t *testing.T) {
	env := newEquipmentTestEnv(t)

	pending := seedEquipment(t, env.repo, entities.StatusPending, "")
	seedEquipment(t, env.repo, entities.StatusShipped, "PO-F")

	all, err := env.svc.GetEquipment(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pendingOnly, err := env.svc.GetEquipment(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, pendingOnly, 1)
	assert.Equal(t, pending, pendingOnly[0].ID)

	var validation *apperrors.ValidationError
	_, err = env.svc.GetEquipment(context.Background(), "broken")
	require.ErrorAs(t, err, &validation)
}
