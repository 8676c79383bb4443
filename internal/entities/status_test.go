package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	testCases := []struct {
		status Status
		next   Status
		ok     bool
	}{
		{StatusPending, StatusShipped, true},
		{StatusShipped, StatusAtManufacturer, true},
		{StatusAtManufacturer, StatusReceived, true},
		{StatusReceived, "", false},
		{Status("bogus"), "", false},
	}

	for _, tc := range testCases {
		next, ok := tc.status.Next()
		assert.Equal(t, tc.ok, ok, "status %q", tc.status)
		assert.Equal(t, tc.next, next, "status %q", tc.status)
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	// Only single forward steps are allowed.
	assert.True(t, StatusPending.CanTransitionTo(StatusShipped))
	assert.True(t, StatusShipped.CanTransitionTo(StatusAtManufacturer))
	assert.True(t, StatusAtManufacturer.CanTransitionTo(StatusReceived))

	// No skipping.
	assert.False(t, StatusPending.CanTransitionTo(StatusAtManufacturer))
	assert.False(t, StatusPending.CanTransitionTo(StatusReceived))
	assert.False(t, StatusShipped.CanTransitionTo(StatusReceived))

	// No going back.
	assert.False(t, StatusShipped.CanTransitionTo(StatusPending))
	assert.False(t, StatusAtManufacturer.CanTransitionTo(StatusShipped))
	assert.False(t, StatusReceived.CanTransitionTo(StatusAtManufacturer))

	// No self-loops.
	for _, s := range AllStatuses() {
		assert.False(t, s.CanTransitionTo(s), "status %q", s)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusReceived.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.False(t, StatusAtManufacturer.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	parsed, err := ParseStatus("at_manufacturer")
	assert.NoError(t, err)
	assert.Equal(t, StatusAtManufacturer, parsed)

	_, err = ParseStatus("in_repair")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestRequiresSensorFields(t *testing.T) {
	assert.True(t, RequiresSensorFields(EquipmentTypeGasDetector, true))
	assert.False(t, RequiresSensorFields(EquipmentTypeGasDetector, false))
	assert.False(t, RequiresSensorFields("Regulator", true))
	assert.False(t, RequiresSensorFields("Mask", false))
}
