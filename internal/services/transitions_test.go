package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupeIDs([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, dedupeIDs(nil))
}

func TestCheckTransitionTargets(t *testing.T) {
	order := "PO-1"
	targets := []entities.TransitionTarget{
		{ID: "ok", Status: entities.StatusShipped, PurchaseOrderNumber: &order},
		{ID: "wrong-status", Status: entities.StatusPending},
		{ID: "wrong-order", Status: entities.StatusShipped},
	}

	err := checkTransitionTargets("test op", []string{"ok"}, targets, entities.StatusShipped, &order)
	assert.NoError(t, err)

	err = checkTransitionTargets("test op",
		[]string{"ok", "wrong-status", "wrong-order", "missing"},
		targets, entities.StatusShipped, &order)

	var precondition *apperrors.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, "test op", precondition.Operation)
	assert.Equal(t, []string{"wrong-status", "wrong-order", "missing"}, precondition.FailedIDs())
}
