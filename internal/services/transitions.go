package services

import (
	"fmt"

	"repair-tracking/internal/entities"
	apperrors "repair-tracking/pkg/errors"
)

// dedupeIDs drops repeated ids while keeping request order, so a duplicated
// id cannot inflate the reported batch count.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// checkTransitionTargets verifies that every requested id was found, sits in
// the required source status, and (when orderNumber is non-nil) belongs to
// that purchase order. It returns nil only when the whole batch may proceed.
func checkTransitionTargets(operation string, ids []string, targets []entities.TransitionTarget, required entities.Status, orderNumber *string) error {
	byID := make(map[string]entities.TransitionTarget, len(targets))
	for _, t := range targets {
		byID[t.ID] = t
	}

	var failed []apperrors.FailedRecord
	for _, id := range ids {
		target, ok := byID[id]
		if !ok {
			failed = append(failed, apperrors.FailedRecord{ID: id, Reason: "not found"})
			continue
		}
		if target.Status != required {
			failed = append(failed, apperrors.FailedRecord{
				ID:     id,
				Reason: fmt.Sprintf("status is %q, expected %q", target.Status, required),
			})
			continue
		}
		if orderNumber != nil {
			if target.PurchaseOrderNumber == nil || *target.PurchaseOrderNumber != *orderNumber {
				failed = append(failed, apperrors.FailedRecord{
					ID:     id,
					Reason: fmt.Sprintf("not part of purchase order %q", *orderNumber),
				})
			}
		}
	}

	if len(failed) > 0 {
		return &apperrors.PreconditionError{Operation: operation, Failed: failed}
	}
	return nil
}
