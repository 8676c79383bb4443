package entities

import "time"

// ActivePurchaseOrder is a derived grouping over equipment records, not a
// stored row. An order number is active while at least one record under it
// has not reached StatusReceived.
type ActivePurchaseOrder struct {
	OrderNumber    string    `json:"order_number"`
	EquipmentCount int64     `json:"equipment_count"`
	FirstAssigned  time.Time `json:"first_assigned"`
}

// TransitionTarget is the locked snapshot of one record examined during a
// batch transition: just enough state to verify the preconditions.
type TransitionTarget struct {
	ID                  string
	Status              Status
	PurchaseOrderNumber *string
}
