package entities

import "fmt"

// Status is the workflow position of one tracked equipment record. It only
// ever advances forward: pending -> shipped -> at_manufacturer -> received.
type Status string

const (
	StatusPending        Status = "pending"
	StatusShipped        Status = "shipped"
	StatusAtManufacturer Status = "at_manufacturer"
	StatusReceived       Status = "received"
)

var statusOrder = map[Status]int{
	StatusPending:        0,
	StatusShipped:        1,
	StatusAtManufacturer: 2,
	StatusReceived:       3,
}

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// IsTerminal reports whether no further transition exists from s.
func (s Status) IsTerminal() bool { return s == StatusReceived }

// Next returns the single allowed successor of s. The second return value is
// false for the terminal status.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusShipped, true
	case StatusShipped:
		return StatusAtManufacturer, true
	case StatusAtManufacturer:
		return StatusReceived, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether target is the immediate successor of s.
// Stages are never skipped and transitions are never reversed.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown equipment status %q", s)
	}
	return status, nil
}

// AllStatuses returns the workflow statuses in transition order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusShipped, StatusAtManufacturer, StatusReceived}
}
