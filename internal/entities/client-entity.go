package entities

import "time"

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	WorkCenters []WorkCenter `json:"work_centers"`
}

// WorkCenter is a client site equipment can be attributed to. A work center
// always belongs to exactly one client.
type WorkCenter struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}
