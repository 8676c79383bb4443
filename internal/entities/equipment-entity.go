package entities

import (
	"time"
)

// Equipment is one tracked physical item moving through the repair workflow.
// It is created in StatusPending and only mutated through the batch
// transition operations; records are never deleted.
type Equipment struct {
	ID              string     `json:"id"`
	WorkOrder       string     `json:"work_order"`
	ClientID        string     `json:"client_id"`
	ClientName      string     `json:"client_name"`
	WorkCenterID    *string    `json:"work_center_id,omitempty"`
	WorkCenterName  *string    `json:"work_center_name,omitempty"`
	EquipmentType   string     `json:"equipment_type"`
	Model           string     `json:"model"`
	AssetTag        *string    `json:"asset_tag,omitempty"`
	Manufacturer    string     `json:"manufacturer"`
	SerialNumber    string     `json:"serial_number"`
	ManufactureDate *time.Time `json:"manufacture_date,omitempty"`
	FaultType       string     `json:"fault_type"`
	Notes           *string    `json:"notes,omitempty"`

	// Sensor fields, persisted only for gas detectors whose fault type
	// requires a sensor replacement.
	SensorSerial      *string    `json:"sensor_serial,omitempty"`
	SensorInstalledAt *time.Time `json:"sensor_installed_at,omitempty"`

	Status Status `json:"status"`

	// Immutable once set by purchase order assignment.
	PurchaseOrderNumber *string `json:"purchase_order_number,omitempty"`

	// Manufacturer response outcome. Quote fields are set only together
	// with Warranty == false.
	ManufacturerReceipt *string `json:"manufacturer_receipt,omitempty"`
	Warranty            *bool   `json:"warranty,omitempty"`
	QuoteNumber         *string `json:"quote_number,omitempty"`
	QuoteAccepted       *bool   `json:"quote_accepted,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequiresSensorFields reports whether the sensor cross-field rule applies to
// this combination of fault type and equipment type.
func RequiresSensorFields(equipmentType string, faultTypeRequiresSensor bool) bool {
	return faultTypeRequiresSensor && equipmentType == EquipmentTypeGasDetector
}
