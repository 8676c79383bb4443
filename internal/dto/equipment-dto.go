package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	WorkOrder       string      `json:"work_order" validate:"required"`
	ClientID        string      `json:"client_id" validate:"required,uuid4"`
	WorkCenterID    null.String `json:"work_center_id" validate:"omitempty"`
	EquipmentType   string      `json:"equipment_type" validate:"required,equipment_type"`
	Model           string      `json:"model" validate:"required"`
	AssetTag        null.String `json:"asset_tag"`
	Manufacturer    string      `json:"manufacturer" validate:"required"`
	SerialNumber    string      `json:"serial_number" validate:"required"`
	ManufactureDate null.Time   `json:"manufacture_date"`
	FaultType       string      `json:"fault_type" validate:"required"`
	Notes           null.String `json:"notes"`

	// Required when the fault type requires a sensor and the equipment
	// type is the gas detector; silently dropped otherwise.
	SensorSerial      null.String `json:"sensor_serial"`
	SensorInstalledAt null.Time   `json:"sensor_installed_at"`
}

type EquipmentDTO struct {
	ID              string      `json:"id"`
	WorkOrder       string      `json:"work_order"`
	ClientID        string      `json:"client_id"`
	ClientName      string      `json:"client_name"`
	WorkCenterID    null.String `json:"work_center_id"`
	WorkCenterName  null.String `json:"work_center_name"`
	EquipmentType   string      `json:"equipment_type"`
	Model           string      `json:"model"`
	AssetTag        null.String `json:"asset_tag"`
	Manufacturer    string      `json:"manufacturer"`
	SerialNumber    string      `json:"serial_number"`
	ManufactureDate null.Time   `json:"manufacture_date"`
	FaultType       string      `json:"fault_type"`
	Notes           null.String `json:"notes"`

	SensorSerial      null.String `json:"sensor_serial"`
	SensorInstalledAt null.Time   `json:"sensor_installed_at"`

	Status string `json:"status"`

	PurchaseOrderNumber null.String `json:"purchase_order_number"`
	ManufacturerReceipt null.String `json:"manufacturer_receipt"`
	Warranty            null.Bool   `json:"warranty"`
	QuoteNumber         null.String `json:"quote_number"`
	QuoteAccepted       null.Bool   `json:"quote_accepted"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
