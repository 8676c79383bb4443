package dto

import "github.com/aarondl/null/v8"

type AssignPurchaseOrderDTO struct {
	OrderNumber  string   `json:"order_number" validate:"required"`
	EquipmentIDs []string `json:"equipment_ids" validate:"required,min=1,dive,uuid4"`
}

type AssignPurchaseOrderResultDTO struct {
	OrderNumber   string `json:"order_number"`
	AssignedCount int64  `json:"assigned_count"`
}

type ManufacturerResponseDTO struct {
	EquipmentIDs  []string    `json:"equipment_ids" validate:"required,min=1,dive,uuid4"`
	ReceiptNumber string      `json:"receipt_number" validate:"required"`
	UnderWarranty bool        `json:"under_warranty"`
	QuoteNumber   null.String `json:"quote_number"`
	QuoteAccepted null.Bool   `json:"quote_accepted"`
}

type ManufacturerResponseResultDTO struct {
	OrderNumber  string `json:"order_number"`
	UpdatedCount int64  `json:"updated_count"`
}

type ActivePurchaseOrderDTO struct {
	OrderNumber    string `json:"order_number"`
	EquipmentCount int64  `json:"equipment_count"`
	FirstAssigned  string `json:"first_assigned"`
}
