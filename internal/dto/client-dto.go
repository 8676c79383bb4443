package dto

import "github.com/aarondl/null/v8"

type CreateClientDTO struct {
	Name  string      `json:"name" validate:"required"`
	TaxID string      `json:"tax_id" validate:"required"`
	Phone string      `json:"phone" validate:"required"`
	Email null.String `json:"email" validate:"omitempty"`

	WorkCenters []CreateWorkCenterDTO `json:"work_centers" validate:"omitempty,dive"`
}

type UpdateClientDTO struct {
	Name  *string     `json:"name,omitempty" validate:"omitempty"`
	TaxID *string     `json:"tax_id,omitempty" validate:"omitempty"`
	Phone *string     `json:"phone,omitempty" validate:"omitempty"`
	Email null.String `json:"email"`
}

type CreateWorkCenterDTO struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

type WorkCenterDTO struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type ClientDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	TaxID     string      `json:"tax_id"`
	Phone     string      `json:"phone"`
	Email     null.String `json:"email"`
	CreatedAt string      `json:"created_at"`

	WorkCenters []WorkCenterDTO `json:"work_centers"`
}
