package dto

type CreateManufacturerDTO struct {
	Name string `json:"name" validate:"required"`
}

type ManufacturerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateModelDTO struct {
	Name          string `json:"name" validate:"required"`
	EquipmentType string `json:"equipment_type" validate:"required,equipment_type"`
}

type ModelDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EquipmentType string `json:"equipment_type"`
}

type CreateFaultTypeDTO struct {
	Name           string `json:"name" validate:"required"`
	RequiresSensor bool   `json:"requires_sensor"`
}

type FaultTypeDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RequiresSensor bool   `json:"requires_sensor"`
}
