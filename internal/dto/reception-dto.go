package dto

type ReceiveEquipmentDTO struct {
	EquipmentIDs []string `json:"equipment_ids" validate:"required,min=1,dive,uuid4"`
}

type ReceiveEquipmentResultDTO struct {
	ReceivedCount int64 `json:"received_count"`
}
