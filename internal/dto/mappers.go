package dto

import (
	"github.com/aarondl/null/v8"

	"repair-tracking/internal/entities"
	"repair-tracking/pkg/utils"
)

func EquipmentToDTO(e entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:                  e.ID,
		WorkOrder:           e.WorkOrder,
		ClientID:            e.ClientID,
		ClientName:          e.ClientName,
		WorkCenterID:        null.StringFromPtr(e.WorkCenterID),
		WorkCenterName:      null.StringFromPtr(e.WorkCenterName),
		EquipmentType:       e.EquipmentType,
		Model:               e.Model,
		AssetTag:            null.StringFromPtr(e.AssetTag),
		Manufacturer:        e.Manufacturer,
		SerialNumber:        e.SerialNumber,
		ManufactureDate:     null.TimeFromPtr(e.ManufactureDate),
		FaultType:           e.FaultType,
		Notes:               null.StringFromPtr(e.Notes),
		SensorSerial:        null.StringFromPtr(e.SensorSerial),
		SensorInstalledAt:   null.TimeFromPtr(e.SensorInstalledAt),
		Status:              e.Status.String(),
		PurchaseOrderNumber: null.StringFromPtr(e.PurchaseOrderNumber),
		ManufacturerReceipt: null.StringFromPtr(e.ManufacturerReceipt),
		Warranty:            null.BoolFromPtr(e.Warranty),
		QuoteNumber:         null.StringFromPtr(e.QuoteNumber),
		QuoteAccepted:       null.BoolFromPtr(e.QuoteAccepted),
		CreatedAt:           utils.FormatTime(e.CreatedAt),
		UpdatedAt:           utils.FormatTime(e.UpdatedAt),
	}
}

func EquipmentListToDTO(list []entities.Equipment) []EquipmentDTO {
	result := make([]EquipmentDTO, 0, len(list))
	for _, e := range list {
		result = append(result, EquipmentToDTO(e))
	}
	return result
}

func ClientToDTO(c entities.Client) ClientDTO {
	centers := make([]WorkCenterDTO, 0, len(c.WorkCenters))
	for _, wc := range c.WorkCenters {
		centers = append(centers, WorkCenterToDTO(wc))
	}
	return ClientDTO{
		ID:          c.ID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Phone:       c.Phone,
		Email:       null.StringFromPtr(c.Email),
		CreatedAt:   utils.FormatTime(c.CreatedAt),
		WorkCenters: centers,
	}
}

func WorkCenterToDTO(wc entities.WorkCenter) WorkCenterDTO {
	return WorkCenterDTO{
		ID:       wc.ID,
		ClientID: wc.ClientID,
		Name:     wc.Name,
		Address:  wc.Address,
	}
}

func ManufacturerToDTO(m entities.Manufacturer) ManufacturerDTO {
	return ManufacturerDTO{ID: m.ID, Name: m.Name}
}

func ModelToDTO(m entities.Model) ModelDTO {
	return ModelDTO{ID: m.ID, Name: m.Name, EquipmentType: m.EquipmentType}
}

func FaultTypeToDTO(ft entities.FaultType) FaultTypeDTO {
	return FaultTypeDTO{ID: ft.ID, Name: ft.Name, RequiresSensor: ft.RequiresSensor}
}

func ActivePurchaseOrderToDTO(o entities.ActivePurchaseOrder) ActivePurchaseOrderDTO {
	return ActivePurchaseOrderDTO{
		OrderNumber:    o.OrderNumber,
		EquipmentCount: o.EquipmentCount,
		FirstAssigned:  utils.FormatTime(o.FirstAssigned),
	}
}
