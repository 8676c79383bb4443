package entities

// Manufacturer, Model and FaultType are simple reference catalogs. The
// workflow core only reads them at intake time; display names are
// denormalized onto the equipment record.

type Manufacturer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Model struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EquipmentType string `json:"equipment_type"`
}

type FaultType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RequiresSensor bool   `json:"requires_sensor"`
}
