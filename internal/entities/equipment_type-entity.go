package entities

// EquipmentTypeGasDetector is the only equipment type that carries a
// replaceable sensor; sensor fields are required at intake when the selected
// fault type demands one.
const EquipmentTypeGasDetector = "Portable Gas Detector"

// EquipmentTypeCatalog is the fixed set of equipment types handled by the
// workshop.
var EquipmentTypeCatalog = []string{
	"Backplate",
	"Mask",
	"Regulator",
	EquipmentTypeGasDetector,
	"SLS",
	"Control Module",
}

func IsCatalogEquipmentType(name string) bool {
	for _, t := range EquipmentTypeCatalog {
		if t == name {
			return true
		}
	}
	return false
}
