package interfaces

// ICatalog is the reference data for roof types and equipment models.
type ICatalog interface {
	RoofTypeExists(id string) bool
	PanelModelExists(id string) bool
	InverterModelExists(id string) bool
	BatteryModelExists(id string) bool
}
