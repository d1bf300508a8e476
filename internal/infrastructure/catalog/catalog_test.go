package catalog

import (
	"testing"

	"solar_portal/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	c := NewStatic(config.CatalogConfig{
		RoofTypes:      []config.CatalogItem{{ID: "roof-metal", Name: "Metal"}, {ID: ""}},
		PanelModels:    []config.CatalogItem{{ID: "panel-rec-alpha-405", Name: "REC Alpha 405"}},
		InverterModels: []config.CatalogItem{{ID: "inv-enphase-iq8", Name: "Enphase IQ8"}},
		BatteryModels:  []config.CatalogItem{{ID: "bat-powerwall-3", Name: "Powerwall 3"}},
	})

	assert.True(t, c.RoofTypeExists("roof-metal"))
	assert.False(t, c.RoofTypeExists("roof-tile"))
	assert.False(t, c.RoofTypeExists(""))
	assert.True(t, c.PanelModelExists("panel-rec-alpha-405"))
	assert.False(t, c.PanelModelExists("inv-enphase-iq8"))
	assert.True(t, c.InverterModelExists("inv-enphase-iq8"))
	assert.True(t, c.BatteryModelExists("bat-powerwall-3"))

	listing := c.Listing()
	assert.Len(t, listing.RoofTypes, 1)
	assert.Equal(t, "Powerwall 3", listing.BatteryModels[0].Name)
}
