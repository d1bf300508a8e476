// Package catalog holds the reference lists (roof types, panels, inverters,
// batteries) that project submissions and quotes must point at.
package catalog

import (
	"solar_portal/internal/infrastructure/config"
	"solar_portal/internal/usecase/interfaces"
)

type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Static is loaded once from configuration and read concurrently afterwards.
type Static struct {
	roofTypes []Item
	panels    []Item
	inverters []Item
	batteries []Item
	index     map[kind]map[string]struct{}
}

type kind int

const (
	roofKind kind = iota
	panelKind
	inverterKind
	batteryKind
)

var _ interfaces.ICatalog = (*Static)(nil)

func NewStatic(cfg config.CatalogConfig) *Static {
	s := &Static{
		roofTypes: toItems(cfg.RoofTypes),
		panels:    toItems(cfg.PanelModels),
		inverters: toItems(cfg.InverterModels),
		batteries: toItems(cfg.BatteryModels),
		index:     map[kind]map[string]struct{}{},
	}
	s.add(roofKind, s.roofTypes)
	s.add(panelKind, s.panels)
	s.add(inverterKind, s.inverters)
	s.add(batteryKind, s.batteries)
	return s
}

func (s *Static) RoofTypeExists(id string) bool      { return s.has(roofKind, id) }
func (s *Static) PanelModelExists(id string) bool    { return s.has(panelKind, id) }
func (s *Static) InverterModelExists(id string) bool { return s.has(inverterKind, id) }
func (s *Static) BatteryModelExists(id string) bool  { return s.has(batteryKind, id) }

// Listing is the catalog as served to clients building forms.
type Listing struct {
	RoofTypes      []Item `json:"roof_types"`
	PanelModels    []Item `json:"panel_models"`
	InverterModels []Item `json:"inverter_models"`
	BatteryModels  []Item `json:"battery_models"`
}

func (s *Static) Listing() Listing {
	return Listing{
		RoofTypes:      append([]Item(nil), s.roofTypes...),
		PanelModels:    append([]Item(nil), s.panels...),
		InverterModels: append([]Item(nil), s.inverters...),
		BatteryModels:  append([]Item(nil), s.batteries...),
	}
}

func (s *Static) add(k kind, items []Item) {
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		ids[it.ID] = struct{}{}
	}
	s.index[k] = ids
}

func (s *Static) has(k kind, id string) bool {
	_, ok := s.index[k][id]
	return ok
}

func toItems(in []config.CatalogItem) []Item {
	out := make([]Item, 0, len(in))
	for _, it := range in {
		if it.ID == "" {
			continue
		}
		out = append(out, Item{ID: it.ID, Name: it.Name})
	}
	return out
}
