package fluid

import (
	"fmt"
	"strings"

	"designopt/model"
)

// 工质名称
const (
	Air     = "air"
	Oil     = "oil"
	Coolant = "coolant"
	Water   = "water"
)

// 材料名称
const (
	Aluminium = "aluminium"
	Copper    = "copper"
	Steel     = "steel"
)

// 常温物性参数
var fluids = map[string]model.FluidProperties{
	Air: {
		Name:                Air,
		Density:             1.184,
		Viscosity:           1.849e-5,
		SpecificHeat:        1007,
		ThermalConductivity: 0.02551,
		Prandtl:             0.7296,
	},
	Oil: {
		Name:                Oil,
		Density:             860,
		Viscosity:           0.0288,
		SpecificHeat:        1950,
		ThermalConductivity: 0.138,
		Prandtl:             407,
	},
	// 50% 乙二醇水溶液
	Coolant: {
		Name:                Coolant,
		Density:             1065,
		Viscosity:           0.0021,
		SpecificHeat:        3400,
		ThermalConductivity: 0.40,
		Prandtl:             17.9,
	},
	Water: {
		Name:                Water,
		Density:             997,
		Viscosity:           8.9e-4,
		SpecificHeat:        4180,
		ThermalConductivity: 0.607,
		Prandtl:             6.13,
	},
}

var materials = map[string]model.Material{
	Aluminium: {Name: Aluminium, Density: 2700},
	Copper:    {Name: Copper, Density: 8960},
	Steel:     {Name: Steel, Density: 7850},
}

// NewFluid returns the catalog properties of the named fluid.
func NewFluid(name string) (model.FluidProperties, error) {
	f, ok := fluids[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.FluidProperties{}, fmt.Errorf("unknown fluid %q", name)
	}
	return f, nil
}

// NewMaterial returns the catalog density of the named fin material.
func NewMaterial(name string) (model.Material, error) {
	m, ok := materials[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.Material{}, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

// Names lists the catalog fluids.
func Names() []string {
	return []string{Air, Coolant, Oil, Water}
}
