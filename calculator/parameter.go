package calculator

import (
	"fmt"
	"sort"

	"designopt/model"
)

// 初始化各模型的设计变量上下界

func singleHXBounds() []model.Bound {
	return []model.Bound{
		{Name: "fin_height", Unit: "m", Lower: 0.005, Upper: 0.02, Positive: true},
		{Name: "fin_spacing", Unit: "m", Lower: 0.001, Upper: 0.006, Positive: true},
		{Name: "fin_thickness", Unit: "m", Lower: 0.0001, Upper: 0.0005, Positive: true},
	}
}

// 每侧 9 个变量，热侧在前
func finSideBounds(prefix string, vMin, vMax float64) []model.Bound {
	return []model.Bound{
		{Name: prefix + "_fin_height", Unit: "m", Lower: 0.002, Upper: 0.01, Positive: true},
		{Name: prefix + "_fin_spacing", Unit: "m", Lower: 0.001, Upper: 0.004, Positive: true},
		{Name: prefix + "_fin_thickness", Unit: "m", Lower: 0.0001, Upper: 0.0004, Positive: true},
		{Name: prefix + "_strip_length", Unit: "m", Lower: 0.002, Upper: 0.01, Positive: true},
		{Name: prefix + "_flow_length", Unit: "m", Lower: 0.1, Upper: 0.5, Positive: true},
		{Name: prefix + "_width", Unit: "m", Lower: 0.05, Upper: 0.3, Positive: true},
		{Name: prefix + "_channels", Lower: 1, Upper: 40, Positive: true, Integer: true},
		{Name: prefix + "_layers", Lower: 1, Upper: 20, Positive: true, Integer: true},
		{Name: prefix + "_velocity", Unit: "m/s", Lower: vMin, Upper: vMax, Positive: true},
	}
}

func dualHX18Bounds() []model.Bound {
	return append(finSideBounds("hot", 0.1, 2), finSideBounds("cold", 1, 15)...)
}

func dualHX11Bounds() []model.Bound {
	return []model.Bound{
		{Name: "coolant_channel_width", Unit: "m", Lower: 0.001, Upper: 0.005, Positive: true},
		{Name: "coolant_channel_height", Unit: "m", Lower: 0.001, Upper: 0.005, Positive: true},
		{Name: "air_fin_height", Unit: "m", Lower: 0.004, Upper: 0.012, Positive: true},
		{Name: "air_fin_spacing", Unit: "m", Lower: 0.001, Upper: 0.004, Positive: true},
		{Name: "fin_thickness", Unit: "m", Lower: 0.0001, Upper: 0.0003, Positive: true},
		{Name: "core_length", Unit: "m", Lower: 0.1, Upper: 0.6, Positive: true},
		{Name: "core_width", Unit: "m", Lower: 0.1, Upper: 0.6, Positive: true},
		{Name: "layers", Lower: 1, Upper: 30, Positive: true, Integer: true},
		{Name: "channels", Lower: 1, Upper: 50, Positive: true, Integer: true},
		{Name: "coolant_velocity", Unit: "m/s", Lower: 0.1, Upper: 3, Positive: true},
		{Name: "air_velocity", Unit: "m/s", Lower: 1, Upper: 20, Positive: true},
	}
}

// NewCalculators builds every model from cfg.
func NewCalculators(cfg *Config) []Calculator {
	return []Calculator{
		NewLinkage(cfg.Linkage),
		NewSingleHX(cfg.SingleHX),
		NewDualHX18(cfg.DualHX18),
		NewDualHX11(cfg.DualHX11),
	}
}

// NewCalculator builds the named model.
func NewCalculator(name string, cfg *Config) (Calculator, error) {
	for _, c := range NewCalculators(cfg) {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownModel, name, Names())
}

// Names lists the model names in sorted order.
func Names() []string {
	names := []string{NameLinkage, NameSingleHX, NameDualHX18, NameDualHX11}
	sort.Strings(names)
	return names
}

// Midpoint returns the centre of c's design space.
func Midpoint(c Calculator) []float64 {
	bounds := c.Bounds()
	x := make([]float64, len(bounds))
	for i, b := range bounds {
		x[i] = (b.Lower + b.Upper) / 2
	}
	return x
}
