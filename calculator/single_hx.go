package calculator

import (
	"math"

	"designopt/model"
)

// 单侧翅片换热器参数
type SingleHXParams struct {
	Hot      model.FluidProperties
	Cold     model.FluidProperties
	Material model.Material

	HotMassFlow  float64 // kg/s
	ColdMassFlow float64 // kg/s

	Width  float64 // 芯体宽度, m
	Length float64 // 流程长度, m
	Rows   float64 // 翅片排数

	Fouling        float64 // 污垢热阻, m2·K/W
	PumpEfficiency float64
	RequiredHeat   float64 // W

	// 进出口温度, °C
	HotIn   float64
	HotOut  float64
	ColdIn  float64
	ColdOut float64

	// Nu = C·Re^m·Pr^n
	NuC float64
	NuM float64
	NuN float64

	Bounds []model.Bound
}

// SingleHX evaluates [fin_height, fin_spacing, fin_thickness] with a Kays and
// London style Nusselt correlation. Objectives are [-Q, weight, power] and
// the only constraint is the heat-duty shortfall of a separate estimate.
type SingleHX struct {
	p SingleHXParams
}

func NewSingleHX(p SingleHXParams) *SingleHX {
	return &SingleHX{p: p}
}

func (s *SingleHX) Name() string { return NameSingleHX }
func (s *SingleHX) Bounds() []model.Bound { return s.p.Bounds }
func (s *SingleHX) NumObjectives() int { return 3 }
func (s *SingleHX) NumConstraints() int { return 1 }

// 单侧计算结果
type singleSide struct {
	velocity float64
	re       float64
	h        float64
}

func (s *SingleHX) side(f model.FluidProperties, massFlow, freeArea, dh float64) singleSide {
	v := massFlow / (f.Density * freeArea)
	re := Reynolds(f.Density, v, dh, f.Viscosity)
	nu := Nusselt(re, f.Prandtl, s.p.NuC, s.p.NuM, s.p.NuN)
	return singleSide{velocity: v, re: re, h: FilmCoefficient(nu, f.ThermalConductivity, dh)}
}

func (s *SingleHX) Evaluate(x []float64) model.Result {
	height, spacing, thickness := x[0], x[1], x[2]
	p := s.p

	channels := p.Width / (spacing + thickness)
	freeArea := channels * p.Rows * spacing * height
	dh := HydraulicDiameter(spacing, height)

	hot := s.side(p.Hot, p.HotMassFlow, freeArea, dh)
	cold := s.side(p.Cold, p.ColdMassFlow, freeArea, dh)
	u := OverallU(hot.h, cold.h, p.Fouling)
	cMin := math.Min(p.HotMassFlow*p.Hot.SpecificHeat, p.ColdMassFlow*p.Cold.SpecificHeat)

	area := 2 * (height + spacing) * p.Length * channels * p.Rows
	eff := EffectivenessUnmixed(NTU(u*area, cMin))
	q := eff * cMin * LMTD(p.HotIn-p.ColdOut, p.HotOut-p.ColdIn)

	// 压降与泵功按翅片（冷）侧计算
	dp := DarcyWeisbach(FrictionFactor(cold.re), p.Length, dh, p.Cold.Density, cold.velocity)
	if !(dp > 0) {
		dp = MinPressureDrop
	}
	power := PumpPower(dp, p.ColdMassFlow/p.Cold.Density, p.PumpEfficiency)
	if power == 0 {
		power = ZeroPowerFloor
	}

	weight := height * thickness * p.Length * channels * p.Rows * p.Material.Density

	return model.Result{
		Objectives:  []float64{-q, weight, power},
		Constraints: []float64{math.Max(0, p.RequiredHeat-s.estimateHeat(height, channels, u, cMin))},
	}
}

// estimateHeat is the constraint's own heat-duty proxy: one row of fin flanks
// against the inlet temperature spread. It is deliberately not the objective's Q.
func (s *SingleHX) estimateHeat(height, channels, u, cMin float64) float64 {
	area := 2 * height * s.p.Length * channels
	return EffectivenessUnmixed(NTU(u*area, cMin)) * cMin * (s.p.HotIn - s.p.ColdIn)
}
