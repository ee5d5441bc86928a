package calculator

import (
	"math"

	"designopt/model"
)

// 冷却液/空气换热器参数
type DualHX11Params struct {
	Coolant  model.FluidProperties
	Air      model.FluidProperties
	Material model.Material

	HeatLoad float64 // W

	MaxLayers          float64
	MaxAirVelocity     float64 // m/s
	MaxCoolantVelocity float64 // m/s

	WeightScale   float64
	PressureScale float64

	Bounds []model.Bound
}

// DualHX11 is the coolant/air exchanger with eleven design variables:
//
//	[coolant channel width, coolant channel height, air fin height,
//	 air fin spacing, fin thickness, core length, core width, layers,
//	 channels, coolant velocity, air velocity]
//
// Both sides use Dittus-Boelter. The heat duty is the UA·Q_total proxy and
// is kept separate from the ε-NTU treatment of DualHX18.
type DualHX11 struct {
	p DualHX11Params
}

func NewDualHX11(p DualHX11Params) *DualHX11 {
	return &DualHX11{p: p}
}

func (d *DualHX11) Name() string { return NameDualHX11 }
func (d *DualHX11) Bounds() []model.Bound { return d.p.Bounds }
func (d *DualHX11) NumObjectives() int { return 3 }
func (d *DualHX11) NumConstraints() int { return 3 }

// 单侧通道
type channelSide struct {
	re     float64
	h      float64
	hA     float64
	dp     float64
	volume float64
}

func channel(f model.FluidProperties, spacing, height, velocity, wetted float64) channelSide {
	dh := HydraulicDiameter(spacing, height)
	re := Reynolds(f.Density, velocity, dh, f.Viscosity)
	h := DittusBoelter(re, f.Prandtl, f.ThermalConductivity, dh)
	return channelSide{
		re: re,
		h:  h,
		hA: h * wetted,
		dp: 0.5 * f.Density * velocity * velocity / dh,
	}
}

func (d *DualHX11) Evaluate(x []float64) model.Result {
	return d.EvaluateLoad(x, d.p.HeatLoad)
}

// EvaluateLoad evaluates x against an explicit total heat load.
func (d *DualHX11) EvaluateLoad(x []float64, heatLoad float64) model.Result {
	var (
		chWidth, chHeight     = x[0], x[1]
		finHeight, finSpacing = x[2], x[3]
		thickness             = x[4]
		length, width         = x[5], x[6]
		layers                = math.Round(x[7])
		channels              = math.Round(x[8])
		vCoolant, vAir        = x[9], x[10]
	)
	airFins := width / (finSpacing + thickness)

	coolant := channel(d.p.Coolant, chWidth, chHeight, vCoolant,
		2*(chWidth+chHeight)*length*channels*layers)
	coolant.volume = FinVolume(length, chHeight, thickness, channels, layers)
	air := channel(d.p.Air, finSpacing, finHeight, vAir,
		2*(finHeight+finSpacing)*length*airFins*layers)
	air.volume = FinVolume(length, finHeight, thickness, airFins, layers)

	q := SeriesUA(coolant.hA, air.hA) * heatLoad
	dp := coolant.dp + air.dp
	weight := (coolant.volume + air.volume) * d.p.Material.Density

	return model.Result{
		Objectives: []float64{weight / d.p.WeightScale, -q, dp / d.p.PressureScale},
		Constraints: []float64{
			layers - d.p.MaxLayers,
			vAir - d.p.MaxAirVelocity,
			vCoolant - d.p.MaxCoolantVelocity,
		},
	}
}
