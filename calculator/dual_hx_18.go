package calculator

import (
	"math"

	"designopt/model"
)

// 每侧设计变量个数
const finSideVars = 9

// 双侧锯齿翅片换热器参数
type DualHX18Params struct {
	Hot      model.FluidProperties
	Cold     model.FluidProperties
	Material model.Material

	HeatLoad  float64 // 总热负荷, W
	HotInlet  float64 // °C
	ColdInlet float64 // °C

	MaxWeight       float64 // kg
	MaxPressureDrop float64 // Pa

	// 目标归一化除数
	WeightScale   float64
	PressureScale float64

	Bounds []model.Bound
}

// DualHX18 is the counterflow offset-strip-fin exchanger with nine design
// variables per side: [h, s, t, l, L, W, channels, layers, velocity], hot side
// first. It uses the Manglik-Bergles j/f correlations and the counterflow
// ε-NTU relation.
type DualHX18 struct {
	p DualHX18Params
}

func NewDualHX18(p DualHX18Params) *DualHX18 {
	return &DualHX18{p: p}
}

func (d *DualHX18) Name() string { return NameDualHX18 }
func (d *DualHX18) Bounds() []model.Bound { return d.p.Bounds }
func (d *DualHX18) NumObjectives() int { return 3 }
func (d *DualHX18) NumConstraints() int { return 3 }

// 单侧几何
type finSide struct {
	height, spacing, thickness, strip float64
	length, width                     float64
	channels, layers                  float64
	velocity                          float64
}

func newFinSide(x []float64) finSide {
	return finSide{
		height:    x[0],
		spacing:   x[1],
		thickness: x[2],
		strip:     x[3],
		length:    x[4],
		width:     x[5],
		channels:  math.Round(x[6]),
		layers:    math.Round(x[7]),
		velocity:  x[8],
	}
}

// 单侧性能
type sidePerf struct {
	re       float64
	h        float64
	hA       float64
	capacity float64 // W/K
	dp       float64
	volume   float64
}

func (fs finSide) passages() float64 {
	return fs.width / (fs.spacing + fs.thickness) * fs.channels * fs.layers
}

func (fs finSide) perf(f model.FluidProperties) sidePerf {
	dh := OffsetStripHydraulicDiameter(fs.spacing, fs.height, fs.thickness, fs.strip)
	re := Reynolds(f.Density, fs.velocity, dh, f.Viscosity)
	j, fanning := ManglikBergles(re, fs.spacing, fs.height, fs.thickness, fs.strip)
	h := j * re * f.ThermalConductivity / dh

	n := fs.passages()
	area := 2 * (fs.height + fs.spacing) * fs.length * n
	freeArea := fs.spacing * fs.height * n

	return sidePerf{
		re:       re,
		h:        h,
		hA:       h * area,
		capacity: f.Density * fs.velocity * freeArea * f.SpecificHeat,
		dp:       DarcyWeisbach(4*fanning, fs.length, dh, f.Density, fs.velocity),
		volume:   FinVolume(fs.length, fs.width, fs.thickness, fs.channels, fs.layers),
	}
}

func (d *DualHX18) Evaluate(x []float64) model.Result {
	return d.EvaluateLoad(x, d.p.HeatLoad)
}

// EvaluateLoad evaluates x against an explicit total heat load.
func (d *DualHX18) EvaluateLoad(x []float64, heatLoad float64) model.Result {
	hot := newFinSide(x[:finSideVars]).perf(d.p.Hot)
	cold := newFinSide(x[finSideVars : 2*finSideVars]).perf(d.p.Cold)

	ua := SeriesUA(hot.hA, cold.hA)
	cMin := math.Min(hot.capacity, cold.capacity)
	cMax := math.Max(hot.capacity, cold.capacity)
	eff := EffectivenessCounterflow(NTU(ua, cMin), cMin/cMax)
	q := eff * cMin * (d.p.HotInlet - d.p.ColdInlet)

	dp := hot.dp + cold.dp
	weight := (hot.volume + cold.volume) * d.p.Material.Density

	return model.Result{
		Objectives: []float64{weight / d.p.WeightScale, -q, dp / d.p.PressureScale},
		Constraints: []float64{
			weight - d.p.MaxWeight,
			dp - d.p.MaxPressureDrop,
			q - heatLoad,
		},
	}
}
