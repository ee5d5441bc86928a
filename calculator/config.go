package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"designopt/fluid"
	"designopt/model"
)

type Config struct {
	LogLevel   string
	Addr       string
	Samples    int
	MaxSamples int

	Linkage  LinkageParams
	SingleHX SingleHXParams
	DualHX18 DualHX18Params
	DualHX11 DualHX11Params
}

// LoadConfig reads an ini file. Keys that are absent keep their defaults.
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := loadCfg(file)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":    path,
		"addr":    cfg.Addr,
		"samples": cfg.Samples,
	}).Info("配置加载完成")
	return cfg, nil
}

// DefaultConfig is the configuration of an empty ini file.
func DefaultConfig() *Config {
	cfg, err := loadCfg(ini.Empty())
	if err != nil {
		// the built-in catalog names always resolve
		panic(err)
	}
	return cfg
}

func loadCfg(file *ini.File) (*Config, error) {
	cfg := &Config{
		LogLevel:   file.Section("log").Key("level").MustString("info"),
		Addr:       file.Section("server").Key("addr").MustString(":9000"),
		Samples:    file.Section("optimizer").Key("samples").MustInt(2000),
		MaxSamples: file.Section("optimizer").Key("max_samples").MustInt(100000),
	}
	if cfg.MaxSamples <= 0 {
		return nil, fmt.Errorf("%w: [optimizer] max_samples = %d must be > 0", ErrInvalidInput, cfg.MaxSamples)
	}
	if err := cfg.CheckSamples(cfg.Samples); err != nil {
		return nil, fmt.Errorf("[optimizer] samples: %w", err)
	}

	sec := file.Section("linkage")
	cfg.Linkage = LinkageParams{
		L1:          sec.Key("l1").MustFloat64(215),
		PivotOffset: sec.Key("pivot_offset").MustFloat64(77),
		Angle1:      sec.Key("angle1").MustFloat64(90),
		Angle2:      sec.Key("angle2").MustFloat64(0),
		MinLength:   sec.Key("min_length").MustFloat64(20),
		MaxLength:   sec.Key("max_length").MustFloat64(400),
	}
	if err := checkPositive("linkage", param{"l1", cfg.Linkage.L1}); err != nil {
		return nil, err
	}

	if err := loadSingleHX(file, cfg); err != nil {
		return nil, err
	}
	if err := loadDualHX18(file, cfg); err != nil {
		return nil, err
	}
	if err := loadDualHX11(file, cfg); err != nil {
		return nil, err
	}

	for _, c := range NewCalculators(cfg) {
		if err := CheckBounds(c.Bounds()); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return cfg, nil
}

func loadSingleHX(file *ini.File, cfg *Config) error {
	sec := file.Section("single_hx")
	hot, err := loadFluid(file, sec.Key("hot_fluid").MustString(fluid.Oil))
	if err != nil {
		return err
	}
	cold, err := loadFluid(file, sec.Key("cold_fluid").MustString(fluid.Air))
	if err != nil {
		return err
	}
	material, err := fluid.NewMaterial(sec.Key("material").MustString(fluid.Aluminium))
	if err != nil {
		return err
	}
	cfg.SingleHX = SingleHXParams{
		Hot:            hot,
		Cold:           cold,
		Material:       material,
		HotMassFlow:    sec.Key("hot_mass_flow").MustFloat64(0.3),
		ColdMassFlow:   sec.Key("cold_mass_flow").MustFloat64(0.5),
		Width:          sec.Key("width").MustFloat64(0.3),
		Length:         sec.Key("length").MustFloat64(0.5),
		Rows:           sec.Key("rows").MustFloat64(10),
		Fouling:        sec.Key("fouling").MustFloat64(0.0002),
		PumpEfficiency: sec.Key("pump_efficiency").MustFloat64(0.7),
		RequiredHeat:   sec.Key("required_heat").MustFloat64(4000),
		HotIn:          sec.Key("hot_in").MustFloat64(90),
		HotOut:         sec.Key("hot_out").MustFloat64(60),
		ColdIn:         sec.Key("cold_in").MustFloat64(25),
		ColdOut:        sec.Key("cold_out").MustFloat64(45),
		NuC:            sec.Key("nu_c").MustFloat64(0.23),
		NuM:            sec.Key("nu_m").MustFloat64(0.8),
		NuN:            sec.Key("nu_n").MustFloat64(0.33),
		Bounds:         loadBounds(sec, singleHXBounds()),
	}
	p := cfg.SingleHX
	return checkPositive("single_hx",
		param{"hot_mass_flow", p.HotMassFlow},
		param{"cold_mass_flow", p.ColdMassFlow},
		param{"width", p.Width},
		param{"length", p.Length},
		param{"rows", p.Rows},
		param{"pump_efficiency", p.PumpEfficiency},
		param{"hot_in - cold_out", p.HotIn - p.ColdOut},
		param{"hot_out - cold_in", p.HotOut - p.ColdIn},
	)
}

func loadDualHX18(file *ini.File, cfg *Config) error {
	sec := file.Section("dual_hx_18")
	hot, err := loadFluid(file, sec.Key("hot_fluid").MustString(fluid.Coolant))
	if err != nil {
		return err
	}
	cold, err := loadFluid(file, sec.Key("cold_fluid").MustString(fluid.Air))
	if err != nil {
		return err
	}
	material, err := fluid.NewMaterial(sec.Key("material").MustString(fluid.Aluminium))
	if err != nil {
		return err
	}
	cfg.DualHX18 = DualHX18Params{
		Hot:             hot,
		Cold:            cold,
		Material:        material,
		HeatLoad:        sec.Key("heat_load").MustFloat64(3000),
		HotInlet:        sec.Key("hot_inlet").MustFloat64(50),
		ColdInlet:       sec.Key("cold_inlet").MustFloat64(20),
		MaxWeight:       sec.Key("max_weight").MustFloat64(20),
		MaxPressureDrop: sec.Key("max_pressure_drop").MustFloat64(250),
		WeightScale:     sec.Key("weight_scale").MustFloat64(1),
		PressureScale:   sec.Key("pressure_scale").MustFloat64(1),
		Bounds:          loadBounds(sec, dualHX18Bounds()),
	}
	return checkPositive("dual_hx_18",
		param{"weight_scale", cfg.DualHX18.WeightScale},
		param{"pressure_scale", cfg.DualHX18.PressureScale},
	)
}

func loadDualHX11(file *ini.File, cfg *Config) error {
	sec := file.Section("dual_hx_11")
	coolant, err := loadFluid(file, sec.Key("coolant").MustString(fluid.Coolant))
	if err != nil {
		return err
	}
	air, err := loadFluid(file, sec.Key("air").MustString(fluid.Air))
	if err != nil {
		return err
	}
	material, err := fluid.NewMaterial(sec.Key("material").MustString(fluid.Aluminium))
	if err != nil {
		return err
	}
	cfg.DualHX11 = DualHX11Params{
		Coolant:            coolant,
		Air:                air,
		Material:           material,
		HeatLoad:           sec.Key("heat_load").MustFloat64(3000),
		MaxLayers:          sec.Key("max_layers").MustFloat64(20),
		MaxAirVelocity:     sec.Key("max_air_velocity").MustFloat64(15),
		MaxCoolantVelocity: sec.Key("max_coolant_velocity").MustFloat64(2),
		WeightScale:        sec.Key("weight_scale").MustFloat64(1),
		PressureScale:      sec.Key("pressure_scale").MustFloat64(1),
		Bounds:             loadBounds(sec, dualHX11Bounds()),
	}
	return checkPositive("dual_hx_11",
		param{"weight_scale", cfg.DualHX11.WeightScale},
		param{"pressure_scale", cfg.DualHX11.PressureScale},
	)
}

// 工质物性，可在 [fluid.<name>] 段覆盖
func loadFluid(file *ini.File, name string) (model.FluidProperties, error) {
	f, err := fluid.NewFluid(name)
	if err != nil {
		return f, err
	}
	sec := file.Section("fluid." + f.Name)
	f.Density = sec.Key("density").MustFloat64(f.Density)
	f.Viscosity = sec.Key("viscosity").MustFloat64(f.Viscosity)
	f.SpecificHeat = sec.Key("specific_heat").MustFloat64(f.SpecificHeat)
	f.ThermalConductivity = sec.Key("thermal_conductivity").MustFloat64(f.ThermalConductivity)
	f.Prandtl = sec.Key("prandtl").MustFloat64(f.Prandtl)
	return f, checkPositive(sec.Name(),
		param{"density", f.Density},
		param{"viscosity", f.Viscosity},
		param{"specific_heat", f.SpecificHeat},
		param{"thermal_conductivity", f.ThermalConductivity},
		param{"prandtl", f.Prandtl},
	)
}

// 上下界，键名为 <name>_min / <name>_max
func loadBounds(sec *ini.Section, defaults []model.Bound) []model.Bound {
	bounds := make([]model.Bound, len(defaults))
	for i, b := range defaults {
		b.Lower = sec.Key(b.Name + "_min").MustFloat64(b.Lower)
		b.Upper = sec.Key(b.Name + "_max").MustFloat64(b.Upper)
		bounds[i] = b
	}
	return bounds
}

type param struct {
	name  string
	value float64
}

// 作分母或取对数的固定参数必须为正
func checkPositive(section string, params ...param) error {
	for _, p := range params {
		if !(p.value > 0) {
			return fmt.Errorf("%w: [%s] %s = %g must be > 0", ErrInvalidInput, section, p.name, p.value)
		}
	}
	return nil
}
