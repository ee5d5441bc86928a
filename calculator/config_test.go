package calculator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 215.0, cfg.Linkage.L1)
	assert.Equal(t, 77.0, cfg.Linkage.PivotOffset)
	assert.Equal(t, 0.23, cfg.SingleHX.NuC)
	assert.Equal(t, "oil", cfg.SingleHX.Hot.Name)
	assert.Equal(t, "coolant", cfg.DualHX18.Hot.Name)
	assert.Equal(t, 20.0, cfg.DualHX18.MaxWeight)
	assert.Equal(t, 250.0, cfg.DualHX18.MaxPressureDrop)
	assert.Len(t, cfg.DualHX18.Bounds, 18)
	assert.Len(t, cfg.DualHX11.Bounds, 11)
	assert.Len(t, cfg.SingleHX.Bounds, 3)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := LoadConfig("../conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[linkage]
l1 = 200

[fluid.air]
density = 1.0

[single_hx]
fin_height_max = 0.03
material = copper
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Linkage.L1)
	assert.Equal(t, 1.0, cfg.SingleHX.Cold.Density)
	assert.Equal(t, 1.0, cfg.DualHX18.Cold.Density)
	assert.Equal(t, 0.03, cfg.SingleHX.Bounds[0].Upper)
	assert.Equal(t, 0.005, cfg.SingleHX.Bounds[0].Lower)
	assert.Equal(t, 8960.0, cfg.SingleHX.Material.Density)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[single_hx]\nhot_fluid = mercury\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[dual_hx_11]\nmaterial = wood\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[single_hx]\nfin_spacing_min = 0\n"))
	assert.True(t, errors.Is(err, ErrInvalidInput), "%v", err)

	_, err = LoadConfig(writeConfig(t, "[linkage]\nmin_length = 500\n"))
	assert.True(t, errors.Is(err, ErrInvalidInput), "%v", err)
}

func TestLoadConfigCountBounds(t *testing.T) {
	// 0.3 would round to zero channels
	_, err := LoadConfig(writeConfig(t, "[dual_hx_18]\nhot_channels_min = 0.3\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = LoadConfig(writeConfig(t, "[dual_hx_11]\nlayers_min = 0.5\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	cfg, err := LoadConfig(writeConfig(t, "[dual_hx_18]\ncold_layers_min = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.DualHX18.Bounds[finSideVars+7].Lower)
}

func TestLoadConfigFixedParams(t *testing.T) {
	for _, content := range []string{
		"[single_hx]\ncold_mass_flow = 0\n",
		"[single_hx]\nhot_mass_flow = -0.3\n",
		"[single_hx]\npump_efficiency = 0\n",
		"[single_hx]\nrows = 0\n",
		"[single_hx]\nwidth = 0\n",
		"[single_hx]\ncold_out = 95\n",
		"[dual_hx_18]\nweight_scale = 0\n",
		"[dual_hx_11]\npressure_scale = 0\n",
		"[linkage]\nl1 = 0\n",
		"[fluid.air]\nviscosity = 0\n",
		"[optimizer]\nsamples = 0\n",
		"[optimizer]\nsamples = 500\nmax_samples = 100\n",
		"[optimizer]\nmax_samples = 0\n",
	} {
		_, err := LoadConfig(writeConfig(t, content))
		assert.ErrorIs(t, err, ErrInvalidInput, content)
	}
}

func TestCheckSamples(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100000, cfg.MaxSamples)
	assert.NoError(t, cfg.CheckSamples(1))
	assert.NoError(t, cfg.CheckSamples(cfg.MaxSamples))
	assert.ErrorIs(t, cfg.CheckSamples(0), ErrInvalidInput)
	assert.ErrorIs(t, cfg.CheckSamples(cfg.MaxSamples+1), ErrInvalidInput)
	assert.ErrorIs(t, cfg.CheckSamples(1<<60), ErrInvalidInput)
}
