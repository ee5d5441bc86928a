package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFluid(t *testing.T) {
	for _, name := range Names() {
		f, err := NewFluid(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name)
		assert.Greater(t, f.Density, 0.0)
		assert.Greater(t, f.Viscosity, 0.0)
		assert.Greater(t, f.ThermalConductivity, 0.0)
		assert.Greater(t, f.Prandtl, 0.0)
	}

	f, err := NewFluid("  AIR ")
	require.NoError(t, err)
	assert.Equal(t, Air, f.Name)

	_, err = NewFluid("mercury")
	assert.Error(t, err)
}

func TestNewMaterial(t *testing.T) {
	m, err := NewMaterial(Aluminium)
	require.NoError(t, err)
	assert.Equal(t, 2700.0, m.Density)

	_, err = NewMaterial("unobtainium")
	assert.Error(t, err)
}
