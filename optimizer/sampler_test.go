package optimizer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designopt/calculator"
)

// ZDT1 benchmark, true front f2 = 1 - sqrt(f1)
func zdt1(numVars int) *FuncProblem {
	lower := make([]float64, numVars)
	upper := make([]float64, numVars)
	for i := range upper {
		upper[i] = 1
	}
	return &FuncProblem{
		ProblemName: "ZDT1",
		Lower:       lower,
		Upper:       upper,
		Objective: func(x []float64) []float64 {
			g := 1.0
			for i := 1; i < len(x); i++ {
				g += 9.0 * x[i] / float64(len(x)-1)
			}
			return []float64{x[0], g * (1.0 - math.Sqrt(x[0]/g))}
		},
	}
}

func TestRadicalInverse(t *testing.T) {
	assert.Equal(t, 0.0, radicalInverse(0, 2))
	assert.Equal(t, 0.5, radicalInverse(1, 2))
	assert.Equal(t, 0.25, radicalInverse(2, 2))
	assert.Equal(t, 0.75, radicalInverse(3, 2))
	assert.InDelta(t, 1.0/3.0, radicalInverse(1, 3), 1e-15)
	assert.InDelta(t, 1.0/9.0, radicalInverse(3, 3), 1e-15)
}

func TestSamplerZDT1(t *testing.T) {
	p := zdt1(2)
	s := NewSampler(500)
	front, err := s.Optimize(context.Background(), p)
	require.NoError(t, err)
	require.NotEmpty(t, front)

	for i := range front {
		for j := range front {
			if i != j {
				assert.False(t, Dominates(front[i], front[j]))
			}
		}
		for k, v := range front[i].Variables {
			assert.GreaterOrEqual(t, v, p.Lower[k])
			assert.LessOrEqual(t, v, p.Upper[k])
		}
		assert.Empty(t, front[i].Constraints)
	}

	again, err := s.Optimize(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, front, again)
}

func TestSamplerCalculators(t *testing.T) {
	cfg := calculator.DefaultConfig()
	for _, c := range calculator.NewCalculators(cfg) {
		front, err := NewSampler(200).Optimize(context.Background(), c)
		require.NoError(t, err, c.Name())
		require.NotEmpty(t, front, c.Name())
		for _, ind := range front {
			assert.NoError(t, calculator.Validate(c, ind.Variables))
			assert.Len(t, ind.Objectives, c.NumObjectives())
			assert.Len(t, ind.Constraints, c.NumConstraints())
		}
	}
}

func TestSamplerErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSampler(10).Optimize(ctx, zdt1(3))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = NewSampler(0).Optimize(context.Background(), zdt1(3))
	assert.Error(t, err)

	_, err = NewSampler(10).Optimize(context.Background(), zdt1(len(primes)+1))
	assert.Error(t, err)

	bad := zdt1(2)
	bad.Lower[0] = 2
	_, err = NewSampler(10).Optimize(context.Background(), bad)
	assert.True(t, errors.Is(err, calculator.ErrInvalidInput))
}
