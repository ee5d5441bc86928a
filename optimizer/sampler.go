package optimizer

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"designopt/calculator"
	"designopt/model"
)

const SamplerName = "halton"

var primes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// Sampler is a deterministic space-filling search: it evaluates a Halton
// sequence scaled into the bounds and keeps the non-dominated designs. It
// has no random state, so two runs over the same problem agree exactly.
type Sampler struct {
	Samples int
	// Skip drops the leading points of the sequence.
	Skip int
}

func NewSampler(samples int) *Sampler {
	return &Sampler{Samples: samples, Skip: 1}
}

func (s *Sampler) Name() string { return SamplerName }

func (s *Sampler) Optimize(ctx context.Context, p Problem) (ParetoSet, error) {
	bounds := p.Bounds()
	if len(bounds) > len(primes) {
		return nil, fmt.Errorf("%s: %d variables, sampler supports at most %d", p.Name(), len(bounds), len(primes))
	}
	if s.Samples <= 0 {
		return nil, fmt.Errorf("%s: sample count must be positive, got %d", p.Name(), s.Samples)
	}
	if err := calculator.CheckBounds(bounds); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	start := time.Now()
	log.WithFields(log.Fields{
		"problem":   p.Name(),
		"variables": len(bounds),
		"samples":   s.Samples,
	}).Info("开始采样寻优")

	population := make([]Individual, 0, s.Samples)
	for i := 0; i < s.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: stopped after %d samples: %w", p.Name(), i, err)
		}
		x := s.point(i, bounds)
		r := p.Evaluate(x)
		population = append(population, Individual{
			Variables:   x,
			Objectives:  r.Objectives,
			Constraints: r.Constraints,
		})
	}

	front, err := NonDominated(ctx, population)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}
	feasible := 0
	for _, ind := range front {
		if ind.Violation() == 0 {
			feasible++
		}
	}
	log.WithFields(log.Fields{
		"problem":  p.Name(),
		"front":    len(front),
		"feasible": feasible,
		"cost":     time.Since(start),
	}).Info("采样寻优完成")
	return front, nil
}

func (s *Sampler) point(i int, bounds []model.Bound) []float64 {
	x := make([]float64, len(bounds))
	for j, b := range bounds {
		x[j] = b.Lower + radicalInverse(i+s.Skip, primes[j])*(b.Upper-b.Lower)
	}
	return x
}

// radicalInverse mirrors the base-b digits of i about the radix point.
func radicalInverse(i, base int) float64 {
	f, r := 1.0, 0.0
	for i > 0 {
		f /= float64(base)
		r += f * float64(i%base)
		i /= base
	}
	return r
}
