package calculator

import (
	"errors"
	"fmt"
	"math"

	"designopt/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownModel = errors.New("unknown model")
)

// Validate checks a design vector against c's bounds. Evaluate never calls
// it; callers check once at the boundary.
func Validate(c Calculator, x []float64) error {
	bounds := c.Bounds()
	if len(x) != len(bounds) {
		return fmt.Errorf("%w: %s expects %d variables, got %d", ErrInvalidInput, c.Name(), len(bounds), len(x))
	}
	for i, v := range x {
		b := bounds[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, b.Name)
		}
		if v < b.Lower || v > b.Upper {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidInput, b.Name, v, b.Lower, b.Upper)
		}
	}
	return nil
}

// CheckSamples bounds an optimizer sample count by the configured maximum.
func (c *Config) CheckSamples(samples int) error {
	return checkSamples(samples, c.MaxSamples)
}

func checkSamples(samples, limit int) error {
	if samples <= 0 || samples > limit {
		return fmt.Errorf("%w: sample count %d outside [1, %d]", ErrInvalidInput, samples, limit)
	}
	return nil
}

// CheckBounds rejects inverted ranges, positive-only variables whose lower
// bound would let a denominator reach zero, and counts that could round to 0.
func CheckBounds(bounds []model.Bound) error {
	for _, b := range bounds {
		if b.Lower > b.Upper {
			return fmt.Errorf("%w: %s lower %g > upper %g", ErrInvalidInput, b.Name, b.Lower, b.Upper)
		}
		if b.Positive && b.Lower <= 0 {
			return fmt.Errorf("%w: %s lower bound %g must be > 0", ErrInvalidInput, b.Name, b.Lower)
		}
		if b.Integer && b.Lower < 1 {
			return fmt.Errorf("%w: %s lower bound %g must be >= 1", ErrInvalidInput, b.Name, b.Lower)
		}
	}
	return nil
}
