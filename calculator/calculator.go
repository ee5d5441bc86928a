package calculator

import "designopt/model"

// calculator 的接口定义
// Evaluate is pure: the same x always yields the same result, and physically
// invalid designs come back as penalty values rather than errors.
type Calculator interface {
	Name() string

	// 设计变量上下界
	Bounds() []model.Bound

	NumObjectives() int
	NumConstraints() int

	Evaluate(x []float64) model.Result
}

// Info describes c for the bounds and models messages.
func Info(c Calculator) model.ModelInfo {
	return model.ModelInfo{
		Name:        c.Name(),
		Bounds:      c.Bounds(),
		Objectives:  c.NumObjectives(),
		Constraints: c.NumConstraints(),
	}
}

// LowerBounds and UpperBounds split bounds into the lb/ub vectors optimizers expect.
func LowerBounds(bounds []model.Bound) []float64 {
	lb := make([]float64, len(bounds))
	for i, b := range bounds {
		lb[i] = b.Lower
	}
	return lb
}

func UpperBounds(bounds []model.Bound) []float64 {
	ub := make([]float64, len(bounds))
	for i, b := range bounds {
		ub[i] = b.Upper
	}
	return ub
}
