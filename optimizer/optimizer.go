package optimizer

import (
	"context"

	"designopt/model"
)

// Problem is anything an optimizer can search: a bounded design space and a
// pure evaluation. Every calculator.Calculator is a Problem.
type Problem interface {
	Name() string
	Bounds() []model.Bound
	Evaluate(x []float64) model.Result
}

// Optimizer describes the contract a black-box multi-objective search needs
// to implement. Implementations only see the Problem; they never reach into
// the physics behind Evaluate.
type Optimizer interface {
	Name() string
	Optimize(ctx context.Context, p Problem) (ParetoSet, error)
}

// Individual is one evaluated design.
type Individual struct {
	Variables   []float64
	Objectives  []float64
	Constraints []float64
}

// ParetoSet holds the non-dominated designs returned by an Optimizer.
type ParetoSet []Individual

// Points converts the set into its wire form.
func (ps ParetoSet) Points() []model.ParetoPoint {
	points := make([]model.ParetoPoint, len(ps))
	for i, ind := range ps {
		points[i] = model.ParetoPoint{
			Variables:   ind.Variables,
			Objectives:  ind.Objectives,
			Constraints: ind.Constraints,
		}
	}
	return points
}

// FuncProblem adapts plain objective and constraint functions to Problem.
// Constraint may be nil for unconstrained problems.
type FuncProblem struct {
	ProblemName string
	Lower       []float64
	Upper       []float64
	Objective   func(x []float64) []float64
	Constraint  func(x []float64) []float64
}

func (f *FuncProblem) Name() string { return f.ProblemName }

func (f *FuncProblem) Bounds() []model.Bound {
	b := make([]model.Bound, len(f.Lower))
	for i := range f.Lower {
		b[i] = model.Bound{Lower: f.Lower[i], Upper: f.Upper[i]}
	}
	return b
}

func (f *FuncProblem) Evaluate(x []float64) model.Result {
	r := model.Result{Objectives: f.Objective(x), Constraints: []float64{}}
	if f.Constraint != nil {
		r.Constraints = f.Constraint(x)
	}
	return r
}
