package optimizer

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Violation is the total amount by which ind breaks its constraints.
func (ind Individual) Violation() float64 {
	positive := make([]float64, len(ind.Constraints))
	for i, c := range ind.Constraints {
		positive[i] = math.Max(0, c)
	}
	return floats.Sum(positive)
}

// Dominates checks if a dominates b under constrained dominance: a feasible
// design beats an infeasible one, of two infeasible designs the smaller
// violation wins, and feasible designs compare objective-wise.
func Dominates(a, b Individual) bool {
	va, vb := a.Violation(), b.Violation()
	switch {
	case va == 0 && vb > 0:
		return true
	case va > 0 && vb == 0:
		return false
	case va > 0 && vb > 0:
		return va < vb
	}

	better := false
	for i := 0; i < len(a.Objectives); i++ {
		if a.Objectives[i] > b.Objectives[i] {
			return false
		}
		if a.Objectives[i] < b.Objectives[i] {
			better = true
		}
	}
	return better
}

// NonDominated returns the first front of population, ordered by the first
// objective. It stops early with ctx's error.
func NonDominated(ctx context.Context, population []Individual) (ParetoSet, error) {
	front := ParetoSet{}
	for i := range population {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dominated := false
		for j := range population {
			if i != j && Dominates(population[j], population[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, population[i])
		}
	}
	sort.SliceStable(front, func(i, j int) bool {
		return front[i].Objectives[0] < front[j].Objectives[0]
	})
	return front, nil
}
