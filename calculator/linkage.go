package calculator

import (
	"math"

	"designopt/model"
)

// 四连杆机构参数
type LinkageParams struct {
	L1          float64 // 机架长度
	PivotOffset float64 // 摇杆固定偏角, deg
	Angle1      float64 // 第一位置摇杆角, deg
	Angle2      float64 // 第二位置摇杆角, deg
	MinLength   float64
	MaxLength   float64
}

// Linkage tunes [L2, L3, L4] of a four-bar mechanism. The single objective is
// the crank-angle difference between the two follower positions.
type Linkage struct {
	p LinkageParams
}

func NewLinkage(p LinkageParams) *Linkage {
	return &Linkage{p: p}
}

func (l *Linkage) Name() string { return NameLinkage }

func (l *Linkage) Bounds() []model.Bound {
	return []model.Bound{
		{Name: "L2", Unit: "mm", Lower: l.p.MinLength, Upper: l.p.MaxLength, Positive: true},
		{Name: "L3", Unit: "mm", Lower: l.p.MinLength, Upper: l.p.MaxLength, Positive: true},
		{Name: "L4", Unit: "mm", Lower: l.p.MinLength, Upper: l.p.MaxLength, Positive: true},
	}
}

func (l *Linkage) NumObjectives() int { return 1 }
func (l *Linkage) NumConstraints() int { return 0 }

func (l *Linkage) Evaluate(x []float64) model.Result {
	return model.Result{
		Objectives:  []float64{l.Objective(x)},
		Constraints: []float64{},
	}
}

// Objective returns the angle difference in degrees, or LinkagePenalty when
// the mechanism is not Grashof, cannot be assembled, or is degenerate.
func (l *Linkage) Objective(x []float64) float64 {
	l2, l3, l4 := x[0], x[1], x[2]
	if l.p.L1+l4 > l2+l3 {
		return LinkagePenalty
	}
	theta1, ok := l.crankAngle(l2, l3, l4, l.p.Angle1)
	if !ok {
		return LinkagePenalty
	}
	theta2, ok := l.crankAngle(l2, l3, l4, l.p.Angle2)
	if !ok {
		return LinkagePenalty
	}
	diff := degrees(math.Abs(theta1 - theta2))
	if diff < DegenerateAngle {
		return LinkagePenalty
	}
	return diff
}

// 余弦定理求曲柄角, rad
// The crank pivot sits at the origin and the follower pivot at (L1, 0).
func (l *Linkage) crankAngle(l2, l3, l4, followerAngle float64) (float64, bool) {
	phi := radians(followerAngle + l.p.PivotOffset)
	bx := l.p.L1 - l4*math.Cos(phi)
	by := l4 * math.Sin(phi)
	ac := math.Hypot(bx, by)
	if ac == 0 {
		return 0, false
	}
	cos := (l2*l2 + ac*ac - l3*l3) / (2 * l2 * ac)
	if cos < -1 || cos > 1 || math.IsNaN(cos) {
		return 0, false
	}
	return math.Atan2(by, bx) + math.Acos(cos), true
}
