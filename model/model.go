package model

// 设计变量的上下界
type Bound struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Positive bool    `json:"positive"` // used as a denominator, lower bound must stay > 0
	Integer  bool    `json:"integer"`  // rounded to a count, lower bound must be >= 1
}

// 一次评估的结果
// Objectives are minimized; a constraint value <= 0 is satisfied.
type Result struct {
	Objectives  []float64 `json:"objectives"`
	Constraints []float64 `json:"constraints"`
}

// Feasible reports whether every constraint is satisfied.
func (r Result) Feasible() bool {
	for _, c := range r.Constraints {
		if c > 0 {
			return false
		}
	}
	return true
}

// 工质物性参数
type FluidProperties struct {
	Name                string  `json:"name"`
	Density             float64 `json:"density"`              // kg/m3
	Viscosity           float64 `json:"viscosity"`            // Pa·s
	SpecificHeat        float64 `json:"specific_heat"`        // J/(kg·K)
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/(m·K)
	Prandtl             float64 `json:"prandtl"`
}

// 翅片材料
type Material struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"` // kg/m3
}

// 模型描述，用于 models / bounds 消息
type ModelInfo struct {
	Name        string  `json:"name"`
	Bounds      []Bound `json:"bounds"`
	Objectives  int     `json:"objectives"`
	Constraints int     `json:"constraints"`
}

// 评估请求
type EvaluateReq struct {
	Model    string    `json:"model"`
	X        []float64 `json:"x"`
	HeatLoad *float64  `json:"heat_load,omitempty"`
}

// 寻优请求
type OptimizeReq struct {
	Model   string `json:"model"`
	Samples int    `json:"samples"`
}

// 帕累托解
type ParetoPoint struct {
	Variables   []float64 `json:"variables"`
	Objectives  []float64 `json:"objectives"`
	Constraints []float64 `json:"constraints"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgModels   = "models"
	MsgBounds   = "bounds"
	MsgEvaluate = "evaluate"
	MsgResult   = "result"
	MsgOptimize = "optimize"
	MsgPareto   = "pareto"
	MsgError    = "error"
)
