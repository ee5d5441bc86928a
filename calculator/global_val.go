package calculator

const (
	// 连杆机构惩罚值
	LinkagePenalty = 1000.0
	// 小于该角度差视为退化解
	DegenerateAngle = 5.0

	// 层流/湍流分界雷诺数
	TransitionRe = 4000.0

	// 压降下限，保证泵功有定义
	MinPressureDrop = 1e-6
	// 泵功为零时的替代值
	ZeroPowerFloor = 1.0

	crTolerance = 1e-9
)

// 模型名称
const (
	NameLinkage  = "linkage"
	NameSingleHX = "single-hx"
	NameDualHX18 = "multiobj-18var"
	NameDualHX11 = "multiobj-11var"
)
