package calculator

import (
	"math"
)

// 矩形通道水力直径 4A/P
func HydraulicDiameter(spacing, height float64) float64 {
	return 4 * spacing * height / (2 * (spacing + height))
}

// 锯齿翅片（offset strip fin）水力直径
func OffsetStripHydraulicDiameter(spacing, height, thickness, stripLength float64) float64 {
	return 4 * spacing * height * stripLength /
		(2*(spacing*stripLength+height*stripLength+thickness*height) + thickness*spacing)
}

// 雷诺数
func Reynolds(density, velocity, dh, viscosity float64) float64 {
	return density * velocity * dh / viscosity
}

// Nu = C·Re^m·Pr^n
func Nusselt(re, pr, c, m, n float64) float64 {
	return c * math.Pow(re, m) * math.Pow(pr, n)
}

// 对流换热系数 h = Nu·k/Dh
func FilmCoefficient(nu, k, dh float64) float64 {
	return nu * k / dh
}

// Dittus-Boelter: h = 0.023·(k/Dh)·Re^0.8·Pr^(1/3)
func DittusBoelter(re, pr, k, dh float64) float64 {
	return 0.023 * (k / dh) * math.Pow(re, 0.8) * math.Pow(pr, 1.0/3.0)
}

// ManglikBergles returns the Colburn j and Fanning f factors of an offset
// strip fin surface.
func ManglikBergles(re, spacing, height, thickness, stripLength float64) (j, f float64) {
	alpha := spacing / height
	delta := thickness / stripLength
	gamma := thickness / spacing

	j = 0.6522 * math.Pow(re, -0.5403) * math.Pow(alpha, -0.1541) * math.Pow(delta, 0.1499) * math.Pow(gamma, -0.0678) *
		math.Pow(1+5.269e-5*math.Pow(re, 1.340)*math.Pow(alpha, 0.504)*math.Pow(delta, 0.456)*math.Pow(gamma, -1.055), 0.1)
	f = 9.6243 * math.Pow(re, -0.7422) * math.Pow(alpha, -0.1856) * math.Pow(delta, 0.3053) * math.Pow(gamma, -0.2659) *
		math.Pow(1+7.669e-8*math.Pow(re, 4.429)*math.Pow(alpha, 0.920)*math.Pow(delta, 3.767)*math.Pow(gamma, 0.236), 0.1)
	return j, f
}

// 总传热系数，两侧膜系数串联加污垢热阻
func OverallU(hHot, hCold, fouling float64) float64 {
	return 1 / (1/hHot + 1/hCold + fouling)
}

// 两侧 hA 串联
func SeriesUA(hAHot, hACold float64) float64 {
	return 1 / (1/hAHot + 1/hACold)
}

func NTU(ua, cMin float64) float64 {
	return ua / cMin
}

// ε = 1 - exp(-NTU)
func EffectivenessUnmixed(ntu float64) float64 {
	return 1 - math.Exp(-ntu)
}

// EffectivenessCounterflow is the counterflow ε-NTU relation. At cr = 1 the
// closed form is 0/0 and the analytic limit NTU/(1+NTU) is used.
func EffectivenessCounterflow(ntu, cr float64) float64 {
	if math.Abs(1-cr) < crTolerance {
		return ntu / (1 + ntu)
	}
	e := math.Exp(-ntu * (1 - cr))
	return (1 - e) / (1 - cr*e)
}

// 对数平均温差
func LMTD(dt1, dt2 float64) float64 {
	if dt1 == dt2 {
		return dt1
	}
	return (dt1 - dt2) / math.Log(dt1/dt2)
}

// FrictionFactor switches to the Blasius form strictly above Re 4000.
func FrictionFactor(re float64) float64 {
	if re > TransitionRe {
		return 0.079 * math.Pow(re, -0.25)
	}
	return 64 / re
}

// Darcy-Weisbach: ΔP = f·(L/Dh)·ρv²/2
func DarcyWeisbach(f, length, dh, density, velocity float64) float64 {
	return f * (length / dh) * density * velocity * velocity / 2
}

// 泵功 P = ΔP·V/η
func PumpPower(dp, volumeFlow, efficiency float64) float64 {
	return dp * volumeFlow / efficiency
}

// 翅片体积 长×宽×厚×通道数×层数
func FinVolume(length, width, thickness, channels, layers float64) float64 {
	return length * width * thickness * channels * layers
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
