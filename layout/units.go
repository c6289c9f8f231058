package layout

import (
	"math"
	"strconv"
	"strings"
)

// EMU 是画布的规范长度单位（English Metric Unit）。
// 所有坐标在布局阶段都以 EMU 表示，只在宿主应用时才换算。
type EMU int64

// 固定换算比例。
const (
	EMUPerPoint EMU = 12700
	EMUPerInch  EMU = 914400
	EMUPerCM    EMU = 360000
	EMUPerMM    EMU = 36000
)

// Points 将 EMU 线性换算为 pt。
func (e EMU) Points() float64 { return float64(e) / float64(EMUPerPoint) }

// MM 将 EMU 换算为毫米，供 PDF 预览使用。
func (e EMU) MM() float64 { return float64(e) / float64(EMUPerMM) }

// Inches 将 EMU 换算为英寸。
func (e EMU) Inches() float64 { return float64(e) / float64(EMUPerInch) }

// FromPoints 将 pt 换算为 EMU（四舍五入）。
func FromPoints(pt float64) EMU { return EMU(math.Round(pt * float64(EMUPerPoint))) }

// FromMM 将毫米换算为 EMU（四舍五入）。
func FromMM(mm float64) EMU { return EMU(math.Round(mm * float64(EMUPerMM))) }

// Unit represents the original unit of a length value as written in a deck file.
type Unit int

const (
	UnitEMU Unit = iota // bare numbers
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// EMU converts the length to the canonical unit.
func (l Length) EMU() EMU {
	var scale EMU
	switch l.Unit {
	case UnitMM:
		scale = EMUPerMM
	case UnitCM:
		scale = EMUPerCM
	case UnitIN:
		scale = EMUPerInch
	case UnitPT:
		scale = EMUPerPoint
	default:
		scale = 1
	}
	return EMU(math.Round(l.Value * float64(scale)))
}

// ToPT 返回以 pt 表示的长度。
func (l Length) ToPT() float64 {
	if l.Unit == UnitPT {
		return l.Value
	}
	return l.EMU().Points()
}

// ParseRawLengthStr parses a deck-file length string preserving its unit.
// ok 为 false 表示数值无法解析。
func ParseRawLengthStr(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitEMU
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}
