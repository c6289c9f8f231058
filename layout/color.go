package layout

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color 以 [0,1] 归一化通道保存，只在宿主应用时转换。
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGB 构造归一化颜色。
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// RGB255 返回宿主使用的 0-255 通道值：先钳制到 [0,1]，乘 255 后四舍五入。
func (c Color) RGB255() (uint8, uint8, uint8) {
	return c.Colorful().RGB255()
}

// Hex 返回 RRGGBB 形式（大写、无前缀）。
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// Colorful 转为 go-colorful 颜色，通道已钳制。
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: finite(c.R), G: finite(c.G), B: finite(c.B)}.Clamped()
}

// ParseHexColor 解析 #RRGGBB 或 #RGB。
func ParseHexColor(raw string) (Color, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		return Color{}, &PreconditionError{Op: "color", Detail: fmt.Sprintf("颜色需以 # 开头: %q", raw)}
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, &PreconditionError{Op: "color", Detail: fmt.Sprintf("无效颜色 %q: %v", raw, err)}
	}
	return Color{R: cf.R, G: cf.G, B: cf.B}, nil
}

// finite 把 NaN 视为 0，Clamped 无法处理 NaN。
func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
