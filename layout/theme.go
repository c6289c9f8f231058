package layout

import (
	"sort"
	"strings"
)

// ColorRef 是调色板中的颜色名。
type ColorRef string

// FontRef 是字体令牌名。
type FontRef string

const (
	Navy        ColorRef = "NAVY"
	White       ColorRef = "WHITE"
	LightGray   ColorRef = "LIGHT_GRAY"
	DarkGray    ColorRef = "DARK_GRAY"
	Orange      ColorRef = "ORANGE"
	Green       ColorRef = "GREEN"
	Black       ColorRef = "BLACK"
	TableHeader ColorRef = "TABLE_HEADER"
	TableAlt    ColorRef = "TABLE_ALT"
	HighlightBG ColorRef = "HIGHLIGHT_BG"
)

const (
	FontTitle FontRef = "TITLE"
	FontBody  FontRef = "BODY"
	FontMono  FontRef = "MONO"
)

// Canvas 是整份演示文稿固定的画布尺寸，原点在左上角。
type Canvas struct {
	Width  EMU `json:"width"`
	Height EMU `json:"height"`
}

// HeaderGeometry 描述页眉色带及其标题框。
type HeaderGeometry struct {
	Height      EMU     `json:"height"`
	TitleTop    EMU     `json:"titleTop"`
	TitleHeight EMU     `json:"titleHeight"`
	TitleSize   float64 `json:"titleSize"`
}

// Theme 是注入到构建器中的不可变配置，不存在全局查找。
type Theme struct {
	canvas  Canvas
	margin  EMU
	header  HeaderGeometry
	palette map[ColorRef]Color
	fonts   map[FontRef]string
}

// NewTheme 以给定值构造主题，map 会被复制。
func NewTheme(canvas Canvas, margin EMU, header HeaderGeometry, palette map[ColorRef]Color, fonts map[FontRef]string) Theme {
	t := Theme{
		canvas:  canvas,
		margin:  margin,
		header:  header,
		palette: make(map[ColorRef]Color, len(palette)),
		fonts:   make(map[FontRef]string, len(fonts)),
	}
	for k, v := range palette {
		t.palette[k] = v
	}
	for k, v := range fonts {
		t.fonts[k] = v
	}
	return t
}

// DefaultTheme 返回 16:9 画布与默认调色板。
func DefaultTheme() Theme {
	return NewTheme(
		Canvas{Width: 9144000, Height: 5143500},
		400000,
		HeaderGeometry{Height: 620000, TitleTop: 80000, TitleHeight: 480000, TitleSize: 24},
		map[ColorRef]Color{
			Navy:        RGB(0.10, 0.12, 0.25),
			White:       RGB(1, 1, 1),
			LightGray:   RGB(0.95, 0.95, 0.96),
			DarkGray:    RGB(0.30, 0.30, 0.33),
			Orange:      RGB(0.93, 0.49, 0.13),
			Green:       RGB(0.18, 0.70, 0.35),
			Black:       RGB(0, 0, 0),
			TableHeader: RGB(0.15, 0.18, 0.35),
			TableAlt:    RGB(0.93, 0.94, 0.97),
			HighlightBG: RGB(1, 0.95, 0.85),
		},
		map[FontRef]string{
			FontTitle: "Noto Sans JP",
			FontBody:  "Noto Sans JP",
			FontMono:  "Noto Sans Mono",
		},
	)
}

func (t Theme) Canvas() Canvas         { return t.canvas }
func (t Theme) Margin() EMU            { return t.margin }
func (t Theme) Header() HeaderGeometry { return t.header }

// ContentWidth 是去掉左右边距后的宽度。
func (t Theme) ContentWidth() EMU { return t.canvas.Width - 2*t.margin }

// Color 解析颜色令牌，以 # 开头时按十六进制字面量解析。
func (t Theme) Color(ref ColorRef) (Color, error) {
	if strings.HasPrefix(string(ref), "#") {
		return ParseHexColor(string(ref))
	}
	c, ok := t.palette[ref]
	if !ok {
		return Color{}, preconditionf("style", "无法解析的颜色引用 %q", ref)
	}
	return c, nil
}

// Font 解析字体令牌。
func (t Theme) Font(ref FontRef) (string, error) {
	f, ok := t.fonts[ref]
	if !ok {
		return "", preconditionf("style", "无法解析的字体引用 %q", ref)
	}
	return f, nil
}

// Palette 返回调色板副本。
func (t Theme) Palette() map[ColorRef]Color {
	out := make(map[ColorRef]Color, len(t.palette))
	for k, v := range t.palette {
		out[k] = v
	}
	return out
}

// Fonts 返回字体令牌副本。
func (t Theme) Fonts() map[FontRef]string {
	out := make(map[FontRef]string, len(t.fonts))
	for k, v := range t.fonts {
		out[k] = v
	}
	return out
}

// FontFamilies 返回去重排序后的字体族名，供宿主预加载字体。
func (t Theme) FontFamilies() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, f := range t.fonts {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Row 在整个画布宽度上居中分布 n 个等宽元素。
func (t Theme) Row(n int, w, gap EMU) ([]EMU, error) {
	return Distribute(n, w, gap, 0, t.canvas.Width)
}
