package layout

import (
	"fmt"
	"sort"
	"strings"
)

// Align 是段落水平对齐方式，空值表示交由宿主决定。
type Align string

const (
	AlignUnset  Align = ""
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// VAlign 是文本框内容的垂直对齐方式。
type VAlign string

const (
	VAlignUnset  VAlign = ""
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// ParseAlign 接受 left/start/center/right/end。
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignStart, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right", "end":
		return AlignEnd, nil
	}
	return AlignUnset, preconditionf("style", "无效的对齐方式 %q", s)
}

// ParseVAlign 接受 top/middle/bottom。
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return VAlignTop, nil
	case "middle", "center":
		return VAlignMiddle, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return VAlignUnset, preconditionf("style", "无效的垂直对齐方式 %q", s)
}

// TextOptions 列出文本样式的所有可选项，零值表示未设置。
// 默认值：字体 BODY，字号与颜色交由宿主，bold=false，垂直对齐 TOP。
type TextOptions struct {
	Font     FontRef  `json:"font,omitempty"`
	FontSize float64  `json:"fontSize,omitempty"`
	Bold     *bool    `json:"bold,omitempty"`
	Color    ColorRef `json:"color,omitempty"`
	Align    Align    `json:"align,omitempty"`
	VAlign   VAlign   `json:"vAlign,omitempty"`
}

// Bool 返回指向 b 的指针，便于填写 TextOptions.Bold。
func Bool(b bool) *bool { return &b }

// Merge 用 over 中已设置的字段覆盖 base。
func (o TextOptions) Merge(over TextOptions) TextOptions {
	out := o
	if over.Font != "" {
		out.Font = over.Font
	}
	if over.FontSize > 0 {
		out.FontSize = over.FontSize
	}
	if over.Bold != nil {
		b := *over.Bold
		out.Bold = &b
	}
	if over.Color != "" {
		out.Color = over.Color
	}
	if over.Align != AlignUnset {
		out.Align = over.Align
	}
	if over.VAlign != VAlignUnset {
		out.VAlign = over.VAlign
	}
	return out
}

// TextStyle 是解析完成后的不可变样式。Color 为 nil 表示使用宿主默认色。
type TextStyle struct {
	Font     string  `json:"font"`
	FontSize float64 `json:"fontSize,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	Color    *Color  `json:"color,omitempty"`
	Align    Align   `json:"align,omitempty"`
	VAlign   VAlign  `json:"vAlign"`
}

// Resolve 按 override > base > 默认值 的顺序得到完整样式。
func (t Theme) Resolve(base, override TextOptions) (TextStyle, error) {
	merged := base.Merge(override)
	if merged.Font == "" {
		merged.Font = FontBody
	}
	if merged.VAlign == VAlignUnset {
		merged.VAlign = VAlignTop
	}
	if merged.FontSize < 0 {
		return TextStyle{}, preconditionf("style", "字号不能为负: %g", merged.FontSize)
	}
	font, err := t.Font(merged.Font)
	if err != nil {
		return TextStyle{}, err
	}
	style := TextStyle{
		Font:     font,
		FontSize: merged.FontSize,
		Align:    merged.Align,
		VAlign:   merged.VAlign,
	}
	if merged.Bold != nil {
		style.Bold = *merged.Bold
	}
	if merged.Color != "" {
		c, err := t.Color(merged.Color)
		if err != nil {
			return TextStyle{}, err
		}
		style.Color = &c
	}
	return style, nil
}

// NamedStyle 是 deck 文件中 `style Name extends Parent { ... }` 的声明。
type NamedStyle struct {
	Name    string      `json:"name"`
	Extends string      `json:"extends,omitempty"`
	Options TextOptions `json:"options"`
}

// ResolveStyles 展开 extends 链，子样式覆盖父样式。
func ResolveStyles(decls map[string]NamedStyle) (map[string]TextOptions, error) {
	resolved := make(map[string]TextOptions, len(decls))
	visiting := make(map[string]bool, len(decls))

	var resolve func(name string, chain []string) (TextOptions, error)
	resolve = func(name string, chain []string) (TextOptions, error) {
		if opts, ok := resolved[name]; ok {
			return opts, nil
		}
		decl, ok := decls[name]
		if !ok {
			return TextOptions{}, preconditionf("style", "未定义的样式 %q", name)
		}
		if visiting[name] {
			return TextOptions{}, preconditionf("style", "style 继承存在循环: %s", strings.Join(append(chain, name), " -> "))
		}
		visiting[name] = true
		defer delete(visiting, name)

		opts := decl.Options
		if decl.Extends != "" {
			parent, err := resolve(decl.Extends, append(chain, name))
			if err != nil {
				return TextOptions{}, err
			}
			opts = parent.Merge(decl.Options)
		}
		resolved[name] = opts
		return opts, nil
	}

	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := resolve(name, nil); err != nil {
			return nil, fmt.Errorf("解析样式 %s 失败: %w", name, err)
		}
	}
	return resolved, nil
}
