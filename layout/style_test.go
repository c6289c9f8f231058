package layout

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveOverrideWins(t *testing.T) {
	theme := DefaultTheme()
	base := TextOptions{Font: FontTitle, FontSize: 24, Bold: Bool(true), Color: White, VAlign: VAlignMiddle}
	style, err := theme.Resolve(base, TextOptions{FontSize: 40, Bold: Bool(false), Align: AlignCenter})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if style.FontSize != 40 || style.Bold || style.Align != AlignCenter {
		t.Fatalf("显式覆盖未生效: %+v", style)
	}
	if style.Font != "Noto Sans JP" || style.VAlign != VAlignMiddle {
		t.Fatalf("未覆盖字段应继承调用点默认值: %+v", style)
	}
	if style.Color == nil || style.Color.Hex() != "FFFFFF" {
		t.Fatalf("颜色应继承为白色: %+v", style.Color)
	}
}

func TestResolveDocumentedDefaults(t *testing.T) {
	style, err := DefaultTheme().Resolve(TextOptions{}, TextOptions{})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if style.Font != "Noto Sans JP" {
		t.Fatalf("默认字体应为 BODY，实际 %s", style.Font)
	}
	if style.VAlign != VAlignTop {
		t.Fatalf("默认垂直对齐应为 TOP，实际 %s", style.VAlign)
	}
	if style.Bold || style.Color != nil || style.FontSize != 0 || style.Align != AlignUnset {
		t.Fatalf("其余字段应保持未设置: %+v", style)
	}
}

func TestResolveDoesNotLeakBetweenCalls(t *testing.T) {
	theme := DefaultTheme()
	bold := Bool(true)
	first, err := theme.Resolve(TextOptions{Bold: bold}, TextOptions{})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	*bold = false
	if !first.Bold {
		t.Fatalf("解析后的样式不应受调用方后续修改影响")
	}
	second, _ := theme.Resolve(TextOptions{}, TextOptions{})
	if second.Bold {
		t.Fatalf("样式不应在调用之间泄漏")
	}
}

func TestResolveUnknownTokens(t *testing.T) {
	theme := DefaultTheme()
	if _, err := theme.Resolve(TextOptions{}, TextOptions{Color: "PURPLE"}); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("未知颜色应返回前置条件错误，实际 %v", err)
	}
	if _, err := theme.Resolve(TextOptions{}, TextOptions{Font: "SERIF"}); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("未知字体应返回前置条件错误，实际 %v", err)
	}
	style, err := theme.Resolve(TextOptions{}, TextOptions{Color: "#336699"})
	if err != nil || style.Color.Hex() != "336699" {
		t.Fatalf("十六进制颜色应可直接使用: %v", err)
	}
}

func TestResolveStylesExtends(t *testing.T) {
	decls := map[string]NamedStyle{
		"Body":  {Name: "Body", Options: TextOptions{Font: FontBody, FontSize: 12}},
		"Lead":  {Name: "Lead", Extends: "Body", Options: TextOptions{FontSize: 14, Color: DarkGray}},
		"Alert": {Name: "Alert", Extends: "Lead", Options: TextOptions{Color: Orange, Bold: Bool(true)}},
	}
	resolved, err := ResolveStyles(decls)
	if err != nil {
		t.Fatalf("样式解析失败: %v", err)
	}
	alert := resolved["Alert"]
	if alert.Font != FontBody || alert.FontSize != 14 || alert.Color != Orange || alert.Bold == nil || !*alert.Bold {
		t.Fatalf("继承链合并错误: %+v", alert)
	}
	if resolved["Lead"].Color != DarkGray {
		t.Fatalf("父样式不应被子样式修改: %+v", resolved["Lead"])
	}
}

func TestResolveStylesCycle(t *testing.T) {
	decls := map[string]NamedStyle{
		"A": {Name: "A", Extends: "B"},
		"B": {Name: "B", Extends: "A"},
	}
	_, err := ResolveStyles(decls)
	if !errors.Is(err, ErrPrecondition) || !strings.Contains(err.Error(), "循环") {
		t.Fatalf("循环继承应报错，实际 %v", err)
	}
	_, err = ResolveStyles(map[string]NamedStyle{"A": {Name: "A", Extends: "Missing"}})
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("未定义父样式应报错，实际 %v", err)
	}
}

func TestParseAlign(t *testing.T) {
	for in, want := range map[string]Align{"left": AlignStart, "CENTER": AlignCenter, "end": AlignEnd} {
		got, err := ParseAlign(in)
		if err != nil || got != want {
			t.Fatalf("ParseAlign(%q) 期望 %s，实际 %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseVAlign("sideways"); err == nil {
		t.Fatalf("非法垂直对齐应报错")
	}
}
