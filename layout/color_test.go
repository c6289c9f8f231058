package layout

import (
	"errors"
	"math"
	"testing"
)

// TestRGB255Bounds 验证宿主颜色通道始终在 0-255 内，黑白映射到端点。
func TestRGB255Bounds(t *testing.T) {
	if r, g, b := RGB(0, 0, 0).RGB255(); r != 0 || g != 0 || b != 0 {
		t.Fatalf("黑色期望 (0,0,0)，实际 (%d,%d,%d)", r, g, b)
	}
	if r, g, b := RGB(1, 1, 1).RGB255(); r != 255 || g != 255 || b != 255 {
		t.Fatalf("白色期望 (255,255,255)，实际 (%d,%d,%d)", r, g, b)
	}
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		r, _, _ := RGB(v, 1-v, v/2).RGB255()
		if diff := math.Abs(float64(r) - v*255); diff > 0.5+1e-9 {
			t.Fatalf("通道 %g 换算偏差过大: 实际 %d", v, r)
		}
	}
	if r, _, _ := RGB(1.5, 0, 0).RGB255(); r != 255 {
		t.Fatalf("超出上界的通道应钳制为 255，实际 %d", r)
	}
	if r, _, _ := RGB(-0.2, 0, 0).RGB255(); r != 0 {
		t.Fatalf("低于下界的通道应钳制为 0，实际 %d", r)
	}
}

func TestPaletteHex(t *testing.T) {
	theme := DefaultTheme()
	cases := map[ColorRef]string{
		Navy:        "1A1F40",
		Orange:      "ED7D21",
		TableHeader: "262E59",
		White:       "FFFFFF",
	}
	for ref, want := range cases {
		c, err := theme.Color(ref)
		if err != nil {
			t.Fatalf("%s 解析失败: %v", ref, err)
		}
		if got := c.Hex(); got != want {
			t.Fatalf("%s 期望 %s，实际 %s", ref, want, got)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1a1f40")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if got := c.Hex(); got != "1A1F40" {
		t.Fatalf("期望 1A1F40，实际 %s", got)
	}
	short, err := ParseHexColor("#fff")
	if err != nil || short.Hex() != "FFFFFF" {
		t.Fatalf("#fff 应解析为白色: %v %s", err, short.Hex())
	}
	if _, err := ParseHexColor("1a1f40"); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("缺少 # 应返回前置条件错误，实际 %v", err)
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Fatalf("非法十六进制应报错")
	}
}

func TestColorfulIsClamped(t *testing.T) {
	c := RGB(1.5, math.NaN(), -1).Colorful()
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Fatalf("Colorful 应钳制通道，实际 %+v", c)
	}
	if r, g, b := RGB(1.5, math.NaN(), -1).RGB255(); r != 255 || g != 0 || b != 0 {
		t.Fatalf("NaN 通道应视为 0，实际 (%d,%d,%d)", r, g, b)
	}
	if got := RGB(0.93, 0.49, 0.13).Colorful().Hex(); got != "#ed7d21" {
		t.Fatalf("与 go-colorful 的十六进制不一致: %s", got)
	}
}
