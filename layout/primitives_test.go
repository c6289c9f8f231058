package layout

import (
	"errors"
	"testing"
)

func TestHeaderBand(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	band, err := b.Header("AI社員とは？")
	if err != nil {
		t.Fatalf("构造页眉失败: %v", err)
	}
	if band.Rect != R(0, 0, 9144000, 620000) {
		t.Fatalf("色带位置错误: %+v", band.Rect)
	}
	if band.Fill.Hex() != "1A1F40" {
		t.Fatalf("色带应为 NAVY，实际 %s", band.Fill.Hex())
	}
	if band.Title.Rect != R(400000, 80000, 8344000, 480000) {
		t.Fatalf("标题框位置错误: %+v", band.Title.Rect)
	}
	st := band.Title.Style
	if st.FontSize != 24 || !st.Bold || st.VAlign != VAlignMiddle || st.Color == nil || st.Color.Hex() != "FFFFFF" {
		t.Fatalf("标题样式错误: %+v", st)
	}

	blank, err := b.Header("")
	if err != nil || blank.Title.Text != "" {
		t.Fatalf("空标题应得到空白色带: %v", err)
	}
}

func TestTextAppliesAlignmentToEveryParagraph(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	block, err := b.Text("一行目\n二行目\n三行目", R(0, 0, 100, 100), TextOptions{Align: AlignCenter})
	if err != nil {
		t.Fatalf("构造文本失败: %v", err)
	}
	if got := len(block.Paragraphs()); got != 3 {
		t.Fatalf("期望 3 段，实际 %d", got)
	}
	if block.Style.Align != AlignCenter || block.Style.VAlign != VAlignTop {
		t.Fatalf("文本样式错误: %+v", block.Style)
	}
}

func TestBoxDefaults(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	box, err := b.Box("Notion", R(0, 0, 1700000, 500000), BoxOptions{Fill: LightGray, Color: Navy})
	if err != nil {
		t.Fatalf("构造方框失败: %v", err)
	}
	if box.Style.FontSize != DefaultBoxFontSize {
		t.Fatalf("默认字号应为 11，实际 %g", box.Style.FontSize)
	}
	if box.Style.Align != AlignCenter || box.Style.VAlign != VAlignMiddle {
		t.Fatalf("标签应水平垂直居中: %+v", box.Style)
	}
	if box.Fill.Hex() != "F2F2F5" {
		t.Fatalf("底色错误: %s", box.Fill.Hex())
	}
	sized, _ := b.Box("x", R(0, 0, 1, 1), BoxOptions{Fill: Navy, Color: White, FontSize: 16})
	if sized.Style.FontSize != 16 {
		t.Fatalf("显式字号应生效，实际 %g", sized.Style.FontSize)
	}
	if _, err := b.Box("x", R(0, 0, 1, 1), BoxOptions{Fill: "MAGENTA"}); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("未知底色应报错，实际 %v", err)
	}
}

func TestTableRowParity(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	grid := [][]string{
		{"記録項目", "内容"},
		{"操作者", "AI社員"},
		{"日時", ""},
		{"操作内容", "全て"},
		{"承認者", "担当者"},
	}
	table, err := b.Table(grid, R(0, 0, 100, 100))
	if err != nil {
		t.Fatalf("构造表格失败: %v", err)
	}
	if table.Rows() != 5 || table.Cols() != 2 {
		t.Fatalf("表格尺寸错误: %dx%d", table.Rows(), table.Cols())
	}
	for c, cell := range table.Cells[0] {
		if cell.Fill == nil || cell.Fill.Hex() != "262E59" {
			t.Fatalf("表头第 %d 列应为 TABLE_HEADER 底色", c)
		}
		if !cell.Style.Bold || cell.Style.FontSize != 9 || cell.Style.Color.Hex() != "FFFFFF" {
			t.Fatalf("表头样式错误: %+v", cell.Style)
		}
	}
	for _, r := range []int{2, 4} {
		for _, cell := range table.Cells[r] {
			if cell.Fill == nil || cell.Fill.Hex() != "EDF0F7" {
				t.Fatalf("第 %d 行应带交替底色", r)
			}
		}
	}
	for _, r := range []int{1, 3} {
		for _, cell := range table.Cells[r] {
			if cell.Fill != nil {
				t.Fatalf("第 %d 行不应填充", r)
			}
			if cell.Style.FontSize != 10 || cell.Style.Bold {
				t.Fatalf("正文行样式错误: %+v", cell.Style)
			}
		}
	}
	if table.Cells[2][1].Text != "" {
		t.Fatalf("空单元格应保留为空字符串")
	}
}

func TestTableRejectsRaggedGrid(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	cases := [][][]string{
		nil,
		{{}},
		{{"a", "b"}, {"c"}},
	}
	for i, grid := range cases {
		if _, err := b.Table(grid, R(0, 0, 1, 1)); !errors.Is(err, ErrPrecondition) {
			t.Fatalf("case %d 应返回前置条件错误，实际 %v", i, err)
		}
	}
}

func TestArrow(t *testing.T) {
	arrow, err := NewBuilder(DefaultTheme()).Arrow(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("构造箭头失败: %v", err)
	}
	if arrow.Weight != 2 || arrow.Color.Hex() != "4D4D54" {
		t.Fatalf("箭头样式错误: %+v", arrow)
	}
	if arrow.From != (Point{X: 1, Y: 2}) || arrow.To != (Point{X: 3, Y: 4}) {
		t.Fatalf("箭头端点错误: %+v", arrow)
	}
}

func TestSlideBuilderKeepsFirstError(t *testing.T) {
	b := NewBuilder(DefaultTheme())
	sb := b.Slide("broken").
		Header("ok").
		Table([][]string{{"a"}, {"b", "c"}}, R(0, 0, 1, 1)).
		Box("after", R(0, 0, 1, 1), BoxOptions{Fill: "UNKNOWN"})
	_, err := sb.Done()
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("应返回第一个错误，实际 %v", err)
	}
	var pe *PreconditionError
	if !errors.As(err, &pe) || pe.Op != "table" {
		t.Fatalf("第一个错误应来自 table，实际 %v", err)
	}

	slide, err := b.Slide("ok").Background(Navy).Text("x", R(0, 0, 1, 1), TextOptions{}).Done()
	if err != nil || slide.Background == nil || len(slide.Elements) != 1 || slide.HasBand() {
		t.Fatalf("正常页面构造错误: %v %+v", err, slide)
	}
}
