package layout

import "fmt"

// 图元构造的固定参数。
const (
	DefaultBoxFontSize  = 11.0
	TableHeaderFontSize = 9.0
	TableBodyFontSize   = 10.0
	ArrowWeight         = 2.0
)

// Builder 绑定一个主题，把内容描述转换成完全解析的图元值。
// 构造过程是纯函数，不接触宿主。
type Builder struct {
	theme Theme
}

// NewBuilder 返回绑定 theme 的构造器。
func NewBuilder(theme Theme) *Builder {
	return &Builder{theme: theme}
}

func (b *Builder) Theme() Theme { return b.theme }

// Header 构造页眉色带。标题为空时得到一条空白色带。
func (b *Builder) Header(title string) (Band, error) {
	fill, err := b.theme.Color(Navy)
	if err != nil {
		return Band{}, err
	}
	h := b.theme.Header()
	style, err := b.theme.Resolve(TextOptions{
		Font:     FontTitle,
		FontSize: h.TitleSize,
		Bold:     Bool(true),
		Color:    White,
		VAlign:   VAlignMiddle,
	}, TextOptions{})
	if err != nil {
		return Band{}, err
	}
	canvas := b.theme.Canvas()
	margin := b.theme.Margin()
	return Band{
		Rect: R(0, 0, canvas.Width, h.Height),
		Fill: fill,
		Title: TextBlock{
			Rect:  R(margin, h.TitleTop, canvas.Width-2*margin, h.TitleHeight),
			Text:  title,
			Style: style,
		},
	}, nil
}

// Text 构造文本框。
func (b *Builder) Text(text string, rect Rect, opts TextOptions) (TextBlock, error) {
	style, err := b.theme.Resolve(TextOptions{Font: FontBody, VAlign: VAlignTop}, opts)
	if err != nil {
		return TextBlock{}, err
	}
	return TextBlock{Rect: rect, Text: text, Style: style}, nil
}

// BoxOptions 描述方框的底色、文字颜色与字号，FontSize 为 0 时使用默认 11pt。
type BoxOptions struct {
	Fill     ColorRef
	Color    ColorRef
	FontSize float64
	Bold     *bool
}

// Box 构造圆角方框。
func (b *Builder) Box(label string, rect Rect, opts BoxOptions) (Box, error) {
	fillRef := opts.Fill
	if fillRef == "" {
		fillRef = LightGray
	}
	fill, err := b.theme.Color(fillRef)
	if err != nil {
		return Box{}, err
	}
	style, err := b.theme.Resolve(TextOptions{
		Font:     FontBody,
		FontSize: DefaultBoxFontSize,
		Align:    AlignCenter,
		VAlign:   VAlignMiddle,
	}, TextOptions{FontSize: opts.FontSize, Color: opts.Color, Bold: opts.Bold})
	if err != nil {
		return Box{}, err
	}
	return Box{Rect: rect, Label: label, Fill: fill, Style: style}, nil
}

// Table 构造表格。第 0 行为表头；其余行偶数行带交替底色，奇数行不填充。
// 空网格或各行列数不一致时在构造任何内容之前返回错误。
func (b *Builder) Table(grid [][]string, rect Rect) (Table, error) {
	if err := CheckGrid(grid); err != nil {
		return Table{}, err
	}
	headerFill, err := b.theme.Color(TableHeader)
	if err != nil {
		return Table{}, err
	}
	altFill, err := b.theme.Color(TableAlt)
	if err != nil {
		return Table{}, err
	}
	headerStyle, err := b.theme.Resolve(TextOptions{
		Font: FontBody, FontSize: TableHeaderFontSize, Bold: Bool(true), Color: White,
	}, TextOptions{})
	if err != nil {
		return Table{}, err
	}
	bodyStyle, err := b.theme.Resolve(TextOptions{
		Font: FontBody, FontSize: TableBodyFontSize, Color: Black,
	}, TextOptions{})
	if err != nil {
		return Table{}, err
	}

	cells := make([][]Cell, len(grid))
	for r, row := range grid {
		cells[r] = make([]Cell, len(row))
		var fill *Color
		style := bodyStyle
		switch {
		case r == 0:
			f := headerFill
			fill = &f
			style = headerStyle
		case r%2 == 0:
			f := altFill
			fill = &f
		}
		for c, text := range row {
			cell := Cell{Text: text, Style: style}
			if fill != nil {
				f := *fill
				cell.Fill = &f
			}
			cells[r][c] = cell
		}
	}
	return Table{Rect: rect, Cells: cells}, nil
}

// CheckGrid 验证网格非空且为矩形。
func CheckGrid(grid [][]string) error {
	if len(grid) == 0 {
		return preconditionf("table", "表格至少需要一行")
	}
	cols := len(grid[0])
	if cols == 0 {
		return preconditionf("table", "表格至少需要一列")
	}
	for i, row := range grid {
		if len(row) != cols {
			return preconditionf("table", "第 %d 行有 %d 列，期望 %d 列", i, len(row), cols)
		}
	}
	return nil
}

// Arrow 构造从 (x1,y1) 指向 (x2,y2) 的箭头。
func (b *Builder) Arrow(x1, y1, x2, y2 EMU) (Arrow, error) {
	c, err := b.theme.Color(DarkGray)
	if err != nil {
		return Arrow{}, err
	}
	return Arrow{
		From:   Point{X: x1, Y: y1},
		To:     Point{X: x2, Y: y2},
		Weight: ArrowWeight,
		Color:  c,
	}, nil
}

// Slide 开始构造一页。
func (b *Builder) Slide(name string) *SlideBuilder {
	return &SlideBuilder{b: b, slide: Slide{Name: name}}
}

// SlideBuilder 按调用顺序追加图元，并记住第一个错误。
type SlideBuilder struct {
	b     *Builder
	slide Slide
	err   error
}

func (s *SlideBuilder) fail(err error) *SlideBuilder {
	if s.err == nil && err != nil {
		s.err = err
	}
	return s
}

func (s *SlideBuilder) add(el Element, err error) *SlideBuilder {
	if s.err != nil {
		return s
	}
	if err != nil {
		return s.fail(err)
	}
	s.slide.Elements = append(s.slide.Elements, el)
	return s
}

// Background 设置满版背景色。
func (s *SlideBuilder) Background(ref ColorRef) *SlideBuilder {
	c, err := s.b.theme.Color(ref)
	if err != nil {
		return s.fail(err)
	}
	s.slide.Background = &c
	return s
}

func (s *SlideBuilder) Header(title string) *SlideBuilder {
	band, err := s.b.Header(title)
	return s.add(band, err)
}

func (s *SlideBuilder) Text(text string, rect Rect, opts TextOptions) *SlideBuilder {
	el, err := s.b.Text(text, rect, opts)
	return s.add(el, err)
}

func (s *SlideBuilder) Box(label string, rect Rect, opts BoxOptions) *SlideBuilder {
	el, err := s.b.Box(label, rect, opts)
	return s.add(el, err)
}

func (s *SlideBuilder) Table(grid [][]string, rect Rect) *SlideBuilder {
	el, err := s.b.Table(grid, rect)
	return s.add(el, err)
}

func (s *SlideBuilder) Arrow(x1, y1, x2, y2 EMU) *SlideBuilder {
	el, err := s.b.Arrow(x1, y1, x2, y2)
	return s.add(el, err)
}

// Row 在画布宽度上分布 n 个元素，出错时记录错误并返回 nil。
func (s *SlideBuilder) Row(n int, w, gap EMU) []EMU {
	xs, err := s.b.theme.Row(n, w, gap)
	if err != nil {
		s.fail(err)
		return nil
	}
	return xs
}

// Connect 为分布行中相邻元素添加连线箭头。
func (s *SlideBuilder) Connect(xs []EMU, w, y, inset EMU) *SlideBuilder {
	for _, seg := range Connectors(xs, w, y, inset) {
		s.Arrow(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	}
	return s
}

// Err 返回目前为止的第一个错误。
func (s *SlideBuilder) Err() error { return s.err }

// Done 返回构造完成的页面或第一个错误。
func (s *SlideBuilder) Done() (Slide, error) {
	if s.err != nil {
		return Slide{}, fmt.Errorf("slide %s: %w", s.slide.Name, s.err)
	}
	return s.slide, nil
}
