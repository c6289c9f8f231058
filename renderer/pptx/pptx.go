// Package pptx 把图元写入 GoPPT 演示文稿。
package pptx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer"
)

// GoPPT 的方框没有字体接口，文字以同尺寸文本框叠加在方框之上。
const boxGeometry ppt.AutoShapeType = "roundRect"

// Surface 是基于 GoPPT 的宿主实现。
//
// GoPPT 不允许删除最后一张幻灯片，因此逻辑页数为零时保留一张隐藏的备用页，
// 下一次 AppendSlide 会直接复用它。
type Surface struct {
	mu    sync.Mutex
	pres  *ppt.Presentation
	spare bool
}

var (
	_ renderer.Surface    = (*Surface)(nil)
	_ renderer.MetaSetter = (*Surface)(nil)
)

// New 创建一个空演示文稿，画布尺寸取自主题。
func New(theme layout.Theme) *Surface {
	pres := ppt.New()
	c := theme.Canvas()
	pres.GetLayout().SetCustomLayout(int64(c.Width), int64(c.Height))
	return &Surface{pres: pres, spare: true}
}

// Open 打开已有文件，生成前会先清空其中的幻灯片。
func Open(path string, theme layout.Theme) (*Surface, error) {
	pres, err := ppt.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开演示文稿 %s 失败: %w", path, err)
	}
	c := theme.Canvas()
	pres.GetLayout().SetCustomLayout(int64(c.Width), int64(c.Height))
	return &Surface{pres: pres}, nil
}

// OpenOrNew 在文件不存在时创建新文稿。
func OpenOrNew(path string, theme layout.Theme) (*Surface, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return New(theme), nil
	}
	return Open(path, theme)
}

// Presentation 返回底层文稿。
func (s *Surface) Presentation() *ppt.Presentation { return s.pres }

func (s *Surface) SlideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *Surface) count() int {
	if s.spare {
		return s.pres.GetSlideCount() - 1
	}
	return s.pres.GetSlideCount()
}

func (s *Surface) RemoveSlide(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.count() {
		return fmt.Errorf("slide index %d out of range", index)
	}
	if s.pres.GetSlideCount() == 1 {
		s.pres.CreateSlide()
		s.spare = true
	}
	return s.pres.RemoveSlideByIndex(index)
}

func (s *Surface) AppendSlide() (renderer.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spare {
		slide, err := s.pres.GetSlide(0)
		if err != nil {
			return nil, err
		}
		s.spare = false
		return &page{slide: slide}, nil
	}
	return &page{slide: s.pres.CreateSlide()}, nil
}

func (s *Surface) SetMeta(meta layout.DocumentMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	props := s.pres.GetDocumentProperties()
	props.Title = meta.Title
	props.Subject = meta.Subject
	if meta.Author != "" {
		props.Creator = meta.Author
	} else if meta.Creator != "" {
		props.Creator = meta.Creator
	}
	props.LastModifiedBy = props.Creator
	if len(meta.Keywords) > 0 {
		props.Keywords = strings.Join(meta.Keywords, ", ")
	}
}

// Save 校验后写入文件，必要时创建目录。
func (s *Surface) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pres.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	return s.pres.Save(path)
}

// WriteTo 校验后写入 w。
func (s *Surface) WriteTo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pres.Validate(); err != nil {
		return err
	}
	return s.pres.WriteTo(w)
}

// SaveImages 把每页渲染成图片，pattern 需包含 %d（从 1 开始）。
func (s *Surface) SaveImages(pattern string, width int, fontDirs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts := ppt.DefaultRenderOptions()
	if width > 0 {
		opts.Width = width
	}
	opts.FontDirs = fontDirs
	return s.pres.SaveSlidesAsImages(pattern, opts)
}

type page struct {
	slide *ppt.Slide
}

func hostColor(c layout.Color) ppt.Color { return ppt.NewColor(c.Hex()) }

func fontSize(pt float64) int { return int(math.Round(pt)) }

func (p *page) SetBackground(c layout.Color) error {
	p.slide.SetBackground(ppt.NewFill().SetSolid(hostColor(c)))
	return nil
}

func (p *page) DrawBand(b layout.Band) error {
	rect := p.slide.CreateAutoShape()
	rect.SetAutoShapeType(ppt.AutoShapeRectangle)
	rect.SetPosition(int64(b.Rect.X), int64(b.Rect.Y))
	rect.SetSize(int64(b.Rect.Width), int64(b.Rect.Height))
	rect.SetSolidFill(hostColor(b.Fill))
	rect.SetBorder(&ppt.Border{Style: ppt.BorderNone})
	if b.Title.Text == "" {
		return nil
	}
	return p.DrawText(b.Title)
}

func (p *page) DrawText(t layout.TextBlock) error {
	p.textShape(t.Rect, t.Paragraphs(), t.Style)
	return nil
}

func (p *page) DrawBox(b layout.Box) error {
	shape := p.slide.CreateAutoShape()
	shape.SetAutoShapeType(boxGeometry)
	shape.SetPosition(int64(b.Rect.X), int64(b.Rect.Y))
	shape.SetSize(int64(b.Rect.Width), int64(b.Rect.Height))
	shape.SetSolidFill(hostColor(b.Fill))
	shape.SetBorder(&ppt.Border{Style: ppt.BorderNone})
	p.textShape(b.Rect, b.Paragraphs(), b.Style)
	return nil
}

func (p *page) DrawTable(t layout.Table) error {
	rows, cols := t.Rows(), t.Cols()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("空表格")
	}
	tbl := p.slide.CreateTableShape(rows, cols)
	tbl.SetPosition(int64(t.Rect.X), int64(t.Rect.Y))
	tbl.SetSize(int64(t.Rect.Width), int64(t.Rect.Height))
	for r, row := range t.Cells {
		for c, cell := range row {
			hc := tbl.GetCell(r, c)
			if hc == nil {
				return fmt.Errorf("表格单元 (%d,%d) 不存在", r, c)
			}
			paras := hc.GetParagraphs()
			if len(paras) == 0 {
				hc.SetText("")
				paras = hc.GetParagraphs()
			}
			applyFont(paras[0].CreateTextRun(cell.Text).GetFont(), cell.Style)
			if cell.Fill != nil {
				hc.SetFill(ppt.NewFill().SetSolid(hostColor(*cell.Fill)))
			}
		}
	}
	return nil
}

func (p *page) DrawArrow(a layout.Arrow) error {
	line := p.slide.CreateLineShape()
	x, w := a.From.X, a.To.X-a.From.X
	y, h := a.From.Y, a.To.Y-a.From.Y
	if w < 0 {
		x, w = a.To.X, -w
		line.SetFlipHorizontal(true)
	}
	if h < 0 {
		y, h = a.To.Y, -h
		line.SetFlipVertical(true)
	}
	line.SetPosition(int64(x), int64(y))
	line.SetSize(int64(w), int64(h))
	line.SetLineStyle(ppt.BorderSolid)
	line.SetLineWidth(int(math.Round(a.Weight)))
	line.SetLineColor(hostColor(a.Color))
	line.SetTailEnd(&ppt.LineEnd{Type: ppt.ArrowType("triangle"), Width: ppt.ArrowSizeMed, Length: ppt.ArrowSizeMed})
	return nil
}

func (p *page) textShape(rect layout.Rect, paragraphs []string, style layout.TextStyle) {
	shape := p.slide.CreateRichTextShape()
	shape.SetOffsetX(int64(rect.X)).SetOffsetY(int64(rect.Y)).SetWidth(int64(rect.Width)).SetHeight(int64(rect.Height))
	shape.SetWordWrap(true)
	shape.SetTextAnchor(anchor(style.VAlign))

	for i, text := range paragraphs {
		para := shape.GetActiveParagraph()
		if i > 0 {
			para = shape.CreateParagraph()
		}
		if h, ok := horizontal(style.Align); ok {
			para.SetAlignment(ppt.NewAlignment().SetHorizontal(h))
		}
		applyFont(para.CreateTextRun(text).GetFont(), style)
	}
}

// applyFont 只设置样式中给出的属性，字号为 0 时沿用宿主默认值。
func applyFont(f *ppt.Font, style layout.TextStyle) {
	f.SetName(style.Font).SetBold(style.Bold)
	if style.FontSize > 0 {
		f.SetSize(fontSize(style.FontSize))
	}
	if style.Color != nil {
		f.SetColor(hostColor(*style.Color))
	}
}

func anchor(v layout.VAlign) ppt.TextAnchorType {
	switch v {
	case layout.VAlignMiddle:
		return ppt.TextAnchorMiddle
	case layout.VAlignBottom:
		return ppt.TextAnchorBottom
	default:
		return ppt.TextAnchorTop
	}
}

func horizontal(a layout.Align) (ppt.HorizontalAlignment, bool) {
	switch a {
	case layout.AlignStart:
		return ppt.HorizontalLeft, true
	case layout.AlignCenter:
		return ppt.HorizontalCenter, true
	case layout.AlignEnd:
		return ppt.HorizontalRight, true
	default:
		return "", false
	}
}
