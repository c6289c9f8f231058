package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer"
)

const (
	tableBorderWidth = 0.2
	// 文本框内边距，与演示文稿默认值一致（mm）。
	insetX = 91440.0 / 36000
	insetY = 45720.0 / 36000
	// 圆角半径占短边的比例。
	cornerRatio = 0.16667

	// defaultFontSize 与 PowerPoint 宿主的默认字号一致，用于未指定字号的文本。
	defaultFontSize = 10.0
)

var transparent = color.RGBA{}

// 系统字体查找失败时依次尝试的字体。
var fallbackFamilies = []string{"Noto Sans CJK JP", "Noto Sans JP", "IPAexGothic", "DejaVu Sans", "Arial"}

// Surface 把图元绘制到 github.com/tdewolff/canvas 画布上，最终输出为多页 PDF。
// 坐标与尺寸统一换算成毫米。
type Surface struct {
	width, height float64
	pages         []*pageCanvas
	meta          layout.DocumentMeta

	fontBlobs map[string][]byte // by family name
	fallback  []byte

	fontMu       sync.Mutex
	fontFamilies map[string]*fontFamilyEntry
}

var (
	_ renderer.Surface    = (*Surface)(nil)
	_ renderer.MetaSetter = (*Surface)(nil)
)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// Options configures the canvas surface.
type Options struct {
	// Fonts 按字体族名提供字体文件，未提供的族从系统字体中查找。
	Fonts    map[string]Resource
	Fallback Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

func (r Resource) load() ([]byte, error) {
	if len(r.Bytes) > 0 {
		return r.Bytes, nil
	}
	if r.Path == "" {
		return nil, nil
	}
	return os.ReadFile(r.Path)
}

// New 创建画布尺寸取自 c 的 Surface。
func New(c layout.Canvas, opts Options) (*Surface, error) {
	s := &Surface{
		width:        c.Width.MM(),
		height:       c.Height.MM(),
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*fontFamilyEntry{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		data, err := res.load()
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", name, err)
		}
		if len(data) > 0 {
			s.fontBlobs[name] = data
		}
	}
	data, err := opts.Fallback.load()
	if err != nil {
		return nil, fmt.Errorf("读取后备字体失败: %w", err)
	}
	s.fallback = data
	return s, nil
}

type pageCanvas struct {
	surface *Surface
	canvas  *canvas.Canvas
	ctx     *canvas.Context
}

func (s *Surface) SlideCount() int { return len(s.pages) }

func (s *Surface) RemoveSlide(index int) error {
	if index < 0 || index >= len(s.pages) {
		return fmt.Errorf("slide index %d out of range", index)
	}
	s.pages = append(s.pages[:index], s.pages[index+1:]...)
	return nil
}

func (s *Surface) AppendSlide() (renderer.Page, error) {
	c := canvas.New(s.width, s.height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	p := &pageCanvas{surface: s, canvas: c, ctx: ctx}
	s.pages = append(s.pages, p)
	return p, nil
}

func (s *Surface) SetMeta(meta layout.DocumentMeta) { s.meta = meta }

// WritePDF 把全部页面写成一个 PDF。
func (s *Surface) WritePDF(w io.Writer) error {
	if len(s.pages) == 0 {
		return fmt.Errorf("缺少可渲染的页面")
	}
	writer := pdf.New(w, s.width, s.height, nil)
	s.applyMeta(writer)
	for i, p := range s.pages {
		if i > 0 {
			writer.NewPage(s.width, s.height)
		}
		p.canvas.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

// Render 返回 PDF 字节。
func (s *Surface) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WritePDF(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save 写入 PDF 文件，必要时创建目录。
func (s *Surface) Save(path string) error {
	data, err := s.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Surface) applyMeta(writer *pdf.PDF) {
	if writer == nil {
		return
	}
	keywords := strings.Join(s.meta.Keywords, ", ")
	writer.SetInfo(s.meta.Title, s.meta.Subject, keywords, s.meta.Author, s.meta.Creator)
}

// CheckFonts 确认主题用到的每个字体族都能加载。
func (s *Surface) CheckFonts(theme layout.Theme) error {
	for _, name := range theme.FontFamilies() {
		if _, _, err := s.ensureFontFamily(name, false); err != nil {
			return err
		}
	}
	return nil
}

func (p *pageCanvas) SetBackground(c layout.Color) error {
	p.ctx.SetFillColor(colorFromLayout(c))
	p.ctx.SetStrokeColor(transparent)
	p.ctx.DrawPath(0, 0, canvas.Rectangle(p.surface.width, p.surface.height))
	return nil
}

func (p *pageCanvas) DrawBand(b layout.Band) error {
	p.fillRect(b.Rect, b.Fill)
	if b.Title.Text == "" {
		return nil
	}
	return p.DrawText(b.Title)
}

func (p *pageCanvas) DrawText(t layout.TextBlock) error {
	return p.drawTextBox(t.Rect, t.Paragraphs(), t.Style)
}

func (p *pageCanvas) DrawBox(b layout.Box) error {
	w, h := b.Rect.Width.MM(), b.Rect.Height.MM()
	p.ctx.SetFillColor(colorFromLayout(b.Fill))
	p.ctx.SetStrokeColor(transparent)
	p.ctx.DrawPath(b.Rect.X.MM(), b.Rect.Y.MM(), canvas.RoundedRectangle(w, h, math.Min(w, h)*cornerRatio))
	return p.drawTextBox(b.Rect, b.Paragraphs(), b.Style)
}

func (p *pageCanvas) DrawTable(t layout.Table) error {
	rows, cols := t.Rows(), t.Cols()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("空表格")
	}
	colW := t.Rect.Width / layout.EMU(cols)
	rowH := t.Rect.Height / layout.EMU(rows)
	for r, row := range t.Cells {
		y := t.Rect.Y + layout.EMU(r)*rowH
		for c, cell := range row {
			x := t.Rect.X + layout.EMU(c)*colW
			var fill color.Color = canvas.White
			if cell.Fill != nil {
				fill = colorFromLayout(*cell.Fill)
			}
			p.ctx.SetFillColor(fill)
			p.ctx.SetStrokeColor(canvas.Hex("#bfbfbf"))
			p.ctx.SetStrokeWidth(tableBorderWidth)
			p.ctx.DrawPath(x.MM(), y.MM(), canvas.Rectangle(colW.MM(), rowH.MM()))

			style := cell.Style
			style.VAlign = layout.VAlignMiddle
			if err := p.drawTextBox(layout.R(x, y, colW, rowH), strings.Split(cell.Text, "\n"), style); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *pageCanvas) DrawArrow(a layout.Arrow) error {
	sw := toMm(a.Weight)
	x1, y1 := a.From.X.MM(), a.From.Y.MM()
	x2, y2 := a.To.X.MM(), a.To.Y.MM()

	p.ctx.SetStrokeColor(colorFromLayout(a.Color))
	p.ctx.SetStrokeWidth(sw)
	p.ctx.SetFillColor(transparent)
	line := &canvas.Path{}
	line.MoveTo(0, 0)
	line.LineTo(x2-x1, y2-y1)
	p.ctx.DrawPath(x1, y1, line)

	head, ok := arrowHead(x1, y1, x2, y2, sw)
	if !ok {
		return nil
	}
	p.ctx.SetFillColor(colorFromLayout(a.Color))
	p.ctx.SetStrokeColor(transparent)
	tri := &canvas.Path{}
	tri.MoveTo(head[0][0]-x2, head[0][1]-y2)
	tri.LineTo(head[1][0]-x2, head[1][1]-y2)
	tri.LineTo(head[2][0]-x2, head[2][1]-y2)
	tri.Close()
	p.ctx.DrawPath(x2, y2, tri)
	return nil
}

// arrowHead 返回终点处三角箭头的三个顶点，起终点重合时返回 false。
func arrowHead(x1, y1, x2, y2, sw float64) ([3][2]float64, bool) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return [3][2]float64{}, false
	}
	ux, uy := dx/length, dy/length
	headLen := math.Min(3*sw+0.8, length)
	half := headLen / 2
	bx, by := x2-ux*headLen, y2-uy*headLen
	return [3][2]float64{
		{x2, y2},
		{bx - uy*half, by + ux*half},
		{bx + uy*half, by - ux*half},
	}, true
}

func (p *pageCanvas) fillRect(r layout.Rect, c layout.Color) {
	p.ctx.SetFillColor(colorFromLayout(c))
	p.ctx.SetStrokeColor(transparent)
	p.ctx.DrawPath(r.X.MM(), r.Y.MM(), canvas.Rectangle(r.Width.MM(), r.Height.MM()))
}

func (p *pageCanvas) drawTextBox(rect layout.Rect, paragraphs []string, style layout.TextStyle) error {
	col := layout.Color{}
	if style.Color != nil {
		col = *style.Color
	}
	face, err := p.surface.fontFace(style.Font, style.Bold, fontSizeOf(style), col)
	if err != nil {
		return err
	}

	x, y := rect.X.MM()+insetX, rect.Y.MM()+insetY
	w, h := rect.Width.MM()-2*insetX, rect.Height.MM()-2*insetY

	var lines []textLine
	for _, para := range paragraphs {
		lines = append(lines, greedyWrapTokens(para, w, face)...)
	}
	metrics := face.Metrics()
	lineHeight := metrics.LineHeight
	total := lineHeight * float64(len(lines))

	cursorY := y
	switch style.VAlign {
	case layout.VAlignMiddle:
		cursorY = y + (h-total)/2
	case layout.VAlignBottom:
		cursorY = y + h - total
	}

	// 处理水平对齐：start（默认）/center/end。
	var textAlign canvas.TextAlign
	var anchorX float64
	switch style.Align {
	case layout.AlignCenter:
		textAlign = canvas.Center
		anchorX = x + w/2
	case layout.AlignEnd:
		textAlign = canvas.Right
		anchorX = x + w
	default:
		textAlign = canvas.Left
		anchorX = x
	}

	for _, line := range lines {
		// 基线位置：行顶部加上字体上升部
		baseline := cursorY + metrics.Ascent
		p.ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line.Content, textAlign))
		cursorY += lineHeight
	}
	return nil
}

func fontSizeOf(style layout.TextStyle) float64 {
	if style.FontSize > 0 {
		return style.FontSize
	}
	return defaultFontSize
}

func (s *Surface) fontFace(name string, bold bool, sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	family, style, err := s.ensureFontFamily(name, bold)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, colorFromLayout(col), style, canvas.FontNormal), nil
}

func (s *Surface) ensureFontFamily(name string, bold bool) (*canvas.FontFamily, canvas.FontStyle, error) {
	key := fontCacheKey(name, bold)
	s.fontMu.Lock()
	defer s.fontMu.Unlock()

	if entry, ok := s.fontFamilies[key]; ok {
		return entry.family, entry.style, nil
	}

	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	family := canvas.NewFontFamily(name)
	if err := s.loadFontIntoFamily(family, name, style); err != nil {
		return nil, canvas.FontRegular, err
	}
	s.fontFamilies[key] = &fontFamilyEntry{family: family, style: style}
	return family, style, nil
}

func (s *Surface) loadFontIntoFamily(family *canvas.FontFamily, name string, style canvas.FontStyle) error {
	if data, ok := s.fontBlobs[name]; ok {
		return family.LoadFont(data, 0, style)
	}
	if err := family.LoadSystemFont(name, style); err == nil {
		return nil
	}
	if len(s.fallback) > 0 {
		return family.LoadFont(s.fallback, 0, style)
	}
	for _, fb := range fallbackFamilies {
		if err := family.LoadSystemFont(fb, style); err == nil {
			return nil
		}
	}
	return fmt.Errorf("找不到字体 %s，且没有可用的后备字体", name)
}

func fontCacheKey(name string, bold bool) string {
	return fmt.Sprintf("%s|%t", name, bold)
}

func colorFromLayout(c layout.Color) color.Color {
	return c.Colorful()
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * 25.4 / 72 }

type textLine struct {
	Content string
	Width   float64
}

// textWidther 是换行所需的最小字体能力。
type textWidther interface {
	TextWidth(s string) float64
}

// greedyWrapTokens 优先在空白处折行，单个词超过宽度时在词内拆分。宽度单位为 mm。
func greedyWrapTokens(content string, width float64, face textWidther) []textLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	tokens := tokenizeContent(content)
	var lines []textLine
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, textLine{})
			}
			return
		}
		lines = append(lines, textLine{Content: builder.String(), Width: currentWidth})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokens {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(true)
	return lines
}

func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitTokenByWidth(token string, limit float64, face textWidther) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && utf8.RuneCountInString(builder.String()) > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
