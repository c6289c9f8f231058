package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/slidesmith/binding"
	"github.com/ByLCY/slidesmith/dsl"
)

// 分布行内连线箭头距方框边缘的默认距离。
const defaultConnectorInset EMU = 20000

// 不带取值的开关参数。
var flagArgs = map[string]bool{"bold": true, "arrows": true}

// 未声明时可直接 extends 的内建样式。
var builtinStyles = map[string]NamedStyle{
	"Body":  {Name: "Body", Options: TextOptions{Font: FontBody}},
	"Title": {Name: "Title", Options: TextOptions{Font: FontTitle, Bold: Bool(true)}},
	"Mono":  {Name: "Mono", Options: TextOptions{Font: FontMono}},
}

// Build 根据 deck 文件 AST 生成完全解析的幻灯片集合。
// 所有前置条件错误都在这里暴露，返回的 Deck 可以直接交给宿主绘制。
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Deck, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	theme := opts.theme()

	styles, err := collectStyles(doc)
	if err != nil {
		return nil, err
	}
	in := &interpreter{
		b:      NewBuilder(theme),
		styles: styles,
		data:   data,
		strict: opts.StrictPlaceholders,
	}

	meta, err := in.collectMeta(doc)
	if err != nil {
		return nil, err
	}
	deck := &Deck{Meta: meta, Canvas: theme.Canvas()}
	for _, section := range doc.Sections {
		if section.Slide == nil {
			continue
		}
		slide, err := in.buildSlide(section.Slide)
		if err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, slide)
	}
	if len(deck.Slides) == 0 {
		return nil, fmt.Errorf("文档中缺少 slide 段落")
	}
	return deck, nil
}

type interpreter struct {
	b      *Builder
	styles map[string]TextOptions
	data   any
	strict bool
}

func (in *interpreter) buildSlide(sec *dsl.SlideSection) (Slide, error) {
	sb := in.b.Slide(sec.Name)
	_, attrs, err := parseArgs(sec.Params, 0)
	if err != nil {
		return Slide{}, fmt.Errorf("slide %s: %w", sec.Name, err)
	}
	if err := checkKeys(attrs, "background"); err != nil {
		return Slide{}, fmt.Errorf("slide %s: %w", sec.Name, err)
	}
	if bg, ok := attrs["background"]; ok {
		sb.Background(ColorRef(bg))
	}
	if sec.Block != nil {
		if err := in.processBlock(sec.Block, sb); err != nil {
			return Slide{}, fmt.Errorf("slide %s: %w", sec.Name, err)
		}
	}
	return sb.Done()
}

// processBlock 依次处理 slide 内的命令，命令顺序即绘制顺序。
func (in *interpreter) processBlock(block *dsl.Block, sb *SlideBuilder) error {
	for _, stmt := range block.Statements {
		if stmt.Command == nil {
			continue
		}
		cmd := stmt.Command
		var err error
		switch cmd.Name {
		case "header":
			err = in.handleHeader(cmd, sb)
		case "text":
			err = in.handleText(cmd, sb)
		case "box":
			err = in.handleBox(cmd, sb, nil)
		case "table":
			err = in.handleTable(cmd, sb)
		case "row":
			err = in.handleRow(cmd, sb)
		case "arrow":
			err = in.handleArrow(cmd, sb)
		case "background":
			err = in.handleBackground(cmd, sb)
		default:
			err = preconditionf("slide", "未知命令 %q", cmd.Name)
		}
		if err == nil {
			err = sb.Err()
		}
		if err != nil {
			return fmt.Errorf("%s (第 %d 行): %w", cmd.Name, cmd.Pos.Line, err)
		}
	}
	return nil
}

func (in *interpreter) handleHeader(cmd *dsl.Command, sb *SlideBuilder) error {
	var title string
	switch {
	case len(cmd.Args) > 0:
		if len(cmd.Args) > 1 {
			return preconditionf("header", "header 只接受一个标题参数")
		}
		title = cmd.Args[0].Value
	default:
		title = extractText(cmd.Block)
	}
	title, err := in.interpolate(title)
	if err != nil {
		return err
	}
	sb.Header(title)
	return nil
}

func (in *interpreter) handleText(cmd *dsl.Command, sb *SlideBuilder) error {
	pos, attrs, err := parseArgs(cmd.Args, 4)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs, "style", "font", "size", "bold", "color", "align", "valign"); err != nil {
		return err
	}
	rect, err := parseRect(pos)
	if err != nil {
		return err
	}
	opts, err := in.textOptions(attrs)
	if err != nil {
		return err
	}
	body, err := in.interpolate(extractText(cmd.Block))
	if err != nil {
		return err
	}
	sb.Text(body, rect, opts)
	return nil
}

// handleBox 处理方框；rect 非空时表示位于分布行内，坐标由行决定。
func (in *interpreter) handleBox(cmd *dsl.Command, sb *SlideBuilder, rect *Rect) error {
	positional := 4
	if rect != nil {
		positional = 0
	}
	pos, attrs, err := parseArgs(cmd.Args, positional)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs, "style", "fill", "color", "size", "bold"); err != nil {
		return err
	}
	var r Rect
	if rect != nil {
		r = *rect
	} else if r, err = parseRect(pos); err != nil {
		return err
	}
	text, err := in.textOptions(attrs)
	if err != nil {
		return err
	}
	label, err := in.interpolate(extractText(cmd.Block))
	if err != nil {
		return err
	}
	sb.Box(label, r, BoxOptions{
		Fill:     ColorRef(attrs["fill"]),
		Color:    text.Color,
		FontSize: text.FontSize,
		Bold:     text.Bold,
	})
	return nil
}

func (in *interpreter) handleTable(cmd *dsl.Command, sb *SlideBuilder) error {
	pos, attrs, err := parseArgs(cmd.Args, 4)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs); err != nil {
		return err
	}
	rect, err := parseRect(pos)
	if err != nil {
		return err
	}
	if cmd.Block == nil {
		return preconditionf("table", "table 缺少 row 定义")
	}
	var grid [][]string
	for _, stmt := range cmd.Block.Statements {
		if stmt.Command == nil {
			continue
		}
		if stmt.Command.Name != "row" {
			return preconditionf("table", "table 内只允许 row，实际 %q", stmt.Command.Name)
		}
		row := make([]string, 0, len(stmt.Command.Args))
		for _, arg := range stmt.Command.Args {
			cell, err := in.interpolate(arg.Value)
			if err != nil {
				return err
			}
			row = append(row, cell)
		}
		grid = append(grid, row)
	}
	sb.Table(grid, rect)
	return nil
}

// handleRow 将块内的方框在画布宽度上居中分布，可选地在相邻方框间画箭头。
func (in *interpreter) handleRow(cmd *dsl.Command, sb *SlideBuilder) error {
	_, attrs, err := parseArgs(cmd.Args, 0)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs, "y", "width", "height", "gap", "arrows", "inset"); err != nil {
		return err
	}
	lengths := map[string]EMU{"gap": 0, "inset": defaultConnectorInset}
	for _, key := range []string{"y", "width", "height", "gap", "inset"} {
		raw, ok := attrs[key]
		if !ok {
			if _, hasDefault := lengths[key]; hasDefault {
				continue
			}
			return preconditionf("row", "row 缺少参数 %s", key)
		}
		v, err := parseEMU(raw)
		if err != nil {
			return err
		}
		lengths[key] = v
	}

	var boxes []*dsl.Command
	if cmd.Block != nil {
		for _, stmt := range cmd.Block.Statements {
			if stmt.Command == nil {
				continue
			}
			if stmt.Command.Name != "box" {
				return preconditionf("row", "row 内只允许 box，实际 %q", stmt.Command.Name)
			}
			boxes = append(boxes, stmt.Command)
		}
	}
	w, h, y := lengths["width"], lengths["height"], lengths["y"]
	xs, err := in.b.Theme().Row(len(boxes), w, lengths["gap"])
	if err != nil {
		return err
	}
	for i, box := range boxes {
		r := R(xs[i], y, w, h)
		if err := in.handleBox(box, sb, &r); err != nil {
			return err
		}
	}
	if attrs["arrows"] == "true" {
		sb.Connect(xs, w, y+h/2, lengths["inset"])
	}
	return nil
}

func (in *interpreter) handleArrow(cmd *dsl.Command, sb *SlideBuilder) error {
	pos, attrs, err := parseArgs(cmd.Args, 4)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs); err != nil {
		return err
	}
	pts := make([]EMU, 4)
	for i, raw := range pos {
		if pts[i], err = parseEMU(raw); err != nil {
			return err
		}
	}
	sb.Arrow(pts[0], pts[1], pts[2], pts[3])
	return nil
}

func (in *interpreter) handleBackground(cmd *dsl.Command, sb *SlideBuilder) error {
	pos, attrs, err := parseArgs(cmd.Args, 1)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs); err != nil {
		return err
	}
	sb.Background(ColorRef(pos[0]))
	return nil
}

// textOptions 先取命名样式，再叠加行内属性。
func (in *interpreter) textOptions(attrs map[string]string) (TextOptions, error) {
	var base TextOptions
	if name, ok := attrs["style"]; ok {
		named, ok := in.styles[name]
		if !ok {
			return TextOptions{}, preconditionf("style", "未定义的样式 %q", name)
		}
		base = named
	}
	inline, err := optionsFromProps(attrs)
	if err != nil {
		return TextOptions{}, err
	}
	return base.Merge(inline), nil
}

func (in *interpreter) interpolate(text string) (string, error) {
	out := binding.Interpolate(text, in.data)
	if in.strict {
		if left := binding.Placeholders(out); len(left) > 0 {
			return "", preconditionf("binding", "无法解析的占位符: %s", strings.Join(left, ", "))
		}
	}
	return out, nil
}

func collectStyles(doc *dsl.Document) (map[string]TextOptions, error) {
	decls := make(map[string]NamedStyle, len(builtinStyles))
	for name, s := range builtinStyles {
		decls[name] = s
	}
	for _, section := range doc.Sections {
		if section.Style == nil {
			continue
		}
		sec := section.Style
		props := map[string]string{}
		if sec.Block != nil {
			for _, stmt := range sec.Block.Statements {
				if stmt.Assignment == nil {
					continue
				}
				if val := valueToString(stmt.Assignment.Value); val != "" {
					props[stmt.Assignment.Key] = val
				}
			}
		}
		if err := checkKeys(props, "font", "size", "bold", "color", "align", "valign"); err != nil {
			return nil, fmt.Errorf("style %s: %w", sec.Name, err)
		}
		opts, err := optionsFromProps(props)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", sec.Name, err)
		}
		decls[sec.Name] = NamedStyle{Name: sec.Name, Extends: sec.Extends, Options: opts}
	}
	return ResolveStyles(decls)
}

// collectMeta 读取 meta 段，取值与正文一样经过占位符替换与严格模式检查。
func (in *interpreter) collectMeta(doc *dsl.Document) (DocumentMeta, error) {
	meta := DocumentMeta{
		Creator: "slidesmith",
	}
	for _, section := range doc.Sections {
		if section.Meta == nil || section.Meta.Block == nil {
			continue
		}
		for _, stmt := range section.Meta.Block.Statements {
			if stmt.Assignment == nil {
				continue
			}
			key := strings.ToLower(stmt.Assignment.Key)
			if key == "keywords" {
				words := valueToStringSlice(stmt.Assignment.Value)
				meta.Keywords = make([]string, 0, len(words))
				for _, w := range words {
					v, err := in.interpolate(w)
					if err != nil {
						return DocumentMeta{}, fmt.Errorf("meta.keywords: %w", err)
					}
					meta.Keywords = append(meta.Keywords, v)
				}
				continue
			}
			val, err := in.interpolate(valueToString(stmt.Assignment.Value))
			if err != nil {
				return DocumentMeta{}, fmt.Errorf("meta.%s: %w", key, err)
			}
			switch key {
			case "title":
				meta.Title = val
			case "author":
				meta.Author = val
			case "subject":
				meta.Subject = val
			case "creator":
				meta.Creator = val
			}
		}
	}
	return meta, nil
}

// optionsFromProps 把 font/size/bold/color/align/valign 属性转换为 TextOptions。
func optionsFromProps(props map[string]string) (TextOptions, error) {
	var opts TextOptions
	if v, ok := props["font"]; ok {
		opts.Font = FontRef(v)
	}
	if v, ok := props["size"]; ok {
		size, err := parseFontSize(v)
		if err != nil {
			return TextOptions{}, err
		}
		opts.FontSize = size
	}
	if v, ok := props["bold"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return TextOptions{}, preconditionf("style", "bold 取值无效 %q", v)
		}
		opts.Bold = Bool(b)
	}
	if v, ok := props["color"]; ok {
		opts.Color = ColorRef(v)
	}
	if v, ok := props["align"]; ok {
		a, err := ParseAlign(v)
		if err != nil {
			return TextOptions{}, err
		}
		opts.Align = a
	}
	if v, ok := props["valign"]; ok {
		a, err := ParseVAlign(v)
		if err != nil {
			return TextOptions{}, err
		}
		opts.VAlign = a
	}
	return opts, nil
}

// parseArgs 读取 positional 个位置参数，其余按 key value 成对解析；开关参数不带取值。
func parseArgs(args []*dsl.Lexeme, positional int) ([]string, map[string]string, error) {
	attrs := map[string]string{}
	if len(args) < positional {
		return nil, nil, preconditionf("args", "需要 %d 个位置参数，实际 %d 个", positional, len(args))
	}
	pos := make([]string, positional)
	for i := 0; i < positional; i++ {
		pos[i] = args[i].Value
	}
	for cursor := positional; cursor < len(args); {
		key := args[cursor].Value
		if flagArgs[key] {
			attrs[key] = "true"
			cursor++
			continue
		}
		if cursor+1 >= len(args) {
			return nil, nil, preconditionf("args", "参数 %s 缺少取值", key)
		}
		attrs[key] = args[cursor+1].Value
		cursor += 2
	}
	return pos, attrs, nil
}

func checkKeys(attrs map[string]string, allowed ...string) error {
	for key := range attrs {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return preconditionf("args", "不支持的参数 %q", key)
		}
	}
	return nil
}

func parseRect(pos []string) (Rect, error) {
	if len(pos) != 4 {
		return Rect{}, preconditionf("rect", "矩形需要 4 个数值")
	}
	var vals [4]EMU
	for i, raw := range pos {
		v, err := parseEMU(raw)
		if err != nil {
			return Rect{}, err
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return Rect{}, preconditionf("rect", "宽高不能为负")
	}
	return R(vals[0], vals[1], vals[2], vals[3]), nil
}

// parseEMU 解析长度；裸数字按 EMU 处理。
func parseEMU(raw string) (EMU, error) {
	l, ok := ParseRawLengthStr(raw)
	if !ok {
		return 0, preconditionf("length", "无效长度 %q", raw)
	}
	return l.EMU(), nil
}

// parseFontSize 解析字号；裸数字按 pt 处理。
func parseFontSize(raw string) (float64, error) {
	l, ok := ParseRawLengthStr(raw)
	if !ok || l.Value <= 0 {
		return 0, preconditionf("style", "无效字号 %q", raw)
	}
	if l.Unit == UnitEMU {
		return l.Value, nil
	}
	return l.ToPT(), nil
}

func extractText(block *dsl.Block) string {
	if block == nil {
		return ""
	}
	var parts []string
	for _, stmt := range block.Statements {
		if stmt.Text != nil {
			parts = append(parts, string(stmt.Text.Value))
		}
	}
	return strings.Join(parts, "\n")
}

func valueToString(val *dsl.Value) string {
	if val == nil {
		return ""
	}
	switch {
	case val.String != nil:
		return string(*val.String)
	case val.Number != nil:
		return *val.Number
	case val.Color != nil:
		return *val.Color
	case val.Expr != nil:
		var builder strings.Builder
		for _, part := range val.Expr.Parts {
			builder.WriteString(part.Value)
		}
		return builder.String()
	default:
		return ""
	}
}

func valueToStringSlice(val *dsl.Value) []string {
	if val == nil {
		return nil
	}
	if val.Array != nil {
		out := make([]string, 0, len(val.Array.Values))
		for _, item := range val.Array.Values {
			if s := valueToString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := valueToString(val); s != "" {
		return []string{s}
	}
	return nil
}
