package layout

import (
	"encoding/json"
	"strings"
)

// 该文件定义布局结果，供宿主渲染与调试 JSON 共用。坐标单位均为 EMU。

// Point 是画布上的一个点。
type Point struct {
	X EMU `json:"x"`
	Y EMU `json:"y"`
}

// Rect 是以左上角定位的矩形。
type Rect struct {
	X      EMU `json:"x"`
	Y      EMU `json:"y"`
	Width  EMU `json:"width"`
	Height EMU `json:"height"`
}

// R 是 Rect 的简写构造函数。
func R(x, y, w, h EMU) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// ElementKind 标识图元类型。
type ElementKind string

const (
	KindBand  ElementKind = "band"
	KindText  ElementKind = "text"
	KindBox   ElementKind = "box"
	KindTable ElementKind = "table"
	KindArrow ElementKind = "arrow"
)

// Element 是可独立绘制的图元。
type Element interface {
	Kind() ElementKind
}

// TextBlock 是绝对定位的文本框，对齐方式作用于每一个段落。
type TextBlock struct {
	Rect  Rect      `json:"rect"`
	Text  string    `json:"text"`
	Style TextStyle `json:"style"`
}

func (TextBlock) Kind() ElementKind { return KindText }

// Paragraphs 按换行拆分段落。
func (t TextBlock) Paragraphs() []string { return splitParagraphs(t.Text) }

// Band 是页眉色带：满宽矩形加上垂直居中的标题。
type Band struct {
	Rect  Rect      `json:"rect"`
	Fill  Color     `json:"fill"`
	Title TextBlock `json:"title"`
}

func (Band) Kind() ElementKind { return KindBand }

// Box 是无边框圆角矩形，标签水平垂直居中。
type Box struct {
	Rect  Rect      `json:"rect"`
	Label string    `json:"label"`
	Fill  Color     `json:"fill"`
	Style TextStyle `json:"style"`
}

func (Box) Kind() ElementKind { return KindBox }

// Paragraphs 按换行拆分标签。
func (b Box) Paragraphs() []string { return splitParagraphs(b.Label) }

// Cell 是表格单元格，Fill 为 nil 表示不填充。
type Cell struct {
	Text  string    `json:"text"`
	Fill  *Color    `json:"fill,omitempty"`
	Style TextStyle `json:"style"`
}

// Table 是行列矩形网格，列宽行高由宿主按 Rect 均分。
type Table struct {
	Rect  Rect     `json:"rect"`
	Cells [][]Cell `json:"cells"`
}

func (Table) Kind() ElementKind { return KindTable }

func (t Table) Rows() int { return len(t.Cells) }

func (t Table) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Arrow 是终点带实心箭头的直线。Weight 单位为 pt。
type Arrow struct {
	From   Point   `json:"from"`
	To     Point   `json:"to"`
	Weight float64 `json:"weight"`
	Color  Color   `json:"color"`
}

func (Arrow) Kind() ElementKind { return KindArrow }

// Slide 是一页的有序图元列表，后绘制的覆盖先绘制的。
type Slide struct {
	Name       string    `json:"name"`
	Background *Color    `json:"background,omitempty"`
	Elements   []Element `json:"elements"`
}

// HasBand 报告该页是否包含页眉色带。
func (s Slide) HasBand() bool {
	for _, el := range s.Elements {
		if el.Kind() == KindBand {
			return true
		}
	}
	return false
}

// MarshalJSON 为每个图元附加 kind 字段。
func (s Slide) MarshalJSON() ([]byte, error) {
	type taggedElement struct {
		Kind ElementKind `json:"kind"`
		Data Element     `json:"data"`
	}
	elems := make([]taggedElement, 0, len(s.Elements))
	for _, el := range s.Elements {
		elems = append(elems, taggedElement{Kind: el.Kind(), Data: el})
	}
	return json.Marshal(struct {
		Name       string          `json:"name"`
		Background *Color          `json:"background,omitempty"`
		Elements   []taggedElement `json:"elements"`
	}{s.Name, s.Background, elems})
}

// DocumentMeta 保存演示文稿元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Deck 是一次生成的完整有序幻灯片集合。
type Deck struct {
	Meta   DocumentMeta `json:"meta"`
	Canvas Canvas       `json:"canvas"`
	Slides []Slide      `json:"slides"`
}

// ElementCount 返回全部图元数量（背景不计）。
func (d *Deck) ElementCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Slides {
		n += len(s.Elements)
	}
	return n
}

func splitParagraphs(s string) []string {
	return strings.Split(s, "\n")
}
