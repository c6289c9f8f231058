// Package record 提供一个记录所有宿主调用的内存实现，用于测试与 dry run。
package record

import (
	"fmt"
	"sync"

	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer"
)

// Op 是一次绘制调用。
type Op struct {
	Kind    string         `json:"kind"`
	Element layout.Element `json:"element,omitempty"`
	Color   *layout.Color  `json:"color,omitempty"`
}

// Slide 是内存中的一张幻灯片。
type Slide struct {
	ID  int  `json:"id"`
	Ops []Op `json:"ops"`
}

// Count 返回某类绘制调用的次数。
func (s *Slide) Count(kind string) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// FailFunc 返回非 nil 时模拟宿主失败。slide 从 1 开始，增删页时为 0。
type FailFunc func(op string, slide int) error

// Surface 记录宿主调用。零值可用。
type Surface struct {
	mu     sync.Mutex
	slides []*Slide
	nextID int
	calls  int
	meta   layout.DocumentMeta

	// FailOn 用于注入宿主错误。
	FailOn FailFunc
}

var (
	_ renderer.Surface    = (*Surface)(nil)
	_ renderer.MetaSetter = (*Surface)(nil)
)

// New 返回带有 n 张已存在空白页的 Surface，模拟宿主上已有内容。
func New(existing int) *Surface {
	s := &Surface{}
	for i := 0; i < existing; i++ {
		s.nextID++
		s.slides = append(s.slides, &Slide{ID: s.nextID, Ops: []Op{{Kind: "existing"}}})
	}
	return s
}

func (s *Surface) SlideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slides)
}

func (s *Surface) RemoveSlide(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.fail("remove", 0); err != nil {
		return err
	}
	if index < 0 || index >= len(s.slides) {
		return fmt.Errorf("slide index %d out of range", index)
	}
	s.slides = append(s.slides[:index], s.slides[index+1:]...)
	return nil
}

func (s *Surface) AppendSlide() (renderer.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.fail("append", 0); err != nil {
		return nil, err
	}
	s.nextID++
	slide := &Slide{ID: s.nextID}
	s.slides = append(s.slides, slide)
	return &page{surface: s, slide: slide, index: len(s.slides)}, nil
}

func (s *Surface) SetMeta(meta layout.DocumentMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = meta
}

// Meta 返回最近一次设置的元信息。
func (s *Surface) Meta() layout.DocumentMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// Calls 返回宿主调用总数（含增删页）。
func (s *Surface) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Slides 返回当前幻灯片快照。
func (s *Surface) Slides() []Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Slide, len(s.slides))
	for i, sl := range s.slides {
		out[i] = Slide{ID: sl.ID, Ops: append([]Op(nil), sl.Ops...)}
	}
	return out
}

// Primitives 返回全部绘制调用数量（背景计入）。
func (s *Surface) Primitives() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sl := range s.slides {
		n += len(sl.Ops)
	}
	return n
}

func (s *Surface) fail(op string, slide int) error {
	if s.FailOn == nil {
		return nil
	}
	return s.FailOn(op, slide)
}

type page struct {
	surface *Surface
	slide   *Slide
	index   int
}

func (p *page) record(op Op) error {
	p.surface.mu.Lock()
	defer p.surface.mu.Unlock()
	p.surface.calls++
	if err := p.surface.fail(op.Kind, p.index); err != nil {
		return err
	}
	p.slide.Ops = append(p.slide.Ops, op)
	return nil
}

func (p *page) SetBackground(c layout.Color) error {
	return p.record(Op{Kind: "background", Color: &c})
}

func (p *page) DrawBand(b layout.Band) error {
	return p.record(Op{Kind: string(layout.KindBand), Element: b})
}

func (p *page) DrawText(t layout.TextBlock) error {
	return p.record(Op{Kind: string(layout.KindText), Element: t})
}

func (p *page) DrawBox(b layout.Box) error {
	return p.record(Op{Kind: string(layout.KindBox), Element: b})
}

func (p *page) DrawTable(t layout.Table) error {
	return p.record(Op{Kind: string(layout.KindTable), Element: t})
}

func (p *page) DrawArrow(a layout.Arrow) error {
	return p.record(Op{Kind: string(layout.KindArrow), Element: a})
}
