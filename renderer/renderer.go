package renderer

import (
	"fmt"

	"github.com/ByLCY/slidesmith/layout"
)

// Surface 是宿主演示文稿的能力：增删幻灯片。
// 实现负责把 EMU 与归一化颜色换算成宿主自己的单位。
type Surface interface {
	SlideCount() int
	RemoveSlide(index int) error
	AppendSlide() (Page, error)
}

// Page 是单张幻灯片上的绘制能力，每个方法对应一次宿主调用。
type Page interface {
	SetBackground(c layout.Color) error
	DrawBand(b layout.Band) error
	DrawText(t layout.TextBlock) error
	DrawBox(b layout.Box) error
	DrawTable(t layout.Table) error
	DrawArrow(a layout.Arrow) error
}

// MetaSetter 由支持文档元信息的宿主实现。
type MetaSetter interface {
	SetMeta(meta layout.DocumentMeta)
}

// HostError 包装宿主调用失败，Unwrap 返回宿主原始错误。
type HostError struct {
	Op    string
	Slide int
	Err   error
}

func (e *HostError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slide > 0 {
		return fmt.Sprintf("host %s (slide %d): %v", e.Op, e.Slide, e.Err)
	}
	return fmt.Sprintf("host %s: %v", e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Draw 把单个图元分派到 Page 对应的方法。
func Draw(p Page, el layout.Element) error {
	switch v := el.(type) {
	case layout.Band:
		return p.DrawBand(v)
	case layout.TextBlock:
		return p.DrawText(v)
	case layout.Box:
		return p.DrawBox(v)
	case layout.Table:
		return p.DrawTable(v)
	case layout.Arrow:
		return p.DrawArrow(v)
	default:
		return fmt.Errorf("不支持的图元类型 %T", el)
	}
}
