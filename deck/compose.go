package deck

import (
	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer"
)

// Compose 按定义顺序把一页的图元交给宿主，先设置背景。
// 图元之间没有依赖，返回第一个宿主错误。
func Compose(page renderer.Page, s layout.Slide) error {
	if s.Background != nil {
		if err := page.SetBackground(*s.Background); err != nil {
			return &renderer.HostError{Op: "background", Err: err}
		}
	}
	for _, el := range s.Elements {
		if err := renderer.Draw(page, el); err != nil {
			return &renderer.HostError{Op: string(el.Kind()), Err: err}
		}
	}
	return nil
}
