package deck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ByLCY/slidesmith/dsl"
	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/logger"
	"github.com/ByLCY/slidesmith/renderer"
)

// Source 根据主题产出完整的 deck 定义。
type Source interface {
	Deck(theme layout.Theme) (*layout.Deck, error)
}

// SourceFunc 让普通函数实现 Source。
type SourceFunc func(theme layout.Theme) (*layout.Deck, error)

func (f SourceFunc) Deck(theme layout.Theme) (*layout.Deck, error) { return f(theme) }

// DocumentSource 从 deck 文件 AST 解释出 deck。
type DocumentSource struct {
	Doc    *dsl.Document
	Data   any
	Strict bool
}

func (s DocumentSource) Deck(theme layout.Theme) (*layout.Deck, error) {
	return layout.Build(s.Doc, s.Data, layout.BuildOptions{Theme: &theme, StrictPlaceholders: s.Strict})
}

// Report 汇总一次生成的结果。
type Report struct {
	Title    string        `json:"title"`
	Slides   int           `json:"slides"`
	Elements int           `json:"elements"`
	Duration time.Duration `json:"duration"`
}

// Message 返回生成完成的提示文案。
func (r Report) Message() string {
	return fmt.Sprintf("全%dスライドの生成が完了しました！", r.Slides)
}

// Notifier 在生成成功后收到通知。
type Notifier interface {
	Notify(r Report)
}

// NotifierFunc 让普通函数实现 Notifier。
type NotifierFunc func(r Report)

func (f NotifierFunc) Notify(r Report) { f(r) }

// Options 是 Builder 的可选依赖。
type Options struct {
	// Theme 为空时使用 layout.DefaultTheme。
	Theme    *layout.Theme
	Logger   *logger.Logger
	Notifier Notifier
}

// Builder 清空宿主后按固定顺序逐页生成 deck。不提供回滚，失败时已完成的页面保留。
type Builder struct {
	surface  renderer.Surface
	source   Source
	theme    layout.Theme
	log      *logger.Logger
	notifier Notifier
}

// New 构造 Builder。
func New(surface renderer.Surface, source Source, opts Options) *Builder {
	theme := layout.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{
		surface:  surface,
		source:   source,
		theme:    theme,
		log:      log,
		notifier: opts.Notifier,
	}
}

// Resolve 构造完整 deck 而不接触宿主。
func (b *Builder) Resolve() (*layout.Deck, error) {
	if b.source == nil {
		return nil, fmt.Errorf("deck: 缺少 Source")
	}
	d, err := b.source.Deck(b.theme)
	if err != nil {
		return nil, fmt.Errorf("解析 deck 失败: %w", err)
	}
	if d == nil || len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck 为空")
	}
	return d, nil
}

// Reset 从最后一页开始删除宿主上的全部幻灯片。可单独调用，重复调用无副作用。
func (b *Builder) Reset(ctx context.Context) error {
	count := b.surface.SlideCount()
	for i := count - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.surface.RemoveSlide(i); err != nil {
			return &renderer.HostError{Op: "remove", Slide: i + 1, Err: err}
		}
	}
	b.log.With("removed", count).Info("已清空宿主幻灯片")
	return nil
}

// Generate 先解析整个 deck，再清空宿主并逐页追加、绘制。
// 前置条件错误在任何宿主调用之前返回。
func (b *Builder) Generate(ctx context.Context) (Report, error) {
	start := time.Now()
	d, err := b.Resolve()
	if err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := b.Reset(ctx); err != nil {
		return Report{}, err
	}
	if ms, ok := b.surface.(renderer.MetaSetter); ok {
		ms.SetMeta(d.Meta)
	}

	report := Report{Title: d.Meta.Title}
	for i, s := range d.Slides {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		page, err := b.surface.AppendSlide()
		if err != nil {
			return report, &renderer.HostError{Op: "append", Slide: i + 1, Err: err}
		}
		if err := Compose(page, s); err != nil {
			var he *renderer.HostError
			if errors.As(err, &he) {
				he.Slide = i + 1
			}
			return report, err
		}
		report.Slides++
		report.Elements += len(s.Elements)
		b.log.WithFields(map[string]any{"slide": i + 1, "name": s.Name, "elements": len(s.Elements)}).Debug("已生成幻灯片")
	}
	report.Duration = time.Since(start)

	b.log.WithFields(map[string]any{
		"slides":   report.Slides,
		"elements": report.Elements,
		"duration": report.Duration.String(),
	}).Info(report.Message())
	if b.notifier != nil {
		b.notifier.Notify(report)
	}
	return report, nil
}
