package sales

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer/record"
)

var _ deck.Source = Source{}

func TestDeckHasTwentySlidesInOrder(t *testing.T) {
	t.Parallel()

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)
	require.Len(t, d.Slides, SlideCount)

	names := Names()
	for i, s := range d.Slides {
		require.Equal(t, names[i], s.Name)
		require.NotEmpty(t, s.Elements, "slide %s", s.Name)
	}
	require.Equal(t, "AI社員 営業資料", d.Meta.Title)
}

func TestOnlyCoverAndClosingUseBackground(t *testing.T) {
	t.Parallel()

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)

	navy, err := layout.DefaultTheme().Color(layout.Navy)
	require.NoError(t, err)

	for i, s := range d.Slides {
		first, last := i == 0, i == len(d.Slides)-1
		if first || last {
			require.NotNil(t, s.Background, "slide %d", i+1)
			require.Equal(t, navy, *s.Background)
			require.False(t, s.HasBand(), "slide %d", i+1)
			continue
		}
		require.Nil(t, s.Background, "slide %d", i+1)
		require.True(t, s.HasBand(), "slide %d", i+1)
		band, ok := s.Elements[0].(layout.Band)
		require.True(t, ok, "slide %d 第一个图元应为页眉", i+1)
		require.NotEmpty(t, band.Title.Text)
	}
}

func TestCoverInterpolatesCompany(t *testing.T) {
	t.Parallel()

	find := func(d *layout.Deck, needle string) bool {
		for _, el := range d.Slides[0].Elements {
			if tb, ok := el.(layout.TextBlock); ok && strings.Contains(tb.Text, needle) {
				return true
			}
		}
		return false
	}

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)
	require.True(t, find(d, "提供: [貴社名]"))

	d, err = Source{Data: map[string]any{"company": "株式会社サンプル"}}.Deck(layout.DefaultTheme())
	require.NoError(t, err)
	require.True(t, find(d, "提供: 株式会社サンプル"))
}

func TestChannelsRowIsCentered(t *testing.T) {
	t.Parallel()

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)

	var xs []layout.EMU
	for _, el := range d.Slides[3].Elements {
		if b, ok := el.(layout.Box); ok && b.Rect.Y == 1500000 {
			xs = append(xs, b.Rect.X)
		}
	}
	require.Equal(t, []layout.EMU{872000, 2772000, 4672000, 6572000}, xs)
}

func TestWorkflowConnectors(t *testing.T) {
	t.Parallel()

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)

	var arrows []layout.Arrow
	for _, el := range d.Slides[6].Elements {
		if a, ok := el.(layout.Arrow); ok {
			arrows = append(arrows, a)
		}
	}
	require.Len(t, arrows, 5)
	for _, a := range arrows {
		require.Equal(t, a.From.Y, a.To.Y)
		require.Equal(t, layout.EMU(1600000), a.From.Y)
		require.Equal(t, layout.EMU(110000), a.To.X-a.From.X)
	}
}

func TestTablesAreRectangular(t *testing.T) {
	t.Parallel()

	d, err := Source{}.Deck(layout.DefaultTheme())
	require.NoError(t, err)

	tables := 0
	for _, s := range d.Slides {
		for _, el := range s.Elements {
			tbl, ok := el.(layout.Table)
			if !ok {
				continue
			}
			tables++
			for _, row := range tbl.Cells {
				require.Len(t, row, tbl.Cols())
			}
		}
	}
	require.Equal(t, 9, tables)
}

func TestGenerateEndToEnd(t *testing.T) {
	t.Parallel()

	surface := record.New(7)
	var message string
	b := deck.New(surface, Source{}, deck.Options{
		Notifier: deck.NotifierFunc(func(r deck.Report) { message = r.Message() }),
	})

	report, err := b.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, SlideCount, report.Slides)
	require.Equal(t, SlideCount, surface.SlideCount())
	require.Equal(t, "全20スライドの生成が完了しました！", message)

	slides := surface.Slides()
	require.Equal(t, "background", slides[0].Ops[0].Kind)
	require.Equal(t, "background", slides[SlideCount-1].Ops[0].Kind)
	for i := 1; i < SlideCount-1; i++ {
		require.Equal(t, 1, slides[i].Count("band"), "slide %d", i+1)
	}
}
