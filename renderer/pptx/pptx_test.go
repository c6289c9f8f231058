package pptx

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/require"
	tabpptx "github.com/tsawler/tabula/pptx"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/decks/sales"
	"github.com/ByLCY/slidesmith/layout"
)

func TestSpareSlideHidesHostMinimum(t *testing.T) {
	t.Parallel()

	s := New(layout.DefaultTheme())
	require.Zero(t, s.SlideCount())
	require.Equal(t, 1, s.Presentation().GetSlideCount())
	require.Error(t, s.RemoveSlide(0))

	_, err := s.AppendSlide()
	require.NoError(t, err)
	require.Equal(t, 1, s.SlideCount())
	require.Equal(t, 1, s.Presentation().GetSlideCount())

	_, err = s.AppendSlide()
	require.NoError(t, err)
	require.Equal(t, 2, s.SlideCount())

	require.NoError(t, s.RemoveSlide(1))
	require.NoError(t, s.RemoveSlide(0))
	require.Zero(t, s.SlideCount())
	require.Equal(t, 1, s.Presentation().GetSlideCount())
}

func TestCanvasFollowsTheme(t *testing.T) {
	t.Parallel()

	s := New(layout.DefaultTheme())
	l := s.Presentation().GetLayout()
	require.Equal(t, int64(9144000), l.CX)
	require.Equal(t, int64(5143500), l.CY)
}

func TestSalesDeckRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "sales.pptx")
	s := New(layout.DefaultTheme())
	_, err := deck.New(s, sales.Source{Data: map[string]any{"company": "テスト株式会社"}}, deck.Options{}).
		Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, sales.SlideCount, s.SlideCount())
	require.Equal(t, "AI社員 営業資料", s.Presentation().GetDocumentProperties().Title)
	require.NoError(t, s.Save(path))

	r, err := tabpptx.Open(path)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, sales.SlideCount, r.SlideCount())

	cover, err := r.Slide(0)
	require.NoError(t, err)
	require.Contains(t, cover.GetText(), "AI社員 導入のご提案")
	require.Contains(t, cover.GetText(), "提供: テスト株式会社")

	pain, err := r.Slide(1)
	require.NoError(t, err)
	require.Len(t, pain.Tables, 1)
	require.Equal(t, "お悩み", strings.TrimSpace(pain.Tables[0].Rows[0][0].Text))
	require.Len(t, pain.Tables[0].Rows, 5)
}

func TestRegenerateOverExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sales.pptx")
	first := New(layout.DefaultTheme())
	_, err := deck.New(first, sales.Source{}, deck.Options{}).Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Save(path))

	again, err := OpenOrNew(path, layout.DefaultTheme())
	require.NoError(t, err)
	require.Equal(t, sales.SlideCount, again.SlideCount())

	_, err = deck.New(again, sales.Source{}, deck.Options{}).Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, sales.SlideCount, again.SlideCount())

	var buf bytes.Buffer
	require.NoError(t, again.WriteTo(&buf))
	require.NotZero(t, buf.Len())
}

func TestOpenOrNewMissingFile(t *testing.T) {
	t.Parallel()

	s, err := OpenOrNew(filepath.Join(t.TempDir(), "missing.pptx"), layout.DefaultTheme())
	require.NoError(t, err)
	require.Zero(t, s.SlideCount())
}

func firstRunFont(t *testing.T, s *Surface) *ppt.Font {
	t.Helper()

	slide, err := s.Presentation().GetSlide(0)
	require.NoError(t, err)
	for _, sh := range slide.GetShapes() {
		rt, ok := sh.(*ppt.RichTextShape)
		if !ok {
			continue
		}
		paras := rt.GetParagraphs()
		require.NotEmpty(t, paras)
		elems := paras[0].GetElements()
		require.NotEmpty(t, elems)
		run, ok := elems[0].(*ppt.TextRun)
		require.True(t, ok)
		return run.GetFont()
	}
	t.Fatal("no text shape on slide")
	return nil
}

func TestTextWithoutSizeKeepsHostDefault(t *testing.T) {
	t.Parallel()

	theme := layout.DefaultTheme()
	block, err := layout.NewBuilder(theme).Text("hello", layout.R(0, 0, 1000000, 500000), layout.TextOptions{})
	require.NoError(t, err)
	require.Zero(t, block.Style.FontSize)

	s := New(theme)
	p, err := s.AppendSlide()
	require.NoError(t, err)
	require.NoError(t, p.DrawText(block))

	font := firstRunFont(t, s)
	require.Equal(t, ppt.NewFont().Size, font.Size)
	require.Equal(t, "Noto Sans JP", font.Name)
}

func TestTextWithSizeIsApplied(t *testing.T) {
	t.Parallel()

	theme := layout.DefaultTheme()
	block, err := layout.NewBuilder(theme).Text("hello", layout.R(0, 0, 1000000, 500000), layout.TextOptions{FontSize: 18})
	require.NoError(t, err)

	s := New(theme)
	p, err := s.AppendSlide()
	require.NoError(t, err)
	require.NoError(t, p.DrawText(block))
	require.Equal(t, 18, firstRunFont(t, s).Size)
}
