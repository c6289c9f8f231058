package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const miniDeck = `
deck Mini v1 {
  meta {
    title: "mini"
  }

  slide first background NAVY {
    text 400000 1200000 8344000 800000 color WHITE align center { "提供: ${company|[貴社名]}" }
  }

  slide second {
    header "二枚目"
    table 400000 800000 8344000 1000000 {
      row "項目" "内容"
      row "a" "b"
    }
  }
}
`

// execute 以隔离的配置路径运行根命令，返回标准输出。
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInspectBuiltinDeck(t *testing.T) {
	t.Parallel()

	debug := filepath.Join(t.TempDir(), "layout.json")
	out, err := execute(t, "inspect", "--debug", debug)
	require.NoError(t, err)
	require.Contains(t, out, "全20スライドの生成が完了しました！")
	require.Contains(t, out, "cover")
	require.Contains(t, out, "cta")

	data, err := os.ReadFile(debug)
	require.NoError(t, err)
	require.Contains(t, string(data), `"slides"`)
}

func TestInspectDeckFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "mini.deck", miniDeck)
	out, err := execute(t, "inspect", "--deck", path)
	require.NoError(t, err)
	require.Contains(t, out, "全2スライドの生成が完了しました！")
	require.Contains(t, out, "second")
}

func TestInspectRejectsBrokenDeck(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.deck", "deck {{{")
	_, err := execute(t, "inspect", "--deck", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "解析 deck 文件失败")
}

func TestGenerateThenVerify(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "deck", "sales.pptx")
	stdout, err := execute(t, "generate", "-o", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "全20スライドの生成が完了しました！")
	require.FileExists(t, out)

	stdout, err = execute(t, "verify", out, "--expect", "20")
	require.NoError(t, err)
	require.Contains(t, stdout, "AI社員 導入のご提案")
	require.Contains(t, stdout, "20 slides")

	_, err = execute(t, "verify", out, "--expect", "3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "页数不符")
}

func TestGenerateIntoExistingFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "sales.pptx")
	_, err := execute(t, "generate", "-o", out)
	require.NoError(t, err)

	deckPath := writeFile(t, "mini.deck", miniDeck)
	_, err = execute(t, "generate", "--deck", deckPath, "--into", out)
	require.NoError(t, err)

	stdout, err := execute(t, "verify", out, "--expect", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "提供: [貴社名]")
}

func TestResetRemovesSlides(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "sales.pptx")
	_, err := execute(t, "generate", "-o", out)
	require.NoError(t, err)

	stdout, err := execute(t, "reset", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "已删除 20 张幻灯片")
}

func TestPreviewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "preview", "--format", "gif")
	require.Error(t, err)
	require.Contains(t, err.Error(), "gif")
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	require.Equal(t, "out/sales.pdf", replaceExt("out/sales.pptx", ".pdf"))
	require.Equal(t, "slides_%d.png", replaceExt("slides.png", "_%d.png"))
}

func TestDataFlagOverridesPlaceholders(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "sales.pptx")
	_, err := execute(t, "--data", `{"company":"株式会社サンプル"}`, "generate", "-o", out)
	require.NoError(t, err)

	stdout, err := execute(t, "verify", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "AI社員 導入のご提案")

	_, err = execute(t, "--data", "{", "inspect")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--data")
}
