package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/slidesmith/dsl"
)

const sampleDeck = `
deck Sales v1 {
  meta {
    title: "AI社員 営業資料"
    keywords: [
      "sales"
      "internal"
    ]
  }

  style Lead extends Body {
    size: 14pt; color: DARK_GRAY; align: center
  }

  slide cover background NAVY {
    text 400000 1200000 8344000 800000 font TITLE size 40pt bold color WHITE align center valign middle { "AI社員 導入のご提案" }
  }

  // 痛点
  slide pain {
    header "御社、こんなお悩みありませんか？"
    table 400000 800000 8344000 2600000 {
      row "お悩み" "よくある現状"
      row "右腕がいない" "${company}"
    }
    row y 1500000 width 1700000 height 500000 gap 200000 arrows {
      box fill LIGHT_GRAY color #1A1F40 size 14 { "Notion" }
      box fill LIGHT_GRAY color NAVY size 14 { "Slack" }
    }
    arrow 4572000 2050000 4572000 2450000
  }
}
`

func TestParseDeck(t *testing.T) {
	doc, err := dsl.ParseString(sampleDeck)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Name != "Sales" || doc.Version != "v1" {
		t.Fatalf("expected deck Sales v1, got %s %s", doc.Name, doc.Version)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}
	kinds := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind())
	}
	if got := strings.Join(kinds, ","); got != "meta,style,slide,slide" {
		t.Fatalf("unexpected section kinds: %s", got)
	}

	meta := doc.Sections[0].Meta
	title := meta.Block.Statements[0].Assignment
	if title == nil || title.Key != "title" || string(*title.Value.String) != "AI社員 営業資料" {
		t.Fatalf("expected title assignment, got %+v", meta.Block.Statements[0])
	}
	keywords := meta.Block.Statements[1].Assignment
	if keywords == nil || keywords.Value.Array == nil || len(keywords.Value.Array.Values) != 2 {
		t.Fatalf("expected keywords array with 2 values")
	}

	style := doc.Sections[1].Style
	if style.Name != "Lead" || style.Extends != "Body" {
		t.Fatalf("unexpected style header: %+v", style)
	}
	if len(style.Block.Statements) != 3 {
		t.Fatalf("expected 3 style assignments, got %d", len(style.Block.Statements))
	}
	size := style.Block.Statements[0].Assignment
	if size == nil || size.Value.Number == nil || *size.Value.Number != "14pt" {
		t.Fatalf("expected size 14pt, got %+v", style.Block.Statements[0])
	}
	color := style.Block.Statements[1].Assignment
	if color == nil || color.Value.Expr == nil || tokensToString(color.Value.Expr.Parts) != "DARK_GRAY" {
		t.Fatalf("expected color token expression, got %+v", style.Block.Statements[1])
	}

	cover := doc.Sections[2].Slide
	if cover.Name != "cover" || len(cover.Params) != 2 || cover.Params[1].Value != "NAVY" {
		t.Fatalf("unexpected cover params: %+v", cover.Params)
	}
	text := cover.Block.Statements[0].Command
	if text == nil || text.Name != "text" {
		t.Fatalf("expected text command, got %+v", cover.Block.Statements[0])
	}
	if text.Args[0].Value != "400000" || text.Args[7].Value != "40pt" {
		t.Fatalf("unexpected text args: %s", tokensToString(text.Args))
	}
	if text.Block == nil || text.Block.Statements[0].Text == nil {
		t.Fatalf("text command missing literal")
	}

	pain := doc.Sections[3].Slide
	if len(pain.Block.Statements) != 4 {
		t.Fatalf("expected 4 commands on pain slide, got %d", len(pain.Block.Statements))
	}
	header := pain.Block.Statements[0].Command
	if header.Name != "header" || header.Args[0].Type != "String" || header.Args[0].Value != "御社、こんなお悩みありませんか？" {
		t.Fatalf("unexpected header: %+v", header.Args)
	}
	table := pain.Block.Statements[1].Command
	if table.Name != "table" || len(table.Block.Statements) != 2 {
		t.Fatalf("expected table with 2 rows")
	}
	if got := table.Block.Statements[1].Command.Args[1].Value; got != "${company}" {
		t.Fatalf("expected placeholder kept verbatim, got %s", got)
	}
	row := pain.Block.Statements[2].Command
	if row.Name != "row" || row.Args[len(row.Args)-1].Value != "arrows" || len(row.Block.Statements) != 2 {
		t.Fatalf("unexpected row command: %s", tokensToString(row.Args))
	}
	box := row.Block.Statements[0].Command
	if box.Args[3].Type != "Color" || box.Args[3].Value != "#1A1F40" {
		t.Fatalf("expected hex color arg, got %+v", box.Args[3])
	}
	arrow := pain.Block.Statements[3].Command
	if arrow.Name != "arrow" || len(arrow.Args) != 4 || arrow.Block != nil {
		t.Fatalf("unexpected arrow command: %+v", arrow)
	}
}

func TestParseRejectsMissingDeckHeader(t *testing.T) {
	if _, err := dsl.ParseString(`slide a { header "x" }`); err == nil {
		t.Fatalf("expected error for document without deck header")
	}
}

func tokensToString(parts []*dsl.Lexeme) string {
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, p.Value)
	}
	return strings.Join(values, " ")
}
