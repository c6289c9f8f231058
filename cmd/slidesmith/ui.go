package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/renderer/record"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1A1F40")).
			Padding(0, 2)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F7F7F"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ED7D21"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// bannerNotifier 把完成提示写到 w。
func bannerNotifier(w io.Writer, output string) deck.Notifier {
	return deck.NotifierFunc(func(r deck.Report) {
		fmt.Fprintln(w, bannerStyle.Render(r.Message()))
		detail := fmt.Sprintf("%s · %d elements · %s", r.Title, r.Elements, r.Duration.Round(time.Millisecond))
		if output != "" {
			detail += " → " + output
		}
		fmt.Fprintln(w, detailStyle.Render(detail))
	})
}

var opKinds = []string{"background", "band", "text", "box", "table", "arrow"}

// slideTable 按页汇总各类绘制调用的次数。
func slideTable(names []string, slides []record.Slide) string {
	headers := append([]string{"#", "name"}, opKinds...)
	rows := make([][]string, 0, len(slides))
	for i := range slides {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		row := []string{strconv.Itoa(i + 1), name}
		for _, kind := range opKinds {
			row = append(row, strconv.Itoa(slides[i].Count(kind)))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(detailStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
