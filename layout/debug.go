package layout

import (
	"encoding/json"
	"io"
	"os"
)

// WriteDebugJSON 将解析后的 deck 输出为 JSON，便于调试或比对。
func WriteDebugJSON(deck *Deck, path string) error {
	if deck == nil {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDebugJSON(deck, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodeDebugJSON 把 deck 以缩进 JSON 写入 w。
func EncodeDebugJSON(deck *Deck, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(deck)
}
