package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arjunmahishi/tshl/theme"
	"github.com/arjunmahishi/tshl/types"
)

// Render writes source to w, styling each span with its capture's style
// from mapping. Text outside spans, and spans without a style, are written
// as is.
func Render(w io.Writer, source []byte, spans []types.Span, mapping theme.Map) error {
	var pos uint32
	for _, sp := range spans {
		if sp.StartByte < pos || int(sp.EndByte) > len(source) {
			continue
		}
		if _, err := w.Write(source[pos:sp.StartByte]); err != nil {
			return err
		}

		text := string(source[sp.StartByte:sp.EndByte])
		if style, ok := mapping.Lookup(sp.Capture); ok && !style.IsZero() {
			text = renderLines(style.Lipgloss(), text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		pos = sp.EndByte
	}
	_, err := w.Write(source[pos:])
	return err
}

// renderLines styles each line on its own; lipgloss pads multi-line blocks
// to a common width.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
