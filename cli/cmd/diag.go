package cmd

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justDeeevin/juicy-main/entry"
)

// diagStyle holds the styles of a rendered diagnostic, bound to the
// renderer of its output.
type diagStyle struct {
	loc, label, hint, gutter, mark lipgloss.Style
}

func newDiagStyle(w io.Writer) diagStyle {
	r := lipgloss.NewRenderer(w)

	return diagStyle{
		loc:    r.NewStyle().Bold(true),
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		hint:   r.NewStyle().Foreground(lipgloss.Color("6")),
		gutter: r.NewStyle().Foreground(lipgloss.Color("8")),
		mark:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

// renderDiagnostic writes d in the compiler's "file:line:col: error: msg"
// form, followed by the offending source line with its span underlined.
func renderDiagnostic(w io.Writer, d *entry.Diagnostic, src []byte) error {
	s := newDiagStyle(w)

	var b strings.Builder

	if d.Position.IsValid() {
		b.WriteString(s.loc.Render(d.Position.String() + ":"))
		b.WriteByte(' ')
	}

	b.WriteString(s.label.Render("error:"))
	b.WriteByte(' ')
	b.WriteString(d.Msg)
	b.WriteByte('\n')

	if line, col, ok := sourceLine(src, d.Position.Offset); ok && d.Position.IsValid() {
		no := strconv.Itoa(d.Position.Line)
		pad := strings.Repeat(" ", len(no))

		width := int(d.End - d.Pos)
		width = max(1, min(width, len(line)-col))

		b.WriteString(s.gutter.Render(" " + no + " | "))
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(s.gutter.Render(" " + pad + " | "))
		b.WriteString(indentLike(line[:col]))
		b.WriteString(s.mark.Render("^" + strings.Repeat("~", width-1)))
		b.WriteByte('\n')
	}

	if d.Hint != "" {
		b.WriteString(s.hint.Render("hint:"))
		b.WriteByte(' ')
		b.WriteString(d.Hint)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// sourceLine returns the line of src holding offset and the byte column of
// offset within it.
func sourceLine(src []byte, offset int) (string, int, bool) {
	if offset < 0 || offset > len(src) {
		return "", 0, false
	}

	start := bytes.LastIndexByte(src[:offset], '\n') + 1

	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}

	return string(src[start:end]), offset - start, true
}

// indentLike returns blanks that occupy the same columns as prefix,
// keeping tabs so the marker lines up under the source.
func indentLike(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}

		return ' '
	}, prefix)
}
