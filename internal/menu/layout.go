package menu

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrNoColumns is returned by Compose for an empty column set. An empty menu
// reaching the composer is a logic error in the caller, not user input.
var ErrNoColumns = errors.New("menu: no columns to compose")

// Layout constants.
const (
	// headChrome is the fixed decoration around a static head line:
	// " [_" + key + "_] " + hint.
	headChrome = 7
	// dynamicWidth is the reserved width for a dynamic hint cell. The
	// placeholder is trimmed to it at render time.
	dynamicWidth = 17
	// headerChrome accounts for the leading space and trailing marker pair
	// on a column header line.
	headerChrome = 2
)

// Formatter produces the rendered line for one head. The boolean reports
// whether the head emits a line at all; heads with absent hints do not.
type Formatter func(h Head) (string, bool)

// DefaultFormatter renders static hints as " [_k_] hint" and dynamic hints
// as a " [_k_] ?k?" placeholder prompting live evaluation by the host.
// Underscore-delimited keys and caret pairs are zero-width markers consumed
// by the display layer.
func DefaultFormatter(h Head) (string, bool) {
	switch h.Hint.Kind() {
	case HintStatic:
		return fmt.Sprintf(" [_%s_] %s", h.Key, h.Hint.Text()), true
	case HintDynamic:
		cell := fmt.Sprintf(" [_%s_] ?%s?", h.Key, h.Key)
		return ansi.Truncate(cell, dynamicWidth, ""), true
	default:
		return "", false
	}
}

// LiveFormatter is a drop-in Formatter for hosts that want dynamic hints
// resolved at compile time instead of shown as placeholders. The evaluated
// text is trimmed to the reserved dynamic cell width; markers are zero-width
// and do not count.
func LiveFormatter(h Head) (string, bool) {
	if h.Hint.Kind() != HintDynamic {
		return DefaultFormatter(h)
	}
	cell := fmt.Sprintf(" [_%s_] %s", h.Key, h.Hint.Eval())
	return ansi.Truncate(cell, dynamicWidth+2, ""), true
}

// Width computes the minimum render width for a column. Heads with absent
// hints contribute nothing; static hints reserve space for the key, the hint
// text, and the surrounding decoration; dynamic hints reserve a fixed cell.
// The column name always fits, so an empty column still has a width.
func Width(name string, heads []Head) int {
	w := headerChrome + len(name)
	for _, h := range heads {
		var c int
		switch h.Hint.Kind() {
		case HintStatic:
			c = headChrome + len(h.Key) + len(h.Hint.Text())
		case HintDynamic:
			c = dynamicWidth
		}
		if c > w {
			w = c
		}
	}
	return w
}

// row is one rendered line of a column. Filler rows pad short columns to the
// shared menu height and carry no content.
type row struct {
	text   string
	filler bool
}

// renderColumn renders one column to exactly maxRows+2 rows: a header, a
// dash separator, one row per emitting head, then blank filler. Every row is
// right-padded to the column width.
func renderColumn(name string, heads []Head, maxRows int, f Formatter) []row {
	if f == nil {
		f = DefaultFormatter
	}
	w := Width(name, heads)

	rows := make([]row, 0, maxRows+2)
	rows = append(rows, row{text: padVisible(" "+name+"^^", w)})
	rows = append(rows, row{text: strings.Repeat("-", w)})

	for _, h := range heads {
		line, ok := f(h)
		if !ok {
			continue
		}
		rows = append(rows, row{text: padVisible(line, w)})
	}

	for len(rows) < maxRows+2 {
		rows = append(rows, row{text: strings.Repeat(" ", w), filler: true})
	}
	return rows
}

// Compose renders columns to equal height and zips them row-wise into one
// multi-line block. Columns are joined with a single space; the result is
// wrapped in a leading and trailing newline so it always starts and ends on
// its own line.
func Compose(columns []Column, f Formatter) (string, error) {
	if len(columns) == 0 {
		return "", ErrNoColumns
	}

	maxRows := 0
	for _, c := range columns {
		if len(c.Heads) > maxRows {
			maxRows = len(c.Heads)
		}
	}

	rendered := make([][]row, len(columns))
	for i, c := range columns {
		rendered[i] = renderColumn(c.Name, c.Heads, maxRows, f)
	}

	var b strings.Builder
	b.WriteByte('\n')
	for i := 0; i < maxRows+2; i++ {
		for j := range rendered {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(rendered[j][i].text)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

var keyMarker = regexp.MustCompile(`\[_([^_\]]+)_\]`)

// Decorate resolves the layout markers for display: "[_k_]" becomes
// "[k]" with the key passed through highlight, and caret markers are
// removed. Alignment is preserved because padding treats marker characters
// as zero-width.
func Decorate(doc string, highlight func(key string) string) string {
	if highlight == nil {
		highlight = func(k string) string { return k }
	}
	doc = keyMarker.ReplaceAllStringFunc(doc, func(m string) string {
		key := keyMarker.FindStringSubmatch(m)[1]
		return "[" + highlight(key) + "]"
	})
	return strings.ReplaceAll(doc, "^", "")
}

// VisibleLen returns the display length of a rendered line: raw length
// minus the zero-width marker characters Decorate consumes.
func VisibleLen(s string) int {
	return len(s) - strings.Count(s, "^") - 2*len(keyMarker.FindAllString(s, -1))
}

// padVisible right-pads s with spaces until its visible length reaches
// width. Caret and key-marker characters are zero-width: the display layer
// consumes them, so they do not count toward alignment.
func padVisible(s string, width int) string {
	visible := VisibleLen(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
