package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

// palette держит раскраску; при выключенном цвете все функции: identity.
type palette struct {
	err, warn, info, note, code, gutter, caret, path func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		note:   mk(color.FgBlue, color.Bold),
		code:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		path:   mk(color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.err(sev.String())
	case diag.SevWarning:
		return p.warn(sev.String())
	default:
		return p.info(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			p.path(formatPath(file, fs, opts.PathMode)), start.Line, start.Col,
			p.severity(d.Severity), p.code(d.Code.ID()), d.Message)

		if file != nil {
			writeSnippet(w, file, fs, d.Primary, opts, p)
		}

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
}

// writeSnippet prints the primary line (plus opts.Context lines before it)
// and a caret run under the span.
func writeSnippet(w io.Writer, file *source.File, fs *source.FileSet, span source.Span, opts PrettyOpts, p palette) {
	start, end := fs.Resolve(span)
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}
	expand := func(s string) string { return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tab)) }

	first := int(start.Line) - max(opts.Context, 0)
	first = max(first, 1)
	numWidth := len(strconv.FormatUint(uint64(start.Line), 10))

	for ln := first; ln <= int(start.Line); ln++ {
		lineNo, err := safecast.Conv[uint32](ln)
		if err != nil {
			return
		}
		fmt.Fprintf(w, " %s %s %s\n", p.gutter(fmt.Sprintf("%*d", numWidth, ln)), p.gutter("|"), expand(file.GetLine(lineNo)))
	}

	line := file.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	col = max(col, 0)
	lead := runewidth.StringWidth(expand(line[:col]))

	// подчёркиваем только до конца первой строки спана
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	stop = max(stop, col)
	width := max(runewidth.StringWidth(expand(line[col:stop])), 1)

	marks := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s %s%s\n", strings.Repeat(" ", numWidth), p.gutter("|"), strings.Repeat(" ", lead), p.caret(marks))
}
