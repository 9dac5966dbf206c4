// Package printers renders entries and journals for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/jrn/pkg/entry"
	"tableflip.dev/jrn/pkg/registry"
)

const (
	dateLayout = "Mon Jan 2 2006 15:04"
	star       = "★"
	bodyIndent = 4
)

// PrettyPrint writes human readable output to Out.
type PrettyPrint struct {
	Out io.Writer
	// Width wraps entry content, 0 means 80 columns.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints each entry as a heading line followed by its wrapped body.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow)
	b := color.New(color.Bold)
	d := color.New(color.Faint)

	for _, e := range entries {
		if e.Starred() {
			_, _ = y.Fprint(w, star+" ")
		} else {
			_, _ = fmt.Fprint(w, "  ")
		}
		_, _ = d.Fprint(w, e.CreatedAt().Local().Format(dateLayout)+"  ")
		_, _ = b.Fprintln(w, e.Title())

		if body := strings.TrimSpace(e.Content()); body != "" && body != e.Title() {
			wrapped := wordwrap.String(body, pp.width()-bodyIndent)
			_, _ = fmt.Fprintln(w, indent.String(wrapped, bodyIndent))
		}
		if tags := e.Tags(); len(tags) > 0 {
			_, _ = d.Fprintln(w, indent.String("#"+strings.Join(tags, " #"), bodyIndent))
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

// EntryAdded confirms a stored entry.
func (pp *PrettyPrint) EntryAdded(e entry.Entry) {
	_, _ = fmt.Fprintf(pp.out(), "entry add id: %s\n", e.ID())
}

// JournalAdded confirms a new journal.
func (pp *PrettyPrint) JournalAdded(r registry.Record) {
	b := color.New(color.Bold)
	suffix := ""
	if r.Default {
		suffix = " (default)"
	}
	_, _ = fmt.Fprintf(pp.out(), "journal %s added at %s%s\n", b.Sprint(r.Name), r.Location, suffix)
}

// Journals prints the registry as a table.
func (pp *PrettyPrint) Journals(records ...registry.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " no journals, add one with `jrn journal add`")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("  NAME"), bold.Sprint("TYPE"), bold.Sprint("LOCATION"))
	for _, r := range records {
		marker := "  "
		if r.Default {
			marker = "* "
		}
		tbl.AddRow(marker+r.Name, r.Kind.Label(), r.Location)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
