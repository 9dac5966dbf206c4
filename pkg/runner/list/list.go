// Package list prints the entries of a journal, optionally following it.
package list

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/entry"
	"tableflip.dev/jrn/pkg/journal"
	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/timeutil"
)

// Resolver finds a journal by name, empty meaning the default.
type Resolver interface {
	Resolve(name string) (journal.Journal, error)
}

type List struct {
	Journals Resolver
	Journal  string

	Format printers.Format
	// Since keeps only entries created inside the window.
	Since timeutil.Window
	// Calendar prints the current month with the days that have entries.
	Calendar bool
	// Follow prints the journal again every time it changes, until the
	// context is done.
	Follow bool

	Printer *printers.PrettyPrint
	Log     *zap.Logger

	// now is replaced in tests.
	now func() time.Time
}

func (n *List) Do(ctx context.Context) error {
	if n.Journals == nil {
		return errors.New("can not list, no journals")
	}
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{}
	}
	if n.Log == nil {
		n.Log = zap.NewNop()
	}

	j, err := n.Journals.Resolve(n.Journal)
	if err != nil {
		return err
	}
	if err := n.render(j); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}

	events, err := j.Watch(ctx)
	if err != nil {
		return err
	}
	n.Log.Debug("following journal", zap.String("journal", j.Name()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.render(j); err != nil {
				// A write in progress can be seen half done, wait for the next event.
				n.Log.Warn("reading journal failed", zap.Error(err))
			}
		}
	}
}

func (n *List) render(j journal.Journal) error {
	entries, err := j.Entries()
	if err != nil {
		return err
	}
	now := time.Now
	if n.now != nil {
		now = n.now
	}
	entries = n.within(now(), entries)

	title := j.Name()
	if !n.Since.All() {
		title += " (last " + n.Since.String() + ")"
	}

	switch {
	case n.Format == printers.FormatJSON || n.Format == printers.FormatYAML:
		return n.Printer.Structured(n.Format, entries...)
	case n.Calendar:
		n.Printer.TitleWithCount(title, len(entries))
		n.Printer.Calendar(now(), entries...)
	default:
		n.Printer.TitleWithCount(title, len(entries))
		n.Printer.Entries(entries...)
	}
	return nil
}

func (n *List) within(now time.Time, entries []entry.Entry) []entry.Entry {
	if n.Since.All() {
		return entries
	}
	kept := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if n.Since.Contains(now, e.CreatedAt()) {
			kept = append(kept, e)
		}
	}
	return kept
}
