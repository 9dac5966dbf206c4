// Package add stores a new entry in a journal.
package add

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/entry"
	"tableflip.dev/jrn/pkg/journal"
	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/prompt"
)

// Resolver finds a journal by name, empty meaning the default.
type Resolver interface {
	Resolve(name string) (journal.Journal, error)
}

type Add struct {
	Journals Resolver
	Journal  string

	Content string
	Title   string
	Starred bool
	Tags    []string

	// Stdin is read for the content when Content is empty.
	Stdin io.Reader

	Printer *printers.PrettyPrint
	Log     *zap.Logger
}

func (n *Add) Do(_ context.Context) error {
	if n.Journals == nil {
		return errors.New("can not add, no journals")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}

	j, err := n.Journals.Resolve(n.Journal)
	if err != nil {
		return err
	}

	content := n.Content
	if content == "" && n.Stdin != nil {
		out := io.Discard
		if n.Printer != nil && n.Printer.Out != nil {
			out = n.Printer.Out
		}
		content, err = prompt.Content(n.Stdin, out)
		if err != nil {
			return err
		}
	}

	e, err := entry.NewBuilder().
		Content(content).
		Title(n.Title).
		Starred(n.Starred).
		Tags(n.Tags...).
		Finalize()
	if err != nil {
		return err
	}

	if err := j.Upsert(e); err != nil {
		return err
	}
	log.Debug("entry stored", zap.String("journal", j.Name()), zap.Stringer("id", e.ID()))

	if n.Printer != nil {
		n.Printer.EntryAdded(e)
	}
	return nil
}
