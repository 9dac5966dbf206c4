// Package undo removes the most recent entry of a journal.
package undo

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/journal"
)

// Resolver finds a journal by name, empty meaning the default.
type Resolver interface {
	Resolve(name string) (journal.Journal, error)
}

type Undo struct {
	Journals Resolver
	Journal  string
	Log      *zap.Logger
}

// Do removes the last entry. An empty journal is left as is.
func (n *Undo) Do(_ context.Context) error {
	if n.Journals == nil {
		return errors.New("can not undo, no journals")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}

	j, err := n.Journals.Resolve(n.Journal)
	if err != nil {
		return err
	}

	e, ok, err := j.UndoLast()
	if err != nil {
		return err
	}
	if !ok {
		log.Debug("nothing to undo", zap.String("journal", j.Name()))
		return nil
	}
	log.Debug("entry removed", zap.String("journal", j.Name()), zap.Stringer("id", e.ID()))
	return nil
}
