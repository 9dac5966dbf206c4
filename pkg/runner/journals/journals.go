// Package journals manages the journal registry.
package journals

import (
	"context"

	"github.com/pkg/errors"

	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/registry"
)

// Add asks for a new journal, validates it and saves the registry.
type Add struct {
	Registry     *registry.Registry
	Bootstrapper registry.Bootstrapper
	Printer      *printers.PrettyPrint
}

func (n *Add) Do(_ context.Context) error {
	if n.Registry == nil || n.Bootstrapper == nil {
		return errors.New("can not add journal, no registry")
	}

	rec, err := n.Registry.AddJournal(n.Bootstrapper)
	if err != nil {
		return err
	}
	if err := n.Registry.Save(); err != nil {
		return err
	}

	if n.Printer != nil {
		n.Printer.JournalAdded(rec)
	}
	return nil
}

// List prints the registered journals.
type List struct {
	Registry *registry.Registry
	Printer  *printers.PrettyPrint
}

func (n *List) Do(_ context.Context) error {
	if n.Registry == nil {
		return errors.New("can not list journals, no registry")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Journals(n.Registry.Records()...)
	return nil
}
