// Package prompt asks the user for what the commands cannot take from flags.
package prompt

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"tableflip.dev/jrn/pkg/journal"
	"tableflip.dev/jrn/pkg/registry"
)

// DefaultName is used when the user leaves the journal name blank.
const DefaultName = "default"

// Bootstrapper asks for the kind, name and location of a new journal.
type Bootstrapper struct {
	In  io.Reader
	Out io.Writer

	// Suggest returns the location offered for a journal name.
	Suggest func(name string) string

	ask    func(p promptui.Prompt) (string, error)
	choose func(s promptui.Select) (int, error)
}

var _ registry.Bootstrapper = (*Bootstrapper)(nil)

// NewBootstrapper prompts on in and out.
func NewBootstrapper(in io.Reader, out io.Writer, suggest func(name string) string) *Bootstrapper {
	return &Bootstrapper{
		In:      in,
		Out:     out,
		Suggest: suggest,
		ask: func(p promptui.Prompt) (string, error) {
			return p.Run()
		},
		choose: func(s promptui.Select) (int, error) {
			i, _, err := s.Run()
			return i, err
		},
	}
}

func (b *Bootstrapper) Bootstrap(kinds []journal.Kind) (registry.Record, error) {
	if len(kinds) == 0 {
		return registry.Record{}, errors.New("no journal kinds available")
	}

	kind, err := b.kind(kinds)
	if err != nil {
		return registry.Record{}, err
	}

	name, err := b.ask(promptui.Prompt{
		Label:   "Journal name",
		Default: DefaultName,
		Stdin:   io.NopCloser(b.In),
		Stdout:  nopCloser{b.Out},
	})
	if err != nil {
		return registry.Record{}, errors.Wrap(err, "journal name")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	suggested := ""
	if b.Suggest != nil {
		suggested = b.Suggest(name)
	}
	location, err := b.ask(promptui.Prompt{
		Label:     "Journal location",
		Default:   suggested,
		AllowEdit: true,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" && suggested == "" {
				return errors.New("a location is required")
			}
			return nil
		},
		Stdin:  io.NopCloser(b.In),
		Stdout: nopCloser{b.Out},
	})
	if err != nil {
		return registry.Record{}, errors.Wrap(err, "journal location")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		location = suggested
	}

	return registry.Record{Name: name, Location: location, Kind: kind}, nil
}

func (b *Bootstrapper) kind(kinds []journal.Kind) (journal.Kind, error) {
	if len(kinds) == 1 {
		return kinds[0], nil
	}
	labels := make([]string, 0, len(kinds))
	for _, k := range kinds {
		labels = append(labels, k.Label())
	}
	i, err := b.choose(promptui.Select{
		Label:    "Journal type",
		Items:    labels,
		HideHelp: true,
		Stdin:    io.NopCloser(b.In),
		Stdout:   nopCloser{b.Out},
	})
	if err != nil {
		return "", errors.Wrap(err, "journal type")
	}
	if i < 0 || i >= len(kinds) {
		return "", errors.Errorf("journal type %d out of range", i)
	}
	return kinds[i], nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
