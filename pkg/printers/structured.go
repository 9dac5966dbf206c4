package printers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tableflip.dev/jrn/pkg/entry"
)

// Format selects how entries are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat accepts one of Formats, case insensitive. Empty is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q, want one of %s", s, strings.Join(Formats(), ", "))
	}
}

// entryView mirrors the entry JSON fields for YAML output.
type entryView struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title,omitempty"`
	Content   string   `yaml:"content"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
	Starred   bool     `yaml:"starred"`
	Tags      []string `yaml:"tags"`
}

func viewOf(e entry.Entry) entryView {
	return entryView{
		ID:        e.ID().String(),
		Title:     e.Title(),
		Content:   e.Content(),
		CreatedAt: entry.FormatTime(e.CreatedAt()),
		UpdatedAt: entry.FormatTime(e.UpdatedAt()),
		Starred:   e.Starred(),
		Tags:      e.Tags(),
	}
}

// Structured writes entries as a JSON array or a YAML sequence. Text falls
// back to Entries.
func (pp *PrettyPrint) Structured(f Format, entries ...entry.Entry) error {
	switch f {
	case FormatJSON:
		if entries == nil {
			entries = []entry.Entry{}
		}
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding entries")
		}
		_, err = fmt.Fprintln(pp.out(), string(b))
		return err
	case FormatYAML:
		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, viewOf(e))
		}
		enc := yaml.NewEncoder(pp.out())
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return errors.Wrap(err, "encoding entries")
		}
		return enc.Close()
	default:
		pp.Entries(entries...)
		return nil
	}
}
