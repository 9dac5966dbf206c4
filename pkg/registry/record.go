package registry

import (
	"encoding/json"

	"tableflip.dev/jrn/pkg/journal"
)

// Record points at one journal's storage.
type Record struct {
	Name     string
	Location string
	Kind     journal.Kind
	Default  bool
}

type wireRecord struct {
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Kind     journal.Kind `json:"type"`
	Default  bool         `json:"default"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRecord{
		Name:     r.Name,
		Location: r.Location,
		Kind:     r.Kind,
		Default:  r.Default,
	})
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var w struct {
		wireRecord
		// Path is what older registries called the location.
		Path string `json:"path"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Record{
		Name:     w.Name,
		Location: w.Location,
		Kind:     w.Kind,
		Default:  w.Default,
	}
	if r.Location == "" {
		r.Location = w.Path
	}
	return nil
}

// slot keeps a record in file order. Records of a kind this build does not
// know are carried as raw JSON so saving does not drop them.
type slot struct {
	record Record
	raw    json.RawMessage
}

func (s slot) known() bool {
	return s.raw == nil
}

func (s slot) MarshalJSON() ([]byte, error) {
	if !s.known() {
		return s.raw, nil
	}
	return json.Marshal(s.record)
}
