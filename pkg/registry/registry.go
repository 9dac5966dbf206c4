// Package registry keeps the list of journals a user manages and resolves a
// journal name to its storage.
package registry

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/journal"
)

var (
	// ErrRegistryParse means the registry file could not be read or decoded.
	ErrRegistryParse = errors.New("registry: cannot load journals")
	// ErrRegistryWrite means the registry file could not be written.
	ErrRegistryWrite = errors.New("registry: cannot save journals")
	// ErrNoJournal means no journal matched the requested name, or no
	// default journal exists.
	ErrNoJournal = errors.New("registry: no journal found, please add a journal")
	// ErrDuplicateJournal means a journal with that name already exists.
	ErrDuplicateJournal = errors.New("registry: journal already exists")
)

// Bootstrapper supplies the details of a new journal, usually by asking the
// user.
type Bootstrapper interface {
	Bootstrap(kinds []journal.Kind) (Record, error)
}

// Registry is the set of known journals. It is loaded and saved as a whole.
type Registry struct {
	path  string
	key   string
	d     *diskv.Diskv
	slots []slot

	log         *zap.Logger
	journalOpts []journal.Option
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for the registry and the journals it opens.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
			r.journalOpts = append(r.journalOpts, journal.WithLogger(log))
		}
	}
}

// New returns an empty registry that saves to path.
func New(path string, opts ...Option) *Registry {
	dir := filepath.Dir(path)
	r := &Registry{
		path: path,
		key:  filepath.Base(path),
		d: diskv.New(diskv.Options{
			BasePath: dir,
			TempDir:  dir,
			PathPerm: 0o755,
			FilePerm: 0o644,
		}),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type document struct {
	Journals []json.RawMessage `json:"journals"`
}

// Load reads the registry at path. A missing or empty file is an empty
// registry.
func Load(path string, opts ...Option) (*Registry, error) {
	r := New(path, opts...)

	data, err := r.d.Read(r.key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrRegistryParse, "%s: %v", path, err)
		}
		// diskv reports a directory as missing.
		if info, serr := os.Stat(path); serr == nil && !info.Mode().IsRegular() {
			return nil, errors.Wrapf(ErrRegistryParse, "%s: not a regular file", path)
		}
		r.log.Debug("no registry yet", zap.String("path", path))
		return r, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return r, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrRegistryParse, "%s: %v", path, err)
	}

	for i, raw := range doc.Journals {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.Wrapf(ErrRegistryParse, "%s: journal %d: %v", path, i, err)
		}
		if !journal.Known(rec.Kind) {
			r.log.Debug("skipping journal of unknown kind",
				zap.String("name", rec.Name), zap.String("type", string(rec.Kind)))
			r.slots = append(r.slots, slot{raw: raw})
			continue
		}
		r.slots = append(r.slots, slot{record: rec})
	}
	r.log.Debug("registry loaded", zap.String("path", path), zap.Int("journals", len(r.slots)))
	return r, nil
}

// Save overwrites the registry file with every record, including the ones of
// unknown kind.
func (r *Registry) Save() error {
	doc := struct {
		Journals []slot `json:"journals"`
	}{Journals: r.slots}
	if doc.Journals == nil {
		doc.Journals = []slot{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(ErrRegistryWrite, "%s: %v", r.path, err)
	}
	data = append(data, '\n')

	if err := r.d.Write(r.key, data); err != nil {
		return errors.Wrapf(ErrRegistryWrite, "%s: %v", r.path, err)
	}
	r.log.Debug("registry saved", zap.String("path", r.path))
	return nil
}

// Records returns the journals this build can open, in file order.
func (r *Registry) Records() []Record {
	list := make([]Record, 0, len(r.slots))
	for _, s := range r.slots {
		if s.known() {
			list = append(list, s.record)
		}
	}
	return list
}

// AddJournal asks b for a new journal, validates its location and appends
// it. The first journal becomes the default. The registry is not saved.
func (r *Registry) AddJournal(b Bootstrapper) (Record, error) {
	rec, err := b.Bootstrap(journal.Kinds())
	if err != nil {
		return Record{}, err
	}
	if rec.Kind == "" {
		rec.Kind = journal.KindFile
	}

	for _, existing := range r.Records() {
		if existing.Name == rec.Name {
			return Record{}, errors.Wrapf(ErrDuplicateJournal, "%q", rec.Name)
		}
	}

	j, err := journal.Create(rec.Kind, rec.Name, rec.Location, r.journalOpts...)
	if err != nil {
		return Record{}, err
	}
	rec.Location = j.Location()
	rec.Default = len(r.Records()) == 0

	r.slots = append(r.slots, slot{record: rec})
	r.log.Debug("journal added", zap.String("name", rec.Name), zap.Bool("default", rec.Default))
	return rec, nil
}

// Resolve finds the journal called name. An empty name selects the first
// journal flagged as default.
func (r *Registry) Resolve(name string) (journal.Journal, error) {
	rec, ok := r.find(name)
	if !ok {
		if name == "" {
			return nil, errors.Wrap(ErrNoJournal, "no default journal")
		}
		return nil, errors.Wrapf(ErrNoJournal, "no journal named %q", name)
	}
	return journal.Open(rec.Kind, rec.Name, rec.Location, r.journalOpts...)
}

func (r *Registry) find(name string) (Record, bool) {
	records := r.Records()
	if name != "" {
		for _, rec := range records {
			if rec.Name == name {
				return rec, true
			}
		}
		return Record{}, false
	}
	for _, rec := range records {
		if rec.Default {
			return rec, true
		}
	}
	return Record{}, false
}
