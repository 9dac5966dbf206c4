package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/entry"
)

// File is a journal whose entries live in a single JSON document. Every
// mutation rewrites the whole file through a temporary file and a rename.
//
// There is no locking: two processes writing the same journal at once can
// lose updates, the last writer wins.
type File struct {
	name     string
	location string
	key      string
	d        *diskv.Diskv
	log      *zap.Logger
}

var _ Journal = (*File)(nil)

// OpenFile binds a file journal to location without touching the disk. A
// leading ~ in location is expanded to the home directory.
func OpenFile(name, location string, opts ...Option) (*File, error) {
	o := newOptions(opts)

	path, err := homedir.Expand(location)
	if err != nil {
		return nil, storageError(ErrInvalidLocation, location, err)
	}
	key := filepath.Base(path)
	if path == "" || key == "." || key == string(filepath.Separator) {
		return nil, storageError(ErrInvalidLocation, location, errors.New("not a file path"))
	}
	dir := filepath.Dir(path)

	return &File{
		name:     name,
		location: path,
		key:      key,
		d: diskv.New(diskv.Options{
			BasePath: dir,
			// Same directory keeps the final rename on one filesystem.
			TempDir:  dir,
			PathPerm: 0o755,
			FilePerm: 0o644,
		}),
		log: o.log.With(zap.String("journal", name), zap.String("location", path)),
	}, nil
}

// CreateFile opens a file journal and checks that its location is writable
// by creating and erasing a probe file next to it. An existing journal file
// is left untouched.
func CreateFile(name, location string, opts ...Option) (*File, error) {
	f, err := OpenFile(name, location, opts...)
	if err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) validate() error {
	f.log.Debug("validating location")

	info, err := os.Stat(f.location)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return storageError(ErrInvalidLocation, f.location, errors.New("not a regular file"))
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return storageError(ErrInvalidLocation, f.location, err)
	}

	probe := "." + f.key + ".probe"
	if err := f.d.Write(probe, nil); err != nil {
		return storageError(ErrInvalidLocation, f.location, err)
	}
	if err := f.d.Erase(probe); err != nil {
		return storageError(ErrInvalidLocation, f.location, err)
	}
	return nil
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Kind() Kind {
	return KindFile
}

func (f *File) Location() string {
	return f.location
}

// Entries reads the journal. A missing or blank file is an empty journal.
func (f *File) Entries() ([]entry.Entry, error) {
	data, err := f.d.Read(f.key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, storageError(ErrStorageRead, f.location, err)
		}
		// diskv reports a directory as missing.
		if info, serr := os.Stat(f.location); serr == nil && !info.Mode().IsRegular() {
			return nil, storageError(ErrStorageRead, f.location, errors.New("not a regular file"))
		}
		return []entry.Entry{}, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []entry.Entry{}, nil
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, storageError(ErrStorageRead, f.location, err)
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}

func (f *File) Upsert(e entry.Entry) error {
	f.log.Debug("add entry", zap.String("title", e.Title()), zap.Stringer("id", e.ID()))

	entries, err := f.Entries()
	if err != nil {
		return err
	}

	i := slices.IndexFunc(entries, func(o entry.Entry) bool { return o.ID() == e.ID() })
	if i >= 0 {
		// TODO: replace the matching entry once journals written with the
		// duplicating behaviour have a cleanup path.
		entries = slices.Insert(entries, i, e)
	} else {
		entries = append(entries, e)
	}

	return f.save(entries)
}

func (f *File) Remove(ids ...uuid.UUID) error {
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	entries, err := f.Entries()
	if err != nil {
		return err
	}

	kept := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := drop[e.ID()]; ok {
			continue
		}
		kept = append(kept, e)
	}
	return f.save(kept)
}

func (f *File) UndoLast() (entry.Entry, bool, error) {
	entries, err := f.Entries()
	if err != nil {
		return entry.Entry{}, false, err
	}
	if len(entries) == 0 {
		return entry.Entry{}, false, nil
	}

	last := entries[len(entries)-1]
	f.log.Debug("removing last entry", zap.Stringer("id", last.ID()))
	if err := f.Remove(last.ID()); err != nil {
		return entry.Entry{}, false, err
	}
	return last, true, nil
}

// Watch reports writes to the journal file until ctx is done.
func (f *File) Watch(ctx context.Context) (<-chan Event, error) {
	return watchFile(ctx, f.name, f.location, f.log)
}

func (f *File) save(entries []entry.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return storageError(ErrStorageWrite, f.location, err)
	}
	data = append(data, '\n')
	if err := f.d.Write(f.key, data); err != nil {
		return storageError(ErrStorageWrite, f.location, err)
	}
	return nil
}
