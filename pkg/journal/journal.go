// Package journal defines the storage contract for a named journal and the
// file-backed implementation of it.
package journal

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/entry"
)

// Journal is the capability set every journal kind provides. Entries keep the
// order they were written in.
type Journal interface {
	Name() string
	Kind() Kind
	Location() string

	// Entries reads the full journal.
	Entries() ([]entry.Entry, error)
	// Upsert stores e. An entry with the same id already present is kept and
	// e is inserted in front of it; otherwise e is appended.
	Upsert(e entry.Entry) error
	// Remove drops every entry whose id is listed.
	Remove(ids ...uuid.UUID) error
	// UndoLast removes the last entry in read order and returns it. The bool
	// is false when the journal was empty.
	UndoLast() (entry.Entry, bool, error)
	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Kind is the discriminator stored in the registry for each journal.
type Kind string

const (
	// KindFile keeps all entries of a journal in one JSON file.
	KindFile Kind = "FileJournal"
)

// Label is the human readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindFile:
		return "File Journal"
	default:
		return string(k)
	}
}

type options struct {
	log *zap.Logger
}

// Option configures a journal when it is created or opened.
type Option func(*options)

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type factory struct {
	// create validates the location before returning the journal.
	create func(name, location string, opts ...Option) (Journal, error)
	// open binds to the location without touching it.
	open func(name, location string, opts ...Option) (Journal, error)
}

var kinds = map[Kind]factory{
	KindFile: {
		create: func(name, location string, opts ...Option) (Journal, error) {
			return CreateFile(name, location, opts...)
		},
		open: func(name, location string, opts ...Option) (Journal, error) {
			return OpenFile(name, location, opts...)
		},
	},
}

// Kinds lists the journal kinds this build can handle.
func Kinds() []Kind {
	list := make([]Kind, 0, len(kinds))
	for k := range kinds {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Known reports whether k is a journal kind this build can handle.
func Known(k Kind) bool {
	_, ok := kinds[k]
	return ok
}

// Create sets up a new journal of kind k, validating its location.
func Create(k Kind, name, location string, opts ...Option) (Journal, error) {
	f, ok := kinds[k]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", k)
	}
	return f.create(name, location, opts...)
}

// Open binds to an existing journal of kind k.
func Open(k Kind, name, location string, opts ...Option) (Journal, error) {
	f, ok := kinds[k]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", k)
	}
	return f.open(name, location, opts...)
}
