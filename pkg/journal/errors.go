package journal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLocation means a journal location cannot be written to.
	ErrInvalidLocation = errors.New("journal: invalid location")
	// ErrStorageRead means the journal could not be read or decoded.
	ErrStorageRead = errors.New("journal: read failed")
	// ErrStorageWrite means the journal could not be written.
	ErrStorageWrite = errors.New("journal: write failed")
	// ErrUnknownKind means no implementation is registered for a kind.
	ErrUnknownKind = errors.New("journal: unknown kind")
)

// StorageError ties a failure kind to the location and the underlying cause.
// errors.Is matches both the kind and the cause.
type StorageError struct {
	Kind     error
	Location string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Location, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func storageError(kind error, location string, err error) error {
	return &StorageError{Kind: kind, Location: location, Err: err}
}
