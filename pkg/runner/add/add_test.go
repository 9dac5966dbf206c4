package add

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/jrn/pkg/entry"
	"tableflip.dev/jrn/pkg/journal"
	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/registry"
)

type resolverFunc func(name string) (journal.Journal, error)

func (f resolverFunc) Resolve(name string) (journal.Journal, error) { return f(name) }

func fileJournal(t *testing.T) (journal.Journal, Resolver) {
	t.Helper()
	j, err := journal.Create(journal.KindFile, "work", filepath.Join(t.TempDir(), "work.json"))
	require.NoError(t, err)
	return j, resolverFunc(func(name string) (journal.Journal, error) {
		if name != "" && name != "work" {
			return nil, registry.ErrNoJournal
		}
		return j, nil
	})
}

func TestAddStoresEntry(t *testing.T) {
	j, r := fileJournal(t)
	var out bytes.Buffer

	a := &Add{
		Journals: r,
		Content:  "*Fixed the build. It was flaky",
		Tags:     []string{"ci"},
		Printer:  &printers.PrettyPrint{Out: &out},
	}
	require.NoError(t, a.Do(context.Background()))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Fixed the build", e.Title())
	assert.Equal(t, "Fixed the build. It was flaky", e.Content())
	assert.True(t, e.Starred())
	assert.Equal(t, []string{"ci"}, e.Tags())

	assert.Equal(t, "entry add id: "+e.ID().String()+"\n", out.String())
}

func TestAddExplicitTitleAndStar(t *testing.T) {
	j, r := fileJournal(t)
	a := &Add{Journals: r, Journal: "work", Content: "body", Title: "Heading", Starred: true}
	require.NoError(t, a.Do(context.Background()))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Heading", entries[0].Title())
	assert.True(t, entries[0].Starred())
}

func TestAddReadsStdin(t *testing.T) {
	j, r := fileJournal(t)
	a := &Add{Journals: r, Stdin: strings.NewReader("line one\nline two\n")}
	require.NoError(t, a.Do(context.Background()))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "line one\nline two", entries[0].Content())
	assert.Equal(t, "line one", entries[0].Title())
}

func TestAddEmptyContent(t *testing.T) {
	j, r := fileJournal(t)
	a := &Add{Journals: r, Stdin: strings.NewReader("")}
	err := a.Do(context.Background())
	assert.True(t, errors.Is(err, entry.ErrEmptyContent), "got %v", err)

	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddUnknownJournal(t *testing.T) {
	_, r := fileJournal(t)
	a := &Add{Journals: r, Journal: "home", Content: "x"}
	err := a.Do(context.Background())
	assert.True(t, errors.Is(err, registry.ErrNoJournal), "got %v", err)
}

func TestAddNoResolver(t *testing.T) {
	a := &Add{Content: "x"}
	assert.Error(t, a.Do(context.Background()))
}
