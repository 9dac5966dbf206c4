package prompt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/jrn/pkg/journal"
)

type scripted struct {
	answers []string
	labels  []string
	choice  int
	items   []string
}

func (s *scripted) bootstrapper(suggest func(string) string) *Bootstrapper {
	b := NewBootstrapper(strings.NewReader(""), &bytes.Buffer{}, suggest)
	b.ask = func(p promptui.Prompt) (string, error) {
		s.labels = append(s.labels, p.Label.(string))
		if len(s.answers) == 0 {
			return "", promptui.ErrInterrupt
		}
		a := s.answers[0]
		s.answers = s.answers[1:]
		if a == "" {
			return p.Default, nil
		}
		return a, nil
	}
	b.choose = func(sel promptui.Select) (int, error) {
		s.items = sel.Items.([]string)
		return s.choice, nil
	}
	return b
}

func suggest(name string) string {
	return "/journals/jrn-" + name + ".json"
}

func TestBootstrapDefaults(t *testing.T) {
	s := &scripted{answers: []string{"", ""}}
	rec, err := s.bootstrapper(suggest).Bootstrap([]journal.Kind{journal.KindFile})
	require.NoError(t, err)

	assert.Equal(t, DefaultName, rec.Name)
	assert.Equal(t, "/journals/jrn-default.json", rec.Location)
	assert.Equal(t, journal.KindFile, rec.Kind)
	assert.Equal(t, []string{"Journal name", "Journal location"}, s.labels)
	assert.Nil(t, s.items, "single kind needs no menu")
}

func TestBootstrapAnswers(t *testing.T) {
	s := &scripted{answers: []string{" work ", "/tmp/w.json"}}
	rec, err := s.bootstrapper(suggest).Bootstrap([]journal.Kind{journal.KindFile})
	require.NoError(t, err)

	assert.Equal(t, "work", rec.Name)
	assert.Equal(t, "/tmp/w.json", rec.Location)
}

func TestBootstrapBlankNameIsDefault(t *testing.T) {
	s := &scripted{answers: []string{"   ", ""}}
	rec, err := s.bootstrapper(suggest).Bootstrap([]journal.Kind{journal.KindFile})
	require.NoError(t, err)

	assert.Equal(t, DefaultName, rec.Name)
	assert.Equal(t, "/journals/jrn-default.json", rec.Location)
}

func TestBootstrapChoosesKind(t *testing.T) {
	s := &scripted{answers: []string{"cloud", "dropbox://notes"}, choice: 1}
	rec, err := s.bootstrapper(suggest).Bootstrap([]journal.Kind{journal.KindFile, "DropboxJournal"})
	require.NoError(t, err)

	assert.Equal(t, journal.Kind("DropboxJournal"), rec.Kind)
	assert.Equal(t, []string{"File Journal", "DropboxJournal"}, s.items)
}

func TestBootstrapInterrupted(t *testing.T) {
	s := &scripted{}
	_, err := s.bootstrapper(suggest).Bootstrap([]journal.Kind{journal.KindFile})
	assert.True(t, errors.Is(err, promptui.ErrInterrupt), "got %v", err)
}

func TestBootstrapNoKinds(t *testing.T) {
	s := &scripted{}
	_, err := s.bootstrapper(suggest).Bootstrap(nil)
	assert.Error(t, err)
}

func TestContentJoinsLines(t *testing.T) {
	var out bytes.Buffer
	got, err := Content(strings.NewReader("first line\nsecond line\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "first line\nsecond line", got)
	assert.Empty(t, out.String(), "no invitation when not a terminal")
}

func TestContentEmpty(t *testing.T) {
	got, err := Content(strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestContentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("*starred\nmore"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	got, err := Content(f, &out)
	require.NoError(t, err)
	assert.Equal(t, "*starred\nmore", got)
	assert.Empty(t, out.String())
}
