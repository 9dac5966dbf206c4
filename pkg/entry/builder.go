package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmptyContent is returned by Finalize when the content is empty once the
// star prefix has been removed.
var ErrEmptyContent = errors.New("entry: content is empty")

const (
	starPrefix      = "*"
	titleDelimiters = "\n?!."
)

// Builder collects raw input for a new Entry. Setters may be called in any
// order; normalization happens in Finalize.
type Builder struct {
	id      uuid.UUID
	title   string
	content string
	starred bool
	tags    []string
	at      time.Time
}

// NewBuilder starts an entry with a fresh id, stamped with the current time.
func NewBuilder() *Builder {
	return &Builder{
		id: uuid.New(),
		at: time.Now().Round(0),
	}
}

func (b *Builder) ID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

func (b *Builder) Content(content string) *Builder {
	b.content = content
	return b
}

func (b *Builder) Starred(starred bool) *Builder {
	b.starred = starred
	return b
}

func (b *Builder) Tags(tags ...string) *Builder {
	b.tags = append([]string(nil), tags...)
	return b
}

// At overrides the creation time.
func (b *Builder) At(t time.Time) *Builder {
	b.at = t.Round(0)
	return b
}

// Finalize applies the star and title rules and returns the Entry.
func (b *Builder) Finalize() (Entry, error) {
	content := b.content
	starred := b.starred
	if strings.HasPrefix(content, starPrefix) {
		content = strings.TrimPrefix(content, starPrefix)
		starred = true
	}
	if content == "" {
		return Entry{}, ErrEmptyContent
	}

	title := b.title
	if title == "" {
		title = TitleFrom(content)
	}

	tags := make([]string, len(b.tags))
	copy(tags, b.tags)

	return Entry{
		id:        b.id,
		title:     title,
		content:   content,
		createdAt: Timestamp{Time: b.at},
		updatedAt: Timestamp{Time: b.at},
		starred:   starred,
		tags:      tags,
	}, nil
}

// TitleFrom returns the text before the first newline, '?', '!' or '.' in
// content, or all of content when none occurs.
func TitleFrom(content string) string {
	if i := strings.IndexAny(content, titleDelimiters); i >= 0 {
		return content[:i]
	}
	return content
}
