// Package entry holds the journal entry value and the builder that derives
// its defaults from raw user input.
package entry

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entry is one journal note. It is immutable: journals replace entries
// wholesale instead of editing them.
type Entry struct {
	id        uuid.UUID
	title     string
	content   string
	createdAt Timestamp
	updatedAt Timestamp
	starred   bool
	tags      []string
}

func (e Entry) ID() uuid.UUID {
	return e.id
}

// Title is either the explicit title or the one derived from the content.
func (e Entry) Title() string {
	return e.title
}

func (e Entry) Content() string {
	return e.content
}

func (e Entry) CreatedAt() time.Time {
	return e.createdAt.Time
}

// UpdatedAt currently always equals CreatedAt.
func (e Entry) UpdatedAt() time.Time {
	return e.updatedAt.Time
}

func (e Entry) Starred() bool {
	return e.starred
}

// Tags returns a copy of the entry tags.
func (e Entry) Tags() []string {
	tags := make([]string, len(e.tags))
	copy(tags, e.tags)
	return tags
}

// Equal reports whether both entries carry the same values. Timestamps are
// compared as instants.
func (e Entry) Equal(o Entry) bool {
	if e.id != o.id || e.title != o.title || e.content != o.content || e.starred != o.starred {
		return false
	}
	if !e.createdAt.Equal(o.createdAt.Time) || !e.updatedAt.Equal(o.updatedAt.Time) {
		return false
	}
	if len(e.tags) != len(o.tags) {
		return false
	}
	for i := range e.tags {
		if e.tags[i] != o.tags[i] {
			return false
		}
	}
	return true
}

type wireEntry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
	Starred   bool      `json:"starred"`
	Tags      []string  `json:"tags"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	w := wireEntry{
		ID:        e.id,
		Title:     e.title,
		Content:   e.content,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
		Starred:   e.starred,
		Tags:      e.Tags(),
	}
	return json.Marshal(w)
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var w wireEntry
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*e = Entry{
		id:        w.ID,
		title:     w.Title,
		content:   w.Content,
		createdAt: w.CreatedAt,
		updatedAt: w.UpdatedAt,
		starred:   w.Starred,
		tags:      w.Tags,
	}
	if e.tags == nil {
		e.tags = []string{}
	}
	return nil
}
