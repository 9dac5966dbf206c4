package printers

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/jrn/pkg/entry"
	"tableflip.dev/jrn/pkg/journal"
	"tableflip.dev/jrn/pkg/registry"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func build(t *testing.T, content string, at time.Time) entry.Entry {
	t.Helper()
	e, err := entry.NewBuilder().
		ID(uuid.MustParse("2f1b7c1e-8d7f-4c3a-9a61-0c1f3e5b6d7a")).
		Content(content).
		At(at).
		Finalize()
	require.NoError(t, err)
	return e
}

func fixture(t *testing.T) []entry.Entry {
	return []entry.Entry{
		build(t, "*Shipped the release. Notes follow", time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local)),
		build(t, "groceries", time.Date(2024, time.March, 6, 18, 0, 0, 0, time.Local)),
	}
}

func TestEntries(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Entries(fixture(t)...)

	g := goldie.New(t)
	g.Assert(t, "entries", buf.Bytes())
}

func TestEntriesWrapsBody(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 20}

	pp.Entries(build(t, "short title. then a body that is long", time.Now()))

	assert.Contains(t, buf.String(), "    short title.\n    then a body that\n    is long\n")
}

func TestEntriesNone(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Entries()
	assert.Equal(t, " none\n\n", buf.String())
}

func TestEntryAdded(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	e := fixture(t)[0]
	pp.EntryAdded(e)
	assert.Equal(t, "entry add id: 2f1b7c1e-8d7f-4c3a-9a61-0c1f3e5b6d7a\n", buf.String())
}

func TestTitleWithCount(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.TitleWithCount("work", 1)
	pp.TitleWithCount("home", 2)
	assert.Equal(t, "work - 1 entry\nhome - 2 entries\n", buf.String())
}

func TestJournals(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Journals(
		registry.Record{Name: "work", Location: "/j/work.json", Kind: journal.KindFile, Default: true},
		registry.Record{Name: "home", Location: "/j/home.json", Kind: journal.KindFile},
	)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "* work")
	assert.Contains(t, out, "  home")
	assert.Contains(t, out, "File Journal")
	assert.Contains(t, out, "/j/home.json")
}

func TestJournalsEmpty(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Journals()
	assert.Contains(t, buf.String(), "jrn journal add")
}

func TestParseFormat(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Format
		wantErr bool
	}{
		"empty":   {in: "", want: FormatText},
		"text":    {in: "text", want: FormatText},
		"json":    {in: "JSON", want: FormatJSON},
		"yaml":    {in: " yaml ", want: FormatYAML},
		"unknown": {in: "xml", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	require.NoError(t, pp.Structured(FormatJSON, fixture(t)...))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Shipped the release", got[0]["title"])
	assert.Equal(t, true, got[0]["starred"])
	assert.Equal(t, []any{}, got[1]["tags"])
}

func TestStructuredJSONMatchesJournalFormat(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	want := fixture(t)

	require.NoError(t, pp.Structured(FormatJSON, want...))

	stored, err := json.Marshal(want)
	require.NoError(t, err)
	assert.JSONEq(t, string(stored), buf.String())

	var got []entry.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "entry %d differs", i)
	}
}

func TestStructuredJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	require.NoError(t, pp.Structured(FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	require.NoError(t, pp.Structured(FormatYAML, fixture(t)...))

	var got []entryView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "groceries", got[1].Content)
	assert.Equal(t, "2f1b7c1e-8d7f-4c3a-9a61-0c1f3e5b6d7a", got[0].ID)
	assert.True(t, got[0].Starred)
}

func TestStructuredTextFallsBack(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	require.NoError(t, pp.Structured(FormatText))
	assert.Equal(t, " none\n\n", buf.String())
}

func TestCalendar(t *testing.T) {
	withColor(t, true)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	march := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
	pp.Calendar(march, fixture(t)...)

	out := buf.String()
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "\x1b[1;97m 5 \x1b[0m")
	assert.Contains(t, out, "\x1b[1;97m 6 \x1b[0m")
	assert.Contains(t, out, "\x1b[2m 7 \x1b[0m")
}

func TestCalendarLayout(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.MonthCount(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), nil)

	out := buf.String()
	assert.Contains(t, out, "               1  2 \n")
	assert.Contains(t, out, " 3  4  5  6  7  8  9 \n")
	assert.Contains(t, out, "31 \n\n")
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 31, DaysIn(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, time.Friday, StartDay(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)))
}

func TestJournalAdded(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.JournalAdded(registry.Record{Name: "work", Location: "/j/work.json", Default: true})
	pp.JournalAdded(registry.Record{Name: "home", Location: "/j/home.json"})
	assert.Equal(t, "journal work added at /j/work.json (default)\njournal home added at /j/home.json\n", buf.String())
}
