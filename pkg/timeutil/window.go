// Package timeutil parses the look-back windows used to filter entries.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
	labels = []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
	}
)

// Window is a span of time ending now. The zero Window covers all time.
type Window struct {
	Span time.Duration
}

// ParseWindow reads a window such as "3d", "1w" or "1w2d6h". An empty input
// is the zero Window.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Window{}, nil
	}

	var total time.Duration
	for len(remaining) > 0 {
		m := segment.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return Window{}, errors.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Window{}, errors.Wrapf(err, "invalid window value %q", m[1])
		}
		unit, ok := units[m[2]]
		if !ok {
			return Window{}, errors.Errorf("unsupported window unit %q", m[2])
		}
		if value > int64((math.MaxInt64-total)/unit) {
			return Window{}, errors.Errorf("window %q is too large", strings.TrimSpace(input))
		}
		total += time.Duration(value) * unit
		remaining = remaining[len(m[0]):]
	}

	if total <= 0 {
		return Window{}, errors.New("window must be greater than zero")
	}
	return Window{Span: total}, nil
}

// All reports whether the window is unbounded.
func (w Window) All() bool {
	return w.Span <= 0
}

// Contains reports whether t falls in the window ending at now.
func (w Window) Contains(now, t time.Time) bool {
	if w.All() {
		return true
	}
	return !t.Before(now.Add(-w.Span))
}

// String renders the window with w/d/h/m tokens, "all" for the zero Window.
func (w Window) String() string {
	if w.All() {
		return "all"
	}
	var parts []string
	remaining := w.Span
	for _, u := range labels {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, "")
}
