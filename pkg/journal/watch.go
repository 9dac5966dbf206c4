package journal

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Event is emitted by Journal.Watch when the journal's storage changes.
type Event struct {
	Journal  string
	Location string
}

const watchDelay = 100 * time.Millisecond

// watchFile streams change events for the file at location until ctx is
// cancelled. The directory is watched rather than the file because every
// save replaces the file through a rename. The channel is closed once ctx is
// done or the watcher fails.
func watchFile(ctx context.Context, name, location string, log *zap.Logger) (<-chan Event, error) {
	dir := filepath.Dir(location)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "journal: ensure directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "journal: create watcher")
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("closing watcher failed", zap.Error(err))
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, errors.Wrapf(err, "journal: watch %s", dir)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer closeWatcher()
		pump(ctx, watcher.Events, watcher.Errors, Event{Journal: name, Location: location}, events, log)
	}()

	return events, nil
}

// pump forwards changes to ev.Location as ev on out until ctx is done or
// either source closes.
func pump(ctx context.Context, fsEvents <-chan fsnotify.Event, fsErrors <-chan error, ev Event, out chan<- Event, log *zap.Logger) {
	send := func(ev Event) {
		select {
		case out <- ev:
		default:
			// The consumer rereads the whole journal, so a dropped
			// event is covered by the one already queued.
		}
	}

	throttle := newEventThrottle(watchDelay)
	defer throttle.Stop()

	target := filepath.Clean(ev.Location)
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-fsErrors:
			if !ok {
				return
			}
			log.Debug("watcher error", zap.Error(err))
			// Unclassified failures still prompt a reread.
			throttle.Enqueue(ev, send)
		case evt, ok := <-fsEvents:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			throttle.Enqueue(ev, send)
		}
	}
}

// eventThrottle coalesces a burst of filesystem activity into one event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending = &ev
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding the lock so nothing is sent once Stop returned.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	if pending != nil && !t.stopped {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
