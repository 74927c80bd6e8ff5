// Package watcher watches content directories for authored module
// changes, debouncing rapid edits so the preview workflow rebuilds the
// registry once per burst of saves.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentWatcher watches for content file changes with debouncing.
type ContentWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	mutex     sync.RWMutex
}

// ChangeEvent represents a file change event.
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change.
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be watched.
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of file change events.
type ChangeHandler func(events []ChangeEvent) error

// Debouncer groups rapid file changes together.
type Debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// NewContentWatcher creates a new content watcher.
func NewContentWatcher(debounceDelay time.Duration) (*ContentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debouncer := &Debouncer{
		delay:   debounceDelay,
		events:  make(chan ChangeEvent, 100),
		output:  make(chan []ChangeEvent, 10),
		pending: make([]ChangeEvent, 0),
	}

	return &ContentWatcher{
		watcher:   watcher,
		debouncer: debouncer,
		filters:   make([]FileFilter, 0),
		handlers:  make([]ChangeHandler, 0),
	}, nil
}

// AddFilter adds a file filter.
func (cw *ContentWatcher) AddFilter(filter FileFilter) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.filters = append(cw.filters, filter)
}

// AddHandler adds a change handler.
func (cw *ContentWatcher) AddHandler(handler ChangeHandler) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.handlers = append(cw.handlers, handler)
}

// AddPath adds a directory to watch.
func (cw *ContentWatcher) AddPath(path string) error {
	return cw.watcher.Add(filepath.Clean(path))
}

// Start starts the content watcher goroutines.
func (cw *ContentWatcher) Start(ctx context.Context) error {
	go cw.debouncer.start(ctx)
	go cw.processEvents(ctx)
	go cw.watchLoop(ctx)

	return nil
}

// Stop stops the watcher and cleans up resources.
func (cw *ContentWatcher) Stop() error {
	if cw.debouncer.timer != nil {
		cw.debouncer.timer.Stop()
	}

	return cw.watcher.Close()
}

func (cw *ContentWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-cw.watcher.Events:
			cw.handleFsnotifyEvent(event)
		case err := <-cw.watcher.Errors:
			// Log error but continue watching
			log.Printf("Content watcher error: %v", err)
		}
	}
}

func (cw *ContentWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	cw.mutex.RLock()
	filters := cw.filters
	cw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var modTime time.Time
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventTypeCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventTypeModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventTypeDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	changeEvent := ChangeEvent{
		Type:    eventType,
		Path:    event.Name,
		ModTime: modTime,
	}

	select {
	case cw.debouncer.events <- changeEvent:
	default:
		// Channel full, skip this event
	}
}

func (cw *ContentWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-cw.debouncer.output:
			cw.mutex.RLock()
			handlers := cw.handlers
			cw.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(events); err != nil {
					// Log error but continue processing
					log.Printf("Content watcher handler error: %v", err)
				}
			}
		}
	}
}

func (d *Debouncer) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.addEvent(event)
		}
	}
}

func (d *Debouncer) addEvent(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.flush()
	})
}

func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	// Deduplicate events by path
	eventMap := make(map[string]ChangeEvent)
	for _, event := range d.pending {
		eventMap[event.Path] = event
	}

	events := make([]ChangeEvent, 0, len(eventMap))
	for _, event := range eventMap {
		events = append(events, event)
	}

	select {
	case d.output <- events:
	default:
		// Channel full, skip
	}

	d.pending = d.pending[:0]
}

// Common file filters

// YAMLFilter keeps only YAML content modules.
func YAMLFilter(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".yaml" || ext == ".yml"
}

// NoHiddenFilter drops dotfiles and editor swap artifacts.
func NoHiddenFilter(path string) bool {
	base := filepath.Base(path)

	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~")
}
