// Package watcher monitors text files for external changes so a scan
// can be re-run when the underlying file is rewritten. Rapid bursts of
// writes to the same file are coalesced into a single change event.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("file is already being watched")
	ErrNotWatching     = errors.New("file is not being watched")
	ErrPathNotExist    = errors.New("file does not exist")
)

// Op represents the type of change to a watched file.
type Op uint32

const (
	// OpWrite indicates the file content changed.
	OpWrite Op = 1 << iota
	// OpCreate indicates the file was created or replaced.
	OpCreate
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch {
	case op.Has(OpWrite):
		return "WRITE"
	case op.Has(OpCreate):
		return "CREATE"
	case op.Has(OpRemove):
		return "REMOVE"
	case op.Has(OpRename):
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event describes a change to a watched file.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	// Op is the combined set of operations observed within the
	// debounce window.
	Op Op

	// Timestamp is when the last underlying change was seen.
	Timestamp time.Time
}

// Handler handles file change events.
type Handler func(event Event)

// DefaultDebounce is the default coalescing window for change events.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets the coalescing window. Values <= 0 disable
// debouncing and deliver every raw event.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		w.debounce = d
	}
}

// WithBufferSize sets the event channel buffer size.
func WithBufferSize(size int) Option {
	return func(w *FileWatcher) {
		if size > 0 {
			w.bufSize = size
		}
	}
}

// FileWatcher watches individual files for changes using fsnotify.
//
// fsnotify watches directories more reliably than files (editors often
// replace a file by rename, which drops a file-level watch), so the
// watcher registers each file's parent directory and filters events
// down to the named files.
type FileWatcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	debounce time.Duration
	bufSize  int

	// files maps absolute file path -> watched.
	files map[string]bool

	// dirs maps parent directory -> number of watched files in it.
	dirs map[string]int

	// pending holds events waiting out the debounce window.
	pending map[string]*pendingEvent

	events chan Event
	errs   chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

type pendingEvent struct {
	event Event
	timer *time.Timer
}

// New creates a file watcher.
func New(opts ...Option) (*FileWatcher, error) {
	w := &FileWatcher{
		debounce: DefaultDebounce,
		bufSize:  64,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		pending:  make(map[string]*pendingEvent),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fsw = fsw
	w.events = make(chan Event, w.bufSize)
	w.errs = make(chan error, w.bufSize)

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a file. The file must exist.
func (w *FileWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if info.IsDir() {
		return errors.New("watch target is a directory")
	}

	if w.files[absPath] {
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	return nil
}

// Unwatch stops watching a file.
func (w *FileWatcher) Unwatch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !w.files[absPath] {
		return ErrNotWatching
	}

	delete(w.files, absPath)
	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fsw.Remove(dir); err != nil {
			return err
		}
	}
	return nil
}

// IsWatching returns true if the file is being watched.
func (w *FileWatcher) IsWatching(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return w.files[absPath]
}

// WatchedFiles returns the absolute paths of all watched files.
func (w *FileWatcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	return paths
}

// Events returns the channel of coalesced change events.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases resources.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errs)

	return w.fsw.Close()
}

// Run delivers events to handler until ctx is cancelled or the watcher
// is closed.
func (w *FileWatcher) Run(ctx context.Context, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.events:
			if !ok {
				return
			}
			handler(event)
		case _, ok := <-w.errs:
			if !ok {
				return
			}
		}
	}
}

func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	absPath, err := filepath.Abs(fsEvent.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[absPath] {
		return
	}

	event := Event{
		Path:      absPath,
		Op:        op,
		Timestamp: time.Now(),
	}

	if w.debounce <= 0 {
		w.sendEventLocked(event)
		return
	}

	if p, exists := w.pending[absPath]; exists {
		p.event.Op |= op
		p.event.Timestamp = event.Timestamp
		p.timer.Reset(w.debounce)
		return
	}

	p := &pendingEvent{event: event}
	p.timer = time.AfterFunc(w.debounce, func() {
		w.fireEvent(absPath)
	})
	w.pending[absPath] = p
}

func (w *FileWatcher) fireEvent(path string) {
	w.mu.Lock()
	p, exists := w.pending[path]
	if !exists || w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	event := p.event
	w.sendEventLocked(event)
	w.mu.Unlock()
}

// sendEventLocked delivers an event without blocking; the caller holds
// the mutex.
func (w *FileWatcher) sendEventLocked(event Event) {
	select {
	case w.events <- event:
	default:
		// Channel full, drop event.
	}
}

func (w *FileWatcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

// Flush immediately fires all pending events. Useful in tests.
func (w *FileWatcher) Flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path, p := range w.pending {
		p.timer.Stop()
		paths = append(paths, path)
	}
	w.mu.Unlock()

	for _, path := range paths {
		w.fireEvent(path)
	}
}

// PendingCount returns the number of events waiting out the debounce
// window.
func (w *FileWatcher) PendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
