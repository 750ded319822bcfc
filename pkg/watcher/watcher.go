// Package watcher reports debounced changes to a set of files.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files and delivers the path of each changed file on
// Changes once writes to it have settled for the debounce period.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	watched  map[string]bool
	timers   map[string]*time.Timer
	debounce time.Duration
	changes  chan string
	done     chan struct{}
	closed   bool
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  w,
		watched:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		debounce: debounce,
		changes:  make(chan string, 1),
		done:     make(chan struct{}),
	}, nil
}

// Watch adds files to the watch list. Their directories are watched so that
// editors replacing the file through a rename are still noticed.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.watched[absPath] = true
	}
	return nil
}

// Changes delivers changed paths. Pending notifications for the same file
// are coalesced. The channel is closed by Close.
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("watcher error", "err", err)

			case <-fw.done:
				return
			}
		}
	}()
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil || !fw.watched[absPath] || fw.closed {
		return
	}

	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		fw.notify(absPath)
	})
}

func (fw *FileWatcher) notify(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return
	}
	select {
	case fw.changes <- path:
	default:
		// a notification is already pending; the reader reloads anyway
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	close(fw.done)
	close(fw.changes)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
