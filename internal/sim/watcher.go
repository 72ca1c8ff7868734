package sim

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stepvis/stepvis/internal/debug"
)

// DefaultWatchDebounce coalesces bursts of file events (editors write
// temp files then rename) into one reload.
const DefaultWatchDebounce = 300 * time.Millisecond

// Watch monitors dataDir recursively for simulation JSON changes and calls
// onChange after each debounced burst. Blocks until the context is canceled.
func Watch(ctx context.Context, dataDir string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, dataDir); err != nil {
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
					continue
				}
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			debug.LogSim("change detected: %s (%s)\n", event.Name, event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			debug.LogSim("watch error: %v\n", err)

		case <-fire:
			onChange()
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
