package lessonstore

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 250 * time.Millisecond

// Watch reloads the store whenever a lesson file changes, until ctx is done.
// Bursts of events (editors write in several steps) collapse into one reload.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isLessonFile(filepath.Base(event.Name)) || event.Op == fsnotify.Chmod {
					continue
				}
				pending = time.After(reloadDelay)
			case <-pending:
				pending = nil
				if err := s.Reload(); err != nil {
					s.log.Errorf("Failed to reload lessons: %v", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warnf("Lesson watcher error: %v", err)
			}
		}
	}()

	return nil
}
