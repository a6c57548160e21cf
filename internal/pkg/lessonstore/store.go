package lessonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/sirupsen/logrus"
)

// Store serves lessons from a directory of JSON files and keeps them cached
// in memory until Reload.
type Store struct {
	dir string
	log *logrus.Logger

	mu      sync.RWMutex
	lessons []*lesson.Lesson
	byID    map[string]*lesson.Lesson
}

func New(dir string, log *logrus.Logger) (*Store, error) {
	s := &Store{dir: dir, log: log}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Reload re-reads the directory. Files starting with "_" are templates and
// are skipped, and files that fail to parse are logged and skipped.
func (s *Store) Reload() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read lessons dir: %w", err)
	}

	loaded := make([]*lesson.Lesson, 0, len(entries))
	byID := make(map[string]*lesson.Lesson, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isLessonFile(name) {
			continue
		}

		l, err := readLesson(filepath.Join(s.dir, name))
		if err != nil {
			s.log.WithField("file", name).Warnf("Failed to load lesson: %v", err)
			continue
		}
		if _, dup := byID[l.ID]; dup {
			s.log.WithField("file", name).Warnf("Duplicate lesson id %q, skipping", l.ID)
			continue
		}

		loaded = append(loaded, l)
		byID[l.ID] = l
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		if loaded[i].SortOrder() != loaded[j].SortOrder() {
			return loaded[i].SortOrder() < loaded[j].SortOrder()
		}
		return loaded[i].ID < loaded[j].ID
	})

	s.mu.Lock()
	s.lessons = loaded
	s.byID = byID
	s.mu.Unlock()

	s.log.WithField("count", len(loaded)).Info("Lessons loaded")
	return nil
}

func isLessonFile(name string) bool {
	return strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, "_")
}

func readLesson(path string) (*lesson.Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l lesson.Lesson
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns every lesson in display order.
func (s *Store) List(_ context.Context) []*lesson.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*lesson.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lessons)
}

// GetLesson returns lesson.ErrNotFound for unknown ids. A reload swaps in new
// values, so a lesson already handed out is never mutated.
func (s *Store) GetLesson(_ context.Context, id string) (*lesson.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.byID[id]
	if !ok {
		return nil, lesson.ErrNotFound
	}
	return l, nil
}
