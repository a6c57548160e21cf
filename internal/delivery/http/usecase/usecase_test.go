package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/evandrarf/lingua-be/database"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/evandrarf/lingua-be/internal/player"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:uc_%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, DisplayName: strings.ToUpper(username), Password: "hash", Role: role, Avatar: "🧒"}
	require.NoError(t, repository.NewUserRepository(db).Create(nil, u))
	return u
}

// sampleLesson has two vocabulary cards, a multiple choice exercise whose
// answer is option 1 and a typed answer "casa".
func sampleLesson(id string) *lesson.Lesson {
	return &lesson.Lesson{
		ID:    id,
		Title: strings.ToUpper(id),
		Vocabulary: []lesson.VocabularyItem{
			{Target: "Bună", English: "Hello"},
			{Target: "Casă", English: "House"},
		},
		Exercises: lesson.Exercises{
			&lesson.MultipleChoice{Question: "Hello?", Options: []string{"a", "b"}, CorrectAnswer: 1},
			&lesson.TypeAnswer{Question: "House?", Answer: "casa"},
		},
	}
}

type fakeCatalog struct {
	lessons map[string]*lesson.Lesson
}

func newFakeCatalog(lessons ...*lesson.Lesson) *fakeCatalog {
	c := &fakeCatalog{lessons: make(map[string]*lesson.Lesson)}
	for _, l := range lessons {
		c.lessons[l.ID] = l
	}
	return c
}

func (c *fakeCatalog) GetLesson(_ context.Context, id string) (*lesson.Lesson, error) {
	l, ok := c.lessons[id]
	if !ok {
		return nil, lesson.ErrNotFound
	}
	return l, nil
}

func (c *fakeCatalog) List(_ context.Context) []*lesson.Lesson {
	out := make([]*lesson.Lesson, 0, len(c.lessons))
	for _, l := range c.lessons {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *fakeCatalog) Count() int { return len(c.lessons) }

type recordedResult struct {
	UserID   uint
	LessonID string
	Score    int
	Total    int
}

type fakeStore struct {
	mu          sync.Mutex
	snapshots   map[string]player.Snapshot
	results     []recordedResult
	saves       int
	clears      int
	completes   int
	loadErr     error
	saveErr     error
	completeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[string]player.Snapshot)}
}

func storeKey(userID uint, lessonID string) string {
	return fmt.Sprintf("%d/%s", userID, lessonID)
}

func (s *fakeStore) LoadSnapshot(_ context.Context, userID uint, lessonID string) (*player.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	snap, ok := s.snapshots[storeKey(userID, lessonID)]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *fakeStore) SaveSnapshot(_ context.Context, userID uint, lessonID string, snap player.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snapshots[storeKey(userID, lessonID)] = snap
	return nil
}

func (s *fakeStore) ClearSnapshot(_ context.Context, userID uint, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	delete(s.snapshots, storeKey(userID, lessonID))
	return nil
}

func (s *fakeStore) RecordResult(_ context.Context, userID uint, lessonID string, score, total, _ int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, recordedResult{UserID: userID, LessonID: lessonID, Score: score, Total: total})
	return nil
}

func (s *fakeStore) CompleteAttempt(_ context.Context, userID uint, lessonID string, score, total, _ int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completes++
	if s.completeErr != nil {
		return s.completeErr
	}
	s.results = append(s.results, recordedResult{UserID: userID, LessonID: lessonID, Score: score, Total: total})
	delete(s.snapshots, storeKey(userID, lessonID))
	return nil
}

func (s *fakeStore) snapshot(userID uint, lessonID string) (player.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[storeKey(userID, lessonID)]
	return snap, ok
}

var errStoreDown = errors.New("store down")
