package player

import (
	"context"

	"github.com/evandrarf/lingua-be/internal/lesson"
)

// ContentProvider returns lesson.ErrNotFound for unknown ids.
type ContentProvider interface {
	GetLesson(ctx context.Context, id string) (*lesson.Lesson, error)
}

// ProgressStore persists resume snapshots and final results. LoadSnapshot
// returns nil without error when nothing is saved. Guests never reach it.
type ProgressStore interface {
	LoadSnapshot(ctx context.Context, userID uint, lessonID string) (*Snapshot, error)
	SaveSnapshot(ctx context.Context, userID uint, lessonID string, s Snapshot) error
	ClearSnapshot(ctx context.Context, userID uint, lessonID string) error
	RecordResult(ctx context.Context, userID uint, lessonID string, score, total, elapsedSeconds int) error
	// CompleteAttempt records the result and clears the snapshot together:
	// either both happen or neither does.
	CompleteAttempt(ctx context.Context, userID uint, lessonID string, score, total, elapsedSeconds int) error
}
