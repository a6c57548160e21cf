package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-be/internal/player"
	"gorm.io/gorm"
)

type ProgressStoreConfig struct {
	DB                 *gorm.DB
	ProgressRepository repository.LessonProgressRepository
	ResultRepository   repository.LessonResultRepository
}

type progressStore struct {
	cfg ProgressStoreConfig
}

// NewProgressStore backs player.ProgressStore with the lesson_progress and
// lesson_results tables.
func NewProgressStore(cfg ProgressStoreConfig) player.ProgressStore {
	return &progressStore{cfg: cfg}
}

func (s *progressStore) LoadSnapshot(ctx context.Context, userID uint, lessonID string) (*player.Snapshot, error) {
	row, err := s.cfg.ProgressRepository.FindByUserAndLesson(s.cfg.DB.WithContext(ctx), userID, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap := mapper.ToSnapshot(row)
	return &snap, nil
}

func (s *progressStore) SaveSnapshot(ctx context.Context, userID uint, lessonID string, snap player.Snapshot) error {
	return s.cfg.ProgressRepository.Upsert(s.cfg.DB.WithContext(ctx), mapper.ToLessonProgress(userID, lessonID, snap))
}

func (s *progressStore) ClearSnapshot(ctx context.Context, userID uint, lessonID string) error {
	return s.cfg.ProgressRepository.Delete(s.cfg.DB.WithContext(ctx), userID, lessonID)
}

func (s *progressStore) RecordResult(ctx context.Context, userID uint, lessonID string, score, total, elapsedSeconds int) error {
	return s.cfg.ResultRepository.Create(s.cfg.DB.WithContext(ctx), newResult(userID, lessonID, score, total, elapsedSeconds))
}

func (s *progressStore) CompleteAttempt(ctx context.Context, userID uint, lessonID string, score, total, elapsedSeconds int) error {
	return s.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cfg.ResultRepository.Create(tx, newResult(userID, lessonID, score, total, elapsedSeconds)); err != nil {
			return err
		}
		return s.cfg.ProgressRepository.Delete(tx, userID, lessonID)
	})
}

func newResult(userID uint, lessonID string, score, total, elapsedSeconds int) *internalEntity.LessonResult {
	return &internalEntity.LessonResult{
		UserID:         userID,
		LessonID:       lessonID,
		Score:          score,
		TotalQuestions: total,
		Percentage:     float64(Percentage(score, total)),
		TimeSpentSec:   elapsedSeconds,
	}
}

// Percentage is round(100*score/total). A lesson without exercises counts
// as fully done, matching player.Complete.
func Percentage(score, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
