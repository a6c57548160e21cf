package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-be/internal/pkg/report"
	"github.com/evandrarf/lingua-be/internal/player"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentResultsLimit = 10

type ProgressUsecase interface {
	Save(ctx context.Context, userID uint, req entity.SaveProgressRequest) error
	Get(ctx context.Context, userID uint, lessonID string) (*entity.ProgressResponse, error)
	Complete(ctx context.Context, userID uint, req entity.CompleteLessonRequest) (*entity.CompleteLessonResponse, error)
	MyResults(ctx context.Context, userID uint) ([]entity.LessonResultResponse, error)
	AllResults(ctx context.Context) ([]entity.LessonResultResponse, error)
	ExportResults(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context, actorID uint, actorIsParent bool, userID uint) (*entity.UserStatsResponse, error)
}

type ProgressConfig struct {
	DB                 *gorm.DB
	Log                *logrus.Logger
	Catalog            LessonCatalog
	ProgressRepository repository.LessonProgressRepository
	ResultRepository   repository.LessonResultRepository
}

type progressUsecase struct {
	cfg ProgressConfig
}

func NewProgressUsecase(cfg ProgressConfig) ProgressUsecase {
	return &progressUsecase{cfg: cfg}
}

func (u *progressUsecase) Save(ctx context.Context, userID uint, req entity.SaveProgressRequest) error {
	if _, err := u.cfg.Catalog.GetLesson(ctx, req.LessonID); err != nil {
		return err
	}

	row := mapper.ToLessonProgress(userID, req.LessonID, mapper.SnapshotFromRequest(req))
	if err := u.cfg.ProgressRepository.Upsert(u.cfg.DB.WithContext(ctx), row); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Get returns nil when nothing is saved for the lesson.
func (u *progressUsecase) Get(ctx context.Context, userID uint, lessonID string) (*entity.ProgressResponse, error) {
	row, err := u.cfg.ProgressRepository.FindByUserAndLesson(u.cfg.DB.WithContext(ctx), userID, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find progress: %w", err)
	}

	res := mapper.ToProgressResponse(row)
	return &res, nil
}

// Complete records a result reported by the client and clears the saved snapshot.
func (u *progressUsecase) Complete(ctx context.Context, userID uint, req entity.CompleteLessonRequest) (*entity.CompleteLessonResponse, error) {
	percentage := Percentage(req.Score, req.TotalQuestions)

	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := internalEntity.LessonResult{
			UserID:         userID,
			LessonID:       req.LessonID,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			Percentage:     float64(percentage),
			TimeSpentSec:   req.TimeSpentSec,
		}
		if err := u.cfg.ResultRepository.Create(tx, &result); err != nil {
			return err
		}
		return u.cfg.ProgressRepository.Delete(tx, userID, req.LessonID)
	})
	if err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"lesson_id":  req.LessonID,
		"percentage": percentage,
	}).Info("Lesson completed")

	return &entity.CompleteLessonResponse{Percentage: percentage, Tier: player.Tier(percentage)}, nil
}

func (u *progressUsecase) MyResults(ctx context.Context, userID uint) ([]entity.LessonResultResponse, error) {
	rows, err := u.cfg.ResultRepository.FindByUser(u.cfg.DB.WithContext(ctx), userID, 0)
	if err != nil {
		return nil, fmt.Errorf("find results: %w", err)
	}
	return mapper.ToLessonResultResponses(rows), nil
}

func (u *progressUsecase) AllResults(ctx context.Context) ([]entity.LessonResultResponse, error) {
	rows, err := u.cfg.ResultRepository.FindAllWithUser(u.cfg.DB.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("find results: %w", err)
	}
	return mapper.ToLessonResultWithUserResponses(rows), nil
}

func (u *progressUsecase) ExportResults(ctx context.Context) ([]byte, error) {
	results, err := u.AllResults(ctx)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string)
	for _, l := range u.cfg.Catalog.List(ctx) {
		titles[l.ID] = l.Title
	}

	return report.ResultsWorkbook(results, titles)
}

// Stats is available to the user themself and to parents.
func (u *progressUsecase) Stats(ctx context.Context, actorID uint, actorIsParent bool, userID uint) (*entity.UserStatsResponse, error) {
	if actorID != userID && !actorIsParent {
		return nil, ErrForbidden
	}

	db := u.cfg.DB.WithContext(ctx)
	completed, err := u.cfg.ResultRepository.CountDistinctLessons(db, userID)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}
	avg, err := u.cfg.ResultRepository.AveragePercentage(db, userID)
	if err != nil {
		return nil, fmt.Errorf("average score: %w", err)
	}
	totalTime, err := u.cfg.ResultRepository.TotalTimeSpent(db, userID)
	if err != nil {
		return nil, fmt.Errorf("total time: %w", err)
	}
	recent, err := u.cfg.ResultRepository.FindByUser(db, userID, recentResultsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}
	best, err := u.cfg.ResultRepository.BestScores(db, userID)
	if err != nil {
		return nil, fmt.Errorf("best scores: %w", err)
	}

	return &entity.UserStatsResponse{
		UserID:           userID,
		TotalLessons:     u.cfg.Catalog.Count(),
		CompletedLessons: completed,
		AverageScore:     int(math.Round(avg)),
		TotalTimeSec:     totalTime,
		RecentResults:    mapper.ToLessonResultResponses(recent),
		BestScores:       mapper.ToBestScoreResponses(best),
	}, nil
}
