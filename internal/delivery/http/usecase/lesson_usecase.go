package usecase

import (
	"context"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-be/internal/player"
)

// LessonCatalog is the lesson content provider plus listing.
type LessonCatalog interface {
	player.ContentProvider
	List(ctx context.Context) []*lesson.Lesson
	Count() int
}

type LessonUsecase interface {
	List(ctx context.Context) []entity.LessonSummary
	Get(ctx context.Context, id string) (*entity.LessonDetail, error)
}

type LessonConfig struct {
	Catalog LessonCatalog
	Audio   mapper.AudioResolver
}

type lessonUsecase struct {
	cfg LessonConfig
}

func NewLessonUsecase(cfg LessonConfig) LessonUsecase {
	if cfg.Audio == nil {
		cfg.Audio = mapper.NoAudio
	}
	return &lessonUsecase{cfg: cfg}
}

func (u *lessonUsecase) List(ctx context.Context) []entity.LessonSummary {
	lessons := u.cfg.Catalog.List(ctx)
	out := make([]entity.LessonSummary, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, mapper.ToLessonSummary(l))
	}
	return out
}

// Get returns lesson.ErrNotFound for unknown ids.
func (u *lessonUsecase) Get(ctx context.Context, id string) (*entity.LessonDetail, error) {
	l, err := u.cfg.Catalog.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := mapper.ToLessonDetail(l, u.cfg.Audio)
	return &detail, nil
}
