package mapper

import (
	dto "github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/player"
	"gorm.io/datatypes"
)

// ToLessonProgress - Convert player snapshot to DB row
func ToLessonProgress(userID uint, lessonID string, s player.Snapshot) *dbEntity.LessonProgress {
	retries := s.RetryCounts
	if retries == nil {
		retries = map[int]int{}
	}
	return &dbEntity.LessonProgress{
		UserID:          userID,
		LessonID:        lessonID,
		ExercisePointer: s.ExercisePointer,
		AnswerHistory:   datatypes.JSONSlice[bool](nonNil(s.AnswerHistory)),
		ExerciseQueue:   datatypes.JSONSlice[int](nonNil(s.ExerciseQueue)),
		RetryCounts:     datatypes.NewJSONType(retries),
		MasteredSet:     datatypes.JSONSlice[int](nonNil(s.MasteredSet)),
		Score:           s.Score,
	}
}

// ToSnapshot - Convert DB row back to player snapshot
func ToSnapshot(p *dbEntity.LessonProgress) player.Snapshot {
	return player.Snapshot{
		ExercisePointer: p.ExercisePointer,
		AnswerHistory:   []bool(p.AnswerHistory),
		ExerciseQueue:   []int(p.ExerciseQueue),
		RetryCounts:     p.RetryCounts.Data(),
		MasteredSet:     []int(p.MasteredSet),
		Score:           p.Score,
	}
}

func SnapshotFromRequest(req dto.SaveProgressRequest) player.Snapshot {
	return player.Snapshot{
		ExercisePointer: req.ExercisePointer,
		AnswerHistory:   req.AnswerHistory,
		ExerciseQueue:   req.ExerciseQueue,
		RetryCounts:     req.RetryCounts,
		MasteredSet:     req.MasteredSet,
		Score:           req.Score,
	}
}

func ToProgressResponse(p *dbEntity.LessonProgress) dto.ProgressResponse {
	s := ToSnapshot(p)
	return dto.ProgressResponse{
		LessonID:        p.LessonID,
		ExercisePointer: s.ExercisePointer,
		AnswerHistory:   s.AnswerHistory,
		ExerciseQueue:   s.ExerciseQueue,
		RetryCounts:     s.RetryCounts,
		MasteredSet:     s.MasteredSet,
		Score:           s.Score,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToLessonResultResponse(r *dbEntity.LessonResult) dto.LessonResultResponse {
	return dto.LessonResultResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		LessonID:       r.LessonID,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Percentage:     r.Percentage,
		TimeSpentSec:   r.TimeSpentSec,
		CompletedAt:    r.CompletedAt,
	}
}

func ToLessonResultResponses(rows []dbEntity.LessonResult) []dto.LessonResultResponse {
	out := make([]dto.LessonResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToLessonResultResponse(&rows[i]))
	}
	return out
}

func ToLessonResultWithUserResponses(rows []dbEntity.LessonResultWithUser) []dto.LessonResultResponse {
	out := make([]dto.LessonResultResponse, 0, len(rows))
	for i := range rows {
		res := ToLessonResultResponse(&rows[i].LessonResult)
		res.DisplayName = rows[i].DisplayName
		res.Avatar = rows[i].Avatar
		out = append(out, res)
	}
	return out
}

func ToBestScoreResponses(rows []dbEntity.BestScore) []dto.BestScoreResponse {
	out := make([]dto.BestScoreResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BestScoreResponse{LessonID: r.LessonID, BestScore: r.BestScore, Attempts: r.Attempts})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
