package entity

import "time"

// Request untuk simpan snapshot attempt
type SaveProgressRequest struct {
	LessonID        string      `json:"lesson_id" validate:"required,lesson_id"`
	ExercisePointer int         `json:"exercise_pointer" validate:"min=0"`
	AnswerHistory   []bool      `json:"answer_history"`
	ExerciseQueue   []int       `json:"exercise_queue"`
	RetryCounts     map[int]int `json:"retry_counts"`
	MasteredSet     []int       `json:"mastered_set"`
	Score           int         `json:"score" validate:"min=0"`
}

type ProgressResponse struct {
	LessonID        string      `json:"lesson_id"`
	ExercisePointer int         `json:"exercise_pointer"`
	AnswerHistory   []bool      `json:"answer_history"`
	ExerciseQueue   []int       `json:"exercise_queue"`
	RetryCounts     map[int]int `json:"retry_counts"`
	MasteredSet     []int       `json:"mastered_set"`
	Score           int         `json:"score"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Request untuk lesson yang selesai dikerjakan di client
type CompleteLessonRequest struct {
	LessonID       string `json:"lesson_id" validate:"required,lesson_id"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"total_questions" validate:"min=0,gtefield=Score"`
	TimeSpentSec   int    `json:"time_spent_sec" validate:"min=0"`
}

type CompleteLessonResponse struct {
	Percentage int    `json:"percentage"`
	Tier       string `json:"tier"`
}

type LessonResultResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	LessonID       string    `json:"lesson_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	TimeSpentSec   int       `json:"time_spent_sec"`
	CompletedAt    time.Time `json:"completed_at"`
	DisplayName    string    `json:"display_name,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
}

type BestScoreResponse struct {
	LessonID  string  `json:"lesson_id"`
	BestScore float64 `json:"best_score"`
	Attempts  int     `json:"attempts"`
}

type UserStatsResponse struct {
	UserID           uint                   `json:"user_id"`
	TotalLessons     int                    `json:"total_lessons"`
	CompletedLessons int64                  `json:"completed_lessons"`
	AverageScore     int                    `json:"average_score"`
	TotalTimeSec     int64                  `json:"total_time_sec"`
	RecentResults    []LessonResultResponse `json:"recent_results"`
	BestScores       []BestScoreResponse    `json:"best_scores"`
}
