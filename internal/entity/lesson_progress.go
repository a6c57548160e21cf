package entity

import (
	"time"

	"gorm.io/datatypes"
)

// LessonProgress - Snapshot attempt yang belum selesai, satu per user per lesson
type LessonProgress struct {
	ID              uint                            `gorm:"primarykey" json:"id"`
	UserID          uint                            `gorm:"not null;uniqueIndex:idx_progress_user_lesson" json:"user_id"`
	LessonID        string                          `gorm:"size:100;not null;uniqueIndex:idx_progress_user_lesson" json:"lesson_id"`
	ExercisePointer int                             `gorm:"default:0" json:"exercise_pointer"` // posisi di exercise_queue
	AnswerHistory   datatypes.JSONSlice[bool]       `json:"answer_history"`
	ExerciseQueue   datatypes.JSONSlice[int]        `json:"exercise_queue"`
	RetryCounts     datatypes.JSONType[map[int]int] `json:"retry_counts"` // key: index exercise
	MasteredSet     datatypes.JSONSlice[int]        `json:"mastered_set"`
	Score           int                             `gorm:"default:0" json:"score"`
	UpdatedAt       time.Time                       `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
