package entity

import "time"

// LessonResult - Hasil akhir satu attempt lesson
type LessonResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	LessonID       string    `gorm:"size:100;not null;index" json:"lesson_id"`
	Score          int       `gorm:"not null" json:"score"`           // jumlah exercise yang dikuasai
	TotalQuestions int       `gorm:"not null" json:"total_questions"` // jumlah exercise di lesson
	Percentage     float64   `gorm:"not null" json:"percentage"`
	TimeSpentSec   int       `gorm:"default:0" json:"time_spent_sec"`
	CompletedAt    time.Time `gorm:"autoCreateTime;index" json:"completed_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LessonResult) TableName() string {
	return "lesson_results"
}

// LessonResultWithUser - Hasil lesson beserta nama dan avatar user
type LessonResultWithUser struct {
	LessonResult
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// BestScore - Nilai terbaik per lesson
type BestScore struct {
	LessonID  string  `json:"lesson_id"`
	BestScore float64 `json:"best_score"`
	Attempts  int     `json:"attempts"`
}
