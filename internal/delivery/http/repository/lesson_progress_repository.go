package repository

import (
	"github.com/evandrarf/lingua-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	LessonProgressRepository interface {
		FindByUserAndLesson(db *gorm.DB, userID uint, lessonID string) (*entity.LessonProgress, error)
		Upsert(db *gorm.DB, progress *entity.LessonProgress) error
		Delete(db *gorm.DB, userID uint, lessonID string) error
		DeleteByUser(db *gorm.DB, userID uint) error
	}

	lessonProgressRepository struct {
		db *gorm.DB
	}
)

func NewLessonProgressRepository(db *gorm.DB) LessonProgressRepository {
	return &lessonProgressRepository{db: db}
}

func (r *lessonProgressRepository) FindByUserAndLesson(db *gorm.DB, userID uint, lessonID string) (*entity.LessonProgress, error) {
	if db == nil {
		db = r.db
	}
	var progress entity.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert: one row per (user, lesson)
func (r *lessonProgressRepository) Upsert(db *gorm.DB, progress *entity.LessonProgress) error {
	if db == nil {
		db = r.db
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exercise_pointer",
			"answer_history",
			"exercise_queue",
			"retry_counts",
			"mastered_set",
			"score",
			"updated_at",
		}),
	}).Create(progress).Error
}

func (r *lessonProgressRepository) Delete(db *gorm.DB, userID uint, lessonID string) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).Delete(&entity.LessonProgress{}).Error
}

func (r *lessonProgressRepository) DeleteByUser(db *gorm.DB, userID uint) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", userID).Delete(&entity.LessonProgress{}).Error
}
