package repository

import (
	"github.com/evandrarf/lingua-be/internal/entity"
	"gorm.io/gorm"
)

type (
	LessonResultRepository interface {
		Create(db *gorm.DB, result *entity.LessonResult) error
		FindByUser(db *gorm.DB, userID uint, limit int) ([]entity.LessonResult, error)
		FindAllWithUser(db *gorm.DB) ([]entity.LessonResultWithUser, error)
		DeleteByUser(db *gorm.DB, userID uint) error

		// Stats
		CountDistinctLessons(db *gorm.DB, userID uint) (int64, error)
		AveragePercentage(db *gorm.DB, userID uint) (float64, error)
		TotalTimeSpent(db *gorm.DB, userID uint) (int64, error)
		BestScores(db *gorm.DB, userID uint) ([]entity.BestScore, error)
	}

	lessonResultRepository struct {
		db *gorm.DB
	}
)

func NewLessonResultRepository(db *gorm.DB) LessonResultRepository {
	return &lessonResultRepository{db: db}
}

func (r *lessonResultRepository) Create(db *gorm.DB, result *entity.LessonResult) error {
	if db == nil {
		db = r.db
	}
	return db.Create(result).Error
}

// limit <= 0 means no limit
func (r *lessonResultRepository) FindByUser(db *gorm.DB, userID uint, limit int) ([]entity.LessonResult, error) {
	if db == nil {
		db = r.db
	}
	var results []entity.LessonResult
	query := db.Where("user_id = ?", userID).Order("completed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, err
}

func (r *lessonResultRepository) FindAllWithUser(db *gorm.DB) ([]entity.LessonResultWithUser, error) {
	if db == nil {
		db = r.db
	}
	var results []entity.LessonResultWithUser
	err := db.Table("lesson_results AS lr").
		Select("lr.*, u.display_name, u.avatar").
		Joins("JOIN users u ON lr.user_id = u.id").
		Order("lr.completed_at DESC, lr.id DESC").
		Scan(&results).Error
	return results, err
}

func (r *lessonResultRepository) DeleteByUser(db *gorm.DB, userID uint) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", userID).Delete(&entity.LessonResult{}).Error
}

func (r *lessonResultRepository) CountDistinctLessons(db *gorm.DB, userID uint) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.LessonResult{}).Where("user_id = ?", userID).Distinct("lesson_id").Count(&count).Error
	return count, err
}

func (r *lessonResultRepository) AveragePercentage(db *gorm.DB, userID uint) (float64, error) {
	if db == nil {
		db = r.db
	}
	var avg float64
	err := db.Model(&entity.LessonResult{}).Where("user_id = ?", userID).Select("COALESCE(AVG(percentage), 0)").Scan(&avg).Error
	return avg, err
}

func (r *lessonResultRepository) TotalTimeSpent(db *gorm.DB, userID uint) (int64, error) {
	if db == nil {
		db = r.db
	}
	var total int64
	err := db.Model(&entity.LessonResult{}).Where("user_id = ?", userID).Select("COALESCE(SUM(time_spent_sec), 0)").Scan(&total).Error
	return total, err
}

func (r *lessonResultRepository) BestScores(db *gorm.DB, userID uint) ([]entity.BestScore, error) {
	if db == nil {
		db = r.db
	}
	var scores []entity.BestScore
	err := db.Model(&entity.LessonResult{}).
		Select("lesson_id, MAX(percentage) AS best_score, COUNT(*) AS attempts").
		Where("user_id = ?", userID).
		Group("lesson_id").
		Order("lesson_id").
		Scan(&scores).Error
	return scores, err
}
