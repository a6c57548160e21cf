package database

import (
	"github.com/evandrarf/lingua-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.LessonResult{},
		&entity.LessonProgress{},
	)
	return err
}
