package repository

import (
	"github.com/evandrarf/lingua-be/internal/entity"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		Create(db *gorm.DB, user *entity.User) error
		FindByID(db *gorm.DB, id uint) (*entity.User, error)
		FindByUsername(db *gorm.DB, username string) (*entity.User, error)
		FindAll(db *gorm.DB) ([]entity.User, error)
		CountByUsername(db *gorm.DB, username string) (int64, error)
		Delete(db *gorm.DB, id uint) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	if db == nil {
		db = r.db
	}
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	if db == nil {
		db = r.db
	}
	var users []entity.User
	err := db.Order("created_at ASC, id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountByUsername(db *gorm.DB, username string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *userRepository) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		db = r.db
	}
	res := db.Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
