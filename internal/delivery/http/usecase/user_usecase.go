package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	List(ctx context.Context) ([]entity.UserResponse, error)
	Delete(ctx context.Context, actorID, userID uint) error
}

type UserConfig struct {
	DB                 *gorm.DB
	Log                *logrus.Logger
	Repository         repository.UserRepository
	ResultRepository   repository.LessonResultRepository
	ProgressRepository repository.LessonProgressRepository
}

type userUsecase struct {
	cfg UserConfig
}

func NewUserUsecase(cfg UserConfig) UserUsecase {
	return &userUsecase{cfg: cfg}
}

func (u *userUsecase) List(ctx context.Context) ([]entity.UserResponse, error) {
	users, err := u.cfg.Repository.FindAll(u.cfg.DB.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]entity.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, mapper.ToUserResponse(&users[i]))
	}
	return out, nil
}

// Delete removes a user with all of their results and saved progress.
func (u *userUsecase) Delete(ctx context.Context, actorID, userID uint) error {
	if actorID == userID {
		return ErrCannotDeleteSelf
	}

	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.cfg.ResultRepository.DeleteByUser(tx, userID); err != nil {
			return err
		}
		if err := u.cfg.ProgressRepository.DeleteByUser(tx, userID); err != nil {
			return err
		}
		return u.cfg.Repository.Delete(tx, userID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}

	u.cfg.Log.WithFields(logrus.Fields{"user_id": userID, "deleted_by": actorID}).Info("User deleted")
	return nil
}
