package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultAvatar = "🧒"

type AuthUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.UserResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.UserResponse, error)
	Me(ctx context.Context, userID uint) (*entity.UserResponse, error)
}

type AuthConfig struct {
	DB         *gorm.DB
	Log        *logrus.Logger
	Repository repository.UserRepository
	BcryptCost int
}

type authUsecase struct {
	cfg AuthConfig
}

func NewAuthUsecase(cfg AuthConfig) AuthUsecase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &authUsecase{cfg: cfg}
}

func (u *authUsecase) Register(ctx context.Context, req entity.RegisterRequest) (*entity.UserResponse, error) {
	db := u.cfg.DB.WithContext(ctx)
	username := strings.ToLower(strings.TrimSpace(req.Username))

	count, err := u.cfg.Repository.CountByUsername(db, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = internalEntity.RoleStudent
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = defaultAvatar
	}

	user := internalEntity.User{
		Username:    username,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Password:    string(hash),
		Role:        role,
		Avatar:      avatar,
	}
	if err := u.cfg.Repository.Create(db, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": role}).Info("User registered")
	res := mapper.ToUserResponse(&user)
	return &res, nil
}

func (u *authUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.UserResponse, error) {
	user, err := u.cfg.Repository.FindByUsername(u.cfg.DB.WithContext(ctx), strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	res := mapper.ToUserResponse(user)
	return &res, nil
}

func (u *authUsecase) Me(ctx context.Context, userID uint) (*entity.UserResponse, error) {
	user, err := u.cfg.Repository.FindByID(u.cfg.DB.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	res := mapper.ToUserResponse(user)
	return &res, nil
}
