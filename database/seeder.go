package database

import (
	"fmt"
	"strings"

	"github.com/evandrarf/lingua-be/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultParentUsername    = "parent"
	defaultParentPassword    = "parent123"
	defaultParentDisplayName = "Mom & Dad"
	defaultParentAvatar      = "👨‍👩‍👧‍👦"
)

// SeedDefaultParent - Pastikan selalu ada minimal satu akun parent
func SeedDefaultParent(db *gorm.DB, config *viper.Viper, log *logrus.Logger) error {
	// Check if already seeded
	var count int64
	if err := db.Model(&entity.User{}).Where("role = ?", entity.RoleParent).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count parent accounts: %w", err)
	}
	if count > 0 {
		log.Debug("Parent account already exists, skipping...")
		return nil
	}

	username := strings.ToLower(valueOr(config.GetString("seed.parent.username"), defaultParentUsername))
	password := valueOr(config.GetString("seed.parent.password"), defaultParentPassword)
	displayName := valueOr(config.GetString("seed.parent.display_name"), defaultParentDisplayName)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash parent password: %w", err)
	}

	parent := entity.User{
		Username:    username,
		DisplayName: displayName,
		Password:    string(hash),
		Role:        entity.RoleParent,
		Avatar:      defaultParentAvatar,
	}
	if err := db.Create(&parent).Error; err != nil {
		return fmt.Errorf("failed to seed parent account: %w", err)
	}

	log.Infof("Default parent account created, username: %s", username)
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
