package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	// DATABASE_DRIVER overrides database.driver, and so on
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "lingua-be")
	config.SetDefault("api.port", 8080)
	config.SetDefault("api.static_dir", "./public")
	config.SetDefault("api.body_limit", 1<<20)
	config.SetDefault("api.read_timeout", "15s")
	config.SetDefault("api.write_timeout", "30s")
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")
	config.SetDefault("database.driver", "sqlite")
	config.SetDefault("database.sqlite.path", "data/app.db")
	config.SetDefault("session.expiration", "168h")
	config.SetDefault("session.cookie_name", "lingua_session")
	config.SetDefault("session.secure", false)
	config.SetDefault("lessons.dir", "./lessons")
	config.SetDefault("lessons.watch", true)
	config.SetDefault("lessons.audio_dir", "./public/audio")
	config.SetDefault("player.max_adaptive_retries", 2)
	config.SetDefault("player.idle_timeout", "2h")
	config.SetDefault("player.sweep_interval", "5m")
}
