package config

import (
	"context"
	"fmt"
	"time"

	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-be/internal/delivery/http/route"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/pkg/lessonstore"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Ctx       context.Context
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires every layer onto the API. The returned scheduler is
// already running and must be stopped on shutdown.
func Bootstrap(config *BootstrapConfig) (*Scheduler, error) {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	lessons, err := lessonstore.New(config.Config.GetString("lessons.dir"), config.Log)
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	if config.Config.GetBool("lessons.watch") {
		if err := lessons.Watch(ctx); err != nil {
			config.Log.Warnf("Lesson hot reload disabled: %v", err)
		}
	}

	sessions := NewSessionStore(config.Config)
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:      config.Log,
		Config:   config.Config,
		Sessions: sessions,
	})

	audio := mapper.NewAudioResolver(config.Config.GetString("lessons.audio_dir"), "/audio")

	userRepo := repository.NewUserRepository(config.DB)
	progressRepo := repository.NewLessonProgressRepository(config.DB)
	resultRepo := repository.NewLessonResultRepository(config.DB)

	authUsecase := usecase.NewAuthUsecase(usecase.AuthConfig{
		DB:         config.DB,
		Log:        config.Log,
		Repository: userRepo,
	})
	userUsecase := usecase.NewUserUsecase(usecase.UserConfig{
		DB:                 config.DB,
		Log:                config.Log,
		Repository:         userRepo,
		ResultRepository:   resultRepo,
		ProgressRepository: progressRepo,
	})
	lessonUsecase := usecase.NewLessonUsecase(usecase.LessonConfig{
		Catalog: lessons,
		Audio:   audio,
	})
	progressUsecase := usecase.NewProgressUsecase(usecase.ProgressConfig{
		DB:                 config.DB,
		Log:                config.Log,
		Catalog:            lessons,
		ProgressRepository: progressRepo,
		ResultRepository:   resultRepo,
	})
	maxRetries := config.Config.GetInt("player.max_adaptive_retries")
	if maxRetries == 0 {
		maxRetries = usecase.NoRetries
	}
	playerUsecase := usecase.NewPlayerUsecase(usecase.PlayerConfig{
		Log:     config.Log,
		Catalog: lessons,
		Store: usecase.NewProgressStore(usecase.ProgressStoreConfig{
			DB:                 config.DB,
			ProgressRepository: progressRepo,
			ResultRepository:   resultRepo,
		}),
		Audio:       audio,
		MaxRetries:  maxRetries,
		IdleTimeout: config.Config.GetDuration("player.idle_timeout"),
	})

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		StaticDir:       config.Config.GetString("api.static_dir"),
		AudioDir:        config.Config.GetString("lessons.audio_dir"),
		AuthHandler:     handler.NewAuthHandler(config.Validator, config.Log, sessions, authUsecase),
		UserHandler:     handler.NewUserHandler(config.Log, userUsecase),
		LessonHandler:   handler.NewLessonHandler(config.Log, lessonUsecase),
		ProgressHandler: handler.NewProgressHandler(config.Validator, config.Log, progressUsecase),
		PlayerHandler:   handler.NewPlayerHandler(config.Validator, config.Log, playerUsecase),
	})

	scheduler := NewScheduler(config.Log)
	if err := scheduler.EveryIdleSweep(config.Config.GetDuration("player.sweep_interval"), playerUsecase); err != nil {
		return nil, fmt.Errorf("schedule idle sweep: %w", err)
	}
	scheduler.Start()

	return scheduler, nil
}

func NewSessionStore(config *viper.Viper) *session.Store {
	expiration := config.GetDuration("session.expiration")
	if expiration <= 0 {
		expiration = 7 * 24 * time.Hour
	}

	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:" + config.GetString("session.cookie_name"),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   config.GetBool("session.secure"),
	})
}
