package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evandrarf/lingua-be/database"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/evandrarf/lingua-be/internal/player"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type catalog struct{ l *lesson.Lesson }

func (c catalog) GetLesson(_ context.Context, id string) (*lesson.Lesson, error) {
	if id != c.l.ID {
		return nil, lesson.ErrNotFound
	}
	return c.l, nil
}

func (c catalog) List(context.Context) []*lesson.Lesson { return []*lesson.Lesson{c.l} }

func (c catalog) Count() int { return 1 }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	name := strings.NewReplacer("/", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:h_%s?mode=memory&cache=shared&_foreign_keys=on", name)), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	lessons := catalog{l: &lesson.Lesson{
		ID:         "greetings",
		Title:      "Greetings",
		Vocabulary: []lesson.VocabularyItem{{Target: "Bună", English: "Hello"}},
		Exercises: lesson.Exercises{
			&lesson.TypeAnswer{Question: "Hello?", Answer: "bună"},
		},
	}}

	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewLessonProgressRepository(db)
	resultRepo := repository.NewLessonResultRepository(db)
	sessions := session.New(session.Config{KeyLookup: "cookie:test_session"})
	v := validate.NewValidator()
	m := middleware.NewMiddleware(&middleware.MiddlewareConfig{Log: log, Sessions: sessions})

	auth := NewAuthHandler(v, log, sessions, usecase.NewAuthUsecase(usecase.AuthConfig{
		DB: db, Log: log, Repository: userRepo, BcryptCost: bcrypt.MinCost,
	}))
	lessonsHandler := NewLessonHandler(log, usecase.NewLessonUsecase(usecase.LessonConfig{Catalog: lessons}))
	progress := NewProgressHandler(v, log, usecase.NewProgressUsecase(usecase.ProgressConfig{
		DB: db, Log: log, Catalog: lessons, ProgressRepository: progressRepo, ResultRepository: resultRepo,
	}))
	play := NewPlayerHandler(v, log, usecase.NewPlayerUsecase(usecase.PlayerConfig{
		Log:     log,
		Catalog: lessons,
		Store: usecase.NewProgressStore(usecase.ProgressStoreConfig{
			DB: db, ProgressRepository: progressRepo, ResultRepository: resultRepo,
		}),
		MaxRetries: player.DefaultMaxAdaptiveRetries,
	}))

	app := fiber.New()
	api := app.Group("/api", m.Authenticate())
	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/logout", auth.Logout)
	api.Get("/auth/me", m.RequireAuth(), auth.Me)
	api.Get("/lessons/:id", lessonsHandler.Get)
	api.Get("/progress/my-results", m.RequireAuth(), progress.MyResults)
	api.Get("/progress/all-results", m.RequireParent(), progress.AllResults)
	api.Post("/player/lessons/:lesson_id/attempts", play.Start)
	api.Get("/player/attempts/:attempt_id", play.Get)
	api.Post("/player/attempts/:attempt_id/vocabulary", play.Vocabulary)
	api.Post("/player/attempts/:attempt_id/answer", play.Answer)
	api.Post("/player/attempts/:attempt_id/continue", play.Continue)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, cookie string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "test_session" {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, http.MethodPost, "/api/auth/register", `{"username":"a"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")

	resp, _ = call(t, app, http.MethodPost, "/api/auth/register", `{"username":"ana","display_name":"Ana","password":"secret"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = call(t, app, http.MethodPost, "/api/auth/register", `{"username":"ana","display_name":"Ana","password":"secret"}`, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"nope"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"secret"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)

	resp, env = call(t, app, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "ana", me.Username)
	assert.Equal(t, "student", me.Role)

	resp, _ = call(t, app, http.MethodGet, "/api/progress/my-results", "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/progress/all-results", "", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLessonDetailHidesAnswers(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, http.MethodGet, "/api/lessons/greetings", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(env.Data), "bună")

	resp, _ = call(t, app, http.MethodGet, "/api/lessons/missing", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGuestPlaysOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, http.MethodPost, "/api/player/lessons/greetings/attempts", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var view struct {
		AttemptID string `json:"attempt_id"`
		Phase     string `json:"phase"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "vocabulary", view.Phase)
	base := "/api/player/attempts/" + view.AttemptID

	resp, _ = call(t, app, http.MethodPost, base+"/answer", `{"answer":{"text":"bună"}}`, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, base+"/vocabulary", `{"direction":"sideways"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, base+"/vocabulary", `{"direction":"next"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = call(t, app, http.MethodPost, base+"/answer", `{"answer":{"text":"Bună"}}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var verdict struct {
		Correct bool `json:"correct"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &verdict))
	assert.True(t, verdict.Correct)

	resp, env = call(t, app, http.MethodPost, base+"/continue", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var done struct {
		Phase  string `json:"phase"`
		Result struct {
			Percentage int    `json:"percentage"`
			Tier       string `json:"tier"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.Equal(t, "complete", done.Phase)
	assert.Equal(t, 100, done.Result.Percentage)
	assert.Equal(t, "excellent", done.Result.Tier)

	resp, _ = call(t, app, http.MethodGet, "/api/player/attempts/unknown", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrCannotDeleteSelf, fiber.StatusBadRequest},
		{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{usecase.ErrForbidden, fiber.StatusForbidden},
		{fmt.Errorf("wrapped: %w", lesson.ErrNotFound), fiber.StatusNotFound},
		{usecase.ErrAttemptNotFound, fiber.StatusNotFound},
		{usecase.ErrUsernameTaken, fiber.StatusConflict},
		{&player.InvalidStateError{Op: "complete", Phase: player.PhaseExercise}, fiber.StatusConflict},
		{fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
		{io.ErrUnexpectedEOF, fiber.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusOf(c.err), c.err.Error())
	}
}
