package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/evandrarf/lingua-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-be/internal/player"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GuestID marks attempts that belong to nobody. Guests can play but nothing
// they do is stored.
const GuestID uint = 0

type PlayerUsecase interface {
	Start(ctx context.Context, userID uint, lessonID string) (*entity.AttemptView, error)
	Get(ctx context.Context, userID uint, attemptID string) (*entity.AttemptView, error)
	Vocabulary(ctx context.Context, userID uint, attemptID string, req entity.VocabularyRequest) (*entity.AttemptView, error)
	Answer(ctx context.Context, userID uint, attemptID string, req entity.AnswerRequest) (*entity.AnswerResponse, error)
	Continue(ctx context.Context, userID uint, attemptID string) (*entity.AttemptView, error)
	Abandon(ctx context.Context, userID uint, attemptID string) error
	SweepIdle(ctx context.Context) int
}

// NoRetries as PlayerConfig.MaxRetries turns adaptive retries off. A zero
// MaxRetries means player.DefaultMaxAdaptiveRetries.
const NoRetries = -1

type PlayerConfig struct {
	Log         *logrus.Logger
	Catalog     player.ContentProvider
	Store       player.ProgressStore
	Audio       mapper.AudioResolver
	MaxRetries  int
	IdleTimeout time.Duration
	Now         func() time.Time
}

type attempt struct {
	mu       sync.Mutex
	id       string
	userID   uint
	lessonID string
	player   *player.Player
	result   *entity.AttemptResult
	lastSeen time.Time
	closed   bool
}

type playerUsecase struct {
	cfg PlayerConfig

	mu       sync.Mutex
	attempts map[string]*attempt
}

func NewPlayerUsecase(cfg PlayerConfig) PlayerUsecase {
	if cfg.Audio == nil {
		cfg.Audio = mapper.NoAudio
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	switch {
	case cfg.MaxRetries == 0:
		cfg.MaxRetries = player.DefaultMaxAdaptiveRetries
	case cfg.MaxRetries < 0:
		cfg.MaxRetries = 0
	}
	return &playerUsecase{cfg: cfg, attempts: make(map[string]*attempt)}
}

func (u *playerUsecase) Start(ctx context.Context, userID uint, lessonID string) (*entity.AttemptView, error) {
	l, err := u.cfg.Catalog.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	log := u.cfg.Log.WithFields(logrus.Fields{"user_id": userID, "lesson_id": lessonID})

	var resume *player.Snapshot
	if userID != GuestID {
		resume, err = u.cfg.Store.LoadSnapshot(ctx, userID, lessonID)
		if err != nil {
			log.Warnf("Failed to load saved progress, starting fresh: %v", err)
			resume = nil
		}
		u.dropAttempts(userID, lessonID)
	}

	p := player.Start(l, resume,
		player.WithMaxAdaptiveRetries(u.cfg.MaxRetries),
		player.WithClock(u.cfg.Now),
	)
	for _, fix := range p.Corrections() {
		log.Warnf("Saved progress corrected: %v", fix)
	}

	a := &attempt{
		id:       uuid.NewString(),
		userID:   userID,
		lessonID: lessonID,
		player:   p,
		lastSeen: u.cfg.Now(),
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if p.Phase() == player.PhaseComplete {
		u.finish(ctx, a)
	}

	u.mu.Lock()
	u.attempts[a.id] = a
	u.mu.Unlock()

	log.WithFields(logrus.Fields{"attempt_id": a.id, "resumed": p.Resumed()}).Info("Attempt started")
	view := u.view(a)
	return &view, nil
}

func (u *playerUsecase) Get(_ context.Context, userID uint, attemptID string) (*entity.AttemptView, error) {
	a, err := u.acquire(userID, attemptID)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	view := u.view(a)
	return &view, nil
}

func (u *playerUsecase) Vocabulary(ctx context.Context, userID uint, attemptID string, req entity.VocabularyRequest) (*entity.AttemptView, error) {
	a, err := u.acquire(userID, attemptID)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	_, phase, err := a.player.AdvanceVocabulary(player.Direction(req.Direction))
	if err != nil {
		return nil, err
	}
	if phase == player.PhaseComplete {
		u.finish(ctx, a)
	}

	view := u.view(a)
	return &view, nil
}

func (u *playerUsecase) Answer(_ context.Context, userID uint, attemptID string, req entity.AnswerRequest) (*entity.AnswerResponse, error) {
	a, err := u.acquire(userID, attemptID)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	_, ex, err := a.player.CurrentExercise()
	if err != nil {
		return nil, err
	}
	verdict := ex.Grade(req.Answer)
	res, err := a.player.SubmitExerciseAnswer(verdict.Correct)
	if err != nil {
		return nil, err
	}

	return &entity.AnswerResponse{
		ExerciseIndex: res.ExerciseIndex,
		Correct:       res.Correct,
		Expected:      verdict.Expected,
		Score:         res.Score,
		RetryQueued:   res.RetryQueued,
	}, nil
}

// Continue moves past an answered exercise. Progress is saved after every
// step, and the result is recorded once the queue runs out.
func (u *playerUsecase) Continue(ctx context.Context, userID uint, attemptID string) (*entity.AttemptView, error) {
	a, err := u.acquire(userID, attemptID)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	phase, err := a.player.AdvancePointer()
	if err != nil {
		return nil, err
	}

	if phase == player.PhaseComplete {
		u.finish(ctx, a)
	} else {
		u.save(ctx, a)
	}

	view := u.view(a)
	return &view, nil
}

// Abandon closes the attempt. An answered exercise still counts, so the
// pointer moves past it before the snapshot is taken.
func (u *playerUsecase) Abandon(ctx context.Context, userID uint, attemptID string) error {
	a, err := u.acquire(userID, attemptID)
	if err != nil {
		return err
	}
	defer a.mu.Unlock()

	u.abandon(ctx, a)
	return nil
}

// SweepIdle abandons attempts nobody touched within the idle timeout and
// returns how many were closed.
func (u *playerUsecase) SweepIdle(ctx context.Context) int {
	if u.cfg.IdleTimeout <= 0 {
		return 0
	}
	cutoff := u.cfg.Now().Add(-u.cfg.IdleTimeout)

	u.mu.Lock()
	idle := make([]*attempt, 0)
	for _, a := range u.attempts {
		idle = append(idle, a)
	}
	u.mu.Unlock()

	swept := 0
	for _, a := range idle {
		a.mu.Lock()
		if !a.closed && a.lastSeen.Before(cutoff) {
			u.abandon(ctx, a)
			swept++
		}
		a.mu.Unlock()
	}

	if swept > 0 {
		u.cfg.Log.WithField("count", swept).Info("Idle attempts closed")
	}
	return swept
}

// acquire returns the attempt locked. Callers unlock it.
func (u *playerUsecase) acquire(userID uint, attemptID string) (*attempt, error) {
	u.mu.Lock()
	a, ok := u.attempts[attemptID]
	u.mu.Unlock()
	if !ok {
		return nil, ErrAttemptNotFound
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil, ErrAttemptNotFound
	}
	if a.userID != userID {
		a.mu.Unlock()
		return nil, ErrForbidden
	}
	a.lastSeen = u.cfg.Now()
	return a, nil
}

// abandon expects a.mu held.
func (u *playerUsecase) abandon(ctx context.Context, a *attempt) {
	if a.player.Answered() {
		if _, err := a.player.AdvancePointer(); err != nil {
			u.cfg.Log.WithField("attempt_id", a.id).Warnf("Failed to advance before closing: %v", err)
		}
	}

	switch a.player.Phase() {
	case player.PhaseComplete:
		if a.result == nil {
			u.finish(ctx, a)
		}
	case player.PhaseExercise:
		if snap := a.player.Snapshot(); snap.Resumable() {
			u.save(ctx, a)
		}
	}

	u.remove(a)
}

func (u *playerUsecase) remove(a *attempt) {
	a.closed = true
	u.mu.Lock()
	delete(u.attempts, a.id)
	u.mu.Unlock()
}

// dropAttempts closes older attempts of the same user on the same lesson
// without saving them, so the newest one owns the snapshot.
func (u *playerUsecase) dropAttempts(userID uint, lessonID string) {
	u.mu.Lock()
	stale := make([]*attempt, 0)
	for _, a := range u.attempts {
		if a.userID == userID && a.lessonID == lessonID {
			stale = append(stale, a)
		}
	}
	u.mu.Unlock()

	for _, a := range stale {
		a.mu.Lock()
		u.remove(a)
		a.mu.Unlock()
	}
}

// save expects a.mu held. Failures are logged and play goes on.
func (u *playerUsecase) save(ctx context.Context, a *attempt) {
	if a.userID == GuestID {
		return
	}
	if err := u.cfg.Store.SaveSnapshot(ctx, a.userID, a.lessonID, a.player.Snapshot()); err != nil {
		u.cfg.Log.WithFields(logrus.Fields{"attempt_id": a.id, "lesson_id": a.lessonID}).Errorf("Failed to save progress: %v", err)
	}
}

// finish expects a.mu held.
func (u *playerUsecase) finish(ctx context.Context, a *attempt) {
	res, err := a.player.Complete()
	if err != nil {
		u.cfg.Log.WithField("attempt_id", a.id).Warnf("Complete rejected: %v", err)
		return
	}
	a.result = &entity.AttemptResult{
		Score:          res.Score,
		Total:          res.Total,
		Percentage:     res.Percentage,
		ElapsedSeconds: res.ElapsedSeconds,
		Tier:           player.Tier(res.Percentage),
	}

	log := u.cfg.Log.WithFields(logrus.Fields{
		"attempt_id": a.id,
		"user_id":    a.userID,
		"lesson_id":  a.lessonID,
		"percentage": res.Percentage,
	})
	log.Info("Attempt completed")

	if a.userID == GuestID {
		return
	}
	if err := u.cfg.Store.CompleteAttempt(ctx, a.userID, a.lessonID, res.Score, res.Total, res.ElapsedSeconds); err != nil {
		log.Errorf("Failed to record result: %v", err)
	}
}

// view expects a.mu held.
func (u *playerUsecase) view(a *attempt) entity.AttemptView {
	p := a.player
	l := p.Lesson()
	state := p.State()

	view := entity.AttemptView{
		AttemptID:      a.id,
		LessonID:       a.lessonID,
		Phase:          string(state.Phase),
		Resumed:        p.Resumed(),
		VocabularySize: l.VocabularyCount(),
		TotalExercises: l.ExerciseCount(),
		Score:          state.Score,
		AnswersGiven:   len(state.AnswerHistory),
		Result:         a.result,
	}

	switch state.Phase {
	case player.PhaseVocabulary:
		if item, err := p.CurrentVocabulary(); err == nil {
			card := mapper.ToVocabularyCard(l.ID, state.VocabCursor, item, u.cfg.Audio)
			view.Vocabulary = &card
		}
	case player.PhaseExercise:
		if idx, ex, err := p.CurrentExercise(); err == nil {
			prompt := mapper.ShufflePrompt(ex.Prompt(), fmt.Sprintf("%s:%d", a.id, state.ExercisePointer))
			view.Exercise = &entity.ExerciseView{
				Index:       idx,
				Position:    state.ExercisePointer,
				QueueLength: len(state.ExerciseQueue),
				Answered:    p.Answered(),
				AudioURL:    u.exerciseAudio(l.ID, prompt),
				Prompt:      prompt,
			}
		}
	}

	return view
}

func (u *playerUsecase) exerciseAudio(lessonID string, p lesson.Prompt) string {
	switch {
	case p.Audio != "":
		return u.cfg.Audio(lessonID, p.Audio)
	case p.Sentence != "":
		return u.cfg.Audio(lessonID, p.Sentence)
	}
	return ""
}
