// Package player drives one learner through one lesson: vocabulary cards,
// then an exercise queue that re-asks missed exercises a bounded number of
// times, then a final score. It performs no I/O and is not safe for
// concurrent use.
package player

import (
	"math"
	"time"

	"github.com/evandrarf/lingua-be/internal/lesson"
)

const DefaultMaxAdaptiveRetries = 2

type Phase string

const (
	PhaseVocabulary Phase = "vocabulary"
	PhaseExercise   Phase = "exercise"
	PhaseComplete   Phase = "complete"
)

type Direction string

const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

type AttemptState struct {
	Phase           Phase
	VocabCursor     int
	ExerciseQueue   []int
	ExercisePointer int
	RetryCounts     map[int]int
	MasteredSet     map[int]struct{}
	AnswerHistory   []bool
	Score           int
	StartedAt       time.Time
}

type SubmitResult struct {
	ExerciseIndex int
	Correct       bool
	Score         int
	RetryQueued   bool
}

type Result struct {
	Score          int `json:"score"`
	Total          int `json:"total"`
	Percentage     int `json:"percentage"`
	ElapsedSeconds int `json:"elapsed_seconds"`
}

type Option func(*Player)

func WithMaxAdaptiveRetries(n int) Option {
	return func(p *Player) {
		if n >= 0 {
			p.maxRetries = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Player) {
		if now != nil {
			p.now = now
		}
	}
}

type Player struct {
	lesson      *lesson.Lesson
	maxRetries  int
	now         func() time.Time
	state       AttemptState
	answered    bool
	completed   bool
	resumed     bool
	corrections []OutOfRangeError
}

// Start begins an attempt. A resumable snapshot replaces the exercise fields
// and skips the vocabulary phase.
func Start(l *lesson.Lesson, resume *Snapshot, opts ...Option) *Player {
	p := &Player{
		lesson:     l,
		maxRetries: DefaultMaxAdaptiveRetries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	n := l.ExerciseCount()
	p.state = AttemptState{
		ExerciseQueue: freshQueue(n),
		RetryCounts:   make(map[int]int),
		MasteredSet:   make(map[int]struct{}),
		StartedAt:     p.now(),
	}

	switch {
	case resume.Resumable():
		state, fixes := reconcile(*resume, n, p.maxRetries)
		state.StartedAt = p.state.StartedAt
		p.state = state
		p.corrections = fixes
		p.resumed = true
		p.enterExercise()
	case l.VocabularyCount() > 0:
		p.state.Phase = PhaseVocabulary
	default:
		p.enterExercise()
	}

	return p
}

func (p *Player) enterExercise() {
	p.state.Phase = PhaseExercise
	if p.state.ExercisePointer >= len(p.state.ExerciseQueue) {
		p.state.Phase = PhaseComplete
	}
}

func (p *Player) Lesson() *lesson.Lesson { return p.lesson }

func (p *Player) Phase() Phase { return p.state.Phase }

func (p *Player) Resumed() bool { return p.resumed }

// Answered reports whether the current queue entry has been answered.
func (p *Player) Answered() bool { return p.answered }

// Corrections lists what was dropped or clamped while resuming.
func (p *Player) Corrections() []OutOfRangeError { return p.corrections }

// State returns a copy of the attempt state.
func (p *Player) State() AttemptState {
	s := p.state
	s.ExerciseQueue = append([]int(nil), p.state.ExerciseQueue...)
	s.AnswerHistory = append([]bool(nil), p.state.AnswerHistory...)
	s.RetryCounts = make(map[int]int, len(p.state.RetryCounts))
	for k, v := range p.state.RetryCounts {
		s.RetryCounts[k] = v
	}
	s.MasteredSet = make(map[int]struct{}, len(p.state.MasteredSet))
	for k := range p.state.MasteredSet {
		s.MasteredSet[k] = struct{}{}
	}
	return s
}

func (p *Player) CurrentVocabulary() (lesson.VocabularyItem, error) {
	if p.state.Phase != PhaseVocabulary {
		return lesson.VocabularyItem{}, &InvalidStateError{Op: "current vocabulary", Phase: p.state.Phase}
	}
	return p.lesson.Vocabulary[p.state.VocabCursor], nil
}

// CurrentExercise returns the exercise under the pointer and its lesson index.
func (p *Player) CurrentExercise() (int, lesson.Exercise, error) {
	if p.state.Phase != PhaseExercise {
		return 0, nil, &InvalidStateError{Op: "current exercise", Phase: p.state.Phase}
	}
	idx := p.state.ExerciseQueue[p.state.ExercisePointer]
	return idx, p.lesson.Exercises[idx], nil
}

func (p *Player) AdvanceVocabulary(d Direction) (int, Phase, error) {
	if p.state.Phase != PhaseVocabulary {
		return p.state.VocabCursor, p.state.Phase, &InvalidStateError{Op: "advance vocabulary", Phase: p.state.Phase}
	}

	switch d {
	case Previous:
		if p.state.VocabCursor > 0 {
			p.state.VocabCursor--
		}
	case Next:
		if p.state.VocabCursor < p.lesson.VocabularyCount()-1 {
			p.state.VocabCursor++
			break
		}
		p.state.ExercisePointer = 0
		p.enterExercise()
	default:
		return p.state.VocabCursor, p.state.Phase, &InvalidStateError{Op: "advance vocabulary", Phase: p.state.Phase, Reason: "unknown direction " + string(d)}
	}

	return p.state.VocabCursor, p.state.Phase, nil
}

// SubmitExerciseAnswer records the outcome for the current queue entry. A
// missed exercise that was never mastered goes back to the end of the queue
// until it has been requeued maxRetries times. Mastery is never revoked.
func (p *Player) SubmitExerciseAnswer(isCorrect bool) (SubmitResult, error) {
	if p.state.Phase != PhaseExercise {
		return SubmitResult{}, &InvalidStateError{Op: "submit answer", Phase: p.state.Phase}
	}
	if p.answered {
		return SubmitResult{}, &InvalidStateError{Op: "submit answer", Phase: p.state.Phase, Reason: "already answered"}
	}

	idx := p.state.ExerciseQueue[p.state.ExercisePointer]
	p.answered = true
	p.state.AnswerHistory = append(p.state.AnswerHistory, isCorrect)

	res := SubmitResult{ExerciseIndex: idx, Correct: isCorrect}
	_, mastered := p.state.MasteredSet[idx]

	switch {
	case isCorrect && !mastered:
		p.state.MasteredSet[idx] = struct{}{}
		p.state.Score = len(p.state.MasteredSet)
	case !isCorrect && !mastered && p.state.RetryCounts[idx] < p.maxRetries:
		p.state.RetryCounts[idx]++
		p.state.ExerciseQueue = append(p.state.ExerciseQueue, idx)
		res.RetryQueued = true
	}

	res.Score = p.state.Score
	return res, nil
}

// AdvancePointer moves past an answered entry. The attempt completes when the
// pointer reaches the end of the (possibly grown) queue.
func (p *Player) AdvancePointer() (Phase, error) {
	if p.state.Phase != PhaseExercise {
		return p.state.Phase, &InvalidStateError{Op: "advance pointer", Phase: p.state.Phase}
	}
	if !p.answered {
		return p.state.Phase, &InvalidStateError{Op: "advance pointer", Phase: p.state.Phase, Reason: "current exercise not answered"}
	}

	p.answered = false
	p.state.ExercisePointer++
	if p.state.ExercisePointer >= len(p.state.ExerciseQueue) {
		p.state.Phase = PhaseComplete
	}
	return p.state.Phase, nil
}

func (p *Player) Snapshot() Snapshot {
	retries := make(map[int]int, len(p.state.RetryCounts))
	for k, v := range p.state.RetryCounts {
		retries[k] = v
	}
	return Snapshot{
		ExercisePointer: p.state.ExercisePointer,
		AnswerHistory:   append([]bool{}, p.state.AnswerHistory...),
		ExerciseQueue:   append([]int{}, p.state.ExerciseQueue...),
		RetryCounts:     retries,
		MasteredSet:     sortedKeys(p.state.MasteredSet),
		Score:           p.state.Score,
	}
}

// Complete reports the final result once. The percentage is taken over the
// lesson's exercise count, not the queue length.
func (p *Player) Complete() (Result, error) {
	if p.state.Phase != PhaseComplete {
		return Result{}, &InvalidStateError{Op: "complete", Phase: p.state.Phase}
	}
	if p.completed {
		return Result{}, &InvalidStateError{Op: "complete", Phase: p.state.Phase, Reason: "result already reported"}
	}
	p.completed = true

	n := p.lesson.ExerciseCount()
	percentage := 100
	if n > 0 {
		percentage = int(math.Round(100 * float64(p.state.Score) / float64(n)))
	}

	elapsed := p.now().Sub(p.state.StartedAt).Round(time.Second)
	return Result{
		Score:          p.state.Score,
		Total:          n,
		Percentage:     percentage,
		ElapsedSeconds: int(elapsed / time.Second),
	}, nil
}

// Tier buckets a percentage the way the result screen does.
func Tier(percentage int) string {
	switch {
	case percentage >= 90:
		return "excellent"
	case percentage >= 70:
		return "good"
	case percentage >= 50:
		return "ok"
	default:
		return "try_again"
	}
}
