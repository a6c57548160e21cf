package player

import (
	"testing"
	"time"

	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLesson(vocab, exercises int) *lesson.Lesson {
	l := &lesson.Lesson{ID: "test", Title: "Test"}
	for i := 0; i < vocab; i++ {
		l.Vocabulary = append(l.Vocabulary, lesson.VocabularyItem{Target: "cuvânt", English: "word"})
	}
	for i := 0; i < exercises; i++ {
		l.Exercises = append(l.Exercises, &lesson.TypeAnswer{Question: "?", Answer: "da"})
	}
	return l
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// answer submits and advances, failing the test on any state error.
func answer(t *testing.T, p *Player, correct bool) SubmitResult {
	t.Helper()
	res, err := p.SubmitExerciseAnswer(correct)
	require.NoError(t, err)
	_, err = p.AdvancePointer()
	require.NoError(t, err)
	return res
}

func TestStartPhases(t *testing.T) {
	assert.Equal(t, PhaseVocabulary, Start(newLesson(2, 3), nil).Phase())
	assert.Equal(t, PhaseExercise, Start(newLesson(0, 3), nil).Phase())
	assert.Equal(t, PhaseComplete, Start(newLesson(0, 0), nil).Phase())

	p := Start(newLesson(0, 3), nil)
	s := p.State()
	assert.Equal(t, []int{0, 1, 2}, s.ExerciseQueue)
	assert.Zero(t, s.ExercisePointer)
	assert.Zero(t, s.Score)
	assert.Empty(t, s.AnswerHistory)
}

func TestVocabularyNavigation(t *testing.T) {
	p := Start(newLesson(2, 1), nil)

	cursor, phase, err := p.AdvanceVocabulary(Previous)
	require.NoError(t, err)
	assert.Equal(t, 0, cursor)
	assert.Equal(t, PhaseVocabulary, phase)

	cursor, _, err = p.AdvanceVocabulary(Next)
	require.NoError(t, err)
	assert.Equal(t, 1, cursor)

	cursor, _, err = p.AdvanceVocabulary(Previous)
	require.NoError(t, err)
	assert.Equal(t, 0, cursor)

	_, _, _ = p.AdvanceVocabulary(Next)
	_, phase, err = p.AdvanceVocabulary(Next)
	require.NoError(t, err)
	assert.Equal(t, PhaseExercise, phase)
	assert.Zero(t, p.State().ExercisePointer)

	_, _, err = p.AdvanceVocabulary(Next)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestVocabularyOnlyLessonCompletesAtFullScore(t *testing.T) {
	p := Start(newLesson(1, 0), nil)

	_, phase, err := p.AdvanceVocabulary(Next)
	require.NoError(t, err)
	assert.Equal(t, PhaseComplete, phase)

	res, err := p.Complete()
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 0, Total: 0, Percentage: 100}, res)
}

func TestSubmitOutsideExercisePhase(t *testing.T) {
	p := Start(newLesson(1, 1), nil)

	_, err := p.SubmitExerciseAnswer(true)
	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, PhaseVocabulary, stateErr.Phase)

	_, err = p.AdvancePointer()
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = p.Complete()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	p := Start(newLesson(0, 2), nil)

	_, err := p.SubmitExerciseAnswer(false)
	require.NoError(t, err)

	_, err = p.SubmitExerciseAnswer(true)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, p.State().AnswerHistory, 1)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	p := Start(newLesson(0, 2), nil)

	_, err := p.AdvancePointer()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, p.State().ExercisePointer)
}

func TestRetryThenMastery(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	p := Start(newLesson(0, 3), nil, WithClock(clock.now))

	res := answer(t, p, false)
	assert.Equal(t, 0, res.ExerciseIndex)
	assert.True(t, res.RetryQueued)

	answer(t, p, true)
	answer(t, p, true)

	idx, _, err := p.CurrentExercise()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.True(t, answer(t, p, false).RetryQueued)

	res = answer(t, p, true)
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, PhaseComplete, p.Phase())

	clock.t = clock.t.Add(95*time.Second + 400*time.Millisecond)
	result, err := p.Complete()
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 3, Total: 3, Percentage: 100, ElapsedSeconds: 95}, result)
	assert.Len(t, p.State().AnswerHistory, 5)

	_, err = p.Complete()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRetryBoundIsExhausted(t *testing.T) {
	p := Start(newLesson(0, 3), nil, WithMaxAdaptiveRetries(2))

	submissions := 0
	for p.Phase() == PhaseExercise {
		answer(t, p, false)
		submissions++
	}

	s := p.State()
	assert.Equal(t, 9, submissions)
	assert.Len(t, s.ExerciseQueue, 9)
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 2}, s.RetryCounts)

	result, err := p.Complete()
	require.NoError(t, err)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.Percentage)
}

func TestSubmissionCountIsBounded(t *testing.T) {
	const n, r = 4, 2

	patterns := map[string]func(i int) bool{
		"all correct":   func(int) bool { return true },
		"all wrong":     func(int) bool { return false },
		"alternating":   func(i int) bool { return i%2 == 0 },
		"every third":   func(i int) bool { return i%3 == 2 },
		"late recovery": func(i int) bool { return i >= 6 },
	}

	for name, correctAt := range patterns {
		t.Run(name, func(t *testing.T) {
			p := Start(newLesson(0, n), nil, WithMaxAdaptiveRetries(r))
			calls := 0
			for p.Phase() == PhaseExercise {
				answer(t, p, correctAt(calls))
				calls++
			}

			assert.GreaterOrEqual(t, calls, n)
			assert.LessOrEqual(t, calls, n*(1+r))

			s := p.State()
			assert.Equal(t, len(s.MasteredSet), s.Score)
			assert.LessOrEqual(t, s.Score, n)
			for _, c := range s.RetryCounts {
				assert.LessOrEqual(t, c, r)
			}
		})
	}
}

func TestMasteryIsNeverRevoked(t *testing.T) {
	snap := &Snapshot{
		ExercisePointer: 1,
		AnswerHistory:   []bool{true},
		ExerciseQueue:   []int{0, 0, 1},
		MasteredSet:     []int{0},
		Score:           1,
	}
	p := Start(newLesson(0, 2), snap)

	res := answer(t, p, false)
	assert.Equal(t, 0, res.ExerciseIndex)
	assert.False(t, res.RetryQueued)
	assert.Equal(t, 1, res.Score)

	s := p.State()
	assert.Len(t, s.ExerciseQueue, 3)
	assert.Zero(t, s.RetryCounts[0])
	assert.Contains(t, s.MasteredSet, 0)
}

func TestZeroRetries(t *testing.T) {
	p := Start(newLesson(0, 2), nil, WithMaxAdaptiveRetries(0))
	answer(t, p, false)
	answer(t, p, false)
	assert.Equal(t, PhaseComplete, p.Phase())
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := newLesson(2, 3)
	p := Start(l, nil)
	_, _, _ = p.AdvanceVocabulary(Next)
	_, _, _ = p.AdvanceVocabulary(Next)
	answer(t, p, false)
	answer(t, p, true)

	snap := p.Snapshot()
	assert.Equal(t, Snapshot{
		ExercisePointer: 2,
		AnswerHistory:   []bool{false, true},
		ExerciseQueue:   []int{0, 1, 2, 0},
		RetryCounts:     map[int]int{0: 1},
		MasteredSet:     []int{1},
		Score:           1,
	}, snap)

	resumed := Start(l, &snap)
	assert.True(t, resumed.Resumed())
	assert.Equal(t, PhaseExercise, resumed.Phase())
	assert.Empty(t, resumed.Corrections())

	s := resumed.State()
	assert.Equal(t, 2, s.ExercisePointer)
	assert.Equal(t, []int{0, 1, 2, 0}, s.ExerciseQueue)
	assert.Equal(t, 1, s.Score)

	answer(t, resumed, true)
	answer(t, resumed, true)
	result, err := resumed.Complete()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 100, result.Percentage)
}

func TestResumeDropsDeletedExercises(t *testing.T) {
	snap := &Snapshot{
		ExercisePointer: 2,
		AnswerHistory:   []bool{true, false},
		ExerciseQueue:   []int{0, 5, 1, 7, 1},
		RetryCounts:     map[int]int{1: 9, 7: 1},
		MasteredSet:     []int{0, 5},
		Score:           2,
	}
	p := Start(newLesson(0, 2), snap)

	s := p.State()
	assert.Equal(t, []int{0, 1, 1}, s.ExerciseQueue)
	assert.Equal(t, 1, s.ExercisePointer)
	assert.Equal(t, map[int]int{1: DefaultMaxAdaptiveRetries}, s.RetryCounts)
	assert.Equal(t, 1, s.Score)
	assert.Len(t, p.Corrections(), 4)
	assert.Equal(t, PhaseExercise, p.Phase())
}

func TestResumeWithOnlyDeletedExercisesFallsBackToFreshQueue(t *testing.T) {
	snap := &Snapshot{
		ExercisePointer: 1,
		AnswerHistory:   []bool{false},
		ExerciseQueue:   []int{3, 4},
		Score:           4,
	}
	p := Start(newLesson(1, 2), snap)

	s := p.State()
	assert.Equal(t, []int{0, 1}, s.ExerciseQueue)
	assert.Zero(t, s.ExercisePointer)
	assert.Zero(t, s.Score)
	assert.Equal(t, PhaseExercise, p.Phase())
	assert.NotEmpty(t, p.Corrections())
}

func TestResumeAtEndOfQueueCompletes(t *testing.T) {
	snap := &Snapshot{
		ExercisePointer: 2,
		AnswerHistory:   []bool{true, true},
		ExerciseQueue:   []int{0, 1},
		MasteredSet:     []int{0, 1},
	}
	p := Start(newLesson(0, 2), snap)
	assert.Equal(t, PhaseComplete, p.Phase())

	result, err := p.Complete()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
}

func TestEmptySnapshotIsIgnored(t *testing.T) {
	p := Start(newLesson(1, 2), &Snapshot{})
	assert.False(t, p.Resumed())
	assert.Equal(t, PhaseVocabulary, p.Phase())
}

func TestPercentageRounding(t *testing.T) {
	p := Start(newLesson(0, 3), nil, WithMaxAdaptiveRetries(0))
	answer(t, p, true)
	answer(t, p, true)
	answer(t, p, false)

	result, err := p.Complete()
	require.NoError(t, err)
	assert.Equal(t, 67, result.Percentage)
}

func TestTier(t *testing.T) {
	assert.Equal(t, "excellent", Tier(90))
	assert.Equal(t, "good", Tier(70))
	assert.Equal(t, "ok", Tier(50))
	assert.Equal(t, "try_again", Tier(49))
}
