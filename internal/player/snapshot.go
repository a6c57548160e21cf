package player

import "sort"

// Snapshot is the persistable part of an attempt.
type Snapshot struct {
	ExercisePointer int         `json:"exercise_pointer"`
	AnswerHistory   []bool      `json:"answer_history"`
	ExerciseQueue   []int       `json:"exercise_queue"`
	RetryCounts     map[int]int `json:"retry_counts"`
	MasteredSet     []int       `json:"mastered_set"`
	Score           int         `json:"score"`
}

// Resumable reports whether the snapshot carries any exercise progress.
func (s *Snapshot) Resumable() bool {
	return s != nil && (s.ExercisePointer > 0 || len(s.AnswerHistory) > 0)
}

// reconcile fits a stored snapshot onto a lesson with n exercises.
func reconcile(s Snapshot, n, maxRetries int) (state AttemptState, fixes []OutOfRangeError) {
	state.RetryCounts = make(map[int]int)
	state.MasteredSet = make(map[int]struct{})
	state.AnswerHistory = append([]bool(nil), s.AnswerHistory...)

	pointer := s.ExercisePointer
	if pointer < 0 {
		fixes = append(fixes, OutOfRangeError{Field: "exercise_pointer", Index: pointer, Limit: len(s.ExerciseQueue) + 1})
		pointer = 0
	}

	queue := make([]int, 0, len(s.ExerciseQueue))
	shift := 0
	for pos, idx := range s.ExerciseQueue {
		if idx < 0 || idx >= n {
			fixes = append(fixes, OutOfRangeError{Field: "exercise_queue", Index: idx, Limit: n})
			if pos < pointer {
				shift++
			}
			continue
		}
		queue = append(queue, idx)
	}
	pointer -= shift

	switch {
	case len(queue) == 0:
		queue = freshQueue(n)
		pointer = 0
	case pointer > len(queue):
		fixes = append(fixes, OutOfRangeError{Field: "exercise_pointer", Index: pointer, Limit: len(queue) + 1})
		pointer = len(queue)
	}
	state.ExerciseQueue = queue
	state.ExercisePointer = pointer

	for _, idx := range s.MasteredSet {
		if idx < 0 || idx >= n {
			fixes = append(fixes, OutOfRangeError{Field: "mastered_set", Index: idx, Limit: n})
			continue
		}
		state.MasteredSet[idx] = struct{}{}
	}
	for idx, count := range s.RetryCounts {
		if idx < 0 || idx >= n {
			fixes = append(fixes, OutOfRangeError{Field: "retry_counts", Index: idx, Limit: n})
			continue
		}
		if count > maxRetries {
			count = maxRetries
		}
		if count > 0 {
			state.RetryCounts[idx] = count
		}
	}

	state.Score = len(state.MasteredSet)
	return state, fixes
}

func freshQueue(n int) []int {
	q := make([]int, n)
	for i := range q {
		q[i] = i
	}
	return q
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
