package entity

import "github.com/evandrarf/lingua-be/internal/lesson"

type VocabularyRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next previous"`
}

type AnswerRequest struct {
	Answer lesson.Answer `json:"answer"`
}

type AttemptView struct {
	AttemptID      string          `json:"attempt_id"`
	LessonID       string          `json:"lesson_id"`
	Phase          string          `json:"phase"`
	Resumed        bool            `json:"resumed"`
	Vocabulary     *VocabularyCard `json:"vocabulary,omitempty"`
	VocabularySize int             `json:"vocabulary_size"`
	Exercise       *ExerciseView   `json:"exercise,omitempty"`
	TotalExercises int             `json:"total_exercises"`
	Score          int             `json:"score"`
	AnswersGiven   int             `json:"answers_given"`
	Result         *AttemptResult  `json:"result,omitempty"`
}

type ExerciseView struct {
	Index       int           `json:"index"`    // position in the lesson
	Position    int           `json:"position"` // position in the queue
	QueueLength int           `json:"queue_length"`
	Answered    bool          `json:"answered"`
	AudioURL    string        `json:"audio_url,omitempty"`
	Prompt      lesson.Prompt `json:"prompt"`
}

type AnswerResponse struct {
	ExerciseIndex int    `json:"exercise_index"`
	Correct       bool   `json:"correct"`
	Expected      string `json:"expected"`
	Score         int    `json:"score"`
	RetryQueued   bool   `json:"retry_queued"`
}

type AttemptResult struct {
	Score          int    `json:"score"`
	Total          int    `json:"total"`
	Percentage     int    `json:"percentage"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Tier           string `json:"tier"`
}
