package entity

import "github.com/evandrarf/lingua-be/internal/lesson"

// Lesson list item, no content
type LessonSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Level           string `json:"level"`
	Order           int    `json:"order"`
	Icon            string `json:"icon"`
	ExerciseCount   int    `json:"exercise_count"`
	VocabularyCount int    `json:"vocabulary_count"`
}

// Full lesson for display, answer keys removed
type LessonDetail struct {
	LessonSummary
	Vocabulary []VocabularyCard `json:"vocabulary"`
	Exercises  []lesson.Prompt  `json:"exercises"`
}

type VocabularyCard struct {
	Index         int             `json:"index"`
	Target        string          `json:"target"`
	English       string          `json:"english"`
	Pronunciation string          `json:"pronunciation,omitempty"`
	Example       *lesson.Example `json:"example,omitempty"`
	AudioURL      string          `json:"audio_url,omitempty"`
}
