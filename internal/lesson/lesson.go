package lesson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("lesson not found")
	ErrUnknownExercise = errors.New("unknown exercise type")
	ErrInvalidExercise = errors.New("invalid exercise")
)

// DefaultOrder is used for lessons that do not declare an order.
const DefaultOrder = 999

// Lesson is immutable once loaded. Exercises are identified by their index.
type Lesson struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Level       string           `json:"level"`
	Order       int              `json:"order"`
	Icon        string           `json:"icon"`
	Vocabulary  []VocabularyItem `json:"vocabulary"`
	Exercises   Exercises        `json:"exercises"`
}

type VocabularyItem struct {
	Target        string   `json:"target"`
	English       string   `json:"english"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Example       *Example `json:"example,omitempty"`
}

type Example struct {
	Target  string `json:"target"`
	English string `json:"english"`
}

// Older lesson files name the target word "romanian". It is read as
// "target" when the latter is missing.

func (v *VocabularyItem) UnmarshalJSON(data []byte) error {
	type plain VocabularyItem
	var raw struct {
		plain
		Romanian string `json:"romanian"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = VocabularyItem(raw.plain)
	if v.Target == "" {
		v.Target = raw.Romanian
	}
	return nil
}

func (e *Example) UnmarshalJSON(data []byte) error {
	type plain Example
	var raw struct {
		plain
		Romanian string `json:"romanian"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Example(raw.plain)
	if e.Target == "" {
		e.Target = raw.Romanian
	}
	return nil
}

func (l *Lesson) ExerciseCount() int {
	return len(l.Exercises)
}

func (l *Lesson) VocabularyCount() int {
	return len(l.Vocabulary)
}

// SortOrder returns Order, or DefaultOrder when the lesson did not set one.
func (l *Lesson) SortOrder() int {
	if l.Order == 0 {
		return DefaultOrder
	}
	return l.Order
}

func (l *Lesson) Validate() error {
	if l.ID == "" {
		return errors.New("lesson id is required")
	}
	if l.Title == "" {
		return fmt.Errorf("lesson %s: title is required", l.ID)
	}
	for i, item := range l.Vocabulary {
		if strings.TrimSpace(item.Target) == "" {
			return fmt.Errorf("lesson %s: vocabulary %d: target is required", l.ID, i)
		}
	}
	for i, ex := range l.Exercises {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("lesson %s: exercise %d: %w", l.ID, i, err)
		}
	}
	return nil
}

// Exercises decodes the "type" tag of every element into its variant.
type Exercises []Exercise

func (e *Exercises) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(Exercises, 0, len(raws))
	for i, raw := range raws {
		ex, err := DecodeExercise(raw)
		if err != nil {
			return fmt.Errorf("exercise %d: %w", i, err)
		}
		out = append(out, ex)
	}

	*e = out
	return nil
}
