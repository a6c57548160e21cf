package lesson

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Kind string

const (
	KindMultipleChoice       Kind = "multiple_choice"
	KindMultipleChoiceTarget Kind = "multiple_choice_in_target_language"
	KindMatch                Kind = "match"
	KindSelectImage          Kind = "select_image"
	KindListenAndSelect      Kind = "listen_and_select"
	KindTypeAnswer           Kind = "type_answer"
	KindTranslate            Kind = "translate"

	// older lesson files name the target-language variant after the language
	kindMultipleChoiceRomanian Kind = "multiple_choice_romanian"
)

// Exercise is one variant of the exercise union. Grade is pure.
type Exercise interface {
	Kind() Kind
	Grade(a Answer) Verdict
	Prompt() Prompt
	Validate() error
}

// Answer carries whatever the learner produced; each variant reads the part it needs.
type Answer struct {
	Choice  *int         `json:"choice,omitempty"`
	Text    string       `json:"text,omitempty"`
	Matches []MatchGuess `json:"matches,omitempty"`
}

// MatchGuess pairs a left item with a right item, both by pair index.
type MatchGuess struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type Verdict struct {
	Correct  bool
	Expected string
}

// Prompt is what the learner sees, without any answer key.
type Prompt struct {
	Type        Kind          `json:"type"`
	Question    string        `json:"question,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
	Sentence    string        `json:"sentence,omitempty"`
	Audio       string        `json:"audio,omitempty"`
	Options     []string      `json:"options,omitempty"`
	Images      []ImageOption `json:"images,omitempty"`
	Left        []MatchItem   `json:"left,omitempty"`
	Right       []MatchItem   `json:"right,omitempty"`
}

type MatchItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type ImageOption struct {
	Image string `json:"image"`
	Label string `json:"label"`
}

type Pair struct {
	Target  string `json:"target"`
	English string `json:"english"`
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	type plain Pair
	var raw struct {
		plain
		Romanian string `json:"romanian"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Pair(raw.plain)
	if p.Target == "" {
		p.Target = raw.Romanian
	}
	return nil
}

// DecodeExercise reads the "type" tag and decodes the matching variant.
func DecodeExercise(data []byte) (Exercise, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var ex Exercise
	switch head.Type {
	case KindMultipleChoice:
		ex = &MultipleChoice{}
	case KindMultipleChoiceTarget, kindMultipleChoiceRomanian:
		ex = &MultipleChoice{InTargetLanguage: true}
	case KindMatch:
		ex = &Match{}
	case KindSelectImage:
		ex = &SelectImage{}
	case KindListenAndSelect:
		ex = &ListenAndSelect{}
	case KindTypeAnswer:
		ex = &TypeAnswer{}
	case KindTranslate:
		ex = &Translate{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, head.Type)
	}

	if err := json.Unmarshal(data, ex); err != nil {
		return nil, fmt.Errorf("decode %s: %w", head.Type, err)
	}
	return ex, nil
}

// MultipleChoice covers both the English-prompt and target-language-prompt variants.
type MultipleChoice struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectAnswer    int      `json:"correctAnswer"`
	InTargetLanguage bool     `json:"-"`
}

func (e *MultipleChoice) Kind() Kind {
	if e.InTargetLanguage {
		return KindMultipleChoiceTarget
	}
	return KindMultipleChoice
}

func (e *MultipleChoice) Grade(a Answer) Verdict {
	return gradeChoice(a, e.CorrectAnswer, e.Options[e.CorrectAnswer])
}

func (e *MultipleChoice) Prompt() Prompt {
	return Prompt{Type: e.Kind(), Question: e.Question, Options: e.Options}
}

func (e *MultipleChoice) Validate() error {
	return validateChoice(len(e.Options), e.CorrectAnswer)
}

type Match struct {
	Instruction string `json:"instruction"`
	Pairs       []Pair `json:"pairs"`
}

func (e *Match) Kind() Kind { return KindMatch }

// Grade replays the guesses in order. Every pair must end up matched and the
// number of wrong guesses must stay below the number of pairs.
func (e *Match) Grade(a Answer) Verdict {
	matched := make(map[int]bool, len(e.Pairs))
	mistakes := 0
	for _, g := range a.Matches {
		if g.Left < 0 || g.Left >= len(e.Pairs) || g.Right < 0 || g.Right >= len(e.Pairs) {
			mistakes++
			continue
		}
		if matched[g.Left] || matched[g.Right] {
			continue
		}
		if g.Left == g.Right {
			matched[g.Left] = true
		} else {
			mistakes++
		}
	}

	return Verdict{
		Correct:  len(matched) == len(e.Pairs) && mistakes < len(e.Pairs),
		Expected: e.expected(),
	}
}

func (e *Match) expected() string {
	parts := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		parts = append(parts, p.Target+" = "+p.English)
	}
	return strings.Join(parts, ", ")
}

func (e *Match) Prompt() Prompt {
	instruction := e.Instruction
	if instruction == "" {
		instruction = "Match the pairs!"
	}
	left := make([]MatchItem, 0, len(e.Pairs))
	right := make([]MatchItem, 0, len(e.Pairs))
	for i, p := range e.Pairs {
		left = append(left, MatchItem{ID: i, Text: p.Target})
		right = append(right, MatchItem{ID: i, Text: p.English})
	}
	return Prompt{Type: KindMatch, Instruction: instruction, Left: left, Right: right}
}

func (e *Match) Validate() error {
	if len(e.Pairs) == 0 {
		return fmt.Errorf("%w: match needs at least one pair", ErrInvalidExercise)
	}
	for i, p := range e.Pairs {
		if strings.TrimSpace(p.Target) == "" || strings.TrimSpace(p.English) == "" {
			return fmt.Errorf("%w: match pair %d is incomplete", ErrInvalidExercise, i)
		}
	}
	return nil
}

type SelectImage struct {
	Question      string        `json:"question"`
	Options       []ImageOption `json:"options"`
	CorrectAnswer int           `json:"correctAnswer"`
}

func (e *SelectImage) Kind() Kind { return KindSelectImage }

func (e *SelectImage) Grade(a Answer) Verdict {
	return gradeChoice(a, e.CorrectAnswer, e.Options[e.CorrectAnswer].Label)
}

func (e *SelectImage) Prompt() Prompt {
	return Prompt{Type: KindSelectImage, Question: e.Question, Images: e.Options}
}

func (e *SelectImage) Validate() error {
	return validateChoice(len(e.Options), e.CorrectAnswer)
}

// ListenAndSelect plays Audio (the spoken text) and asks for the matching option.
type ListenAndSelect struct {
	Question      string   `json:"question"`
	Audio         string   `json:"audio"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

func (e *ListenAndSelect) Kind() Kind { return KindListenAndSelect }

func (e *ListenAndSelect) Grade(a Answer) Verdict {
	return gradeChoice(a, e.CorrectAnswer, e.Options[e.CorrectAnswer])
}

func (e *ListenAndSelect) Prompt() Prompt {
	return Prompt{Type: KindListenAndSelect, Question: e.Question, Audio: e.Audio, Options: e.Options}
}

func (e *ListenAndSelect) Validate() error {
	if strings.TrimSpace(e.Audio) == "" {
		return fmt.Errorf("%w: listen_and_select needs audio", ErrInvalidExercise)
	}
	return validateChoice(len(e.Options), e.CorrectAnswer)
}

type TypeAnswer struct {
	Question           string   `json:"question"`
	Answer             string   `json:"answer"`
	AcceptAlternatives []string `json:"acceptAlternatives"`
}

func (e *TypeAnswer) Kind() Kind { return KindTypeAnswer }

func (e *TypeAnswer) Grade(a Answer) Verdict {
	return gradeText(a.Text, e.Answer, e.AcceptAlternatives)
}

func (e *TypeAnswer) Prompt() Prompt {
	return Prompt{Type: KindTypeAnswer, Question: e.Question}
}

func (e *TypeAnswer) Validate() error {
	if strings.TrimSpace(e.Answer) == "" {
		return fmt.Errorf("%w: type_answer needs an answer", ErrInvalidExercise)
	}
	return nil
}

type Translate struct {
	Instruction        string   `json:"instruction"`
	Sentence           string   `json:"sentence"`
	Answer             string   `json:"answer"`
	AcceptAlternatives []string `json:"acceptAlternatives"`
}

func (e *Translate) Kind() Kind { return KindTranslate }

func (e *Translate) Grade(a Answer) Verdict {
	expected := e.Answer
	if expected == "" {
		expected = e.Sentence
	}
	return gradeText(a.Text, expected, e.AcceptAlternatives)
}

func (e *Translate) Prompt() Prompt {
	instruction := e.Instruction
	if instruction == "" {
		instruction = "Translate:"
	}
	return Prompt{Type: KindTranslate, Instruction: instruction, Sentence: e.Sentence}
}

func (e *Translate) Validate() error {
	if strings.TrimSpace(e.Sentence) == "" {
		return fmt.Errorf("%w: translate needs a sentence", ErrInvalidExercise)
	}
	return nil
}

func gradeChoice(a Answer, correct int, expected string) Verdict {
	return Verdict{
		Correct:  a.Choice != nil && *a.Choice == correct,
		Expected: expected,
	}
}

func gradeText(given, expected string, alternatives []string) Verdict {
	got := normalize(given)
	v := Verdict{Expected: expected}
	if got == "" {
		return v
	}
	for _, accepted := range append([]string{expected}, alternatives...) {
		if normalize(accepted) == got {
			v.Correct = true
			break
		}
	}
	return v
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateChoice(options, correct int) error {
	if options == 0 {
		return fmt.Errorf("%w: no options", ErrInvalidExercise)
	}
	if correct < 0 || correct >= options {
		return fmt.Errorf("%w: correct answer %d out of range", ErrInvalidExercise, correct)
	}
	return nil
}
