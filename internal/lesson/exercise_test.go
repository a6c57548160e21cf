package lesson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choice(i int) Answer {
	return Answer{Choice: &i}
}

func TestDecodeExercise(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind Kind
	}{
		{"multiple choice", `{"type":"multiple_choice","question":"Cat?","options":["pisică","câine"],"correctAnswer":0}`, KindMultipleChoice},
		{"target language", `{"type":"multiple_choice_in_target_language","question":"pisică","options":["cat","dog"],"correctAnswer":0}`, KindMultipleChoiceTarget},
		{"legacy target language", `{"type":"multiple_choice_romanian","question":"pisică","options":["cat","dog"],"correctAnswer":0}`, KindMultipleChoiceTarget},
		{"match", `{"type":"match","pairs":[{"target":"apă","english":"water"}]}`, KindMatch},
		{"select image", `{"type":"select_image","question":"Which is a cat?","options":[{"image":"cat.png","label":"cat"}],"correctAnswer":0}`, KindSelectImage},
		{"listen", `{"type":"listen_and_select","audio":"mere","options":["apples","pears"],"correctAnswer":0}`, KindListenAndSelect},
		{"type answer", `{"type":"type_answer","question":"Hello?","answer":"salut"}`, KindTypeAnswer},
		{"translate", `{"type":"translate","sentence":"Bună dimineața","answer":"good morning"}`, KindTranslate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex, err := DecodeExercise([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, ex.Kind())
			assert.NoError(t, ex.Validate())
		})
	}
}

func TestDecodeExerciseUnknownType(t *testing.T) {
	_, err := DecodeExercise([]byte(`{"type":"crossword"}`))
	assert.ErrorIs(t, err, ErrUnknownExercise)
}

func TestLessonUnmarshal(t *testing.T) {
	raw := `{
		"id": "greetings",
		"title": "Greetings",
		"vocabulary": [{"target": "salut", "english": "hi", "example": {"target": "Salut, Ana!", "english": "Hi, Ana!"}}],
		"exercises": [
			{"type": "multiple_choice", "question": "Hi?", "options": ["salut", "pa"], "correctAnswer": 0},
			{"type": "type_answer", "question": "Bye?", "answer": "pa"}
		]
	}`

	var l Lesson
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	require.NoError(t, l.Validate())
	assert.Equal(t, 2, l.ExerciseCount())
	assert.Equal(t, 1, l.VocabularyCount())
	assert.Equal(t, DefaultOrder, l.SortOrder())
	assert.Equal(t, "Salut, Ana!", l.Vocabulary[0].Example.Target)
}

func TestLessonValidateRejectsBadChoice(t *testing.T) {
	l := Lesson{
		ID:        "x",
		Title:     "X",
		Exercises: Exercises{&MultipleChoice{Options: []string{"a"}, CorrectAnswer: 3}},
	}
	assert.ErrorIs(t, l.Validate(), ErrInvalidExercise)
}

func TestLessonUnmarshalRomanianKey(t *testing.T) {
	raw := `{
		"id": "greetings",
		"title": "Greetings",
		"vocabulary": [{"romanian": "Bună", "english": "Hello", "example": {"romanian": "Bună, Ana!", "english": "Hello, Ana!"}}],
		"exercises": [{"type": "match", "pairs": [{"romanian": "Bună", "english": "Hello"}, {"target": "Pa", "romanian": "ignored", "english": "Bye"}]}]
	}`

	var l Lesson
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	require.NoError(t, l.Validate())
	assert.Equal(t, "Bună", l.Vocabulary[0].Target)
	assert.Equal(t, "Bună, Ana!", l.Vocabulary[0].Example.Target)

	m, ok := l.Exercises[0].(*Match)
	require.True(t, ok)
	assert.Equal(t, []Pair{{"Bună", "Hello"}, {"Pa", "Bye"}}, m.Pairs)
}

func TestLessonValidateRejectsMissingTarget(t *testing.T) {
	var vocab Lesson
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","title":"X","vocabulary":[{"word":"Bună","english":"Hello"}]}`), &vocab))
	assert.Error(t, vocab.Validate())

	var pairs Lesson
	require.NoError(t, json.Unmarshal([]byte(`{"id":"y","title":"Y","exercises":[{"type":"match","pairs":[{"word":"Bună","english":"Hello"}]}]}`), &pairs))
	assert.ErrorIs(t, pairs.Validate(), ErrInvalidExercise)
}

func TestGradeChoice(t *testing.T) {
	mc := &MultipleChoice{Options: []string{"pisică", "câine"}, CorrectAnswer: 1}

	v := mc.Grade(choice(1))
	assert.True(t, v.Correct)
	assert.Equal(t, "câine", v.Expected)

	assert.False(t, mc.Grade(choice(0)).Correct)
	assert.False(t, mc.Grade(Answer{}).Correct)

	img := &SelectImage{Options: []ImageOption{{Image: "a.png", Label: "apple"}, {Image: "b.png", Label: "bread"}}, CorrectAnswer: 0}
	v = img.Grade(choice(0))
	assert.True(t, v.Correct)
	assert.Equal(t, "apple", v.Expected)
}

func TestGradeText(t *testing.T) {
	ta := &TypeAnswer{Answer: "Mulțumesc", AcceptAlternatives: []string{"multumesc"}}

	assert.True(t, ta.Grade(Answer{Text: "  mulțumesc "}).Correct)
	assert.True(t, ta.Grade(Answer{Text: "MULTUMESC"}).Correct)
	assert.False(t, ta.Grade(Answer{Text: "mersi"}).Correct)
	assert.False(t, ta.Grade(Answer{Text: "   "}).Correct)

	tr := &Translate{Sentence: "apă"}
	v := tr.Grade(Answer{Text: "Apă"})
	assert.True(t, v.Correct)
	assert.Equal(t, "apă", v.Expected)
}

func TestGradeMatch(t *testing.T) {
	m := &Match{Pairs: []Pair{{"apă", "water"}, {"pâine", "bread"}, {"lapte", "milk"}}}

	perfect := Answer{Matches: []MatchGuess{{0, 0}, {1, 1}, {2, 2}}}
	assert.True(t, m.Grade(perfect).Correct)

	twoMistakes := Answer{Matches: []MatchGuess{{0, 1}, {0, 0}, {1, 2}, {1, 1}, {2, 2}}}
	assert.True(t, m.Grade(twoMistakes).Correct)

	threeMistakes := Answer{Matches: []MatchGuess{{0, 1}, {0, 2}, {1, 2}, {0, 0}, {1, 1}, {2, 2}}}
	assert.False(t, m.Grade(threeMistakes).Correct)

	unfinished := Answer{Matches: []MatchGuess{{0, 0}, {1, 1}}}
	assert.False(t, m.Grade(unfinished).Correct)

	// guesses on an already matched pair are ignored
	repeated := Answer{Matches: []MatchGuess{{0, 0}, {0, 1}, {1, 1}, {2, 2}}}
	assert.True(t, m.Grade(repeated).Correct)
}

func TestPromptHasNoAnswerKey(t *testing.T) {
	ta := &TypeAnswer{Question: "Hello?", Answer: "salut"}
	raw, err := json.Marshal(ta.Prompt())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "salut")

	m := &Match{Pairs: []Pair{{"apă", "water"}}}
	p := m.Prompt()
	assert.Equal(t, "Match the pairs!", p.Instruction)
	assert.Equal(t, []MatchItem{{ID: 0, Text: "apă"}}, p.Left)
}

func TestAudioName(t *testing.T) {
	assert.Equal(t, "buna_ziua_", AudioName("Bună ziua!"))
	assert.Equal(t, "paine", AudioName("Pâine"))
	assert.Equal(t, "greetings/salut.mp3", AudioFile("greetings", "Salut"))
	assert.Len(t, AudioName("a very long sentence that keeps going and going past the limit"), maxAudioNameLen)
}
