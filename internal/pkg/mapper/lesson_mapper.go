package mapper

import (
	"hash/fnv"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"

	dto "github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/lesson"
)

// AudioResolver returns the public URL of the clip for text, or "" when
// no clip was generated.
type AudioResolver func(lessonID, text string) string

// NewAudioResolver looks for clips under dir and serves them below urlPrefix.
func NewAudioResolver(dir, urlPrefix string) AudioResolver {
	return func(lessonID, text string) string {
		if dir == "" || text == "" {
			return ""
		}
		rel := lesson.AudioFile(lessonID, text)
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return ""
		}
		return path.Join(urlPrefix, rel)
	}
}

func NoAudio(string, string) string { return "" }

func ToLessonSummary(l *lesson.Lesson) dto.LessonSummary {
	return dto.LessonSummary{
		ID:              l.ID,
		Title:           l.Title,
		Description:     l.Description,
		Category:        l.Category,
		Level:           l.Level,
		Order:           l.Order,
		Icon:            l.Icon,
		ExerciseCount:   l.ExerciseCount(),
		VocabularyCount: l.VocabularyCount(),
	}
}

func ToLessonDetail(l *lesson.Lesson, audio AudioResolver) dto.LessonDetail {
	detail := dto.LessonDetail{
		LessonSummary: ToLessonSummary(l),
		Vocabulary:    make([]dto.VocabularyCard, 0, len(l.Vocabulary)),
		Exercises:     make([]lesson.Prompt, 0, len(l.Exercises)),
	}
	for i, item := range l.Vocabulary {
		detail.Vocabulary = append(detail.Vocabulary, ToVocabularyCard(l.ID, i, item, audio))
	}
	for _, ex := range l.Exercises {
		detail.Exercises = append(detail.Exercises, ex.Prompt())
	}
	return detail
}

func ToVocabularyCard(lessonID string, index int, item lesson.VocabularyItem, audio AudioResolver) dto.VocabularyCard {
	return dto.VocabularyCard{
		Index:         index,
		Target:        item.Target,
		English:       item.English,
		Pronunciation: item.Pronunciation,
		Example:       item.Example,
		AudioURL:      audio(lessonID, item.Target),
	}
}

// ShufflePrompt mixes both columns of a match prompt. The same key always
// gives the same order, so reloading a view does not reshuffle it.
func ShufflePrompt(p lesson.Prompt, key string) lesson.Prompt {
	if len(p.Left) < 2 {
		return p
	}

	h := fnv.New64a()
	h.Write([]byte(key))
	rnd := rand.New(rand.NewPCG(h.Sum64(), uint64(len(p.Left))))

	left := append([]lesson.MatchItem(nil), p.Left...)
	right := append([]lesson.MatchItem(nil), p.Right...)
	rnd.Shuffle(len(left), func(i, j int) { left[i], left[j] = left[j], left[i] })
	rnd.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })

	p.Left = left
	p.Right = right
	return p
}
