package lesson

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxAudioNameLen = 50

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]`)
	underscore = regexp.MustCompile(`_+`)
)

// AudioName turns spoken text into the file stem used for pre-generated audio,
// e.g. "Bună ziua!" becomes "buna_ziua_".
func AudioName(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}

	name := nonAlnum.ReplaceAllString(folded, "_")
	name = underscore.ReplaceAllString(name, "_")
	if len(name) > maxAudioNameLen {
		name = name[:maxAudioNameLen]
	}
	return name
}

// AudioFile is the path of the clip for text, relative to the audio root.
func AudioFile(lessonID, text string) string {
	return path.Join(lessonID, AudioName(text)+".mp3")
}
