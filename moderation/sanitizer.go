//go:generate go run go.uber.org/mock/mockgen -source=sanitizer.go -destination=../mocks/mock_sanitizer.go -package=mocks
package moderation

import (
	"github.com/abadojack/whatlanggo"
)

// Sanitized is user text after censoring, tagged with its detected language.
type Sanitized struct {
	Content       string
	CensoredWords []string
	Language      string
}

type ISanitizer interface {
	Sanitize(text string) Sanitized
}

// Sanitizer censors text and detects its language in one pass.
type Sanitizer struct {
	censor Censor
}

func NewSanitizer(censor Censor) *Sanitizer {
	return &Sanitizer{censor: censor}
}

func (s *Sanitizer) Sanitize(text string) Sanitized {
	content, words := s.censor.Censor(text)
	return Sanitized{
		Content:       content,
		CensoredWords: words,
		Language:      DetectLanguage(text),
	}
}

// DetectLanguage returns the ISO 639-1 code of the text, empty when the guess is unreliable.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
