package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the UI dictionary.
type Language string

// Supported languages.
const (
	English Language = "en"
	Hindi   Language = "hi"
	Kannada Language = "kn"
)

// Languages lists the supported languages in menu order.
var Languages = []Language{English, Hindi, Kannada}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi, language.Kannada})

// ParseLanguage accepts a code or BCP 47 tag such as "hi" or "kn-IN".
func ParseLanguage(code string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return Languages[idx], nil
}

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Name returns the language's own name for itself.
func (l Language) Name() string {
	return lookup(l, keyLanguageName)
}

func (l Language) String() string { return string(l) }
