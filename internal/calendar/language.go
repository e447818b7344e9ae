package calendar

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects which holiday name is shown
type Language int

const (
	Czech Language = iota
	English
)

func (l Language) String() string {
	if l == English {
		return "en"
	}
	return "cs"
}

// Tag returns the BCP 47 tag of the language
func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Czech
}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.Czech, // first entry is the fallback
	language.English,
})

// ParseLanguage reads a BCP 47 tag or locale string such as "cs", "cz",
// "en-GB" or "en_US.UTF-8". Tags that are neither Czech nor English fall
// back to Czech.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Czech, nil
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i] // drop POSIX codeset, e.g. "cs_CZ.UTF-8"
	}
	if strings.EqualFold(s, "cz") {
		return Czech, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Czech, fmt.Errorf("%w: invalid language %q: %v", ErrTypeMismatch, s, err)
	}

	_, index, _ := languageMatcher.Match(tag)
	if index == 1 {
		return English, nil
	}
	return Czech, nil
}
