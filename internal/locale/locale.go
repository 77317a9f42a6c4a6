// Package locale resolves the UI language for the portfolio client.
//
// Only two languages are supported. Russian is the default because it is the
// language the catalog service stores its records in.
package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language, identified by its two-letter code.
type Locale string

const (
	Russian Locale = "ru"
	English Locale = "en"
)

// Default is used when nothing else resolves a locale.
const Default = Russian

// Supported lists every locale in display order.
var Supported = []Locale{Russian, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Russian,
	language.English,
})

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == Russian || l == English
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == English {
		return Russian
	}
	return English
}

// Name returns the locale's name in its own language.
func (l Locale) Name() string {
	switch l {
	case English:
		return "English"
	case Russian:
		return "Русский"
	default:
		return string(l)
	}
}

func (l Locale) String() string { return string(l) }

// Parse resolves a user or environment supplied language string such as
// "en", "en-US", or "ru_RU.UTF-8" to a supported locale.
func Parse(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("empty locale")
	}
	// POSIX locale names carry an encoding and modifier suffix.
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")

	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing locale %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	return Supported[idx], nil
}

// Detect returns the locale named by the process environment, checked in
// POSIX precedence order. ok is false when no variable names a supported
// language.
func Detect() (Locale, bool) {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if l, err := Parse(v); err == nil {
			return l, true
		}
	}
	return "", false
}

// Resolve picks the first candidate that parses to a supported locale,
// falling back to Default.
func Resolve(candidates ...string) Locale {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if l, err := Parse(c); err == nil {
			return l
		}
	}
	return Default
}
