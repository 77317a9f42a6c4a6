package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/locale"
)

// ErrUnknownStatus is returned for status values outside the known set.
var ErrUnknownStatus = errors.New("unknown project status")

// Status is the completion state of a project.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

var statusLabels = map[Status]map[locale.Locale]string{
	StatusInProgress: {locale.Russian: "В работе", locale.English: "In Progress"},
	StatusCompleted:  {locale.Russian: "Завершен", locale.English: "Completed"},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for s in l.
func (s Status) Label(l locale.Locale) string {
	labels, ok := statusLabels[s]
	if !ok {
		return string(s)
	}
	if label, ok := labels[l]; ok {
		return label
	}
	return labels[locale.Default]
}

// WireValue is the value the catalog service stores and filters on.
func (s Status) WireValue() string {
	if s == "" {
		return ""
	}
	return s.Label(locale.Default)
}

func (s Status) String() string { return string(s) }

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.WireValue())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	parsed, ok := ParseStatus(raw)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	*s = parsed
	return nil
}

// ParseStatus accepts a canonical status or a label in any supported locale.
func ParseStatus(raw string) (Status, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if s := Status(strings.ToLower(raw)); s.Valid() {
		return s, true
	}
	for s, labels := range statusLabels {
		for _, label := range labels {
			if strings.EqualFold(label, raw) {
				return s, true
			}
		}
	}
	return "", false
}
