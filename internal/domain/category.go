package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/locale"
)

// ErrUnknownCategory is returned when a category value is not part of the
// closed category set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a canonical, locale-independent category identifier.
type Category string

const (
	// CategoryAll is the synthetic "match all" sentinel. No project carries it.
	CategoryAll         Category = "all"
	CategoryDesign      Category = "design"
	CategoryDevelopment Category = "development"
	CategoryStartups    Category = "startups"
	CategoryOther       Category = "other"
)

// Categories is the closed set of real categories in display order.
var Categories = []Category{
	CategoryDesign,
	CategoryDevelopment,
	CategoryStartups,
	CategoryOther,
}

// FilterCategories is the sentinel followed by the real categories, the
// order the filter bar shows them in.
var FilterCategories = append([]Category{CategoryAll}, Categories...)

var categoryLabels = map[Category]map[locale.Locale]string{
	CategoryAll:         {locale.Russian: "Все", locale.English: "All"},
	CategoryDesign:      {locale.Russian: "Дизайн", locale.English: "Design"},
	CategoryDevelopment: {locale.Russian: "Разработка", locale.English: "Development"},
	CategoryStartups:    {locale.Russian: "Стартапы", locale.English: "Startups"},
	CategoryOther:       {locale.Russian: "Другое", locale.English: "Other"},
}

// labelIndex maps locale -> label -> category. Built once, read-only after.
var labelIndex = buildLabelIndex()

func buildLabelIndex() map[locale.Locale]map[string]Category {
	idx := make(map[locale.Locale]map[string]Category, len(locale.Supported))
	for _, l := range locale.Supported {
		idx[l] = make(map[string]Category, len(categoryLabels))
	}
	for c, labels := range categoryLabels {
		for l, label := range labels {
			if _, dup := idx[l][label]; dup {
				panic(fmt.Sprintf("duplicate category label %q for locale %s", label, l))
			}
			idx[l][label] = c
		}
	}
	return idx
}

// Valid reports whether c is a real category or the sentinel.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// IsAll reports whether c matches everything. The zero value counts as the
// sentinel so an unset filter means "no category restriction".
func (c Category) IsAll() bool {
	return c == CategoryAll || c == ""
}

// Label returns the display label for c in l. Unknown categories render as
// the sentinel label.
func (c Category) Label(l locale.Locale) string {
	if c == "" {
		c = CategoryAll
	}
	labels, ok := categoryLabels[c]
	if !ok {
		labels = categoryLabels[CategoryAll]
	}
	if label, ok := labels[l]; ok {
		return label
	}
	return labels[locale.Default]
}

func (c Category) String() string { return string(c) }

// MarshalJSON writes the category the way the catalog service stores it:
// as its label in the default locale.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Label(locale.Default))
}

// UnmarshalJSON accepts a canonical identifier or a label in any supported
// locale. Anything else is rejected.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	parsed, ok := ParseCategory(s)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	*c = parsed
	return nil
}

// CategoryFromLabel looks up the category whose label in l is exactly label.
func CategoryFromLabel(label string, l locale.Locale) (Category, bool) {
	c, ok := labelIndex[l][label]
	return c, ok
}

// ParseCategory resolves free user input: a canonical identifier or a label
// in any supported locale, compared case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if c := Category(strings.ToLower(s)); c.Valid() {
		return c, true
	}
	for _, l := range locale.Supported {
		for label, c := range labelIndex[l] {
			if strings.EqualFold(label, s) {
				return c, true
			}
		}
	}
	return "", false
}

// IsAllLabel reports whether label is the sentinel label in any locale.
func IsAllLabel(label string) bool {
	for _, l := range locale.Supported {
		if categoryLabels[CategoryAll][l] == label {
			return true
		}
	}
	return false
}

// TranslateLabel maps a category label from one locale to another. A label
// that is not known in from resolves to the sentinel label of to, so the
// result is always a usable filter value.
func TranslateLabel(label string, from, to locale.Locale) string {
	c, ok := CategoryFromLabel(label, from)
	if !ok {
		return CategoryAll.Label(to)
	}
	return c.Label(to)
}

// CategoryCount is one entry of the filter bar: a category, its label in the
// locale it was fetched for, and how many projects it holds.
type CategoryCount struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
}
