package formatter

import (
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleTab and StyleTabActive render the category bar.
	StyleTab       = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
	StyleTabActive = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true).Padding(0, 1)
)

// StatusPill returns a colored status indicator in l.
func StatusPill(s domain.Status, l locale.Locale) string {
	switch s {
	case domain.StatusInProgress:
		return StyleYellow.Render("● " + s.Label(l))
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ " + s.Label(l))
	default:
		return StyleDim.Render(string(s))
	}
}

var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategoryDesign:      StylePurple,
	domain.CategoryDevelopment: StyleBlue,
	domain.CategoryStartups:    StyleYellow,
	domain.CategoryOther:       StyleFg,
}

// CategoryBadge renders the category label in its accent color.
func CategoryBadge(c domain.Category, l locale.Locale) string {
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleDim
	}
	return style.Render(c.Label(l))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// ErrorLine renders a failed fetch message.
func ErrorLine(l locale.Locale, message string) string {
	return StyleRed.Render(T(l, TextError) + ": " + message)
}
