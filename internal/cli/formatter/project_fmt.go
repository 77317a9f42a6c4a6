package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/charmbracelet/lipgloss"
)

const titleWidth = 32

// FormatProjectList renders a project table inside a bordered box, followed
// by the service-reported total.
func FormatProjectList(projects []domain.Project, total int, l locale.Locale) string {
	if len(projects) == 0 {
		return RenderBox(T(l, TextProjects), Dim(T(l, TextEmpty)))
	}

	headers := []string{"ID", strings.ToUpper(T(l, TextProjects)), strings.ToUpper(T(l, TextCategory)),
		strings.ToUpper(T(l, TextStatus)), strings.ToUpper(T(l, TextYear))}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Dim(strconv.Itoa(p.ID)),
			Bold(Truncate(p.LocalizedTitle(l), titleWidth)),
			CategoryBadge(p.Category, l),
			StatusPill(p.Status, l),
			p.Year,
		})
	}
	footer := Dim(fmt.Sprintf("%s: %d", T(l, TextTotal), total))
	return RenderBox(T(l, TextProjects), RenderTable(headers, rows)+"\n"+footer)
}

// FormatProjectDetail renders one project as a card. width bounds the
// description; zero means unbounded.
func FormatProjectDetail(p domain.Project, l locale.Locale, width int) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.LocalizedTitle(l)) + "\n")
	b.WriteString(CategoryBadge(p.Category, l) + Dim("  ·  ") + StatusPill(p.Status, l) + "\n\n")

	field := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(PadRight(T(l, key), 10)), StyleFg.Render(value)))
	}
	field(TextYear, p.Year)
	field(TextClient, p.Client)
	field(TextRole, p.Role)

	if desc := p.LocalizedDescription(l); desc != "" {
		style := StyleFg
		if width > 0 {
			style = style.Width(width)
		}
		b.WriteString("\n" + style.Render(desc) + "\n")
	}

	images := p.Images
	if p.Image != "" {
		images = append([]string{p.Image}, images...)
	}
	if len(images) > 0 {
		b.WriteString("\n" + StyleDim.Render(T(l, TextImages)) + "\n")
		for _, img := range images {
			b.WriteString("  " + StyleBlue.Render(img) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatCategories renders the directory with a share bar against the
// sentinel's count.
func FormatCategories(counts []domain.CategoryCount, l locale.Locale) string {
	total := 0
	for _, c := range counts {
		if c.Category.IsAll() {
			total = c.Count
		}
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		label := CategoryBadge(c.Category, l)
		if c.Category.IsAll() {
			label = Bold(c.Label)
		}
		rows = append(rows, []string{Dim(string(c.Category)), label, RenderShare(c.Count, total, 16)})
	}
	headers := []string{"ID", strings.ToUpper(T(l, TextCategory)), strings.ToUpper(T(l, TextProjects))}
	return RenderBox(T(l, TextCategories), RenderTable(headers, rows))
}

// FormatCategoryBar renders the gallery tab strip with active highlighted.
// Counts are shown when the directory is known.
func FormatCategoryBar(cats []domain.Category, counts []domain.CategoryCount, active domain.Category, l locale.Locale) string {
	byCat := make(map[domain.Category]int, len(counts))
	for _, c := range counts {
		byCat[c.Category] = c.Count
	}
	tabs := make([]string, 0, len(cats))
	for _, c := range cats {
		label := c.Label(l)
		if n, ok := byCat[c]; ok {
			label += fmt.Sprintf(" %d", n)
		}
		style := StyleTab
		if c == active || (c.IsAll() && active.IsAll()) {
			style = StyleTabActive
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// FormatRecent renders the local viewing history.
func FormatRecent(items []domain.RecentProject, l locale.Locale, now time.Time) string {
	if len(items) == 0 {
		return RenderBox(T(l, TextRecent), Dim(T(l, TextNoRecent)))
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Dim(strconv.Itoa(it.ProjectID)),
			Bold(Truncate(it.Title, titleWidth)),
			Dim(HumanTimestampFrom(it.ViewedAt, now)),
		})
	}
	headers := []string{"ID", strings.ToUpper(T(l, TextProjects)), strings.ToUpper(T(l, TextViewed))}
	return RenderBox(T(l, TextRecent), RenderTable(headers, rows))
}
