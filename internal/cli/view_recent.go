package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type recentLoadedMsg struct {
	items []domain.RecentProject
	err   error
}

// recentView lists locally remembered projects. It reads only the local
// store and never contacts the catalog.
type recentView struct {
	state   *SharedState
	items   []domain.RecentProject
	cursor  int
	loading bool
	err     error
}

func newRecentView(state *SharedState) *recentView {
	return &recentView{state: state, loading: true}
}

func (v *recentView) ID() ViewID    { return ViewRecent }
func (v *recentView) Title() string { return formatter.T(v.state.Locale, formatter.TextRecent) }

func (v *recentView) ShortHelp() []key.Binding {
	return []key.Binding{galleryKeys.Open}
}

func (v *recentView) Init() tea.Cmd {
	repo := v.state.App.Recent
	return func() tea.Msg {
		if repo == nil {
			return recentLoadedMsg{}
		}
		items, err := repo.List(context.Background(), 0)
		return recentLoadedMsg{items: items, err: err}
	}
}

func (v *recentView) Resume() tea.Cmd {
	return v.Init()
}

func (v *recentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		v.loading = false
		v.items, v.err = msg.items, msg.err
		if v.cursor >= len(v.items) {
			v.cursor = max(len(v.items)-1, 0)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, galleryKeys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, galleryKeys.Down):
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case key.Matches(msg, galleryKeys.Open):
			if v.cursor < len(v.items) {
				return v, pushView(newProjectView(v.state, v.items[v.cursor].ProjectID))
			}
		}
	}
	return v, nil
}

func (v *recentView) View() string {
	l := v.state.Locale
	switch {
	case v.loading:
		return "\n  " + formatter.Dim(formatter.T(l, formatter.TextLoading))
	case v.err != nil:
		return "\n  " + formatter.ErrorLine(l, v.err.Error())
	case len(v.items) == 0:
		return "\n  " + formatter.Dim(formatter.T(l, formatter.TextNoRecent))
	}

	now := v.state.App.now()
	var b strings.Builder
	b.WriteString("\n")
	for i, it := range v.items {
		cursor := "  "
		title := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			title.Render(formatter.PadRight(formatter.Truncate(it.Title, 32), 32)),
			formatter.Dim(formatter.HumanTimestampFrom(it.ViewedAt, now)),
		))
	}
	return b.String()
}
