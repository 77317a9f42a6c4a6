package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/subscription"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var projectKeys = struct {
	Reload key.Binding
	Scroll key.Binding
}{
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
}

// recentRecordedMsg reports a background history write.
type recentRecordedMsg struct {
	err error
}

// projectView shows one project by id.
type projectView struct {
	state  *SharedState
	id     int
	detail *subscription.ProjectDetail
	vp     viewport.Model
}

func newProjectView(state *SharedState, id int) *projectView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
	return &projectView{
		state:  state,
		id:     id,
		detail: subscription.NewProjectDetail(state.App.Catalog),
		vp:     vp,
	}
}

func (v *projectView) ID() ViewID { return ViewProject }

func (v *projectView) Title() string {
	if p := v.detail.State().Value; p != nil {
		return formatter.Truncate(p.LocalizedTitle(v.state.Locale), 32)
	}
	return fmt.Sprintf("#%d", v.id)
}

func (v *projectView) ShortHelp() []key.Binding {
	return []key.Binding{projectKeys.Scroll, projectKeys.Reload}
}

func (v *projectView) Init() tea.Cmd {
	return detailCmd(v.detail.SetID(v.id))
}

func (v *projectView) Close() {
	v.detail.Close()
}

func detailCmd(req *subscription.DetailRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return detailResultMsg{res: req.Do(context.Background())}
	}
}

func (v *projectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailResultMsg:
		if !v.detail.Apply(msg.res) {
			return v, nil
		}
		v.render()
		if p := v.detail.State().Value; p != nil {
			return v, v.recordCmd(*p)
		}
		return v, nil

	case localeChangedMsg:
		v.render()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.render()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, projectKeys.Reload) {
			return v, detailCmd(v.detail.Reload())
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

// render refreshes the viewport from the current state and locale.
func (v *projectView) render() {
	p := v.detail.State().Value
	if p == nil {
		return
	}
	width := v.state.Width - 4
	if width < 20 {
		width = 0
	}
	v.vp.SetContent("\n" + indent(formatter.FormatProjectDetail(*p, v.state.Locale, width), "  "))
}

func (v *projectView) recordCmd(p domain.Project) tea.Cmd {
	app, title := v.state.App, p.LocalizedTitle(v.state.Locale)
	if app.Recent == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		err := app.Recent.Record(ctx, domain.RecentProject{ProjectID: p.ID, Title: title, ViewedAt: app.now()})
		if err == nil {
			err = app.Recent.Prune(ctx, recentKeep)
		}
		return recentRecordedMsg{err: err}
	}
}

func (v *projectView) View() string {
	l := v.state.Locale
	st := v.detail.State()
	switch {
	case st.Failed():
		return "\n  " + formatter.ErrorLine(l, st.Message) + "\n  " + formatter.Dim(formatter.T(l, formatter.TextRetry))
	case st.Ready() && st.Value == nil:
		return "\n  " + formatter.Dim(formatter.T(l, formatter.TextNoProject))
	case st.Ready():
		return v.vp.View()
	default:
		return "\n  " + formatter.Dim(formatter.T(l, formatter.TextLoading))
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
