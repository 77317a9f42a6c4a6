package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type globalKeyMap struct {
	Quit   key.Binding
	Back   key.Binding
	Locale key.Binding
}

var globalKeys = globalKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Locale: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "ru/en")),
}

// appModel is the root bubbletea Model for the browser. It owns the view
// stack and the display language.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App, category domain.Category) appModel {
	if !category.Valid() {
		category = domain.CategoryAll
	}
	state := &SharedState{
		App:      app,
		Locale:   app.Locale,
		Category: category,
	}
	return appModel{
		state:     state,
		viewStack: []View{newGalleryView(state)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// pop removes the top view, tearing down its subscriptions.
func (m *appModel) pop() tea.Cmd {
	if len(m.viewStack) <= 1 {
		return nil
	}
	top := m.activeView()
	if c, ok := top.(closer); ok {
		c.Close()
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
	if r, ok := m.activeView().(resumer); ok {
		return r.Resume()
	}
	return nil
}

// close tears down every view. The model is unusable afterwards.
func (m *appModel) close() {
	for _, v := range m.viewStack {
		if c, ok := v.(closer); ok {
			c.Close()
		}
	}
}

// broadcast forwards msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case fetchResultMsg, localeChangedMsg:
		return m, m.broadcast(msg)

	case prefsSavedMsg:
		m.setLastError(msg.err)
		return m, nil

	case recentRecordedMsg:
		m.setLastError(msg.err)
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m *appModel) setLastError(err error) {
	m.state.LastError = ""
	if err != nil {
		m.state.LastError = err.Error()
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.quitting = true
		m.close()
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Back):
		return m, m.pop()

	case key.Matches(msg, globalKeys.Locale):
		m.state.Locale = m.state.Locale.Toggle()
		next := m.state.Locale
		return m, tea.Batch(
			m.broadcast(localeChangedMsg{locale: next}),
			m.savePrefsCmd(),
		)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m *appModel) savePrefsCmd() tea.Cmd {
	app, l, c := m.state.App, m.state.Locale, m.state.Category
	if app.Prefs == nil {
		return nil
	}
	return func() tea.Msg {
		return prefsSavedMsg{err: savePreferences(context.Background(), app, l, &c)}
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the line-diff renderer leaves no stale rows.
	if m.state.Height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("folio")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(strings.ToUpper(string(m.state.Locale))) + formatter.Dim("]")
	if m.state.LastError != "" {
		header += "  " + formatter.StyleRed.Render(m.state.LastError)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	for _, b := range []key.Binding{globalKeys.Locale, globalKeys.Quit} {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
