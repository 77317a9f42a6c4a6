package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/subscription"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type galleryKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Status key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Reload key.Binding
	Recent key.Binding
}

var galleryKeys = galleryKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "category")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left")),
	Status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Recent: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "recent")),
}

// statusCycle is the order the status filter steps through; "" is any.
var statusCycle = []domain.Status{"", domain.StatusInProgress, domain.StatusCompleted}

// galleryView is the home screen: a category bar over the filtered list.
type galleryView struct {
	state *SharedState
	list  *subscription.ProjectList
	dir   *subscription.Categories

	status  domain.Status
	cursor  int
	spinner spinner.Model
	ticking bool
}

func newGalleryView(state *SharedState) *galleryView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &galleryView{
		state:   state,
		list:    subscription.NewProjectList(state.App.Catalog, state.App.QueryLocale),
		dir:     subscription.NewCategories(state.App.Catalog),
		spinner: sp,
	}
}

func (v *galleryView) ID() ViewID    { return ViewGallery }
func (v *galleryView) Title() string { return formatter.T(v.state.Locale, formatter.TextProjects) }

func (v *galleryView) ShortHelp() []key.Binding {
	return []key.Binding{galleryKeys.Next, galleryKeys.Status, galleryKeys.Open, galleryKeys.Reload, galleryKeys.Recent}
}

func (v *galleryView) Init() tea.Cmd {
	return v.refetch()
}

func (v *galleryView) Close() {
	v.list.Close()
	v.dir.Close()
}

// Resume restarts the spinner. Ticks sent while another view was on top
// never reached the gallery, so the running flag is stale.
func (v *galleryView) Resume() tea.Cmd {
	v.ticking = false
	return v.tick()
}

func (v *galleryView) query() subscription.ListQuery {
	return subscription.ListQuery{
		Filter: domain.Filter{Category: v.state.Category, Status: v.status},
		Locale: v.state.Locale,
	}
}

// refetch moves both subscriptions to the current parameters. Subscriptions
// whose parameters did not change issue nothing.
func (v *galleryView) refetch() tea.Cmd {
	return tea.Batch(
		listCmd(v.list.SetQuery(v.query())),
		categoriesCmd(v.dir.SetLocale(v.state.Locale)),
		v.tick(),
	)
}

func (v *galleryView) reload() tea.Cmd {
	return tea.Batch(listCmd(v.list.Reload()), categoriesCmd(v.dir.Reload()), v.tick())
}

// tick starts the spinner unless it is already running or nothing loads.
func (v *galleryView) tick() tea.Cmd {
	if v.ticking || !v.list.State().Loading() {
		return nil
	}
	v.ticking = true
	return v.spinner.Tick
}

func listCmd(req *subscription.ListRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return listResultMsg{res: req.Do(context.Background())}
	}
}

func categoriesCmd(req *subscription.CategoriesRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return categoriesResultMsg{res: req.Do(context.Background())}
	}
}

func (v *galleryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listResultMsg:
		if v.list.Apply(msg.res) {
			v.clampCursor()
		}
		return v, nil

	case categoriesResultMsg:
		v.dir.Apply(msg.res)
		return v, nil

	case localeChangedMsg:
		return v, v.refetch()

	case spinner.TickMsg:
		if !v.list.State().Loading() {
			v.ticking = false
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *galleryView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, galleryKeys.Next):
		return v, v.stepCategory(1)
	case key.Matches(msg, galleryKeys.Prev):
		return v, v.stepCategory(-1)
	case key.Matches(msg, galleryKeys.Status):
		v.status = statusCycle[(indexOf(statusCycle, v.status)+1)%len(statusCycle)]
		v.cursor = 0
		return v, v.refetch()
	case key.Matches(msg, galleryKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, galleryKeys.Down):
		if v.cursor < len(v.projects())-1 {
			v.cursor++
		}
	case key.Matches(msg, galleryKeys.Open):
		if ps := v.projects(); v.cursor < len(ps) {
			return v, pushView(newProjectView(v.state, ps[v.cursor].ID))
		}
	case key.Matches(msg, galleryKeys.Reload):
		return v, v.reload()
	case key.Matches(msg, galleryKeys.Recent):
		return v, pushView(newRecentView(v.state))
	}
	return v, nil
}

func (v *galleryView) stepCategory(delta int) tea.Cmd {
	cats := domain.FilterCategories
	cur := v.state.Category
	if cur.IsAll() {
		cur = domain.CategoryAll
	}
	i := indexOf(cats, cur)
	v.state.Category = cats[(i+delta+len(cats))%len(cats)]
	v.cursor = 0
	return v.refetch()
}

func indexOf[T comparable](xs []T, x T) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return 0
}

func (v *galleryView) projects() []domain.Project {
	st := v.list.State()
	if !st.Ready() {
		return nil
	}
	return st.Value.Projects
}

func (v *galleryView) clampCursor() {
	if n := len(v.projects()); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

func (v *galleryView) View() string {
	l := v.state.Locale
	var b strings.Builder
	b.WriteString("\n")

	var counts []domain.CategoryCount
	if st := v.dir.State(); st.Ready() {
		counts = st.Value
	}
	b.WriteString("  " + formatter.FormatCategoryBar(domain.FilterCategories, counts, v.state.Category, l) + "\n")

	statusLabel := formatter.T(l, formatter.TextAnyStatus)
	if v.status != "" {
		statusLabel = v.status.Label(l)
	}
	b.WriteString("  " + formatter.Dim(formatter.T(l, formatter.TextStatus)+": "+statusLabel) + "\n\n")

	st := v.list.State()
	switch {
	case st.Loading() || st.Phase == subscription.PhaseIdle:
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim(formatter.T(l, formatter.TextLoading)) + "\n")
	case st.Failed():
		b.WriteString("  " + formatter.ErrorLine(l, st.Message) + "\n")
		b.WriteString("  " + formatter.Dim(formatter.T(l, formatter.TextRetry)) + "\n")
	case len(st.Value.Projects) == 0:
		b.WriteString("  " + formatter.Dim(formatter.T(l, formatter.TextEmpty)) + "\n")
	default:
		b.WriteString(v.renderRows(st.Value))
	}
	return b.String()
}

func (v *galleryView) renderRows(page subscription.ListPage) string {
	l := v.state.Locale
	// Rows used by the category bar, status line and footer.
	height := max(v.state.ContentHeight()-6, 3)
	start, end := visibleRange(len(page.Projects), v.cursor, height)

	var b strings.Builder
	for i := start; i < end; i++ {
		p := page.Projects[i]
		cursor := "  "
		title := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			cursor,
			title.Render(formatter.PadRight(formatter.Truncate(p.LocalizedTitle(l), 28), 28)),
			formatter.PadRight(formatter.CategoryBadge(p.Category, l), 12),
			formatter.PadRight(formatter.StatusPill(p.Status, l), 14),
			formatter.Dim(p.Year),
		))
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%s: %d", formatter.T(l, formatter.TextTotal), page.Total)) + "\n")
	return b.String()
}

// visibleRange returns the window of n rows of the given height that keeps
// cursor in view.
func visibleRange(n, cursor, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}
