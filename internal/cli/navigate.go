package cli

import (
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/alexanderramin/folio/internal/subscription"
	tea "github.com/charmbracelet/bubbletea"
)

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// localeChangedMsg is broadcast to every view after the display language
// changes.
type localeChangedMsg struct {
	locale locale.Locale
}

// fetchResultMsg marks subscription results. The app model broadcasts them
// to every view; each view applies only tickets its own subscriptions issued.
type fetchResultMsg interface {
	fetchResult()
}

type listResultMsg struct{ res subscription.ListResult }
type categoriesResultMsg struct{ res subscription.CategoriesResult }
type detailResultMsg struct{ res subscription.DetailResult }

func (listResultMsg) fetchResult()       {}
func (categoriesResultMsg) fetchResult() {}
func (detailResultMsg) fetchResult()     {}

// prefsSavedMsg reports the outcome of a background preference write.
type prefsSavedMsg struct {
	err error
}
