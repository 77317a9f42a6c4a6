package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewGallery ViewID = iota
	ViewProject
	ViewRecent
)

// View is implemented by every screen on the view stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment
}

// closer is implemented by views that own subscriptions. Close is called
// when the view leaves the stack.
type closer interface {
	Close()
}

// resumer is implemented by views that need a Cmd when they become the top
// of the stack again.
type resumer interface {
	Resume() tea.Cmd
}
