package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/teatest"
	"github.com/alexanderramin/folio/internal/testutil"
)

// TestDriver wraps teatest.Driver with access to appModel internals the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// tuiApp wires an App against the in-process catalog so fetch Cmds return
// without network round trips.
func tuiApp(t *testing.T) (*App, *testutil.Catalog) {
	t.Helper()
	cat := testutil.NewCatalog(testutil.SampleCatalog())
	db := testutil.NewTestDB(t)
	return &App{
		Catalog:     cat,
		Prefs:       repository.NewSQLitePreferencesRepo(db),
		Recent:      repository.NewSQLiteRecentRepo(db),
		Locale:      locale.Russian,
		QueryLocale: locale.Russian,
		Now:         func() time.Time { return fixedNow },
	}, cat
}

// NewTestDriver builds the app model, sets the terminal size and drains
// Init, which loads the gallery synchronously.
func NewTestDriver(t *testing.T, app *App, category domain.Category) *TestDriver {
	t.Helper()
	m := newAppModel(app, category)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) gallery() *galleryView {
	return d.appModel().viewStack[0].(*galleryView)
}
