package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/spf13/pflag"
)

// filterFlags are shared by every command that selects projects.
type filterFlags struct {
	category string
	status   string
	limit    int

	fs *pflag.FlagSet
}

func newFilterFlags() *filterFlags {
	f := &filterFlags{}
	f.fs = pflag.NewFlagSet("filter", pflag.ContinueOnError)
	f.fs.StringVarP(&f.category, "category", "c", "", "category id or label in any language (design, Дизайн, ...)")
	f.fs.StringVarP(&f.status, "status", "s", "", "in-progress or completed (labels accepted)")
	f.fs.IntVarP(&f.limit, "limit", "n", 0, "maximum number of projects; sent as given")
	return f
}

// FlagSet returns the flags for cobra's AddFlagSet.
func (f *filterFlags) FlagSet() *pflag.FlagSet { return f.fs }

// Filter builds the domain filter. An unset limit stays nil so the service
// applies its own default.
func (f *filterFlags) Filter() (domain.Filter, error) {
	out := domain.Filter{Category: domain.CategoryAll}
	if f.category != "" {
		c, ok := domain.ParseCategory(f.category)
		if !ok {
			return out, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, f.category)
		}
		out.Category = c
	}
	if f.status != "" {
		s, ok := domain.ParseStatus(f.status)
		if !ok {
			return out, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, f.status)
		}
		out.Status = s
	}
	if f.fs.Changed("limit") {
		n := f.limit
		out.Limit = &n
	}
	return out, nil
}
