package cli

import (
	"encoding/json"
	"io"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// spin shows a spinner on stderr while a fetch runs on a terminal.
func (a *App) spin(cmd *cobra.Command) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), formatter.T(a.Locale, formatter.TextLoading))
}
