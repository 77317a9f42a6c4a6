package cli

import "github.com/alexanderramin/folio/internal/catalog"

// fetchError presents a catalog failure with the same wording the browser
// shows, keeping the underlying error for errors.Is/As.
type fetchError struct {
	err error
}

func (e *fetchError) Error() string { return catalog.Message(e.err) }
func (e *fetchError) Unwrap() error { return e.err }

func wrapFetch(err error) error {
	if err == nil {
		return nil
	}
	return &fetchError{err: err}
}
