package reconcile

import "context"

// Source loads a Dataset from one place (a list file, an SQL dump, a table).
// Each source type implements how to read and fold its own format.
type Source interface {
	// Name returns the label used in reports (e.g. "admin-sehir").
	Name() string

	// Load reads the whole source and returns the folded dataset.
	// Implementations return source.ErrNotFound (wrapped) when the
	// underlying input does not exist.
	Load(ctx context.Context) (Dataset, error)
}
