package content

import (
	"context"

	"github.com/goliatone/go-sitenav/content"
	"github.com/google/uuid"
)

// Store is the read contract over the scoped content collections. Every query
// is scoped by the node key and the active language; a key matching nothing
// (including a dangling key whose node was deleted) yields an empty result,
// never an error.
type Store interface {
	// List returns the records of the given type scoped to key, newest
	// first. The type must be one of the closed enum; callers resolve
	// unknown types to the static strategy before querying.
	List(ctx context.Context, typ content.Type, key, language string) ([]content.Record, error)

	// IncrementNewsViews bumps the view counter for a news record. The
	// dispatch router invokes this fire-and-forget; failures are logged
	// and discarded there.
	IncrementNewsViews(ctx context.Context, id uuid.UUID) error
}

// Writer is the seeding contract used by fixtures and the markdown importer.
// Production records are written by the admin collaborator only.
type Writer interface {
	Put(ctx context.Context, records ...content.Record) error
}
