package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TreeRepository supplies the navigation tree. The core only reads; node
// lifecycle is owned by the admin collaborator.
type TreeRepository interface {
	// Tree returns the ordered root nodes with children attached. The
	// language selects collaborator-side title localisation where the
	// backing store supports it; node title maps always carry every
	// language regardless.
	Tree(ctx context.Context, language string) ([]*pages.PageNode, error)
}

// TreeWriter is the seeding contract used by fixtures and the markdown
// importer. Production trees are written by the admin collaborator only.
type TreeWriter interface {
	Replace(ctx context.Context, roots []*pages.PageNode) error
}

// NewNodeRepository constructs the go-repository-bun repository for page nodes.
func NewNodeRepository(db *bun.DB) repository.Repository[*pages.PageNode] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*pages.PageNode]{
		NewRecord: func() *pages.PageNode { return &pages.PageNode{} },
		GetID: func(n *pages.PageNode) uuid.UUID {
			return n.ID
		},
		SetID: func(n *pages.PageNode, id uuid.UUID) {
			n.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(n *pages.PageNode) string {
			return n.Slug
		},
	})
}
