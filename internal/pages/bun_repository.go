package pages

import (
	"context"
	"fmt"
	"sort"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTreeRepository loads the page tree from a relational store. Nodes are
// persisted flat; the nested form is assembled on read, ordered by position.
type BunTreeRepository struct {
	db   *bun.DB
	repo repository.Repository[*pages.PageNode]
}

func NewBunTreeRepository(db *bun.DB) *BunTreeRepository {
	return NewBunTreeRepositoryWithCache(db, nil, nil)
}

// NewBunTreeRepositoryWithCache constructs a TreeRepository backed by bun with
// optional read caching.
func NewBunTreeRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunTreeRepository {
	base := NewNodeRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunTreeRepository{db: db, repo: base}
}

// Tree lists every node and assembles the nested tree. Ordering follows the
// persisted position within each sibling group, which fixes the traversal
// order resolution depends on.
func (r *BunTreeRepository) Tree(ctx context.Context, _ string) ([]*pages.PageNode, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "tree")
	}
	return assembleTree(records), nil
}

// Replace rewrites the stored tree inside one transaction. Used by seeding
// paths only; production writes belong to the admin collaborator.
func (r *BunTreeRepository) Replace(ctx context.Context, roots []*pages.PageNode) error {
	if r.db == nil {
		return fmt.Errorf("tree repository: database not configured")
	}

	flat := flattenForStorage(roots)
	now := time.Now().UTC()
	for _, node := range flat {
		if node.ID == uuid.Nil {
			node.ID = uuid.New()
		}
		if node.CreatedAt.IsZero() {
			node.CreatedAt = now
		}
		if node.UpdatedAt.IsZero() {
			node.UpdatedAt = now
		}
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*pages.PageNode)(nil)).
			Where("1 = 1").
			Exec(ctx); err != nil {
			return fmt.Errorf("delete page nodes: %w", err)
		}
		if len(flat) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&flat).Exec(ctx); err != nil {
			return fmt.Errorf("insert page nodes: %w", err)
		}
		return nil
	})
}

// assembleTree nests a flat node list by parent reference. Children keep
// their persisted position order; roots are nodes without a parent.
func assembleTree(records []*pages.PageNode) []*pages.PageNode {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*pages.PageNode, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		copied := record.Clone()
		copied.Children = nil
		byID[copied.ID] = copied
	}

	var roots []*pages.PageNode
	for _, record := range records {
		if record == nil {
			continue
		}
		node := byID[record.ID]
		if record.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[*record.ParentID]
		if !ok {
			// Orphaned rows surface as roots rather than disappearing.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortByPosition(roots)
	for _, node := range byID {
		sortByPosition(node.Children)
	}
	return roots
}

func sortByPosition(nodes []*pages.PageNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Position < nodes[j].Position
	})
}

func flattenForStorage(roots []*pages.PageNode) []*pages.PageNode {
	var flat []*pages.PageNode
	var walk func(parent *uuid.UUID, nodes []*pages.PageNode)
	walk = func(parent *uuid.UUID, nodes []*pages.PageNode) {
		for position, node := range nodes {
			if node == nil {
				continue
			}
			copied := node.Clone()
			children := copied.Children
			copied.Children = nil
			copied.Position = position
			copied.ParentID = parent
			if copied.ID == uuid.Nil {
				copied.ID = uuid.New()
			}
			flat = append(flat, copied)
			id := copied.ID
			walk(&id, children)
		}
	}
	walk(nil, roots)
	return flat
}

func mapRepositoryError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return pages.ErrTreeUnavailable
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
