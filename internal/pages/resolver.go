package pages

import (
	"context"
	"fmt"

	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// RootPath bypasses tree resolution entirely: the home experience is a
// static, non-content-driven view that is not part of the tree.
const RootPath = "/"

// Resolution is the outcome of resolving a request path against the tree.
type Resolution struct {
	// Node is the matched navigation node; nil when Root is true.
	Node *pages.PageNode
	// Root marks the special-cased "/" bypass.
	Root bool
}

// Resolver turns a full request path into a navigation node. One tree fetch
// backs each Resolve call; the fetched tree is flattened into a slug index so
// the lookup itself is a single map access while first-match-in-pre-order
// semantics are preserved for duplicate slugs.
type Resolver struct {
	repo   TreeRepository
	logger interfaces.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger injects the resolver logger.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver constructs a Resolver over the supplied tree repository.
func NewResolver(repo TreeRepository, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		repo:   repo,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(resolver)
		}
	}
	return resolver
}

// Resolve matches fullPath against the tree by exact slug equality. The path
// must arrive exactly as the router observed it: leading slash, no query
// string, no normalisation. A miss returns a NodeNotFoundError value; only
// tree-fetch failures are genuine errors.
func (r *Resolver) Resolve(ctx context.Context, fullPath, language string) (Resolution, error) {
	if fullPath == RootPath {
		return Resolution{Root: true}, nil
	}
	if r == nil || r.repo == nil {
		return Resolution{}, pages.ErrTreeUnavailable
	}

	roots, err := r.repo.Tree(ctx, language)
	if err != nil {
		r.logger.Error("pages.resolve.tree_fetch_failed", "path", fullPath, "error", err)
		return Resolution{}, fmt.Errorf("fetch page tree: %w", err)
	}

	node, ok := NewSlugIndex(roots).Lookup(fullPath)
	if !ok {
		r.logger.Debug("pages.resolve.miss", "path", fullPath)
		return Resolution{}, &pages.NodeNotFoundError{Path: fullPath}
	}
	return Resolution{Node: node}, nil
}

// SlugIndex is a flattened view of the tree keyed by slug. The flatten walk
// is depth-first pre-order, children before the next sibling, so when two
// nodes share a slug the index keeps the one a recursive search would have
// found first. Admins are trusted not to create collisions; this preserves
// the observed behaviour if they do.
type SlugIndex struct {
	bySlug map[string]*pages.PageNode
	size   int
}

// NewSlugIndex flattens the given roots into an index.
func NewSlugIndex(roots []*pages.PageNode) *SlugIndex {
	index := &SlugIndex{bySlug: make(map[string]*pages.PageNode)}
	var walk func(nodes []*pages.PageNode)
	walk = func(nodes []*pages.PageNode) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			index.size++
			if _, exists := index.bySlug[node.Slug]; !exists {
				index.bySlug[node.Slug] = node
			}
			walk(node.Children)
		}
	}
	walk(roots)
	return index
}

// Lookup returns the first-match node for the path, comparing slugs by exact
// string equality.
func (i *SlugIndex) Lookup(fullPath string) (*pages.PageNode, bool) {
	if i == nil {
		return nil, false
	}
	node, ok := i.bySlug[fullPath]
	return node, ok
}

// Len reports the number of nodes indexed, counting duplicates.
func (i *SlugIndex) Len() int {
	if i == nil {
		return 0
	}
	return i.size
}
