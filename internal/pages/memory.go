package pages

import (
	"context"
	"sync"

	"github.com/goliatone/go-sitenav/pages"
)

// MemoryTreeRepository is an in-memory tree store for scaffolding/tests.
type MemoryTreeRepository struct {
	mu    sync.RWMutex
	roots []*pages.PageNode
}

// NewMemoryTreeRepository constructs the repository.
func NewMemoryTreeRepository(roots ...*pages.PageNode) *MemoryTreeRepository {
	repo := &MemoryTreeRepository{}
	if len(roots) > 0 {
		repo.roots = cloneNodes(roots)
	}
	return repo
}

// Tree returns a deep copy of the stored roots in insertion order.
func (m *MemoryTreeRepository) Tree(_ context.Context, _ string) ([]*pages.PageNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneNodes(m.roots), nil
}

// Replace swaps the whole tree. Ordering of roots and children is preserved
// as given; resolution depends on it.
func (m *MemoryTreeRepository) Replace(_ context.Context, roots []*pages.PageNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roots = cloneNodes(roots)
	return nil
}

func cloneNodes(nodes []*pages.PageNode) []*pages.PageNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*pages.PageNode, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out = append(out, node.Clone())
	}
	return out
}
