package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-sitenav/content"
	pagesint "github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

func node(slug string, typ content.Type, key string, children ...*pages.PageNode) *pages.PageNode {
	return &pages.PageNode{
		ID:       uuid.New(),
		Slug:     slug,
		Type:     typ,
		Key:      key,
		Titles:   map[string]string{"uz": key},
		Children: children,
	}
}

func TestResolveTopLevelNode(t *testing.T) {
	repo := pagesint.NewMemoryTreeRepository(
		node("/about-us", content.TypeStatic, "about"),
	)
	resolver := pagesint.NewResolver(repo)

	for i := 0; i < 3; i++ {
		res, err := resolver.Resolve(context.Background(), "/about-us", "uz")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if res.Root {
			t.Fatal("expected tree match, got root bypass")
		}
		if res.Node == nil || res.Node.Key != "about" {
			t.Fatalf("expected about node, got %+v", res.Node)
		}
	}
}

func TestResolveNestedNode(t *testing.T) {
	repo := pagesint.NewMemoryTreeRepository(
		node("/info", content.TypeStatic, "info",
			node("/info/news", content.TypeNews, "k1"),
		),
	)
	resolver := pagesint.NewResolver(repo)

	res, err := resolver.Resolve(context.Background(), "/info/news", "uz")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Node == nil || res.Node.Type != content.TypeNews || res.Node.Key != "k1" {
		t.Fatalf("expected nested news node, got %+v", res.Node)
	}
}

func TestResolveRootBypassesTree(t *testing.T) {
	resolver := pagesint.NewResolver(failingTreeRepo{})

	res, err := resolver.Resolve(context.Background(), "/", "uz")
	if err != nil {
		t.Fatalf("root bypass must not touch the tree: %v", err)
	}
	if !res.Root || res.Node != nil {
		t.Fatalf("expected root resolution, got %+v", res)
	}
}

func TestResolveMissReturnsNotFoundValue(t *testing.T) {
	repo := pagesint.NewMemoryTreeRepository(
		node("/about-us", content.TypeStatic, "about"),
	)
	resolver := pagesint.NewResolver(repo)

	_, err := resolver.Resolve(context.Background(), "/missing", "uz")
	if !pages.IsNotFound(err) {
		t.Fatalf("expected NodeNotFoundError, got %v", err)
	}
	var notFound *pages.NodeNotFoundError
	if !errors.As(err, &notFound) || notFound.Path != "/missing" {
		t.Fatalf("expected typed not-found with path, got %v", err)
	}
}

func TestResolveEmptyTree(t *testing.T) {
	resolver := pagesint.NewResolver(pagesint.NewMemoryTreeRepository())

	_, err := resolver.Resolve(context.Background(), "/anything", "uz")
	if !pages.IsNotFound(err) {
		t.Fatalf("expected not found on empty tree, got %v", err)
	}
}

func TestResolveExactEquality(t *testing.T) {
	repo := pagesint.NewMemoryTreeRepository(
		node("/about-us", content.TypeStatic, "about"),
	)
	resolver := pagesint.NewResolver(repo)

	for _, path := range []string{"/about-us/", "/About-Us", "/about-us?x=1"} {
		if _, err := resolver.Resolve(context.Background(), path, "uz"); !pages.IsNotFound(err) {
			t.Fatalf("expected miss for %q, got %v", path, err)
		}
	}
}

func TestResolveTreeFetchFailure(t *testing.T) {
	resolver := pagesint.NewResolver(failingTreeRepo{})

	_, err := resolver.Resolve(context.Background(), "/about-us", "uz")
	if err == nil || pages.IsNotFound(err) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
}

func TestSlugIndexFirstMatchWins(t *testing.T) {
	first := node("/shared", content.TypeStatic, "first")
	nested := node("/shared", content.TypeNews, "nested")
	parent := node("/parent", content.TypeStatic, "parent", nested)
	later := node("/shared", content.TypeGallery, "later")

	// Pre-order: first, parent, parent's child, later.
	index := pagesint.NewSlugIndex([]*pages.PageNode{first, parent, later})
	got, ok := index.Lookup("/shared")
	if !ok || got.Key != "first" {
		t.Fatalf("expected first pre-order match, got %+v", got)
	}
	if index.Len() != 4 {
		t.Fatalf("expected 4 indexed nodes, got %d", index.Len())
	}

	// A nested duplicate that appears before a later sibling also wins.
	index = pagesint.NewSlugIndex([]*pages.PageNode{parent, later})
	got, ok = index.Lookup("/shared")
	if !ok || got.Key != "nested" {
		t.Fatalf("expected nested pre-order match, got %+v", got)
	}
}

type failingTreeRepo struct{}

func (failingTreeRepo) Tree(context.Context, string) ([]*pages.PageNode, error) {
	return nil, errors.New("tree store unreachable")
}
