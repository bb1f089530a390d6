package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-sitenav/content"
	viewscmd "github.com/goliatone/go-sitenav/internal/commands/views"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

type stubStore struct {
	mu      sync.Mutex
	queried []content.Type
	keys    []string
	records map[content.Type][]content.Record
	listErr error
}

func (s *stubStore) List(_ context.Context, typ content.Type, key, _ string) ([]content.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queried = append(s.queried, typ)
	s.keys = append(s.keys, key)
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records[typ], nil
}

func (s *stubStore) IncrementNewsViews(context.Context, uuid.UUID) error {
	return nil
}

type stubCounter struct {
	calls chan uuid.UUID
	err   error
}

func (c *stubCounter) Execute(_ context.Context, msg viewscmd.IncrementCommand) error {
	c.calls <- msg.NewsID
	return c.err
}

func newsNode(typ content.Type, key string) *pages.PageNode {
	return &pages.PageNode{
		ID:   uuid.New(),
		Slug: "page",
		Type: typ,
		Key:  key,
	}
}

func TestDispatchRoutesDeclaredType(t *testing.T) {
	store := &stubStore{
		records: map[content.Type][]content.Record{
			content.TypeNews: {
				&content.NewsRecord{ID: uuid.New(), Key: "press"},
			},
		},
	}
	router := NewRouter(store)

	inst, err := router.Dispatch(context.Background(), newsNode(content.TypeNews, "press"), "uz")
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if inst.Adapter != content.TypeNews {
		t.Fatalf("adapter = %q, want %q", inst.Adapter, content.TypeNews)
	}
	if len(inst.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(inst.Records))
	}
	if store.keys[0] != "press" {
		t.Fatalf("store queried key %q, want %q", store.keys[0], "press")
	}
}

func TestDispatchUnknownTypeFallsBackToStatic(t *testing.T) {
	store := &stubStore{records: map[content.Type][]content.Record{}}
	router := NewRouter(store)

	node := newsNode(content.Type("carousel"), "home")
	inst, err := router.Dispatch(context.Background(), node, "uz")
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if inst.Adapter != content.TypeStatic {
		t.Fatalf("adapter = %q, want static fallback", inst.Adapter)
	}
	if store.queried[0] != content.TypeStatic {
		t.Fatalf("store queried %q, want %q", store.queried[0], content.TypeStatic)
	}
}

func TestDispatchEmptyRecordsIsNotAnError(t *testing.T) {
	store := &stubStore{records: map[content.Type][]content.Record{}}
	router := NewRouter(store)

	inst, err := router.Dispatch(context.Background(), newsNode(content.TypeGallery, "dangling"), "ru")
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(inst.Records) != 0 {
		t.Fatalf("records = %d, want 0", len(inst.Records))
	}
}

func TestDispatchPropagatesFetchFailure(t *testing.T) {
	store := &stubStore{listErr: errors.New("connection refused")}
	router := NewRouter(store)

	_, err := router.Dispatch(context.Background(), newsNode(content.TypeDocuments, "decrees"), "en")
	if err == nil {
		t.Fatal("Dispatch() expected error")
	}
}

func TestDispatchNilNode(t *testing.T) {
	router := NewRouter(&stubStore{})
	if _, err := router.Dispatch(context.Background(), nil, "uz"); !errors.Is(err, ErrNilNode) {
		t.Fatalf("error = %v, want ErrNilNode", err)
	}
}

func TestOpenNewsRunsDetached(t *testing.T) {
	counter := &stubCounter{calls: make(chan uuid.UUID, 1)}
	router := NewRouter(&stubStore{}, WithViewCounter(counter))

	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	router.OpenNews(ctx, id)

	select {
	case got := <-counter.calls:
		if got != id {
			t.Fatalf("incremented %s, want %s", got, id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never ran")
	}
}

func TestOpenNewsSwallowsFailure(t *testing.T) {
	counter := &stubCounter{
		calls: make(chan uuid.UUID, 1),
		err:   errors.New("timeout"),
	}
	router := NewRouter(&stubStore{}, WithViewCounter(counter))

	router.OpenNews(context.Background(), uuid.New())

	select {
	case <-counter.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("view increment never ran")
	}
}

func TestOpenNewsIgnoresNilID(t *testing.T) {
	counter := &stubCounter{calls: make(chan uuid.UUID, 1)}
	router := NewRouter(&stubStore{}, WithViewCounter(counter))

	router.OpenNews(context.Background(), uuid.Nil)

	select {
	case <-counter.calls:
		t.Fatal("increment ran for nil id")
	case <-time.After(50 * time.Millisecond):
	}
}
