package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory record store for scaffolding/tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[content.Type][]content.Record
}

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[content.Type][]content.Record)}
}

// Put appends records, grouped by their own declared type.
func (m *MemoryStore) Put(_ context.Context, records ...content.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		if record == nil {
			continue
		}
		typ := record.RecordType()
		m.records[typ] = append(m.records[typ], record)
	}
	return nil
}

// List filters the stored records by key, newest first.
func (m *MemoryStore) List(_ context.Context, typ content.Type, key, _ string) ([]content.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []content.Record
	for _, record := range m.records[typ] {
		if record.RecordKey() != key {
			continue
		}
		out = append(out, record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return recordCreatedAt(out[i]).After(recordCreatedAt(out[j]))
	})
	return out, nil
}

// IncrementNewsViews bumps the counter on a stored news record. A missing id
// reports a typed not-found error.
func (m *MemoryStore) IncrementNewsViews(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records[content.TypeNews] {
		news, ok := record.(*content.NewsRecord)
		if !ok {
			continue
		}
		if news.ID == id {
			news.Views++
			return nil
		}
	}
	return &content.RecordNotFoundError{Type: content.TypeNews, ID: id}
}

func recordCreatedAt(record content.Record) time.Time {
	switch r := record.(type) {
	case *content.StaticRecord:
		return r.CreatedAt
	case *content.NewsRecord:
		return r.CreatedAt
	case *content.GalleryRecord:
		return r.CreatedAt
	case *content.DocumentRecord:
		return r.CreatedAt
	case *content.LeaderRecord:
		return r.CreatedAt
	case *content.CommunicationRecord:
		return r.CreatedAt
	}
	return time.Time{}
}
