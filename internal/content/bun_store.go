package content

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/goliatone/go-sitenav/content"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunStore serves scoped content queries from a relational store, one table
// per record variant.
type BunStore struct {
	db            *bun.DB
	static        repository.Repository[*content.StaticRecord]
	news          repository.Repository[*content.NewsRecord]
	gallery       repository.Repository[*content.GalleryRecord]
	document      repository.Repository[*content.DocumentRecord]
	leader        repository.Repository[*content.LeaderRecord]
	communication repository.Repository[*content.CommunicationRecord]
}

func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache constructs a Store backed by bun with optional read
// caching on every variant repository.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStore {
	return &BunStore{
		db:            db,
		static:        wrapWithCache(NewStaticRepository(db), cacheService, keySerializer),
		news:          wrapWithCache(NewNewsRepository(db), cacheService, keySerializer),
		gallery:       wrapWithCache(NewGalleryRepository(db), cacheService, keySerializer),
		document:      wrapWithCache(NewDocumentRepository(db), cacheService, keySerializer),
		leader:        wrapWithCache(NewLeaderRepository(db), cacheService, keySerializer),
		communication: wrapWithCache(NewCommunicationRepository(db), cacheService, keySerializer),
	}
}

// List issues one scoped query against the variant table, newest first. The
// language argument is accepted for contract parity with the collaborator
// endpoint; rows carry every language so no SQL filtering happens here.
func (s *BunStore) List(ctx context.Context, typ content.Type, key, _ string) ([]content.Record, error) {
	switch typ {
	case content.TypeStatic:
		return listScoped(ctx, s.static, key)
	case content.TypeNews:
		return listScoped(ctx, s.news, key)
	case content.TypeGallery:
		return listScoped(ctx, s.gallery, key)
	case content.TypeDocuments:
		return listScoped(ctx, s.document, key)
	case content.TypeLeader:
		return listScoped(ctx, s.leader, key)
	case content.TypeCommunication:
		return listScoped(ctx, s.communication, key)
	}
	// Unknown types were already mapped to the static strategy upstream;
	// reaching here with one is a programming error worth surfacing.
	return nil, fmt.Errorf("content store: unhandled type %q", typ)
}

// IncrementNewsViews bumps the view counter in place. The increment is issued
// as a single UPDATE so concurrent bumps cannot lose counts.
func (s *BunStore) IncrementNewsViews(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		return content.ErrStoreUnavailable
	}
	result, err := s.db.NewUpdate().
		Model((*content.NewsRecord)(nil)).
		Set("views = views + 1").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment news views: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment news views rows affected: %w", err)
	}
	if affected == 0 {
		return &content.RecordNotFoundError{Type: content.TypeNews, ID: id}
	}
	return nil
}

// Put inserts seed records into their variant tables. Seeding only; the admin
// collaborator owns production writes.
func (s *BunStore) Put(ctx context.Context, records ...content.Record) error {
	for _, record := range records {
		if record == nil {
			continue
		}
		var err error
		switch r := record.(type) {
		case *content.StaticRecord:
			_, err = s.static.Create(ctx, r)
		case *content.NewsRecord:
			_, err = s.news.Create(ctx, r)
		case *content.GalleryRecord:
			_, err = s.gallery.Create(ctx, r)
		case *content.DocumentRecord:
			_, err = s.document.Create(ctx, r)
		case *content.LeaderRecord:
			_, err = s.leader.Create(ctx, r)
		case *content.CommunicationRecord:
			_, err = s.communication.Create(ctx, r)
		default:
			err = fmt.Errorf("content store: unhandled record %T", record)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func listScoped[T content.Record](ctx context.Context, repo repository.Repository[T], key string) ([]content.Record, error) {
	records, _, err := repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.key = ?", key)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	if err != nil {
		return nil, err
	}
	out := make([]content.Record, 0, len(records))
	for _, record := range records {
		out = append(out, record)
	}
	return out, nil
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
