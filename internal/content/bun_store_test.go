package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-sitenav/content"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/pkg/testsupport"
	"github.com/google/uuid"
)

func TestBunStoreScopesByKeyAndType(t *testing.T) {
	db := testsupport.NewBunSQLite(t)
	store := contentstore.NewBunStore(db)
	ctx := context.Background()

	err := store.Put(ctx,
		&content.StaticRecord{ID: uuid.New(), Key: "about", Text: content.TextFields{"title_uz": "Biz haqimizda"}},
		&content.StaticRecord{ID: uuid.New(), Key: "history", Text: content.TextFields{"title_uz": "Tarix"}},
		&content.NewsRecord{ID: uuid.New(), Key: "about", Text: content.TextFields{"title_uz": "Yangilik"}},
	)
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	records, err := store.List(ctx, content.TypeStatic, "about", "uz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record for key about, got %d", len(records))
	}
	if records[0].Fields()["title_uz"] != "Biz haqimizda" {
		t.Fatalf("unexpected record: %+v", records[0].Fields())
	}
}

func TestBunStoreListsNewestFirst(t *testing.T) {
	db := testsupport.NewBunSQLite(t)
	store := contentstore.NewBunStore(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := store.Put(ctx,
		&content.NewsRecord{ID: uuid.New(), Key: "press", Text: content.TextFields{"title_uz": "Eski"}, CreatedAt: base},
		&content.NewsRecord{ID: uuid.New(), Key: "press", Text: content.TextFields{"title_uz": "Yangi"}, CreatedAt: base.Add(time.Hour)},
	)
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	records, err := store.List(ctx, content.TypeNews, "press", "uz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Fields()["title_uz"] != "Yangi" {
		t.Fatalf("expected newest record first, got %+v", records[0].Fields())
	}
}

func TestBunStoreIncrementNewsViews(t *testing.T) {
	db := testsupport.NewBunSQLite(t)
	store := contentstore.NewBunStore(db)
	ctx := context.Background()

	id := uuid.New()
	err := store.Put(ctx, &content.NewsRecord{ID: id, Key: "press", Text: content.TextFields{"title_uz": "Yangilik"}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := store.IncrementNewsViews(ctx, id); err != nil {
		t.Fatalf("first increment: %v", err)
	}
	if err := store.IncrementNewsViews(ctx, id); err != nil {
		t.Fatalf("second increment: %v", err)
	}

	records, err := store.List(ctx, content.TypeNews, "press", "uz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	news, ok := records[0].(*content.NewsRecord)
	if !ok {
		t.Fatalf("expected news record, got %T", records[0])
	}
	if news.Views != 2 {
		t.Fatalf("expected 2 views, got %d", news.Views)
	}
}

func TestBunStoreIncrementMissingNews(t *testing.T) {
	db := testsupport.NewBunSQLite(t)
	store := contentstore.NewBunStore(db)

	err := store.IncrementNewsViews(context.Background(), uuid.New())
	if !errors.Is(err, content.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestBunStoreLeaderRoundTrip(t *testing.T) {
	db := testsupport.NewBunSQLite(t)
	store := contentstore.NewBunStore(db)
	ctx := context.Background()

	err := store.Put(ctx, &content.LeaderRecord{
		ID:    uuid.New(),
		Key:   "director",
		Text:  content.TextFields{"name_uz": "A. Karimov", "task_uz": "Direktor"},
		Phone: "+998711234567",
		Email: "director@example.uz",
		Photo: "leaders/director.jpg",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	records, err := store.List(ctx, content.TypeLeader, "director", "uz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 leader, got %d", len(records))
	}
	leader, ok := records[0].(*content.LeaderRecord)
	if !ok {
		t.Fatalf("expected leader record, got %T", records[0])
	}
	if leader.Phone != "+998711234567" || leader.Email != "director@example.uz" {
		t.Fatalf("contact fields lost: %+v", leader)
	}
	if got := leader.MediaPaths(); len(got) != 1 || got[0] != "leaders/director.jpg" {
		t.Fatalf("photo lost: %v", got)
	}
}
