package render

import (
	"testing"
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/media"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

func testNode(typ content.Type) *pages.PageNode {
	return &pages.PageNode{
		ID:   uuid.New(),
		Slug: "section",
		Type: typ,
		Key:  "section",
		Titles: map[string]string{
			"uz": "Bo'lim",
			"ru": "Раздел",
		},
	}
}

func TestStaticAdapterResolvesLanguageChain(t *testing.T) {
	registry := NewRegistry(media.NewResolver("https://cdn.example.uz"))
	records := []content.Record{
		&content.StaticRecord{
			ID:  uuid.New(),
			Key: "section",
			Text: content.TextFields{
				"title_uz":       "Sarlavha",
				"description_uz": "Tavsif",
			},
			Photos: []string{"banners/hero.jpg"},
		},
	}

	view := registry.Render(testNode(content.TypeStatic), content.TypeStatic, records, "ru")
	if view.Empty {
		t.Fatal("view unexpectedly empty")
	}
	if got := view.Items[0].Title; got != "Sarlavha" {
		t.Fatalf("title = %q, want uz fallback %q", got, "Sarlavha")
	}
	if got := view.Items[0].Media[0].URL; got != "https://cdn.example.uz/banners/hero.jpg" {
		t.Fatalf("media url = %q", got)
	}
	if got := view.Items[0].Media[0].Kind; got != media.KindImage {
		t.Fatalf("media kind = %q, want image", got)
	}
	if view.Title != "Раздел" {
		t.Fatalf("node title = %q, want %q", view.Title, "Раздел")
	}
}

func TestNewsAdapterCarriesViews(t *testing.T) {
	registry := NewRegistry(nil)
	published := time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC)
	records := []content.Record{
		&content.NewsRecord{
			ID:        uuid.New(),
			Key:       "press",
			Text:      content.TextFields{"title_en": "Opening"},
			Views:     41,
			CreatedAt: published,
		},
	}

	view := registry.Render(testNode(content.TypeNews), content.TypeNews, records, "en")
	if view.Items[0].Views != 41 {
		t.Fatalf("views = %d, want 41", view.Items[0].Views)
	}
	if !view.Items[0].PublishedAt.Equal(published) {
		t.Fatalf("published = %v, want %v", view.Items[0].PublishedAt, published)
	}
}

func TestGalleryAdapterClassifiesVideo(t *testing.T) {
	registry := NewRegistry(media.NewResolver("https://cdn.example.uz"))
	records := []content.Record{
		&content.GalleryRecord{
			ID:     uuid.New(),
			Key:    "section",
			Text:   content.TextFields{"title_uz": "Galereya"},
			Photos: []string{"clips/opening.MP4", "shots/one.png"},
		},
	}

	view := registry.Render(testNode(content.TypeGallery), content.TypeGallery, records, "uz")
	if got := view.Items[0].Media[0].Kind; got != media.KindVideo {
		t.Fatalf("first media kind = %q, want video", got)
	}
	if got := view.Items[0].Media[1].Kind; got != media.KindImage {
		t.Fatalf("second media kind = %q, want image", got)
	}
}

func TestLeaderAdapterBuildsContacts(t *testing.T) {
	registry := NewRegistry(media.NewResolver("https://cdn.example.uz"))
	records := []content.Record{
		&content.LeaderRecord{
			ID:  uuid.New(),
			Key: "section",
			Text: content.TextFields{
				"name_uz": "Aziz Karimov",
				"task_uz": "Bo'lim boshlig'i",
			},
			Phone: "+998 71 000 00 00",
			Email: "a.karimov@example.uz",
			Photo: "leaders/karimov.jpg",
		},
	}

	view := registry.Render(testNode(content.TypeLeader), content.TypeLeader, records, "uz")
	if len(view.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(view.Contacts))
	}
	c := view.Contacts[0]
	if c.Name != "Aziz Karimov" || c.Phone != "+998 71 000 00 00" {
		t.Fatalf("unexpected contact %+v", c)
	}
	if c.Photo == nil || c.Photo.URL != "https://cdn.example.uz/leaders/karimov.jpg" {
		t.Fatalf("photo = %+v", c.Photo)
	}
}

func TestLeaderAdapterResolvesBiographyAndHours(t *testing.T) {
	registry := NewRegistry(nil)
	records := []content.Record{
		&content.LeaderRecord{
			ID:  uuid.New(),
			Key: "section",
			Text: content.TextFields{
				"name_uz":         "Aziz Karimov",
				"biography_uz":    "1975 yilda tug'ilgan",
				"workingHours_uz": "9:00 - 18:00",
			},
		},
	}

	view := registry.Render(testNode(content.TypeLeader), content.TypeLeader, records, "uz")
	if len(view.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(view.Contacts))
	}
	c := view.Contacts[0]
	if c.About != "1975 yilda tug'ilgan" {
		t.Fatalf("about = %q, want biography text", c.About)
	}
	if c.WorkingHours != "9:00 - 18:00" {
		t.Fatalf("working hours = %q", c.WorkingHours)
	}
}

func TestLeaderAdapterFallsBackToAboutField(t *testing.T) {
	registry := NewRegistry(nil)
	records := []content.Record{
		&content.LeaderRecord{
			ID:   uuid.New(),
			Key:  "section",
			Text: content.TextFields{"about_uz": "Qisqacha ma'lumot"},
		},
	}

	view := registry.Render(testNode(content.TypeLeader), content.TypeLeader, records, "uz")
	if got := view.Contacts[0].About; got != "Qisqacha ma'lumot" {
		t.Fatalf("about = %q, want legacy about text", got)
	}
}

func TestCommunicationAdapterAlwaysRendersForm(t *testing.T) {
	registry := NewRegistry(nil)

	view := registry.Render(testNode(content.TypeCommunication), content.TypeCommunication, nil, "uz")
	if view.Form == nil {
		t.Fatal("form missing")
	}
	if !view.Empty {
		t.Fatal("view with no intro records should be empty")
	}
}

func TestEmptyRecordsSetEmptyFlag(t *testing.T) {
	registry := NewRegistry(nil)
	view := registry.Render(testNode(content.TypeStatic), content.TypeStatic, nil, "uz")
	if !view.Empty {
		t.Fatal("expected empty view")
	}
}

func TestRegistryFallsBackToStatic(t *testing.T) {
	registry := NewRegistry(nil)
	a := registry.Adapter(content.Type("carousel"))
	if _, ok := a.(*staticAdapter); !ok {
		t.Fatalf("adapter = %T, want static", a)
	}
}

func TestAdapterSkipsMismatchedRecords(t *testing.T) {
	registry := NewRegistry(nil)
	records := []content.Record{
		&content.NewsRecord{ID: uuid.New(), Key: "section"},
	}
	view := registry.Render(testNode(content.TypeStatic), content.TypeStatic, records, "uz")
	if !view.Empty {
		t.Fatal("mismatched record should not produce items")
	}
}
