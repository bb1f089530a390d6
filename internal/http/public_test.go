package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-sitenav/content"
	applicationcmd "github.com/goliatone/go-sitenav/internal/commands/application"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/internal/dispatch"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/navigation"
	pagesint "github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/internal/render"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/google/uuid"
)

type recordingSubmitter struct {
	apps []content.Application
}

func (s *recordingSubmitter) SubmitApplication(_ context.Context, app content.Application) error {
	s.apps = append(s.apps, app)
	return nil
}

func newTestMux(t *testing.T, opts ...PublicAPIOption) (*http.ServeMux, *recordingSubmitter) {
	t.Helper()

	node := &pages.PageNode{
		ID:   uuid.New(),
		Slug: "/about",
		Type: content.TypeStatic,
		Key:  "about",
		Titles: map[string]string{
			"uz": "Biz haqimizda",
			"ru": "О нас",
		},
	}
	store := contentstore.NewMemoryStore()
	if err := store.Put(context.Background(), &content.StaticRecord{
		ID:   uuid.New(),
		Key:  "about",
		Text: content.TextFields{"title_uz": "Biz haqimizda"},
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	nav := navigation.NewNavigator(
		pagesint.NewResolver(pagesint.NewMemoryTreeRepository(node)),
		dispatch.NewRouter(store),
		render.NewRegistry(nil),
	)

	submitter := &recordingSubmitter{}
	handler := applicationcmd.NewSubmitHandler(submitter, nil)

	allOpts := append([]PublicAPIOption{WithApplicationHandler(handler)}, opts...)
	api := NewPublicAPI(nav, allOpts...)

	mux := http.NewServeMux()
	api.Register(mux, "api")
	return mux, submitter
}

func TestResolveRendersView(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve?path=/about", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var payload resolvePayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.State != string(navigation.StateRendered) {
		t.Fatalf("state = %q", payload.State)
	}
	if payload.View == nil || payload.View.Title != "Biz haqimizda" {
		t.Fatalf("view = %+v", payload.View)
	}
}

func TestResolveRootState(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve?path=/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"state":"root"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestResolveMissReturns404(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve?path=/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResolveRequiresPath(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResolveSwitchesLanguage(t *testing.T) {
	langs := language.NewMemorySource("uz")
	mux, _ := newTestMux(t, WithLanguageSwitcher(langs))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve?path=/about&language=ru", nil))

	var payload resolvePayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Language != "ru" {
		t.Fatalf("language = %q, want ru", payload.Language)
	}
	if payload.View == nil || payload.View.Title != "О нас" {
		t.Fatalf("view title = %+v, want russian node title", payload.View)
	}
}

func TestNewsViewsAccepted(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	url := "/api/news/" + uuid.NewString() + "/views"
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNewsViewsRejectsBadID(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/news/abc/views", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestApplicationSubmits(t *testing.T) {
	mux, submitter := newTestMux(t)

	body := strings.NewReader(`{
		"name": "Dilnoza",
		"email": "dilnoza@example.uz",
		"message": "Savolim bor"
	}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/application", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(submitter.apps) != 1 || submitter.apps[0].Name != "Dilnoza" {
		t.Fatalf("submitted = %+v", submitter.apps)
	}
}

func TestApplicationValidationFails(t *testing.T) {
	mux, submitter := newTestMux(t)

	body := strings.NewReader(`{"name": "", "email": "not-an-email", "message": ""}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/application", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(submitter.apps) != 0 {
		t.Fatal("invalid submission reached the submitter")
	}
}
