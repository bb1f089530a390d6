package http

import (
	"net/http"
	"strings"

	command "github.com/goliatone/go-command"
	applicationcmd "github.com/goliatone/go-sitenav/internal/commands/application"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/navigation"
	"github.com/goliatone/go-sitenav/internal/render"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
	"github.com/google/uuid"
)

type resolvePayload struct {
	State    string       `json:"state"`
	Path     string       `json:"path"`
	Language string       `json:"language"`
	View     *render.View `json:"view,omitempty"`
}

type applicationPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PublicAPI exposes the navigation pipeline over HTTP: path resolution with
// rendered views, news view tracking, and contact-form submission.
type PublicAPI struct {
	nav          *navigation.Navigator
	applications command.Commander[applicationcmd.SubmitCommand]
	langs        *language.MemorySource
	logger       interfaces.Logger
}

// PublicAPIOption configures the public API.
type PublicAPIOption func(*PublicAPI)

// WithApplicationHandler wires the contact-form command handler. Without it
// POST /application answers 503.
func WithApplicationHandler(handler command.Commander[applicationcmd.SubmitCommand]) PublicAPIOption {
	return func(api *PublicAPI) {
		api.applications = handler
	}
}

// WithLanguageSwitcher lets a ?language= query switch the site-wide language
// before resolving. The source must be the same one the navigator reads.
func WithLanguageSwitcher(src *language.MemorySource) PublicAPIOption {
	return func(api *PublicAPI) {
		api.langs = src
	}
}

// WithPublicLogger injects the HTTP logger.
func WithPublicLogger(logger interfaces.Logger) PublicAPIOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// NewPublicAPI wraps the navigator in HTTP handlers.
func NewPublicAPI(nav *navigation.Navigator, opts ...PublicAPIOption) *PublicAPI {
	api := &PublicAPI{
		nav:    nav,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register mounts the public routes under base.
func (api *PublicAPI) Register(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET "+joinPath(base, "resolve"), api.handleResolve)
	mux.HandleFunc("POST "+joinPath(base, "news/{id}/views"), api.handleNewsViews)
	mux.HandleFunc("POST "+joinPath(base, "application"), api.handleApplication)
}

func (api *PublicAPI) handleResolve(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.nav == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	path := r.URL.Query().Get("path")
	if strings.TrimSpace(path) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "path query parameter is required"})
		return
	}

	if lang := r.URL.Query().Get("language"); lang != "" && api.langs != nil {
		api.langs.Set(lang)
	}

	result := api.nav.Navigate(r.Context(), path)
	payload := resolvePayload{
		State:    string(result.State),
		Path:     result.Path,
		Language: result.Language,
	}

	switch result.State {
	case navigation.StateRendered, navigation.StateEmpty:
		view := result.View
		payload.View = &view
		writeJSON(w, http.StatusOK, payload)
	case navigation.StateRoot:
		writeJSON(w, http.StatusOK, payload)
	case navigation.StateNotFound:
		writeJSON(w, http.StatusNotFound, payload)
	case navigation.StateSuperseded:
		writeJSON(w, http.StatusConflict, payload)
	default:
		api.logger.Error("http.resolve.failed", "path", path, "error", result.Err)
		writeError(w, result.Err)
	}
}

func (api *PublicAPI) handleNewsViews(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.nav == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(r.PathValue("id")))
	if err != nil || id == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "news id must be a UUID"})
		return
	}

	// Fire-and-forget; the response never waits on the counter.
	api.nav.OpenNews(r.Context(), id)
	writeJSON(w, http.StatusAccepted, nil)
}

func (api *PublicAPI) handleApplication(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.applications == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var payload applicationPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	cmd := applicationcmd.SubmitCommand{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	}
	if err := api.applications.Execute(r.Context(), cmd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "accepted"})
}
