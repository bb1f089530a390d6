package navigation

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-sitenav/internal/dispatch"
	"github.com/goliatone/go-sitenav/internal/language"
	"github.com/goliatone/go-sitenav/internal/logging"
	pagesint "github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/internal/render"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
	"github.com/google/uuid"
)

// State classifies the outcome of a navigation.
type State string

const (
	// StateRendered means the node resolved and produced at least one item.
	StateRendered State = "rendered"
	// StateEmpty means the node resolved but its key matched no records.
	StateEmpty State = "empty"
	// StateRoot is the "/" bypass; the caller renders the home view.
	StateRoot State = "root"
	// StateNotFound means no tree node matched the path.
	StateNotFound State = "not_found"
	// StateFailed means a tree or content fetch failed.
	StateFailed State = "failed"
	// StateSuperseded means a newer navigation started before this one
	// finished; the result must be discarded, not rendered.
	StateSuperseded State = "superseded"
)

// Result is what a navigation produces. View is populated for Rendered and
// Empty; Err for Failed.
type Result struct {
	State    State
	Path     string
	Language string
	View     render.View
	Err      error
}

// Navigator drives the full path-to-view pipeline: resolve the path against
// the tree, dispatch the node to its content strategy, and adapt the records
// into a view. The active language is read once at the start of each
// navigation and threaded through every stage, so a language switch mid-fetch
// cannot produce a mixed-language page.
//
// Each Navigate call cancels the previous in-flight one. The superseded call
// observes its context cancellation and reports StateSuperseded instead of a
// stale view.
type Navigator struct {
	resolver *pagesint.Resolver
	router   *dispatch.Router
	registry *render.Registry
	langs    language.Source
	logger   interfaces.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithNavigatorLogger injects the navigation logger.
func WithNavigatorLogger(logger interfaces.Logger) NavigatorOption {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithLanguageSource overrides the language source. Defaults to the static
// default language.
func WithLanguageSource(src language.Source) NavigatorOption {
	return func(n *Navigator) {
		if src != nil {
			n.langs = src
		}
	}
}

// NewNavigator wires the three pipeline stages together.
func NewNavigator(resolver *pagesint.Resolver, router *dispatch.Router, registry *render.Registry, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		resolver: resolver,
		router:   router,
		registry: registry,
		langs:    language.StaticSource(language.Default),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Navigate resolves the path and produces a view for it, cancelling any
// navigation still in flight.
func (n *Navigator) Navigate(ctx context.Context, path string) Result {
	ctx = n.begin(ctx)

	lang := language.Normalize(n.langs.Current(ctx))
	result := Result{Path: path, Language: lang}

	resolution, err := n.resolver.Resolve(ctx, path, lang)
	if err != nil {
		return n.classify(result, err)
	}
	if resolution.Root {
		result.State = StateRoot
		return result
	}

	instruction, err := n.router.Dispatch(ctx, resolution.Node, lang)
	if err != nil {
		return n.classify(result, err)
	}

	// Stores that never observe the context can still complete after a newer
	// navigation cancelled this one; re-check before handing out the view.
	if err := ctx.Err(); err != nil {
		return n.classify(result, err)
	}

	result.View = n.registry.Render(instruction.Node, instruction.Adapter, instruction.Records, lang)
	if result.View.Empty {
		result.State = StateEmpty
	} else {
		result.State = StateRendered
	}
	n.logger.Debug("navigation.done",
		"path", path,
		"language", lang,
		"state", string(result.State),
	)
	return result
}

// OpenNews records that a news article was opened. Fire-and-forget; the
// caller never waits on or observes the increment.
func (n *Navigator) OpenNews(ctx context.Context, id uuid.UUID) {
	n.router.OpenNews(ctx, id)
}

// begin cancels the previous navigation and registers the new one.
func (n *Navigator) begin(ctx context.Context) context.Context {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	return ctx
}

func (n *Navigator) classify(result Result, err error) Result {
	switch {
	case errors.Is(err, context.Canceled):
		result.State = StateSuperseded
	case pages.IsNotFound(err):
		result.State = StateNotFound
	default:
		result.State = StateFailed
		result.Err = err
		n.logger.Error("navigation.failed",
			"path", result.Path,
			"language", result.Language,
			"error", err,
		)
	}
	return result
}
