package dispatch

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-sitenav/content"
	viewscmd "github.com/goliatone/go-sitenav/internal/commands/views"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
	"github.com/google/uuid"
)

// ErrNilNode is returned when Dispatch is called without a resolved node.
var ErrNilNode = errors.New("dispatch: node is required")

// Instruction is the outcome of routing a resolved page node: which adapter
// should present the node and the records fetched for it. Records may be
// empty when the node's key matches nothing; that is a valid state, distinct
// from a failed fetch.
type Instruction struct {
	Node    *pages.PageNode
	Adapter content.Type
	Records []content.Record
}

// ViewCounter bumps the view counter for a news record. Implemented by the
// views command handler.
type ViewCounter interface {
	Execute(ctx context.Context, msg viewscmd.IncrementCommand) error
}

// Router maps a node's declared content type to a fetch strategy and
// produces the instruction the render layer consumes. Unknown types fall
// back to the static strategy so stale trees keep rendering.
type Router struct {
	store   contentstore.Store
	views   ViewCounter
	logger  interfaces.Logger
	accepts map[content.Type]struct{}
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithRouterLogger injects the logger used for dispatch diagnostics.
func WithRouterLogger(logger interfaces.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithViewCounter wires the fire-and-forget news view counter. Without it
// news pages render but views are not counted.
func WithViewCounter(views ViewCounter) RouterOption {
	return func(r *Router) {
		r.views = views
	}
}

// NewRouter creates a router over the given content store.
func NewRouter(store contentstore.Store, opts ...RouterOption) *Router {
	r := &Router{
		store:   store,
		logger:  logging.NoOp(),
		accepts: make(map[content.Type]struct{}, len(content.Types)),
	}
	for _, typ := range content.Types {
		r.accepts[typ] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch routes the node to its strategy and fetches the scoped records.
// The returned instruction names the adapter the presentation layer should
// use, which is the normalized type (unknown declared types come back as
// static).
func (r *Router) Dispatch(ctx context.Context, node *pages.PageNode, language string) (Instruction, error) {
	if node == nil {
		return Instruction{}, ErrNilNode
	}

	typ := r.normalize(node)

	records, err := r.store.List(ctx, typ, node.Key, language)
	if err != nil {
		r.logger.Error("dispatch.fetch.failed",
			"type", string(typ),
			"key", node.Key,
			"error", err,
		)
		return Instruction{}, goerrors.Wrap(err, goerrors.CategoryCommand, "content fetch failed").
			WithTextCode("DISPATCH_FETCH_FAILED")
	}

	return Instruction{Node: node, Adapter: typ, Records: records}, nil
}

// OpenNews records that a news article was opened. The increment runs on a
// detached context so navigating away does not cancel it, and failures are
// logged and discarded; the page render never waits on or fails with the
// counter.
func (r *Router) OpenNews(ctx context.Context, id uuid.UUID) {
	if r.views == nil || id == uuid.Nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := r.views.Execute(detached, viewscmd.IncrementCommand{NewsID: id}); err != nil {
			r.logger.Warn("dispatch.views.increment_failed",
				"news_id", id.String(),
				"error", err,
			)
		}
	}()
}

func (r *Router) normalize(node *pages.PageNode) content.Type {
	if _, ok := r.accepts[node.Type]; ok {
		return node.Type
	}
	r.logger.Debug("dispatch.type.fallback",
		"declared", string(node.Type),
		"slug", node.Slug,
	)
	return content.TypeStatic
}
