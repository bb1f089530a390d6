package viewscmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-sitenav/internal/commands"
	contentstore "github.com/goliatone/go-sitenav/internal/content"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const incrementOperation = "news.increment_views"

var _ command.Commander[IncrementCommand] = (*IncrementHandler)(nil)

// IncrementHandler executes the view-counter bump against the record store.
type IncrementHandler struct {
	inner *commands.Handler[IncrementCommand]
}

// NewIncrementHandler creates a handler bound to the supplied record store.
func NewIncrementHandler(store contentstore.Store, logger interfaces.Logger, opts ...commands.HandlerOption[IncrementCommand]) *IncrementHandler {
	exec := func(ctx context.Context, msg IncrementCommand) error {
		return store.IncrementNewsViews(ctx, msg.NewsID)
	}

	handlerOpts := []commands.HandlerOption[IncrementCommand]{
		commands.WithLogger[IncrementCommand](logger),
		commands.WithOperation[IncrementCommand](incrementOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &IncrementHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *IncrementHandler) Execute(ctx context.Context, msg IncrementCommand) error {
	return h.inner.Execute(ctx, msg)
}
