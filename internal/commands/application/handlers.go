package applicationcmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/commands"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const submitOperation = "application.submit"

// Submitter forwards a validated application to the collaborator endpoint.
type Submitter interface {
	SubmitApplication(ctx context.Context, app content.Application) error
}

var _ command.Commander[SubmitCommand] = (*SubmitHandler)(nil)

// SubmitHandler validates and forwards contact-form submissions.
type SubmitHandler struct {
	inner *commands.Handler[SubmitCommand]
}

// NewSubmitHandler creates a handler bound to the supplied submitter.
func NewSubmitHandler(submitter Submitter, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitCommand]) *SubmitHandler {
	exec := func(ctx context.Context, msg SubmitCommand) error {
		return submitter.SubmitApplication(ctx, content.Application{
			Name:    msg.Name,
			Email:   msg.Email,
			Phone:   msg.Phone,
			Message: msg.Message,
		})
	}

	handlerOpts := []commands.HandlerOption[SubmitCommand]{
		commands.WithLogger[SubmitCommand](logger),
		commands.WithOperation[SubmitCommand](submitOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *SubmitHandler) Execute(ctx context.Context, msg SubmitCommand) error {
	return h.inner.Execute(ctx, msg)
}
