package viewscmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const incrementMessageType = "sitenav.news.increment_views"

// IncrementCommand bumps the view counter for a single news record. It is
// dispatched fire-and-forget when a reader opens the record; the handler's
// failure contract is swallow-and-log, never block rendering.
type IncrementCommand struct {
	// NewsID selects the news record whose counter is incremented.
	NewsID uuid.UUID `json:"news_id"`
}

// Type implements command.Message.
func (IncrementCommand) Type() string { return incrementMessageType }

// Validate ensures a record is addressed before the handler executes.
func (cmd IncrementCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.NewsID, validation.By(func(any) error {
			if cmd.NewsID == uuid.Nil {
				return validation.NewError("sitenav.news.increment_views.id_required", "news id is required")
			}
			return nil
		})),
	)
}
