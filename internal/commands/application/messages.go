package applicationcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const submitMessageType = "sitenav.application.submit"

// SubmitCommand carries the public contact-form payload forwarded to the
// collaborator. Success or failure affects only the communication view's
// local form state, never the resolution pipeline.
type SubmitCommand struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Type implements command.Message.
func (SubmitCommand) Type() string { return submitMessageType }

// Validate checks the form payload before it leaves the process.
func (cmd SubmitCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Name, validation.Required, validation.By(notBlank("sitenav.application.submit.name_required", "name is required"))),
		validation.Field(&cmd.Email, validation.Required, is.Email),
		validation.Field(&cmd.Message, validation.Required, validation.By(notBlank("sitenav.application.submit.message_required", "message is required"))),
	)
}

func notBlank(code, message string) func(any) error {
	return func(value any) error {
		str, _ := value.(string)
		if strings.TrimSpace(str) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
