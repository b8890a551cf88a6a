package site

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"coursebook/internal/render"
)

// answerForm is the payload posted by an option button.
type answerForm struct {
	Kind   string `validate:"required,oneof=check quiz"`
	ID     string `validate:"required,max=200"`
	Option int    `validate:"gte=0"`
	State  string `validate:"max=8192"`
}

// parseAnswerForm reads and validates the answer payload.
func parseAnswerForm(r *http.Request, v *validator.Validate) (answerForm, error) {
	if err := r.ParseForm(); err != nil {
		return answerForm{}, fmt.Errorf("parse form: %w", err)
	}
	rawOption := strings.TrimSpace(r.PostForm.Get(render.FieldOption))
	if rawOption == "" {
		return answerForm{}, fmt.Errorf("option is required")
	}
	option, err := strconv.Atoi(rawOption)
	if err != nil {
		return answerForm{}, fmt.Errorf("option %q is not a number", rawOption)
	}
	form := answerForm{
		Kind:   strings.TrimSpace(r.PostForm.Get(render.FieldKind)),
		ID:     strings.TrimSpace(r.PostForm.Get(render.FieldID)),
		Option: option,
		State:  r.PostForm.Get(render.FieldState),
	}
	if err := v.Struct(form); err != nil {
		return answerForm{}, describeValidation(err)
	}
	return form, nil
}

// describeValidation flattens validator errors into one message.
func describeValidation(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid answer: %s", strings.Join(parts, ", "))
}
