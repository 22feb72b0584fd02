package agents

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all workflows; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// validateInput checks a workflow input struct against its validate tags and
// converts the first violation into an *InputError.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &InputError{
			Field:   first.Field(),
			Message: "failed " + first.Tag() + " constraint",
			Cause:   err,
		}
	}
	return &InputError{Message: "validation failed", Cause: err}
}

// truncate bounds s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// joinSnippets concatenates hit snippets into one prompt context block.
func joinSnippets(parts []string) string {
	return strings.Join(parts, "\n\n")
}
