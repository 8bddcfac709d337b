package document

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required key that is absent or null.
type MissingFieldError struct {
	Path string
	// Suggestions holds sibling keys that look like a misspelling of the missing one.
	Suggestions []string
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("missing required field %q", e.Path)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(quoted, ", "))
}

// TypeError reports a value whose kind does not match what the caller narrowed to.
type TypeError struct {
	Path string
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", displayPath(e.Path), e.Want, e.Got)
}

func displayPath(path string) string {
	if path == "" {
		return "document"
	}

	return fmt.Sprintf("field %q", path)
}
