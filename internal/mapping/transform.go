package mapping

import (
	"fmt"
	"slices"
	"strings"

	"equipment-csv/internal/document"
)

// TransformFunc renders a raw value as cell text. The value may be absent.
type TransformFunc func(v document.Value) (string, error)

// TransformRegistry holds transforms by name.
type TransformRegistry struct {
	transforms map[string]TransformFunc
}

// NewTransformRegistry creates a new empty transform registry.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{
		transforms: make(map[string]TransformFunc),
	}
}

// DefaultRegistry returns a registry with the built-in transforms.
func DefaultRegistry() *TransformRegistry {
	r := NewTransformRegistry()
	r.Add("history", FormatHistory)

	return r
}

// Add adds a transform to the registry, replacing any previous one with the same name.
func (r *TransformRegistry) Add(name string, fn TransformFunc) {
	r.transforms[name] = fn
}

// Get returns a transform by name, or nil if not found.
func (r *TransformRegistry) Get(name string) TransformFunc {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *TransformRegistry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *TransformRegistry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// FormatHistory renders a maintenance history sequence as
// "[<date> <type>: <description> | ...]". A history that is not Truthy
// (absent, null, false, 0, "") renders as "[]".
// Entry fields are not escaped here; the whole cell is escaped once on output.
func FormatHistory(v document.Value) (string, error) {
	if !v.Truthy() {
		return "[]", nil
	}

	entries, err := v.Array()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(entries))

	for _, entry := range entries {
		obj, err := entry.Object()
		if err != nil {
			return "", err
		}

		parts = append(parts, fmt.Sprintf("%s %s: %s",
			obj.Get("date").Text(), obj.Get("type").Text(), obj.Get("description").Text()))
	}

	return "[" + strings.Join(parts, " | ") + "]", nil
}
