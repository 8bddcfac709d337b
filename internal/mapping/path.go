package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// PathSegment is one segment of a field path.
type PathSegment struct {
	// Name is the object key.
	Name string

	// IsSlice indicates the segment addresses a sequence (e.g., "Items[]").
	IsSlice bool
}

// FieldPath represents a parsed field path like "Dimensions.Length".
type FieldPath struct {
	Segments []PathSegment
}

// ParsePath parses a field path string into a FieldPath.
// Supports: "Field", "Nested.Field", "Items[]".
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	var segments []PathSegment

	parts := strings.SplitSeq(path, ".")

	for part := range parts {
		if part == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		isSlice := false
		name := part

		// Check for slice notation
		if strings.HasSuffix(part, "[]") {
			isSlice = true
			name = strings.TrimSuffix(part, "[]")

			if name == "" {
				return FieldPath{}, fmt.Errorf("invalid path %q: slice without field name", path)
			}
		}

		if !isValidIdent(name) {
			return FieldPath{}, fmt.Errorf("invalid path %q: invalid identifier %q", path, name)
		}

		segments = append(segments, PathSegment{
			Name:    name,
			IsSlice: isSlice,
		})
	}

	return FieldPath{Segments: segments}, nil
}

// MustParsePath is like ParsePath but panics on error.
// Use it only for paths known at compile time.
func MustParsePath(path string) FieldPath {
	fp, err := ParsePath(path)
	if err != nil {
		panic(err)
	}

	return fp
}

// String returns the path as a string.
func (p FieldPath) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Name)

		if seg.IsSlice {
			sb.WriteString("[]")
		}
	}

	return sb.String()
}

// Names returns the object keys along the path.
func (p FieldPath) Names() []string {
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		names[i] = seg.Name
	}

	return names
}

// IsEmpty returns true if the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// IsSliceLeaf returns true if the last segment addresses a sequence.
func (p FieldPath) IsSliceLeaf() bool {
	return !p.IsEmpty() && p.Segments[len(p.Segments)-1].IsSlice
}

// HasInnerSlice returns true if any segment but the last addresses a sequence.
func (p FieldPath) HasInnerSlice() bool {
	for i := 0; i < len(p.Segments)-1; i++ {
		if p.Segments[i].IsSlice {
			return true
		}
	}

	return false
}

// isValidIdent checks that a key is a plain identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
