// Package csvfmt renders rows in the one CSV dialect the converter emits:
// comma separated, fields quoted with '"' only when needed, quotes doubled
// inside fields, rows separated by "\n" and no newline after the last row.
package csvfmt

import (
	"io"
	"strings"
)

const (
	separator  = ","
	terminator = "\n"
)

// Escape returns field in its CSV form. Quotes are doubled unconditionally;
// the result is wrapped in quotes when field contains a comma, quote,
// carriage return or line feed.
func Escape(field string) string {
	escaped := strings.ReplaceAll(field, `"`, `""`)
	if strings.ContainsAny(field, ",\"\r\n") {
		return `"` + escaped + `"`
	}

	return escaped
}

// FormatRow escapes every field and joins them with the separator.
func FormatRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}

	return strings.Join(escaped, separator)
}

// Writer writes a header and rows to an underlying io.Writer.
type Writer struct {
	w    io.Writer
	rows int
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes names verbatim; header cells are never escaped.
// It must be called before any Write.
func (w *Writer) WriteHeader(names []string) error {
	return w.writeLine(strings.Join(names, separator))
}

// Write writes one escaped row.
func (w *Writer) Write(fields []string) error {
	return w.writeLine(FormatRow(fields))
}

// Rows returns the number of lines written so far, header included.
func (w *Writer) Rows() int {
	return w.rows
}

func (w *Writer) writeLine(line string) error {
	if w.rows > 0 {
		line = terminator + line
	}

	if _, err := io.WriteString(w.w, line); err != nil {
		return err
	}

	w.rows++

	return nil
}

// Serialize renders a header and rows into one string.
func Serialize(header []string, rows [][]string) string {
	var sb strings.Builder

	w := NewWriter(&sb)
	_ = w.WriteHeader(header) // strings.Builder never fails

	for _, row := range rows {
		_ = w.Write(row)
	}

	return sb.String()
}
