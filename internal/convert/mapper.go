package convert

import (
	"fmt"

	"equipment-csv/internal/diagnostic"
	"equipment-csv/internal/document"
	"equipment-csv/internal/mapping"
)

// Mapper projects the records of a document onto rows of a column table.
type Mapper struct {
	root     mapping.FieldPath
	header   []string
	columns  []column
	warnings []diagnostic.Diagnostic
}

type column struct {
	name      string
	path      mapping.FieldPath
	def       string
	missing   mapping.MissingPolicy
	transform mapping.TransformFunc
}

// NewMapper validates table against registry and compiles it.
func NewMapper(table *mapping.Table, registry *mapping.TransformRegistry) (*Mapper, error) {
	diags := mapping.Validate(table, registry)
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid column table: %w", err)
	}

	m := &Mapper{
		root:     mapping.MustParsePath(table.Root),
		header:   table.Header(),
		columns:  make([]column, 0, len(table.Columns)),
		warnings: diags.Warnings,
	}

	for _, col := range table.Columns {
		c := column{
			name:    col.Name,
			path:    mapping.MustParsePath(col.Path),
			def:     col.Default,
			missing: col.Missing,
		}
		if col.Transform != "" {
			c.transform = registry.Get(col.Transform)
		}

		m.columns = append(m.columns, c)
	}

	return m, nil
}

// DefaultMapper returns a Mapper for the built-in equipment table.
func DefaultMapper() (*Mapper, error) {
	table, err := mapping.DefaultTable()
	if err != nil {
		return nil, err
	}

	return NewMapper(table, mapping.DefaultRegistry())
}

// Warnings returns the non-fatal diagnostics found while validating the table.
func (m *Mapper) Warnings() []diagnostic.Diagnostic {
	return m.warnings
}

// Header returns the header cells in column order.
func (m *Mapper) Header() []string {
	return m.header
}

// Records returns the record sequence of doc.
// The root path must be present and lead to an array.
func (m *Mapper) Records(doc *document.Document) ([]document.Value, error) {
	list, err := doc.Root().Require(m.root.Names()...)
	if err != nil {
		return nil, err
	}

	return list.Array()
}

// Map returns one unescaped row per record, in document order.
func (m *Mapper) Map(doc *document.Document) ([][]string, error) {
	records, err := m.Records(doc)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))

	for _, record := range records {
		row, err := m.Row(record)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Row projects a single record. The record must be an object.
func (m *Mapper) Row(record document.Value) ([]string, error) {
	if _, err := record.Object(); err != nil {
		return nil, err
	}

	row := make([]string, len(m.columns))

	for i, col := range m.columns {
		cell, err := col.render(record)
		if err != nil {
			return nil, err
		}

		row[i] = cell
	}

	return row, nil
}

func (c *column) render(record document.Value) (string, error) {
	v, err := record.Find(c.path.Names()...)
	if err != nil {
		return "", err
	}

	if c.transform != nil {
		return c.transform(v)
	}

	if c.isMissing(v) {
		return c.def, nil
	}

	return v.Text(), nil
}

func (c *column) isMissing(v document.Value) bool {
	if c.missing == mapping.MissingFalsy {
		return !v.Truthy()
	}

	return v.IsAbsent()
}
