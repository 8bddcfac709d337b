package mapping

import "fmt"

// Table is the root of a column table definition.
type Table struct {
	// Version of the table schema.
	Version string `yaml:"version,omitempty"`

	// Root is the document path of the record sequence.
	Root string `yaml:"root"`

	// Columns lists the output columns in header order.
	Columns []Column `yaml:"columns"`
}

// Column defines one output column.
type Column struct {
	// Name is the header cell.
	Name string `yaml:"name"`

	// Path locates the value relative to a record.
	Path string `yaml:"path"`

	// Default replaces a missing value.
	Default string `yaml:"default,omitempty"`

	// Missing selects which values count as missing.
	Missing MissingPolicy `yaml:"missing,omitempty"`

	// Transform names a registered formatter that renders the value.
	Transform string `yaml:"transform,omitempty"`
}

// MissingPolicy decides which values a column treats as missing.
type MissingPolicy string

const (
	// MissingNull treats absent keys and JSON null as missing.
	MissingNull MissingPolicy = "null"
	// MissingFalsy also treats 0, "" and false as missing.
	MissingFalsy MissingPolicy = "falsy"
)

// IsValid returns true if the policy is a recognized value.
func (p MissingPolicy) IsValid() bool {
	return p == MissingNull || p == MissingFalsy
}

// UnmarshalText rejects unknown policies while decoding.
func (p *MissingPolicy) UnmarshalText(text []byte) error {
	v := MissingPolicy(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown missing policy %q, expected %q or %q", v, MissingNull, MissingFalsy)
	}

	*p = v

	return nil
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}

	return header
}
