package mapping

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed columns.yaml
var defaultTable []byte

// CurrentVersion is the only table schema version understood.
const CurrentVersion = "1"

// DefaultTable parses the built-in equipment column table.
func DefaultTable() (*Table, error) {
	return Parse(defaultTable)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse column table: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = CurrentVersion
	}

	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Missing == "" {
			col.Missing = MissingNull
		}
	}
}
