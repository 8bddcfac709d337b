package convert

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-csv/internal/document"
	"equipment-csv/internal/mapping"
)

func parseDoc(t *testing.T, input string) *document.Document {
	t.Helper()

	doc, err := document.Parse([]byte(input))
	require.NoError(t, err)

	return doc
}

func wrapList(list string) string {
	return `{"ProcessEquipmentDataPrimaryScope":{"EquipmentList":` + list + `}}`
}

func defaultMapper(t *testing.T) *Mapper {
	t.Helper()

	m, err := DefaultMapper()
	require.NoError(t, err)

	return m
}

func TestMapper_Header(t *testing.T) {
	assert.Equal(t, []string{
		"EquipmentID", "EquipmentName", "Manufacturer", "Model", "Capacity",
		"Length", "Width", "Height", "Weight", "Notes", "MaintenanceHistory",
	}, defaultMapper(t).Header())
}

func TestMapper_Map(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{
			name: "full record",
			record: `{"EquipmentID":"E1","EquipmentName":"Pump, Big","Manufacturer":"Acme","Model":"X-1",
				"Capacity":250,"Dimensions":{"Length":10,"Width":5,"Height":2},"Weight":100,"Notes":"ok",
				"MaintenanceHistory":[{"date":"2023-01-01","type":"Inspect","description":"fine"}]}`,
			want: []string{"E1", "Pump, Big", "Acme", "X-1", "250", "10", "5", "2", "100", "ok", "[2023-01-01 Inspect: fine]"},
		},
		{
			name:   "empty record",
			record: `{}`,
			want:   []string{"", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "missing dimensions",
			record: `{"EquipmentID":"E2"}`,
			want:   []string{"E2", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "null scalars",
			record: `{"EquipmentID":null,"Notes":null,"Weight":null,"Dimensions":null,"MaintenanceHistory":null}`,
			want:   []string{"", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "falsy containers count as empty",
			record: `{"EquipmentID":"E3","Dimensions":false,"MaintenanceHistory":0}`,
			want:   []string{"E3", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "empty string dimensions",
			record: `{"Dimensions":""}`,
			want:   []string{"", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "partial dimensions",
			record: `{"Dimensions":{"Width":3.5}}`,
			want:   []string{"", "", "", "", "", "", "3.5", "", "", "", "[]"},
		},
		{
			name:   "falsy dimensions render empty",
			record: `{"Dimensions":{"Length":0,"Width":"","Height":false}}`,
			want:   []string{"", "", "", "", "", "", "", "", "", "", "[]"},
		},
		{
			name:   "falsy direct scalars are kept",
			record: `{"Capacity":0,"Weight":false,"Notes":""}`,
			want:   []string{"", "", "", "", "0", "", "", "", "false", "", "[]"},
		},
		{
			name:   "non-scalar values render as JSON",
			record: `{"Notes":{"a":1},"Model":["x","y"]}`,
			want:   []string{"", "", "", `["x","y"]`, "", "", "", "", "", `{"a":1}`, "[]"},
		},
		{
			name:   "unknown keys are ignored",
			record: `{"EquipmentID":"E3","Extra":"ignored"}`,
			want:   []string{"E3", "", "", "", "", "", "", "", "", "", "[]"},
		},
	}

	m := defaultMapper(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := m.Map(parseDoc(t, wrapList("["+tt.record+"]")))
			require.NoError(t, err)
			require.Len(t, rows, 1, spew.Sdump(rows))
			assert.Equal(t, tt.want, rows[0])
		})
	}
}

func TestMapper_Map_PreservesOrder(t *testing.T) {
	rows, err := defaultMapper(t).Map(parseDoc(t, wrapList(`[{"EquipmentID":"B"},{"EquipmentID":"A"},{"EquipmentID":"B"}]`)))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "B", rows[0][0])
	assert.Equal(t, "A", rows[1][0])
	assert.Equal(t, "B", rows[2][0])
}

func TestMapper_Map_EmptyList(t *testing.T) {
	rows, err := defaultMapper(t).Map(parseDoc(t, wrapList(`[]`)))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMapper_Map_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing scope",
			input:   `{"Other":{}}`,
			wantErr: `missing required field "ProcessEquipmentDataPrimaryScope"`,
		},
		{
			name:    "missing list",
			input:   `{"ProcessEquipmentDataPrimaryScope":{}}`,
			wantErr: `missing required field "ProcessEquipmentDataPrimaryScope.EquipmentList"`,
		},
		{
			name:    "misspelled scope",
			input:   `{"ProcessEquipmentDataPrimaryscope":{}}`,
			wantErr: `missing required field "ProcessEquipmentDataPrimaryScope" (did you mean "ProcessEquipmentDataPrimaryscope"?)`,
		},
		{
			name:    "null list",
			input:   wrapList(`null`),
			wantErr: `missing required field "ProcessEquipmentDataPrimaryScope.EquipmentList"`,
		},
		{
			name:    "document is not an object",
			input:   `[]`,
			wantErr: `document: expected object, got array`,
		},
		{
			name:    "scope is not an object",
			input:   `{"ProcessEquipmentDataPrimaryScope":"x"}`,
			wantErr: `field "ProcessEquipmentDataPrimaryScope": expected object, got string`,
		},
		{
			name:    "list is not an array",
			input:   wrapList(`{"EquipmentID":"E1"}`),
			wantErr: `field "ProcessEquipmentDataPrimaryScope.EquipmentList": expected array, got object`,
		},
		{
			name:    "record is not an object",
			input:   wrapList(`[{}, 42]`),
			wantErr: `field "ProcessEquipmentDataPrimaryScope.EquipmentList[1]": expected object, got number`,
		},
		{
			name:    "dimensions is not an object",
			input:   wrapList(`[{"Dimensions":"10x5x2"}]`),
			wantErr: `field "ProcessEquipmentDataPrimaryScope.EquipmentList[0].Dimensions": expected object, got string`,
		},
		{
			name:    "history is not an array",
			input:   wrapList(`[{"MaintenanceHistory":{"date":"2023-01-01"}}]`),
			wantErr: `field "ProcessEquipmentDataPrimaryScope.EquipmentList[0].MaintenanceHistory": expected array, got object`,
		},
		{
			name:    "history entry is not an object",
			input:   wrapList(`[{"MaintenanceHistory":["inspected"]}]`),
			wantErr: `field "ProcessEquipmentDataPrimaryScope.EquipmentList[0].MaintenanceHistory[0]": expected object, got string`,
		},
	}

	m := defaultMapper(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Map(parseDoc(t, tt.input))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewMapper_CustomTable(t *testing.T) {
	table := &mapping.Table{
		Version: "1",
		Root:    "Items[]",
		Columns: []mapping.Column{
			{Name: "Id", Path: "Id", Missing: mapping.MissingNull, Default: "unknown"},
			{Name: "Size", Path: "Body.Size", Missing: mapping.MissingFalsy, Default: "-"},
		},
	}

	m, err := NewMapper(table, mapping.DefaultRegistry())
	require.NoError(t, err)

	rows, err := m.Map(parseDoc(t, `{"Items":[{"Id":"a","Body":{"Size":0}},{"Body":{"Size":4}}]}`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "-"}, {"unknown", "4"}}, rows)
	assert.Empty(t, m.Warnings())
}

func TestNewMapper_Warnings(t *testing.T) {
	table := &mapping.Table{
		Version: "1",
		Root:    "Items[]",
		Columns: []mapping.Column{
			{Name: "History", Path: "History[]", Missing: mapping.MissingNull, Transform: "history", Default: "none"},
		},
	}

	m, err := NewMapper(table, mapping.DefaultRegistry())
	require.NoError(t, err)
	require.Len(t, m.Warnings(), 1)
	assert.Equal(t, "unused_default", m.Warnings()[0].Code)
}

func TestNewMapper_InvalidTable(t *testing.T) {
	table := &mapping.Table{
		Version: "1",
		Root:    "Items",
		Columns: []mapping.Column{{Name: "H", Path: "H[]", Missing: mapping.MissingNull, Transform: "nope"}},
	}

	_, err := NewMapper(table, mapping.DefaultRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid column table")
	assert.Contains(t, err.Error(), "root_not_sequence")
	assert.Contains(t, err.Error(), "unknown_transform")
}
