package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-csv/internal/document"
)

func field(t *testing.T, input, key string) document.Value {
	t.Helper()

	doc, err := document.Parse([]byte(input))
	require.NoError(t, err)

	v, err := doc.Root().Find(key)
	require.NoError(t, err)

	return v
}

func TestTransformRegistry(t *testing.T) {
	r := NewTransformRegistry()
	assert.False(t, r.Has("history"))
	assert.Nil(t, r.Get("history"))

	r.Add("upper", func(document.Value) (string, error) { return "X", nil })
	r.Add("history", FormatHistory)

	assert.True(t, r.Has("history"))
	assert.NotNil(t, r.Get("upper"))
	assert.Equal(t, []string{"history", "upper"}, r.Names())

	assert.Equal(t, []string{"history"}, DefaultRegistry().Names())
}

func TestFormatHistory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "absent",
			input: `{}`,
			want:  "[]",
		},
		{
			name:  "null",
			input: `{"h":null}`,
			want:  "[]",
		},
		{
			name:  "falsy",
			input: `{"h":false}`,
			want:  "[]",
		},
		{
			name:  "empty string",
			input: `{"h":""}`,
			want:  "[]",
		},
		{
			name:  "empty",
			input: `{"h":[]}`,
			want:  "[]",
		},
		{
			name:  "single entry",
			input: `{"h":[{"date":"2023-01-01","type":"Inspect","description":"fine"}]}`,
			want:  "[2023-01-01 Inspect: fine]",
		},
		{
			name: "several entries keep order and raw text",
			input: `{"h":[
				{"date":"2023-01-01","type":"Inspect","description":"fine, \"really\""},
				{"date":"2023-06-01","type":"Repair","description":"seal"}
			]}`,
			want: `[2023-01-01 Inspect: fine, "really" | 2023-06-01 Repair: seal]`,
		},
		{
			name:  "missing and non-string entry fields",
			input: `{"h":[{"date":20230101,"type":null}]}`,
			want:  "[20230101 : ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatHistory(field(t, tt.input, "h"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHistory_WrongShape(t *testing.T) {
	_, err := FormatHistory(field(t, `{"h":"yesterday"}`, "h"))
	assert.EqualError(t, err, `field "h": expected array, got string`)

	_, err = FormatHistory(field(t, `{"h":[{"date":"x"}, 5]}`, "h"))
	assert.EqualError(t, err, `field "h[1]": expected object, got number`)
}
