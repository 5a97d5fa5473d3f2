package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Dataset{
		Headers: []string{"Student ID", "Score"},
		Rows: []map[string]string{
			{"Student ID": "A2300123X", "Score": "88.50"},
			{"Student ID": "A2300456Y", "Score": ""},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Student ID,Score\nA2300123X,88.50\nA2300456Y,\n", string(content))
}

func TestCSVExporterQuotesCommas(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Dataset{
		Headers: []string{"Name"},
		Rows:    []map[string]string{{"Name": "Tan, Ada"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), `"Tan, Ada"`)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}
