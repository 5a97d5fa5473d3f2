package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	content, err := exporter.Render(Dataset{
		Headers: []string{"Assessment", "Weighted"},
		Rows: []map[string]string{
			{"Assessment": "Final", "Weighted": "42.00"},
			{"Assessment": "Total", "Weighted": "42.00"},
		},
	}, "CS101 Intro to Computing (2026 Term 1)")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.Render(Dataset{}, "empty")
	require.Error(t, err)
}
