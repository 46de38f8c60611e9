package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		reportGCR, reportStrategies, reportPreservation = "5", nil, "50"
		reportCatalogue, reportOutput, pdfConditions = "", "", nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTextCommand(t *testing.T) {
	out, err := execute(t, "text", "--gcr", "9", "-s", "pipe_bursting", "--preservation", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "General Condition Rating (GCR): 9\n")
	assert.Contains(t, out, "Asset Classification: Good - Routine Maintenance\n")
	assert.Contains(t, out, "Rehabilitation Strategies: Pipe Bursting\n")
	assert.Contains(t, out, "Preservation vs Replacement: 20%\n")
}

func TestTextCommand_UnknownStrategy(t *testing.T) {
	_, err := execute(t, "text", "-s", "demolition")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demolition")
}

func TestPDFCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	_, err := execute(t, "pdf", "--condition", "pipes=3,manholes=8", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFCommand_BadCondition(t *testing.T) {
	tests := [][]string{
		{"pdf", "--condition", "pipes", "-o", filepath.Join(t.TempDir(), "a.pdf")},
		{"pdf", "--condition", "pipes=12", "-o", filepath.Join(t.TempDir(), "b.pdf")},
		{"pdf", "--condition", "bridges=4", "-o", filepath.Join(t.TempDir(), "c.pdf")},
	}
	for _, args := range tests {
		_, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}
