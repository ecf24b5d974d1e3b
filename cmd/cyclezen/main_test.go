package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclezen/internal/cli"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func useFileBackend(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "records")
	t.Setenv("CYCLEZEN_STORAGE_BACKEND", "file")
	t.Setenv("CYCLEZEN_STORAGE_PATH", dir)
	t.Setenv("CYCLEZEN_LOG_LEVEL", "error")
	return dir
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	names := []string{}
	for _, command := range root.Commands() {
		names = append(names, command.Name())
	}
	for _, want := range []string{"serve", "export", "clear-data", "insights"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestExportCommandWritesHeaderForEmptyStore(t *testing.T) {
	useFileBackend(t)

	out, err := executeRoot(t, "export")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Date", records[0][0])
}

func TestExportCommandWritesFile(t *testing.T) {
	useFileBackend(t)
	target := filepath.Join(t.TempDir(), "export.csv")

	_, err := executeRoot(t, "export", "--output", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Date,Type,Flow Intensity"))
}

func TestClearDataCommandNeedsYesWithoutTerminal(t *testing.T) {
	useFileBackend(t)
	if cli.StdinIsTerminal() {
		t.Skip("stdin is a terminal")
	}

	_, err := executeRoot(t, "clear-data")
	require.ErrorIs(t, err, cli.ErrClearDataNotConfirmed)

	out, err := executeRoot(t, "clear-data", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All data cleared")
}

func TestInsightsCommandPrintsEmptyReport(t *testing.T) {
	useFileBackend(t)

	out, err := executeRoot(t, "insights")
	require.NoError(t, err)
	assert.Contains(t, out, `"insights": []`)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("CYCLEZEN_STORAGE_BACKEND", "cassette")

	_, err := executeRoot(t, "insights")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
}
