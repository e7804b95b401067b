package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"jifdict/domain/journal"
	"jifdict/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	outputPath = ""
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertThenLookup(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("JIF_OUTPUT_FILE", "")

	input := filepath.Join(dir, "jcr.csv")
	require.NoError(t, os.WriteFile(input, []byte("Journal Name,Abbreviated Journal,JIF 2024,JIF Quartile,JIF Rank\nnature,Nat.,50.5,Q1,1/100\n"), 0o644))

	out, err := runCLI(t, "convert", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 journal entries to data.json")
	assert.FileExists(t, filepath.Join(dir, "data.json"))

	out, err = runCLI(t, "lookup", "Nat.")
	require.NoError(t, err)

	var match map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &match))
	assert.Equal(t, "NAT", match["key"])
	assert.Equal(t, "50.5", match["if"])

	_, err = runCLI(t, "lookup", "Unknown", "Letters")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, exitCodeFor(err))
}

func TestRootDefaultsToConvert(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("JIF_OUTPUT_FILE", "")

	input := filepath.Join(dir, "jcr.csv")
	require.NoError(t, os.WriteFile(input, []byte("Journal Name,JIF 2024\nCell,42\n"), 0o644))
	output := filepath.Join(dir, "out", "lookup.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))

	_, err := runCLI(t, input, "--output", output)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestConvertUnsupportedFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("JIF_OUTPUT_FILE", "")

	input := filepath.Join(dir, "jcr.txt")
	require.NoError(t, os.WriteFile(input, []byte("Journal Name,JIF 2024\nCell,42\n"), 0o644))

	_, err := runCLI(t, "convert", input)
	require.Error(t, err)
	assert.Equal(t, ExitDataError, exitCodeFor(err))
	assert.NoFileExists(t, filepath.Join(dir, "data.json"))
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitConfigError, exitCodeFor(errors.ConfigInvalid("bad")))
	assert.Equal(t, ExitDataError, exitCodeFor(errors.LoadFailure("x.csv", fmt.Errorf("boom"))))
	assert.Equal(t, ExitError, exitCodeFor(fmt.Errorf("boom")))
}

type MockLookupSource struct {
	mock.Mock
}

func (m *MockLookupSource) LoadLookup(ctx context.Context, path string) (*journal.Lookup, error) {
	args := m.Called(ctx, path)
	lookup, _ := args.Get(0).(*journal.Lookup)
	return lookup, args.Error(1)
}

func TestLoadMatcherUsesSource(t *testing.T) {
	l := journal.NewLookup()
	l.Put("CELL", journal.Record{ImpactFactor: "42"})

	source := new(MockLookupSource)
	source.On("LoadLookup", mock.Anything, "custom.json").Return(l, nil)

	matcher, err := loadMatcher(context.Background(), source, "custom.json")
	require.NoError(t, err)
	match, ok := matcher.Match("cell")
	require.True(t, ok)
	assert.Equal(t, "42", match.ImpactFactor)
	source.AssertExpectations(t)
}

func TestLookupCommandReadsFromSource(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("JIF_OUTPUT_FILE", "")

	source := new(MockLookupSource)
	source.On("LoadLookup", mock.Anything, "data.json").
		Return(nil, errors.LoadFailure("data.json", os.ErrNotExist))

	previous := lookupSource
	lookupSource = source
	t.Cleanup(func() { lookupSource = previous })

	_, err := runCLI(t, "lookup", "Cell")
	require.Error(t, err)
	assert.Equal(t, ExitDataError, exitCodeFor(err))
	source.AssertExpectations(t)
}
