package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSeedValidate_Embedded(t *testing.T) {
	out, err := run(t, "seed", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed data is valid")
	assert.Contains(t, out, "meeting_notes")
}

func TestSeedValidate_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := "tracks:\n  - id: tr-1\n    eventId: ev-missing\n    name: Orphan\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := run(t, "seed", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed data")
}

func TestSchema_RejectsUnknownDirection(t *testing.T) {
	_, err := run(t, "schema", "sideways")
	assert.Error(t, err)
}
