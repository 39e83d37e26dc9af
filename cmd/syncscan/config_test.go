package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kb2gnd/syncframe/syncconfig"
)

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	contents := "width: 32\nmode: single\ncomparator: exact\nsyncword: 1ACFFC1D\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	spec, err := loadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, syncconfig.Width32, spec.Width)
	assert.Equal(t, syncconfig.ModeSingle, spec.Mode)
	assert.Equal(t, syncconfig.KindExact, spec.Comparator)
	assert.Equal(t, "1ACFFC1D", spec.Syncword)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := loadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
