package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreWorkingDir(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(cwd))
	})
}

func TestChangeWorkingDir(t *testing.T) {
	restoreWorkingDir(t)

	dir := t.TempDir()

	assert.True(t, changeWorkingDir(dir))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestChangeWorkingDir_MissingDirLogsWarning(t *testing.T) {
	restoreWorkingDir(t)
	hook := test.NewGlobal()

	before, err := os.Getwd()
	require.NoError(t, err)

	assert.False(t, changeWorkingDir(filepath.Join(t.TempDir(), "inexistente")))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Error(t, entry.Data[logrus.ErrorKey].(error))
}
