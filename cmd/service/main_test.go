package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		v := new(slog.LevelVar)
		setLogLevel(in, v)
		assert.Equal(t, want, v.Level(), in)
	}
}

func TestSyncCmd_RequiresUsername(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sync"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	err := root.Execute()

	assert.EqualError(t, err, "accepts 1 arg(s), received 0")
}

func TestSyncCmd_RejectsBlankUsername(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sync", "   "})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	err := root.Execute()

	assert.ErrorContains(t, err, "GitHub username is required")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "sync", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
