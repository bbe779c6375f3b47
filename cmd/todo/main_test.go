package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", "/tmp/x.toml", "--api", "http://h/api/todos"}))

	cfg, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.toml", cfg)

	api, err := cmd.Flags().GetString("api")
	require.NoError(t, err)
	assert.Equal(t, "http://h/api/todos", api)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
