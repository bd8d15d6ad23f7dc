package cmd

import (
	"testing"

	"github.com/gnames/inatrank/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{
		"load", "stats", "images", "iqa", "rank", "report",
	} {
		assert.True(t, names[name], name)
	}
}

func TestApplySubsetFlags(t *testing.T) {
	cfg = config.New()
	require.NoError(t, reportCmd.Flags().Set("top", "25"))
	applySubsetFlags(reportCmd)
	assert.Equal(t, 25, cfg.Report.Top)
	assert.Equal(t, 0, cfg.Report.Bottom)

	require.NoError(t, reportCmd.Flags().Set("top", "0"))
}
