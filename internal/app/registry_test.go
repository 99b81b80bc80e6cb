package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerListCoversCommands(t *testing.T) {
	want := []string{
		"batch-fetch",
		"browse",
		"cache-clear",
		"fetch",
		"scan",
		"station-add",
		"station-list",
		"station-remove",
	}
	assert.Equal(t, want, RunnerList())
}

func TestResolveRunnerReturnsFreshInstances(t *testing.T) {
	a, err := ResolveRunner("scan")
	require.NoError(t, err)
	b, err := ResolveRunner("scan")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, "scan", a.Name())
	assert.NotEmpty(t, a.Desc())
}

func TestResolveRunnerUnknown(t *testing.T) {
	_, err := ResolveRunner("no-such-command")
	assert.Error(t, err)

	assert.Panics(t, func() { MustResolveRunner("no-such-command") })
}
