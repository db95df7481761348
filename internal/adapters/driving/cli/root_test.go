package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "rfcdex [rfc-number]", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "read")
	assert.Contains(t, names, "search")
	assert.Contains(t, names, "bookmarks")
	assert.Contains(t, names, "latest")
	assert.Contains(t, names, "sync")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "fetch")
	assert.Contains(t, names, "mcp")
	assert.Contains(t, names, "version")
}

func TestRootCmd_NumericArgReadsDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "7540")

	require.NoError(t, err)
	assert.Contains(t, out, "Hypertext Transfer Protocol Version 2")
	assert.Contains(t, out, "Category: Standards Track")
	assert.Contains(t, out, "HTTP/2 enables multiplexing.")
}

func TestRootCmd_NonNumericArgFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "http2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"http2" is not an RFC number`)
}

func TestRootCmd_UnknownNumberFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "99999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC 99999 is not in the local corpus")
}

func TestRootCmd_StaleCorpusTriggersRefresh(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	scheduler := &stubScheduler{stale: true}
	syncScheduler = scheduler

	out, err := execute(t, "7540")

	require.NoError(t, err)
	assert.Equal(t, 1, scheduler.refreshed)
	assert.Contains(t, out, "refreshing")
}

func TestRootCmd_OfflineSkipsRefresh(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	scheduler := &stubScheduler{stale: true}
	syncScheduler = scheduler

	_, err := execute(t, "--offline", "7540")
	defer func() { offline = false }()

	require.NoError(t, err)
	assert.Equal(t, 0, scheduler.refreshed)
}

func TestRootCmd_RefreshFailureDoesNotBlockRead(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	syncScheduler = &stubScheduler{stale: true, refreshErr: assert.AnError}

	out, err := execute(t, "7540")

	require.NoError(t, err)
	assert.Contains(t, out, "Refresh failed")
	assert.Contains(t, out, "HTTP/2 enables multiplexing.")
}
