package session

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_ProbeAndStale(t *testing.T) {
	dir := t.TempDir()
	h := Handle{
		SocketPath: filepath.Join(dir, "test.sock"),
		PIDFile:    filepath.Join(dir, "test.pid"),
	}

	assert.False(t, h.Exists())
	assert.False(t, h.Probe(50*time.Millisecond))
	assert.False(t, h.Stale(50*time.Millisecond))

	ln, err := net.Listen("unix", h.SocketPath)
	require.NoError(t, err)

	assert.True(t, h.Exists())
	assert.True(t, h.Probe(time.Second))
	assert.False(t, h.Stale(time.Second))

	// Closing the listener removes the socket file; recreate it to model
	// an unclean shutdown that left the file behind.
	require.NoError(t, ln.Close())
	require.NoError(t, os.WriteFile(h.SocketPath, nil, 0o600))

	assert.True(t, h.Exists())
	assert.False(t, h.Probe(50*time.Millisecond))
	assert.True(t, h.Stale(50*time.Millisecond))

	h.Remove()
	assert.False(t, h.Exists())
}

func TestHandle_PIDFile(t *testing.T) {
	h := Handle{PIDFile: filepath.Join(t.TempDir(), "test.pid")}

	_, err := h.ReadPID()
	require.Error(t, err)
	assert.False(t, h.ProcessAlive())

	require.NoError(t, h.WritePID())

	pid, err := h.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	// This test process is certainly alive.
	assert.True(t, h.ProcessAlive())
}

func TestHandle_MalformedPIDFile(t *testing.T) {
	h := Handle{PIDFile: filepath.Join(t.TempDir(), "test.pid")}
	require.NoError(t, os.WriteFile(h.PIDFile, []byte("not a pid\n"), 0o600))

	_, err := h.ReadPID()
	require.Error(t, err)
	assert.False(t, h.ProcessAlive())
}
