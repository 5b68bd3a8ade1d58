package adapter

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/handler"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/session"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// startTestDaemon runs the real handler stack on a unix socket, giving the
// client a faithful endpoint without spawning a process.
func startTestDaemon(t *testing.T) config.Daemon {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Daemon{
		SocketPath:     filepath.Join(dir, "envkeeper.sock"),
		PIDFile:        filepath.Join(dir, "envkeeper.pid"),
		ProbeTimeout:   250 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
	}

	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).AnyTimes()
	p.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).AnyTimes()

	files := store.New(filepath.Join(dir, "secrets.enc"), p)
	sess := session.New(files, logger.Nop())
	require.NoError(t, sess.Unlock())

	h := handler.NewHandler(sess, func() {}, logger.Nop())
	srv := &http.Server{Handler: h.Init()}

	ln, err := net.Listen("unix", cfg.SocketPath)
	require.NoError(t, err)
	go srv.Serve(ln)
	t.Cleanup(func() { srv.Shutdown(context.Background()) })

	return cfg
}

func TestIPCClient_Reachable(t *testing.T) {
	cfg := startTestDaemon(t)
	client := NewIPCClient(cfg)
	assert.True(t, client.Reachable())

	nobody := NewIPCClient(config.Daemon{
		SocketPath:   filepath.Join(t.TempDir(), "absent.sock"),
		ProbeTimeout: 100 * time.Millisecond,
	})
	assert.False(t, nobody.Reachable())
}

func TestIPCClient_RoundTrip(t *testing.T) {
	client := NewIPCClient(startTestDaemon(t))
	ctx := context.Background()

	msg, err := client.Add(ctx, "TOKEN", "abc")
	require.NoError(t, err)
	assert.Equal(t, "Added secret: TOKEN", msg)

	v, err := client.Get(ctx, "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	keys, err := client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"TOKEN"}, keys)

	secrets, err := client.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Secret{{Key: "TOKEN", Value: "abc"}}, secrets)

	st, err := client.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionUnlocked, st.State)
	assert.Equal(t, 1, st.SecretCount)

	msg, err = client.Remove(ctx, "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "Removed secret: TOKEN", msg)

	keys, err = client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestIPCClient_KeysWithURLMetacharacters(t *testing.T) {
	client := NewIPCClient(startTestDaemon(t))
	ctx := context.Background()

	// "A" is the decoy a truncated or re-split URL would resolve to.
	_, err := client.Add(ctx, "A", "decoy")
	require.NoError(t, err)

	hostile := []string{"A?x", "A/x", "A x", "A%2Fx", "A#x", "A&x=1"}
	for _, key := range hostile {
		_, err := client.Add(ctx, key, "value of "+key)
		require.NoError(t, err, key)
	}

	for _, key := range hostile {
		v, err := client.Get(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, "value of "+key, v, key)
	}

	msg, err := client.Remove(ctx, "A?x")
	require.NoError(t, err)
	assert.Equal(t, "Removed secret: A?x", msg)

	// Exactly that key is gone; the decoy and its neighbours survive.
	keys, err := client.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, keys, "A?x")
	assert.Contains(t, keys, "A")
	assert.Contains(t, keys, "A/x")
	assert.Contains(t, keys, "A%2Fx")

	v, err := client.Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "decoy", v)
}

func TestIPCClient_ErrorMapping(t *testing.T) {
	client := NewIPCClient(startTestDaemon(t))
	ctx := context.Background()

	_, err := client.Get(ctx, "ABSENT")
	require.ErrorIs(t, err, store.ErrSecretNotFound)

	_, err = client.Remove(ctx, "ABSENT")
	require.ErrorIs(t, err, store.ErrSecretNotFound)

	_, err = client.Add(ctx, "", "value")
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestIPCClient_Stop(t *testing.T) {
	client := NewIPCClient(startTestDaemon(t))

	msg, err := client.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Daemon shutting down", msg)
}
