package control

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// unix socket paths are limited to ~100 bytes, t.TempDir can be longer
func shortSocketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "ezo")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "c.sock")
}

type recorder struct {
	lock  sync.Mutex
	lines []string
}

func (r *recorder) handle(line string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.lines = append(r.lines, line)
	if line == "bad>>" {
		return errors.New("unknown event")
	}
	return nil
}

func (r *recorder) got() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.lines...)
}

func startServer(t *testing.T) (string, *recorder) {
	t.Helper()
	path := shortSocketPath(t)

	server, err := Listen(path, zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, rec.handle)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
		server.Close()
	})

	return path, rec
}

func TestSendRoundTrip(t *testing.T) {
	path, rec := startServer(t)

	require.NoError(t, Send(path, "layer>>3"))

	err := Send(path, "bad>>")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "unknown event")

	assert.Equal(t, []string{"layer>>3", "bad>>"}, rec.got())
}

func TestClientSendsSeveralLines(t *testing.T) {
	path, rec := startServer(t)

	client, err := Connect(path)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Send("next>>"))
	require.NoError(t, client.Send("prev>>"))
	require.NoError(t, client.Send("toggle>>"))

	assert.Equal(t, []string{"next>>", "prev>>", "toggle>>"}, rec.got())
}

func TestConnectNotRunning(t *testing.T) {
	_, err := Connect(shortSocketPath(t))
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestListenRefusesLiveSocket(t *testing.T) {
	path, _ := startServer(t)

	_, err := Listen(path, zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := shortSocketPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0600))

	server, err := Listen(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, path, server.Path())
	assert.NoError(t, server.Close())
}

func TestSocketPathOverride(t *testing.T) {
	t.Setenv(socketEnv, "/tmp/custom.sock")

	path, err := SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.sock", path)
}
