package entrypoint

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestServe_ShutsDownWhenContextIsCancelled(t *testing.T) {
	cfg := &config.Config{
		HTTP:   config.HTTP{Host: "127.0.0.1", Port: 0},
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
	}
	ctx, cancel := context.WithCancel(context.Background())

	shutdownCalled := false
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, http.NotFoundHandler(), cfg, zap.NewNop(), func(context.Context) {
			shutdownCalled = true
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, shutdownCalled)
}

func TestServe_ReportsListenErrors(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := &config.Config{
		HTTP:   config.HTTP{Host: "127.0.0.1", Port: int32(taken.Addr().(*net.TCPAddr).Port)},
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
	}

	err = Serve(context.Background(), http.NotFoundHandler(), cfg, zap.NewNop(), nil)
	assert.ErrorContains(t, err, "listen")
}

func TestRun_RequiresCredentials(t *testing.T) {
	err := Run(context.Background(), &config.Config{}, "test", zap.NewNop())

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{config.EnvServiceDomain, config.EnvAPIKey}, cfgErr.Missing)
}
