package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-companion/internal/infra/config"
)

func TestAppRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := &config.Config{Assistant: config.AssistantConfig{Timeout: time.Second}}
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestShutdownGrace(t *testing.T) {
	app := &App{cfg: &config.Config{Assistant: config.AssistantConfig{Timeout: 35 * time.Second}}}
	require.Equal(t, 40*time.Second, app.shutdownGrace())

	app.cfg.Assistant.Timeout = time.Second
	require.Equal(t, 10*time.Second, app.shutdownGrace())
}
