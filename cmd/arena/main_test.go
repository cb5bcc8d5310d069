package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServesUntilCanceled(t *testing.T) {
	dir := t.TempDir()
	// The configured address is unusable, so serving proves -addr won.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arena.yaml"), []byte("addr: \"127.0.0.1:99999\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addrs := make(chan net.Addr, 1)
	errs := make(chan error, 1)
	var logs bytes.Buffer
	go func() {
		errs <- run(ctx, []string{"-config", dir, "-addr", "127.0.0.1:0", "-ai", "reinforcement"}, &logs, func(a net.Addr) { addrs <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrs:
	case err := <-errs:
		t.Fatalf("run exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("arena did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errs:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("arena did not shut down")
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, run(ctx, []string{"-bogus"}, &bytes.Buffer{}, nil))
	assert.Error(t, run(ctx, []string{"-addr", "127.0.0.1:0", "-ai", "oracle"}, &bytes.Buffer{}, nil))
	assert.Error(t, run(ctx, []string{"-addr", "127.0.0.1:99999"}, &bytes.Buffer{}, nil))
}
