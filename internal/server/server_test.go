package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Lifecycle(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := NewHTTPServer(handler, "127.0.0.1:0")
	assert.Equal(t, "127.0.0.1:0", s.Address())

	// grab the actual port via a listener the server will adopt
	layer := &recordingLayer{inner: NewPlainListener()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(layer)
	}()

	var addr string
	require.Eventually(t, func() bool {
		addr = layer.addr()
		return addr != ""
	}, time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	// graceful shutdown surfaces as a clean return from Start
	require.NoError(t, <-errCh)
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), "invalid-address")

	err := s.Start(NewPlainListener())
	require.Error(t, err)
}

type recordingLayer struct {
	inner *PlainListener

	mu       sync.Mutex
	bound string
}

func (r *recordingLayer) Listen(protocol, addr string) (net.Listener, error) {
	l, err := r.inner.Listen(protocol, addr)
	if err == nil {
		r.mu.Lock()
		r.bound = l.Addr().String()
		r.mu.Unlock()
	}
	return l, err
}

func (r *recordingLayer) addr() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound
}
