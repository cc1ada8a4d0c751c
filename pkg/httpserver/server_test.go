package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadcraft/platform/pkg/httpserver"
)

func TestServer_Run(t *testing.T) {
	t.Run("shuts down when context is cancelled", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("fails on an unusable address", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr("256.256.256.256:99999"))

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Run("liveness answers ALIVE", func(t *testing.T) {
		handler := httpserver.HealthCheckHandler(nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("readiness answers READY when checks pass", func(t *testing.T) {
		handler := httpserver.HealthCheckHandler(nil,
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("readiness answers NOT_READY on failure", func(t *testing.T) {
		handler := httpserver.HealthCheckHandler(nil,
			func(context.Context) error { return errors.New("db down") },
		)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "NOT_READY", w.Body.String())
	})
}
