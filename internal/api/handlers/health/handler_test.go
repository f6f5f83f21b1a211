package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func ok(ctx context.Context) error { return nil }

func TestReady(t *testing.T) {
	h := NewHandler(map[string]Pinger{"postgres": PingFunc(ok), "redis": PingFunc(ok)}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewHandler(map[string]Pinger{
		"postgres": PingFunc(ok),
		"redis":    PingFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	}, logger.NewNop())
	rec = httptest.NewRecorder()
	down.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestLive(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil, logger.NewNop()).Live(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
