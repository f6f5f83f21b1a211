package statsservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func TestClient_GetOccupancy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/professionals/occupancy", r.URL.Path)
		_, _ = w.Write([]byte(`{"professionals": [
			{"professional_id": 7, "booked": 3, "total": 10, "percentage": 30, "bookings_today": 1, "bookings_next_7_days": 3}
		]}`))
	}))
	defer srv.Close()

	snapshot, err := NewClient(srv.URL, time.Second, logger.NewNop()).GetOccupancy(context.Background())
	require.NoError(t, err)

	require.Contains(t, snapshot, int64(7))
	assert.Equal(t, 10, snapshot[7].Total)
	assert.Equal(t, 3, snapshot[7].BookingsNext7Days)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, logger.NewNop()).GetOccupancy(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
