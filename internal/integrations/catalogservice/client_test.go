package catalogservice

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

func TestClient_GetServiceProfessionals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/services/42/professionals":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"service": {"id": 42, "name": "Consulta", "duration_minutes": 30},
				"professionals": [
					{"professional_id": 7, "name": "Ana"},
					{"professional_id": 8, "name": "Bruno", "duration_minutes": 45}
				]
			}`))
		case "/internal/services/404/professionals":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())

	result, err := client.GetServiceProfessionals(context.Background(), 42)
	require.NoError(t, err)

	service, professionals := result.ToDomain()
	assert.Equal(t, 30, service.DurationMinutes)
	require.Len(t, professionals, 2)
	assert.Equal(t, 30, professionals[0].DurationMinutes)
	assert.Equal(t, 45, professionals[1].DurationMinutes)

	_, err = client.GetServiceProfessionals(context.Background(), 404)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = client.GetServiceProfessionals(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
