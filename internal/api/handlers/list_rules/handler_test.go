package list_rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	professionalID int64
	resp           *models.RuleListResponse
	err            error
}

func (f *fakeService) ListByProfessional(ctx context.Context, professionalID int64) (*models.RuleListResponse, error) {
	f.professionalID = professionalID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/professionals/{professionalId}/availability-rules", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	weekday := 1
	date := "2024-06-10"
	svc := &fakeService{resp: &models.RuleListResponse{Rules: []models.RuleResponse{
		{ID: 1, ProfessionalID: 7, Weekday: &weekday, StartTime: "08:00", EndTime: "12:00", Classification: "disponivel"},
		{ID: 2, ProfessionalID: 7, SpecificDate: &date, StartTime: "10:00", EndTime: "11:00", Classification: "folga"},
	}}}

	rec := serve(svc, "/api/v1/professionals/7/availability-rules")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.professionalID)

	var body struct {
		Rules []map[string]interface{} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rules, 2)

	assert.Equal(t, float64(1), body.Rules[0]["id"])
	assert.Equal(t, float64(7), body.Rules[0]["professionalId"])
	assert.Equal(t, float64(1), body.Rules[0]["weekday"])
	assert.Equal(t, "08:00", body.Rules[0]["startTime"])
	assert.Equal(t, "12:00", body.Rules[0]["endTime"])
	assert.NotContains(t, body.Rules[0], "specificDate")

	assert.Equal(t, "2024-06-10", body.Rules[1]["specificDate"])
	assert.Equal(t, "folga", body.Rules[1]["classification"])
	assert.NotContains(t, body.Rules[1], "weekday")
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	rec := serve(&fakeService{resp: models.FromDomainRuleList(nil)}, "/api/v1/professionals/7/availability-rules")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rules":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/professionals/abc/availability-rules")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidProfessionalID)

	rec = serve(&fakeService{err: rules.ErrInternal}, "/api/v1/professionals/7/availability-rules")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
