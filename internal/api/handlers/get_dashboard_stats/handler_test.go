package get_dashboard_stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/dashboard/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.StatsResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetStats", mock.Anything).Return(&models.StatsResponse{TotalBookings: 3, Revenue: "735.00"}, nil).Once()
	svc.On("GetStats", mock.Anything).Return(nil, errors.New("db down")).Once()
	h := NewHandler(svc, nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "735.00", resp.Revenue)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
