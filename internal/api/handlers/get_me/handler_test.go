package get_me

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/middleware"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Me(email string) (*models.AdminResponse, error) {
	args := m.Called(email)
	resp, _ := args.Get(0).(*models.AdminResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Me", "admin@skytrips.test").Return(&models.AdminResponse{Email: "admin@skytrips.test", Role: "admin"}, nil)
	h := NewHandler(svc, nopLogger{})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	r = r.WithContext(middleware.WithAdminEmail(r.Context(), "admin@skytrips.test"))
	w := httptest.NewRecorder()
	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.AdminResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.Role)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
