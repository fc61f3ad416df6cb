package login

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Login", &models.LoginRequest{Email: "admin@skytrips.test", Password: "ok"}).
		Return(&models.LoginResponse{Token: "jwt", TokenType: "Bearer", ExpiresAt: time.Now()}, nil)
	svc.On("Login", &models.LoginRequest{Email: "admin@skytrips.test", Password: "bad"}).
		Return(nil, auth.ErrInvalidCredentials)
	svc.On("Login", &models.LoginRequest{Email: "", Password: "x"}).
		Return(nil, auth.ErrInvalidInput)
	svc.On("Login", &models.LoginRequest{Email: "admin@skytrips.test", Password: "boom"}).
		Return(nil, errors.New("sign failed"))

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "success", body: `{"email":"admin@skytrips.test","password":"ok"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"email":"admin@skytrips.test","password":"bad"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing email", body: `{"email":"","password":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "internal error", body: `{"email":"admin@skytrips.test","password":"boom"}`, wantStatus: http.StatusInternalServerError},
		{name: "malformed body", body: `{"email":`, wantStatus: http.StatusBadRequest},
	}

	h := NewHandler(svc, nopLogger{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
