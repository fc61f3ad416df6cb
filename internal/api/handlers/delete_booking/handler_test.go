package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(bookings.ErrBookingNotFound)
	svc.On("Delete", mock.Anything, int64(3)).Return(errors.New("fk violation"))
	h := NewHandler(svc, nopLogger{})

	tests := []struct {
		id         string
		wantStatus int
	}{
		{id: "1", wantStatus: http.StatusNoContent},
		{id: "2", wantStatus: http.StatusNotFound},
		{id: "3", wantStatus: http.StatusInternalServerError},
		{id: "abc", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+tt.id, nil), map[string]string{"id": tt.id})
			w := httptest.NewRecorder()
			h.Handle(w, r)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
