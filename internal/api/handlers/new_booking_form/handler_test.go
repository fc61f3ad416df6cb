package new_booking_form

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
)

type stubService struct{}

func (stubService) NewForm() *models.FormResponse {
	return models.FromFormState(bookingform.New())
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(stubService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/form", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Form   map[string]interface{} `json:"form"`
		Totals map[string]string      `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Nepalese", resp.Form["nationality"])
	assert.Equal(t, "0.00", resp.Totals["grandTotal"])
	assert.NotContains(t, resp.Form, "id")
}
