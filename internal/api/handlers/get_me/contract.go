package get_me

import (
	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth/models"
)

type AuthService interface {
	Me(email string) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
