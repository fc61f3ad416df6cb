package list_customers

import (
	"context"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, req *models.ListCustomersRequest) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
