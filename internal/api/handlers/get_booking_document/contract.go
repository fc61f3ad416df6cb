package get_booking_document

import (
	"context"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/documents"
)

type DocumentService interface {
	Generate(ctx context.Context, id int64, kind documents.Kind) (*documents.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
