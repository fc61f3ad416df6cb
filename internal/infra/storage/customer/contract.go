package customer

import (
	"github.com/m04kA/SkyTrips-AdminService/pkg/dbmetrics"
)

// DBExecutor интерфейс для работы с БД (*sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

type rowScanner interface {
	Scan(dest ...interface{}) error
}
