package middleware

import (
	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth"
)

// TokenParser проверяет токен администратора
type TokenParser interface {
	ParseToken(raw string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
