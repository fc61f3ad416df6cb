package models

import "time"

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminResponse текущий администратор
type AdminResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
