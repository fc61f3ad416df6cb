package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается при некорректном или просроченном токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInvalidInput возвращается при пустых полях запроса
	ErrInvalidInput = errors.New("auth: invalid input")

	// ErrInternal возвращается при ошибке подписи токена
	ErrInternal = errors.New("auth: internal error")
)
