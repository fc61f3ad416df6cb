package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth/models"
)

const (
	// RoleAdmin единственная роль панели
	RoleAdmin = "admin"

	tokenType = "Bearer"
)

// Config параметры входа
type Config struct {
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	Issuer            string
}

// Claims содержимое токена администратора
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Service вход администратора и проверка токенов
type Service struct {
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(cfg Config, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login сверяет email и пароль с настроенными и выдаёт токен
func (s *Service) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	if !strings.EqualFold(email, s.cfg.AdminEmail) {
		s.logger.Warn("Login: unknown email %s", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := Claims{
		Email: s.cfg.AdminEmail,
		Role:  RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   s.cfg.AdminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin %s logged in", s.cfg.AdminEmail)
	return &models.LoginResponse{
		Token:     token,
		TokenType: tokenType,
		ExpiresAt: expiresAt,
	}, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || !strings.EqualFold(claims.Email, s.cfg.AdminEmail) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Me текущий администратор по email из токена
func (s *Service) Me(email string) (*models.AdminResponse, error) {
	if email == "" {
		return nil, ErrInvalidToken
	}
	return &models.AdminResponse{Email: email, Role: RoleAdmin}, nil
}
