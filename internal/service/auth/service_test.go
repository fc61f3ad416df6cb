package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func newService(t *testing.T) (*Service, *fixedTime) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	clock := &fixedTime{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	svc := NewService(Config{
		AdminEmail:        "admin@skytrips.test",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		Issuer:            "skytrips-admin",
	}, nopLogger{})
	svc.timeProvider = clock
	return svc, clock
}

func TestLoginAndParseToken(t *testing.T) {
	svc, clock := newService(t)

	resp, err := svc.Login(&models.LoginRequest{Email: " Admin@SkyTrips.test ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, clock.t.Add(time.Hour), resp.ExpiresAt)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@skytrips.test", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLogin_Rejects(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(&models.LoginRequest{Email: "admin@skytrips.test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&models.LoginRequest{Email: "other@skytrips.test", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&models.LoginRequest{Email: "", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseToken_Expired(t *testing.T) {
	svc, clock := newService(t)

	resp, err := svc.Login(&models.LoginRequest{Email: "admin@skytrips.test", Password: "s3cret"})
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = svc.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, _ := newService(t)
	resp, err := svc.Login(&models.LoginRequest{Email: "admin@skytrips.test", Password: "s3cret"})
	require.NoError(t, err)

	other, _ := newService(t)
	other.cfg.JWTSecret = "another-secret"
	_, err = other.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Me("admin@skytrips.test")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)

	_, err = svc.Me("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
