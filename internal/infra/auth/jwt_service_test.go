package auth

import (
	"strings"
	"testing"
	"time"

	"pawsconnect/config"
	"pawsconnect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	return &jwtService{secret: "test-secret", ttl: ttl}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	token, err := svc.Issue(42, entity.RoleBreeder)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleBreeder, claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.Issue(7, entity.RoleAdopter)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	token, err := svc.Issue(7, entity.RoleAdopter)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, time.Minute)
	verifier := &jwtService{secret: "another-secret", ttl: time.Minute}

	token, err := issuer.Issue(7, entity.RoleAdopter)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTService_TTLFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Issue(1, entity.RoleAdopter)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}
