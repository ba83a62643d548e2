//go:build e2e

package helper

import (
	"testing"
	"time"

	"homefix-scheduling/internal/pkg/config"
	pkgjwt "homefix-scheduling/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens the way the identity provider would. The
// service itself only verifies, so tests sign their own.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, userID, role, time.Now().Add(time.Hour))
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, userID, role, time.Now().Add(-time.Hour))
}

func (h *JWTTestHelper) signToken(t *testing.T, userID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()

	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err, "テストトークンの署名に失敗")
	return signed
}
