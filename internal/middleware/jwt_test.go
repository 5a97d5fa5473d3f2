package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
)

type noopAuthRepo struct{}

func (noopAuthRepo) FindByEmail(context.Context, string) (*models.User, error) { return nil, nil }
func (noopAuthRepo) FindByID(context.Context, string) (*models.User, error)    { return nil, nil }
func (noopAuthRepo) UpdateLastLogin(context.Context, string, time.Time) error  { return nil }
func (noopAuthRepo) CreateRefreshToken(context.Context, *models.RefreshToken) error {
	return nil
}
func (noopAuthRepo) FindRefreshToken(context.Context, string) (*models.RefreshToken, error) {
	return nil, nil
}
func (noopAuthRepo) RevokeRefreshToken(context.Context, string, time.Time) error { return nil }
func (noopAuthRepo) RevokeUserRefreshTokens(context.Context, string) error       { return nil }

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	now := time.Now().UTC()
	claims := &models.JWTClaims{
		UserID: "u1",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func jwtRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewAuthService(noopAuthRepo{}, nil, nil, service.AuthConfig{
		AccessTokenSecret: "secret",
		AccessTokenExpiry: time.Hour,
	})
	router := gin.New()
	router.GET("/protected", JWT(authSvc), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.String(http.StatusOK, claims.UserID)
	})
	return router
}

func TestJWTAcceptsValidBearer(t *testing.T) {
	router := jwtRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if recorder.Body.String() != "u1" {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	router := jwtRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestJWTRejectsForgedToken(t *testing.T) {
	router := jwtRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestJWTRejectsMalformedHeader(t *testing.T) {
	router := jwtRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}
