package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imf-gadget-api/internal/pkg/jwtutil"
)

const testSecret = "middleware-test-secret"

func newGatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthJWT(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet(ContextUserIDKey),
			"username": c.MustGet(ContextUsernameKey),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	router := newGatedRouter(t)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No token provided", body["message"])
}

func TestAuthJWT_NonBearerScheme(t *testing.T) {
	router := newGatedRouter(t)

	rec := doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_GarbageToken(t *testing.T) {
	router := newGatedRouter(t)

	rec := doRequest(router, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	router := newGatedRouter(t)

	token, err := jwtutil.GenerateToken(testSecret, -1*time.Minute, 9, "expired")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	router := newGatedRouter(t)

	token, err := jwtutil.GenerateToken("some-other-secret", time.Hour, 9, "forged")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthJWT_ValidTokenAttachesIdentity(t *testing.T) {
	router := newGatedRouter(t)

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, 7, "ethan.hunt")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UserID   uint   `json:"user_id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.UserID)
	assert.Equal(t, "ethan.hunt", body.Username)
}
