package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"imf-gadget-api/internal/app"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/transport/http/middleware"
)

const testSecret = "handler-test-secret"

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.UserName]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.UserName] = &copied
	return nil
}

func (f *fakeUserRepo) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	user, ok := f.users[userName]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authService := app.NewAuthService(newFakeUserRepo(), testSecret, 24*time.Hour)
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(testSecret), authHandler.Me)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_EmptyFieldCombinations(t *testing.T) {
	router := newAuthRouter()

	bodies := []string{
		`{"userName": "", "password": ""}`,
		`{"userName": "agent", "password": ""}`,
		`{"userName": "", "password": "pw"}`,
		`{}`,
	}
	for _, body := range bodies {
		rec := postJSON(router, "/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp, "error", "body: %s", body)
	}
}

func TestRegister_Success(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/register", `{"userName": "test_user007", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "user")
	assert.Contains(t, resp, "token")

	var user map[string]any
	require.NoError(t, json.Unmarshal(resp["user"], &user))
	assert.Equal(t, "test_user007", user["userName"])
	// Hash never leaves the server.
	assert.NotContains(t, user, "password")
}

func TestRegister_DuplicateUserName(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/register", `{"userName": "duplicateUser", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/auth/register", `{"userName": "duplicateUser", "password": "password123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestRegister_TokenOpensTheGate(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/register", `{"userName": "gatecheck", "password": "pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)
	require.Equal(t, http.StatusOK, meRec.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &me))
	assert.Equal(t, "gatecheck", me["userName"])
}

func TestLogin_Success(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/register", `{"userName": "agent", "password": "topsecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/auth/login", `{"userName": "agent", "password": "topsecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "token")
}

func TestLogin_BadCredentials(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/register", `{"userName": "agent", "password": "topsecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/auth/login", `{"userName": "agent", "password": "nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
