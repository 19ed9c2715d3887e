package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/http/handlers"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/auth"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/events"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/observability"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/service"
)

const testSecretKey = "registration-secret"

func newTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	logger := zap.NewNop()
	inquiries := repository.NewMemoryInquiryStore()
	admins := repository.NewMemoryAdminStore()
	dispatcher := events.NewInMemoryDispatcher()

	inquiryService := service.NewInquiryService(inquiries, dispatcher, logger)
	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:      "test-secret",
		TokenTTLDays:   7,
		BcryptCost:     bcrypt.MinCost,
		AdminSecretKey: testSecretKey,
	}, admins)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics())
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(inquiries, logger),
		Inquiries:      handlers.NewInquiriesHandler(inquiryService),
		Admin:          handlers.NewAdminHandler(authService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
		Limiter:        nil,
	})
	return app, authService
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func adminToken(t *testing.T, authService *service.AuthService) string {
	t.Helper()
	ctx := context.Background()
	_, err := authService.Register(ctx, "admin", "admin@example.com", "pw123456", testSecretKey)
	require.NoError(t, err)
	_, token, _, err := authService.Login(ctx, "admin@example.com", "pw123456")
	require.NoError(t, err)
	return token
}

func submitInquiry(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doRequest(t, app, "POST", "/api/inquiries", "", map[string]string{
		"name":        "Jane",
		"email":       "jane@example.com",
		"description": "Build me a portfolio",
		"budget":      "$1000",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	id, _ := body["inquiryId"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, "GET", "/api/health", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
	assert.Equal(t, float64(0), body["inquiriesCount"])

	submitInquiry(t, app)
	_, body = doRequest(t, app, "GET", "/api/health", "", nil)
	assert.Equal(t, float64(1), body["inquiriesCount"])
}

func TestSubmitInquiry(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, "POST", "/api/inquiries", "", map[string]string{
		"name":        "Jane",
		"email":       "jane@example.com",
		"description": "Build me a portfolio",
	})
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["inquiryId"])
	assert.Contains(t, body["note"], "temporary storage")
}

func TestSubmitInquiry_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, "POST", "/api/inquiries", "", map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestManagementRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, "GET", "/api/inquiries", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "UNAUTHORIZED", errObj["code"])

	resp, body = doRequest(t, app, "GET", "/api/inquiries", "not-a-jwt", nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	errObj = body["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errObj["code"])
}

func TestAdminRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, "POST", "/api/admin/register", "", map[string]string{
		"username":  "admin",
		"email":     "admin@example.com",
		"password":  "pw123456",
		"secretKey": "wrong",
	})
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/admin/register", "", map[string]string{
		"username":  "admin",
		"email":     "admin@example.com",
		"password":  "pw123456",
		"secretKey": testSecretKey,
	})
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp, body = doRequest(t, app, "POST", "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	admin := body["admin"].(map[string]any)
	assert.Equal(t, "admin", admin["username"])

	resp, _ = doRequest(t, app, "POST", "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestListAndGetInquiries(t *testing.T) {
	app, authService := newTestApp(t)
	token := adminToken(t, authService)
	id := submitInquiry(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/inquiries", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var list []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
	assert.Equal(t, "new", list[0]["status"])

	getResp, body := doRequest(t, app, "GET", "/api/inquiries/"+id, token, nil)
	assert.Equal(t, nethttp.StatusOK, getResp.StatusCode)
	assert.Equal(t, "Jane", body["name"])
	assert.Equal(t, "$1000", body["budget"])

	getResp, body = doRequest(t, app, "GET", "/api/inquiries/no-such-id", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, getResp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestReplyFlow(t *testing.T) {
	app, authService := newTestApp(t)
	token := adminToken(t, authService)
	id := submitInquiry(t, app)

	resp, body := doRequest(t, app, "POST", "/api/inquiries/"+id+"/reply", token, map[string]string{
		"adminMessage": "Thanks, starting next week.",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	_, body = doRequest(t, app, "GET", "/api/inquiries/"+id, token, nil)
	assert.Equal(t, "replied", body["status"])
	replies := body["replies"].([]any)
	require.Len(t, replies, 1)
	assert.Equal(t, "Thanks, starting next week.", replies[0].(map[string]any)["adminMessage"])

	resp, _ = doRequest(t, app, "POST", "/api/inquiries/"+id+"/reply", token, map[string]string{
		"adminMessage": "",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestCloseFlow(t *testing.T) {
	app, authService := newTestApp(t)
	token := adminToken(t, authService)
	id := submitInquiry(t, app)

	resp, _ := doRequest(t, app, "POST", "/api/inquiries/"+id+"/close", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	_, body := doRequest(t, app, "GET", "/api/inquiries/"+id, token, nil)
	assert.Equal(t, "closed", body["status"])

	resp, body = doRequest(t, app, "POST", "/api/inquiries/"+id+"/close", token, nil)
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errObj["code"])

	resp, _ = doRequest(t, app, "POST", "/api/inquiries/"+id+"/reply", token, map[string]string{
		"adminMessage": "too late",
	})
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/api/health", "", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get("X-Request-ID"))
}
