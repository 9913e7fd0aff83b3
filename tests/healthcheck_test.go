package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/corestake/staking-governance-service/internal/observability/healthcheck"
	testmock "github.com/corestake/staking-governance-service/tests/mocks"
)

const (
	healthCheckPath = "/healthcheck"
)

func TestHealthCheck(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	url := testServer.Server.URL + healthCheckPath

	resp, err := http.Get(url)
	assert.NoError(t, err, "making GET request to health check endpoint should not fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "expected HTTP 200 OK status")

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err, "reading response body should not fail")

	var responseBody map[string]string
	err = json.Unmarshal(bodyBytes, &responseBody)
	assert.NoError(t, err, "unmarshalling response body should not fail")

	assert.Equal(t, "Server is up and running", responseBody["data"], "expected response body to match")
}

// Test the db connection error case
func TestHealthCheckDBError(t *testing.T) {
	mockDB := new(testmock.DBClient)
	mockDB.On("Ping", mock.Anything).Return(io.EOF) // Expect db error

	testServer := setupTestServer(t, &TestServerDependency{MockDbClient: mockDB})
	defer testServer.Close()

	url := testServer.Server.URL + healthCheckPath

	resp, err := http.Get(url)
	assert.NoError(t, err, "making GET request to health check endpoint should not fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "expected HTTP 500 Internal Server Error status")

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err, "reading response body should not fail")

	responseBody := string(bodyBytes)

	assert.Equal(t, "{\"errorCode\":\"INTERNAL_SERVICE_ERROR\",\"message\":\"Internal service error\"}", responseBody, "expected response body to match")
}

func TestOptionsRequest(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	url := testServer.Server.URL + healthCheckPath

	client := &http.Client{}
	req, err := http.NewRequest("OPTIONS", url, nil)
	assert.NoError(t, err, "making OPTION request to health check endpoint should not fail")
	req.Header.Add("Origin", "https://console.corestake.io")
	req.Header.Add("Access-Control-Request-Headers", "Content-Type")
	req.Header.Add("Access-Control-Request-Method", "GET")

	resp, err := client.Do(req)
	assert.NoError(t, err, "sending OPTION request should not fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "expected HTTP 204 status")
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), "expected Access-Control-Allow-Origin to be *")
	assert.Equal(t, "GET", resp.Header.Get("Access-Control-Allow-Methods"), "expected Access-Control-Allow-Methods to be GET")
}

func TestSecurityHeaders(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	url := testServer.Server.URL + healthCheckPath

	resp, err := http.Get(url)
	assert.NoError(t, err, "making GET request to health check endpoint should not fail")
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"), "expected X-Content-Type-Options to be nosniff")
	assert.Equal(t, "1; mode=block", resp.Header.Get("X-Xss-Protection"), "expected X-Xss-Protection to be 1; mode=block")
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"), "expected X-Frame-Options to be DENY")
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'", "expected Content-Security-Policy to restrict default sources")
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"), "expected Referrer-Policy to be strict-origin-when-cross-origin")
}

func TestStartHealthCheckCron(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	var logBuffer = &strings.Builder{}
	testLogger := zerolog.New(logBuffer).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	healthcheck.SetLogger(testLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := healthcheck.StartHealthCheckCron(ctx, testServer.Queues, 2)
	assert.NoError(t, err)

	time.Sleep(5 * time.Second)

	logOutput := logBuffer.String()

	assert.Contains(t, logOutput, "Initiated Health Check Cron")
	assert.NotContains(t, logOutput, "One or more queue connections are not healthy.")

	cancel()
}
