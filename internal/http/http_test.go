package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	authHTTP "github.com/prabhanjangururaj/records-vault/internal/auth/http"
	authMocks "github.com/prabhanjangururaj/records-vault/internal/auth/http/mocks"
	"github.com/prabhanjangururaj/records-vault/internal/metrics"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	recordsHTTP "github.com/prabhanjangururaj/records-vault/internal/records/http"
	recordsMocks "github.com/prabhanjangururaj/records-vault/internal/records/http/mocks"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestServer creates a test server with a discarding logger.
func createTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(nil, "localhost", 8080, logger)
}

// createMinimalRouter creates a minimal router with only health and ready
// endpoints for testing.
func createMinimalRouter(server *Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(server.logger))

	router.GET("/health", server.healthHandler)
	router.GET("/ready", server.readinessHandler)

	return router
}

// createFullRouter wires the complete API route table with mocked use cases.
func createFullRouter(
	t *testing.T,
	authUseCase *authMocks.MockAuthUseCase,
	recordUseCase *recordsMocks.MockRecordUseCase,
) (*Server, *gin.Engine) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(nil, "localhost", 8080, logger)

	server.SetupRouter(RouterConfig{
		AuthHandler:    authHTTP.NewAuthHandler(authUseCase, logger),
		RecordHandler:  recordsHTTP.NewRecordHandler(recordUseCase, logger),
		AuthMiddleware: authHTTP.AuthenticationMiddleware(authUseCase, logger),
	}, logger)

	return server, server.router
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler_NotReady_NilDB(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	server.readinessHandler(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "not_ready", response["status"])

	components, ok := response["components"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "error", components["database"])
}

func TestCustomLoggerMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "test", response["message"])
}

func TestRouter_NotFoundEndpoint(t *testing.T) {
	server := createTestServer()
	router := createMinimalRouter(server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDMiddleware_HeaderPresent(t *testing.T) {
	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	requestID := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, requestID, "X-Request-Id header should be present")

	parsedUUID, err := uuid.Parse(requestID)
	require.NoError(t, err, "X-Request-Id should be a valid UUID")
	assert.NotEqual(t, uuid.Nil, parsedUUID, "X-Request-Id should not be nil UUID")
}

func TestRouter_RoleGating(t *testing.T) {
	authenticateAs := func(role tokenizationDomain.Role) *authMocks.MockAuthUseCase {
		authUseCase := &authMocks.MockAuthUseCase{}
		authUseCase.On("Authenticate", mock.Anything, "token").
			Return(&authDomain.Principal{Username: "someone", Role: role}, nil)
		return authUseCase
	}

	doRequest := func(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer token")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("viewer cannot create records", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		_, router := createFullRouter(t, authenticateAs(tokenizationDomain.RoleViewer), recordUseCase)

		w := doRequest(router, http.MethodPost, "/api/records")

		assert.Equal(t, http.StatusForbidden, w.Code)
		recordUseCase.AssertNotCalled(t, "Create",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("editor cannot view raw records", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		_, router := createFullRouter(t, authenticateAs(tokenizationDomain.RoleEditor), recordUseCase)

		w := doRequest(router, http.MethodGet, "/api/records/raw/view")

		assert.Equal(t, http.StatusForbidden, w.Code)
		recordUseCase.AssertNotCalled(t, "ListRaw", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("editor cannot delete records", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		_, router := createFullRouter(t, authenticateAs(tokenizationDomain.RoleEditor), recordUseCase)

		w := doRequest(router, http.MethodDelete, "/api/records/"+uuid.Must(uuid.NewV7()).String())

		assert.Equal(t, http.StatusForbidden, w.Code)
		recordUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin reaches raw view", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		recordUseCase.On("ListRaw", mock.Anything, 0, 50).
			Return([]*recordsDomain.Record{}, nil).
			Once()

		_, router := createFullRouter(t, authenticateAs(tokenizationDomain.RoleAdmin), recordUseCase)

		w := doRequest(router, http.MethodGet, "/api/records/raw/view")

		assert.Equal(t, http.StatusOK, w.Code)
		recordUseCase.AssertExpectations(t)
	})

	t.Run("viewer can list records", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		recordUseCase.On("List", mock.Anything, tokenizationDomain.RoleViewer, 0, 50).
			Return([]*recordsDomain.Record{}, nil).
			Once()

		_, router := createFullRouter(t, authenticateAs(tokenizationDomain.RoleViewer), recordUseCase)

		w := doRequest(router, http.MethodGet, "/api/records")

		assert.Equal(t, http.StatusOK, w.Code)
		recordUseCase.AssertExpectations(t)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		recordUseCase := &recordsMocks.MockRecordUseCase{}
		_, router := createFullRouter(t, &authMocks.MockAuthUseCase{}, recordUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := createTestServer()
	server.router = createMinimalRouter(server)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(context.Background()); err != nil {
			errChan <- err
		}
	}()

	// Give server time to start
	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	assert.NoError(t, err)

	select {
	case err := <-errChan:
		t.Fatalf("server startup failed: %v", err)
	default:
	}
}

func TestMetricsServer_Endpoints(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, logger, provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestServer_NoMetricsEndpoint(t *testing.T) {
	recordUseCase := &recordsMocks.MockRecordUseCase{}
	_, router := createFullRouter(t, &authMocks.MockAuthUseCase{}, recordUseCase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
