package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	authUC "github.com/marcos-nsantos/image-processing-backend/internal/usecase/auth"
	imageUC "github.com/marcos-nsantos/image-processing-backend/internal/usecase/image"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

const (
	testDBUser       = "testuser"
	testDBPassword   = "testpass"
	testDBName       = "testdb"
	testJWTSecret    = "test-secret-key-for-e2e-tests"
	testStorageURL   = "http://storage.test/images"
	testMaxUploadMiB = 5
	apiBasePath      = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Storage    *storage.MemoryStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	// Repositories
	userRepo := pgRepo.NewUserRepo(pool)
	refreshTokenRepo := pgRepo.NewRefreshTokenRepo(pool)
	imageRepo := pgRepo.NewImageRepo(pool)
	transformedRepo := pgRepo.NewTransformedImageRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests
	blobStorage := storage.NewMemoryStorage(testStorageURL)
	issuer := access.NewURLIssuer(blobStorage)
	logger := zap.NewNop()

	// Use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, 24*time.Hour)
	transformSvc := transform.NewService(imageRepo, transformedRepo, blobStorage, imageproc.NewProcessor(85, 0), issuer, logger)
	imageSvc := imageUC.NewService(imageRepo, transformedRepo, blobStorage, issuer, transformSvc, imageUC.Config{
		MaxUploadSize: testMaxUploadMiB << 20,
		CascadeDelete: true,
	}, logger)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(authSvc),
		ImageHandler:     handler.NewImageHandler(imageSvc, testMaxUploadMiB<<20, logger),
		TransformHandler: handler.NewTransformHandler(transformSvc, logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(jwtSvc),
		Logger:           logger,
		Environment:      "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Storage:   blobStorage,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func (app *TestApp) upload(t *testing.T, token, filename, contentType string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/images", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// registerAndLogin creates a user and returns its access token.
func (app *TestApp) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": "securePassword123"}

	resp, err := app.post("/auth/register", creds, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.post("/auth/login", creds, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	return loginResp["access_token"].(string)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
