package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-analytics/internal/application/analytics"
	"github.com/jhoicas/Inventario-analytics/internal/application/auth"
	appinventory "github.com/jhoicas/Inventario-analytics/internal/application/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/application/usecase"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/Inventario-analytics/internal/interfaces/http"
)

const (
	adminPassword = "clave-segura-123"
	ledgerCSV     = "Plant,Storage Location,Material,Material Description,Quantity,Value,Posting Date\n" +
		"SiteA,L1,Mat1,Tornillo,-50,-250,2025-05-01\n" +
		"SiteB,L1,Mat1,Tornillo,200,1000,2025-05-02\n" +
		"SiteB,L1,,Sin material,5,5,2025-05-02\n"
)

type serverOpts struct {
	secret  string
	limiter *apphttp.IPRateLimiter
}

func newTestServer(t *testing.T, opts serverOpts) *fiber.App {
	t.Helper()
	store := memory.NewSnapshotStore()
	engine, err := analytics.NewEngine(inventory.DefaultThresholds())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AnalyticsUC:   usecase.NewAnalyticsUseCase(store, engine, pdf.NewMarotoReportGenerator("test"), spreadsheet.Exporter{}),
		DatasetUC:     appinventory.NewDatasetUseCase(spreadsheet.Loader{}, store, nil, zerolog.Nop()),
		AuthUC:        auth.NewAuthUseCase(auth.AdminCredentials{Username: "admin", PasswordHash: string(hash)}, auth.JWTConfig{Secret: opts.secret, ExpMinutes: 60, Issuer: testIssuer}),
		JWTSecret:     opts.secret,
		UploadLimiter: opts.limiter,
		AppName:       "inventario-analytics-test",
		Log:           zerolog.Nop(),
	})
	return app
}

func uploadRequest(t *testing.T, filename, content, authHeader string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func loadLedger(t *testing.T, app *fiber.App) {
	t.Helper()
	resp, body := do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}

func TestHealth(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	resp, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestSinDataset_Retorna503(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	for _, path := range []string{
		"/api/dashboard/stats",
		"/api/items/shortages",
		"/api/recommendations/shipping",
		"/api/analysis/focus-areas",
		"/api/analysis/abundance",
		"/api/analysis/report.pdf",
		"/api/material/Mat1/details",
	} {
		resp, body := get(t, app, path)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
		assert.Contains(t, string(body), "DATASET_UNAVAILABLE", path)
	}
}

func TestUpload_PublicaSnapshot(t *testing.T) {
	app := newTestServer(t, serverOpts{})

	resp, body := do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.EqualValues(t, 2, res["records"])
	assert.EqualValues(t, 1, res["malformed_rows"])

	resp, body = get(t, app, "/api/dashboard/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.EqualValues(t, 2, stats["total_items"])
	assert.EqualValues(t, 1, stats["negative_items"])
	assert.Equal(t, "150", stats["total_quantity"])
}

func TestUpload_Errores(t *testing.T) {
	app := newTestServer(t, serverOpts{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	resp, body := do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "MISSING_FILE")

	resp, body = do(t, app, uploadRequest(t, "ledger.pdf", ledgerCSV, ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_INPUT")

	resp, body = do(t, app, uploadRequest(t, "vacio.csv", "Plant,Material,Quantity\nP1,,3\n", ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_INPUT")
}

func TestUpload_RequiereTokenAdmin(t *testing.T) {
	app := newTestServer(t, serverOpts{secret: testJWTSecret})

	resp, _ := do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"`+adminPassword+`"}`))
	login.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, login)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)
	assert.EqualValues(t, 3600, out["expires_in"])

	resp, body = do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, "Bearer "+token))
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newTestServer(t, serverOpts{secret: testJWTSecret})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"incorrecta"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "UNAUTHORIZED")

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_LimitePorIP(t *testing.T) {
	app := newTestServer(t, serverOpts{limiter: apphttp.NewIPRateLimiter(1, 1)})

	resp, _ := do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, app, uploadRequest(t, "ledger.csv", ledgerCSV, ""))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(body), "RATE_LIMITED")
}

func TestVistas(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	loadLedger(t, app)

	resp, body := get(t, app, "/api/items/shortages")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shortages []map[string]any
	require.NoError(t, json.Unmarshal(body, &shortages))
	require.Len(t, shortages, 1)
	assert.Equal(t, "SiteA", shortages[0]["site"])
	assert.Equal(t, "Mat1", shortages[0]["material"])
	assert.Equal(t, "-50", shortages[0]["current_quantity"])
	assert.Equal(t, "2025-05-01", shortages[0]["last_active"])

	resp, body = get(t, app, "/api/site/SiteB/inventory")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "200", rows[0]["current_quantity"])

	resp, body = get(t, app, "/api/recommendations/shipping")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs map[string]any
	require.NoError(t, json.Unmarshal(body, &recs))
	assert.Equal(t, "site", recs["granularity"])
	assert.NotEmpty(t, recs["recommendations"])

	resp, body = get(t, app, "/api/analysis/abundance")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var abundance map[string][]any
	require.NoError(t, json.Unmarshal(body, &abundance))
	assert.Contains(t, abundance, "sites")
	assert.Empty(t, abundance["materials"], "200 unidades no superan la mitad del umbral")

	resp, _ = get(t, app, "/api/analysis/top-shortages?limit=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = get(t, app, "/api/analysis/inactive-stock?days=30&limit=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = get(t, app, "/api/items/critical?multiplier=1.5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParametrosInvalidos(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	loadLedger(t, app)

	for _, path := range []string{
		"/api/analysis/top-shortages?limit=abc",
		"/api/analysis/inactive-stock?days=x",
		"/api/items/critical?multiplier=mucho",
		"/api/items/critical?multiplier=-1",
	} {
		resp, body := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, string(body), "INVALID_PARAMS", path)
	}
}

func TestMaterial(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	loadLedger(t, app)

	resp, body := get(t, app, "/api/material/Mat1/details")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "150", detail["total_quantity"])
	assert.Len(t, detail["locations"], 2)

	resp, body = get(t, app, "/api/material/NoExiste/analysis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "MATERIAL_NOT_FOUND")
}

func TestDescargas(t *testing.T) {
	app := newTestServer(t, serverOpts{})
	loadLedger(t, app)

	resp, body := get(t, app, "/api/recommendations/movements/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx es un zip")

	resp, body = get(t, app, "/api/analysis/report.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
