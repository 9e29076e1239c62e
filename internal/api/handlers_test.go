package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// testEnv holds a router wired the same way as the server.
type testEnv struct {
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
}

// setupTest creates a fresh test environment whose clock reads now.
func setupTest(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Port:            8080,
		Env:             config.EnvDevelopment,
		ShutdownTimeout: time.Second,
		TimeOffset:      calendar.DefaultOffset,
		LogLevel:        "error",
		LogFormat:       "text",
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	handlers := NewHandlers(cfg, logger)
	handlers.now = func() time.Time { return now }

	return &testEnv{
		cfg:      cfg,
		handlers: handlers,
		router:   SetupRoutes(handlers, logger),
	}
}

// do runs a GET request through the router.
func (env *testEnv) do(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// parseResponse decodes the envelope and its data into v.
func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v any) Response {
	t.Helper()
	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *ErrorInfo      `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if v != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, v); err != nil {
			t.Fatalf("decode data: %v, body: %s", err, raw.Data)
		}
	}
	return Response{Success: raw.Success, Error: raw.Error}
}

var fixedNow = time.Date(2010, time.January, 11, 15, 0, 0, 0, time.UTC)

// =============================================================================
// HANDLER TESTS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var body map[string]string
	resp := parseResponse(t, rr, &body)
	if !resp.Success || body["status"] != "healthy" {
		t.Errorf("health = %+v %v", resp, body)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
}

func TestListYear(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v1/holidays/2010")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var body YearHolidays
	parseResponse(t, rr, &body)

	if body.Year != 2010 || body.Order != "table" {
		t.Errorf("Year/Order = %d/%q, want 2010/table", body.Year, body.Order)
	}
	if len(body.Holidays) != 18 {
		t.Fatalf("got %d holidays, want 18", len(body.Holidays))
	}
	first := calendar.Holiday{Date: "2010-01-01T00:00:00.000-05:00", Type: calendar.KindFixed, Name: "Año Nuevo"}
	if body.Holidays[0] != first {
		t.Errorf("Holidays[0] = %+v, want %+v", body.Holidays[0], first)
	}
	reyes := calendar.Holiday{Date: "2010-01-11T00:00:00.000-05:00", Type: calendar.KindNextMonday, Name: "Reyes Magos"}
	if body.Holidays[6] != reyes {
		t.Errorf("Holidays[6] = %+v, want %+v", body.Holidays[6], reyes)
	}
}

func TestListYear_Chronological(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v1/holidays/2010?order=date")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var body YearHolidays
	parseResponse(t, rr, &body)
	if body.Order != "date" {
		t.Errorf("Order = %q, want date", body.Order)
	}
	for i := 1; i < len(body.Holidays); i++ {
		if body.Holidays[i].Date < body.Holidays[i-1].Date {
			t.Errorf("holiday %d (%s) sorts before %d (%s)", i, body.Holidays[i].Date, i-1, body.Holidays[i-1].Date)
		}
	}
}

func TestListYear_BadRequests(t *testing.T) {
	env := setupTest(t, fixedNow)

	paths := []string{
		"/api/v1/holidays/1983",
		"/api/v1/holidays/1900",
		"/api/v1/holidays/year",
		"/api/v1/holidays/2010?order=random",
		"/api/v1/easter/1983",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := env.do(t, path)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			resp := parseResponse(t, rr, nil)
			if resp.Success || resp.Error == nil || resp.Error.Code != "BAD_REQUEST" {
				t.Errorf("response = %+v, want BAD_REQUEST error", resp)
			}
		})
	}
}

func TestListCurrentYear(t *testing.T) {
	// 2011-01-01 03:00 UTC is still 2010 in Bogotá.
	env := setupTest(t, time.Date(2011, time.January, 1, 3, 0, 0, 0, time.UTC))

	rr := env.do(t, "/api/v1/holidays")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var body YearHolidays
	parseResponse(t, rr, &body)
	if body.Year != 2010 {
		t.Errorf("Year = %d, want 2010", body.Year)
	}
}

func TestGetDate(t *testing.T) {
	env := setupTest(t, fixedNow)

	tests := []struct {
		path string
		want DateInfo
	}{
		{
			"/api/v1/holidays/date/2010-01-01",
			DateInfo{Date: "2010-01-01", LongDate: "viernes 1 de enero de 2010", Holiday: true, Name: "Año Nuevo"},
		},
		{
			"/api/v1/holidays/date/2010-01-02",
			DateInfo{Date: "2010-01-02", LongDate: "sábado 2 de enero de 2010"},
		},
		{
			"/api/v1/holidays/date/2010-01-12",
			DateInfo{Date: "2010-01-12", LongDate: "martes 12 de enero de 2010", BusinessDay: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := env.do(t, tt.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
			}
			var got DateInfo
			parseResponse(t, rr, &got)
			if got != tt.want {
				t.Errorf("DateInfo = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetDate_BadRequests(t *testing.T) {
	env := setupTest(t, fixedNow)

	for _, path := range []string{
		"/api/v1/holidays/date/01-01-2010",
		"/api/v1/holidays/date/1983-01-01",
	} {
		if rr := env.do(t, path); rr.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", path, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestGetToday(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v1/holidays/today")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var got DateInfo
	parseResponse(t, rr, &got)
	if got.Date != "2010-01-11" || got.Name != "Reyes Magos" || got.BusinessDay {
		t.Errorf("today = %+v, want Reyes Magos on 2010-01-11", got)
	}
}

func TestGetEaster(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v1/easter/2010")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var got struct {
		Year   int    `json:"year"`
		Easter string `json:"easter"`
	}
	parseResponse(t, rr, &got)
	if got.Year != 2010 || got.Easter != "2010-04-04T00:00:00.000-05:00" {
		t.Errorf("easter = %+v", got)
	}
}

func TestGetNextBusinessDay(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v1/business-days/next/2010-01-08")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var got map[string]string
	parseResponse(t, rr, &got)
	if got["next"] != "2010-01-12" {
		t.Errorf("next = %q, want 2010-01-12", got["next"])
	}
}

// =============================================================================
// MIDDLEWARE TESTS
// =============================================================================

func TestRouter_NotFound(t *testing.T) {
	env := setupTest(t, fixedNow)

	rr := env.do(t, "/api/v2/holidays")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	env := setupTest(t, fixedNow)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holidays/2010", nil)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := CORSMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/holidays", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
