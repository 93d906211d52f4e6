package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/api"
	"libdash/internal/config"
)

// stubBackend is a minimal stand-in for the Library Service. It records
// every request it receives so tests can assert on call patterns.
type stubBackend struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string][][]byte

	healthy bool
	books   string
	users   string
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		healthy: true,
		bodies:  map[string][][]byte{},
		books:   `[]`,
		users:   `[]`,
	}
}

func (b *stubBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	b.requests = append(b.requests, key)
	if r.Body != nil {
		var buf bytes.Buffer
		buf.ReadFrom(r.Body)
		b.bodies[key] = append(b.bodies[key], buf.Bytes())
	}
}

func (b *stubBackend) calls(key string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *stubBackend) sawPrefix(prefix string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if strings.HasPrefix(r, prefix) {
			return true
		}
	}
	return false
}

func (b *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.record(r)
	w.Header().Set("Content-Type", "application/json")

	switch r.Method + " " + r.URL.Path {
	case "GET /health":
		if b.healthy {
			fmt.Fprint(w, `{"status":"OK","database":{"status":"connected","connected":true}}`)
		} else {
			fmt.Fprint(w, `{"status":"DOWN","database":{"status":"error","connected":false}}`)
		}
	case "GET /analytics/dashboard":
		fmt.Fprint(w, `{"success":true,"data":{
			"overview":{"totalBooks":12,"availableBooks":9,"totalUsers":4,"activeBorrows":3,"totalTransactions":20,"overdueBooks":1},
			"popularCategories":[{"_id":"Fiction","count":5}],
			"userTypeStats":[{"_id":"student","count":7}]}}`)
	case "GET /books":
		fmt.Fprintf(w, `{"success":true,"data":%s}`, b.books)
	case "GET /users":
		fmt.Fprintf(w, `{"success":true,"data":%s}`, b.users)
	case "GET /transactions":
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	case "POST /books":
		fmt.Fprint(w, `{"success":true,"data":{"_id":"book:new","title":"New"}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"success":false,"error":"not found"}`)
	}
}

func newTestServer(t *testing.T, backendURL string) *Server {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:    backendURL,
		APITimeout:    2 * time.Second,
		SessionSecret: "test-secret",
		LogoPath:      "no-such-logo.svg",
	}
	s := NewWithClient(cfg, api.NewClient(backendURL, cfg.APITimeout))
	s.RegisterRoutes()
	return s
}

func TestDashboard_HealthGate(t *testing.T) {
	backend := newStubBackend()
	backend.healthy = false
	ts := httptest.NewServer(backend)
	defer ts.Close()

	s := newTestServer(t, ts.URL)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend server is not connected")
	assert.False(t, backend.sawPrefix("GET /analytics"),
		"no analytics calls should be issued when the health probe reports non-OK")
	assert.False(t, backend.sawPrefix("GET /transactions"))
}

func TestDashboard_RendersStats(t *testing.T) {
	backend := newStubBackend()
	ts := httptest.NewServer(backend)
	defer ts.Close()

	s := newTestServer(t, ts.URL)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Total Books")
	assert.Contains(t, body, "12")
	assert.True(t, backend.sawPrefix("GET /analytics/dashboard"))
}

func TestBookAdd_SubmitsSingleCreateRequest(t *testing.T) {
	backend := newStubBackend()
	ts := httptest.NewServer(backend)
	defer ts.Close()

	s := newTestServer(t, ts.URL)

	form := url.Values{}
	form.Set("title", "The Go Programming Language")
	form.Set("author", "Donovan")
	form.Set("category", "Programming")
	form.Set("totalCopies", "7")

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/books?tab=add", rec.Header().Get(echo.HeaderLocation))

	creates := backend.calls("POST /books")
	require.Len(t, creates, 1, "a valid submission issues exactly one create request")

	var payload struct {
		TotalCopies     int `json:"totalCopies"`
		AvailableCopies int `json:"availableCopies"`
	}
	require.NoError(t, json.Unmarshal(creates[0], &payload))
	assert.Equal(t, 7, payload.TotalCopies)
	assert.Equal(t, payload.TotalCopies, payload.AvailableCopies,
		"a new book starts with all copies available")
}

func TestBookAdd_ValidationBlocksRequest(t *testing.T) {
	backend := newStubBackend()
	ts := httptest.NewServer(backend)
	defer ts.Close()

	s := newTestServer(t, ts.URL)

	form := url.Values{}
	form.Set("author", "Donovan") // title, category, totalCopies missing

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, backend.calls("POST /books"),
		"an invalid submission must not reach the backend")
}

func TestBorrowTab_ExcludesUnavailableBooks(t *testing.T) {
	backend := newStubBackend()
	backend.books = `[
		{"_id":"book:1","title":"Visible Book","author":"A","category":"Fiction","totalCopies":3,"availableCopies":3},
		{"_id":"book:2","title":"Ghost Book","author":"B","category":"Fiction","totalCopies":2,"availableCopies":0}
	]`
	backend.users = `[{"_id":"user:1","name":"Ada","email":"ada@example.com","userType":"student"}]`
	ts := httptest.NewServer(backend)
	defer ts.Close()

	s := newTestServer(t, ts.URL)

	req := httptest.NewRequest(http.MethodGet, "/transactions?tab=borrow", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Visible Book")
	assert.NotContains(t, body, "Ghost Book",
		"books with zero available copies are not offered for borrowing")
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
}
