package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/middleware"
	"catalog/internal/validator"
)

type qtyReq struct {
	Quantity int64 `json:"quantity"`
}

func newEcho(t *testing.T, schema validator.Schema, got *qtyReq) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.POST("/q", func(c echo.Context) error {
		if err := middleware.BindPayload(c, got); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	}, middleware.ValidateBody(schema))
	return e
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/q", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidateBody_PassesSanitizedPayload(t *testing.T) {
	var got qtyReq
	e := newEcho(t, validator.StockQuantity(), &got)

	rec := post(e, `{"quantity":"12"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), got.Quantity)
}

func TestValidateBody_Errors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
		errors  int
	}{
		{"malformed", `{"quantity":`, "Invalid JSON body", 0},
		{"array", `[1,2]`, "Invalid JSON body", 0},
		{"trailing", `{"quantity":1} {}`, "Invalid JSON body", 0},
		{"empty body", ``, "Validation failed", 1},
		{"not numeric", `{"quantity":"abc"}`, "Validation failed", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got qtyReq
			e := newEcho(t, validator.StockQuantity(), &got)

			rec := post(e, tc.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Message string                 `json:"message"`
					Errors  []validator.FieldError `json:"errors"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Error.Message)
			assert.Len(t, body.Error.Errors, tc.errors)
		})
	}
}

func TestRequestLogger_WritesOneEntryWithRequestID(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(middleware.RequestID(), middleware.RequestLogger(log))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "req-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "/ping", entry.Data["path"])
	assert.Equal(t, "req-123", rec.Header().Get(middleware.HeaderRequestID))
}

func TestRequestLogger_HandlerErrorIsRendered(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(middleware.RequestLogger(log))
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/items/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for _, id := range []string{"1", "2", "3"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/items/:id",status="204"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "http_requests_total"))
}
