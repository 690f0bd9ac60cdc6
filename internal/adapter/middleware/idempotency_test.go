package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl))
	e.POST("/report", handler)
	e.GET("/report", handler)
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func idempHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"X-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
	}
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"status": true})
}

func Test_BypassOnGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/report", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_BypassWithoutRequestID(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	})

	// no X-Request-Id: both requests are processed
	doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 1}), nil)
	doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 1}), nil)
	if calls != 2 {
		t.Fatalf("calls=%d", calls)
	}
}

func Test_InvalidRequestID(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	hdr := idempHeaders()
	hdr["X-Request-Id"] = "not-a-valid-id"
	rec := doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 1}), hdr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func Test_SkewedRequestAt(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	hdr := idempHeaders()
	hdr["X-Request-At"] = strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	rec := doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 1}), hdr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func Test_ReplaysFinishedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"status": true, "call": calls})
	})

	hdr := idempHeaders()
	body := map[string]any{"problem": "x"}

	first := doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, body), hdr)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: %d", first.Code)
	}
	second := doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, body), hdr)
	if second.Code != http.StatusCreated {
		t.Fatalf("second: %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func Test_RejectsReusedIDWithDifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	hdr := idempHeaders()
	doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 1}), hdr)
	rec := doReq(t, e, http.MethodPost, "/report", mkJSONBody(t, map[string]any{"a": 2}), hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestParseRequestAt(t *testing.T) {
	if _, err := parseRequestAt(""); err == nil {
		t.Fatal("empty must fail")
	}
	if _, err := parseRequestAt("2025-09-05T10:00:00"); err == nil {
		t.Fatal("naive timestamp must fail")
	}
	if ts, err := parseRequestAt("2025-09-05T10:00:00Z"); err != nil || ts.IsZero() {
		t.Fatalf("RFC3339: %v %v", ts, err)
	}
	if ts, err := parseRequestAt("1736123456"); err != nil || ts.IsZero() {
		t.Fatalf("epoch s: %v %v", ts, err)
	}
	if ts, err := parseRequestAt("1736123456789"); err != nil || ts.IsZero() {
		t.Fatalf("epoch ms: %v %v", ts, err)
	}
}
