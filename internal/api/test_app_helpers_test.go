package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraincognita07/cyclezen/internal/db"
	"go.uber.org/zap"
)

type testApp struct {
	app     *fiber.App
	handler *Handler
	store   *db.Store
}

var testNow = time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) testApp {
	t.Helper()
	return newTestAppWithLogger(t, zap.NewNop())
}

func newTestAppWithLogger(t *testing.T, logger *zap.Logger) testApp {
	t.Helper()

	registry := prometheus.NewRegistry()
	sequence := 0
	store := db.NewStore(
		db.NewMemoryKV(),
		db.WithMetrics(db.NewStoreMetrics(registry)),
		db.WithClock(func() time.Time { return testNow }),
		db.WithIDGenerator(func() string {
			sequence++
			return fmt.Sprintf("user-%d", sequence)
		}),
	)

	handler := NewHandler(store, logger, time.UTC)
	handler.now = func() time.Time { return testNow }

	app := NewApp(handler, AppConfig{Logger: logger, Registerer: registry, Gatherer: registry})
	return testApp{app: app, handler: handler, store: store}
}

func (ta testApp) do(t *testing.T, method string, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, path, err)
	}
	t.Cleanup(func() { _ = response.Body.Close() })
	return response
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func expectStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", status, response.StatusCode, string(raw))
	}
}
