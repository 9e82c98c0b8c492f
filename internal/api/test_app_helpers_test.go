package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "vital-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewHandler(database)
	RegisterRoutes(app, handler)

	return app
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response.StatusCode, payload
}

func decodeObject(t *testing.T, payload []byte) map[string]any {
	t.Helper()

	decoded := map[string]any{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode object %q: %v", payload, err)
	}
	return decoded
}

func decodeArray(t *testing.T, payload []byte) []map[string]any {
	t.Helper()

	decoded := []map[string]any{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode array %q: %v", payload, err)
	}
	return decoded
}

func expectStatus(t *testing.T, got int, want int, payload []byte) {
	t.Helper()

	if got != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, got, payload)
	}
}

func expectError(t *testing.T, payload []byte, message string) {
	t.Helper()

	decoded := decodeObject(t, payload)
	if decoded["error"] != message {
		t.Fatalf("expected error %q, got %v", message, decoded["error"])
	}
}
