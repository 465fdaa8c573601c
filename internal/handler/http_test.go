package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/amaumene/trackarr/internal/service"
	"github.com/amaumene/trackarr/internal/settings"
)

func setupTestApp(t *testing.T, instanceName string) *fiber.App {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	svc, err := service.Instantiate(instanceName, settings.NewRegistry(false))
	if err != nil {
		t.Fatalf("instantiating service: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})
	NewHTTPHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(t, "handler-health")

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestHandleGet_UnknownKey(t *testing.T) {
	app := setupTestApp(t, "handler-get-unknown")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings/badKey", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

func TestHandleGet_UnsetValueIsBadShape(t *testing.T) {
	app := setupTestApp(t, "handler-get-unset")
	os.Unsetenv("ENABLE_THUMBNAIL_CACHE")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings/enableThumbnailCache", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestHandleSet_RoundTrip(t *testing.T) {
	app := setupTestApp(t, "handler-set-roundtrip")

	value := map[string]any{
		"whitelist": false,
		"pathFragments": []any{
			map[string]any{
				"data":                   "mpv",
				"caseSensitive":          true,
				"interchangeableSlashes": true,
			},
		},
	}
	body, _ := json.Marshal(value)

	putReq := httptest.NewRequest("PUT", "/api/settings/trackedExtensions", bytes.NewReader(body))
	putReq.Header.Set("Content-Type", "application/json")
	putResp, err := app.Test(putReq)
	if err != nil {
		t.Fatalf("put request error: %v", err)
	}
	if putResp.StatusCode != fiber.StatusOK {
		t.Fatalf("put status = %d, want %d", putResp.StatusCode, fiber.StatusOK)
	}

	getResp, err := app.Test(httptest.NewRequest("GET", "/api/settings/trackedExtensions", nil))
	if err != nil {
		t.Fatalf("get request error: %v", err)
	}
	if getResp.StatusCode != fiber.StatusOK {
		t.Fatalf("get status = %d, want %d", getResp.StatusCode, fiber.StatusOK)
	}

	raw, err := io.ReadAll(getResp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	var payload struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if payload.Key != "trackedExtensions" {
		t.Errorf("key = %q, want trackedExtensions", payload.Key)
	}
	if !reflect.DeepEqual(payload.Value, value) {
		t.Errorf("value = %v, want %v", payload.Value, value)
	}
}

func TestHandleSet_Rejections(t *testing.T) {
	app := setupTestApp(t, "handler-set-reject")

	emptyWhitelist, _ := json.Marshal(map[string]any{
		"whitelist":     true,
		"pathFragments": []any{},
	})

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown key", "/api/settings/badKey", "true", fiber.StatusNotFound},
		{"invalid json body", "/api/settings/enableThumbnailCache", "{not json", fiber.StatusBadRequest},
		{"shape mismatch", "/api/settings/enableThumbnailCache", `"yes"`, fiber.StatusBadRequest},
		{"empty whitelist", "/api/settings/trackedFilenames", string(emptyWhitelist), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestHandleSettingsPage(t *testing.T) {
	app := setupTestApp(t, "handler-page")
	t.Setenv("ENABLE_THUMBNAIL_CACHE", "true")

	resp, err := app.Test(httptest.NewRequest("GET", "/settings", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	page := string(raw)
	for _, key := range []string{"trackedExtensions", "trackedFilenames", "trackedDirectories", "enableThumbnailCache"} {
		if !strings.Contains(page, key) {
			t.Errorf("settings page does not list %q", key)
		}
	}
	if !strings.Contains(page, "handler-page") {
		t.Error("settings page does not show the instance name")
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"bool", true, "true"},
		{"empty blacklist", map[string]any{"whitelist": false, "pathFragments": []any{}}, "blacklist: (empty)"},
		{
			"whitelist with fragments",
			map[string]any{
				"whitelist": true,
				"pathFragments": []any{
					map[string]any{"data": "mkv", "caseSensitive": false, "interchangeableSlashes": true},
					map[string]any{"data": "mp4", "caseSensitive": false, "interchangeableSlashes": true},
				},
			},
			"whitelist: mkv, mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderValue(tt.value); got != tt.want {
				t.Errorf("renderValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
