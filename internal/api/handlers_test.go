// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shortreel/promptforge/internal/services"
)

func setTestEnvDirs(t *testing.T) {
	t.Helper()
	base := t.TempDir()
	t.Setenv("DATA_DIR", filepath.Join(base, "data"))
	t.Setenv("STATIC_DIR", filepath.Join(base, "static"))
	t.Setenv("TEMPLATES_DIR", filepath.Join(base, "templates"))
	t.Setenv("LOG_DIR", filepath.Join(base, "logs"))
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	setTestEnvDirs(t)
	gin.SetMode(gin.TestMode)

	llmService := services.NewEmptyLLMService()
	return NewHandler(
		services.NewCharacterService(llmService),
		services.NewStoryService(llmService),
		services.NewPresetService(),
		services.NewExportService(),
		services.NewConfigService(llmService),
		llmService,
		services.NewStatsService(t.TempDir()),
	)
}

func performRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v\n%s", err, w.Body.String())
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got: %s", w.Body.String())
	}
	return resp
}

func TestGetCharacterPresetsFiltering(t *testing.T) {
	h := newTestHandler(t)
	r := gin.New()
	r.GET("/api/presets/characters", h.GetCharacterPresets)

	w := performRequest(r, http.MethodGet, "/api/presets/characters")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	all := decodeSuccess(t, w)["data"].([]interface{})

	w = performRequest(r, http.MethodGet, "/api/presets/characters?platform=veo-3.1")
	filtered := decodeSuccess(t, w)["data"].([]interface{})

	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Errorf("platform filter should narrow results: %d vs %d", len(filtered), len(all))
	}
}

func TestInstantiateCharacterPresetNotFound(t *testing.T) {
	h := newTestHandler(t)
	r := gin.New()
	r.POST("/api/presets/characters/:id/instantiate", h.InstantiateCharacterPreset)

	w := performRequest(r, http.MethodPost, "/api/presets/characters/nope/instantiate")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	errObj, _ := resp["error"].(map[string]interface{})
	if errObj == nil || errObj["code"] != ErrorPresetNotFound {
		t.Errorf("unexpected error payload: %s", w.Body.String())
	}
}

func TestGetVeoCatalogShape(t *testing.T) {
	h := newTestHandler(t)
	r := gin.New()
	r.GET("/api/catalog/veo", h.GetVeoCatalog)

	w := performRequest(r, http.MethodGet, "/api/catalog/veo")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data := decodeSuccess(t, w)["data"].(map[string]interface{})
	for _, key := range []string{"angles", "movements", "lensEffects", "lightingStyles"} {
		section, ok := data[key].(map[string]interface{})
		if !ok || len(section) == 0 {
			t.Errorf("catalog section %q missing or empty", key)
		}
	}
}

func TestGenerateStoryRejectedWhenLLMNotReady(t *testing.T) {
	h := newTestHandler(t)
	r := gin.New()
	r.POST("/api/story/generate", h.GenerateStory)

	body := `{"genre": "action-thriller", "theme": "revenge", "numberOfScenes": 2, "characters": [{"id": "c1", "name": "Ravi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/story/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503\n%s", w.Code, w.Body.String())
	}
}

func TestHealthReportsLLMState(t *testing.T) {
	h := newTestHandler(t)
	r := gin.New()
	r.GET("/health", h.Health)

	w := performRequest(r, http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v", resp["status"])
	}
	if _, ok := resp["llm"].(map[string]interface{}); !ok {
		t.Error("llm section missing")
	}
}

func TestGetUsageStatsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	h.StatsService.RecordGeneration("chat", 33)

	r := gin.New()
	r.GET("/api/settings/usage", h.GetUsageStats)

	w := performRequest(r, http.MethodGet, "/api/settings/usage")
	data := decodeSuccess(t, w)["data"].(map[string]interface{})
	if data["monthly_tokens"].(float64) != 33 {
		t.Errorf("monthly_tokens = %v", data["monthly_tokens"])
	}
}

func TestMaskAPIKey(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"abc":               "****",
		"sk-1234567890abcd": "****abcd",
	}
	for in, want := range cases {
		if got := maskAPIKey(in); got != want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", in, got, want)
		}
	}
}
