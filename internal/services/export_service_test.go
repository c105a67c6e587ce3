// internal/services/export_service_test.go
package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

// setTestEnvDirs 把配置指向的目录全部重定向到临时目录，
// 避免测试在包目录下创建 data/static/logs
func setTestEnvDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("DATA_DIR", filepath.Join(base, "data"))
	t.Setenv("STATIC_DIR", filepath.Join(base, "static"))
	t.Setenv("TEMPLATES_DIR", filepath.Join(base, "templates"))
	t.Setenv("LOG_DIR", filepath.Join(base, "logs"))
	return base
}

func exportTestProject(platform models.Platform) *models.Project {
	var cineSettings *models.CineSettings
	if platform == models.PlatformCine {
		cineSettings = &models.CineSettings{
			SceneDuration: 5,
			Resolution:    "1080p",
			Upscale:       "none",
		}
	}

	return &models.Project{
		Config: models.ProjectConfig{
			ID:             "proj-1",
			Name:           "Test Saga",
			Genre:          "action-thriller",
			Theme:          "revenge",
			NumberOfScenes: 2,
			AspectRatio:    "9:16",
			StylePreset:    "cinematic-realistic",
			Language:       "hindi",
			TargetDuration: 16,
			VideoPlatform:  platform,
			CineSettings:   cineSettings,
		},
		Characters: []models.Character{
			{
				ID:                  "char-1",
				Name:                "Ravi",
				Role:                models.RoleHero,
				PhysicalDescription: "lean man with sharp eyes",
				Clothing:            "faded denim jacket",
				VoiceStyle:          "quiet intensity",
				EmotionalTraits:     []string{"stoic", "loyal"},
				Catchphrases:        []string{"Waqt aa gaya."},
			},
		},
		GeneratedScenes: []models.GeneratedScene{
			{
				ID:                "scene-1",
				SceneNumber:       1,
				Title:             "Opening",
				Description:       "Ravi walks into the empty market",
				CharacterIDs:      []string{"Ravi"},
				Dialogue:          "Waqt aa gaya.",
				DialogueLanguage:  "hindi",
				Emotion:           "determined",
				VisualDescription: "dawn light over shuttered stalls",
				SuggestedCamera:   "slow dolly forward",
				SuggestedLighting: "cold blue dawn",
				SuggestedAudio:    "distant dogs barking",
				Duration:          8,
			},
			{
				ID:                "scene-2",
				SceneNumber:       2,
				Title:             "The Turn",
				Description:       "Ravi finds the ledger",
				CharacterIDs:      []string{"Ravi"},
				Dialogue:          "Toh yeh sach tha.",
				DialogueLanguage:  "hindi",
				Emotion:           "shocked",
				VisualDescription: "dusty back office, single hanging bulb",
				SuggestedCamera:   "handheld close-up",
				SuggestedLighting: "hard top light",
				SuggestedAudio:    "paper rustling",
				Duration:          8,
			},
		},
	}
}

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	setTestEnvDirs(t)
	return NewExportService()
}

func TestFullPackageContainsAllSections(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformVeo)

	result, err := s.FullPackage(project)
	if err != nil {
		t.Fatalf("FullPackage: %v", err)
	}

	for _, frag := range []string{
		"VEO 3.1 PRODUCTION PACKAGE",
		"PROJECT INFO",
		"Project Name: Test Saga",
		"Theme: revenge",
		"CHARACTERS",
		"1. Ravi (hero)",
		"CHARACTER REFERENCE IMAGE PROMPTS",
		"SCENE-BY-SCENE BREAKDOWN",
		"SCENE 1: Opening",
		"SCENE 2: The Turn",
		"VEO 3.1 PROMPTS",
	} {
		if !strings.Contains(result.Content, frag) {
			t.Errorf("missing fragment %q", frag)
		}
	}

	if result.Format != "txt" {
		t.Errorf("unexpected format %q", result.Format)
	}
	if result.ID == "" {
		t.Error("result id should be assigned")
	}
}

func TestFullPackageCineIncludesSettings(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformCine)

	result, err := s.FullPackage(project)
	if err != nil {
		t.Fatalf("FullPackage: %v", err)
	}

	for _, frag := range []string{
		"HIGGSFIELD CINEMA STUDIO PRODUCTION PACKAGE",
		"Scene Duration: 5s per scene",
		"Resolution: 1080p",
		"Camera Body:",
		"[SETTINGS]",
	} {
		if !strings.Contains(result.Content, frag) {
			t.Errorf("missing fragment %q", frag)
		}
	}
}

func TestScenePromptDumpOrderAndSeparators(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformVeo)

	result, err := s.ScenePromptDump(project)
	if err != nil {
		t.Fatalf("ScenePromptDump: %v", err)
	}

	first := strings.Index(result.Content, "[SCENE 1: Opening]")
	second := strings.Index(result.Content, "[SCENE 2: The Turn]")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("scenes missing or out of order: %d, %d", first, second)
	}
	if !strings.Contains(result.Content, strings.Repeat("=", 60)) {
		t.Error("scene separator missing")
	}
	if !strings.Contains(result.Title, "veo-prompts") {
		t.Errorf("unexpected title %q", result.Title)
	}
}

func TestExportRequiresScenes(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformVeo)
	project.GeneratedScenes = nil

	if _, err := s.FullPackage(project); err == nil {
		t.Error("FullPackage should fail without scenes")
	}
	if _, err := s.ScenePromptDump(project); err == nil {
		t.Error("ScenePromptDump should fail without scenes")
	}
	if _, err := s.ProductionGuide(project); err == nil {
		t.Error("ProductionGuide should fail without scenes")
	}
}

func TestReferenceImagePromptsRequiresCharacters(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformVeo)
	project.Characters = nil

	if _, err := s.ReferenceImagePrompts(project); err == nil {
		t.Error("ReferenceImagePrompts should fail without characters")
	}
}

func TestExportHistoryRecordsSavedFiles(t *testing.T) {
	s := newTestExportService(t)
	project := exportTestProject(models.PlatformVeo)

	result, err := s.ScenePromptDump(project)
	if err != nil {
		t.Fatalf("ScenePromptDump: %v", err)
	}
	if result.FilePath == "" {
		t.Fatal("export should persist to the archive")
	}

	files, err := s.ExportHistory()
	if err != nil {
		t.Fatalf("ExportHistory: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 archived file, got %d", len(files))
	}
	if !strings.HasPrefix(files[0].Name, "test-saga-veo-prompts-") {
		t.Errorf("unexpected archive name %q", files[0].Name)
	}

	content, err := s.LoadExport(files[0].Name)
	if err != nil {
		t.Fatalf("LoadExport: %v", err)
	}
	if string(content) != result.Content {
		t.Error("archived content differs from export result")
	}
}
