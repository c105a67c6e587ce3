// internal/services/preset_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

func TestFilteredCharacterPresetsByPlatform(t *testing.T) {
	s := NewPresetService()

	veo := s.FilteredCharacterPresets(models.PlatformVeo, "")
	cine := s.FilteredCharacterPresets(models.PlatformCine, "")

	if len(veo) == 0 || len(cine) == 0 {
		t.Fatalf("both platforms should have presets, got veo=%d cine=%d", len(veo), len(cine))
	}

	for _, preset := range veo {
		found := false
		for _, p := range preset.Platforms {
			if p == models.PlatformVeo {
				found = true
			}
		}
		if !found {
			t.Errorf("preset %s returned for veo but does not target it", preset.ID)
		}
	}
}

func TestFilteredCharacterPresetsByGenre(t *testing.T) {
	s := NewPresetService()

	all := s.FilteredCharacterPresets(models.PlatformCine, "")
	filtered := s.FilteredCharacterPresets(models.PlatformCine, "horror")

	if len(filtered) == 0 {
		t.Fatal("expected at least one horror preset for higgsfield")
	}
	if len(filtered) >= len(all) {
		t.Errorf("genre filter should narrow results: %d vs %d", len(filtered), len(all))
	}
	for _, preset := range filtered {
		hasGenre := false
		for _, g := range preset.Genres {
			if g == "horror" {
				hasGenre = true
			}
		}
		if !hasGenre {
			t.Errorf("preset %s lacks the horror genre", preset.ID)
		}
	}
}

func TestInstantiateCharacterIssuesFreshID(t *testing.T) {
	s := NewPresetService()
	presets := s.CharacterPresets()
	if len(presets) == 0 {
		t.Fatal("no character presets defined")
	}
	presetID := presets[0].ID

	first, ok := s.InstantiateCharacter(presetID)
	if !ok {
		t.Fatalf("preset %s not found", presetID)
	}
	second, _ := s.InstantiateCharacter(presetID)

	if !strings.HasPrefix(first.ID, "preset-char-") {
		t.Errorf("unexpected id format: %s", first.ID)
	}
	if first.ID == second.ID {
		t.Error("each instantiation should issue a fresh id")
	}
	if first.Name != presets[0].Character.Name {
		t.Errorf("template body should be copied, got name %q", first.Name)
	}

	// Slices must not share backing arrays with the template.
	if len(first.EmotionalTraits) > 0 {
		first.EmotionalTraits[0] = "mutated"
		if presets[0].Character.EmotionalTraits[0] == "mutated" {
			t.Error("instantiation shares EmotionalTraits backing array with template")
		}
	}
}

func TestInstantiateCharacterUnknownPreset(t *testing.T) {
	s := NewPresetService()
	if _, ok := s.InstantiateCharacter("no-such-preset"); ok {
		t.Error("unknown preset id should report not found")
	}
}

func TestInstantiateSceneCopiesTemplate(t *testing.T) {
	s := NewPresetService()
	presets := s.ScenePresets()
	if len(presets) == 0 {
		t.Fatal("no scene presets defined")
	}

	scene, ok := s.InstantiateScene(presets[0].ID)
	if !ok {
		t.Fatalf("preset %s not found", presets[0].ID)
	}
	if !strings.HasPrefix(scene.ID, "preset-scene-") {
		t.Errorf("unexpected id format: %s", scene.ID)
	}
	if scene.Duration != presets[0].Template.Duration {
		t.Errorf("duration not copied: %d vs %d", scene.Duration, presets[0].Template.Duration)
	}
}

func TestPresetCatalogOptionsNonEmpty(t *testing.T) {
	s := NewPresetService()

	if len(s.StoryThemes()) == 0 {
		t.Error("story themes should not be empty")
	}
	if len(s.SettingOptions()) == 0 {
		t.Error("setting options should not be empty")
	}
	if len(s.SFXOptions()) == 0 {
		t.Error("sfx options should not be empty")
	}
}
