// internal/composer/veo_test.go
package composer

import (
	"strings"
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

func hulkCharacter() models.Character {
	return models.Character{
		ID:                  "char-hulk",
		Name:                "Hulk",
		Role:                models.RoleHero,
		PhysicalDescription: "green giant",
		Clothing:            "torn shorts",
		EmotionalTraits:     []string{"protective"},
	}
}

func TestVeoPromptHulkScene(t *testing.T) {
	scene := models.GeneratedScene{
		ID:                "scene-1",
		SceneNumber:       1,
		Description:       "roars at villain",
		CharacterIDs:      []string{"Hulk"},
		Dialogue:          "Ab bahut ho gaya!",
		Emotion:           "angry",
		VisualDescription: "dusty village square at noon",
		SuggestedCamera:   "handheld close tracking",
		SuggestedLighting: "harsh midday sun",
		Duration:          8,
		VeoParams: &models.VeoParams{
			CameraAngle:    "low-angle",
			CameraMovement: "dolly-in",
			LightingStyle:  "natural-sunlight",
			Duration:       8,
		},
	}

	prompt := VeoPrompt(scene, []models.Character{hulkCharacter()}, "indian-village")

	wantFragments := []string{
		"CHARACTERS: Hulk (green giant, wearing torn shorts)",
		"ACTION: roars at villain",
		`Hulk says with angry emotion, "Ab bahut ho gaya!"`,
	}
	lastIdx := -1
	for _, frag := range wantFragments {
		idx := strings.Index(prompt, frag)
		if idx < 0 {
			t.Fatalf("missing fragment %q in prompt:\n%s", frag, prompt)
		}
		if idx < lastIdx {
			t.Errorf("fragment %q out of order", frag)
		}
		lastIdx = idx
	}

	if !strings.HasPrefix(prompt, "Low Angle, Dolly In, handheld close tracking") {
		t.Errorf("unexpected camera line: %q", strings.SplitN(prompt, "\n", 2)[0])
	}
	if !strings.Contains(prompt, "LIGHTING: Natural Sunlight lighting. harsh midday sun") {
		t.Error("lighting section malformed")
	}
	if !strings.Contains(prompt, "EMOTION: angry mood and atmosphere.") {
		t.Error("emotion section malformed")
	}
}

func TestVeoPromptDeterministic(t *testing.T) {
	scene := models.GeneratedScene{
		CharacterIDs:      []string{"Hulk"},
		Description:       "stands tall",
		Emotion:           "determined",
		VisualDescription: "open field",
		SuggestedCamera:   "static wide",
		SuggestedLighting: "golden light",
	}
	chars := []models.Character{hulkCharacter()}

	first := VeoPrompt(scene, chars, "bollywood-drama")
	for i := 0; i < 10; i++ {
		if got := VeoPrompt(scene, chars, "bollywood-drama"); got != first {
			t.Fatalf("iteration %d produced different output", i)
		}
	}
}

func TestParticipantUnionMatch(t *testing.T) {
	maya := models.Character{ID: "x7", Name: "Maya"}
	chars := []models.Character{maya}

	byID := Participants(models.GeneratedScene{CharacterIDs: []string{"x7"}}, chars)
	if len(byID) != 1 || byID[0].Name != "Maya" {
		t.Errorf("lookup by id failed: %v", byID)
	}

	byName := Participants(models.GeneratedScene{CharacterIDs: []string{"Maya"}}, chars)
	if len(byName) != 1 || byName[0].ID != "x7" {
		t.Errorf("lookup by name failed: %v", byName)
	}

	missing := Participants(models.GeneratedScene{CharacterIDs: []string{"nonexistent"}}, chars)
	if len(missing) != 0 {
		t.Errorf("expected empty set, got %v", missing)
	}
}

func TestVeoPromptOmitsOptionalSections(t *testing.T) {
	scene := models.GeneratedScene{
		Description:       "empty village",
		Emotion:           "calm",
		VisualDescription: "morning mist",
		SuggestedCamera:   "static",
		SuggestedLighting: "soft light",
	}

	prompt := VeoPrompt(scene, nil, "dark-moody")
	for _, frag := range []string{"SFX:", "Ambient:", "Audio:", "says with"} {
		if strings.Contains(prompt, frag) {
			t.Errorf("unexpected fragment %q", frag)
		}
	}
}

func TestVeoPromptAmbientOverridesSuggestedAudio(t *testing.T) {
	scene := models.GeneratedScene{
		Emotion:           "calm",
		SuggestedAudio:    "gentle music",
		VisualDescription: "field",
		SuggestedCamera:   "static",
		SuggestedLighting: "soft",
		VeoParams: &models.VeoParams{
			SoundEffects: []string{"birds chirping"},
			AmbientSound: "quiet village morning",
		},
	}

	prompt := VeoPrompt(scene, nil, "indian-village")
	if !strings.Contains(prompt, "SFX: birds chirping\nAmbient: quiet village morning") {
		t.Errorf("audio block malformed:\n%s", prompt)
	}
	if strings.Contains(prompt, "Audio: gentle music") {
		t.Error("suggestedAudio should be suppressed when ambient sound is set")
	}
}
