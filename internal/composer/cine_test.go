// internal/composer/cine_test.go
package composer

import (
	"strings"
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

func TestCinePromptDefaults(t *testing.T) {
	scene := models.GeneratedScene{
		Description:       "walks through ruins",
		Emotion:           "tense",
		VisualDescription: "abandoned factory floor",
		SuggestedLighting: "shafts of dusty light",
		Duration:          4,
	}

	prompt, settings := CinePrompt(scene, nil, "hollywood-action", nil)

	if !strings.Contains(prompt, "CAMERA: ARRI Alexa 35 with Cooke S4 at 50mm, f/2.8") {
		t.Errorf("camera line malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "MOVEMENT: Static") {
		t.Error("movement line malformed")
	}
	if !strings.Contains(prompt, "COLOR: Natural cinematic tones") {
		t.Error("color line malformed")
	}
	if !strings.Contains(prompt, "FILM GRAIN: subtle") {
		t.Error("film grain line malformed")
	}
	if !strings.Contains(prompt, "MOOD: tense") {
		t.Error("mood should fall back to scene emotion")
	}
	if !strings.HasSuffix(prompt, "tense atmosphere, cinematic quality, photorealistic.") {
		t.Error("closing line malformed")
	}

	if settings.CameraBody != "arri-alexa-35" || settings.Lens != "cooke-s4" {
		t.Errorf("settings defaults: %+v", settings)
	}
	if settings.Duration != 5 {
		t.Errorf("duration 4 should quantize to 5, got %d", settings.Duration)
	}
}

func TestCinePromptMovementStack(t *testing.T) {
	scene := models.GeneratedScene{
		Emotion: "epic",
		CineParams: &models.CineParams{
			PrimaryMovement:   "dolly-in",
			SecondaryMovement: "tilt-up",
			TertiaryMovement:  "zoom-in",
		},
	}

	prompt, settings := CinePrompt(scene, nil, "hollywood-action", nil)
	if !strings.Contains(prompt, "MOVEMENT: Dolly In + Tilt Up + Zoom In") {
		t.Errorf("movement stack malformed:\n%s", prompt)
	}
	if len(settings.Movements) != 3 {
		t.Errorf("movements: %v", settings.Movements)
	}
}

func TestDurationQuantization(t *testing.T) {
	tests := []struct {
		name     string
		explicit int
		generic  int
		want     int
	}{
		{"explicit 10 preserved", 10, 4, 10},
		{"explicit 5 preserved", 5, 8, 5},
		{"generic 8 rounds up", 0, 8, 10},
		{"generic 4 rounds down", 0, 4, 5},
		{"generic 6 rounds down", 0, 6, 5},
		{"invalid explicit falls through", 7, 8, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := models.GeneratedScene{Duration: tt.generic}
			if tt.explicit != 0 {
				scene.CineParams = &models.CineParams{Duration: tt.explicit}
			}
			_, settings := CinePrompt(scene, nil, "hollywood-action", nil)
			if settings.Duration != tt.want {
				t.Errorf("got %d, want %d", settings.Duration, tt.want)
			}
		})
	}
}

func TestCinePromptProjectSettings(t *testing.T) {
	project := &models.CineSettings{
		SceneDuration:         10,
		Resolution:            "1080p",
		Upscale:               "4k",
		SlowMotion:            true,
		KeyframeInterpolation: true,
	}

	_, settings := CinePrompt(models.GeneratedScene{Emotion: "calm"}, nil, "dark-moody", project)
	if settings.Resolution != "1080p" || settings.Upscale != "4k" || !settings.SlowMotion || !settings.KeyframeInterpolation {
		t.Errorf("project settings not carried: %+v", settings)
	}
}
