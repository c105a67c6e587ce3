// internal/composer/scene_test.go
package composer

import (
	"strings"
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

func handScene() models.Scene {
	return models.Scene{
		ID:           "scene-1",
		SceneNumber:  1,
		CharacterIDs: []string{"char-hulk"},
		Action:       "clenches fists as the ground trembles",
		Camera: models.CameraSettings{
			ShotType:       "close-up",
			CameraMovement: "dolly",
			Angle:          "low-angle",
			FocusStyle:     "deep-focus",
		},
		Lighting: models.LightingSettings{
			TimeOfDay:    "noon",
			LightQuality: "hard",
			LightSource:  "natural",
			Mood:         "warm",
		},
		Audio: models.AudioSettings{
			Dialogue:        "Ab bahut ho gaya!",
			DialogueEmotion: "angry",
			SFX:             []string{"ground rumbling"},
			AmbientSound:    "tension building",
			MusicMood:       "tense",
		},
		Setting:  "dusty village square",
		Duration: 8,
	}
}

func TestScenePromptStructure(t *testing.T) {
	prompt := ScenePrompt(handScene(), []models.Character{hulkCharacter()})

	if !strings.HasPrefix(prompt.Prompt, "Close-up, smooth dolly shot moving, from a low angle looking up, with deep focus keeping everything sharp") {
		t.Errorf("cinematography section malformed:\n%s", prompt.Prompt)
	}
	for _, frag := range []string{
		"Hulk (green giant, wearing torn shorts)",
		"clenches fists as the ground trembles",
		"dusty village square, at harsh midday with strong overhead sun, hard natural lighting, warm color tones",
		"Hyper-realistic, cinematic 8K quality, photorealistic textures.",
		`He says in a angry voice: "Ab bahut ho gaya!"`,
		"SFX: ground rumbling",
		"Ambient: tension building",
		"Music: tense suspenseful music",
	} {
		if !strings.Contains(prompt.Prompt, frag) {
			t.Errorf("missing fragment %q:\n%s", frag, prompt.Prompt)
		}
	}
}

func TestScenePromptNegative(t *testing.T) {
	scene := handScene()
	scene.NegativePrompts = []string{"blurry", "low quality"}
	prompt := ScenePrompt(scene, nil)
	if !strings.HasSuffix(prompt.Prompt, "Negative: blurry, low quality") {
		t.Errorf("negative section malformed:\n%s", prompt.Prompt)
	}
}

func TestTimestampPrompt(t *testing.T) {
	first := handScene()
	second := handScene()
	second.ID = "scene-2"
	second.SceneNumber = 2
	second.Duration = 6

	out := TimestampPrompt([]models.Scene{first, second}, nil)
	if !strings.HasPrefix(out, "[00:00-00:08] ") {
		t.Errorf("first timestamp malformed:\n%s", out)
	}
	if !strings.Contains(out, "\n\n[00:08-00:14] ") {
		t.Errorf("second timestamp malformed:\n%s", out)
	}
}

func TestTimestampClockRollsMinutes(t *testing.T) {
	scenes := make([]models.Scene, 9)
	for i := range scenes {
		scenes[i] = handScene()
	}
	out := TimestampPrompt(scenes, nil)
	if !strings.Contains(out, "[01:04-01:12] ") {
		t.Errorf("minute rollover malformed:\n%s", out)
	}
}

func TestCharacterReference(t *testing.T) {
	c := hulkCharacter()
	c.VoiceStyle = "thunderous"
	c.VisualStyle = "hyper-realistic"

	ref := CharacterReference(c)
	for _, frag := range []string{
		"Character Reference - Hulk:",
		"Physical: green giant",
		"Clothing: torn shorts",
		"Voice: thunderous",
		"Emotional Traits: protective",
		"Visual Style: hyper-realistic",
	} {
		if !strings.Contains(ref, frag) {
			t.Errorf("missing fragment %q", frag)
		}
	}
}

func TestReferenceImagePrompt(t *testing.T) {
	prompt := ReferenceImagePrompt(hulkCharacter(), "indian-village")

	for _, frag := range []string{
		"Hyper-realistic portrait photograph of Hulk, a hero character.",
		"PHYSICAL APPEARANCE:\ngreen giant",
		"CLOTHING & ACCESSORIES:\ntorn shorts",
		"protective expression, confident pose",
		"TECHNICAL REQUIREMENTS:",
	} {
		if !strings.Contains(prompt, frag) {
			t.Errorf("missing fragment %q", frag)
		}
	}
}

func TestReferenceImagePromptNoTraits(t *testing.T) {
	c := hulkCharacter()
	c.EmotionalTraits = nil
	prompt := ReferenceImagePrompt(c, "indian-village")
	if !strings.Contains(prompt, "confident expression, confident pose") {
		t.Error("expected fallback expression when traits are empty")
	}
}
