// internal/catalog/catalog_test.go
package catalog

import "testing"

func TestCameraBodyLookup(t *testing.T) {
	body, ok := CameraBody("arri-alexa-35")
	if !ok {
		t.Fatal("expected arri-alexa-35 to exist")
	}
	if body.Name != "ARRI Alexa 35" {
		t.Errorf("unexpected name: %s", body.Name)
	}

	if _, ok := CameraBody("nonexistent-camera"); ok {
		t.Error("expected miss for unknown camera body")
	}
}

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"camera bodies", len(CameraBodyKeys()), 6},
		{"lenses", len(LensKeys()), 11},
		{"apertures", len(ApertureKeys()), 8},
		{"focal length categories", len(FocalLengthKeys()), 5},
		{"veo angles", len(AngleKeys()), 13},
		{"veo movements", len(VeoMovementKeys()), 21},
		{"veo lens effects", len(LensEffectKeys()), 10},
		{"veo lighting styles", len(LightingStyleKeys()), 17},
		{"genres", len(GenreKeys()), 10},
		{"style presets", len(StylePresetKeys()), 8},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestMovementCount(t *testing.T) {
	if got := len(MovementKeys()); got != 58 {
		t.Errorf("expected 58 cinema movements, got %d", got)
	}
	if _, ok := Movement("bullet-time"); !ok {
		t.Error("expected bullet-time movement to exist")
	}
}

func TestFocalLengthFor(t *testing.T) {
	tests := []struct {
		category string
		wantMM   int
	}{
		{"epic-landscape", 18},
		{"environmental-portrait", 28},
		{"balanced", 50},
		{"portrait", 75},
		{"close-up", 100},
	}

	for _, tt := range tests {
		info, ok := FocalLengthFor(tt.category)
		if !ok {
			t.Errorf("%s: expected hit", tt.category)
			continue
		}
		if info.MM != tt.wantMM {
			t.Errorf("%s: got %dmm, want %dmm", tt.category, info.MM, tt.wantMM)
		}
	}
}

func TestStyleModifierFallback(t *testing.T) {
	if got := VeoStyleModifier("unknown-preset"); got != "cinematic visual style" {
		t.Errorf("unexpected fallback: %s", got)
	}
	if got := GenreDescription("telenovela"); got != "telenovela" {
		t.Errorf("unexpected fallback: %s", got)
	}
}
