// internal/normalize/normalize_test.go
package normalize

import (
	"reflect"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"string passthrough", "hello", "hello"},
		{"nil becomes empty", nil, ""},
		{"number", float64(42), "42"},
		{"bool", true, "true"},
		{"object flattened", map[string]interface{}{"top": "kurta", "bottom": "dhoti"}, "bottom: dhoti, top: kurta"},
		{"nested object", map[string]interface{}{"outfit": map[string]interface{}{"color": "red"}}, "outfit: color: red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringDeterministicKeyOrder(t *testing.T) {
	input := map[string]interface{}{"c": "3", "a": "1", "b": "2"}
	want := "a: 1, b: 2, c: 3"
	for i := 0; i < 20; i++ {
		if got := String(input); got != want {
			t.Fatalf("iteration %d: got %q, want %q", i, got, want)
		}
	}
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"bare string wrapped", "hello", []string{"hello"}},
		{"array normalized", []interface{}{"a", float64(1)}, []string{"a", "1"}},
		{"nil empty", nil, []string{}},
		{"object wrapped", map[string]interface{}{"k": "v"}, []string{"k: v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringSlice(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCharacterIdempotent(t *testing.T) {
	raw := map[string]interface{}{
		"name":                "Hulk",
		"role":                "hero",
		"physicalDescription": map[string]interface{}{"build": "massive", "skin": "green"},
		"clothing":            nil,
		"emotionalTraits":     "protective",
		"catchphrases":        []interface{}{"Ab bahut ho gaya!"},
	}

	first := Character(raw)

	if first.Name != "Hulk" {
		t.Errorf("name: %q", first.Name)
	}
	if first.PhysicalDescription != "build: massive, skin: green" {
		t.Errorf("physicalDescription: %q", first.PhysicalDescription)
	}
	if first.Clothing != "" {
		t.Errorf("clothing should be empty, got %q", first.Clothing)
	}
	if !reflect.DeepEqual(first.EmotionalTraits, []string{"protective"}) {
		t.Errorf("emotionalTraits: %v", first.EmotionalTraits)
	}

	// 已规整数据再过一遍必须不变
	again := map[string]interface{}{
		"id":                  first.ID,
		"name":                first.Name,
		"role":                string(first.Role),
		"physicalDescription": first.PhysicalDescription,
		"clothing":            first.Clothing,
		"voiceStyle":          first.VoiceStyle,
		"emotionalTraits":     toInterfaceSlice(first.EmotionalTraits),
		"catchphrases":        toInterfaceSlice(first.Catchphrases),
		"visualStyle":         first.VisualStyle,
	}
	second := Character(again)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCharacterTotality(t *testing.T) {
	// 空输入、怪异输入都不允许 panic
	inputs := []map[string]interface{}{
		{},
		{"name": float64(7), "emotionalTraits": float64(3)},
		{"role": []interface{}{"hero"}, "catchphrases": map[string]interface{}{"a": "b"}},
	}
	for i, raw := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("input %d panicked: %v", i, r)
				}
			}()
			Character(raw)
		}()
	}
}

func TestSceneNormalization(t *testing.T) {
	raw := map[string]interface{}{
		"sceneNumber":  float64(3),
		"title":        "The Stand",
		"characterIds": "Hulk",
		"duration":     float64(8),
		"veoParams": map[string]interface{}{
			"cameraAngle":  "low-angle",
			"soundEffects": "thunder crack",
			"duration":     float64(8),
		},
	}

	scene := Scene(raw)
	if scene.SceneNumber != 3 {
		t.Errorf("sceneNumber: %d", scene.SceneNumber)
	}
	if !reflect.DeepEqual(scene.CharacterIDs, []string{"Hulk"}) {
		t.Errorf("characterIds: %v", scene.CharacterIDs)
	}
	if scene.VeoParams == nil {
		t.Fatal("veoParams missing")
	}
	if !reflect.DeepEqual(scene.VeoParams.SoundEffects, []string{"thunder crack"}) {
		t.Errorf("soundEffects: %v", scene.VeoParams.SoundEffects)
	}
	if scene.CineParams != nil {
		t.Error("higgsfieldParams should be nil")
	}
}

func toInterfaceSlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
