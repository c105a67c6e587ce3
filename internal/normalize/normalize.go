// internal/normalize/normalize.go
// 数据规整：LLM 返回的 JSON 字段类型经常漂移（字符串字段变对象、
// 数组字段变裸值）。这里把松散解码后的数据压回稳定的领域模型，
// 全程不报错、幂等。
package normalize

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shortreel/promptforge/internal/models"
)

// String 把任意解码值压成字符串：
// 字符串原样通过；nil 归空；对象按键排序展开为 "k: v, k2: v2"；其余标量字符串化。
func String(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := ""
		for i, k := range keys {
			if i > 0 {
				out += ", "
			}
			out += k + ": " + String(v[k])
		}
		return out
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StringSlice 把任意解码值压成字符串数组：
// 数组逐元素规整；裸值包成单元素数组；nil 归空数组。
func StringSlice(value interface{}) []string {
	switch v := value.(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, String(item))
		}
		return out
	case []string:
		return v
	case nil:
		return []string{}
	default:
		return []string{String(v)}
	}
}

// Int 把任意解码值压成整数，失败归零
func Int(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}

// Character 把松散解码的角色数据规整为领域模型
func Character(raw map[string]interface{}) models.Character {
	return models.Character{
		ID:                   String(raw["id"]),
		Name:                 String(raw["name"]),
		Role:                 models.Role(String(raw["role"])),
		PhysicalDescription:  String(raw["physicalDescription"]),
		Clothing:             String(raw["clothing"]),
		VoiceStyle:           String(raw["voiceStyle"]),
		EmotionalTraits:      StringSlice(raw["emotionalTraits"]),
		Catchphrases:         StringSlice(raw["catchphrases"]),
		VisualStyle:          String(raw["visualStyle"]),
		ReferenceImagePrompt: String(raw["referenceImagePrompt"]),
		Backstory:            String(raw["backstory"]),
	}
}

// CharacterList 逐个规整角色数组，非对象元素丢弃
func CharacterList(raw []interface{}) []models.Character {
	out := make([]models.Character, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, Character(m))
		}
	}
	return out
}

// Scene 把松散解码的 AI 场景数据规整为领域模型
func Scene(raw map[string]interface{}) models.GeneratedScene {
	scene := models.GeneratedScene{
		ID:                String(raw["id"]),
		SceneNumber:       Int(raw["sceneNumber"]),
		Title:             String(raw["title"]),
		Description:       String(raw["description"]),
		CharacterIDs:      StringSlice(raw["characterIds"]),
		Dialogue:          String(raw["dialogue"]),
		DialogueLanguage:  String(raw["dialogueLanguage"]),
		Emotion:           String(raw["emotion"]),
		VisualDescription: String(raw["visualDescription"]),
		SuggestedCamera:   String(raw["suggestedCamera"]),
		SuggestedLighting: String(raw["suggestedLighting"]),
		SuggestedAudio:    String(raw["suggestedAudio"]),
		Duration:          Int(raw["duration"]),
	}

	if params, ok := raw["veoParams"].(map[string]interface{}); ok {
		scene.VeoParams = &models.VeoParams{
			CameraAngle:    String(params["cameraAngle"]),
			CameraMovement: String(params["cameraMovement"]),
			LensEffect:     String(params["lensEffect"]),
			LightingStyle:  String(params["lightingStyle"]),
			Dialogue:       String(params["dialogue"]),
			SoundEffects:   StringSlice(params["soundEffects"]),
			AmbientSound:   String(params["ambientSound"]),
			Duration:       Int(params["duration"]),
		}
	}

	if params, ok := raw["higgsfieldParams"].(map[string]interface{}); ok {
		scene.CineParams = &models.CineParams{
			CameraBody:           String(params["cameraBody"]),
			Lens:                 String(params["lens"]),
			FocalLength:          Int(params["focalLength"]),
			Aperture:             String(params["aperture"]),
			PrimaryMovement:      String(params["primaryMovement"]),
			SecondaryMovement:    String(params["secondaryMovement"]),
			TertiaryMovement:     String(params["tertiaryMovement"]),
			CinematographerStyle: String(params["cinematographerStyle"]),
			ColorPalette:         String(params["colorPalette"]),
			FilmGrain:            String(params["filmGrain"]),
			Mood:                 String(params["mood"]),
			Duration:             Int(params["duration"]),
		}
	}

	return scene
}

// SceneList 逐个规整场景数组
func SceneList(raw []interface{}) []models.GeneratedScene {
	out := make([]models.GeneratedScene, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, Scene(m))
		}
	}
	return out
}
