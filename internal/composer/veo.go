// internal/composer/veo.go
package composer

import (
	"strings"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/models"
)

// VeoPrompt 把 AI 场景合成为 Veo 3.1 提示词。
// 段落顺序固定：机位行、画面描述、CHARACTERS、ACTION、LIGHTING、
// STYLE（含固定质量后缀）、EMOTION、对白行、SFX/Ambient 或 Audio。
// 缺失的可选段落直接省略，不报错。
func VeoPrompt(scene models.GeneratedScene, characters []models.Character, stylePreset string) string {
	participants := Participants(scene, characters)
	params := scene.VeoParams

	var cameraAngle, cameraMovement, lensEffect, lightingStyle string
	if params != nil {
		if info, ok := catalog.Angle(params.CameraAngle); ok {
			cameraAngle = info.Name
		}
		if info, ok := catalog.VeoMovement(params.CameraMovement); ok {
			cameraMovement = info.Name
		}
		if info, ok := catalog.LensEffect(params.LensEffect); ok {
			lensEffect = info.Name
		}
		if info, ok := catalog.LightingStyle(params.LightingStyle); ok {
			lightingStyle = info.Name
		}
	}

	var b strings.Builder

	if cameraAngle != "" {
		b.WriteString(cameraAngle + ", ")
	}
	if cameraMovement != "" {
		b.WriteString(cameraMovement + ", ")
	}
	b.WriteString(scene.SuggestedCamera)

	b.WriteString("\n\n" + scene.VisualDescription)

	b.WriteString("\n\nCHARACTERS: " + characterBlock(participants))

	b.WriteString("\n\nACTION: " + scene.Description)

	b.WriteString("\n\nLIGHTING: ")
	if lightingStyle != "" {
		b.WriteString(lightingStyle + " lighting. ")
	}
	b.WriteString(scene.SuggestedLighting)

	b.WriteString("\n\nSTYLE: " + catalog.VeoStyleModifier(stylePreset))
	if lensEffect != "" {
		b.WriteString(", " + lensEffect)
	}
	b.WriteString(", hyper-realistic photorealistic quality, cinematic 8K resolution.")

	b.WriteString("\n\nEMOTION: " + scene.Emotion + " mood and atmosphere.")

	if scene.Dialogue != "" {
		speaker := "Character"
		if len(participants) > 0 {
			speaker = participants[0].Name
		}
		b.WriteString("\n\n" + speaker + " says with " + scene.Emotion + " emotion, \"" + scene.Dialogue + "\"")
	}

	if params != nil && len(params.SoundEffects) > 0 {
		b.WriteString("\n\nSFX: " + strings.Join(params.SoundEffects, ", "))
	}

	if params != nil && params.AmbientSound != "" {
		b.WriteString("\nAmbient: " + params.AmbientSound)
	} else if scene.SuggestedAudio != "" {
		b.WriteString("\n\nAudio: " + scene.SuggestedAudio)
	}

	return b.String()
}
