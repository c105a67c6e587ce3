// internal/composer/cine.go
package composer

import (
	"strconv"
	"strings"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/models"
)

// Higgsfield 合成默认值
const (
	defaultCameraBody   = "arri-alexa-35"
	defaultLens         = "cooke-s4"
	defaultFocalLength  = 50
	defaultAperture     = "f/2.8"
	defaultMovement     = "static"
	defaultColorPalette = "Natural cinematic tones"
	defaultFilmGrain    = "subtle"
)

// quantizeDuration 时长量化：显式的 5/10 保留，否则通用时长 ≥8 归 10，其余归 5
func quantizeDuration(explicit, sceneDuration int) int {
	if explicit == 5 || explicit == 10 {
		return explicit
	}
	if sceneDuration >= 8 {
		return 10
	}
	return 5
}

// CinePrompt 把 AI 场景合成为 Higgsfield Cinema Studio 提示词，
// 同时返回渲染设置记录（解析后的机身/镜头/运镜栈与项目级开关）。
func CinePrompt(scene models.GeneratedScene, characters []models.Character, stylePreset string, project *models.CineSettings) (string, models.CineRenderSettings) {
	participants := Participants(scene, characters)
	params := scene.CineParams

	cameraBodyKey := defaultCameraBody
	lensKey := defaultLens
	focalLength := defaultFocalLength
	aperture := defaultAperture
	colorPalette := defaultColorPalette
	filmGrain := defaultFilmGrain
	mood := scene.Emotion
	explicitDuration := 0
	movementKeys := []string{defaultMovement}

	if params != nil {
		if params.CameraBody != "" {
			cameraBodyKey = params.CameraBody
		}
		if params.Lens != "" {
			lensKey = params.Lens
		}
		if params.FocalLength != 0 {
			focalLength = params.FocalLength
		}
		if params.Aperture != "" {
			aperture = params.Aperture
		}
		if params.ColorPalette != "" {
			colorPalette = params.ColorPalette
		}
		if params.FilmGrain != "" {
			filmGrain = params.FilmGrain
		}
		if params.Mood != "" {
			mood = params.Mood
		}
		explicitDuration = params.Duration

		movementKeys = movementKeys[:0]
		if params.PrimaryMovement != "" {
			movementKeys = append(movementKeys, params.PrimaryMovement)
		} else {
			movementKeys = append(movementKeys, defaultMovement)
		}
		if params.SecondaryMovement != "" {
			movementKeys = append(movementKeys, params.SecondaryMovement)
		}
		if params.TertiaryMovement != "" {
			movementKeys = append(movementKeys, params.TertiaryMovement)
		}
	}

	cameraName := "ARRI Alexa 35"
	if info, ok := catalog.CameraBody(cameraBodyKey); ok {
		cameraName = info.Name
	}
	lensName := "Cooke S4"
	if info, ok := catalog.Lens(lensKey); ok {
		lensName = info.Name
	}

	movementNames := make([]string, 0, len(movementKeys))
	for _, key := range movementKeys {
		if info, ok := catalog.Movement(key); ok {
			movementNames = append(movementNames, info.Name)
		}
	}
	if len(movementNames) == 0 {
		movementNames = append(movementNames, "Static")
	}

	var b strings.Builder
	b.WriteString(scene.VisualDescription)
	b.WriteString("\n\nCHARACTERS: " + characterBlock(participants))
	b.WriteString("\n\nACTION: " + scene.Description)
	b.WriteString("\n\nCAMERA: " + cameraName + " with " + lensName + " at " + strconv.Itoa(focalLength) + "mm, " + aperture)
	b.WriteString("\nMOVEMENT: " + strings.Join(movementNames, " + "))
	b.WriteString("\nLIGHTING: " + scene.SuggestedLighting)
	b.WriteString("\nCOLOR: " + colorPalette)
	b.WriteString("\nFILM GRAIN: " + filmGrain)
	b.WriteString("\nMOOD: " + mood)
	b.WriteString("\n\n" + scene.Emotion + " atmosphere, cinematic quality, photorealistic.")

	settings := models.CineRenderSettings{
		CameraBody:   cameraBodyKey,
		Lens:         lensKey,
		FocalLength:  focalLength,
		Aperture:     aperture,
		Movements:    movementKeys,
		ColorPalette: colorPalette,
		FilmGrain:    filmGrain,
		Mood:         mood,
		Duration:     quantizeDuration(explicitDuration, scene.Duration),
	}
	if project != nil {
		settings.Resolution = project.Resolution
		settings.Upscale = project.Upscale
		settings.SlowMotion = project.SlowMotion
		settings.KeyframeInterpolation = project.KeyframeInterpolation
	}

	return b.String(), settings
}
