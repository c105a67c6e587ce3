// internal/services/story_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/models"
	"github.com/shortreel/promptforge/internal/normalize"
	"github.com/shortreel/promptforge/internal/utils"
)

// StoryService 负责整篇故事与分场景参数的AI生成
type StoryService struct {
	LLMService *LLMService
}

// StoryGenerationRequest 故事生成参数
type StoryGenerationRequest struct {
	Genre          string               `json:"genre"`
	Theme          string               `json:"theme"`
	Characters     []models.Character   `json:"characters"`
	NumberOfScenes int                  `json:"numberOfScenes"`
	Language       string               `json:"language"`
	StylePreset    string               `json:"stylePreset"`
	VideoPlatform  string               `json:"videoPlatform"`
	CineSettings   *models.CineSettings `json:"higgsfieldSettings,omitempty"`
}

// NewStoryService 创建故事服务
func NewStoryService(llmService *LLMService) *StoryService {
	return &StoryService{LLMService: llmService}
}

const cineApertureList = "f/1.4, f/2, f/2.8, f/4, f/5.6, f/8, f/11, f/16"

func cinePlatformInstructions() string {
	return fmt.Sprintf(`
VIDEO PLATFORM: Higgsfield Cinema Studio (PHOTOREALISTIC & ACTION-FOCUSED)
You are generating parameters for Higgsfield Cinema Studio which has REAL cinema camera equipment simulation.

HIGGSFIELD CONTENT FOCUS:
- PHOTOREALISTIC visuals - think Hollywood blockbuster quality
- ACTION-PACKED sequences with dynamic camera work (bullet time, FPV drone, crash zooms)
- SCI-FI/THRILLER aesthetics - modern, sleek, visually striking
- REALISTIC environments - urban, industrial, futuristic, natural landscapes
- HIGH-ENERGY scenes with dramatic camera movements
- NO dialogue generation (Higgsfield is visual-only) - focus on VISUAL STORYTELLING
- English prompts ONLY - avoid non-English text in visual descriptions

AVAILABLE CAMERA BODIES: %s
AVAILABLE LENSES: %s
AVAILABLE APERTURES: %s
AVAILABLE CAMERA MOVEMENTS (can stack up to 3): %s

CAMERA SELECTION GUIDELINES:
- red-v-raptor: ACTION scenes, high detail, modern look (8K sharp) - PREFERRED for action
- arri-alexa-35: Drama, emotional scenes (organic skin tones)
- sony-venice: Night scenes, moody atmosphere (excellent low-light)
- arriflex-16sr: Vintage, documentary feel (16mm film grain)
- panavision-dxl2: Blockbuster epic shots (Hollywood premium)
- imax-film: Epic wide establishing shots (maximum scale)

LENS SELECTION GUIDELINES:
- zeiss-ultra-prime: Thrillers, action (sharp clinical look) - PREFERRED for action/sci-fi
- cooke-s4: Emotional scenes, portraits (warm organic bokeh)
- panavision-c-series: Epic cinema (anamorphic flares)
- hawk-v-lite: Dramatic cinematic widescreen
- canon-k35: Period/vintage scenes (70s soft look)

RECOMMENDED MOVEMENTS FOR ACTION/SCI-FI:
- bullet-time: Frozen action moments
- fpv-drone: Immersive flying through action
- crash-zoom-in/out: Dramatic impact moments
- 360-orbit: Hero/power moments
- whip-pan: Fast transitions
- super-dolly-in/out: Dramatic reveals
- handheld: Urgency, realism

FOCAL LENGTH GUIDELINES (12-135mm):
- 12-24mm: Epic landscapes, establishing shots, action
- 35-50mm: Dialogue, interviews, natural perspective
- 75-100mm: Portraits, emotional close-ups, compression

APERTURE GUIDELINES:
- f/1.4-f/2: Portraits, isolation, low light, creamy bokeh
- f/2.8-f/4: Two-shots, moderate DOF
- f/8-f/16: Landscapes, deep focus, everything sharp`,
		strings.Join(catalog.CameraBodyKeys(), ", "),
		strings.Join(catalog.LensKeys(), ", "),
		cineApertureList,
		strings.Join(catalog.MovementKeys(), ", "))
}

func veoPlatformInstructions() string {
	return fmt.Sprintf(`
VIDEO PLATFORM: Google Veo 3.1
You are generating parameters for Veo 3.1 which uses text-based cinematography descriptions.

AVAILABLE CAMERA ANGLES: %s
AVAILABLE CAMERA MOVEMENTS: %s
AVAILABLE LENS EFFECTS: %s
AVAILABLE LIGHTING STYLES: %s

CAMERA ANGLE GUIDELINES:
- low-angle: Power, dominance, heroic moments
- high-angle: Vulnerability, weakness
- dutch-angle: Tension, unease, disorientation
- close-up/extreme-close-up: Emotion, intensity
- wide-shot: Context, scale, isolation

LIGHTING GUIDELINES:
- golden-hour: Romance, nostalgia
- film-noir: Mystery, drama, shadows
- low-key: Intense, dramatic
- volumetric: Atmospheric, ethereal`,
		strings.Join(catalog.AngleKeys(), ", "),
		strings.Join(catalog.VeoMovementKeys(), ", "),
		strings.Join(catalog.LensEffectKeys(), ", "),
		strings.Join(catalog.LightingStyleKeys(), ", "))
}

func storyLanguageInstruction(language string) string {
	switch language {
	case "hindi":
		return "Hindi (write dialogues in Hindi/Romanized Hindi)"
	case "hinglish":
		return "Hinglish mix"
	default:
		return "English"
	}
}

// GenerateStory 生成完整故事：标题、梗概与逐场景拍摄参数
func (s *StoryService) GenerateStory(ctx context.Context, req StoryGenerationRequest) (*models.StoryGenerationResult, error) {
	if s.LLMService == nil || !s.LLMService.IsReady() {
		return nil, ErrLLMNotReady
	}

	numberOfScenes := req.NumberOfScenes
	if numberOfScenes <= 0 {
		numberOfScenes = 10
	}

	platform := models.Platform(req.VideoPlatform)
	isCine := platform == models.PlatformCine

	characterLines := make([]string, 0, len(req.Characters))
	for _, c := range req.Characters {
		characterLines = append(characterLines, fmt.Sprintf("%s (%s): %s. Clothing: %s. Traits: %s",
			c.Name, c.Role, c.PhysicalDescription, c.Clothing, strings.Join(c.EmotionalTraits, ", ")))
	}

	platformInstructions := veoPlatformInstructions()
	if isCine {
		platformInstructions = cinePlatformInstructions()
	}

	systemPrompt := fmt.Sprintf(`You are a master screenwriter AND cinematographer specializing in viral short-form video content.
You create compelling %s stories with FILMY, dramatic dialogues.
You are also an expert in camera selection, lens choice, and cinematography for AI video generation.

Visual Style: %s
Language: %s
%s

Your dialogues should be:
- EXTREMELY dramatic and memorable (think iconic Bollywood one-liners)
- Emotionally impactful and quotable
- Perfect for 8-second video clips
- Easy to lip-sync

IMPORTANT: Return ONLY valid JSON, no markdown, no explanations.`,
		catalog.GenreDescription(req.Genre),
		catalog.StyleDescription(req.StylePreset),
		storyLanguageInstruction(req.Language),
		platformInstructions)

	platformSpecificFields := `
- veoParams: Object containing:
  * cameraAngle: Select from available angles (e.g., "low-angle")
  * cameraMovement: Select from available movements (e.g., "dolly-in")
  * lensEffect: Select from available effects (e.g., "shallow-dof")
  * lightingStyle: Select from available styles (e.g., "golden-hour")
  * dialogue: The spoken dialogue with emotion
  * soundEffects: Array of specific sound effects (e.g., ["footsteps on gravel", "door creaking"])
  * ambientSound: Background audio (e.g., "quiet village morning, distant roosters")
  * duration: 4, 6, or 8 seconds (Veo 3.1 supported durations)`
	if isCine {
		platformSpecificFields = `
- higgsfieldParams: Object containing:
  * cameraBody: Select from available cameras based on scene mood (e.g., "arri-alexa-35")
  * lens: Select lens based on scene emotion (e.g., "cooke-s4")
  * focalLength: Number 12-135 based on shot type
  * aperture: Select from f/1.4 to f/16 based on DOF needs (e.g., "f/2.8")
  * primaryMovement: Main camera movement (e.g., "dolly-in")
  * secondaryMovement: Optional second movement to stack (e.g., "tilt-up")
  * tertiaryMovement: Optional third movement (e.g., "zoom-in")
  * colorPalette: Describe color mood (e.g., "warm earth tones, golden highlights")
  * filmGrain: "none", "subtle", or "heavy"
  * mood: Emotional atmosphere description
  * duration: 5 or 10 (ONLY these values - Higgsfield limitation)`
	}

	// Higgsfield 固定使用用户选择的时长，Veo 让模型在合法档位中自选
	userSelectedDuration := 5
	if req.CineSettings != nil && req.CineSettings.SceneDuration > 0 {
		userSelectedDuration = req.CineSettings.SceneDuration
	}
	durationInstruction := "- duration: 4, 6, or 8 seconds (Veo 3.1 supported durations - use 4s for quick cuts, 6s for dialogue, 8s for emotional moments)"
	if isCine {
		durationInstruction = fmt.Sprintf("- duration: %d (USER SELECTED - use exactly %d seconds for ALL scenes, this is the user's chosen duration)",
			userSelectedDuration, userSelectedDuration)
	}

	cineExtraInfo := ""
	if isCine && req.CineSettings != nil {
		settings := req.CineSettings
		resolutionMode := "final delivery mode"
		if settings.Resolution == "480p" {
			resolutionMode = "preview/testing mode"
		}
		upscaleInfo := "no upscale"
		if settings.Upscale != "" && settings.Upscale != "none" {
			upscaleInfo = strings.ToUpper(settings.Upscale) + " upscale enabled"
		}
		slowMotionInfo := "disabled"
		if settings.SlowMotion {
			slowMotionInfo = "ENABLED - consider dramatic slow-mo moments"
		}
		keyframeInfo := "disabled"
		if settings.KeyframeInterpolation {
			keyframeInfo = "ENABLED - use start/end keyframe transitions"
		}
		cineExtraInfo = fmt.Sprintf(`
HIGGSFIELD USER SETTINGS (apply to ALL scenes):
- Scene Duration: %ds (MANDATORY - use this exact duration)
- Resolution: %s (%s)
- Upscale: %s
- Slow Motion: %s
- Keyframe Interpolation: %s`,
			settings.SceneDuration, settings.Resolution, resolutionMode, upscaleInfo, slowMotionInfo, keyframeInfo)
	}

	platformName := "Veo 3.1"
	paramsField := "veoParams"
	if isCine {
		platformName = "Higgsfield Cinema Studio"
		paramsField = "higgsfieldParams"
	}

	userPrompt := fmt.Sprintf(`Create a %d-scene story for a viral video series.

THEME: %q
GENRE: %s
VIDEO PLATFORM: %s%s

CHARACTERS (use EXACTLY these names in characterIds):
%s

For each scene, provide EXTREMELY DETAILED information:
- sceneNumber: Sequential number (1 to %d)
- title: Short catchy scene title
- description: Detailed description of what happens (3-4 sentences)
- characterIds: Array of character NAMES involved (use exact names from above)
- dialogue: The MAIN dialogue in %s - make it DRAMATIC, FILMY, MEMORABLE (like iconic movie dialogues)
- dialogueLanguage: %q
- emotion: Primary emotion (angry, sad, determined, fearful, joyful, menacing, romantic, triumphant)
- visualDescription: VERY DETAILED visual description (100+ words) including:
  * Exact setting/location with details
  * Character positions and actions
  * Character expressions and body language
  * Lighting conditions (time of day, light quality, shadows)
  * Weather/atmosphere
  * Background elements
  * Camera perspective description
  * Motion and movement details
- suggestedCamera: Specific camera direction description
- suggestedLighting: Detailed lighting description
- suggestedAudio: Audio/music suggestion
%s
%s

CINEMATOGRAPHY GUIDELINES:
- HOOK scenes (1-2): Use dynamic camera movements, wide establishing shots
- EMOTIONAL scenes: Use close-ups, shallow DOF, warm lenses (cooke-s4 or shallow-dof)
- ACTION scenes: Use tracking shots, wide angles, crash zooms, handheld
- CONFRONTATION scenes: Use low angles for power, dutch angles for tension
- CLIMAX scenes: Use dramatic movements (360-orbit, crane-up, bullet-time)
- Match camera/lens choices to emotional beats

Story structure should follow:
- Scenes 1-2: HOOK - Grab attention immediately, introduce conflict
- Scenes 3-4: RISING TENSION - Build emotional investment
- Scenes 5-7: CONFLICT/CONFRONTATION - Peak drama
- Scenes 8-9: CLIMAX - Maximum emotional impact
- Scene %d: RESOLUTION/TWIST - Satisfying or shocking ending

Return as JSON:
{
  "title": "Story title",
  "synopsis": "2-3 sentence synopsis",
  "scenes": [{ sceneNumber, title, description, characterIds, dialogue, dialogueLanguage, emotion, visualDescription, suggestedCamera, suggestedLighting, suggestedAudio, duration, %s }]
}`,
		numberOfScenes,
		req.Theme,
		strings.ReplaceAll(req.Genre, "-", " "),
		platformName,
		cineExtraInfo,
		strings.Join(characterLines, "\n"),
		numberOfScenes,
		req.Language,
		req.Language,
		durationInstruction,
		platformSpecificFields,
		numberOfScenes,
		paramsField)

	resp, err := s.LLMService.CreateChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatCompletionMessage{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ErrResponseParse
	}

	jsonText, err := ExtractJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: no JSON object in story response", ErrResponseParse)
	}

	var raw struct {
		Title    string        `json:"title"`
		Synopsis string        `json:"synopsis"`
		Scenes   []interface{} `json:"scenes"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	scenes := normalize.SceneList(raw.Scenes)
	for i := range scenes {
		scenes[i].ID = "ai-scene-" + uuid.NewString()
		applySceneDefaults(&scenes[i], platform, userSelectedDuration)
	}

	utils.GetLogger().Info("Generated story", map[string]interface{}{
		"title":    raw.Title,
		"scenes":   len(scenes),
		"platform": req.VideoPlatform,
	})

	return &models.StoryGenerationResult{
		Title:    raw.Title,
		Synopsis: raw.Synopsis,
		Scenes:   scenes,
	}, nil
}

// GenerateScenes 只取场景列表的便捷入口
func (s *StoryService) GenerateScenes(ctx context.Context, req StoryGenerationRequest) ([]models.GeneratedScene, error) {
	result, err := s.GenerateStory(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Scenes, nil
}

// applySceneDefaults 按平台补齐模型遗漏的时长档位
func applySceneDefaults(scene *models.GeneratedScene, platform models.Platform, cineDuration int) {
	if platform == models.PlatformCine {
		if scene.CineParams != nil {
			if scene.CineParams.Duration != 5 && scene.CineParams.Duration != 10 {
				scene.CineParams.Duration = cineDuration
			}
		}
		if scene.Duration != 5 && scene.Duration != 10 {
			scene.Duration = cineDuration
		}
		return
	}

	switch scene.Duration {
	case 4, 6, 8:
	default:
		scene.Duration = 8
	}
	if scene.VeoParams != nil {
		switch scene.VeoParams.Duration {
		case 4, 6, 8:
		default:
			scene.VeoParams.Duration = scene.Duration
		}
	}
}
