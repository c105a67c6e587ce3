// internal/services/character_service.go
package services

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/composer"
	"github.com/shortreel/promptforge/internal/models"
	"github.com/shortreel/promptforge/internal/normalize"
	"github.com/shortreel/promptforge/internal/utils"
)

const (
	// 生成类请求统一使用高温度与大token上限，保证角色描写足够细致
	generationTemperature = 0.8
	generationMaxTokens   = 8000
)

// CharacterService 负责AI角色生成与参考图提示词
type CharacterService struct {
	LLMService  *LLMService
	promptCache *gocache.Cache
}

// CharacterGenerationRequest 批量角色生成参数
type CharacterGenerationRequest struct {
	Genre              string `json:"genre"`
	NumberOfCharacters int    `json:"numberOfCharacters"`
	StylePreset        string `json:"stylePreset"`
	Language           string `json:"language"`
	VideoPlatform      string `json:"videoPlatform"`
	Theme              string `json:"theme,omitempty"`
}

// CustomCharacterRequest 单个自定义角色生成参数
type CustomCharacterRequest struct {
	Description   string `json:"description"`
	Genre         string `json:"genre"`
	StylePreset   string `json:"stylePreset"`
	Language      string `json:"language"`
	VideoPlatform string `json:"videoPlatform"`
}

// NewCharacterService 创建角色服务
func NewCharacterService(llmService *LLMService) *CharacterService {
	return &CharacterService{
		LLMService:  llmService,
		promptCache: gocache.New(1*time.Hour, 15*time.Minute),
	}
}

func languageInstruction(language string) string {
	switch language {
	case "hindi":
		return "Hindi (Devanagari acceptable)"
	case "hinglish":
		return "Hinglish (Hindi-English mix)"
	default:
		return "English"
	}
}

func platformCharacterFocus(platform models.Platform) string {
	if platform == models.PlatformCine {
		return `
PLATFORM: Higgsfield Cinema Studio (PHOTOREALISTIC FOCUS)
Character designs MUST be:
- PHOTOREALISTIC and visually striking - designed for real cinema camera simulation
- Modern, globally appealing - suitable for international audiences
- Action-ready with dynamic physical presence - strong, athletic, capable
- Focus on REALISTIC clothing, modern fashion, tactical gear, or sci-fi aesthetics
- NO traditional/ethnic clothing unless specifically requested - favor modern/futuristic looks
- Characters should look like they belong in Hollywood action movies, sci-fi thrillers, or high-end drama
- Strong visual contrast and memorable silhouettes
- Physical descriptions must be EXTREMELY detailed for photorealistic AI generation`
	}
	return `
PLATFORM: Google Veo 3.1 (DIALOGUE & EMOTION FOCUS)
Character designs should be:
- Emotionally expressive and relatable
- Suited for dialogue-heavy scenes
- Can include traditional/cultural clothing as appropriate
- Focus on facial expressiveness and body language`
}

// GenerateCharacters 根据题材/主题批量生成角色
func (s *CharacterService) GenerateCharacters(ctx context.Context, req CharacterGenerationRequest) ([]models.Character, error) {
	if s.LLMService == nil || !s.LLMService.IsReady() {
		return nil, ErrLLMNotReady
	}

	count := req.NumberOfCharacters
	if count <= 0 {
		count = 3
	}

	platform := models.Platform(req.VideoPlatform)

	themeContext := ""
	if req.Theme != "" {
		themeContext = fmt.Sprintf("\nSTORY THEME: %q\nCreate characters that fit this specific story theme. Their backgrounds, motivations, and designs should align with this theme.", req.Theme)
	}

	systemPrompt := fmt.Sprintf(`You are a master storyteller and character designer specializing in %s.
Your task is to create compelling, memorable characters for a viral video series.

Visual Style: %s
Language for dialogues: %s
%s%s

IMPORTANT: Return ONLY valid JSON array, no markdown, no explanations.`,
		catalog.GenreDescription(req.Genre),
		catalog.StyleDescription(req.StylePreset),
		languageInstruction(req.Language),
		platformCharacterFocus(platform),
		themeContext)

	styleGuidance := ""
	namePreference := ""
	if platform == models.PlatformCine {
		styleGuidance = `
CRITICAL HIGGSFIELD REQUIREMENTS:
- Create characters suitable for PHOTOREALISTIC video generation
- Names should be modern/international (unless genre requires otherwise)
- Clothing should be modern, tactical, or sci-fi - NOT traditional ethnic wear
- Focus on action-hero physiques, striking appearances, cinematic presence
- Think Hollywood blockbuster casting - visually memorable and camera-ready`
		namePreference = " (modern/international names preferred)"
	}

	themeInstruction := ""
	if req.Theme != "" {
		themeInstruction = fmt.Sprintf("\nSTORY THEME: %q\nDesign characters specifically for this story. Their names, appearances, clothing, and personalities should fit this theme perfectly.", req.Theme)
	}

	userPrompt := fmt.Sprintf(`Create %d unique characters for a %s story.
%s%s

For each character, provide EXTREMELY DETAILED descriptions:
- name: A memorable name fitting the genre%s
- role: One of "hero", "villain", "supporting", "mother", "love-interest", "sidekick"
- physicalDescription: VERY DETAILED physical appearance including:
  * Exact age (e.g., "35-year-old")
  * Skin tone and complexion
  * Face shape, facial features (eyes, nose, lips, jawline)
  * Hair style, color, length
  * Body build (muscular, slim, stocky, etc.)
  * Height (tall, medium, short)
  * Any distinctive features (scars, tattoos, moles, wrinkles)
  * Facial hair for men (beard, mustache style)
- clothing: Extremely specific outfit description including:
  * Exact garment types (kurta, dhoti, saree, shirt, etc.)
  * Colors and patterns
  * Fabric types (cotton, silk, etc.)
  * Accessories (jewelry, watch, turban, dupatta)
  * Footwear
- voiceStyle: How they speak (tone, accent, mannerisms, speech patterns)
- emotionalTraits: Array of 3-4 personality traits
- catchphrases: Array of 2-3 DRAMATIC signature dialogues in %s (filmy one-liners)
- visualStyle: "hyper-realistic"
- referenceImagePrompt: A VERY DETAILED prompt (100+ words) to generate a consistent reference image of this character for AI image generation including all physical details, clothing, pose, expression, and background
- backstory: 2-3 sentences about their background

Return as JSON array: [{ name, role, physicalDescription, clothing, voiceStyle, emotionalTraits, catchphrases, visualStyle, referenceImagePrompt, backstory }]`,
		count,
		strings.ReplaceAll(req.Genre, "-", " "),
		styleGuidance,
		themeInstruction,
		namePreference,
		req.Language)

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

	jsonText, err := ExtractJSONArray(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: no JSON array in character response", ErrResponseParse)
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	characters := normalize.CharacterList(raw)
	for i := range characters {
		characters[i].ID = "ai-char-" + uuid.NewString()
	}

	utils.GetLogger().Info("Generated characters", map[string]interface{}{
		"count":    len(characters),
		"genre":    req.Genre,
		"platform": req.VideoPlatform,
	})

	return characters, nil
}

// GenerateCustomCharacter 根据用户描述生成单个角色
func (s *CharacterService) GenerateCustomCharacter(ctx context.Context, req CustomCharacterRequest) (*models.Character, error) {
	if s.LLMService == nil || !s.LLMService.IsReady() {
		return nil, ErrLLMNotReady
	}

	platform := models.Platform(req.VideoPlatform)

	platformFocus := `PLATFORM: Google Veo 3.1 (DIALOGUE-FOCUSED)
Design a character suitable for emotional, dialogue-heavy Indian content.`
	if platform == models.PlatformCine {
		platformFocus = `PLATFORM: Higgsfield Cinema Studio (PHOTOREALISTIC)
Design a photorealistic character suitable for Hollywood-style action/sci-fi visuals.`
	}

	systemPrompt := fmt.Sprintf(`You are a master character designer. Create ONE detailed character based on user instructions.

Visual Style: %s
Genre: %s
%s

IMPORTANT: Return ONLY valid JSON object (not array), no markdown.`,
		catalog.StyleDescription(req.StylePreset),
		catalog.GenreDescription(req.Genre),
		platformFocus)

	userPrompt := fmt.Sprintf(`Create a character based on this description:
%q

Provide EXTREMELY DETAILED character data:
- name: A memorable name fitting the description
- role: One of "hero", "villain", "supporting", "mother", "love-interest", "sidekick"
- physicalDescription: VERY DETAILED (age, skin tone, face, hair, build, distinctive features)
- clothing: Specific outfit with colors, fabrics, accessories
- voiceStyle: How they speak
- emotionalTraits: Array of 3-4 personality traits
- catchphrases: Array of 2-3 signature dialogues in %s
- visualStyle: "hyper-realistic"
- referenceImagePrompt: DETAILED 100+ word prompt for AI image generation
- backstory: 2-3 sentences background

Return as JSON object: { name, role, physicalDescription, clothing, voiceStyle, emotionalTraits, catchphrases, visualStyle, referenceImagePrompt, backstory }`,
		req.Description,
		req.Language)

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
		return nil, fmt.Errorf("%w: no JSON object in character response", ErrResponseParse)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	character := normalize.Character(raw)
	character.ID = "custom-char-" + uuid.NewString()

	return &character, nil
}

// BuildReferencePrompt 用固定模板合成角色参考图提示词，相同输入直接命中缓存
func (s *CharacterService) BuildReferencePrompt(character models.Character, stylePreset string) string {
	cacheKey := referencePromptCacheKey(character, stylePreset)
	if cached, found := s.promptCache.Get(cacheKey); found {
		if prompt, ok := cached.(string); ok {
			return prompt
		}
	}

	prompt := composer.ReferenceImagePrompt(character, stylePreset)
	s.promptCache.Set(cacheKey, prompt, gocache.DefaultExpiration)
	return prompt
}

// RegenerateReferencePrompt 让模型为编辑过的角色重写参考图提示词
func (s *CharacterService) RegenerateReferencePrompt(ctx context.Context, character models.Character, stylePreset string) (string, error) {
	if s.LLMService == nil || !s.LLMService.IsReady() {
		return "", ErrLLMNotReady
	}

	systemPrompt := `You are an expert at creating prompts for AI image generation.
Create a detailed, consistent reference image prompt for character generation.`

	userPrompt := fmt.Sprintf(`Create a reference image prompt for this character:

NAME: %s
ROLE: %s
PHYSICAL: %s
CLOTHING: %s
PERSONALITY: %s

Create a VERY DETAILED prompt (100+ words) for generating a consistent reference image including:
- All physical details exactly as described
- Exact clothing and accessories
- Appropriate expression and pose
- %s visual style
- 8K hyper-realistic quality
- Professional studio lighting
- Clean background
- Suitable for video generation reference

Return ONLY the prompt text, no explanations or JSON.`,
		character.Name,
		character.Role,
		character.PhysicalDescription,
		character.Clothing,
		strings.Join(character.EmotionalTraits, ", "),
		stylePreset)

	resp, err := s.LLMService.CreateChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatCompletionMessage{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrResponseParse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func referencePromptCacheKey(character models.Character, stylePreset string) string {
	h := md5.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s",
		character.ID,
		character.Name,
		character.PhysicalDescription,
		character.Clothing,
		strings.Join(character.EmotionalTraits, ","),
		stylePreset)
	return fmt.Sprintf("refprompt:%x", h.Sum(nil))
}
