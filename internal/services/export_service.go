// internal/services/export_service.go
package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shortreel/promptforge/internal/composer"
	"github.com/shortreel/promptforge/internal/config"
	"github.com/shortreel/promptforge/internal/models"
	"github.com/shortreel/promptforge/internal/storage"
)

// ExportService 把客户端快照装配成可下载的制作文档。
// 纯字符串装配，场景提示词合成并发展开后按场景顺序重组，
// 生成结果同时写入导出存档供历史查询。
type ExportService struct {
	store *storage.ExportStore
}

func NewExportService() *ExportService {
	cfg := config.GetCurrentConfig()
	store, err := storage.NewExportStore(cfg.ExportDir())
	if err != nil {
		// 存档不可用时仍可导出，只是没有历史记录
		log.Printf("⚠️ 初始化导出存档失败: %v", err)
		store = nil
	}
	return &ExportService{store: store}
}

// scenePromptResult 单场景合成结果（并发展开后按下标回填）
type scenePromptResult struct {
	text     string
	settings *models.CineRenderSettings
}

func platformName(p models.Platform) string {
	if p == models.PlatformCine {
		return "Higgsfield Cinema Studio"
	}
	return "Veo 3.1"
}

func platformShort(p models.Platform) string {
	if p == models.PlatformCine {
		return "Higgsfield"
	}
	return "Veo 3.1"
}

// composeScenePrompts 并发合成所有场景的平台提示词，结果保持场景顺序
func (s *ExportService) composeScenePrompts(project *models.Project) []scenePromptResult {
	results := make([]scenePromptResult, len(project.GeneratedScenes))
	isCine := project.Config.VideoPlatform == models.PlatformCine

	var g errgroup.Group
	for i := range project.GeneratedScenes {
		i := i
		g.Go(func() error {
			scene := project.GeneratedScenes[i]
			if isCine {
				prompt, settings := composer.CinePrompt(scene, project.Characters, project.Config.StylePreset, project.Config.CineSettings)
				results[i] = scenePromptResult{text: prompt, settings: &settings}
			} else {
				results[i] = scenePromptResult{text: composer.VeoPrompt(scene, project.Characters, project.Config.StylePreset)}
			}
			return nil
		})
	}
	// 合成不会失败，errgroup 只负责等待
	_ = g.Wait()

	return results
}

func formatCineSettings(settings *models.CineRenderSettings) string {
	return fmt.Sprintf(`Camera: %s + %s
Focal: %dmm @ %s
Movements: %s
Film Grain: %s
Color: %s
Duration: %ds`,
		settings.CameraBody, settings.Lens,
		settings.FocalLength, settings.Aperture,
		strings.Join(settings.Movements, " → "),
		settings.FilmGrain,
		settings.ColorPalette,
		settings.Duration)
}

// ScenePromptDump 全部场景的即用提示词（按场景编号分块）
func (s *ExportService) ScenePromptDump(project *models.Project) (*models.ExportResult, error) {
	if len(project.GeneratedScenes) == 0 {
		return nil, fmt.Errorf("没有可导出的场景")
	}

	prompts := s.composeScenePrompts(project)
	isCine := project.Config.VideoPlatform == models.PlatformCine

	blocks := make([]string, 0, len(prompts))
	for i, result := range prompts {
		scene := project.GeneratedScenes[i]
		if isCine && result.settings != nil {
			blocks = append(blocks, fmt.Sprintf("[SCENE %d: %s]\nPlatform: HIGGSFIELD CINEMA STUDIO\nDuration: %ds | Emotion: %s\n\n[SETTINGS]\n%s\n\n[PROMPT]\n%s",
				i+1, scene.Title, result.settings.Duration, scene.Emotion,
				formatCineSettings(result.settings), result.text))
		} else {
			blocks = append(blocks, fmt.Sprintf("[SCENE %d: %s]\nPlatform: VEO 3.1\nDuration: %ds | Emotion: %s\n\n%s",
				i+1, scene.Title, scene.Duration, scene.Emotion, result.text))
		}
	}

	content := strings.Join(blocks, "\n\n"+strings.Repeat("=", 60)+"\n\n")

	kind := "veo-prompts"
	if isCine {
		kind = "higgsfield-prompts"
	}
	return s.finishExport(project, kind, content)
}

// referencePromptBlocks 角色参考图提示词（已有的优先，否则现场合成）
func referencePromptBlocks(project *models.Project) []string {
	blocks := make([]string, 0, len(project.Characters))
	for _, char := range project.Characters {
		prompt := char.ReferenceImagePrompt
		if prompt == "" {
			prompt = composer.ReferenceImagePrompt(char, project.Config.StylePreset)
		}
		blocks = append(blocks, fmt.Sprintf("[%s - %s]\n%s",
			strings.ToUpper(char.Name), strings.ToUpper(string(char.Role)), prompt))
	}
	return blocks
}

// ReferenceImagePrompts 全部角色的参考图提示词（Imagen/DALL-E 用）
func (s *ExportService) ReferenceImagePrompts(project *models.Project) (*models.ExportResult, error) {
	if len(project.Characters) == 0 {
		return nil, fmt.Errorf("没有可导出的角色")
	}

	content := strings.Join(referencePromptBlocks(project), "\n\n"+strings.Repeat("-", 60)+"\n\n")
	return s.finishExport(project, "character-reference-prompts", content)
}

// FullPackage 完整制作包：项目信息 → 角色 → 参考图提示词 → 分场细目 → 平台提示词
func (s *ExportService) FullPackage(project *models.Project) (*models.ExportResult, error) {
	if len(project.GeneratedScenes) == 0 {
		return nil, fmt.Errorf("没有可导出的场景")
	}

	config := project.Config
	isCine := config.VideoPlatform == models.PlatformCine
	prompts := s.composeScenePrompts(project)

	var b strings.Builder

	headerTitle := "VEO 3.1 PRODUCTION PACKAGE"
	if isCine {
		headerTitle = "HIGGSFIELD CINEMA STUDIO PRODUCTION PACKAGE"
	}
	b.WriteString(strings.Repeat("═", 70) + "\n")
	b.WriteString("                    " + headerTitle + "                    \n")
	b.WriteString(strings.Repeat("═", 70) + "\n\n")

	// 项目信息
	b.WriteString("📋 PROJECT INFO\n")
	b.WriteString(strings.Repeat("─", 70) + "\n")
	b.WriteString("Project Name: " + config.Name + "\n")
	b.WriteString("Video Platform: " + platformName(config.VideoPlatform) + "\n")
	b.WriteString("Genre: " + strings.ReplaceAll(config.Genre, "-", " ") + "\n")
	b.WriteString("Theme: " + config.EffectiveTheme() + "\n")
	b.WriteString("Visual Style: " + strings.ReplaceAll(config.StylePreset, "-", " ") + "\n")
	b.WriteString("Language: " + config.Language + "\n")
	b.WriteString("Aspect Ratio: " + config.AspectRatio + "\n")
	b.WriteString(fmt.Sprintf("Total Scenes: %d\n", config.NumberOfScenes))
	b.WriteString(fmt.Sprintf("Est. Duration: %ds (~%g min)\n",
		config.TargetDuration, math.Round(float64(config.TargetDuration)/60*10)/10))
	if isCine && config.CineSettings != nil {
		cs := config.CineSettings
		b.WriteString(fmt.Sprintf("Scene Duration: %ds per scene\n", cs.SceneDuration))
		b.WriteString("Resolution: " + cs.Resolution + "\n")
		if cs.Upscale != "" && cs.Upscale != "none" {
			b.WriteString("Upscale: " + strings.ToUpper(cs.Upscale) + "\n")
		}
		if cs.SlowMotion {
			b.WriteString("Slow Motion: Enabled\n")
		}
		if cs.KeyframeInterpolation {
			b.WriteString("Keyframe Interpolation: Enabled (Start/End frames)\n")
		}
	}
	b.WriteString("\n")

	// 角色
	b.WriteString("👥 CHARACTERS\n")
	b.WriteString(strings.Repeat("─", 70) + "\n\n")
	for i, char := range project.Characters {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, char.Name, char.Role))
		b.WriteString("   Physical: " + char.PhysicalDescription + "\n")
		b.WriteString("   Clothing: " + char.Clothing + "\n")
		b.WriteString("   Voice: " + char.VoiceStyle + "\n")
		b.WriteString("   Traits: " + strings.Join(char.EmotionalTraits, ", ") + "\n")
		b.WriteString("   Catchphrases: \"" + strings.Join(char.Catchphrases, "\", \"") + "\"\n\n")
	}

	// 参考图提示词
	b.WriteString("\n🎨 CHARACTER REFERENCE IMAGE PROMPTS (For Imagen/DALL-E)\n")
	b.WriteString(strings.Repeat("─", 70) + "\n\n")
	b.WriteString(strings.Join(referencePromptBlocks(project), "\n\n"+strings.Repeat("-", 60)+"\n\n"))
	b.WriteString("\n\n")

	// 分场细目
	b.WriteString("🎬 SCENE-BY-SCENE BREAKDOWN\n")
	b.WriteString(strings.Repeat("─", 70) + "\n\n")
	for i, scene := range project.GeneratedScenes {
		result := prompts[i]
		duration := scene.Duration
		if isCine && result.settings != nil {
			duration = result.settings.Duration
		}

		b.WriteString(fmt.Sprintf("SCENE %d: %s\n", i+1, scene.Title))
		b.WriteString(fmt.Sprintf("Duration: %ds | Emotion: %s\n", duration, scene.Emotion))
		b.WriteString("Characters: " + strings.Join(scene.CharacterIDs, ", ") + "\n")
		b.WriteString("Description: " + scene.Description + "\n")
		b.WriteString(fmt.Sprintf("Dialogue (%s): \"%s\"\n", scene.DialogueLanguage, scene.Dialogue))

		if isCine && result.settings != nil {
			settings := result.settings
			b.WriteString("Camera Body: " + settings.CameraBody + "\n")
			b.WriteString(fmt.Sprintf("Lens: %s @ %dmm, %s\n", settings.Lens, settings.FocalLength, settings.Aperture))
			b.WriteString("Movements: " + strings.Join(settings.Movements, " → ") + "\n")
			b.WriteString("Film Grain: " + settings.FilmGrain + "\n")
			b.WriteString("Color Palette: " + settings.ColorPalette + "\n")
		} else {
			b.WriteString("Camera: " + scene.SuggestedCamera + "\n")
			b.WriteString("Lighting: " + scene.SuggestedLighting + "\n")
		}
		b.WriteString("Audio: " + scene.SuggestedAudio + "\n\n")
	}

	// 平台提示词
	b.WriteString("\n🎥 " + strings.ToUpper(platformShort(config.VideoPlatform)) + " PROMPTS (Ready to Use)\n")
	b.WriteString(strings.Repeat("─", 70) + "\n\n")
	blocks := make([]string, 0, len(prompts))
	for i, result := range prompts {
		scene := project.GeneratedScenes[i]
		if isCine && result.settings != nil {
			blocks = append(blocks, fmt.Sprintf("[SCENE %d: %s]\nPlatform: HIGGSFIELD CINEMA STUDIO\nDuration: %ds | Emotion: %s\n\n[SETTINGS]\n%s\n\n[PROMPT]\n%s",
				i+1, scene.Title, result.settings.Duration, scene.Emotion,
				formatCineSettings(result.settings), result.text))
		} else {
			blocks = append(blocks, fmt.Sprintf("[SCENE %d: %s]\nPlatform: VEO 3.1\nDuration: %ds | Emotion: %s\n\n%s",
				i+1, scene.Title, scene.Duration, scene.Emotion, result.text))
		}
	}
	b.WriteString(strings.Join(blocks, "\n\n"+strings.Repeat("=", 60)+"\n\n"))

	return s.finishExport(project, "full-production-package", b.String())
}

// ProductionGuide 分步制作流程指南
func (s *ExportService) ProductionGuide(project *models.Project) (*models.ExportResult, error) {
	if len(project.GeneratedScenes) == 0 {
		return nil, fmt.Errorf("没有可导出的场景")
	}

	config := project.Config
	isCine := config.VideoPlatform == models.PlatformCine
	short := strings.ToUpper(platformShort(config.VideoPlatform))
	prompts := s.composeScenePrompts(project)

	var b strings.Builder

	b.WriteString(strings.Repeat("═", 70) + "\n")
	b.WriteString("                    " + short + " PRODUCTION WORKFLOW GUIDE                    \n")
	b.WriteString(strings.Repeat("═", 70) + "\n\n")

	b.WriteString("📌 STEP 1: GENERATE CHARACTER REFERENCE IMAGES\n")
	b.WriteString(strings.Repeat("─", 70) + "\n")
	b.WriteString("Use Imagen 3.0 or DALL-E 3 with the prompts below to create\n")
	b.WriteString("consistent character reference images:\n\n")
	for i, char := range project.Characters {
		prompt := char.ReferenceImagePrompt
		if prompt == "" {
			prompt = composer.ReferenceImagePrompt(char, config.StylePreset)
		}
		b.WriteString(fmt.Sprintf("%d. %s:\n%s\n\n", i+1, char.Name, prompt))
	}

	b.WriteString("\n📌 STEP 2: GENERATE VIDEOS WITH " + short + "\n")
	b.WriteString(strings.Repeat("─", 70) + "\n")

	if isCine {
		b.WriteString("Use the prompts and settings below in Higgsfield Cinema Studio.\n")
		b.WriteString("Configure camera body, lens, and movements as specified.\n")
		b.WriteString("Note: Higgsfield only supports 5s and 10s clip durations.\n\n")
		for i, result := range prompts {
			b.WriteString(fmt.Sprintf("Scene %d: %s\n", i+1, project.GeneratedScenes[i].Title))
			if result.settings != nil {
				b.WriteString("[Settings]\n" + formatCineSettings(result.settings) + "\n\n")
			}
			b.WriteString("[Prompt]\n" + result.text + "\n\n")
		}
	} else {
		b.WriteString("Use the prompts below in Google AI Studio or Veo 3.1 API.\n")
		b.WriteString("Upload character reference images for consistency.\n\n")
		for i, result := range prompts {
			b.WriteString(fmt.Sprintf("Scene %d: %s\n", i+1, project.GeneratedScenes[i].Title))
			b.WriteString(result.text + "\n\n")
		}
	}

	b.WriteString("\n📌 STEP 3: POST-PRODUCTION\n")
	b.WriteString(strings.Repeat("─", 70) + "\n")
	b.WriteString("1. Import all generated clips into your editor\n")
	b.WriteString("2. Arrange in scene order\n")
	b.WriteString("3. Add transitions between scenes\n")
	b.WriteString("4. Add background music matching the mood\n")
	b.WriteString("5. Add subtitles for dialogues\n")
	aspectNote := config.AspectRatio
	switch config.AspectRatio {
	case "21:9":
		aspectNote = "21:9 CinemaScope"
	case "9:16":
		aspectNote = "9:16 vertical for Shorts/Reels"
	case "":
		aspectNote = "9:16"
	}
	b.WriteString("6. Export in " + aspectNote + " format\n\n")

	b.WriteString("📌 RECOMMENDED TOOLS:\n")
	b.WriteString(strings.Repeat("─", 70) + "\n")
	b.WriteString("• Character Images: Imagen 3.0, DALL-E 3, Midjourney\n")
	if isCine {
		b.WriteString("• Video Generation: Higgsfield Cinema Studio, Runway ML, Pika Labs\n")
	} else {
		b.WriteString("• Video Generation: Veo 3.1, Runway ML, Pika Labs\n")
	}
	b.WriteString("• Video Editing: CapCut, DaVinci Resolve, Premiere Pro\n")
	b.WriteString("• Music: Suno AI, ElevenLabs for voice\n")

	return s.finishExport(project, "production-guide", b.String())
}

// finishExport 构建导出结果并写入存档
func (s *ExportService) finishExport(project *models.Project, kind, content string) (*models.ExportResult, error) {
	result := &models.ExportResult{
		ID:         uuid.NewString(),
		Title:      fmt.Sprintf("%s - %s", project.Config.Name, kind),
		Format:     "txt",
		Content:    content,
		ExportTime: time.Now(),
	}

	if s.store != nil {
		projectSlug := strings.ToLower(strings.Join(strings.Fields(project.Config.Name), "-"))
		if projectSlug == "" {
			projectSlug = "project"
		}
		fileName := fmt.Sprintf("%s-%s-%s.txt", projectSlug, kind, result.ExportTime.Format("20060102_150405"))

		filePath, fileSize, err := s.store.Save(fileName, []byte(content))
		if err != nil {
			// 落盘失败不阻断导出，客户端仍可拿到内容
			log.Printf("⚠️ 保存导出存档失败: %v", err)
			return result, nil
		}
		result.FilePath = filePath
		result.FileSize = fileSize
	}

	return result, nil
}

// ExportHistory 列出已落盘的导出文件
func (s *ExportService) ExportHistory() ([]storage.ExportFileInfo, error) {
	if s.store == nil {
		return []storage.ExportFileInfo{}, nil
	}
	return s.store.List()
}

// LoadExport 按文件名读取一份存档内容
func (s *ExportService) LoadExport(filename string) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("导出存档不可用")
	}
	return s.store.Load(filename)
}
