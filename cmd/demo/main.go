// cmd/demo/main.go
// 离线演示：不依赖LLM，用内置示例项目走完提示词合成流程。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shortreel/promptforge/internal/composer"
	"github.com/shortreel/promptforge/internal/models"
)

func main() {
	platform := flag.String("platform", "veo", "目标平台: veo / higgsfield")
	output := flag.String("o", "", "输出文件（默认打印到stdout）")
	flag.Parse()

	project := sampleProject(*platform)

	var b strings.Builder
	b.WriteString("=== PromptForge 离线演示 ===\n\n")
	b.WriteString(fmt.Sprintf("项目: %s（%s）\n", project.Config.Name, project.Config.VideoPlatform))
	b.WriteString(fmt.Sprintf("角色数: %d，场景数: %d\n\n", len(project.Characters), len(project.GeneratedScenes)))

	// 角色参考图提示词
	b.WriteString("--- 角色参考图提示词 ---\n\n")
	for _, char := range project.Characters {
		b.WriteString("[" + char.Name + "]\n")
		b.WriteString(composer.ReferenceImagePrompt(char, project.Config.StylePreset) + "\n\n")
	}

	// 各场景的平台提示词
	b.WriteString("--- 场景提示词 ---\n\n")
	for i, scene := range project.GeneratedScenes {
		b.WriteString(fmt.Sprintf("[场景 %d: %s]\n", i+1, scene.Title))
		if project.Config.VideoPlatform == models.PlatformCine {
			prompt, settings := composer.CinePrompt(scene, project.Characters, project.Config.StylePreset, project.Config.CineSettings)
			b.WriteString(fmt.Sprintf("机身: %s | 镜头: %s @ %dmm %s\n",
				settings.CameraBody, settings.Lens, settings.FocalLength, settings.Aperture))
			b.WriteString(fmt.Sprintf("运镜: %s\n\n", strings.Join(settings.Movements, " → ")))
			b.WriteString(prompt + "\n\n")
		} else {
			b.WriteString(composer.VeoPrompt(scene, project.Characters, project.Config.StylePreset) + "\n\n")
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(b.String()), 0644); err != nil {
			log.Fatalf("写入输出文件失败: %v", err)
		}
		fmt.Printf("已写入 %s\n", *output)
		return
	}
	fmt.Print(b.String())
}

// sampleProject 构造一个两角色两场景的演示项目
func sampleProject(platform string) *models.Project {
	videoPlatform := models.PlatformVeo
	var cineSettings *models.CineSettings
	if platform == "higgsfield" {
		videoPlatform = models.PlatformCine
		cineSettings = &models.CineSettings{
			SceneDuration: 5,
			Resolution:    "1080p",
			Upscale:       "none",
		}
	}

	hero := models.Character{
		ID:                  "demo-hero",
		Name:                "Arjun",
		Role:                models.RoleHero,
		PhysicalDescription: "Tall athletic man in his early 30s, short black hair, determined brown eyes",
		Clothing:            "worn leather jacket over a grey kurta, dusty boots",
		VoiceStyle:          "low, steady, with a village accent",
		EmotionalTraits:     []string{"resolute", "protective"},
		Catchphrases:        []string{"Ab bas."},
		VisualStyle:         "hyper-realistic",
	}
	villain := models.Character{
		ID:                  "demo-villain",
		Name:                "Thakur",
		Role:                models.RoleVillain,
		PhysicalDescription: "Heavyset man in his 50s, grey moustache, cold unblinking stare",
		Clothing:            "white safari suit, gold rings on every finger",
		VoiceStyle:          "slow, menacing drawl",
		EmotionalTraits:     []string{"ruthless", "calculating"},
		Catchphrases:        []string{"Yeh zameen meri hai."},
		VisualStyle:         "hyper-realistic",
	}

	scenes := []models.GeneratedScene{
		{
			ID:                "demo-scene-1",
			SceneNumber:       1,
			Title:             "The Ultimatum",
			Description:       "Thakur's men surround the village square at dusk as he delivers his ultimatum",
			CharacterIDs:      []string{"Thakur"},
			Dialogue:          "Kal tak jawab chahiye.",
			DialogueLanguage:  "hindi",
			Emotion:           "menacing",
			VisualDescription: "Dust hangs in the orange dusk light over the packed village square",
			SuggestedCamera:   "slow push-in from low angle",
			SuggestedLighting: "golden hour backlight with long shadows",
			SuggestedAudio:    "murmuring crowd falls silent, distant temple bell",
			Duration:          8,
		},
		{
			ID:                "demo-scene-2",
			SceneNumber:       2,
			Title:             "Arjun Steps Forward",
			Description:       "Arjun pushes through the crowd and plants himself between Thakur and the villagers",
			CharacterIDs:      []string{"Arjun", "Thakur"},
			Dialogue:          "Ab bas.",
			DialogueLanguage:  "hindi",
			Emotion:           "defiant",
			VisualDescription: "The crowd parts as Arjun walks forward, jaw set, fists clenched",
			SuggestedCamera:   "tracking shot following Arjun, then hard cut to face-off two-shot",
			SuggestedLighting: "hard side light, deep shadows",
			SuggestedAudio:    "footsteps on dry earth, rising percussion",
			Duration:          8,
		},
	}

	return &models.Project{
		Config: models.ProjectConfig{
			ID:             "demo-project",
			Name:           "Village Standoff",
			Genre:          "action-drama",
			Theme:          "revenge",
			NumberOfScenes: len(scenes),
			AspectRatio:    "9:16",
			StylePreset:    "cinematic-realistic",
			Language:       "hindi",
			TargetDuration: 16,
			VideoPlatform:  videoPlatform,
			CineSettings:   cineSettings,
		},
		Characters:      []models.Character{hero, villain},
		GeneratedScenes: scenes,
	}
}
