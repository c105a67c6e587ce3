// internal/composer/scene.go
// 手工搭建场景的合成路径：镜头/灯光/音频逐项选择后拼成单段提示词。
package composer

import (
	"fmt"
	"strings"

	"github.com/shortreel/promptforge/internal/models"
)

var cameraMovementPhrases = map[string]string{
	"static":   "static shot",
	"dolly":    "smooth dolly shot moving",
	"tracking": "tracking shot following",
	"crane":    "crane shot ascending",
	"pan":      "slow pan",
	"tilt":     "tilt shot",
	"handheld": "handheld shot with subtle movement",
	"aerial":   "aerial drone shot",
}

var shotTypePhrases = map[string]string{
	"wide":             "Wide shot",
	"medium":           "Medium shot",
	"close-up":         "Close-up",
	"extreme-close-up": "Extreme close-up",
	"pov":              "POV shot",
	"two-shot":         "Two-shot",
}

var anglePhrases = map[string]string{
	"eye-level":   "at eye level",
	"low-angle":   "from a low angle looking up",
	"high-angle":  "from a high angle looking down",
	"dutch-angle": "with a tilted dutch angle",
	"birds-eye":   "from directly above",
}

var focusPhrases = map[string]string{
	"deep-focus":  "with deep focus keeping everything sharp",
	"shallow-dof": "with shallow depth of field blurring the background",
	"rack-focus":  "with rack focus shifting between subjects",
	"soft-focus":  "with dreamy soft focus",
}

var lightingPhrases = map[string]string{
	"dawn":        "at dawn with soft pink and orange light",
	"morning":     "in the morning with fresh natural light",
	"noon":        "at harsh midday with strong overhead sun",
	"golden-hour": "during golden hour with warm amber light",
	"dusk":        "at dusk with fading purple and orange sky",
	"night":       "at night with moonlight and shadows",
	"blue-hour":   "during blue hour with cool twilight tones",
}

var moodPhrases = map[string]string{
	"warm":    "warm color tones",
	"cool":    "cool blue tones",
	"neutral": "balanced natural colors",
	"moody":   "dark moody atmosphere",
	"vibrant": "vibrant saturated colors",
}

var musicMoodPhrases = map[string]string{
	"epic":        "swelling epic orchestral score",
	"emotional":   "gentle emotional piano melody",
	"tense":       "tense suspenseful music",
	"triumphant":  "triumphant victory fanfare",
	"melancholic": "melancholic sad instrumental",
	"none":        "",
}

func handAuthoredCharacterDesc(c models.Character) string {
	parts := []string{c.PhysicalDescription}
	if c.Clothing != "" {
		parts = append(parts, "wearing "+c.Clothing)
	}
	return strings.Join(parts, ", ")
}

func sceneParticipants(scene models.Scene, characters []models.Character) []models.Character {
	out := make([]models.Character, 0, len(characters))
	for _, c := range characters {
		for _, id := range scene.CharacterIDs {
			if id == c.ID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func cinematographySection(scene models.Scene) string {
	camera := scene.Camera
	parts := make([]string, 0, 4)

	if phrase, ok := shotTypePhrases[camera.ShotType]; ok {
		parts = append(parts, phrase)
	} else {
		parts = append(parts, "Medium shot")
	}
	if camera.CameraMovement != "static" {
		if phrase, ok := cameraMovementPhrases[camera.CameraMovement]; ok {
			parts = append(parts, phrase)
		}
	}
	if phrase, ok := anglePhrases[camera.Angle]; ok {
		parts = append(parts, phrase)
	}
	if phrase, ok := focusPhrases[camera.FocusStyle]; ok {
		parts = append(parts, phrase)
	}

	return strings.Join(parts, ", ")
}

func subjectSection(scene models.Scene, characters []models.Character) string {
	participants := sceneParticipants(scene, characters)
	if len(participants) == 0 {
		return ""
	}
	lines := make([]string, 0, len(participants))
	for _, c := range participants {
		lines = append(lines, c.Name+" ("+handAuthoredCharacterDesc(c)+")")
	}
	return strings.Join(lines, " and ")
}

func contextSection(scene models.Scene) string {
	lighting := scene.Lighting
	parts := []string{scene.Setting}
	if phrase, ok := lightingPhrases[lighting.TimeOfDay]; ok {
		parts = append(parts, phrase)
	}
	parts = append(parts, lighting.LightQuality+" "+lighting.LightSource+" lighting")
	if phrase, ok := moodPhrases[lighting.Mood]; ok {
		parts = append(parts, phrase)
	}
	return strings.Join(parts, ", ")
}

func audioSection(scene models.Scene) string {
	audio := scene.Audio
	parts := make([]string, 0, 4)

	if strings.TrimSpace(audio.Dialogue) != "" {
		parts = append(parts, "He says in a "+audio.DialogueEmotion+" voice: \""+audio.Dialogue+"\"")
	}
	if len(audio.SFX) > 0 {
		parts = append(parts, "SFX: "+strings.Join(audio.SFX, ", "))
	}
	if audio.AmbientSound != "" {
		parts = append(parts, "Ambient: "+audio.AmbientSound)
	}
	if audio.MusicMood != "" && audio.MusicMood != "none" {
		parts = append(parts, "Music: "+musicMoodPhrases[audio.MusicMood])
	}

	return strings.Join(parts, ". ")
}

// ScenePrompt 合成手工场景的单段提示词：
// 运镜 + 主体 + 动作 + 场景语境 + 固定质量行 + 音频 + 负面提示
func ScenePrompt(scene models.Scene, characters []models.Character) models.GeneratedPrompt {
	var b strings.Builder

	b.WriteString(cinematographySection(scene))
	if subject := subjectSection(scene, characters); subject != "" {
		b.WriteString(", " + subject)
	}
	b.WriteString(", " + scene.Action)
	b.WriteString(". " + contextSection(scene) + ".")
	b.WriteString(" Hyper-realistic, cinematic 8K quality, photorealistic textures.")

	if audio := audioSection(scene); audio != "" {
		b.WriteString(" " + audio)
	}
	if len(scene.NegativePrompts) > 0 {
		b.WriteString("\n\nNegative: " + strings.Join(scene.NegativePrompts, ", "))
	}

	return models.GeneratedPrompt{
		SceneID:             scene.ID,
		Prompt:              strings.TrimSpace(b.String()),
		CharacterReferences: scene.CharacterIDs,
	}
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// TimestampPrompt 把场景序列拼成带 [MM:SS-MM:SS] 前缀的整段提示词，
// 时间轴按场景时长累加
func TimestampPrompt(scenes []models.Scene, characters []models.Character) string {
	var b strings.Builder
	current := 0

	for i, scene := range scenes {
		start := current
		end := current + scene.Duration

		b.WriteString("[" + formatClock(start) + "-" + formatClock(end) + "] ")
		b.WriteString(ScenePrompt(scene, characters).Prompt)
		if i < len(scenes)-1 {
			b.WriteString("\n\n")
		}

		current = end
	}

	return b.String()
}

// CharacterReference 角色速查卡片文本
func CharacterReference(character models.Character) string {
	return "Character Reference - " + character.Name + ":\n" +
		"Physical: " + character.PhysicalDescription + "\n" +
		"Clothing: " + character.Clothing + "\n" +
		"Voice: " + character.VoiceStyle + "\n" +
		"Emotional Traits: " + strings.Join(character.EmotionalTraits, ", ") + "\n" +
		"Visual Style: " + character.VisualStyle
}

// ChatGPTHelperPrompt 给用户粘贴到聊天助手用的提示词
func ChatGPTHelperPrompt(characters []models.Character) string {
	lines := make([]string, 0, len(characters))
	for _, c := range characters {
		lines = append(lines, "\""+c.Name+"\": "+handAuthoredCharacterDesc(c)+". Voice: "+c.VoiceStyle+". Traits: "+strings.Join(c.EmotionalTraits, ", ")+".")
	}

	return `You are a viral YouTube Shorts scriptwriter specializing in dramatic, emotional storytelling with these characters:

` + strings.Join(lines, "\n") + `

When I describe a scene or situation, generate a detailed AI Video Prompt following this structure:

[Cinematography] + [Subject] + [Action] + [Context] + [Style & Audio]

Include:
- Camera shot type, movement, and angle
- Character's exact actions and expressions
- Setting details with lighting
- Dialogue in Hindi (if needed) with emotion tags
- Sound effects and ambient audio
- Visual style: hyper-realistic, cinematic 8K

Duration: 8 seconds per scene
Language: Dialogue in Hindi, technical terms in English

Example output format:
"Close-up, low angle, [Character Name] (physical description), [action], in [setting]. [Lighting]. [Character] says in [emotion] voice: "[Hindi dialogue]". SFX: [sounds]. Ambient: [background]. Music: [mood]. Hyper-realistic, cinematic 8K."`
}

// StoryPrompt 四段式故事结构提示词
func StoryPrompt(theme, setting, language string) string {
	return `Create a viral YouTube Shorts story (60-90 seconds total, 8 seconds per scene) with this structure:

Theme: ` + theme + `
Setting: ` + setting + `
Language: ` + language + `

Story Structure:
1. HOOK (0-8s): Shocking opening that grabs attention immediately
2. EMOTIONAL (8-16s): Show vulnerability to build empathy
3. CONFLICT (16-24s): Introduce the villain/problem with tension
4. RESOLUTION (24-32s): Satisfying victory or emotional closure

For each beat, provide:
- Scene description
- Character actions
- Dialogue (in ` + language + `)
- Emotional tone
- Visual elements

Make it dramatic, emotional, and memorable. The audience should feel the hero's journey.`
}
