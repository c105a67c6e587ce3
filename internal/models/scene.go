// internal/models/scene.go
package models

// Platform 视频生成平台
type Platform string

const (
	PlatformVeo  Platform = "veo-3.1"
	PlatformCine Platform = "higgsfield"
)

// VeoParams Veo 3.1 场景参数（对白/音效向）
type VeoParams struct {
	CameraAngle    string   `json:"cameraAngle"`
	CameraMovement string   `json:"cameraMovement"`
	LensEffect     string   `json:"lensEffect"`
	LightingStyle  string   `json:"lightingStyle"`
	Dialogue       string   `json:"dialogue"`
	SoundEffects   []string `json:"soundEffects"`
	AmbientSound   string   `json:"ambientSound"`
	Duration       int      `json:"duration"` // 4、6 或 8 秒
}

// CineParams Higgsfield Cinema Studio 场景参数（真实摄影机模拟向）
type CineParams struct {
	CameraBody           string `json:"cameraBody"`
	Lens                 string `json:"lens"`
	FocalLength          int    `json:"focalLength"` // 12-135mm
	Aperture             string `json:"aperture"`
	PrimaryMovement      string `json:"primaryMovement"`
	SecondaryMovement    string `json:"secondaryMovement,omitempty"`
	TertiaryMovement     string `json:"tertiaryMovement,omitempty"`
	CinematographerStyle string `json:"cinematographerStyle,omitempty"`
	ColorPalette         string `json:"colorPalette"`
	FilmGrain            string `json:"filmGrain"` // none/subtle/heavy
	Mood                 string `json:"mood"`
	Duration             int    `json:"duration"` // 5 或 10 秒
}

// GeneratedScene AI 生成的场景（含平台专属参数，二选一）
type GeneratedScene struct {
	ID                string      `json:"id"`
	SceneNumber       int         `json:"sceneNumber"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	CharacterIDs      []string    `json:"characterIds"` // 允许按名字或 ID 引用
	Dialogue          string      `json:"dialogue"`
	DialogueLanguage  string      `json:"dialogueLanguage"`
	Emotion           string      `json:"emotion"`
	VisualDescription string      `json:"visualDescription"`
	SuggestedCamera   string      `json:"suggestedCamera"`
	SuggestedLighting string      `json:"suggestedLighting"`
	SuggestedAudio    string      `json:"suggestedAudio"`
	Duration          int         `json:"duration"`
	VeoParams         *VeoParams  `json:"veoParams,omitempty"`
	CineParams        *CineParams `json:"higgsfieldParams,omitempty"`
}

// CameraSettings 手工搭建场景的镜头设置
type CameraSettings struct {
	ShotType       string `json:"shotType"`
	CameraMovement string `json:"cameraMovement"`
	Angle          string `json:"angle"`
	LensType       string `json:"lensType"`
	FocusStyle     string `json:"focusStyle"`
}

// LightingSettings 手工搭建场景的灯光设置
type LightingSettings struct {
	TimeOfDay    string `json:"timeOfDay"`
	LightQuality string `json:"lightQuality"`
	LightSource  string `json:"lightSource"`
	Mood         string `json:"mood"`
}

// AudioSettings 手工搭建场景的音频设置
type AudioSettings struct {
	Dialogue        string   `json:"dialogue"`
	DialogueEmotion string   `json:"dialogueEmotion"`
	SFX             []string `json:"sfx"`
	AmbientSound    string   `json:"ambientSound"`
	MusicMood       string   `json:"musicMood"`
}

// Scene 手工搭建的场景（逐项选择镜头/灯光/音频）
type Scene struct {
	ID              string           `json:"id"`
	SceneNumber     int              `json:"sceneNumber"`
	Title           string           `json:"title,omitempty"`
	CharacterIDs    []string         `json:"characterIds"`
	Action          string           `json:"action"`
	Camera          CameraSettings   `json:"camera"`
	Lighting        LightingSettings `json:"lighting"`
	Audio           AudioSettings    `json:"audio"`
	Setting         string           `json:"setting"`
	Duration        int              `json:"duration"`
	NegativePrompts []string         `json:"negativePrompts"`
}

// GeneratedPrompt 单场景合成结果
type GeneratedPrompt struct {
	SceneID             string   `json:"sceneId"`
	Prompt              string   `json:"prompt"`
	CharacterReferences []string `json:"characterReferences,omitempty"`
}

// CineRenderSettings Higgsfield 导出时随提示词一起返回的机位设置
type CineRenderSettings struct {
	CameraBody            string   `json:"cameraBody"`
	Lens                  string   `json:"lens"`
	FocalLength           int      `json:"focalLength"`
	Aperture              string   `json:"aperture"`
	Movements             []string `json:"movements"`
	ColorPalette          string   `json:"colorPalette"`
	FilmGrain             string   `json:"filmGrain"`
	Mood                  string   `json:"mood"`
	Duration              int      `json:"duration"`
	Resolution            string   `json:"resolution,omitempty"`
	Upscale               string   `json:"upscale,omitempty"`
	SlowMotion            bool     `json:"slowMotion,omitempty"`
	KeyframeInterpolation bool     `json:"keyframeInterpolation,omitempty"`
}
