// internal/models/project.go
package models

// CineSettings Higgsfield 项目级设置（仅 videoPlatform == higgsfield 时使用）
type CineSettings struct {
	SceneDuration         int    `json:"sceneDuration"` // 5 或 10
	Resolution            string `json:"resolution"`    // 480p / 1080p
	Upscale               string `json:"upscale"`       // none / 2k / 4k / 8k
	SlowMotion            bool   `json:"slowMotion"`
	KeyframeInterpolation bool   `json:"keyframeInterpolation"`
}

// ProjectConfig 向导第一步收集的项目配置
type ProjectConfig struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Genre          string        `json:"genre"`
	Theme          string        `json:"theme"`
	CustomTheme    string        `json:"customTheme,omitempty"` // 非空时覆盖 Theme
	NumberOfScenes int           `json:"numberOfScenes"`
	AspectRatio    string        `json:"aspectRatio"` // 9:16 / 16:9 / 1:1 / 21:9
	StylePreset    string        `json:"stylePreset"`
	Language       string        `json:"language"` // hindi / english / hinglish
	TargetDuration int           `json:"targetDuration"`
	VideoPlatform  Platform      `json:"videoPlatform"`
	CineSettings   *CineSettings `json:"higgsfieldSettings,omitempty"`
}

// EffectiveTheme 自定义主题优先于预设主题
func (c *ProjectConfig) EffectiveTheme() string {
	if c.CustomTheme != "" {
		return c.CustomTheme
	}
	return c.Theme
}

// Project 客户端持有的完整项目快照（服务端不落盘）
type Project struct {
	Config          ProjectConfig    `json:"config"`
	Characters      []Character      `json:"characters"`
	Story           *Story           `json:"story,omitempty"`
	GeneratedScenes []GeneratedScene `json:"generatedScenes"`
	Scenes          []Scene          `json:"scenes,omitempty"`
}
