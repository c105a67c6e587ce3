// internal/models/preset.go
package models

// CharacterPreset 角色模板（带平台/题材定向）
type CharacterPreset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Platforms   []Platform `json:"platforms"`
	Genres      []string   `json:"genres"`
	Character   Character  `json:"character"` // 模板体，复制时重新发 ID
}

// ScenePreset 场景模板
type ScenePreset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // emotional / action / victory / confrontation / dialogue
	Template    Scene  `json:"template"`
}

// StoryTheme 预设故事主题
type StoryTheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
