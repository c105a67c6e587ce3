// internal/models/character.go
package models

// Role 角色定位（与前端向导的字段一一对应）
type Role string

const (
	RoleHero         Role = "hero"
	RoleVillain      Role = "villain"
	RoleSupporting   Role = "supporting"
	RoleMother       Role = "mother"
	RoleLoveInterest Role = "love-interest"
	RoleSidekick     Role = "sidekick"
	RoleCrowd        Role = "crowd"
)

// Character 视频角色卡片
type Character struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Role                 Role     `json:"role"`
	PhysicalDescription  string   `json:"physicalDescription"`
	Clothing             string   `json:"clothing"`
	VoiceStyle           string   `json:"voiceStyle"`
	EmotionalTraits      []string `json:"emotionalTraits"`
	Catchphrases         []string `json:"catchphrases"`
	VisualStyle          string   `json:"visualStyle"`
	ReferenceImagePrompt string   `json:"referenceImagePrompt,omitempty"`
	Backstory            string   `json:"backstory,omitempty"`
}
