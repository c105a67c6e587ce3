// internal/models/story.go
package models

// StoryBeat 四段式故事节拍
type StoryBeat struct {
	ID          string `json:"id"`
	BeatType    string `json:"beatType"` // hook / emotional / conflict / resolution
	Description string `json:"description"`
	Dialogue    string `json:"dialogue"`
	Duration    int    `json:"duration"`
}

// Story 故事骨架
type Story struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Theme    string      `json:"theme"`
	Setting  string      `json:"setting"`
	Beats    []StoryBeat `json:"beats"`
	Language string      `json:"language"`
}

// StoryGenerationResult AI 生成故事的返回结构
type StoryGenerationResult struct {
	Title    string           `json:"title"`
	Synopsis string           `json:"synopsis"`
	Scenes   []GeneratedScene `json:"scenes"`
}
