// internal/composer/reference.go
package composer

import (
	"strings"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/models"
)

// ReferenceImagePrompt 为角色生成参考图提示词，结构固定
func ReferenceImagePrompt(character models.Character, stylePreset string) string {
	expression := "confident"
	if len(character.EmotionalTraits) > 0 && character.EmotionalTraits[0] != "" {
		expression = character.EmotionalTraits[0]
	}

	var b strings.Builder
	b.WriteString("Hyper-realistic portrait photograph of " + character.Name + ", a " + string(character.Role) + " character.")
	b.WriteString("\n\nPHYSICAL APPEARANCE:\n" + character.PhysicalDescription)
	b.WriteString("\n\nCLOTHING & ACCESSORIES:\n" + character.Clothing)
	b.WriteString("\n\nEXPRESSION & POSE:\n" + expression + " expression, confident pose, looking directly at camera with intense eyes.")
	b.WriteString("\n\nSTYLE:\n" + catalog.ReferenceStyleModifier(stylePreset))
	b.WriteString(`

TECHNICAL REQUIREMENTS:
- 8K ultra high resolution
- Sharp detailed facial features
- Full upper body visible (head to waist)
- Consistent character design suitable for video generation reference
- Clean uncluttered background
- Professional studio quality
- Photorealistic skin texture and details
- Natural realistic proportions

This image will be used as a character reference for AI video generation, so maintain exact consistency in all features.`)

	return b.String()
}
