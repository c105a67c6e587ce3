// internal/composer/composer.go
// 提示词合成器：纯函数，无共享状态，同一输入永远产出同一文本。
package composer

import (
	"strings"

	"github.com/shortreel/promptforge/internal/models"
	"github.com/shortreel/promptforge/internal/normalize"
)

// Participants 解析场景参与者：characterIds 允许按名字或 ID 引用，任一命中即算
func Participants(scene models.GeneratedScene, characters []models.Character) []models.Character {
	out := make([]models.Character, 0, len(characters))
	for _, c := range characters {
		for _, ref := range scene.CharacterIDs {
			if ref == c.Name || ref == c.ID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// characterLine 单个角色的镜头内描述
func characterLine(c models.Character) string {
	name := normalize.String(c.Name)
	physical := normalize.String(c.PhysicalDescription)
	clothing := normalize.String(c.Clothing)
	return name + " (" + physical + ", wearing " + clothing + ")"
}

// characterBlock 参与者描述，分号连接
func characterBlock(participants []models.Character) string {
	lines := make([]string, 0, len(participants))
	for _, c := range participants {
		lines = append(lines, characterLine(c))
	}
	return strings.Join(lines, "; ")
}
