// internal/app/app.go
package app

import (
	"fmt"
	"log"

	"github.com/shortreel/promptforge/internal/config"
	"github.com/shortreel/promptforge/internal/di"
	"github.com/shortreel/promptforge/internal/services"
)

// InitServices 按依赖顺序初始化所有服务并注册到容器
// 调用前必须先完成 config.InitConfig
func InitServices() error {
	container := di.GetContainer()
	cfg := config.GetCurrentConfig()

	// 1. 使用统计（LLM服务依赖它上报调用量）
	statsService := services.NewStatsService(cfg.DataDir)
	container.Register("stats", statsService)

	// 2. LLM服务（其他生成服务的基础依赖）
	llmService, err := services.NewLLMService()
	if err != nil {
		// LLM服务初始化失败不应阻止应用启动，
		// 用户可以稍后通过设置页面配置API密钥
		log.Printf("⚠️ LLM服务初始化失败: %v，将以未配置状态启动", err)
		llmService = services.NewEmptyLLMService()
	}
	llmService.SetUsageStats(statsService)
	container.Register("llm", llmService)

	// 3. 依赖LLM的生成服务
	characterService := services.NewCharacterService(llmService)
	container.Register("character", characterService)

	storyService := services.NewStoryService(llmService)
	container.Register("story", storyService)

	// 4. 无外部依赖的服务
	presetService := services.NewPresetService()
	container.Register("preset", presetService)

	exportService := services.NewExportService()
	container.Register("export", exportService)

	// 5. 配置服务（持有LLM服务引用以便热更新提供者）
	configService := services.NewConfigService(llmService)
	container.Register("config", configService)

	// 验证注册结果
	required := []string{"stats", "llm", "character", "story", "preset", "export", "config"}
	for _, name := range required {
		if container.Get(name) == nil {
			return fmt.Errorf("服务注册失败: %s", name)
		}
	}

	return nil
}
