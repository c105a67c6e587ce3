// internal/api/router.go
package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shortreel/promptforge/internal/config"
	"github.com/shortreel/promptforge/internal/di"
	"github.com/shortreel/promptforge/internal/services"
)

// SetupRouter 配置HTTP路由
func SetupRouter() (*gin.Engine, error) {
	cfg := config.GetCurrentConfig()

	// 获取依赖注入容器
	container := di.GetContainer()

	// 只从容器获取服务，不再创建新实例
	characterService, ok := container.Get("character").(*services.CharacterService)
	if !ok {
		return nil, fmt.Errorf("角色服务未正确初始化")
	}

	storyService, ok := container.Get("story").(*services.StoryService)
	if !ok {
		return nil, fmt.Errorf("故事服务未正确初始化")
	}

	presetService, ok := container.Get("preset").(*services.PresetService)
	if !ok {
		return nil, fmt.Errorf("模板服务未正确初始化")
	}

	exportService, ok := container.Get("export").(*services.ExportService)
	if !ok {
		return nil, fmt.Errorf("导出服务未正确初始化")
	}

	configService, ok := container.Get("config").(*services.ConfigService)
	if !ok {
		return nil, fmt.Errorf("配置服务未正确初始化")
	}

	llmService, ok := container.Get("llm").(*services.LLMService)
	if !ok {
		return nil, fmt.Errorf("LLM服务未正确初始化")
	}

	statsService, ok := container.Get("stats").(*services.StatsService)
	if !ok {
		return nil, fmt.Errorf("统计服务未正确初始化")
	}

	handler := NewHandler(
		characterService,
		storyService,
		presetService,
		exportService,
		configService,
		llmService,
		statsService,
	)

	r := gin.Default()

	// 跨域与请求追踪
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(RequestIDMiddleware())
	r.Use(MetricsMiddleware())

	// HTTPS重定向（生产环境）
	if !cfg.DebugMode {
		r.Use(func(c *gin.Context) {
			if c.Request.Header.Get("X-Forwarded-Proto") != "https" {
				c.Redirect(http.StatusPermanentRedirect,
					"https://"+c.Request.Host+c.Request.URL.Path)
				return
			}
			c.Next()
		})
	}

	// 前端向导静态文件（如有）
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Static("/static", cfg.StaticDir)
	}

	// WebSocket 流式生成
	r.GET("/ws/generate", handler.GenerateWebSocket)

	// 健康检查
	r.GET("/health", handler.Health)

	// ===============================
	// API路由组
	// ===============================
	api := r.Group("/api")
	api.Use(DefaultRateLimit())
	{
		// ===============================
		// 目录查询
		// ===============================
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/veo", handler.GetVeoCatalog)
			catalogGroup.GET("/higgsfield", handler.GetCineCatalog)
			catalogGroup.GET("/styles", handler.GetStyleCatalog)
		}

		// 角色定位解析
		api.POST("/roles/resolve", handler.ResolveRoles)

		// ===============================
		// 角色相关路由
		// ===============================
		charactersGroup := api.Group("/characters")
		{
			charactersGroup.POST("/normalize", handler.NormalizeCharacters)
			charactersGroup.POST("/reference-prompt", handler.BuildReferencePrompt)

			// LLM生成端点限流更严格
			charactersGroup.POST("/generate", GenerationRateLimit(), handler.GenerateCharacters)
			charactersGroup.POST("/custom", GenerationRateLimit(), handler.GenerateCustomCharacter)
			charactersGroup.POST("/reference-prompt/regenerate", GenerationRateLimit(), handler.RegenerateReferencePrompt)
		}

		// 故事生成
		api.POST("/story/generate", GenerationRateLimit(), handler.GenerateStory)

		// ===============================
		// 提示词合成路由
		// ===============================
		promptsGroup := api.Group("/prompts")
		{
			promptsGroup.POST("/compose", handler.ComposePrompt)
			promptsGroup.POST("/scene", handler.ComposeScenePrompt)
			promptsGroup.POST("/timestamp", handler.ComposeTimestampPrompt)
			promptsGroup.POST("/helper", handler.ComposeHelperPrompt)
			promptsGroup.POST("/story", handler.ComposeStoryPrompt)
		}

		// ===============================
		// 导出相关路由
		// ===============================
		exportGroup := api.Group("/export")
		exportGroup.Use(ExportRateLimit())
		{
			exportGroup.POST("/full", handler.ExportFullPackage)
			exportGroup.POST("/guide", handler.ExportProductionGuide)
			exportGroup.POST("/scenes", handler.ExportScenePrompts)
			exportGroup.POST("/reference-images", handler.ExportReferencePrompts)
			exportGroup.GET("/history", handler.GetExportHistory)
			exportGroup.GET("/history/:name", handler.DownloadExport)
		}

		// ===============================
		// 模板相关路由
		// ===============================
		presetsGroup := api.Group("/presets")
		{
			presetsGroup.GET("/characters", handler.GetCharacterPresets)
			presetsGroup.POST("/characters/:id/instantiate", handler.InstantiateCharacterPreset)
			presetsGroup.GET("/scenes", handler.GetScenePresets)
			presetsGroup.POST("/scenes/:id/instantiate", handler.InstantiateScenePreset)
			presetsGroup.GET("/themes", handler.GetStoryThemes)
			presetsGroup.GET("/settings", handler.GetSettingOptions)
			presetsGroup.GET("/sfx", handler.GetSFXOptions)
		}

		// ===============================
		// 设置相关路由
		// ===============================
		settingsGroup := api.Group("/settings")
		{
			settingsGroup.GET("/llm", handler.GetLLMSettings)
			settingsGroup.PUT("/llm", handler.UpdateLLMSettings)
			settingsGroup.POST("/test-connection", handler.TestConnection)
			settingsGroup.GET("/usage", handler.GetUsageStats)
		}

		// LLM模型查询
		api.GET("/llm/models", handler.GetLLMModels)
	}

	return r, nil
}
