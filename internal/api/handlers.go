// internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shortreel/promptforge/internal/catalog"
	"github.com/shortreel/promptforge/internal/composer"
	"github.com/shortreel/promptforge/internal/llm"
	"github.com/shortreel/promptforge/internal/models"
	"github.com/shortreel/promptforge/internal/normalize"
	"github.com/shortreel/promptforge/internal/roles"
	"github.com/shortreel/promptforge/internal/services"
	"github.com/shortreel/promptforge/internal/utils"
)

// Handler 处理API请求
type Handler struct {
	CharacterService *services.CharacterService // 角色生成服务
	StoryService     *services.StoryService     // 故事生成服务
	PresetService    *services.PresetService    // 模板服务
	ExportService    *services.ExportService    // 导出服务
	ConfigService    *services.ConfigService    // 配置服务
	LLMService       *services.LLMService       // LLM服务
	StatsService     *services.StatsService     // 使用统计服务
	Response         *ResponseHelper            // 响应助手
}

// NewHandler 创建API处理器
func NewHandler(
	characterService *services.CharacterService,
	storyService *services.StoryService,
	presetService *services.PresetService,
	exportService *services.ExportService,
	configService *services.ConfigService,
	llmService *services.LLMService,
	statsService *services.StatsService,
) *Handler {
	return &Handler{
		CharacterService: characterService,
		StoryService:     storyService,
		PresetService:    presetService,
		ExportService:    exportService,
		ConfigService:    configService,
		LLMService:       llmService,
		StatsService:     statsService,
		Response:         NewResponseHelper(),
	}
}

// APIResponse 标准API响应格式
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"` // 用于调试和追踪
}

// APIError 标准错误格式
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// respondLLMError 按错误类型映射状态码（未就绪/解析失败/其他）
func (h *Handler) respondLLMError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrLLMNotReady):
		h.Response.ServiceUnavailable(c, ErrorLLMServiceUnavailable, message, err.Error())
	case errors.Is(err, services.ErrResponseParse):
		h.Response.Error(c, http.StatusBadGateway, ErrorAIResponseParseFailed, message, err.Error())
	default:
		h.Response.InternalError(c, message, err.Error())
	}
}

// ========================================
// 目录查询
// ========================================

// GetVeoCatalog Veo 3.1 机位/运镜/镜头效果/灯光目录
func (h *Handler) GetVeoCatalog(c *gin.Context) {
	angles := make(map[string]catalog.AngleInfo)
	for _, key := range catalog.AngleKeys() {
		if info, ok := catalog.Angle(key); ok {
			angles[key] = info
		}
	}

	movements := make(map[string]catalog.VeoMovementInfo)
	for _, key := range catalog.VeoMovementKeys() {
		if info, ok := catalog.VeoMovement(key); ok {
			movements[key] = info
		}
	}

	lensEffects := make(map[string]catalog.LensEffectInfo)
	for _, key := range catalog.LensEffectKeys() {
		if info, ok := catalog.LensEffect(key); ok {
			lensEffects[key] = info
		}
	}

	lightingStyles := make(map[string]catalog.LightingStyleInfo)
	for _, key := range catalog.LightingStyleKeys() {
		if info, ok := catalog.LightingStyle(key); ok {
			lightingStyles[key] = info
		}
	}

	h.Response.Success(c, gin.H{
		"angles":         angles,
		"movements":      movements,
		"lensEffects":    lensEffects,
		"lightingStyles": lightingStyles,
	})
}

// GetCineCatalog Higgsfield 机身/镜头/光圈/运镜/焦段目录
func (h *Handler) GetCineCatalog(c *gin.Context) {
	cameraBodies := make(map[string]catalog.CameraBodyInfo)
	for _, key := range catalog.CameraBodyKeys() {
		if info, ok := catalog.CameraBody(key); ok {
			cameraBodies[key] = info
		}
	}

	lenses := make(map[string]catalog.LensInfo)
	for _, key := range catalog.LensKeys() {
		if info, ok := catalog.Lens(key); ok {
			lenses[key] = info
		}
	}

	apertures := make(map[string]catalog.ApertureInfo)
	for _, key := range catalog.ApertureKeys() {
		if info, ok := catalog.Aperture(key); ok {
			apertures[key] = info
		}
	}

	movements := make(map[string]catalog.MovementInfo)
	for _, key := range catalog.MovementKeys() {
		if info, ok := catalog.Movement(key); ok {
			movements[key] = info
		}
	}

	focalLengths := make(map[string]catalog.FocalLengthInfo)
	for _, key := range catalog.FocalLengthKeys() {
		if info, ok := catalog.FocalLengthFor(key); ok {
			focalLengths[key] = info
		}
	}

	h.Response.Success(c, gin.H{
		"cameraBodies": cameraBodies,
		"lenses":       lenses,
		"apertures":    apertures,
		"movements":    movements,
		"focalLengths": focalLengths,
	})
}

// GetStyleCatalog 题材与视觉风格目录
func (h *Handler) GetStyleCatalog(c *gin.Context) {
	genres := make(map[string]string)
	for _, key := range catalog.GenreKeys() {
		genres[key] = catalog.GenreDescription(key)
	}

	stylePresets := make(map[string]string)
	for _, key := range catalog.StylePresetKeys() {
		stylePresets[key] = catalog.StyleDescription(key)
	}

	h.Response.Success(c, gin.H{
		"genres":       genres,
		"stylePresets": stylePresets,
	})
}

// ========================================
// 角色定位解析
// ========================================

// ResolveRolesRequest 角色定位解析请求
type ResolveRolesRequest struct {
	Theme string `json:"theme"`
	Genre string `json:"genre"`
}

// ResolveRoles 按主题与题材解析可选角色定位及默认勾选
func (h *Handler) ResolveRoles(c *gin.Context) {
	var req ResolveRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	h.Response.Success(c, gin.H{
		"options":         roles.Resolve(req.Theme, req.Genre),
		"defaultSelected": roles.DefaultSelected(req.Theme, req.Genre),
	})
}

// ========================================
// 角色相关
// ========================================

// NormalizeCharacters 把任意形状的角色JSON归一为角色列表
// 接受数组或单个对象（对象会被包装成单元素数组）
func (h *Handler) NormalizeCharacters(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Response.BadRequest(c, "读取请求体失败", err.Error())
		return
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(services.CleanLLMJSONResponse(string(body))), &parsed); err != nil {
		h.Response.BadRequest(c, "请求体不是合法JSON", err.Error())
		return
	}

	var rawList []interface{}
	switch v := parsed.(type) {
	case []interface{}:
		rawList = v
	case map[string]interface{}:
		rawList = []interface{}{v}
	default:
		h.Response.Error(c, http.StatusBadRequest, ErrorCharacterInvalid, "角色数据必须是对象或数组")
		return
	}

	h.Response.Success(c, normalize.CharacterList(rawList))
}

// GenerateCharacters AI生成角色组
func (h *Handler) GenerateCharacters(c *gin.Context) {
	var req services.CharacterGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	characters, err := h.CharacterService.GenerateCharacters(c.Request.Context(), req)
	if err != nil {
		h.respondLLMError(c, "角色生成失败", err)
		return
	}

	h.Response.Success(c, characters)
}

// GenerateCustomCharacter 按自由描述生成单个角色
func (h *Handler) GenerateCustomCharacter(c *gin.Context) {
	var req services.CustomCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	if req.Description == "" {
		h.Response.BadRequest(c, "角色描述不能为空")
		return
	}

	character, err := h.CharacterService.GenerateCustomCharacter(c.Request.Context(), req)
	if err != nil {
		h.respondLLMError(c, "自定义角色生成失败", err)
		return
	}

	h.Response.Success(c, character)
}

// ReferencePromptRequest 参考图提示词请求
type ReferencePromptRequest struct {
	Character   models.Character `json:"character"`
	StylePreset string           `json:"stylePreset"`
}

// BuildReferencePrompt 确定性拼装角色参考图提示词（不走LLM）
func (h *Handler) BuildReferencePrompt(c *gin.Context) {
	var req ReferencePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	prompt := h.CharacterService.BuildReferencePrompt(req.Character, req.StylePreset)
	h.Response.Success(c, gin.H{"referenceImagePrompt": prompt})
}

// RegenerateReferencePrompt 用LLM改写角色参考图提示词
func (h *Handler) RegenerateReferencePrompt(c *gin.Context) {
	var req ReferencePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	prompt, err := h.CharacterService.RegenerateReferencePrompt(c.Request.Context(), req.Character, req.StylePreset)
	if err != nil {
		h.respondLLMError(c, "参考图提示词重生成失败", err)
		return
	}

	h.Response.Success(c, gin.H{"referenceImagePrompt": prompt})
}

// ========================================
// 故事生成
// ========================================

// GenerateStory AI生成完整分场故事
func (h *Handler) GenerateStory(c *gin.Context) {
	var req services.StoryGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	if len(req.Characters) == 0 {
		h.Response.BadRequest(c, "至少需要一个角色")
		return
	}

	result, err := h.StoryService.GenerateStory(c.Request.Context(), req)
	if err != nil {
		h.respondLLMError(c, "故事生成失败", err)
		return
	}

	h.Response.Success(c, result)
}

// ========================================
// 提示词合成
// ========================================

// ComposePromptRequest 平台提示词合成请求
type ComposePromptRequest struct {
	Config     models.ProjectConfig  `json:"config"`
	Characters []models.Character    `json:"characters"`
	Scene      models.GeneratedScene `json:"scene"`
}

// ComposePrompt 把AI场景合成为平台提示词；Higgsfield 同时返回机位设置
func (h *Handler) ComposePrompt(c *gin.Context) {
	var req ComposePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	if req.Config.VideoPlatform == models.PlatformCine {
		prompt, settings := composer.CinePrompt(req.Scene, req.Characters, req.Config.StylePreset, req.Config.CineSettings)
		h.Response.Success(c, gin.H{
			"prompt":   prompt,
			"settings": settings,
		})
		return
	}

	prompt := composer.VeoPrompt(req.Scene, req.Characters, req.Config.StylePreset)
	h.Response.Success(c, gin.H{"prompt": prompt})
}

// ComposeSceneRequest 手工搭建场景的提示词合成请求
type ComposeSceneRequest struct {
	Characters []models.Character `json:"characters"`
	Scene      models.Scene       `json:"scene"`
}

// ComposeScenePrompt 合成手工搭建场景的提示词
func (h *Handler) ComposeScenePrompt(c *gin.Context) {
	var req ComposeSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	h.Response.Success(c, composer.ScenePrompt(req.Scene, req.Characters))
}

// ComposeTimestampRequest 多场景时间轴提示词请求
type ComposeTimestampRequest struct {
	Characters []models.Character `json:"characters"`
	Scenes     []models.Scene     `json:"scenes"`
}

// ComposeTimestampPrompt 把多个手工场景合成为单条带时间轴的提示词
func (h *Handler) ComposeTimestampPrompt(c *gin.Context) {
	var req ComposeTimestampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	if len(req.Scenes) == 0 {
		h.Response.BadRequest(c, "至少需要一个场景")
		return
	}

	h.Response.Success(c, gin.H{"prompt": composer.TimestampPrompt(req.Scenes, req.Characters)})
}

// ComposeHelperRequest ChatGPT辅助提示词请求
type ComposeHelperRequest struct {
	Characters []models.Character `json:"characters"`
}

// ComposeHelperPrompt 生成用于外部聊天工具的场景创意辅助提示词
func (h *Handler) ComposeHelperPrompt(c *gin.Context) {
	var req ComposeHelperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	h.Response.Success(c, gin.H{"prompt": composer.ChatGPTHelperPrompt(req.Characters)})
}

// ComposeStoryPromptRequest 故事底稿提示词请求
type ComposeStoryPromptRequest struct {
	Theme    string `json:"theme"`
	Setting  string `json:"setting"`
	Language string `json:"language"`
}

// ComposeStoryPrompt 生成故事底稿提示词
func (h *Handler) ComposeStoryPrompt(c *gin.Context) {
	var req ComposeStoryPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	h.Response.Success(c, gin.H{"prompt": composer.StoryPrompt(req.Theme, req.Setting, req.Language)})
}

// ========================================
// 导出
// ========================================

func (h *Handler) bindExportProject(c *gin.Context) (*models.Project, bool) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.Response.BadRequest(c, "项目快照无效", err.Error())
		return nil, false
	}
	return &project, true
}

func (h *Handler) respondExport(c *gin.Context, result *models.ExportResult, err error) {
	if err != nil {
		h.Response.Error(c, http.StatusBadRequest, ErrorExportDataEmpty, "导出失败", err.Error())
		return
	}
	format := c.DefaultQuery("format", "txt")
	h.Response.ExportResponse(c, result, format)
}

// ExportFullPackage 导出完整制作包
func (h *Handler) ExportFullPackage(c *gin.Context) {
	project, ok := h.bindExportProject(c)
	if !ok {
		return
	}
	result, err := h.ExportService.FullPackage(project)
	h.respondExport(c, result, err)
}

// ExportProductionGuide 导出分步制作指南
func (h *Handler) ExportProductionGuide(c *gin.Context) {
	project, ok := h.bindExportProject(c)
	if !ok {
		return
	}
	result, err := h.ExportService.ProductionGuide(project)
	h.respondExport(c, result, err)
}

// ExportScenePrompts 导出全部场景提示词
func (h *Handler) ExportScenePrompts(c *gin.Context) {
	project, ok := h.bindExportProject(c)
	if !ok {
		return
	}
	result, err := h.ExportService.ScenePromptDump(project)
	h.respondExport(c, result, err)
}

// ExportReferencePrompts 导出角色参考图提示词
func (h *Handler) ExportReferencePrompts(c *gin.Context) {
	project, ok := h.bindExportProject(c)
	if !ok {
		return
	}
	result, err := h.ExportService.ReferenceImagePrompts(project)
	h.respondExport(c, result, err)
}

// GetExportHistory 列出已落盘的导出存档
func (h *Handler) GetExportHistory(c *gin.Context) {
	files, err := h.ExportService.ExportHistory()
	if err != nil {
		h.Response.InternalError(c, "读取导出存档失败", err.Error())
		return
	}
	h.Response.Success(c, files)
}

// DownloadExport 按文件名下载一份导出存档
func (h *Handler) DownloadExport(c *gin.Context) {
	filename := c.Param("name")
	content, err := h.ExportService.LoadExport(filename)
	if err != nil {
		h.Response.NotFound(c, "导出存档", err.Error())
		return
	}
	h.Response.DownloadResponse(c, string(content), filename, "text/plain")
}

// ========================================
// 模板
// ========================================

// GetCharacterPresets 查询角色模板，支持 platform/genre 过滤
func (h *Handler) GetCharacterPresets(c *gin.Context) {
	platform := c.Query("platform")
	genre := c.Query("genre")

	if platform == "" {
		h.Response.Success(c, h.PresetService.CharacterPresets())
		return
	}

	h.Response.Success(c, h.PresetService.FilteredCharacterPresets(models.Platform(platform), genre))
}

// InstantiateCharacterPreset 实例化角色模板（发放新ID）
func (h *Handler) InstantiateCharacterPreset(c *gin.Context) {
	character, ok := h.PresetService.InstantiateCharacter(c.Param("id"))
	if !ok {
		h.Response.NotFound(c, "模板", c.Param("id"))
		return
	}
	h.Response.Success(c, character)
}

// GetScenePresets 查询场景模板
func (h *Handler) GetScenePresets(c *gin.Context) {
	h.Response.Success(c, h.PresetService.ScenePresets())
}

// InstantiateScenePreset 实例化场景模板（发放新ID）
func (h *Handler) InstantiateScenePreset(c *gin.Context) {
	scene, ok := h.PresetService.InstantiateScene(c.Param("id"))
	if !ok {
		h.Response.NotFound(c, "模板", c.Param("id"))
		return
	}
	h.Response.Success(c, scene)
}

// GetStoryThemes 查询预设故事主题
func (h *Handler) GetStoryThemes(c *gin.Context) {
	h.Response.Success(c, h.PresetService.StoryThemes())
}

// GetSettingOptions 查询预设场景地点
func (h *Handler) GetSettingOptions(c *gin.Context) {
	h.Response.Success(c, h.PresetService.SettingOptions())
}

// GetSFXOptions 查询预设音效
func (h *Handler) GetSFXOptions(c *gin.Context) {
	h.Response.Success(c, h.PresetService.SFXOptions())
}

// ========================================
// 设置与LLM配置
// ========================================

// maskAPIKey 遮蔽密钥，仅保留末4位
func maskAPIKey(key string) string {
	if len(key) <= 4 {
		if key == "" {
			return ""
		}
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// GetLLMSettings 查询当前LLM设置（密钥遮蔽）
func (h *Handler) GetLLMSettings(c *gin.Context) {
	cfg := h.ConfigService.GetCurrentConfig()
	if cfg == nil {
		h.Response.Error(c, http.StatusInternalServerError, ErrorConfigNotLoaded, "配置未加载")
		return
	}

	masked := make(map[string]string, len(cfg.LLMConfig))
	for k, v := range cfg.LLMConfig {
		if k == "api_key" {
			masked[k] = maskAPIKey(v)
			continue
		}
		masked[k] = v
	}

	ready, state := h.ConfigService.LLMStatus()
	h.Response.Success(c, gin.H{
		"provider":   cfg.LLMProvider,
		"config":     masked,
		"ready":      ready,
		"readyState": state,
		"providers":  llm.ListProviders(),
	})
}

// UpdateLLMSettingsRequest LLM设置更新请求
type UpdateLLMSettingsRequest struct {
	Provider string            `json:"provider"`
	Config   map[string]string `json:"config"`
}

// UpdateLLMSettings 更新LLM提供商与配置
func (h *Handler) UpdateLLMSettings(c *gin.Context) {
	var req UpdateLLMSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数无效", err.Error())
		return
	}

	if req.Provider == "" {
		h.Response.Error(c, http.StatusBadRequest, ErrorLLMProviderMissing, "provider不能为空")
		return
	}
	if req.Config == nil || req.Config["api_key"] == "" {
		h.Response.Error(c, http.StatusBadRequest, ErrorAPIKeyMissing, "api_key不能为空")
		return
	}

	if err := h.ConfigService.UpdateLLMConfig(req.Provider, req.Config); err != nil {
		h.Response.Error(c, http.StatusInternalServerError, ErrorLLMConfigInvalid, "配置更新失败", err.Error())
		return
	}

	ready, state := h.ConfigService.LLMStatus()
	h.Response.Success(c, gin.H{
		"provider":   req.Provider,
		"ready":      ready,
		"readyState": state,
	}, "配置已更新")
}

// TestConnection 向当前提供者发起一次最小补全验证连通性
func (h *Handler) TestConnection(c *gin.Context) {
	ok, message := h.ConfigService.TestConnection(c.Request.Context())
	if !ok {
		h.Response.Error(c, http.StatusBadGateway, ErrorConnectionFailed, "连接测试失败", message)
		return
	}
	h.Response.Success(c, gin.H{"connected": true, "message": message})
}

// GetLLMModels 查询指定或当前提供商的可用模型
func (h *Handler) GetLLMModels(c *gin.Context) {
	provider := c.Query("provider")
	if provider == "" {
		provider = h.ConfigService.GetLLMProvider()
	}

	supported := llm.GetSupportedModelsForProvider(provider)
	if len(supported) == 0 {
		h.Response.NotFound(c, "提供商", provider)
		return
	}

	h.Response.Success(c, gin.H{
		"provider": provider,
		"models":   supported,
	})
}

// ========================================
// 健康检查
// ========================================

// Health 服务健康状态
func (h *Handler) Health(c *gin.Context) {
	ready, state := h.ConfigService.LLMStatus()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"llm":       gin.H{"ready": ready, "state": state},
		"websocket": GenerateSocketStatus(),
		"metrics":   utils.GetMetricsCollector().GetMetrics(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetUsageStats 查询生成调用的使用统计
func (h *Handler) GetUsageStats(c *gin.Context) {
	h.Response.Success(c, h.StatsService.GetUsageStats())
}
