// internal/api/error_codes.go
package api

// API错误代码常量
const (
	// 通用错误
	ErrorBadRequest    = "BAD_REQUEST"
	ErrorNotFound      = "NOT_FOUND"
	ErrorInternalError = "INTERNAL_ERROR"
	ErrorConflict      = "CONFLICT"

	// 角色相关错误
	ErrorCharacterInvalid          = "CHARACTER_INVALID"
	ErrorCharacterGenerationFailed = "CHARACTER_GENERATION_FAILED"

	// 故事/场景相关错误
	ErrorStoryGenerationFailed = "STORY_GENERATION_FAILED"
	ErrorSceneInvalid          = "SCENE_INVALID"

	// 提示词合成相关错误
	ErrorPromptComposeFailed   = "PROMPT_COMPOSE_FAILED"
	ErrorAIResponseParseFailed = "AI_RESPONSE_PARSE_FAILED"

	// LLM服务相关错误
	ErrorLLMServiceUnavailable = "LLM_SERVICE_UNAVAILABLE"
	ErrorLLMConfigInvalid      = "LLM_CONFIG_INVALID"
	ErrorConnectionFailed      = "CONNECTION_FAILED"

	// 模板相关错误
	ErrorPresetNotFound = "PRESET_NOT_FOUND"

	// 导出相关错误
	ErrorExportFailed        = "EXPORT_FAILED"
	ErrorExportDataEmpty     = "EXPORT_DATA_EMPTY"
	ErrorExportFormatInvalid = "EXPORT_FORMAT_INVALID"

	// 配置健康相关
	ErrorConfigNotLoaded    = "CONFIG_NOT_LOADED"
	ErrorLLMProviderMissing = "LLM_PROVIDER_MISSING"
	ErrorAPIKeyMissing      = "API_KEY_MISSING"

	// 限流
	ErrorRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)
