// internal/services/config_service.go
package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shortreel/promptforge/internal/config"
)

// ConfigService 提供配置管理功能
type ConfigService struct {
	// 缓存最近获取的配置，减少反复访问底层存储
	cachedConfig *config.AppConfig

	// 配置更新时间
	lastUpdated time.Time

	// 配置变更事件订阅者
	subscribers []ConfigChangeSubscriber

	// 互斥锁保护内部状态
	mu sync.RWMutex

	// 连接测试走这里，配置更新后它也需要重建提供者
	llmService *LLMService
}

// ConfigChangeSubscriber 配置变更订阅者接口
type ConfigChangeSubscriber interface {
	OnConfigChanged(oldConfig, newConfig *config.AppConfig)
}

// NewConfigService 创建配置服务实例
func NewConfigService(llmService *LLMService) *ConfigService {
	service := &ConfigService{
		lastUpdated: time.Now(),
		subscribers: make([]ConfigChangeSubscriber, 0),
		llmService:  llmService,
	}

	// 初始化时加载配置到缓存
	service.cachedConfig = config.GetCurrentConfig()

	return service
}

// GetCurrentConfig 获取当前配置
func (s *ConfigService) GetCurrentConfig() *config.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cachedConfig == nil {
		s.cachedConfig = config.GetCurrentConfig()
	}

	return s.cachedConfig
}

// UpdateLLMConfig 更新LLM提供商和配置，并同步重建LLM服务的提供者
func (s *ConfigService) UpdateLLMConfig(provider string, configMap map[string]string) error {
	if provider == "" {
		return errors.New("provider cannot be empty")
	}

	s.mu.Lock()
	oldConfig := s.cachedConfig
	s.mu.Unlock()

	if _, ok := configMap["api_key"]; !ok {
		log.Println("Warning: LLM config missing api_key")
	}

	// 确保有默认模型
	if _, ok := configMap["default_model"]; !ok {
		if fallback, ok := providerDefaultModels[provider]; ok {
			configMap["default_model"] = fallback
		} else {
			configMap["default_model"] = "gpt-4o"
		}
	}

	if err := config.UpdateLLMConfig(provider, configMap); err != nil {
		return err
	}

	// 配置落盘成功后重建提供者，失败只降级为未就绪
	if s.llmService != nil {
		if err := s.llmService.UpdateProvider(provider, configMap); err != nil {
			log.Printf("Warning: provider rebuild failed: %v", err)
		}
	}

	s.mu.Lock()
	s.cachedConfig = config.GetCurrentConfig()
	newConfig := s.cachedConfig
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.notifySubscribers(oldConfig, newConfig)

	return nil
}

// GetLLMProvider 获取当前LLM提供商
func (s *ConfigService) GetLLMProvider() string {
	return s.GetCurrentConfig().LLMProvider
}

// GetLLMConfig 获取LLM配置
func (s *ConfigService) GetLLMConfig() map[string]string {
	return s.GetCurrentConfig().LLMConfig
}

// LLMStatus 返回LLM服务当前的就绪状态
func (s *ConfigService) LLMStatus() (bool, string) {
	if s.llmService == nil {
		return false, "LLM service unavailable"
	}
	return s.llmService.GetProviderStatus()
}

// TestConnection 对当前提供者发起一次最小补全来验证API密钥
func (s *ConfigService) TestConnection(ctx context.Context) (bool, string) {
	if s.llmService == nil || !s.llmService.IsReady() {
		state := "LLM service unavailable"
		if s.llmService != nil {
			state = s.llmService.GetReadyState()
		}
		return false, state
	}

	resp, err := s.llmService.CreateChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: `Say "API connection successful" in exactly those words.`},
		},
		Temperature: 0,
		MaxTokens:   20,
	})
	if err != nil {
		return false, err.Error()
	}
	if len(resp.Choices) == 0 {
		return false, "empty response from provider"
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !strings.Contains(content, "API connection successful") {
		// 模型改写了回答也算连通，只是提示内容不同
		return true, content
	}
	return true, "API connection successful"
}

// SetDebugMode 设置调试模式
func (s *ConfigService) SetDebugMode(enabled bool) error {
	return config.SetDebugMode(enabled)
}

// SubscribeToChanges 订阅配置变更事件
func (s *ConfigService) SubscribeToChanges(subscriber ConfigChangeSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, subscriber)
}

func (s *ConfigService) notifySubscribers(oldConfig, newConfig *config.AppConfig) {
	s.mu.RLock()
	subscribers := make([]ConfigChangeSubscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.OnConfigChanged(oldConfig, newConfig)
	}
}
