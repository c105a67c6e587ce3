// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

// 进程内配置单例：基础配置来自环境变量，LLM设置持久化在 <data>/config.json
var (
	currentConfig *AppConfig
	configMutex   sync.RWMutex
	configFile    string
)

// AppConfig 运行时配置，含可在设置页热更新的LLM部分
type AppConfig struct {
	Port         string `json:"port"`
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
	DataDir      string `json:"data_dir"`
	StaticDir    string `json:"static_dir"`
	TemplatesDir string `json:"templates_dir"`
	LogDir       string `json:"log_dir"`
	DebugMode    bool   `json:"debug_mode"`

	LLMProvider string            `json:"llm_provider"`
	LLMConfig   map[string]string `json:"llm_config"`
}

// ExportDir 导出存档目录
func (c *AppConfig) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// Config 启动期基础配置（纯环境变量，不含LLM部分）
type Config struct {
	Port         string
	OpenAIAPIKey string
	DataDir      string
	StaticDir    string
	TemplatesDir string
	LogDir       string
	DebugMode    bool
}

// Load 从环境变量读取基础配置，.env 文件可选
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		DataDir:      getEnvPath("DATA_DIR", "data"),
		StaticDir:    getEnvPath("STATIC_DIR", "static"),
		TemplatesDir: getEnvPath("TEMPLATES_DIR", "web/templates"),
		LogDir:       getEnvPath("LOG_DIR", "logs"),
		DebugMode:    getEnvBool("DEBUG_MODE", true),
	}

	if cfg.OpenAIAPIKey == "" {
		// 密钥缺失不算启动错误，设置页配置后即可生成
		log.Println("警告: 未设置OPENAI_API_KEY，生成功能需在设置页配置后可用")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvPath 读取目录型环境变量并保证目录存在
func getEnvPath(key, fallback string) string {
	path := getEnv(key, fallback)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			log.Printf("警告: 创建目录失败 %s: %v", path, err)
		}
	}
	return path
}

func getEnvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "":
		return fallback
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// InitConfig 建立配置单例：环境变量打底，已保存的LLM设置覆盖其上
func InitConfig(dataDir string) error {
	configFile = filepath.Join(dataDir, "config.json")

	baseConfig, err := Load()
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	currentConfig = defaultAppConfig(baseConfig)

	if data, err := os.ReadFile(configFile); err == nil {
		var saved AppConfig
		if json.Unmarshal(data, &saved) == nil {
			// 文件里只信LLM设置，路径与端口始终以环境变量为准
			saved.Port = baseConfig.Port
			saved.DataDir = baseConfig.DataDir
			saved.StaticDir = baseConfig.StaticDir
			saved.TemplatesDir = baseConfig.TemplatesDir
			saved.LogDir = baseConfig.LogDir
			saved.DebugMode = baseConfig.DebugMode

			if saved.LLMConfig == nil {
				saved.LLMConfig = map[string]string{}
			}
			if saved.LLMConfig["api_key"] == "" {
				saved.LLMConfig["api_key"] = baseConfig.OpenAIAPIKey
			}

			currentConfig = &saved
		}
	}

	return saveLocked()
}

func defaultAppConfig(base *Config) *AppConfig {
	return &AppConfig{
		Port:         base.Port,
		OpenAIAPIKey: base.OpenAIAPIKey,
		DataDir:      base.DataDir,
		StaticDir:    base.StaticDir,
		TemplatesDir: base.TemplatesDir,
		LogDir:       base.LogDir,
		DebugMode:    base.DebugMode,
		LLMProvider:  "openai",
		LLMConfig: map[string]string{
			"api_key":       base.OpenAIAPIKey,
			"default_model": "gpt-4o",
		},
	}
}

// GetCurrentConfig 返回当前配置的深拷贝，调用方可随意改动
func GetCurrentConfig() *AppConfig {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if currentConfig == nil {
		// 未经InitConfig直接调用（如单测），退回环境变量配置
		baseConfig, _ := Load()
		return defaultAppConfig(baseConfig)
	}

	configCopy := *currentConfig
	configCopy.LLMConfig = make(map[string]string, len(currentConfig.LLMConfig))
	for k, v := range currentConfig.LLMConfig {
		configCopy.LLMConfig[k] = v
	}
	return &configCopy
}

// UpdateLLMConfig 热更新LLM提供者设置并落盘
func UpdateLLMConfig(provider string, llmConfig map[string]string) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	if currentConfig == nil {
		return fmt.Errorf("配置系统未初始化")
	}

	currentConfig.LLMProvider = provider
	currentConfig.LLMConfig = llmConfig

	return saveLocked()
}

// SetDebugMode 切换调试模式并落盘
func SetDebugMode(enabled bool) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	if currentConfig == nil {
		return fmt.Errorf("配置系统未初始化")
	}

	currentConfig.DebugMode = enabled
	return saveLocked()
}

// SaveConfig 保存当前配置到文件
func SaveConfig() error {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return saveLocked()
}

// saveLocked 原子写入，调用方持锁
func saveLocked() error {
	if currentConfig == nil {
		return fmt.Errorf("没有配置可保存")
	}

	dir := filepath.Dir(configFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(currentConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	tmpFile := configFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("写入配置失败: %w", err)
	}
	return os.Rename(tmpFile, configFile)
}
