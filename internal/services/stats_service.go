// internal/services/stats_service.go
package services

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// UsageStats AI生成调用的使用统计
type UsageStats struct {
	TodayRequests  int            `json:"today_requests"`
	MonthlyTokens  int            `json:"monthly_tokens"`
	DailyRequests  map[string]int `json:"daily_requests"`   // 日期 -> 请求数
	MonthlyUsage   map[string]int `json:"monthly_usage"`    // 月份 -> token数
	RequestsByKind map[string]int `json:"requests_by_kind"` // chat/structured/stream
	LastUpdated    time.Time      `json:"last_updated"`
}

// StatsService 记录生成调用次数和token消耗，写盘做了批量合并
type StatsService struct {
	statsFile   string
	mutex       sync.Mutex
	cachedStats *UsageStats

	isDirty      bool
	lastSaveTime time.Time
	saveInterval time.Duration
}

// NewStatsService 创建统计服务，数据保存在 <dataDir>/stats 下
func NewStatsService(dataDir string) *StatsService {
	basePath := filepath.Join(dataDir, "stats")
	if err := os.MkdirAll(basePath, 0755); err != nil {
		fmt.Printf("警告: 创建统计目录失败: %v\n", err)
	}

	service := &StatsService{
		statsFile:    filepath.Join(basePath, "usage_stats.json"),
		saveInterval: 30 * time.Second,
	}
	service.startPeriodicSave()

	return service
}

func newEmptyStats() *UsageStats {
	return &UsageStats{
		DailyRequests:  make(map[string]int),
		MonthlyUsage:   make(map[string]int),
		RequestsByKind: make(map[string]int),
		LastUpdated:    time.Now(),
	}
}

// initStatsUnlocked 初始化统计数据（调用方需持锁）
func (s *StatsService) initStatsUnlocked() {
	if loaded, err := s.loadStats(); err == nil {
		s.rolloverPeriods(loaded)
		s.cachedStats = loaded
		return
	}
	s.cachedStats = newEmptyStats()
}

// rolloverPeriods 跨天/跨月时重置对应计数
func (s *StatsService) rolloverPeriods(stats *UsageStats) {
	now := time.Now()
	if now.Format("2006-01-02") != stats.LastUpdated.Format("2006-01-02") {
		stats.TodayRequests = 0
	}
	if now.Format("2006-01") != stats.LastUpdated.Format("2006-01") {
		stats.MonthlyTokens = 0
	}
}

func (s *StatsService) loadStats() (*UsageStats, error) {
	data, err := os.ReadFile(s.statsFile)
	if err != nil {
		return nil, fmt.Errorf("读取统计文件失败: %w", err)
	}

	var stats UsageStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("解析统计数据失败: %w", err)
	}

	if stats.DailyRequests == nil {
		stats.DailyRequests = make(map[string]int)
	}
	if stats.MonthlyUsage == nil {
		stats.MonthlyUsage = make(map[string]int)
	}
	if stats.RequestsByKind == nil {
		stats.RequestsByKind = make(map[string]int)
	}

	return &stats, nil
}

func (s *StatsService) saveStats(stats *UsageStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化统计数据失败: %w", err)
	}

	// 临时文件+重命名保证原子性
	tempFile := s.statsFile + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("写入临时统计文件失败: %w", err)
	}
	if err := os.Rename(tempFile, s.statsFile); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("替换统计文件失败: %w", err)
	}

	return nil
}

// RecordGeneration 记录一次生成调用
// kind 为调用方式：chat / structured / stream
func (s *StatsService) RecordGeneration(kind string, tokens int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cachedStats == nil {
		s.initStatsUnlocked()
	}
	s.rolloverPeriods(s.cachedStats)

	now := time.Now()
	s.cachedStats.TodayRequests++
	s.cachedStats.MonthlyTokens += tokens
	s.cachedStats.DailyRequests[now.Format("2006-01-02")]++
	s.cachedStats.MonthlyUsage[now.Format("2006-01")] += tokens
	if kind != "" {
		s.cachedStats.RequestsByKind[kind]++
	}
	s.cachedStats.LastUpdated = now

	s.isDirty = true
	if now.Sub(s.lastSaveTime) > s.saveInterval {
		s.saveIfDirty()
	}
}

// GetUsageStats 获取使用统计的副本
func (s *StatsService) GetUsageStats() *UsageStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cachedStats == nil {
		s.initStatsUnlocked()
	}
	s.rolloverPeriods(s.cachedStats)

	return &UsageStats{
		TodayRequests:  s.cachedStats.TodayRequests,
		MonthlyTokens:  s.cachedStats.MonthlyTokens,
		DailyRequests:  copyIntMap(s.cachedStats.DailyRequests),
		MonthlyUsage:   copyIntMap(s.cachedStats.MonthlyUsage),
		RequestsByKind: copyIntMap(s.cachedStats.RequestsByKind),
		LastUpdated:    s.cachedStats.LastUpdated,
	}
}

func copyIntMap(original map[string]int) map[string]int {
	clone := make(map[string]int, len(original))
	maps.Copy(clone, original)
	return clone
}

// saveIfDirty 有未保存数据时落盘（调用方需持锁）
func (s *StatsService) saveIfDirty() {
	if !s.isDirty {
		return
	}
	if err := s.saveStats(s.cachedStats); err != nil {
		fmt.Printf("警告: 保存统计数据失败: %v\n", err)
		return
	}
	s.isDirty = false
	s.lastSaveTime = time.Now()
}

func (s *StatsService) startPeriodicSave() {
	go func() {
		ticker := time.NewTicker(s.saveInterval)
		defer ticker.Stop()

		for range ticker.C {
			s.mutex.Lock()
			s.saveIfDirty()
			s.mutex.Unlock()
		}
	}()
}

// ResetStats 重置统计数据
func (s *StatsService) ResetStats() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	newStats := newEmptyStats()
	if err := s.saveStats(newStats); err != nil {
		return err
	}
	s.cachedStats = newStats
	s.isDirty = false
	return nil
}

// Close 保存未落盘的数据
func (s *StatsService) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isDirty {
		return s.saveStats(s.cachedStats)
	}
	return nil
}
