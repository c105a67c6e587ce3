// internal/storage/export_store.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ExportStore 管理导出文档的落盘存档
// 写入走临时文件+重命名保证原子性，读取带短期缓存
type ExportStore struct {
	BaseDir string

	// 文件级别锁 path -> *sync.RWMutex
	fileLocks sync.Map

	cache        map[string]*cacheEntry
	cacheMutex   sync.RWMutex
	cacheExpiry  time.Duration
	maxCacheSize int
}

type cacheEntry struct {
	data      []byte
	timestamp time.Time
}

// ExportFileInfo 存档文件的元信息
type ExportFileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// NewExportStore 创建导出存档，目录不存在时自动创建
func NewExportStore(baseDir string) (*ExportStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("创建导出目录失败: %w", err)
	}

	store := &ExportStore{
		BaseDir:      baseDir,
		cache:        make(map[string]*cacheEntry),
		cacheExpiry:  5 * time.Minute,
		maxCacheSize: 50,
	}
	store.startCacheCleanup()

	return store, nil
}

func (s *ExportStore) getFileLock(fullPath string) *sync.RWMutex {
	value, _ := s.fileLocks.LoadOrStore(fullPath, &sync.RWMutex{})
	return value.(*sync.RWMutex)
}

// safePath 把文件名限制在存档目录内，拒绝路径穿越
func (s *ExportStore) safePath(filename string) (string, error) {
	base := filepath.Base(filename)
	if base != filename || base == "." || base == ".." || strings.Contains(filename, string(os.PathSeparator)) {
		return "", fmt.Errorf("非法文件名: %s", filename)
	}
	return filepath.Join(s.BaseDir, base), nil
}

// Save 原子性保存导出文件，返回完整路径和文件大小
func (s *ExportStore) Save(filename string, content []byte) (string, int64, error) {
	fullPath, err := s.safePath(filename)
	if err != nil {
		return "", 0, err
	}

	lock := s.getFileLock(fullPath)
	lock.Lock()
	defer lock.Unlock()

	tempPath := fullPath + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return "", 0, fmt.Errorf("保存临时文件失败: %w", err)
	}
	if err := os.Rename(tempPath, fullPath); err != nil {
		os.Remove(tempPath)
		return "", 0, fmt.Errorf("保存导出文件失败: %w", err)
	}

	s.invalidateCache(fullPath)

	return fullPath, int64(len(content)), nil
}

// Load 读取一个存档文件
func (s *ExportStore) Load(filename string) ([]byte, error) {
	fullPath, err := s.safePath(filename)
	if err != nil {
		return nil, err
	}

	s.cacheMutex.RLock()
	if entry, exists := s.cache[fullPath]; exists && time.Since(entry.timestamp) < s.cacheExpiry {
		s.cacheMutex.RUnlock()
		return entry.data, nil
	}
	s.cacheMutex.RUnlock()

	lock := s.getFileLock(fullPath)
	lock.RLock()
	defer lock.RUnlock()

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("读取导出文件失败: %w", err)
	}

	s.updateCache(fullPath, content)

	return content, nil
}

// Exists 检查存档文件是否存在
func (s *ExportStore) Exists(filename string) bool {
	fullPath, err := s.safePath(filename)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// Delete 删除一个存档文件
func (s *ExportStore) Delete(filename string) error {
	fullPath, err := s.safePath(filename)
	if err != nil {
		return err
	}

	lock := s.getFileLock(fullPath)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("文件不存在: %s", filename)
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("删除导出文件失败: %w", err)
	}

	s.invalidateCache(fullPath)

	return nil
}

// List 列出全部存档文件，按修改时间倒序
func (s *ExportStore) List() ([]ExportFileInfo, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("读取导出目录失败: %w", err)
	}

	files := make([]ExportFileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".tmp") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, ExportFileInfo{
			Name:       entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})

	return files, nil
}

func (s *ExportStore) updateCache(path string, data []byte) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	s.cache[path] = &cacheEntry{
		data:      data,
		timestamp: time.Now(),
	}

	// 超限时淘汰最老的条目
	if len(s.cache) > s.maxCacheSize {
		var oldestKey string
		var oldestTime time.Time
		for key, entry := range s.cache {
			if oldestKey == "" || entry.timestamp.Before(oldestTime) {
				oldestKey = key
				oldestTime = entry.timestamp
			}
		}
		if oldestKey != "" {
			delete(s.cache, oldestKey)
		}
	}
}

func (s *ExportStore) invalidateCache(path string) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	delete(s.cache, path)
}

func (s *ExportStore) startCacheCleanup() {
	go func() {
		ticker := time.NewTicker(2 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			s.cacheMutex.Lock()
			now := time.Now()
			for path, entry := range s.cache {
				if now.Sub(entry.timestamp) > s.cacheExpiry {
					delete(s.cache, path)
				}
			}
			s.cacheMutex.Unlock()
		}
	}()
}
