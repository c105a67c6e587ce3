// internal/models/export.go
package models

import "time"

// ExportResult 导出结果
type ExportResult struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Format     string    `json:"format"` // json / markdown / txt
	Content    string    `json:"content"`
	FilePath   string    `json:"file_path,omitempty"`
	FileSize   int64     `json:"file_size,omitempty"`
	ExportTime time.Time `json:"export_time"`
}
