// internal/services/stats_service_test.go
package services

import (
	"testing"
	"time"
)

func TestRecordGenerationAccumulates(t *testing.T) {
	s := NewStatsService(t.TempDir())

	s.RecordGeneration("chat", 120)
	s.RecordGeneration("chat", 80)
	s.RecordGeneration("structured", 50)
	s.RecordGeneration("stream", 0)

	stats := s.GetUsageStats()
	if stats.TodayRequests != 4 {
		t.Errorf("today requests = %d, want 4", stats.TodayRequests)
	}
	if stats.MonthlyTokens != 250 {
		t.Errorf("monthly tokens = %d, want 250", stats.MonthlyTokens)
	}
	if stats.RequestsByKind["chat"] != 2 {
		t.Errorf("chat requests = %d, want 2", stats.RequestsByKind["chat"])
	}
	if stats.RequestsByKind["stream"] != 1 {
		t.Errorf("stream requests = %d, want 1", stats.RequestsByKind["stream"])
	}

	today := time.Now().Format("2006-01-02")
	if stats.DailyRequests[today] != 4 {
		t.Errorf("daily requests for %s = %d, want 4", today, stats.DailyRequests[today])
	}
}

func TestGetUsageStatsReturnsCopy(t *testing.T) {
	s := NewStatsService(t.TempDir())
	s.RecordGeneration("chat", 10)

	first := s.GetUsageStats()
	first.RequestsByKind["chat"] = 999
	first.TodayRequests = 999

	second := s.GetUsageStats()
	if second.RequestsByKind["chat"] != 1 || second.TodayRequests != 1 {
		t.Error("mutating the returned snapshot must not affect internal state")
	}
}

func TestStatsPersistAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s1 := NewStatsService(dir)
	s1.RecordGeneration("chat", 42)
	if err := s1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2 := NewStatsService(dir)
	stats := s2.GetUsageStats()
	if stats.MonthlyTokens != 42 {
		t.Errorf("monthly tokens after reload = %d, want 42", stats.MonthlyTokens)
	}
	if stats.TodayRequests != 1 {
		t.Errorf("today requests after reload = %d, want 1", stats.TodayRequests)
	}
}

func TestResetStats(t *testing.T) {
	s := NewStatsService(t.TempDir())
	s.RecordGeneration("chat", 10)

	if err := s.ResetStats(); err != nil {
		t.Fatalf("ResetStats: %v", err)
	}

	stats := s.GetUsageStats()
	if stats.TodayRequests != 0 || stats.MonthlyTokens != 0 {
		t.Errorf("stats not reset: %+v", stats)
	}
}
