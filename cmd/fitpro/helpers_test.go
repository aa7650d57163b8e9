// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers streak computation, formatting, and time parsing.
package main

import (
	"testing"
	"time"

	"github.com/fitpro/fitpro/internal/models"
)

func TestTrainingStreak(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	day := func(d int) string {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	stat := func(d int) *models.WorkoutDayStat {
		return &models.WorkoutDayStat{Date: day(d), Count: 1, Exercises: 1}
	}

	tests := []struct {
		name string
		days []*models.WorkoutDayStat
		want int
	}{
		{"no training", nil, 0},
		{"trained today only", []*models.WorkoutDayStat{stat(10)}, 1},
		{"three days ending today", []*models.WorkoutDayStat{stat(8), stat(9), stat(10)}, 3},
		{"streak survives rest day today", []*models.WorkoutDayStat{stat(8), stat(9)}, 2},
		{"broken two days ago", []*models.WorkoutDayStat{stat(7), stat(8)}, 0},
		{"gap resets the count", []*models.WorkoutDayStat{stat(6), stat(9), stat(10)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trainingStreak(tt.days, now); got != tt.want {
				t.Errorf("trainingStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 30); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a very long string that keeps going", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight overlong = %q", got)
	}
}

func TestParseTime(t *testing.T) {
	valid := []string{
		"2026-01-15 07:00",
		"2026-01-15T07:00",
		"2026-01-15",
		"2026-01-15T07:00:00Z",
	}
	for _, s := range valid {
		if _, err := parseTime(s); err != nil {
			t.Errorf("parseTime(%q) failed: %v", s, err)
		}
	}

	if _, err := parseTime("january 15th"); err == nil {
		t.Error("Expected error for unrecognized format")
	}
}
