// ABOUTME: Tests for model constructors and derived values.
// ABOUTME: Covers builder setters, BMI math, and session duration truncation.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewWorkout(t *testing.T) {
	w := NewWorkout("alice", "Push Day")

	if w.ID == uuid.Nil {
		t.Error("Expected generated UUID")
	}
	if w.UserID != "alice" || w.Name != "Push Day" {
		t.Errorf("Fields mismatch: %+v", w)
	}
	if w.Archived {
		t.Error("New workout should not be archived")
	}
	if w.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestExerciseBuilders(t *testing.T) {
	e := NewExercise("alice", "Bench Press", "chest").
		WithSecondaryMuscleGroup("triceps").
		WithNotes("pause at the bottom")

	if e.SecondaryMuscleGroup == nil || *e.SecondaryMuscleGroup != "triceps" {
		t.Errorf("SecondaryMuscleGroup mismatch: %v", e.SecondaryMuscleGroup)
	}
	if e.Notes == nil || *e.Notes != "pause at the bottom" {
		t.Errorf("Notes mismatch: %v", e.Notes)
	}
}

func TestWorkoutExerciseBuilders(t *testing.T) {
	we := NewWorkoutExercise(uuid.New(), uuid.New(), 3, 8).
		WithWeight(60.5).
		WithSetType("warmup")

	if we.Sets != 3 || we.Reps != 8 {
		t.Errorf("Targets mismatch: %dx%d", we.Sets, we.Reps)
	}
	if we.Weight == nil || *we.Weight != 60.5 {
		t.Errorf("Weight mismatch: %v", we.Weight)
	}
	if we.SetType == nil || *we.SetType != "warmup" {
		t.Errorf("SetType mismatch: %v", we.SetType)
	}
	if we.Notes != nil {
		t.Errorf("Notes should default to nil, got %v", we.Notes)
	}
}

func TestSessionDurationMinutes(t *testing.T) {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		end       *time.Time
		completed bool
		want      int
	}{
		{"open session", nil, false, 0},
		{"exact minutes", timePtr(start.Add(45 * time.Minute)), true, 45},
		{"fraction truncates down", timePtr(start.Add(45*time.Minute + 30*time.Second)), true, 45},
		{"under a minute", timePtr(start.Add(59 * time.Second)), true, 0},
		{"end time without completed flag", timePtr(start.Add(45 * time.Minute)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &WorkoutSession{StartTime: start, EndTime: tt.end, Completed: tt.completed}
			if got := s.DurationMinutes(); got != tt.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBiometricBMI(t *testing.T) {
	b := NewBiometricEntry("alice").WithHeight(180).WithWeight(81)

	// 81 / 1.8^2 = 25.0
	if got := b.BMI(); got < 24.99 || got > 25.01 {
		t.Errorf("BMI() = %f, want 25.0", got)
	}
}

func TestBiometricBMIMissingField(t *testing.T) {
	weightOnly := NewBiometricEntry("alice").WithWeight(81)
	if got := weightOnly.BMI(); got != 0 {
		t.Errorf("BMI without height = %f, want 0", got)
	}

	heightOnly := NewBiometricEntry("alice").WithHeight(180)
	if got := heightOnly.BMI(); got != 0 {
		t.Errorf("BMI without weight = %f, want 0", got)
	}
}

func TestLogWithSession(t *testing.T) {
	sid := uuid.New()
	l := NewLog(uuid.New(), uuid.New(), 3, 8, 60).WithSession(sid)

	if l.SessionID == nil || *l.SessionID != sid {
		t.Errorf("SessionID mismatch: %v", l.SessionID)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
