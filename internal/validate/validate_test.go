// ABOUTME: Tests for struct validation wrapping.
// ABOUTME: Verifies failures surface as storage.ErrValidation.
package validate

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
	"github.com/fitpro/fitpro/internal/storage"
)

func TestStructValid(t *testing.T) {
	p := models.NewProfile("alice", "Alice", 30, 170, 65)
	if err := Struct(p); err != nil {
		t.Errorf("Expected valid profile, got %v", err)
	}
}

func TestStructInvalid(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"zero age", models.NewProfile("alice", "Alice", 0, 170, 65)},
		{"empty name", models.NewProfile("alice", "", 30, 170, 65)},
		{"negative height", models.NewProfile("alice", "Alice", 30, -1, 65)},
		{"zero sets", models.NewLog(uuid.New(), uuid.New(), 0, 8, 60)},
		{"negative reps", models.NewLog(uuid.New(), uuid.New(), 3, -3, 60)},
		{"negative weight", models.NewLog(uuid.New(), uuid.New(), 3, 8, -5)},
		{"missing muscle group", models.NewExercise("alice", "Bench", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.v)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, storage.ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}
