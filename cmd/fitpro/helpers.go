// ABOUTME: Shared CLI helpers for ID resolution and output formatting.
// ABOUTME: Supports UUID prefixes the way list output shows them.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// resolveWorkout finds a workout by full UUID or unique ID prefix.
func resolveWorkout(userID, idOrPrefix string) (*models.Workout, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return repo.GetWorkout(id, userID)
	}

	workouts, err := repo.ListWorkouts(userID)
	if err != nil {
		return nil, err
	}
	var match *models.Workout
	for _, w := range workouts {
		if strings.HasPrefix(w.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous workout id prefix: %s", idOrPrefix)
			}
			match = w
		}
	}
	if match == nil {
		return nil, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	return match, nil
}

// resolveExercise finds an exercise by full UUID or unique ID prefix.
func resolveExercise(userID, idOrPrefix string) (*models.Exercise, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return repo.GetExercise(id, userID)
	}

	exercises, err := repo.ListExercises(userID)
	if err != nil {
		return nil, err
	}
	var match *models.Exercise
	for _, e := range exercises {
		if strings.HasPrefix(e.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous exercise id prefix: %s", idOrPrefix)
			}
			match = e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("exercise not found: %s", idOrPrefix)
	}
	return match, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}
