// ABOUTME: Workout, Exercise, and WorkoutExercise operations for the document store.
// ABOUTME: Joins and cascades are in-memory filters over type-prefixed records.
package storage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

func workoutKey(userID string, id uuid.UUID) string {
	return workoutKeyPrefix + userID + ":" + id.String()
}

func exerciseKey(userID string, id uuid.UUID) string {
	return exerciseKeyPrefix + userID + ":" + id.String()
}

func assignKey(id uuid.UUID) string {
	return assignKeyPrefix + id.String()
}

// CreateWorkout stores a new workout.
func (s *DocStore) CreateWorkout(w *models.Workout) error {
	if err := s.set(workoutKey(w.UserID, w.ID), w); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by id for the given user.
func (s *DocStore) GetWorkout(id uuid.UUID, userID string) (*models.Workout, error) {
	var w models.Workout
	if err := s.get(workoutKey(userID, id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWorkouts retrieves all of a user's workouts, most recent first.
func (s *DocStore) ListWorkouts(userID string) ([]*models.Workout, error) {
	workouts := []*models.Workout{}
	err := listPrefix(s, workoutKeyPrefix+userID+":", func(w *models.Workout) {
		workouts = append(workouts, w)
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt.After(workouts[j].CreatedAt)
	})
	return workouts, nil
}

// UpdateWorkout replaces an owned workout record.
func (s *DocStore) UpdateWorkout(w *models.Workout) error {
	key := workoutKey(w.UserID, w.ID)
	var existing models.Workout
	if err := s.get(key, &existing); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	w.CreatedAt = existing.CreatedAt
	if err := s.set(key, w); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes an owned workout and cascades to its assignments,
// sessions, and logs, matching the relational backend's FK cascade.
func (s *DocStore) DeleteWorkout(id uuid.UUID, userID string) error {
	if err := s.delete(workoutKey(userID, id)); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	var doomed []string
	err := listPrefix(s, assignKeyPrefix, func(we *models.WorkoutExercise) {
		if we.WorkoutID == id {
			doomed = append(doomed, assignKey(we.ID))
		}
	})
	if err != nil {
		return fmt.Errorf("delete workout: assignments: %w", err)
	}
	err = listPrefix(s, sessionKeyPrefix, func(sess *models.WorkoutSession) {
		if sess.WorkoutID == id {
			doomed = append(doomed, sessionKey(sess.ID))
		}
	})
	if err != nil {
		return fmt.Errorf("delete workout: sessions: %w", err)
	}
	err = listPrefix(s, logKeyPrefix, func(l *models.Log) {
		if l.WorkoutID == id {
			doomed = append(doomed, logKey(l.ID))
		}
	})
	if err != nil {
		return fmt.Errorf("delete workout: logs: %w", err)
	}

	for _, key := range doomed {
		if err := s.deleteIfExists(key); err != nil {
			return fmt.Errorf("delete workout: cascade %s: %w", key, err)
		}
	}
	return nil
}

// CreateExercise stores a new exercise.
func (s *DocStore) CreateExercise(e *models.Exercise) error {
	if err := s.set(exerciseKey(e.UserID, e.ID), e); err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by id for the given user.
func (s *DocStore) GetExercise(id uuid.UUID, userID string) (*models.Exercise, error) {
	var e models.Exercise
	if err := s.get(exerciseKey(userID, id), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExercises retrieves all of a user's exercises, most recent first.
func (s *DocStore) ListExercises(userID string) ([]*models.Exercise, error) {
	exercises := []*models.Exercise{}
	err := listPrefix(s, exerciseKeyPrefix+userID+":", func(e *models.Exercise) {
		exercises = append(exercises, e)
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].CreatedAt.After(exercises[j].CreatedAt)
	})
	return exercises, nil
}

// UpdateExercise replaces an owned exercise record.
func (s *DocStore) UpdateExercise(e *models.Exercise) error {
	key := exerciseKey(e.UserID, e.ID)
	var existing models.Exercise
	if err := s.get(key, &existing); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	e.CreatedAt = existing.CreatedAt
	if err := s.set(key, e); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes an owned exercise and its workout assignments.
// Performance logs keep their denormalized snapshot.
func (s *DocStore) DeleteExercise(id uuid.UUID, userID string) error {
	if err := s.delete(exerciseKey(userID, id)); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	var doomed []string
	err := listPrefix(s, assignKeyPrefix, func(we *models.WorkoutExercise) {
		if we.ExerciseID == id {
			doomed = append(doomed, assignKey(we.ID))
		}
	})
	if err != nil {
		return fmt.Errorf("delete exercise: assignments: %w", err)
	}
	for _, key := range doomed {
		if err := s.deleteIfExists(key); err != nil {
			return fmt.Errorf("delete exercise: cascade %s: %w", key, err)
		}
	}
	return nil
}

// AddWorkoutExercise assigns an exercise to a workout. Both ends of the
// assignment must already exist.
func (s *DocStore) AddWorkoutExercise(we *models.WorkoutExercise) error {
	if ok, err := s.workoutExists(we.WorkoutID); err != nil {
		return fmt.Errorf("add workout exercise: %w", err)
	} else if !ok {
		return fmt.Errorf("add workout exercise: workout: %w", ErrNotFound)
	}
	if ok, err := s.exerciseExists(we.ExerciseID); err != nil {
		return fmt.Errorf("add workout exercise: %w", err)
	} else if !ok {
		return fmt.Errorf("add workout exercise: exercise: %w", ErrNotFound)
	}

	if err := s.set(assignKey(we.ID), we); err != nil {
		return fmt.Errorf("add workout exercise: %w", err)
	}
	return nil
}

// ListWorkoutExercises joins each assignment of the workout with its
// exercise. Assignments whose exercise no longer resolves for the user are
// dropped from the result.
func (s *DocStore) ListWorkoutExercises(workoutID uuid.UUID, userID string) ([]*models.WorkoutExerciseDetail, error) {
	if _, err := s.GetWorkout(workoutID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []*models.WorkoutExerciseDetail{}, nil
		}
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}

	assignments := []*models.WorkoutExercise{}
	err := listPrefix(s, assignKeyPrefix, func(we *models.WorkoutExercise) {
		if we.WorkoutID == workoutID {
			assignments = append(assignments, we)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt.Before(assignments[j].CreatedAt)
	})

	details := []*models.WorkoutExerciseDetail{}
	for _, we := range assignments {
		e, err := s.GetExercise(we.ExerciseID, userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // dangling assignment, drop silently
			}
			return nil, fmt.Errorf("list workout exercises: %w", err)
		}
		details = append(details, &models.WorkoutExerciseDetail{
			WorkoutExerciseID:    we.ID,
			WorkoutID:            we.WorkoutID,
			ExerciseID:           we.ExerciseID,
			Name:                 e.Name,
			PrimaryMuscleGroup:   e.PrimaryMuscleGroup,
			SecondaryMuscleGroup: e.SecondaryMuscleGroup,
			Sets:                 we.Sets,
			Reps:                 we.Reps,
			Weight:               we.Weight,
			Notes:                we.Notes,
			SetType:              we.SetType,
			CreatedAt:            we.CreatedAt,
		})
	}
	return details, nil
}

// RemoveWorkoutExercise deletes exactly one assignment by its own id.
func (s *DocStore) RemoveWorkoutExercise(workoutExerciseID uuid.UUID) error {
	if err := s.delete(assignKey(workoutExerciseID)); err != nil {
		return fmt.Errorf("remove workout exercise: %w", err)
	}
	return nil
}

// workoutExists reports whether any user owns a workout with this id.
func (s *DocStore) workoutExists(id uuid.UUID) (bool, error) {
	found := false
	err := listPrefix(s, workoutKeyPrefix, func(w *models.Workout) {
		if w.ID == id {
			found = true
		}
	})
	return found, err
}

// exerciseExists reports whether any user owns an exercise with this id.
func (s *DocStore) exerciseExists(id uuid.UUID) (bool, error) {
	found := false
	err := listPrefix(s, exerciseKeyPrefix, func(e *models.Exercise) {
		if e.ID == id {
			found = true
		}
	})
	return found, err
}
