// ABOUTME: Workout, Exercise, and WorkoutExercise models for training plans.
// ABOUTME: WorkoutExercise joins an exercise into a workout with target parameters.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a named, reusable template of exercises owned by one user.
type Workout struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	UserID    string    `json:"user_id" yaml:"user_id"`
	Name      string    `json:"name" yaml:"name" validate:"required"`
	Archived  bool      `json:"archived" yaml:"archived"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewWorkout creates a new Workout with generated UUID and current timestamp.
func NewWorkout(userID, name string) *Workout {
	return &Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithArchived sets the archived flag.
func (w *Workout) WithArchived(archived bool) *Workout {
	w.Archived = archived
	return w
}

// Exercise is a named movement with associated muscle groups, owned by one user.
type Exercise struct {
	ID                   uuid.UUID `json:"id" yaml:"id"`
	UserID               string    `json:"user_id" yaml:"user_id"`
	Name                 string    `json:"name" yaml:"name" validate:"required"`
	PrimaryMuscleGroup   string    `json:"primary_muscle_group" yaml:"primary_muscle_group" validate:"required"`
	SecondaryMuscleGroup *string   `json:"secondary_muscle_group,omitempty" yaml:"secondary_muscle_group,omitempty"`
	Notes                *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at" yaml:"created_at"`
}

// NewExercise creates a new Exercise with generated UUID and current timestamp.
func NewExercise(userID, name, primaryMuscleGroup string) *Exercise {
	return &Exercise{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		PrimaryMuscleGroup: primaryMuscleGroup,
		CreatedAt:          time.Now(),
	}
}

// WithSecondaryMuscleGroup sets the optional secondary muscle group.
func (e *Exercise) WithSecondaryMuscleGroup(group string) *Exercise {
	e.SecondaryMuscleGroup = &group
	return e
}

// WithNotes sets notes on the exercise.
func (e *Exercise) WithNotes(notes string) *Exercise {
	e.Notes = &notes
	return e
}

// WorkoutExercise assigns one Exercise to one Workout with concrete targets.
// Its ID identifies the assignment itself, distinct from ExerciseID.
type WorkoutExercise struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	WorkoutID  uuid.UUID `json:"workout_id" yaml:"workout_id"`
	ExerciseID uuid.UUID `json:"exercise_id" yaml:"exercise_id"`
	Sets       int       `json:"sets" yaml:"sets" validate:"gt=0"`
	Reps       int       `json:"reps" yaml:"reps" validate:"gt=0"`
	Weight     *float64  `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,gte=0"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	SetType    *string   `json:"set_type,omitempty" yaml:"set_type,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewWorkoutExercise creates a new assignment with generated UUID.
func NewWorkoutExercise(workoutID, exerciseID uuid.UUID, sets, reps int) *WorkoutExercise {
	return &WorkoutExercise{
		ID:         uuid.New(),
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       sets,
		Reps:       reps,
		CreatedAt:  time.Now(),
	}
}

// WithWeight sets the target weight in kilograms.
func (we *WorkoutExercise) WithWeight(weight float64) *WorkoutExercise {
	we.Weight = &weight
	return we
}

// WithNotes sets notes on the assignment.
func (we *WorkoutExercise) WithNotes(notes string) *WorkoutExercise {
	we.Notes = &notes
	return we
}

// WithSetType sets the set type label (e.g. "warmup", "drop set").
func (we *WorkoutExercise) WithSetType(setType string) *WorkoutExercise {
	we.SetType = &setType
	return we
}

// WorkoutExerciseDetail is a join row returned when listing the exercises
// assigned to a workout. WorkoutExerciseID targets the assignment; ExerciseID
// the underlying exercise.
type WorkoutExerciseDetail struct {
	WorkoutExerciseID    uuid.UUID
	WorkoutID            uuid.UUID
	ExerciseID           uuid.UUID
	Name                 string
	PrimaryMuscleGroup   string
	SecondaryMuscleGroup *string
	Sets                 int
	Reps                 int
	Weight               *float64
	Notes                *string
	SetType              *string
	CreatedAt            time.Time
}
