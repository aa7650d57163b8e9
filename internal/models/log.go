// ABOUTME: Log and WorkoutSession models for performed training.
// ABOUTME: Logs snapshot display fields at write time so renames never corrupt history.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Log is an immutable record of one performed set. WorkoutName, ExerciseName,
// and PrimaryMuscleGroup are denormalized at write time and never recomputed.
type Log struct {
	ID         uuid.UUID  `json:"id" yaml:"id"`
	WorkoutID  uuid.UUID  `json:"workout_id" yaml:"workout_id"`
	ExerciseID uuid.UUID  `json:"exercise_id" yaml:"exercise_id"`
	SessionID  *uuid.UUID `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Sets       int        `json:"sets" yaml:"sets" validate:"gt=0"`
	Reps       int        `json:"reps" yaml:"reps" validate:"gt=0"`
	Weight     float64    `json:"weight" yaml:"weight" validate:"gte=0"`
	RecordedAt time.Time  `json:"recorded_at" yaml:"recorded_at"`

	WorkoutName        string `json:"workout_name" yaml:"workout_name"`
	ExerciseName       string `json:"exercise_name" yaml:"exercise_name"`
	PrimaryMuscleGroup string `json:"primary_muscle_group" yaml:"primary_muscle_group"`
}

// NewLog creates a new Log with generated UUID and current timestamp.
func NewLog(workoutID, exerciseID uuid.UUID, sets, reps int, weight float64) *Log {
	return &Log{
		ID:         uuid.New(),
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
		RecordedAt: time.Now(),
	}
}

// WithSession ties the log to a workout session.
func (l *Log) WithSession(sessionID uuid.UUID) *Log {
	l.SessionID = &sessionID
	return l
}

// WithRecordedAt sets a custom timestamp.
func (l *Log) WithRecordedAt(t time.Time) *Log {
	l.RecordedAt = t
	return l
}

// WorkoutSession is one timed execution of a Workout. It opens at start and
// closes exactly once when completed.
type WorkoutSession struct {
	ID        uuid.UUID  `json:"id" yaml:"id"`
	WorkoutID uuid.UUID  `json:"workout_id" yaml:"workout_id"`
	StartTime time.Time  `json:"start_time" yaml:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Completed bool       `json:"completed" yaml:"completed"`
}

// NewWorkoutSession creates an open session starting now.
func NewWorkoutSession(workoutID uuid.UUID) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.New(),
		WorkoutID: workoutID,
		StartTime: time.Now(),
	}
}

// DurationMinutes returns the session length in whole minutes, or 0 while the
// session is still open. Truncation (not rounding) keeps the value identical
// to the SQL second-arithmetic path.
func (s *WorkoutSession) DurationMinutes() int {
	if !s.Completed || s.EndTime == nil {
		return 0
	}
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}
