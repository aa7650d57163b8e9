// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: One contract, two backends: SQLite (relational) and Badger (document).
package storage

import (
	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// Repository defines the storage contract for fitness data. Both the SQLite
// and the Badger document backend implement it with identical semantics,
// including the aggregation queries. List methods return empty slices when
// there is no data, never an error.
type Repository interface {
	// Profile operations. SaveProfile upserts by UserID; a user has at most
	// one profile.
	SaveProfile(p *models.Profile) error
	GetProfile(userID string) (*models.Profile, error)

	// Workout operations
	CreateWorkout(w *models.Workout) error
	GetWorkout(id uuid.UUID, userID string) (*models.Workout, error)
	ListWorkouts(userID string) ([]*models.Workout, error)
	UpdateWorkout(w *models.Workout) error
	DeleteWorkout(id uuid.UUID, userID string) error

	// Exercise operations
	CreateExercise(e *models.Exercise) error
	GetExercise(id uuid.UUID, userID string) (*models.Exercise, error)
	ListExercises(userID string) ([]*models.Exercise, error)
	UpdateExercise(e *models.Exercise) error
	DeleteExercise(id uuid.UUID, userID string) error

	// Workout exercise (assignment) operations. ListWorkoutExercises joins
	// each assignment with its exercise; assignments whose exercise no
	// longer exists are dropped from the result.
	AddWorkoutExercise(we *models.WorkoutExercise) error
	ListWorkoutExercises(workoutID uuid.UUID, userID string) ([]*models.WorkoutExerciseDetail, error)
	RemoveWorkoutExercise(workoutExerciseID uuid.UUID) error

	// Session lifecycle. CurrentSession returns the most recently started
	// open session for the workout, or (nil, nil) when none is open.
	// CompleteSession is a no-op on an already completed session.
	StartSession(workoutID uuid.UUID) (*models.WorkoutSession, error)
	GetSession(id uuid.UUID) (*models.WorkoutSession, error)
	CurrentSession(workoutID uuid.UUID) (*models.WorkoutSession, error)
	CompleteSession(sessionID uuid.UUID) error

	// Performance logs. LogPerformance verifies the workout and exercise
	// resolve for the user, then writes a log with display fields snapshot
	// from the current records.
	LogPerformance(userID string, workoutID, exerciseID uuid.UUID, sets, reps int, weight float64, sessionID *uuid.UUID) (*models.Log, error)
	ListLogsForExercise(workoutID, exerciseID uuid.UUID, sessionID *uuid.UUID) ([]*models.Log, error)
	ListLogs(userID string) ([]*models.Log, error)
	DeleteLog(id uuid.UUID) error

	// Biometric entries, ordered ascending by RecordedAt.
	AddBiometricEntry(b *models.BiometricEntry) error
	ListBiometricEntries(userID string) ([]*models.BiometricEntry, error)
	DeleteBiometricEntry(id uuid.UUID, userID string) error

	// Aggregation queries
	WorkoutStats(userID string) ([]*models.WorkoutDayStat, error)
	ExerciseStats(userID string) ([]*models.ExerciseStat, error)

	// Export/Import
	GetAllData(userID string) (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
