// ABOUTME: Workout, Exercise, and WorkoutExercise operations for SQLite storage.
// ABOUTME: Every query scopes by user_id; ownership mismatches read as not found.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// CreateWorkout stores a new workout.
func (d *DB) CreateWorkout(w *models.Workout) error {
	query := `
		INSERT INTO workouts (id, user_id, name, archived, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		w.ID.String(),
		w.UserID,
		w.Name,
		boolToInt(w.Archived),
		formatTime(w.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by id for the given user.
func (d *DB) GetWorkout(id uuid.UUID, userID string) (*models.Workout, error) {
	query := `
		SELECT id, user_id, name, archived, created_at
		FROM workouts
		WHERE id = ? AND user_id = ?
	`
	return scanWorkoutRow(d.db.QueryRow(query, id.String(), userID))
}

// ListWorkouts retrieves all of a user's workouts, most recent first.
func (d *DB) ListWorkouts(userID string) ([]*models.Workout, error) {
	query := `
		SELECT id, user_id, name, archived, created_at
		FROM workouts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []*models.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// UpdateWorkout updates the name and archived flag of an owned workout.
func (d *DB) UpdateWorkout(w *models.Workout) error {
	result, err := d.db.Exec(
		`UPDATE workouts SET name = ?, archived = ? WHERE id = ? AND user_id = ?`,
		w.Name, boolToInt(w.Archived), w.ID.String(), w.UserID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return requireAffected(result, "update workout")
}

// DeleteWorkout removes an owned workout. Its assignments, sessions, and logs
// go with it (cascade).
func (d *DB) DeleteWorkout(id uuid.UUID, userID string) error {
	result, err := d.db.Exec(
		`DELETE FROM workouts WHERE id = ? AND user_id = ?`,
		id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return requireAffected(result, "delete workout")
}

// CreateExercise stores a new exercise.
func (d *DB) CreateExercise(e *models.Exercise) error {
	query := `
		INSERT INTO exercises (id, user_id, name, primary_muscle_group, secondary_muscle_group, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.UserID,
		e.Name,
		e.PrimaryMuscleGroup,
		e.SecondaryMuscleGroup,
		e.Notes,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by id for the given user.
func (d *DB) GetExercise(id uuid.UUID, userID string) (*models.Exercise, error) {
	query := `
		SELECT id, user_id, name, primary_muscle_group, secondary_muscle_group, notes, created_at
		FROM exercises
		WHERE id = ? AND user_id = ?
	`
	return scanExerciseRow(d.db.QueryRow(query, id.String(), userID))
}

// ListExercises retrieves all of a user's exercises, most recent first.
func (d *DB) ListExercises(userID string) ([]*models.Exercise, error) {
	query := `
		SELECT id, user_id, name, primary_muscle_group, secondary_muscle_group, notes, created_at
		FROM exercises
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []*models.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// UpdateExercise updates the fields of an owned exercise.
func (d *DB) UpdateExercise(e *models.Exercise) error {
	result, err := d.db.Exec(
		`UPDATE exercises
		 SET name = ?, primary_muscle_group = ?, secondary_muscle_group = ?, notes = ?
		 WHERE id = ? AND user_id = ?`,
		e.Name, e.PrimaryMuscleGroup, e.SecondaryMuscleGroup, e.Notes,
		e.ID.String(), e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return requireAffected(result, "update exercise")
}

// DeleteExercise removes an owned exercise and its workout assignments.
// Performance logs keep their denormalized snapshot.
func (d *DB) DeleteExercise(id uuid.UUID, userID string) error {
	result, err := d.db.Exec(
		`DELETE FROM exercises WHERE id = ? AND user_id = ?`,
		id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return requireAffected(result, "delete exercise")
}

// AddWorkoutExercise assigns an exercise to a workout. Both ends of the
// assignment must already exist.
func (d *DB) AddWorkoutExercise(we *models.WorkoutExercise) error {
	if err := d.requireRow(`SELECT 1 FROM workouts WHERE id = ?`, we.WorkoutID.String()); err != nil {
		return fmt.Errorf("add workout exercise: workout: %w", err)
	}
	if err := d.requireRow(`SELECT 1 FROM exercises WHERE id = ?`, we.ExerciseID.String()); err != nil {
		return fmt.Errorf("add workout exercise: exercise: %w", err)
	}

	query := `
		INSERT INTO workout_exercises (id, workout_id, exercise_id, sets, reps, weight, notes, set_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		we.ID.String(),
		we.WorkoutID.String(),
		we.ExerciseID.String(),
		we.Sets,
		we.Reps,
		we.Weight,
		we.Notes,
		we.SetType,
		formatTime(we.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("add workout exercise: %w", err)
	}
	return nil
}

// ListWorkoutExercises joins each assignment of the workout with its
// exercise. Assignments whose exercise no longer resolves for the user are
// dropped from the result.
func (d *DB) ListWorkoutExercises(workoutID uuid.UUID, userID string) ([]*models.WorkoutExerciseDetail, error) {
	query := `
		SELECT we.id, we.workout_id, we.exercise_id,
		       e.name, e.primary_muscle_group, e.secondary_muscle_group,
		       we.sets, we.reps, we.weight, we.notes, we.set_type, we.created_at
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id AND w.user_id = ?
		JOIN exercises e ON e.id = we.exercise_id AND e.user_id = ?
		WHERE we.workout_id = ?
		ORDER BY we.created_at ASC
	`
	rows, err := d.db.Query(query, userID, userID, workoutID.String())
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	details := []*models.WorkoutExerciseDetail{}
	for rows.Next() {
		var det models.WorkoutExerciseDetail
		var weID, wID, eID, createdAt string
		var secondary, notes, setType sql.NullString
		var weight sql.NullFloat64

		err := rows.Scan(&weID, &wID, &eID,
			&det.Name, &det.PrimaryMuscleGroup, &secondary,
			&det.Sets, &det.Reps, &weight, &notes, &setType, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}

		det.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		det.WorkoutExerciseID, _ = uuid.Parse(weID)
		det.WorkoutID, _ = uuid.Parse(wID)
		det.ExerciseID, _ = uuid.Parse(eID)
		if secondary.Valid {
			det.SecondaryMuscleGroup = &secondary.String
		}
		if weight.Valid {
			det.Weight = &weight.Float64
		}
		if notes.Valid {
			det.Notes = &notes.String
		}
		if setType.Valid {
			det.SetType = &setType.String
		}

		details = append(details, &det)
	}
	return details, rows.Err()
}

// RemoveWorkoutExercise deletes exactly one assignment by its own id.
// The underlying exercise and other assignments are untouched.
func (d *DB) RemoveWorkoutExercise(workoutExerciseID uuid.UUID) error {
	result, err := d.db.Exec(
		`DELETE FROM workout_exercises WHERE id = ?`,
		workoutExerciseID.String(),
	)
	if err != nil {
		return fmt.Errorf("remove workout exercise: %w", err)
	}
	return requireAffected(result, "remove workout exercise")
}

// requireRow returns ErrNotFound unless the query yields at least one row.
func (d *DB) requireRow(query string, args ...interface{}) error {
	var one int
	err := d.db.QueryRow(query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// requireAffected returns ErrNotFound when a mutation touched no rows.
func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// formatTime normalizes timestamps to UTC RFC3339 at the storage boundary so
// date bucketing agrees between SQL and in-memory aggregation.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// dateOf returns the UTC calendar date (YYYY-MM-DD) of a timestamp.
func dateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkout(row rowScanner) (*models.Workout, error) {
	var w models.Workout
	var idStr, createdAt string
	var archived int

	err := row.Scan(&idStr, &w.UserID, &w.Name, &archived, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.ID, _ = uuid.Parse(idStr)
	w.Archived = archived != 0
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &w, nil
}

func scanWorkoutRow(row *sql.Row) (*models.Workout, error) {
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func scanExercise(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var idStr, createdAt string
	var secondary, notes sql.NullString

	err := row.Scan(&idStr, &e.UserID, &e.Name, &e.PrimaryMuscleGroup, &secondary, &notes, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	if secondary.Valid {
		e.SecondaryMuscleGroup = &secondary.String
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}

func scanExerciseRow(row *sql.Row) (*models.Exercise, error) {
	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
