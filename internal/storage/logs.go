// ABOUTME: WorkoutSession lifecycle and performance Log operations for SQLite storage.
// ABOUTME: Logs denormalize workout/exercise display fields at write time.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// StartSession opens a new session for the workout, started now. The id is
// usable immediately; callers log performance against it before completion.
func (d *DB) StartSession(workoutID uuid.UUID) (*models.WorkoutSession, error) {
	if err := d.requireRow(`SELECT 1 FROM workouts WHERE id = ?`, workoutID.String()); err != nil {
		return nil, fmt.Errorf("start session: workout: %w", err)
	}

	s := models.NewWorkoutSession(workoutID)
	if err := d.insertSession(s); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s, nil
}

// insertSession writes a session row verbatim. Also used by import.
func (d *DB) insertSession(s *models.WorkoutSession) error {
	var endTime interface{}
	if s.EndTime != nil {
		endTime = formatTime(*s.EndTime)
	}
	_, err := d.db.Exec(
		`INSERT INTO workout_sessions (id, workout_id, start_time, end_time, completed)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID.String(), s.WorkoutID.String(), formatTime(s.StartTime), endTime, boolToInt(s.Completed),
	)
	return err
}

// GetSession retrieves a session by id.
func (d *DB) GetSession(id uuid.UUID) (*models.WorkoutSession, error) {
	query := `
		SELECT id, workout_id, start_time, end_time, completed
		FROM workout_sessions
		WHERE id = ?
	`
	s, err := scanSession(d.db.QueryRow(query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// CurrentSession returns the most recently started open session for the
// workout, or (nil, nil) when every session is completed. When several are
// open the most recent start wins.
func (d *DB) CurrentSession(workoutID uuid.UUID) (*models.WorkoutSession, error) {
	query := `
		SELECT id, workout_id, start_time, end_time, completed
		FROM workout_sessions
		WHERE workout_id = ? AND completed = 0
		ORDER BY start_time DESC
		LIMIT 1
	`
	s, err := scanSession(d.db.QueryRow(query, workoutID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// CompleteSession closes a session with end time now. Completing an already
// completed session changes nothing.
func (d *DB) CompleteSession(sessionID uuid.UUID) error {
	s, err := d.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if s.Completed {
		return nil
	}

	_, err = d.db.Exec(
		`UPDATE workout_sessions SET completed = 1, end_time = ? WHERE id = ? AND completed = 0`,
		formatTime(time.Now()), sessionID.String(),
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// LogPerformance records one performed set. The workout and exercise must
// resolve for the user; display fields are snapshot from the current records
// so later renames never rewrite history.
func (d *DB) LogPerformance(userID string, workoutID, exerciseID uuid.UUID, sets, reps int, weight float64, sessionID *uuid.UUID) (*models.Log, error) {
	w, err := d.GetWorkout(workoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("log performance: workout: %w", err)
	}
	e, err := d.GetExercise(exerciseID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("log performance: %w", ErrExerciseNotFound)
		}
		return nil, fmt.Errorf("log performance: exercise: %w", err)
	}

	l := models.NewLog(workoutID, exerciseID, sets, reps, weight)
	if sessionID != nil {
		l.WithSession(*sessionID)
	}
	l.WorkoutName = w.Name
	l.ExerciseName = e.Name
	l.PrimaryMuscleGroup = e.PrimaryMuscleGroup

	if err := d.insertLog(l); err != nil {
		return nil, fmt.Errorf("log performance: %w", err)
	}
	return l, nil
}

// insertLog writes a log row verbatim. Also used by import.
func (d *DB) insertLog(l *models.Log) error {
	var sessionID interface{}
	if l.SessionID != nil {
		sessionID = l.SessionID.String()
	}
	_, err := d.db.Exec(
		`INSERT INTO logs (id, workout_id, exercise_id, session_id, sets, reps, weight, recorded_at,
		                   workout_name, exercise_name, primary_muscle_group)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID.String(), l.WorkoutID.String(), l.ExerciseID.String(), sessionID,
		l.Sets, l.Reps, l.Weight, formatTime(l.RecordedAt),
		l.WorkoutName, l.ExerciseName, l.PrimaryMuscleGroup,
	)
	return err
}

// ListLogsForExercise returns logs for the workout/exercise pair, oldest
// first for chart rendering. A non-nil sessionID narrows to that session.
func (d *DB) ListLogsForExercise(workoutID, exerciseID uuid.UUID, sessionID *uuid.UUID) ([]*models.Log, error) {
	query := `
		SELECT id, workout_id, exercise_id, session_id, sets, reps, weight, recorded_at,
		       workout_name, exercise_name, primary_muscle_group
		FROM logs
		WHERE workout_id = ? AND exercise_id = ?
	`
	args := []interface{}{workoutID.String(), exerciseID.String()}
	if sessionID != nil {
		query += " AND session_id = ?"
		args = append(args, sessionID.String())
	}
	query += " ORDER BY recorded_at ASC"

	return d.queryLogs(query, args...)
}

// ListLogs returns every log whose workout belongs to the user, most recent
// first. Logs of deleted workouts are gone with the cascade.
func (d *DB) ListLogs(userID string) ([]*models.Log, error) {
	query := `
		SELECT l.id, l.workout_id, l.exercise_id, l.session_id, l.sets, l.reps, l.weight, l.recorded_at,
		       l.workout_name, l.exercise_name, l.primary_muscle_group
		FROM logs l
		JOIN workouts w ON w.id = l.workout_id
		WHERE w.user_id = ?
		ORDER BY l.recorded_at DESC
	`
	return d.queryLogs(query, userID)
}

// DeleteLog removes one log by id.
func (d *DB) DeleteLog(id uuid.UUID) error {
	result, err := d.db.Exec(`DELETE FROM logs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return requireAffected(result, "delete log")
}

func (d *DB) queryLogs(query string, args ...interface{}) ([]*models.Log, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.Log{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func scanLog(row rowScanner) (*models.Log, error) {
	var l models.Log
	var idStr, workoutID, exerciseID, recordedAt string
	var sessionID sql.NullString

	err := row.Scan(&idStr, &workoutID, &exerciseID, &sessionID,
		&l.Sets, &l.Reps, &l.Weight, &recordedAt,
		&l.WorkoutName, &l.ExerciseName, &l.PrimaryMuscleGroup)
	if err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}

	l.ID, _ = uuid.Parse(idStr)
	l.WorkoutID, _ = uuid.Parse(workoutID)
	l.ExerciseID, _ = uuid.Parse(exerciseID)
	if sessionID.Valid {
		sid, err := uuid.Parse(sessionID.String)
		if err == nil {
			l.SessionID = &sid
		}
	}
	l.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	return &l, nil
}

func scanSession(row rowScanner) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	var idStr, workoutID, startTime string
	var endTime sql.NullString
	var completed int

	err := row.Scan(&idStr, &workoutID, &startTime, &endTime, &completed)
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	s.ID, _ = uuid.Parse(idStr)
	s.WorkoutID, _ = uuid.Parse(workoutID)
	s.StartTime, _ = time.Parse(time.RFC3339, startTime)
	if endTime.Valid {
		t, err := time.Parse(time.RFC3339, endTime.String)
		if err == nil {
			s.EndTime = &t
		}
	}
	s.Completed = completed != 0
	return &s, nil
}
