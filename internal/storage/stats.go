// ABOUTME: Aggregation queries over logs and sessions for SQLite storage.
// ABOUTME: Grouped SQL; must produce the same numbers as the document store's reductions.
package storage

import (
	"fmt"

	"github.com/fitpro/fitpro/internal/models"
)

// WorkoutStats groups the user's logs by UTC calendar date. Count is the
// number of distinct workouts logged that day, Exercises the log rows, and
// DurationMinutes the summed length of the day's distinct completed sessions
// truncated to whole minutes. Ascending by date.
func (d *DB) WorkoutStats(userID string) ([]*models.WorkoutDayStat, error) {
	query := `
		SELECT date(l.recorded_at) AS day,
		       COUNT(DISTINCT l.workout_id) AS workouts,
		       COUNT(*) AS entries
		FROM logs l
		JOIN workouts w ON w.id = l.workout_id
		WHERE w.user_id = ?
		GROUP BY day
		ORDER BY day ASC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("workout stats: %w", err)
	}
	defer rows.Close()

	stats := []*models.WorkoutDayStat{}
	byDay := map[string]*models.WorkoutDayStat{}
	for rows.Next() {
		var s models.WorkoutDayStat
		if err := rows.Scan(&s.Date, &s.Count, &s.Exercises); err != nil {
			return nil, fmt.Errorf("scan workout stat: %w", err)
		}
		stats = append(stats, &s)
		byDay[s.Date] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Each session counts once per day it has logs on. Second arithmetic
	// with integer division matches the in-memory truncation exactly.
	durQuery := `
		SELECT day, SUM(dur)
		FROM (
			SELECT DISTINCT date(l.recorded_at) AS day,
			       s.id AS sid,
			       (strftime('%s', s.end_time) - strftime('%s', s.start_time)) / 60 AS dur
			FROM logs l
			JOIN workouts w ON w.id = l.workout_id
			JOIN workout_sessions s ON s.id = l.session_id
			WHERE w.user_id = ? AND s.completed = 1 AND s.end_time IS NOT NULL
		)
		GROUP BY day
	`
	durRows, err := d.db.Query(durQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("workout stats durations: %w", err)
	}
	defer durRows.Close()

	for durRows.Next() {
		var day string
		var minutes int
		if err := durRows.Scan(&day, &minutes); err != nil {
			return nil, fmt.Errorf("scan workout duration: %w", err)
		}
		if s, ok := byDay[day]; ok {
			s.DurationMinutes = minutes
		}
	}
	return stats, durRows.Err()
}

// ExerciseStats counts the user's log rows per exercise name: the live
// exercise name when it still resolves, else the snapshot taken at log time,
// else "Unknown". Descending by count, ties by name.
func (d *DB) ExerciseStats(userID string) ([]*models.ExerciseStat, error) {
	query := `
		SELECT COALESCE(e.name, NULLIF(l.exercise_name, ''), 'Unknown') AS exercise,
		       COUNT(*) AS cnt
		FROM logs l
		JOIN workouts w ON w.id = l.workout_id
		LEFT JOIN exercises e ON e.id = l.exercise_id
		WHERE w.user_id = ?
		GROUP BY exercise
		ORDER BY cnt DESC, exercise ASC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise stats: %w", err)
	}
	defer rows.Close()

	stats := []*models.ExerciseStat{}
	for rows.Next() {
		var s models.ExerciseStat
		if err := rows.Scan(&s.Name, &s.Count); err != nil {
			return nil, fmt.Errorf("scan exercise stat: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}
