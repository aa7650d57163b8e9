// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for profiles, workouts, exercises, assignments, logs, sessions, biometrics.
package storage

// initSchema creates the database schema if absent. Safe to run on every open.
//
// Deleting a workout cascades to its assignments, sessions, and logs.
// Deleting an exercise cascades to its assignments only; logs keep their
// denormalized snapshot and a dangling exercise_id on purpose.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		height REAL,
		weight REAL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		archived INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		primary_muscle_group TEXT NOT NULL,
		secondary_muscle_group TEXT,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_exercises (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL,
		notes TEXT,
		set_type TEXT,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_sessions (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME,
		completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS logs (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		session_id TEXT,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		recorded_at DATETIME NOT NULL,
		workout_name TEXT NOT NULL DEFAULT '',
		exercise_name TEXT NOT NULL DEFAULT '',
		primary_muscle_group TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS biometric_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		height REAL,
		weight REAL,
		recorded_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id);
	CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises(user_id);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_workout ON workout_sessions(workout_id, start_time DESC);
	CREATE INDEX IF NOT EXISTS idx_logs_workout_exercise ON logs(workout_id, exercise_id, recorded_at);
	CREATE INDEX IF NOT EXISTS idx_logs_recorded ON logs(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_biometric_user ON biometric_logs(user_id, recorded_at);
	`

	_, err := d.db.Exec(schema)
	return err
}
