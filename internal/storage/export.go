// ABOUTME: Export and import of one user's complete fitness data.
// ABOUTME: Supports JSON and YAML renderings; also the transport for migration.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fitpro/fitpro/internal/models"
)

// ExportData is the full export format for one user's data.
type ExportData struct {
	Version    string                    `json:"version" yaml:"version"`
	ExportedAt time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool       string                    `json:"tool" yaml:"tool"`
	UserID     string                    `json:"user_id" yaml:"user_id"`
	Profile    *models.Profile           `json:"profile,omitempty" yaml:"profile,omitempty"`
	Workouts   []*models.Workout         `json:"workouts" yaml:"workouts"`
	Exercises  []*models.Exercise        `json:"exercises" yaml:"exercises"`
	Assigned   []*models.WorkoutExercise `json:"workout_exercises" yaml:"workout_exercises"`
	Sessions   []*models.WorkoutSession  `json:"workout_sessions" yaml:"workout_sessions"`
	Logs       []*models.Log             `json:"logs" yaml:"logs"`
	Biometrics []*models.BiometricEntry  `json:"biometric_logs" yaml:"biometric_logs"`
}

// GetAllData retrieves all of the user's data for export.
func (d *DB) GetAllData(userID string) (*ExportData, error) {
	return collectAllData(d, userID)
}

// GetAllData retrieves all of the user's data for export.
func (s *DocStore) GetAllData(userID string) (*ExportData, error) {
	return collectAllData(s, userID)
}

// collectAllData walks the Repository read surface; both backends share it.
func collectAllData(r Repository, userID string) (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitpro",
		UserID:     userID,
	}

	profile, err := r.GetProfile(userID)
	if err == nil {
		data.Profile = profile
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if data.Workouts, err = r.ListWorkouts(userID); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if data.Exercises, err = r.ListExercises(userID); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	for _, w := range data.Workouts {
		details, err := r.ListWorkoutExercises(w.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("list workout exercises: %w", err)
		}
		for _, det := range details {
			data.Assigned = append(data.Assigned, &models.WorkoutExercise{
				ID:         det.WorkoutExerciseID,
				WorkoutID:  det.WorkoutID,
				ExerciseID: det.ExerciseID,
				Sets:       det.Sets,
				Reps:       det.Reps,
				Weight:     det.Weight,
				Notes:      det.Notes,
				SetType:    det.SetType,
				CreatedAt:  det.CreatedAt,
			})
		}
	}

	if data.Logs, err = r.ListLogs(userID); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	sessionSeen := map[string]bool{}
	for _, l := range data.Logs {
		if l.SessionID == nil || sessionSeen[l.SessionID.String()] {
			continue
		}
		sessionSeen[l.SessionID.String()] = true
		sess, err := r.GetSession(*l.SessionID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get session: %w", err)
		}
		data.Sessions = append(data.Sessions, sess)
	}

	if data.Biometrics, err = r.ListBiometricEntries(userID); err != nil {
		return nil, fmt.Errorf("list biometric entries: %w", err)
	}

	return data, nil
}

// ImportData writes an export verbatim into the SQLite backend.
func (d *DB) ImportData(data *ExportData) error {
	return importAllData(d, data, d.insertSession, d.insertLog)
}

// ImportData writes an export verbatim into the document backend.
func (s *DocStore) ImportData(data *ExportData) error {
	return importAllData(s, data, s.insertSession, s.insertLog)
}

// importAllData replays an export through the Repository write surface.
// Sessions and logs bypass the lifecycle methods so ids, timestamps, and
// snapshots survive verbatim.
func importAllData(r Repository, data *ExportData,
	insertSession func(*models.WorkoutSession) error,
	insertLog func(*models.Log) error) error {

	if data.Profile != nil {
		if err := r.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	for _, w := range data.Workouts {
		if err := r.CreateWorkout(w); err != nil {
			return fmt.Errorf("import workout %s: %w", w.ID, err)
		}
	}
	for _, e := range data.Exercises {
		if err := r.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise %s: %w", e.ID, err)
		}
	}
	for _, we := range data.Assigned {
		if err := r.AddWorkoutExercise(we); err != nil {
			return fmt.Errorf("import workout exercise %s: %w", we.ID, err)
		}
	}
	for _, sess := range data.Sessions {
		if err := insertSession(sess); err != nil {
			return fmt.Errorf("import session %s: %w", sess.ID, err)
		}
	}
	for _, l := range data.Logs {
		if err := insertLog(l); err != nil {
			return fmt.Errorf("import log %s: %w", l.ID, err)
		}
	}
	for _, b := range data.Biometrics {
		if err := r.AddBiometricEntry(b); err != nil {
			return fmt.Errorf("import biometric entry %s: %w", b.ID, err)
		}
	}
	return nil
}

// ToJSON renders the export as indented JSON.
func (e *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ToYAML renders the export as YAML.
func (e *ExportData) ToYAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// FromJSON parses an export from JSON.
func FromJSON(data []byte) (*ExportData, error) {
	var e ExportData
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &e, nil
}
