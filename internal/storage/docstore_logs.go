// ABOUTME: WorkoutSession lifecycle and performance Log operations for the document store.
// ABOUTME: Session selection and log filtering are in-memory reductions.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func logKey(id uuid.UUID) string {
	return logKeyPrefix + id.String()
}

// StartSession opens a new session for the workout, started now.
func (s *DocStore) StartSession(workoutID uuid.UUID) (*models.WorkoutSession, error) {
	if ok, err := s.workoutExists(workoutID); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("start session: workout: %w", ErrNotFound)
	}

	sess := models.NewWorkoutSession(workoutID)
	if err := s.insertSession(sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

// insertSession writes a session record verbatim. Also used by import.
// Times are stored at second precision, same as the relational backend.
func (s *DocStore) insertSession(sess *models.WorkoutSession) error {
	sess.StartTime = sess.StartTime.UTC().Truncate(time.Second)
	if sess.EndTime != nil {
		end := sess.EndTime.UTC().Truncate(time.Second)
		sess.EndTime = &end
	}
	return s.set(sessionKey(sess.ID), sess)
}

// GetSession retrieves a session by id.
func (s *DocStore) GetSession(id uuid.UUID) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	if err := s.get(sessionKey(id), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// CurrentSession returns the most recently started open session for the
// workout, or (nil, nil) when every session is completed.
func (s *DocStore) CurrentSession(workoutID uuid.UUID) (*models.WorkoutSession, error) {
	var current *models.WorkoutSession
	err := listPrefix(s, sessionKeyPrefix, func(sess *models.WorkoutSession) {
		if sess.WorkoutID != workoutID || sess.Completed {
			return
		}
		if current == nil || sess.StartTime.After(current.StartTime) {
			c := *sess
			current = &c
		}
	})
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return current, nil
}

// CompleteSession closes a session with end time now. Completing an already
// completed session changes nothing.
func (s *DocStore) CompleteSession(sessionID uuid.UUID) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if sess.Completed {
		return nil
	}

	now := time.Now().UTC().Truncate(time.Second)
	sess.EndTime = &now
	sess.Completed = true
	if err := s.set(sessionKey(sess.ID), sess); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// LogPerformance records one performed set, snapshotting display fields from
// the current workout and exercise records.
func (s *DocStore) LogPerformance(userID string, workoutID, exerciseID uuid.UUID, sets, reps int, weight float64, sessionID *uuid.UUID) (*models.Log, error) {
	w, err := s.GetWorkout(workoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("log performance: workout: %w", err)
	}
	e, err := s.GetExercise(exerciseID, userID)
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

	if err := s.insertLog(l); err != nil {
		return nil, fmt.Errorf("log performance: %w", err)
	}
	return l, nil
}

// insertLog writes a log record verbatim. Also used by import.
// RecordedAt is stored at second precision, same as the relational backend.
func (s *DocStore) insertLog(l *models.Log) error {
	l.RecordedAt = l.RecordedAt.UTC().Truncate(time.Second)
	return s.set(logKey(l.ID), l)
}

// ListLogsForExercise returns logs for the workout/exercise pair, oldest
// first. A non-nil sessionID narrows to that session.
func (s *DocStore) ListLogsForExercise(workoutID, exerciseID uuid.UUID, sessionID *uuid.UUID) ([]*models.Log, error) {
	logs := []*models.Log{}
	err := listPrefix(s, logKeyPrefix, func(l *models.Log) {
		if l.WorkoutID != workoutID || l.ExerciseID != exerciseID {
			return
		}
		if sessionID != nil && (l.SessionID == nil || *l.SessionID != *sessionID) {
			return
		}
		logs = append(logs, l)
	})
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].RecordedAt.Before(logs[j].RecordedAt)
	})
	return logs, nil
}

// ListLogs returns every log whose workout belongs to the user, most recent
// first.
func (s *DocStore) ListLogs(userID string) ([]*models.Log, error) {
	owned, err := s.ownedWorkoutIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	logs := []*models.Log{}
	err = listPrefix(s, logKeyPrefix, func(l *models.Log) {
		if owned[l.WorkoutID] {
			logs = append(logs, l)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].RecordedAt.After(logs[j].RecordedAt)
	})
	return logs, nil
}

// DeleteLog removes one log by id.
func (s *DocStore) DeleteLog(id uuid.UUID) error {
	if err := s.delete(logKey(id)); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}

// ownedWorkoutIDs returns the set of workout ids belonging to the user.
func (s *DocStore) ownedWorkoutIDs(userID string) (map[uuid.UUID]bool, error) {
	owned := map[uuid.UUID]bool{}
	err := listPrefix(s, workoutKeyPrefix+userID+":", func(w *models.Workout) {
		owned[w.ID] = true
	})
	return owned, err
}
