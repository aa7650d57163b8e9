// ABOUTME: Tests for session lifecycle and performance logging.
// ABOUTME: Covers start/finish, current-session tagging, and log queries.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// seedWorkout creates a workout with one assigned exercise for alice.
func seedWorkout(t *testing.T, repo Repository) (*models.Workout, *models.Exercise) {
	t.Helper()

	w := models.NewWorkout("alice", "Push Day")
	e := models.NewExercise("alice", "Bench Press", "chest")
	if err := repo.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	if err := repo.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if err := repo.AddWorkoutExercise(models.NewWorkoutExercise(w.ID, e.ID, 3, 8)); err != nil {
		t.Fatalf("AddWorkoutExercise failed: %v", err)
	}
	return w, e
}

func TestSessionLifecycle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, _ := seedWorkout(t, repo)

		// No session open yet.
		cur, err := repo.CurrentSession(w.ID)
		if err != nil {
			t.Fatalf("CurrentSession failed: %v", err)
		}
		if cur != nil {
			t.Fatalf("Expected no open session, got %v", cur.ID)
		}

		s, err := repo.StartSession(w.ID)
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		if s.Completed || s.EndTime != nil {
			t.Error("New session must be open")
		}

		cur, err = repo.CurrentSession(w.ID)
		if err != nil {
			t.Fatalf("CurrentSession failed: %v", err)
		}
		if cur == nil || cur.ID != s.ID {
			t.Fatalf("CurrentSession should find the open session")
		}

		if err := repo.CompleteSession(s.ID); err != nil {
			t.Fatalf("CompleteSession failed: %v", err)
		}

		got, err := repo.GetSession(s.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if !got.Completed || got.EndTime == nil {
			t.Error("Session should be completed with an end time")
		}

		// Completed sessions are no longer current.
		cur, err = repo.CurrentSession(w.ID)
		if err != nil {
			t.Fatalf("CurrentSession failed: %v", err)
		}
		if cur != nil {
			t.Error("Completed session should not be current")
		}
	})
}

func TestCompleteSessionTwiceIsNoop(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, _ := seedWorkout(t, repo)

		s, err := repo.StartSession(w.ID)
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		if err := repo.CompleteSession(s.ID); err != nil {
			t.Fatalf("CompleteSession failed: %v", err)
		}

		first, err := repo.GetSession(s.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}

		time.Sleep(1100 * time.Millisecond)
		if err := repo.CompleteSession(s.ID); err != nil {
			t.Fatalf("Second CompleteSession failed: %v", err)
		}

		second, err := repo.GetSession(s.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if !second.EndTime.Equal(*first.EndTime) {
			t.Errorf("End time moved on second complete: %v != %v", second.EndTime, first.EndTime)
		}
	})
}

func TestStartSessionUnknownWorkout(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		if _, err := repo.StartSession(uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestCurrentSessionPicksMostRecent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, _ := seedWorkout(t, repo)

		// Two open sessions can exist after a crash; the newest start wins.
		s1 := models.NewWorkoutSession(w.ID)
		s1.StartTime = time.Now().Add(-2 * time.Hour)
		s2 := models.NewWorkoutSession(w.ID)
		s2.StartTime = time.Now().Add(-1 * time.Hour)

		data := &ExportData{
			UserID:   "alice",
			Sessions: []*models.WorkoutSession{s1, s2},
		}
		if err := repo.ImportData(data); err != nil {
			t.Fatalf("ImportData failed: %v", err)
		}

		cur, err := repo.CurrentSession(w.ID)
		if err != nil {
			t.Fatalf("CurrentSession failed: %v", err)
		}
		if cur == nil || cur.ID != s2.ID {
			t.Errorf("Expected most recent session %v, got %v", s2.ID, cur)
		}
	})
}

func TestLogPerformance(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, e := seedWorkout(t, repo)

		s, err := repo.StartSession(w.ID)
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}

		l, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60.5, &s.ID)
		if err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		if l.Sets != 3 || l.Reps != 8 || l.Weight != 60.5 {
			t.Errorf("Log values mismatch: %+v", l)
		}
		// Display fields are snapshot from the live records.
		if l.WorkoutName != "Push Day" || l.ExerciseName != "Bench Press" {
			t.Errorf("Snapshot mismatch: %q / %q", l.WorkoutName, l.ExerciseName)
		}
		if l.PrimaryMuscleGroup != "chest" {
			t.Errorf("PrimaryMuscleGroup snapshot mismatch: %q", l.PrimaryMuscleGroup)
		}
		if l.SessionID == nil || *l.SessionID != s.ID {
			t.Errorf("SessionID not tagged: got %v", l.SessionID)
		}
	})
}

func TestLogPerformanceUnknownRefs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, _ := seedWorkout(t, repo)

		_, err := repo.LogPerformance("alice", uuid.New(), uuid.New(), 3, 8, 60, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for unknown workout, got %v", err)
		}

		_, err = repo.LogPerformance("alice", w.ID, uuid.New(), 3, 8, 60, nil)
		if !errors.Is(err, ErrExerciseNotFound) {
			t.Errorf("Expected ErrExerciseNotFound, got %v", err)
		}
	})
}

func TestListLogsForExercise(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, e := seedWorkout(t, repo)

		s, err := repo.StartSession(w.ID)
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}

		if _, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60, nil); err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}
		if _, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 62.5, &s.ID); err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		all, err := repo.ListLogsForExercise(w.ID, e.ID, nil)
		if err != nil {
			t.Fatalf("ListLogsForExercise failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("Expected 2 logs, got %d", len(all))
		}

		// Session filter narrows to the tagged log.
		tagged, err := repo.ListLogsForExercise(w.ID, e.ID, &s.ID)
		if err != nil {
			t.Fatalf("ListLogsForExercise (session) failed: %v", err)
		}
		if len(tagged) != 1 || tagged[0].Weight != 62.5 {
			t.Errorf("Session filter wrong: got %d logs", len(tagged))
		}
	})
}

func TestListLogsScopedToUser(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, e := seedWorkout(t, repo)
		if _, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60, nil); err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		wb := models.NewWorkout("bob", "Leg Day")
		eb := models.NewExercise("bob", "Squat", "quads")
		if err := repo.CreateWorkout(wb); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
		if err := repo.CreateExercise(eb); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
		if _, err := repo.LogPerformance("bob", wb.ID, eb.ID, 5, 5, 100, nil); err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		logs, err := repo.ListLogs("alice")
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if len(logs) != 1 || logs[0].ExerciseName != "Bench Press" {
			t.Errorf("Expected only alice's log, got %d", len(logs))
		}
	})
}

func TestDeleteLog(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w, e := seedWorkout(t, repo)
		l, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60, nil)
		if err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		if err := repo.DeleteLog(l.ID); err != nil {
			t.Fatalf("DeleteLog failed: %v", err)
		}

		logs, err := repo.ListLogs("alice")
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if len(logs) != 0 {
			t.Errorf("Expected no logs after delete, got %d", len(logs))
		}

		if err := repo.DeleteLog(l.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}
