// ABOUTME: Tests for Repository implementations, run against both backends.
// ABOUTME: Verifies CRUD, user scoping, assignments, and cascade deletes.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fitpro.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestDocStore(t *testing.T) *DocStore {
	t.Helper()

	store, err := OpenDocStore(filepath.Join(t.TempDir(), "docstore"))
	if err != nil {
		t.Fatalf("Failed to open doc store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// forEachBackend runs fn once per backend. Every behavior in the Repository
// contract must hold on both.
func forEachBackend(t *testing.T, fn func(t *testing.T, repo Repository)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		fn(t, setupTestDB(t))
	})
	t.Run("badger", func(t *testing.T) {
		fn(t, setupTestDocStore(t))
	})
}

func TestSaveAndGetProfile(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		p := models.NewProfile("alice", "Alice", 30, 170, 65)
		if err := repo.SaveProfile(p); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}

		got, err := repo.GetProfile("alice")
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if got.Name != "Alice" || got.Age != 30 {
			t.Errorf("Profile mismatch: got %s/%d", got.Name, got.Age)
		}
		if got.HeightCm != 170 || got.WeightKg != 65 {
			t.Errorf("Measurements mismatch: got %.1f/%.1f", got.HeightCm, got.WeightKg)
		}
	})
}

func TestSaveProfileUpserts(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		if err := repo.SaveProfile(models.NewProfile("alice", "Alice", 30, 170, 65)); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}
		if err := repo.SaveProfile(models.NewProfile("alice", "Alice B", 31, 170, 64)); err != nil {
			t.Fatalf("SaveProfile (second) failed: %v", err)
		}

		got, err := repo.GetProfile("alice")
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if got.Name != "Alice B" || got.Age != 31 || got.WeightKg != 64 {
			t.Errorf("Upsert did not replace: got %s/%d/%.1f", got.Name, got.Age, got.WeightKg)
		}
	})
}

func TestGetProfileNotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		_, err := repo.GetProfile("nobody")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateAndGetWorkout(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		got, err := repo.GetWorkout(w.ID, "alice")
		if err != nil {
			t.Fatalf("GetWorkout failed: %v", err)
		}
		if got.ID != w.ID || got.Name != "Push Day" || got.UserID != "alice" {
			t.Errorf("Workout mismatch: got %+v", got)
		}
		if got.Archived {
			t.Error("New workout should not be archived")
		}
	})
}

func TestWorkoutUserScoping(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		// Another user's id never resolves someone else's workout.
		if _, err := repo.GetWorkout(w.ID, "bob"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for wrong user, got %v", err)
		}

		bobs, err := repo.ListWorkouts("bob")
		if err != nil {
			t.Fatalf("ListWorkouts failed: %v", err)
		}
		if len(bobs) != 0 {
			t.Errorf("Expected empty list for bob, got %d", len(bobs))
		}
	})
}

func TestListWorkoutsOrdering(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		base := time.Now().Add(-time.Hour)
		names := []string{"A", "B", "C"}
		for i, name := range names {
			w := models.NewWorkout("alice", name)
			// Second-granularity storage needs distinct timestamps.
			w.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			if err := repo.CreateWorkout(w); err != nil {
				t.Fatalf("CreateWorkout failed: %v", err)
			}
		}

		got, err := repo.ListWorkouts("alice")
		if err != nil {
			t.Fatalf("ListWorkouts failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Expected 3 workouts, got %d", len(got))
		}
		// Most recently created first.
		want := []string{"C", "B", "A"}
		for i, name := range want {
			if got[i].Name != name {
				t.Errorf("Position %d: got %s, want %s", i, got[i].Name, name)
			}
		}
	})
}

func TestUpdateWorkout(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		w.Name = "Push Day v2"
		w.Archived = true
		if err := repo.UpdateWorkout(w); err != nil {
			t.Fatalf("UpdateWorkout failed: %v", err)
		}

		got, err := repo.GetWorkout(w.ID, "alice")
		if err != nil {
			t.Fatalf("GetWorkout failed: %v", err)
		}
		if got.Name != "Push Day v2" || !got.Archived {
			t.Errorf("Update not applied: got %+v", got)
		}
		if got.CreatedAt.IsZero() {
			t.Error("CreatedAt lost on update")
		}
	})
}

func TestDeleteWorkoutScopedToUser(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		// Wrong user cannot delete.
		if err := repo.DeleteWorkout(w.ID, "bob"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for wrong user delete, got %v", err)
		}
		if _, err := repo.GetWorkout(w.ID, "alice"); err != nil {
			t.Errorf("Workout should survive wrong-user delete: %v", err)
		}

		if err := repo.DeleteWorkout(w.ID, "alice"); err != nil {
			t.Fatalf("DeleteWorkout failed: %v", err)
		}
		if _, err := repo.GetWorkout(w.ID, "alice"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestCreateAndGetExercise(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		e := models.NewExercise("alice", "Bench Press", "chest")
		e.WithSecondaryMuscleGroup("triceps")
		e.WithNotes("pause at the bottom")
		if err := repo.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}

		got, err := repo.GetExercise(e.ID, "alice")
		if err != nil {
			t.Fatalf("GetExercise failed: %v", err)
		}
		if got.Name != "Bench Press" || got.PrimaryMuscleGroup != "chest" {
			t.Errorf("Exercise mismatch: got %+v", got)
		}
		if got.SecondaryMuscleGroup == nil || *got.SecondaryMuscleGroup != "triceps" {
			t.Errorf("SecondaryMuscleGroup mismatch: got %v", got.SecondaryMuscleGroup)
		}
		if got.Notes == nil || *got.Notes != "pause at the bottom" {
			t.Errorf("Notes mismatch: got %v", got.Notes)
		}
	})
}

func TestUpdateExercise(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		e := models.NewExercise("alice", "Bench Press", "chest")
		if err := repo.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}

		e.PrimaryMuscleGroup = "upper chest"
		e.WithNotes("incline")
		if err := repo.UpdateExercise(e); err != nil {
			t.Fatalf("UpdateExercise failed: %v", err)
		}

		got, err := repo.GetExercise(e.ID, "alice")
		if err != nil {
			t.Fatalf("GetExercise failed: %v", err)
		}
		if got.PrimaryMuscleGroup != "upper chest" {
			t.Errorf("PrimaryMuscleGroup not updated: got %s", got.PrimaryMuscleGroup)
		}
		if got.Notes == nil || *got.Notes != "incline" {
			t.Errorf("Notes not updated: got %v", got.Notes)
		}
	})
}

func TestListExercisesEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		got, err := repo.ListExercises("alice")
		if err != nil {
			t.Fatalf("ListExercises failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Expected empty list, got %d", len(got))
		}
	})
}

func TestAddAndListWorkoutExercises(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		e := models.NewExercise("alice", "Bench Press", "chest")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
		if err := repo.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}

		we := models.NewWorkoutExercise(w.ID, e.ID, 3, 8)
		we.WithWeight(60.5)
		we.WithSetType("working")
		if err := repo.AddWorkoutExercise(we); err != nil {
			t.Fatalf("AddWorkoutExercise failed: %v", err)
		}

		details, err := repo.ListWorkoutExercises(w.ID, "alice")
		if err != nil {
			t.Fatalf("ListWorkoutExercises failed: %v", err)
		}
		if len(details) != 1 {
			t.Fatalf("Expected 1 detail, got %d", len(details))
		}

		d := details[0]
		// The assignment id and the exercise id are distinct identifiers.
		if d.WorkoutExerciseID != we.ID {
			t.Errorf("WorkoutExerciseID mismatch: got %v, want %v", d.WorkoutExerciseID, we.ID)
		}
		if d.ExerciseID != e.ID {
			t.Errorf("ExerciseID mismatch: got %v, want %v", d.ExerciseID, e.ID)
		}
		if d.WorkoutExerciseID == d.ExerciseID {
			t.Error("Assignment id must not alias the exercise id")
		}
		if d.Name != "Bench Press" || d.PrimaryMuscleGroup != "chest" {
			t.Errorf("Joined exercise fields mismatch: got %+v", d)
		}
		if d.Sets != 3 || d.Reps != 8 {
			t.Errorf("Targets mismatch: got %dx%d", d.Sets, d.Reps)
		}
		if d.Weight == nil || *d.Weight != 60.5 {
			t.Errorf("Weight mismatch: got %v", d.Weight)
		}
		if d.SetType == nil || *d.SetType != "working" {
			t.Errorf("SetType mismatch: got %v", d.SetType)
		}
	})
}

func TestAddWorkoutExerciseMissingRefs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		we := models.NewWorkoutExercise(w.ID, uuid.New(), 3, 8)
		if err := repo.AddWorkoutExercise(we); err == nil {
			t.Error("Expected error for missing exercise")
		}

		we = models.NewWorkoutExercise(uuid.New(), uuid.New(), 3, 8)
		if err := repo.AddWorkoutExercise(we); err == nil {
			t.Error("Expected error for missing workout")
		}
	})
}

func TestRemoveWorkoutExercise(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := models.NewWorkout("alice", "Push Day")
		e := models.NewExercise("alice", "Bench Press", "chest")
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
		if err := repo.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}

		we := models.NewWorkoutExercise(w.ID, e.ID, 3, 8)
		if err := repo.AddWorkoutExercise(we); err != nil {
			t.Fatalf("AddWorkoutExercise failed: %v", err)
		}

		if err := repo.RemoveWorkoutExercise(we.ID); err != nil {
			t.Fatalf("RemoveWorkoutExercise failed: %v", err)
		}

		details, err := repo.ListWorkoutExercises(w.ID, "alice")
		if err != nil {
			t.Fatalf("ListWorkoutExercises failed: %v", err)
		}
		if len(details) != 0 {
			t.Errorf("Expected no details after removal, got %d", len(details))
		}

		// Exercise itself survives.
		if _, err := repo.GetExercise(e.ID, "alice"); err != nil {
			t.Errorf("Exercise should survive assignment removal: %v", err)
		}
	})
}

func TestDeleteWorkoutCascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
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

		s, err := repo.StartSession(w.ID)
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		l, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60, &s.ID)
		if err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		if err := repo.DeleteWorkout(w.ID, "alice"); err != nil {
			t.Fatalf("DeleteWorkout failed: %v", err)
		}

		if _, err := repo.GetSession(s.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Session should be cascade-deleted, got %v", err)
		}
		logs, err := repo.ListLogs("alice")
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		for _, got := range logs {
			if got.ID == l.ID {
				t.Error("Log should be cascade-deleted with the workout")
			}
		}

		// The exercise catalog is untouched.
		if _, err := repo.GetExercise(e.ID, "alice"); err != nil {
			t.Errorf("Exercise should survive workout delete: %v", err)
		}
	})
}

func TestDeleteExerciseKeepsLogs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
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
		if _, err := repo.LogPerformance("alice", w.ID, e.ID, 3, 8, 60, nil); err != nil {
			t.Fatalf("LogPerformance failed: %v", err)
		}

		if err := repo.DeleteExercise(e.ID, "alice"); err != nil {
			t.Fatalf("DeleteExercise failed: %v", err)
		}

		// Assignments are gone but logs keep the name snapshot.
		details, err := repo.ListWorkoutExercises(w.ID, "alice")
		if err != nil {
			t.Fatalf("ListWorkoutExercises failed: %v", err)
		}
		if len(details) != 0 {
			t.Errorf("Expected assignments removed, got %d", len(details))
		}

		logs, err := repo.ListLogs("alice")
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if len(logs) != 1 {
			t.Fatalf("Expected 1 surviving log, got %d", len(logs))
		}
		if logs[0].ExerciseName != "Bench Press" {
			t.Errorf("Log snapshot lost: got %q", logs[0].ExerciseName)
		}
	})
}

func TestBiometricEntries(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		b1 := models.NewBiometricEntry("alice").WithHeight(170).WithWeight(65)
		b2 := models.NewBiometricEntry("alice").WithWeight(64.5)
		b2.RecordedAt = b1.RecordedAt.Add(24 * time.Hour)

		if err := repo.AddBiometricEntry(b2); err != nil {
			t.Fatalf("AddBiometricEntry failed: %v", err)
		}
		if err := repo.AddBiometricEntry(b1); err != nil {
			t.Fatalf("AddBiometricEntry failed: %v", err)
		}

		entries, err := repo.ListBiometricEntries("alice")
		if err != nil {
			t.Fatalf("ListBiometricEntries failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		// Ascending by RecordedAt regardless of insertion order.
		if entries[0].ID != b1.ID || entries[1].ID != b2.ID {
			t.Error("Entries not sorted by RecordedAt ascending")
		}
		if entries[0].HeightCm == nil || *entries[0].HeightCm != 170 {
			t.Errorf("Height mismatch: got %v", entries[0].HeightCm)
		}
		if entries[1].HeightCm != nil {
			t.Errorf("Expected nil height on weight-only entry, got %v", entries[1].HeightCm)
		}

		// Wrong-user delete is refused and changes nothing.
		if err := repo.DeleteBiometricEntry(b1.ID, "bob"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for wrong-user delete, got %v", err)
		}
		if err := repo.DeleteBiometricEntry(b1.ID, "alice"); err != nil {
			t.Fatalf("DeleteBiometricEntry failed: %v", err)
		}

		entries, err = repo.ListBiometricEntries("alice")
		if err != nil {
			t.Fatalf("ListBiometricEntries failed: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != b2.ID {
			t.Errorf("Expected only b2 to remain, got %d entries", len(entries))
		}
	})
}
