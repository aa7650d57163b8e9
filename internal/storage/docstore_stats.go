// ABOUTME: Aggregation reductions over logs and sessions for the document store.
// ABOUTME: Must produce the same numbers as the SQLite backend's grouped SQL.
package storage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// WorkoutStats groups the user's logs by UTC calendar date. Semantics match
// the SQL form: distinct workouts per day, log rows per day, and duration as
// the sum over that day's distinct completed sessions, truncated to whole
// minutes. Ascending by date.
func (s *DocStore) WorkoutStats(userID string) ([]*models.WorkoutDayStat, error) {
	logs, err := s.ListLogs(userID)
	if err != nil {
		return nil, fmt.Errorf("workout stats: %w", err)
	}

	type dayAgg struct {
		workouts map[uuid.UUID]bool
		entries  int
		sessions map[uuid.UUID]bool
	}
	days := map[string]*dayAgg{}

	for _, l := range logs {
		day := dateOf(l.RecordedAt)
		agg := days[day]
		if agg == nil {
			agg = &dayAgg{
				workouts: map[uuid.UUID]bool{},
				sessions: map[uuid.UUID]bool{},
			}
			days[day] = agg
		}
		agg.workouts[l.WorkoutID] = true
		agg.entries++
		if l.SessionID != nil {
			agg.sessions[*l.SessionID] = true
		}
	}

	stats := []*models.WorkoutDayStat{}
	for day, agg := range days {
		duration := 0
		for sid := range agg.sessions {
			sess, err := s.GetSession(sid)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					continue // dangling session reference contributes zero
				}
				return nil, fmt.Errorf("workout stats: session: %w", err)
			}
			duration += sess.DurationMinutes()
		}
		stats = append(stats, &models.WorkoutDayStat{
			Date:            day,
			Count:           len(agg.workouts),
			Exercises:       agg.entries,
			DurationMinutes: duration,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})
	return stats, nil
}

// ExerciseStats counts the user's log rows per exercise name: the live
// exercise name when it still resolves, else the snapshot taken at log time,
// else "Unknown". Descending by count, ties by name.
func (s *DocStore) ExerciseStats(userID string) ([]*models.ExerciseStat, error) {
	logs, err := s.ListLogs(userID)
	if err != nil {
		return nil, fmt.Errorf("exercise stats: %w", err)
	}

	liveNames := map[uuid.UUID]string{}
	err = listPrefix(s, exerciseKeyPrefix+userID+":", func(e *models.Exercise) {
		liveNames[e.ID] = e.Name
	})
	if err != nil {
		return nil, fmt.Errorf("exercise stats: %w", err)
	}

	counts := map[string]int{}
	for _, l := range logs {
		name := liveNames[l.ExerciseID]
		if name == "" {
			name = l.ExerciseName
		}
		if name == "" {
			name = "Unknown"
		}
		counts[name]++
	}

	stats := []*models.ExerciseStat{}
	for name, count := range counts {
		stats = append(stats, &models.ExerciseStat{Name: name, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats, nil
}
