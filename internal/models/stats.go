// ABOUTME: Derived analytics rows returned by the aggregation queries.
// ABOUTME: Shapes are chart-ready; both storage backends must produce identical values.
package models

// WorkoutDayStat aggregates one calendar day of logged training.
// Count is the number of distinct workouts logged that day, Exercises the
// total log rows, DurationMinutes the summed length of the day's completed
// sessions in whole minutes.
type WorkoutDayStat struct {
	Date            string // YYYY-MM-DD
	Count           int
	Exercises       int
	DurationMinutes int
}

// ExerciseStat counts log rows per exercise name.
type ExerciseStat struct {
	Name  string
	Count int
}
