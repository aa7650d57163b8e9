// ABOUTME: Data migration between fitness storage backends.
// ABOUTME: Copies one user's data from source to destination via the export format.
package storage

import "fmt"

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts   int
	Exercises  int
	Assigned   int
	Sessions   int
	Logs       int
	Biometrics int
	Profile    bool
}

// MigrateData copies one user's data from src to dst storage. Ids,
// timestamps, and denormalized log snapshots are preserved verbatim. The
// destination should not already contain this user's data.
func MigrateData(src, dst Repository, userID string) (*MigrateSummary, error) {
	data, err := src.GetAllData(userID)
	if err != nil {
		return nil, fmt.Errorf("export source: %w", err)
	}

	if err := dst.ImportData(data); err != nil {
		return nil, fmt.Errorf("import destination: %w", err)
	}

	return &MigrateSummary{
		Workouts:   len(data.Workouts),
		Exercises:  len(data.Exercises),
		Assigned:   len(data.Assigned),
		Sessions:   len(data.Sessions),
		Logs:       len(data.Logs),
		Biometrics: len(data.Biometrics),
		Profile:    data.Profile != nil,
	}, nil
}
