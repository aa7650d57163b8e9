// ABOUTME: Sentinel errors shared by every storage backend.
// ABOUTME: Callers match with errors.Is; backends wrap these with context.
package storage

import "errors"

var (
	// ErrOpenFailed means the storage engine could not be opened or
	// initialized. Fatal; there is no fallback to another backend.
	ErrOpenFailed = errors.New("storage open failed")

	// ErrNotFound means a referenced entity does not resolve for the given
	// id and user. Ownership mismatches report this same error so existence
	// of other users' records never leaks.
	ErrNotFound = errors.New("not found")

	// ErrExerciseNotFound means the exercise referenced by a performance
	// log does not resolve for the logging user.
	ErrExerciseNotFound = errors.New("exercise not found")

	// ErrValidation means a payload failed schema checks before any
	// storage call was attempted.
	ErrValidation = errors.New("validation failed")
)
