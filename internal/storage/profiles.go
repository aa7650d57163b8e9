// ABOUTME: Profile and BiometricEntry operations for SQLite storage.
// ABOUTME: Profiles upsert by user_id; biometric entries feed the BMI trend.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

// SaveProfile creates or replaces the user's profile. A user has exactly one
// profile row; repeated saves update it in place.
func (d *DB) SaveProfile(p *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, name, age, height, weight, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			height = excluded.height,
			weight = excluded.weight,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		p.UserID, p.Name, p.Age, p.HeightCm, p.WeightKg, formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the user's profile.
func (d *DB) GetProfile(userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, name, age, height, weight, updated_at
		FROM profiles
		WHERE user_id = ?
	`
	var p models.Profile
	var updatedAt string
	err := d.db.QueryRow(query, userID).Scan(
		&p.UserID, &p.Name, &p.Age, &p.HeightCm, &p.WeightKg, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// AddBiometricEntry stores a height/weight snapshot.
func (d *DB) AddBiometricEntry(b *models.BiometricEntry) error {
	query := `
		INSERT INTO biometric_logs (id, user_id, height, weight, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		b.ID.String(), b.UserID, b.HeightCm, b.WeightKg, formatTime(b.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("add biometric entry: %w", err)
	}
	return nil
}

// ListBiometricEntries returns the user's entries, oldest first for trend
// charts.
func (d *DB) ListBiometricEntries(userID string) ([]*models.BiometricEntry, error) {
	query := `
		SELECT id, user_id, height, weight, recorded_at
		FROM biometric_logs
		WHERE user_id = ?
		ORDER BY recorded_at ASC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list biometric entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.BiometricEntry{}
	for rows.Next() {
		var b models.BiometricEntry
		var idStr, recordedAt string
		var height, weight sql.NullFloat64

		if err := rows.Scan(&idStr, &b.UserID, &height, &weight, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan biometric entry: %w", err)
		}

		b.ID, _ = uuid.Parse(idStr)
		if height.Valid {
			b.HeightCm = &height.Float64
		}
		if weight.Valid {
			b.WeightKg = &weight.Float64
		}
		b.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		entries = append(entries, &b)
	}
	return entries, rows.Err()
}

// DeleteBiometricEntry removes an owned entry.
func (d *DB) DeleteBiometricEntry(id uuid.UUID, userID string) error {
	result, err := d.db.Exec(
		`DELETE FROM biometric_logs WHERE id = ? AND user_id = ?`,
		id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("delete biometric entry: %w", err)
	}
	return requireAffected(result, "delete biometric entry")
}
