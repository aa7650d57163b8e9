// ABOUTME: Profile and BiometricEntry operations for the document store.
// ABOUTME: One profile record per user key; biometric entries listed oldest first.
package storage

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/fitpro/fitpro/internal/models"
)

func profileKey(userID string) string {
	return profileKeyPrefix + userID
}

func biometricKey(userID string, id uuid.UUID) string {
	return biometricKeyPrefix + userID + ":" + id.String()
}

// SaveProfile creates or replaces the user's profile.
func (s *DocStore) SaveProfile(p *models.Profile) error {
	if err := s.set(profileKey(p.UserID), p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the user's profile.
func (s *DocStore) GetProfile(userID string) (*models.Profile, error) {
	var p models.Profile
	if err := s.get(profileKey(userID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AddBiometricEntry stores a height/weight snapshot.
func (s *DocStore) AddBiometricEntry(b *models.BiometricEntry) error {
	if err := s.set(biometricKey(b.UserID, b.ID), b); err != nil {
		return fmt.Errorf("add biometric entry: %w", err)
	}
	return nil
}

// ListBiometricEntries returns the user's entries, oldest first.
func (s *DocStore) ListBiometricEntries(userID string) ([]*models.BiometricEntry, error) {
	entries := []*models.BiometricEntry{}
	err := listPrefix(s, biometricKeyPrefix+userID+":", func(b *models.BiometricEntry) {
		entries = append(entries, b)
	})
	if err != nil {
		return nil, fmt.Errorf("list biometric entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	return entries, nil
}

// DeleteBiometricEntry removes an owned entry.
func (s *DocStore) DeleteBiometricEntry(id uuid.UUID, userID string) error {
	if err := s.delete(biometricKey(userID, id)); err != nil {
		return fmt.Errorf("delete biometric entry: %w", err)
	}
	return nil
}
