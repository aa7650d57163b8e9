// ABOUTME: Profile and BiometricEntry models for user body data.
// ABOUTME: BMI is derived by consumers from weight and height, never stored.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds one user's body profile. There is at most one per user;
// saves are upserts keyed by UserID.
type Profile struct {
	UserID    string    `json:"user_id" yaml:"user_id" validate:"required"`
	Name      string    `json:"name" yaml:"name" validate:"required"`
	Age       int       `json:"age" yaml:"age" validate:"gt=0"`
	HeightCm  float64   `json:"height" yaml:"height" validate:"gt=0"`
	WeightKg  float64   `json:"weight" yaml:"weight" validate:"gt=0"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewProfile creates a Profile for the given user.
func NewProfile(userID, name string, age int, heightCm, weightKg float64) *Profile {
	return &Profile{
		UserID:    userID,
		Name:      name,
		Age:       age,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
		UpdatedAt: time.Now(),
	}
}

// BiometricEntry is a timestamped height/weight snapshot for a user.
type BiometricEntry struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	UserID     string    `json:"user_id" yaml:"user_id"`
	HeightCm   *float64  `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
	WeightKg   *float64  `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,gt=0"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// NewBiometricEntry creates an entry recorded now.
func NewBiometricEntry(userID string) *BiometricEntry {
	return &BiometricEntry{
		ID:         uuid.New(),
		UserID:     userID,
		RecordedAt: time.Now(),
	}
}

// WithHeight sets the height snapshot in centimeters.
func (b *BiometricEntry) WithHeight(heightCm float64) *BiometricEntry {
	b.HeightCm = &heightCm
	return b
}

// WithWeight sets the weight snapshot in kilograms.
func (b *BiometricEntry) WithWeight(weightKg float64) *BiometricEntry {
	b.WeightKg = &weightKg
	return b
}

// WithRecordedAt sets a custom timestamp.
func (b *BiometricEntry) WithRecordedAt(t time.Time) *BiometricEntry {
	b.RecordedAt = t
	return b
}

// BMI returns the body mass index derived from this entry, or 0 when either
// measurement is missing.
func (b *BiometricEntry) BMI() float64 {
	if b.HeightCm == nil || b.WeightKg == nil || *b.HeightCm == 0 {
		return 0
	}
	m := *b.HeightCm / 100
	return *b.WeightKg / (m * m)
}
