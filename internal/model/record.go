package model

import (
	"time"

	"bmi-tool/internal/bmi"
)

// Record holds one accepted BMI calculation.
type Record struct {
	ID         string // random UUID
	SessionID  string
	Timestamp  time.Time
	HeightText string // as entered
	WeightText string // as entered
	HeightCm   float64
	WeightKg   float64
	BMI        float64
	Category   bmi.Category
}

// Advice returns the advice for the record's category.
func (r *Record) Advice() bmi.Advice {
	return bmi.AdviceFor(r.Category)
}

// SeeDoctor returns "Yes" or "No" for the record's category.
func (r *Record) SeeDoctor() string {
	if r.Advice().SeeDoctor {
		return "Yes"
	}
	return "No"
}
