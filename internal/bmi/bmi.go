// Package bmi computes Body Mass Index and classifies it into the four
// standard bands. Everything here is pure and safe for concurrent use.
package bmi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement is wrapped by every validation error from Calculate.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// Measurement is a weight in kilograms and a height in meters.
type Measurement struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// Result is a computed BMI. Category is always derived from Raw, never from Value.
type Result struct {
	Value    float64  `json:"bmi"`
	Raw      float64  `json:"-"`
	Category Category `json:"category"`
}

// Validate returns nil when both fields are finite and strictly positive.
func (m Measurement) Validate() error {
	if !positive(m.Weight) {
		return fmt.Errorf("%w: weight must be a positive number, got %g", ErrInvalidMeasurement, m.Weight)
	}
	if !positive(m.Height) {
		return fmt.Errorf("%w: height must be a positive number, got %g", ErrInvalidMeasurement, m.Height)
	}
	return nil
}

// Compute returns the BMI for weight (kg) and height (m). ok is false, and the
// result empty, when either input is not a finite positive number.
func Compute(weight, height float64) (res Result, ok bool) {
	if !positive(weight) || !positive(height) {
		return Result{}, false
	}

	raw := weight / (height * height)
	if math.IsInf(raw, 0) || math.IsNaN(raw) {
		return Result{}, false
	}

	return Result{
		Value:    Round(raw),
		Raw:      raw,
		Category: Classify(raw),
	}, true
}

// Calculate is Compute for callers that need to report why nothing was computed.
func Calculate(m Measurement) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}

	res, ok := Compute(m.Weight, m.Height)
	if !ok {
		return Result{}, fmt.Errorf("%w: weight %g / height %g is out of range", ErrInvalidMeasurement, m.Weight, m.Height)
	}
	return res, nil
}

// Round rounds v to one decimal place, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*10) / 10
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
