// Package bmi computes Body Mass Index values and their weight categories.
package bmi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

// Category thresholds. Each interval is closed below and open above.
const (
	NormalFrom     = 18.5
	OverweightFrom = 25.0
	ObeseFrom      = 30.0
)

// ParseMeasurement parses a user supplied number. Anything that is not a
// finite positive value is rejected with domain.ErrInvalidInput.
func ParseMeasurement(field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%s is empty: %w", field, domain.ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", field, text, domain.ErrInvalidInput)
	}
	if !isPositive(v) {
		return 0, fmt.Errorf("%s must be positive: %w", field, domain.ErrInvalidInput)
	}
	return v, nil
}

// Compute returns the BMI for a weight in kilograms and a height in
// centimetres, rounded to two decimals, together with its category.
func Compute(weightKg, heightCm float64) (float64, domain.Category, error) {
	if !isPositive(weightKg) {
		return 0, "", fmt.Errorf("weight must be positive: %w", domain.ErrInvalidInput)
	}
	if !isPositive(heightCm) {
		return 0, "", fmt.Errorf("height must be positive: %w", domain.ErrInvalidInput)
	}

	heightM := heightCm / 100
	raw := weightKg / (heightM * heightM)
	if math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 0, "", fmt.Errorf("height too small: %w", domain.ErrInvalidInput)
	}

	value := Round2(raw)
	return value, Categorize(value), nil
}

func Categorize(bmi float64) domain.Category {
	switch {
	case bmi < NormalFrom:
		return domain.Underweight
	case bmi < OverweightFrom:
		return domain.Normal
	case bmi < ObeseFrom:
		return domain.Overweight
	default:
		return domain.Obese
	}
}

// Round2 rounds to two decimals from the exact binary value of x, with
// exact ties going to the even digit.
func Round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
