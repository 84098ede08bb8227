package bmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		expected float64
		category domain.Category
	}{
		{name: "normal adult", weight: 70, height: 175, expected: 22.86, category: domain.Normal},
		{name: "underweight", weight: 50, height: 180, expected: 15.43, category: domain.Underweight},
		{name: "overweight", weight: 85, height: 175, expected: 27.76, category: domain.Overweight},
		{name: "obese", weight: 120, height: 170, expected: 41.52, category: domain.Obese},
		{name: "exactly 25", weight: 25, height: 100, expected: 25, category: domain.Overweight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, category, err := Compute(tt.weight, tt.height)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestComputeRoundsFromExactValue(t *testing.T) {
	tests := []struct {
		weight   float64
		height   float64
		expected float64
	}{
		// 30.7/4 is stored as 7.67499999...
		{weight: 30.7, height: 200, expected: 7.67},
		{weight: 30.9, height: 200, expected: 7.72},
		{weight: 31.7, height: 200, expected: 7.92},
		// exact binary ties go to the even digit
		{weight: 20.125, height: 100, expected: 20.12},
		{weight: 20.375, height: 100, expected: 20.38},
		{weight: 64, height: 160, expected: 25},
		{weight: 72.4, height: 180, expected: 22.35},
	}

	for _, tt := range tests {
		value, _, err := Compute(tt.weight, tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, value, "weight=%v height=%v", tt.weight, tt.height)
	}
}

func TestComputeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
	}{
		{name: "zero height", weight: 70, height: 0},
		{name: "negative height", weight: 70, height: -170},
		{name: "zero weight", weight: 0, height: 170},
		{name: "nan weight", weight: math.NaN(), height: 170},
		{name: "infinite height", weight: 70, height: math.Inf(1)},
		{name: "underflowing height", weight: 70, height: 1e-300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Compute(tt.weight, tt.height)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected domain.Category
	}{
		{bmi: 10, expected: domain.Underweight},
		{bmi: 18.49, expected: domain.Underweight},
		{bmi: 18.5, expected: domain.Normal},
		{bmi: 24.999, expected: domain.Normal},
		{bmi: 25.0, expected: domain.Overweight},
		{bmi: 29.999, expected: domain.Overweight},
		{bmi: 30.0, expected: domain.Obese},
		{bmi: 55, expected: domain.Obese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestParseMeasurement(t *testing.T) {
	v, err := ParseMeasurement("weight", " 72.5 ")
	require.NoError(t, err)
	assert.Equal(t, 72.5, v)

	for _, input := range []string{"", "   ", "abc", "7O", "-3", "0", "NaN", "Inf", "1e400"} {
		_, err := ParseMeasurement("height", input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", input)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 22.86, Round2(22.857142))
	assert.Equal(t, 18.5, Round2(18.499))
	assert.Equal(t, 20.0, Round2(20))
	assert.Equal(t, 7.67, Round2(7.675))
	assert.Equal(t, 0.12, Round2(0.125))
	assert.Equal(t, 0.38, Round2(0.375))
}
