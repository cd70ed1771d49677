package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small negative", -0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Within tolerance", 0.005, true},
		{"Just above tolerance", 0.02, false},
		{"Large negative", -100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.5, 1.0) {
		t.Error("expected 100.0 and 100.5 to be within 1.0")
	}
	if WithinTolerance(100.0, 102.0, 1.0) {
		t.Error("expected 100.0 and 102.0 to differ by more than 1.0")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{1, 2, 2},
		{-5, 0, 0},
		{3, 3, 3},
		{-1, -2, -1},
	}

	for _, tt := range tests {
		if got := Max(tt.a, tt.b); got != tt.expected {
			t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Quarter", 25, 100, 25},
		{"Zero total", 10, 0, 0},
		{"Negative value", -50, 200, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculatePercentage(tt.value, tt.total); got != tt.expected {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, got, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Ten percent", 55900000, 10, 5590000},
		{"Fractional percent", 1000, 1.5, 15},
		{"Zero percent", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPercentage(tt.value, tt.percentage)
			if !WithinTolerance(got, tt.expected, 1e-6) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
			}
		})
	}
}

func TestSumAndMean(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := Sum(values); got != 10 {
		t.Errorf("Sum() = %v, expected 10", got)
	}
	if got := Mean(values); got != 2.5 {
		t.Errorf("Mean() = %v, expected 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, expected 0", got)
	}
}
