package validation

import "testing"

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		expectError string
	}{
		{
			name:  "Within range",
			value: 11.8,
		},
		{
			name:  "Lower bound inclusive",
			value: 5,
		},
		{
			name:  "Upper bound inclusive",
			value: 20,
		},
		{
			name:        "Above range",
			value:       25,
			expectError: "processingFeeRate out of range [5,20]: got 25",
		},
		{
			name:        "Below range",
			value:       4.5,
			expectError: "processingFeeRate out of range [5,20]: got 4.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("processingFeeRate", tt.value, 5, 20)
			if tt.expectError == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.expectError)
			}
			if err.Error() != tt.expectError {
				t.Errorf("error = %q, expected %q", err.Error(), tt.expectError)
			}
		})
	}
}

func TestValidateIntRange(t *testing.T) {
	if err := ValidateIntRange("rotationCycleDays", 30, 15, 45); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateIntRange("rotationCycleDays", 60, 15, 45)
	if err == nil || err.Error() != "rotationCycleDays out of range [15,45]: got 60" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("capital month 1", 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNonNegative("capital month 1", -1); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestValidateMaxTotal(t *testing.T) {
	if err := ValidateMaxTotal("collections", 100, 80, 5, 5, 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateMaxTotal("collections", 100, 80, 10, 10, 0); err != nil {
		t.Errorf("exactly 100 should be allowed: %v", err)
	}
	err := ValidateMaxTotal("collections", 100, 90, 10, 5, 0)
	if err == nil || err.Error() != "collections must not exceed 100: got 105" {
		t.Errorf("unexpected error: %v", err)
	}
}
