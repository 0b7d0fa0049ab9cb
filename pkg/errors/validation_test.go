package errors

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"lower bound", -1, false},
		{"upper bound", 1, false},
		{"negative", -0.4, false},
		{"below range", -1.01, true},
		{"above range", 1.5, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTarget(%v) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTarget) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidTarget)
			}
		})
	}
}

func TestValidateSampleSize(t *testing.T) {
	if err := ValidateSampleSize(1); err != nil {
		t.Errorf("ValidateSampleSize(1) = %v, want nil", err)
	}
	for _, n := range []int{0, -3} {
		if err := ValidateSampleSize(n); !Is(err, ErrCodeInvalidSampleSize) {
			t.Errorf("ValidateSampleSize(%d) = %v, want %s", n, err, ErrCodeInvalidSampleSize)
		}
	}
}

func TestValidateProbability(t *testing.T) {
	for _, p := range []float64{0, 0.05, 1} {
		if err := ValidateProbability(p); err != nil {
			t.Errorf("ValidateProbability(%v) = %v, want nil", p, err)
		}
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if err := ValidateProbability(p); !Is(err, ErrCodeInvalidProbability) {
			t.Errorf("ValidateProbability(%v) = %v, want %s", p, err, ErrCodeInvalidProbability)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration("time limit", 0); err != nil {
		t.Errorf("zero duration: %v", err)
	}
	if err := ValidateDuration("time limit", time.Second); err != nil {
		t.Errorf("positive duration: %v", err)
	}
	err := ValidateDuration("time limit", -time.Second)
	if !Is(err, ErrCodeInvalidDuration) {
		t.Fatalf("negative duration: got %v", err)
	}
	if !strings.Contains(err.Error(), "time limit") {
		t.Errorf("message should name the field: %v", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "graphs/er.json", false},
		{"absolute", "/tmp/er.json", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "graph\x00.json", true},
		{"control char", "graph\n.json", true},
		{"too long", strings.Repeat("a", 4097), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
