package errors

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// ValidateTarget checks that a target assortativity is a finite number in
// [-1, 1], the range of a correlation coefficient.
func ValidateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return New(ErrCodeInvalidTarget, "target must be a finite number")
	}
	if target < -1 || target > 1 {
		return New(ErrCodeInvalidTarget, "target %.4f outside [-1, 1]", target)
	}
	return nil
}

// ValidateSampleSize checks that the number of edges swapped per tuning
// iteration is at least one.
func ValidateSampleSize(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidSampleSize, "sample size must be >= 1, got %d", n)
	}
	return nil
}

// ValidateProbability checks that p is a probability.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return New(ErrCodeInvalidProbability, "probability %v outside [0, 1]", p)
	}
	return nil
}

// ValidateDuration checks that a time budget is not negative. Zero means
// "no budget" wherever budgets are optional.
func ValidateDuration(name string, d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidDuration, "%s must not be negative, got %s", name, d)
	}
	return nil
}

// ValidatePath validates a file path given on the command line or in a
// configuration file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
