package utils

import (
	"strings"
	"time"
)

// StringPtr returns a pointer to the string if it's not empty, otherwise returns nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TrimmedStringPtr trims the value and returns nil when nothing is left
func TrimmedStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(strings.TrimSpace(*s))
}

// TimePtr returns a pointer to the time if it's not zero, otherwise returns nil
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func Ptr[T any](v T) *T {
	return &v
}

func Deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
