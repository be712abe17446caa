package utils

import (
	"context"
	"fmt"
	"math"
	"time"
)

// ToPointer returns a pointer to a copy of value.
func ToPointer[T any](value T) *T {
	return &value
}

// RoundTo rounds value to the given number of decimal places, half away
// from zero.
func RoundTo(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

// Recover runs fn and converts a panic into an error.
func Recover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered: %v", r)
		}
	}()
	fn()
	return nil
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WithTimeout is context.WithTimeout that treats a non-positive d as "no
// deadline".
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
