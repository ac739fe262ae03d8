package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrSampleOutOfRange is returned when a source yields a value outside [0, 1).
var ErrSampleOutOfRange = errors.New("random sample out of range")

// Source returns a sample in [0, 1) each time it is called.
type Source func() float64

// NewSource returns a deterministic source for seed. Two sources built from
// the same seed yield the same sequence. The returned source is not safe for
// concurrent use.
func NewSource(seed int64) Source {
	rng := rand.New(rand.NewSource(seed))
	return rng.Float64
}

// Sequence returns a source that yields values in order and starts over after
// the last one. It panics when called with no values.
func Sequence(values ...float64) Source {
	if len(values) == 0 {
		panic("random: Sequence requires at least one value")
	}
	cloned := append([]float64(nil), values...)
	next := 0
	return func() float64 {
		v := cloned[next]
		next = (next + 1) % len(cloned)
		return v
	}
}

// Const returns a source that always yields v.
func Const(v float64) Source {
	return func() float64 { return v }
}

// Intn scales one sample from src into [0, n) as floor(sample*n). A sample
// outside [0, 1) fails with ErrSampleOutOfRange.
func (src Source) Intn(n int) (int, error) {
	sample := src()
	if !(sample >= 0 && sample < 1) {
		return 0, fmt.Errorf("%w: %v", ErrSampleOutOfRange, sample)
	}
	return int(math.Floor(sample * float64(n))), nil
}
