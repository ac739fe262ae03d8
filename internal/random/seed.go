// Package random provides the random sources used by the simulations.
//
// A Source is a plain function returning a float64 in [0, 1). Production
// callers build one from a crypto-generated seed so the run can be replayed;
// tests pass Sequence to pin every draw.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
