// Package random provides the random sources used by game sessions.
//
// Sessions never reach for a process-wide generator: callers construct a
// Source explicitly, either deterministically from a seed or from a
// crypto/rand seed when no reproducibility is wanted.
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
