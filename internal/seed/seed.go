// Package seed decides the random seed used to place Voronoi seed points.
// Random mode varies every run; manual and text modes reproduce an image.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeRandom uses a time-derived seed (default, varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeText hashes a user-provided phrase into a seed.
	ModeText Mode = "text"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
	Text  string // Phrase (only used when Mode is ModeText)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(config Config) (int64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeText:
		if config.Text == "" {
			return 0, fmt.Errorf("seed text is required for text seed mode")
		}
		return CalculateTextSeed(config.Text), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateTextSeed hashes text into a seed.
func CalculateTextSeed(text string) int64 {
	hash := sha256.Sum256([]byte(text))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic, time-derived seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + rand.Int64N(1000000)
}

// NewRand returns a generator seeded from s. The same s always yields the
// same sequence.
func NewRand(s int64) *rand.Rand {
	u := uint64(s) // #nosec G115 -- bit pattern reuse is intended
	return rand.New(rand.NewPCG(u, u^0x9E3779B97F4A7C15))
}
