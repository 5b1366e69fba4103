package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates opaque per-collection IDs. IDs carry the entity prefix and
// creation timestamp plus a random suffix so two entities created in the same
// millisecond still get distinct ids.
type Generator interface {
	NewID(prefix string) (string, error)
}

type TimestampGenerator struct{}

func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{}
}

func (g *TimestampGenerator) NewID(prefix string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(buf)), nil
}
