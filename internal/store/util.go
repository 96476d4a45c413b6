package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRunID creates a unique, time-ordered run ID.
// Format: run-<timestamp>-<hash>
// Example: run-20251021T143052Z-a3f9c2
func GenerateRunID(timestamp time.Time) string {
	// UTC timestamp in a sortable format for consistent ordering
	ts := timestamp.UTC().Format("20060102T150405Z")

	// Short hash from nanoseconds for uniqueness within a second
	input := fmt.Sprintf("%d", timestamp.UnixNano())
	hash := sha256.Sum256([]byte(input))
	shortHash := hex.EncodeToString(hash[:3])

	return fmt.Sprintf("run-%s-%s", ts, shortHash)
}
