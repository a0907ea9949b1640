// Package output serializes a built corpus to the generated data directory.
package output

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash derives a stable short file name from a route or source path.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:16]
}
