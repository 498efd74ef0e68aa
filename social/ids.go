package social

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID builds a collision-resistant opaque id with a short kind prefix,
// e.g. "c_3f9a1b2c4d5e".
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:6])
}
