package social

import (
	"crypto/sha256"
	"encoding/hex"
)

// identitySalt is mixed into every address digest so tokens cannot be
// matched against digests produced elsewhere.
const identitySalt = "tat-social-"

// identityTokenLen is the hex-prefix length of a token.
const identityTokenLen = 16

// HashIdentity derives the opaque identity token for a raw network address.
// The token is a salted one-way digest truncated to a fixed prefix; the raw
// address is never stored. An empty address yields an empty token, which
// disables rate limiting and endorsement dedup for that caller.
func HashIdentity(addr string) string {
	if addr == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(identitySalt + addr))
	return hex.EncodeToString(sum[:])[:identityTokenLen]
}
