package identity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// stableIDLength is the number of hex characters retained from the hash.
const stableIDLength = 12

// StableID computes the deterministic candidate fingerprint from the four
// identity-bearing fields. Each field is lowercased and trimmed before
// hashing so cosmetic differences never change identity. The year must
// already be coerced to a plain integer string.
func StableID(name, state, office, year string) string {
	key := strings.Join([]string{
		normalizeKeyField(name),
		normalizeKeyField(state),
		normalizeKeyField(office),
		normalizeKeyField(year),
	}, "|")
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:stableIDLength]
}

func normalizeKeyField(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
