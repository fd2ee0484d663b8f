package ident

import (
	"encoding/hex"

	"github.com/multiformats/go-multihash"
)

// Multihash renders id as a hex-encoded self-describing multihash, for
// interchange with systems that do not assume SHA-256.
func Multihash(id ID) string {
	encoded, _ := multihash.Encode(id[:], multihash.SHA2_256)
	return hex.EncodeToString(encoded)
}
