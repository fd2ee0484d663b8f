package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// IDLength is the byte length of an object identity (SHA-256).
const IDLength = sha256.Size

var ErrInvalidID = errors.New("invalid object identity")

// ID is the content address of a stored object. It is comparable and can be
// used directly as a map key. Two objects share an ID iff they share a
// canonical encoding.
type ID [IDLength]byte

// Nil is the zero identity. It never names a real object.
var Nil ID

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ID) IsNil() bool {
	return id == Nil
}

// Parse decodes a full hex identity string.
func Parse(s string) (ID, error) {
	if len(s) != IDLength*2 {
		return Nil, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidID, IDLength*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %s", ErrInvalidID, err)
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// MustParse is Parse for tests and fixtures with known-good input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Hash computes the content address of an object payload. The address covers
// the object's kind so that identical payloads of different kinds never
// collide.
func Hash(kind string, payload []byte) ID {
	h := sha256.New()
	fmt.Fprintf(h, "%s %d\x00", kind, len(payload))
	h.Write(payload)
	var id ID
	copy(id[:], h.Sum(nil))
	return id
}

// Identifiable is implemented by entities that expose a canonical byte
// representation of their identity.
type Identifiable interface {
	Identity() []byte
}

// ContentAddress hashes an Identifiable entity into an ID.
func ContentAddress(entity Identifiable) ID {
	return ID(sha256.Sum256(entity.Identity()))
}
