package ident_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/revwalk/pkg/ident"
)

func TestParseRoundTrip(t *testing.T) {
	id := ident.Hash("blob", []byte("some payload"))
	parsed, err := ident.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"too_short": "abcdef",
		"too_long":  strings.Repeat("ab", ident.IDLength+1),
		"not_hex":   strings.Repeat("zz", ident.IDLength),
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ident.Parse(input)
			if !errors.Is(err, ident.ErrInvalidID) {
				t.Fatalf("Parse(%q) err=%v, expected ErrInvalidID", input, err)
			}
		})
	}
}

func TestHash(t *testing.T) {
	// sha256("blob 5\x00hello")
	const expected = "8aec4e4876f854f688d0ebfc8f37598f38e5fd6903cccc850ca36591175aeb60"
	id := ident.Hash("blob", []byte("hello"))
	require.Equal(t, expected, id.String())

	// kind participates in the address
	other := ident.Hash("commit", []byte("hello"))
	require.NotEqual(t, id, other)
}

func TestMultihash(t *testing.T) {
	id := ident.Hash("blob", []byte("hello"))
	// sha2-256 multihash: code 0x12, length 0x20, then the digest
	require.Equal(t, "1220"+id.String(), ident.Multihash(id))
}

func TestNil(t *testing.T) {
	require.True(t, ident.Nil.IsNil())
	require.False(t, ident.Hash("blob", nil).IsNil())
}
