package objstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/revwalk/pkg/objstore"
	_ "github.com/treeverse/revwalk/pkg/objstore/mem"
)

func TestTypeString(t *testing.T) {
	for typ, expected := range map[objstore.Type]string{
		objstore.TypeCommit: "commit",
		objstore.TypeTree:   "tree",
		objstore.TypeBlob:   "blob",
		objstore.TypeTag:    "tag",
	} {
		require.Equal(t, expected, typ.String())
		parsed, err := objstore.ParseType(expected)
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
}

func TestParseTypeInvalid(t *testing.T) {
	_, err := objstore.ParseType("widget")
	require.ErrorIs(t, err, objstore.ErrInvalidType)
}

func TestOpenUnknownDriver(t *testing.T) {
	ctx := context.Background()
	_, err := objstore.Open(ctx, "no-such-driver", objstore.Params{})
	if !errors.Is(err, objstore.ErrUnknownDriver) {
		t.Fatalf("Open() err=%v, expected ErrUnknownDriver", err)
	}
}

func TestOpenRegisteredDriver(t *testing.T) {
	ctx := context.Background()
	store, err := objstore.Open(ctx, "mem", objstore.Params{})
	require.NoError(t, err)
	defer store.Close()

	id, err := store.Put(ctx, objstore.TypeBlob, []byte("payload"))
	require.NoError(t, err)
	ldr, err := store.Open(ctx, id)
	require.NoError(t, err)
	require.Equal(t, objstore.TypeBlob, ldr.Type)
	require.Equal(t, []byte("payload"), ldr.Data)
}

func TestRecordRoundTrip(t *testing.T) {
	value := objstore.EncodeRecord(objstore.TypeCommit, []byte("body"))
	typ, data, err := objstore.DecodeRecord(value)
	require.NoError(t, err)
	require.Equal(t, objstore.TypeCommit, typ)
	require.Equal(t, []byte("body"), data)
}

func TestDecodeRecordInvalid(t *testing.T) {
	_, _, err := objstore.DecodeRecord(nil)
	require.ErrorIs(t, err, objstore.ErrBadObject)

	_, _, err = objstore.DecodeRecord([]byte{0xff, 'x'})
	require.ErrorIs(t, err, objstore.ErrInvalidType)
}
