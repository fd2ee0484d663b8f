package pebbledb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore"
	"github.com/treeverse/revwalk/pkg/objstore/pebbledb"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := objstore.Open(ctx, pebbledb.DriverName, objstore.Params{Path: t.TempDir()})
	require.NoError(t, err)
	defer store.Close()

	id, err := store.Put(ctx, objstore.TypeTag, []byte("tag body"))
	require.NoError(t, err)

	ldr, err := store.Open(ctx, id)
	require.NoError(t, err)
	require.Equal(t, objstore.TypeTag, ldr.Type)
	require.Equal(t, []byte("tag body"), ldr.Data)
}

func TestOpenNotFound(t *testing.T) {
	ctx := context.Background()
	store, err := objstore.Open(ctx, pebbledb.DriverName, objstore.Params{Path: t.TempDir()})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Open(ctx, ident.Hash("blob", []byte("absent")))
	require.ErrorIs(t, err, objstore.ErrNotFound)
}

func TestMissingPath(t *testing.T) {
	ctx := context.Background()
	_, err := objstore.Open(ctx, pebbledb.DriverName, objstore.Params{})
	require.ErrorIs(t, err, objstore.ErrDriverConfiguration)
}
