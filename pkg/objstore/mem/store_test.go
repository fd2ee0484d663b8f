package mem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore"
	"github.com/treeverse/revwalk/pkg/objstore/mem"
)

func TestPutOpen(t *testing.T) {
	ctx := context.Background()
	store := mem.New()
	defer store.Close()

	id, err := store.Put(ctx, objstore.TypeBlob, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, ident.Hash("blob", []byte("hello")), id, "Put must return the content address")

	ldr, err := store.Open(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, ldr.ID)
	require.Equal(t, objstore.TypeBlob, ldr.Type)
	require.Equal(t, []byte("hello"), ldr.Data)
}

func TestOpenNotFound(t *testing.T) {
	ctx := context.Background()
	store := mem.New()
	defer store.Close()

	_, err := store.Open(ctx, ident.Hash("blob", []byte("absent")))
	require.ErrorIs(t, err, objstore.ErrNotFound)
}

func TestPutIdempotent(t *testing.T) {
	ctx := context.Background()
	store := mem.New()
	defer store.Close()

	first, err := store.Put(ctx, objstore.TypeCommit, []byte("same body"))
	require.NoError(t, err)
	second, err := store.Put(ctx, objstore.TypeCommit, []byte("same body"))
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, store.Len())
}

func TestPutInvalidType(t *testing.T) {
	ctx := context.Background()
	store := mem.New()
	defer store.Close()

	_, err := store.Put(ctx, objstore.TypeInvalid, []byte("x"))
	require.ErrorIs(t, err, objstore.ErrInvalidType)
}

func TestOpenReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := mem.New()
	defer store.Close()

	id, err := store.Put(ctx, objstore.TypeBlob, []byte("original"))
	require.NoError(t, err)
	ldr, err := store.Open(ctx, id)
	require.NoError(t, err)
	ldr.Data[0] = 'X'

	again, err := store.Open(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []byte("original"), again.Data)
}
