package revwalk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore/mem"
	"github.com/treeverse/revwalk/pkg/revwalk"
)

func TestIteratorWalk(t *testing.T) {
	store := mem.New()
	c1 := putCommit(t, store, 100, "C1")
	c2 := putCommit(t, store, 200, "C2", c1)
	c3 := putCommit(t, store, 300, "C3", c2)

	w := revwalk.NewWalker(context.Background(), store)
	startFrom(t, w, c3)

	var got []string
	it := w.Iterator()
	for it.Next() {
		got = append(got, it.Value().Message())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []string{"C3", "C2", "C1"}, got)

	// exhausted for good
	require.False(t, it.Next())
	require.Nil(t, it.Value())
}

func TestIteratorEmptyWalk(t *testing.T) {
	w := revwalk.NewWalker(context.Background(), mem.New())
	it := w.Iterator()
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestIteratorTerminalError(t *testing.T) {
	store := mem.New()
	missing := ident.Hash("commit", []byte("dangling"))
	head := putCommit(t, store, 200, "head", missing)

	w := revwalk.NewWalker(context.Background(), store)
	startFrom(t, w, head)

	it := w.Iterator()
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), revwalk.ErrObjectMissing)
	require.Nil(t, it.Value())

	// the failure is observed once; the iterator stays terminated
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), revwalk.ErrObjectMissing)
}

func TestIteratorAfterReset(t *testing.T) {
	store := mem.New()
	c1 := putCommit(t, store, 100, "C1")
	c2 := putCommit(t, store, 200, "C2", c1)

	w := revwalk.NewWalker(context.Background(), store)
	startFrom(t, w, c2)
	it := w.Iterator()
	for it.Next() {
	}
	require.NoError(t, it.Err())

	w.Reset()
	startFrom(t, w, c2)
	// a reset walk needs a fresh iterator
	fresh := w.Iterator()
	var got []string
	for fresh.Next() {
		got = append(got, fresh.Value().Message())
	}
	require.NoError(t, fresh.Err())
	require.Equal(t, []string{"C2", "C1"}, got)
}
