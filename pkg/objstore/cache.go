package objstore

import (
	"context"
	"math/rand"
	"time"

	lru "github.com/hnlq715/golang-lru"
	"github.com/treeverse/revwalk/pkg/ident"
)

type JitterFn func() time.Duration

// CacheParams controls a CachingStore.
type CacheParams struct {
	// Size is the maximal number of loaded objects to keep.
	Size int
	// Expiry is how long an entry stays cached before eviction.
	Expiry time.Duration
	// JitterFn is the interval to jitter around expiry.
	JitterFn JitterFn
}

// CachingStore is a read-through object cache over an inner Store. Objects
// are immutable once written, so a hit can never be stale; expiry only
// bounds memory held for stores that outlive their working set.
type CachingStore struct {
	inner Store
	lru   *lru.Cache
	p     CacheParams
}

func NewCachingStore(inner Store, p CacheParams) *CachingStore {
	c, err := lru.New(p.Size)
	if err != nil {
		panic(err)
	}
	if p.JitterFn == nil {
		p.JitterFn = func() time.Duration { return 0 }
	}
	return &CachingStore{
		inner: inner,
		lru:   c,
		p:     p,
	}
}

func (c *CachingStore) Open(ctx context.Context, id ident.ID) (*Loader, error) {
	if v, ok := c.lru.Get(id); ok {
		// callers may mutate the returned payload, the cached copy stays
		// private
		return copyLoader(v.(*Loader)), nil
	}
	ldr, err := c.inner.Open(ctx, id)
	if err != nil {
		// misses are not cached: a missing object may be written later
		return nil, err
	}
	c.lru.AddEx(id, copyLoader(ldr), c.p.Expiry+c.p.JitterFn())
	return ldr, nil
}

func copyLoader(ldr *Loader) *Loader {
	data := make([]byte, len(ldr.Data))
	copy(data, ldr.Data)
	return &Loader{ID: ldr.ID, Type: ldr.Type, Data: data}
}

func (c *CachingStore) Put(ctx context.Context, typ Type, data []byte) (ident.ID, error) {
	return c.inner.Put(ctx, typ, data)
}

func (c *CachingStore) Close() {
	c.lru.Purge()
	c.inner.Close()
}

func NewJitterFn(jitter time.Duration) JitterFn {
	return func() time.Duration {
		n := rand.Intn(int(jitter)) //nolint:gosec
		return time.Duration(n)
	}
}
