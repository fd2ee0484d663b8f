package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore"
)

const DriverName = "mem"

type Driver struct{}

func (d *Driver) Open(_ context.Context, _ objstore.Params) (objstore.Store, error) {
	return New(), nil
}

type record struct {
	typ  objstore.Type
	data []byte
}

// Store is an in-memory object store, used by tests and as a scratch target.
type Store struct {
	mu      sync.RWMutex
	objects map[ident.ID]record
}

func New() *Store {
	return &Store{objects: make(map[ident.ID]record)}
}

func (s *Store) Open(_ context.Context, id ident.ID) (*objstore.Loader, error) {
	s.mu.RLock()
	rec, ok := s.objects[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, objstore.ErrNotFound)
	}
	data := make([]byte, len(rec.data))
	copy(data, rec.data)
	return &objstore.Loader{ID: id, Type: rec.typ, Data: data}, nil
}

func (s *Store) Put(_ context.Context, typ objstore.Type, data []byte) (ident.ID, error) {
	if !typ.Valid() {
		return ident.Nil, fmt.Errorf("%w: %s", objstore.ErrInvalidType, typ)
	}
	id := ident.Hash(typ.String(), data)
	stored := make([]byte, len(data))
	copy(stored, data)
	s.mu.Lock()
	s.objects[id] = record{typ: typ, data: stored}
	s.mu.Unlock()
	return id, nil
}

func (s *Store) Close() {}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

//nolint:gochecknoinits
func init() {
	objstore.Register(DriverName, &Driver{})
}
