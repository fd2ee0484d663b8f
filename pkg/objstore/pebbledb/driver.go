package pebbledb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/logging"
	"github.com/treeverse/revwalk/pkg/objstore"
)

const DriverName = "pebble"

type Driver struct{}

func (d *Driver) Open(_ context.Context, params objstore.Params) (objstore.Store, error) {
	if params.Path == "" {
		return nil, fmt.Errorf("missing %s path: %w", DriverName, objstore.ErrDriverConfiguration)
	}
	db, err := pebble.Open(params.Path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble database: %w", err)
	}
	return &Store{
		db:     db,
		logger: logging.Default().WithField(logging.StoreFieldKey, DriverName),
		path:   params.Path,
	}, nil
}

// Store is a pebble-backed object store.
type Store struct {
	db     *pebble.DB
	logger logging.Logger
	path   string
}

func (s *Store) Open(_ context.Context, id ident.ID) (*objstore.Loader, error) {
	value, closer, err := s.db.Get(id[:])
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", id, objstore.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("pebble get: %w", err)
	}
	// value is only valid until closer runs
	copied := make([]byte, len(value))
	copy(copied, value)
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("pebble get close: %w", err)
	}
	typ, data, err := objstore.DecodeRecord(copied)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &objstore.Loader{ID: id, Type: typ, Data: data}, nil
}

func (s *Store) Put(_ context.Context, typ objstore.Type, data []byte) (ident.ID, error) {
	if !typ.Valid() {
		return ident.Nil, fmt.Errorf("%w: %s", objstore.ErrInvalidType, typ)
	}
	id := ident.Hash(typ.String(), data)
	if err := s.db.Set(id[:], objstore.EncodeRecord(typ, data), pebble.Sync); err != nil {
		return ident.Nil, fmt.Errorf("pebble set: %w", err)
	}
	return id, nil
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.WithError(err).WithField(logging.PathFieldKey, s.path).
			Error("failed to close pebble database")
	}
}

//nolint:gochecknoinits
func init() {
	objstore.Register(DriverName, &Driver{})
}
