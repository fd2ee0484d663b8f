package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/logging"
	"github.com/treeverse/revwalk/pkg/objstore"
)

const (
	DriverName           = "local"
	DefaultDirectoryPath = "~/data/revwalk/objects"
)

var (
	driverLock    = &sync.Mutex{}
	connectionMap = make(map[string]*Store)
)

type Driver struct{}

func (d *Driver) Open(ctx context.Context, params objstore.Params) (objstore.Store, error) {
	driverLock.Lock()
	defer driverLock.Unlock()
	path := params.Path
	if path == "" {
		path = DefaultDirectoryPath
	}
	connection, ok := connectionMap[path]
	if !ok {
		var logger logging.Logger = logging.DummyLogger{}
		if params.EnableLogging {
			logger = logging.FromContext(ctx).WithField(logging.StoreFieldKey, DriverName)
		}
		opts := badger.DefaultOptions(path)
		opts.Logger = &BadgerLogger{logger}
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger database: %w", err)
		}
		connection = &Store{
			db:     db,
			logger: logger,
			path:   path,
		}
		connectionMap[path] = connection
	}
	connection.refCount++
	return connection, nil
}

// Store is a badger-backed object store. One Store is shared per directory
// path and reference counted across Open calls.
type Store struct {
	db       *badger.DB
	logger   logging.Logger
	path     string
	refCount int
}

func (s *Store) Open(_ context.Context, id ident.ID) (*objstore.Loader, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(id[:])
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%s: %w", id, objstore.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("badger get: %w", err)
	}
	typ, data, err := objstore.DecodeRecord(value)
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
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(id[:], objstore.EncodeRecord(typ, data))
	})
	if err != nil {
		return ident.Nil, fmt.Errorf("badger set: %w", err)
	}
	return id, nil
}

func (s *Store) Close() {
	driverLock.Lock()
	defer driverLock.Unlock()
	s.refCount--
	if s.refCount > 0 {
		return
	}
	if err := s.db.Close(); err != nil {
		s.logger.WithError(err).WithField(logging.PathFieldKey, s.path).
			Error("failed to close badger database")
	}
	delete(connectionMap, s.path)
}

//nolint:gochecknoinits
func init() {
	objstore.Register(DriverName, &Driver{})
}
