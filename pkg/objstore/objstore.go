package objstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/treeverse/revwalk/pkg/ident"
)

var (
	ErrNotFound            = errors.New("object not found")
	ErrInvalidType         = errors.New("invalid object type")
	ErrBadObject           = errors.New("malformed object body")
	ErrUnknownDriver       = errors.New("unknown objstore driver")
	ErrDriverConfiguration = errors.New("driver configuration")
)

// Type is the tag of a stored object. The store persists it next to the
// payload and reports it on every read.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeCommit
	TypeTree
	TypeBlob
	TypeTag
)

func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	case TypeTag:
		return "tag"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
}

func (t Type) Valid() bool {
	return t >= TypeCommit && t <= TypeTag
}

// ParseType maps a type tag name back to its Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	case "tag":
		return TypeTag, nil
	default:
		return TypeInvalid, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Loader is one stored object as read back from a Store: its identity, type
// tag and raw payload.
type Loader struct {
	ID   ident.ID
	Type Type
	Data []byte
}

// Store is content-addressed object storage. Implementations must be safe
// for concurrent use: multiple revision walkers may read from one Store at
// the same time.
type Store interface {
	// Open returns the object named by id. A missing object is reported as
	// ErrNotFound, distinct from transport failures.
	Open(ctx context.Context, id ident.ID) (*Loader, error)

	// Put writes a payload under its content address and returns that
	// address. Writing an object that already exists is a no-op.
	Put(ctx context.Context, typ Type, data []byte) (ident.ID, error)

	// Close releases the store. After Close the instance is unusable.
	Close()
}

// Params configures a driver Open call. Drivers use the subset they need.
type Params struct {
	// Path is the directory holding the store, for disk-backed drivers.
	Path string
	// EnableLogging turns on driver-internal logging.
	EnableLogging bool
}

// Driver opens access to an object store backend. Each backend registers a
// Driver under its name.
type Driver interface {
	Open(ctx context.Context, params Params) (Store, error)
}

var (
	driversLock sync.RWMutex
	drivers     = make(map[string]Driver)
)

func Register(name string, driver Driver) {
	driversLock.Lock()
	defer driversLock.Unlock()
	if _, found := drivers[name]; found {
		panic("objstore driver already registered: " + name)
	}
	drivers[name] = driver
}

func UnregisterAllDrivers() {
	driversLock.Lock()
	defer driversLock.Unlock()
	drivers = make(map[string]Driver)
}

// Open opens a Store through the named registered driver.
func Open(ctx context.Context, name string, params Params) (Store, error) {
	driversLock.RLock()
	driver, ok := drivers[name]
	driversLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}
	return driver.Open(ctx, params)
}

// Drivers returns the names of all registered drivers.
func Drivers() []string {
	driversLock.RLock()
	defer driversLock.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}
