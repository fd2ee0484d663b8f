// Package revwalk walks the commit graph of a content-addressed object
// store and produces the reachable commits in date order.
//
// A Walker can only be used once to generate results. Running a second time
// requires creating a new Walker, or calling Reset before starting again.
// Resetting an existing instance is usually cheaper, as object bodies parsed
// during earlier walks are kept and not decoded again.
//
// A Walker is not safe for concurrent use and performs no locking. Multiple
// independent Walkers over the same Store are fine, even from concurrent
// goroutines; they share no mutable state, and objects obtained from two
// different Walkers are never the same instance even when their identities
// are equal.
package revwalk

import (
	"context"
	"errors"
	"fmt"

	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/logging"
	"github.com/treeverse/revwalk/pkg/objstore"
)

type walkState int

const (
	stateIdle walkState = iota
	stateWalking
	stateExhausted
)

// Walker walks a commit graph, popping commits in descending commit-time
// order while lazily discovering and parsing parents one generation at a
// time.
type Walker struct {
	ctx         context.Context
	store       objstore.Store
	objects     map[ident.ID]Object
	roots       []*Commit
	pending     *dateQueue
	nextFlagBit uint
	state       walkState
	log         logging.Logger
}

// NewWalker creates a revision walker reading objects from store. The
// context is handed to every store read; cancelling it is the only way to
// interrupt a walk blocked on storage.
func NewWalker(ctx context.Context, store objstore.Store) *Walker {
	return &Walker{
		ctx:         ctx,
		store:       store,
		objects:     make(map[ident.ID]Object),
		pending:     newDateQueue(),
		nextFlagBit: reservedFlagBits,
		log:         logging.FromContext(ctx),
	}
}

// MarkStart marks a commit to start graph traversal from. Marking an
// already-seen commit is a no-op. The commit is parsed first if needed, so
// parse failures surface here unchanged. Marking a fresh start after the
// walk is exhausted resumes walking from it.
//
// Callers are encouraged to resolve starting points with ParseCommit rather
// than LookupCommit: an unparsed lookup node may turn out not to be a commit
// at all, which both fails here and leaves the mistyped node in the pool.
func (w *Walker) MarkStart(c *Commit) error {
	if c.has(flagSeen) {
		return nil
	}
	if !c.has(flagParsed) {
		if err := w.parse(c); err != nil {
			return err
		}
	}
	c.flags |= flagSeen
	w.roots = append(w.roots, c)
	w.pending.add(c)
	w.state = stateWalking
	if w.log.IsDebugging() {
		w.log.WithField(logging.CommitIDFieldKey, c.id.String()).Debug("mark start")
	}
	return nil
}

// Next pops the next most recent commit, discovering its unseen parents
// along the way. It returns nil once traversal is over, and keeps returning
// nil until a new starting point is marked. If a parent fails to parse the
// call fails and no commit is returned; parsing never looks further than
// the returned commit's immediate parents.
func (w *Walker) Next() (*Commit, error) {
	if w.state != stateWalking {
		return nil, nil
	}
	c := w.pending.pop()
	if c == nil {
		w.state = stateExhausted
		return nil, nil
	}
	for _, p := range c.parents {
		if p.has(flagSeen) {
			continue
		}
		if !p.has(flagParsed) {
			if err := w.parse(p); err != nil {
				return nil, err
			}
		}
		p.flags |= flagSeen
		w.pending.add(p)
	}
	return c, nil
}

// Reset clears the walk state and allows this instance to be used again.
// The object pool and parsed bodies are retained, so a subsequent walk skips
// decoding work already done. Seen markers (and application flags) are
// cleared from every node reached during earlier traversal; the roots list
// is cleared as well, ready for fresh MarkStart calls.
func (w *Walker) Reset() {
	w.pending.clear()

	for _, c := range w.roots {
		if !c.has(flagSeen) {
			continue
		}
		c.flags &= flagParsed
		w.pending.add(c)
	}

	// unseen nodes were never visited, so expansion stops at them
	for {
		c := w.pending.pop()
		if c == nil {
			break
		}
		for _, p := range c.parents {
			if !p.has(flagSeen) {
				continue
			}
			p.flags &= flagParsed
			w.pending.add(p)
		}
	}

	w.roots = w.roots[:0]
	w.state = stateIdle
}

// LookupCommit locates a reference to a commit without loading it. The
// commit may or may not exist in the store; that is only discovered on
// parse. Never reads from the store.
func (w *Walker) LookupCommit(id ident.ID) *Commit {
	if o, ok := w.objects[id]; ok {
		// registering one identity under two variants is caller error
		return o.(*Commit)
	}
	c := newCommit(id)
	w.objects[id] = c
	return c
}

// LookupTree locates a reference to a tree without loading it.
func (w *Walker) LookupTree(id ident.ID) *Tree {
	if o, ok := w.objects[id]; ok {
		return o.(*Tree)
	}
	t := newTree(id)
	w.objects[id] = t
	return t
}

// LookupBlob locates a reference to a blob without loading it.
func (w *Walker) LookupBlob(id ident.ID) *Blob {
	if o, ok := w.objects[id]; ok {
		return o.(*Blob)
	}
	b := newBlob(id)
	w.objects[id] = b
	return b
}

// LookupTag locates a reference to an annotated tag without loading it.
func (w *Walker) LookupTag(id ident.ID) *Tag {
	if o, ok := w.objects[id]; ok {
		return o.(*Tag)
	}
	t := newTag(id)
	w.objects[id] = t
	return t
}

// LookupAny locates a reference to an object of a known type without
// loading it. An unknown type tag fails with ErrInvalidObjectType, since
// the pool only holds concretely-typed nodes.
func (w *Walker) LookupAny(id ident.ID, typ objstore.Type) (Object, error) {
	switch typ {
	case objstore.TypeCommit:
		return w.LookupCommit(id), nil
	case objstore.TypeTree:
		return w.LookupTree(id), nil
	case objstore.TypeBlob:
		return w.LookupBlob(id), nil
	case objstore.TypeTag:
		return w.LookupTag(id), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidObjectType, typ)
	}
}

// ParseAny locates any object and immediately parses its content, letting
// the store determine the type. An id already held in the pool keeps its
// node; the node is parsed in place rather than replaced.
func (w *Walker) ParseAny(id ident.ID) (Object, error) {
	if o, ok := w.objects[id]; ok {
		if err := w.parse(o); err != nil {
			return nil, err
		}
		return o, nil
	}
	ldr, err := w.open(id)
	if err != nil {
		return nil, err
	}
	var o Object
	switch ldr.Type {
	case objstore.TypeCommit:
		o = newCommit(id)
	case objstore.TypeTree:
		o = newTree(id)
	case objstore.TypeBlob:
		o = newBlob(id)
	case objstore.TypeTag:
		o = newTag(id)
	default:
		return nil, fmt.Errorf("%w: %s: store reported type tag %d", ErrInvalidObjectType, id, ldr.Type)
	}
	// pool before decoding: a tag target naming this same id must resolve
	// to this node, not a duplicate
	w.objects[id] = o
	if err := w.parseBody(o, ldr.Data); err != nil {
		return nil, err
	}
	o.base().flags |= flagParsed
	return o, nil
}

// ParseCommit locates an object and peels annotated tags until a non-tag
// object is reached, parsing everything on the way. The peeled object is
// returned as-is even when it is not a commit; callers expecting a commit
// must check the variant themselves.
func (w *Walker) ParseCommit(id ident.ID) (Object, error) {
	o, err := w.ParseAny(id)
	if err != nil {
		return nil, err
	}
	for {
		t, ok := o.(*Tag)
		if !ok {
			return o, nil
		}
		if err := w.parse(t); err != nil {
			return nil, err
		}
		o = t.target
		if err := w.parse(o); err != nil {
			return nil, err
		}
	}
}

// parse loads and decodes an object's body on first use. It is a no-op for
// nodes already parsed.
func (w *Walker) parse(o Object) error {
	b := o.base()
	if b.has(flagParsed) {
		return nil
	}
	ldr, err := w.open(b.id)
	if err != nil {
		return err
	}
	if ldr.Type != o.Type() {
		return fmt.Errorf("%w: %s: expected %s, found %s",
			ErrWrongObjectType, b.id, o.Type(), ldr.Type)
	}
	if err := w.parseBody(o, ldr.Data); err != nil {
		return err
	}
	b.flags |= flagParsed
	return nil
}

func (w *Walker) parseBody(o Object, data []byte) error {
	switch v := o.(type) {
	case *Commit:
		body, err := objstore.DecodeCommit(data)
		if err != nil {
			return fmt.Errorf("decode commit %s: %w", v.id, err)
		}
		v.parents = make([]*Commit, 0, len(body.Parents))
		for _, pid := range body.Parents {
			v.parents = append(v.parents, w.LookupCommit(pid))
		}
		v.commitTime = body.CommitTime
		v.committer = body.Committer
		v.message = body.Message
	case *Tag:
		body, err := objstore.DecodeTag(data)
		if err != nil {
			return fmt.Errorf("decode tag %s: %w", v.id, err)
		}
		target, err := w.LookupAny(body.Target, body.TargetType)
		if err != nil {
			return err
		}
		v.target = target
		v.name = body.Name
	default:
		// trees and blobs carry no structure the walker needs
	}
	return nil
}

// open reads one object from the store, translating storage conditions into
// the walker's error taxonomy.
func (w *Walker) open(id ident.ID) (*objstore.Loader, error) {
	ldr, err := w.store.Open(w.ctx, id)
	if err != nil {
		if errors.Is(err, objstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrObjectMissing, id)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreIO, id, err)
	}
	if w.log.IsTracing() {
		w.log.WithFields(logging.Fields{
			logging.ObjectIDFieldKey:   id.String(),
			logging.ObjectTypeFieldKey: ldr.Type.String(),
		}).Trace("loaded object")
	}
	return ldr, nil
}
