package revwalk

import (
	"time"

	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore"
)

// Object is the in-memory representative of one stored object inside a
// walker's pool. There is at most one Object per identity per walker, so
// pointer equality within a walker implies identity equality. Objects from
// different walkers are never the same instance, even for the same identity.
type Object interface {
	ID() ident.ID
	Type() objstore.Type

	// Parsed reports whether the object's body has been loaded from the
	// store and decoded.
	Parsed() bool

	// Has reports whether an application flag is set on this node.
	Has(f Flag) bool
	// Add sets an application flag on this node.
	Add(f Flag)
	// Remove clears an application flag on this node.
	Remove(f Flag)

	base() *object
}

// object carries the state shared by all variants: the identity and the
// flag bits.
type object struct {
	id    ident.ID
	flags Flags
}

func (o *object) ID() ident.ID {
	return o.id
}

func (o *object) Parsed() bool {
	return o.flags&flagParsed != 0
}

func (o *object) Has(f Flag) bool {
	return o.flags&f.mask != 0
}

func (o *object) Add(f Flag) {
	o.flags |= f.mask
}

func (o *object) Remove(f Flag) {
	o.flags &^= f.mask
}

func (o *object) base() *object {
	return o
}

func (o *object) has(mask Flags) bool {
	return o.flags&mask != 0
}

// Commit is a graph node with parent links and a commit time, the unit of
// traversal. Parents and the commit time are populated by parsing; before
// that they are empty.
type Commit struct {
	object
	parents    []*Commit
	commitTime time.Time
	committer  string
	message    string
}

func newCommit(id ident.ID) *Commit {
	return &Commit{object: object{id: id}}
}

func (c *Commit) Type() objstore.Type {
	return objstore.TypeCommit
}

// Parents returns the commit's parents in declaration order. The slice is
// owned by the commit and must not be modified. Empty until parsed.
func (c *Commit) Parents() []*Commit {
	return c.parents
}

func (c *Commit) ParentCount() int {
	return len(c.parents)
}

func (c *Commit) CommitTime() time.Time {
	return c.commitTime
}

func (c *Commit) Committer() string {
	return c.committer
}

func (c *Commit) Message() string {
	return c.message
}

// Tree is a graph node naming a directory snapshot. The walker needs only
// its identity; its entries are never decoded here.
type Tree struct {
	object
}

func newTree(id ident.ID) *Tree {
	return &Tree{object: object{id: id}}
}

func (t *Tree) Type() objstore.Type {
	return objstore.TypeTree
}

// Blob is a graph node naming file content. Identity only.
type Blob struct {
	object
}

func newBlob(id ident.ID) *Blob {
	return &Blob{object: object{id: id}}
}

func (b *Blob) Type() objstore.Type {
	return objstore.TypeBlob
}

// Tag is an annotated tag node referencing another object, possibly another
// tag. Target and name are populated by parsing.
type Tag struct {
	object
	target Object
	name   string
}

func newTag(id ident.ID) *Tag {
	return &Tag{object: object{id: id}}
}

func (t *Tag) Type() objstore.Type {
	return objstore.TypeTag
}

// Target returns the tagged object. Nil until parsed.
func (t *Tag) Target() Object {
	return t.target
}

// Name returns the tag's name. Empty until parsed.
func (t *Tag) Name() string {
	return t.name
}
