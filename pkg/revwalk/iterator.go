package revwalk

// CommitIterator is a lazy, forward-only view over a walk, wrapping repeated
// Next calls. It terminates at end-of-walk; a failure from the underlying
// walk is reported once through Err, after which the iterator yields nothing.
//
// Use either the iterator or the Walker's Next method for a given walk,
// never both: each consumes from the same pending queue.
type CommitIterator struct {
	walker *Walker
	value  *Commit
	err    error
	done   bool
}

// Iterator returns an iterator over this walker's commits. It is only
// useful for one walk; after a Reset a new iterator must be obtained.
func (w *Walker) Iterator() *CommitIterator {
	return &CommitIterator{walker: w}
}

func (it *CommitIterator) Next() bool {
	if it.err != nil || it.done {
		it.value = nil
		return false
	}
	c, err := it.walker.Next()
	if err != nil {
		it.err = err
		it.value = nil
		return false
	}
	if c == nil {
		it.done = true
		it.value = nil
		return false
	}
	it.value = c
	return true
}

func (it *CommitIterator) Value() *Commit {
	if it.err != nil {
		return nil
	}
	return it.value
}

func (it *CommitIterator) Err() error {
	return it.err
}
