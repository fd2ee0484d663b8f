package revwalk

import "fmt"

// Flags is the per-node bit set. The two low bits belong to the walker;
// everything above them is handed out to applications through NewFlag.
type Flags uint32

const (
	flagParsed Flags = 1 << 0
	flagSeen   Flags = 1 << 1

	reservedFlagBits = 2
	totalFlagBits    = 32
)

// Flag is a single application-owned marking bit, valid only on nodes of the
// walker that issued it. The zero Flag marks nothing.
type Flag struct {
	name string
	mask Flags
}

func (f Flag) String() string {
	return f.name
}

// NewFlag allocates a new marking bit for application use during walking.
// At least 24 distinct flags can be allocated on any walker; allocation
// fails with ErrFlagSpaceExhausted once the bit space is consumed. Flags are
// never reclaimed for the lifetime of the walker. The name is advisory and
// only used for diagnostics.
func (w *Walker) NewFlag(name string) (Flag, error) {
	if w.nextFlagBit == totalFlagBits {
		return Flag{}, fmt.Errorf("%w: %d flags already created",
			ErrFlagSpaceExhausted, totalFlagBits-reservedFlagBits)
	}
	f := Flag{name: name, mask: 1 << w.nextFlagBit}
	w.nextFlagBit++
	return f, nil
}
