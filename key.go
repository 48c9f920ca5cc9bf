package chip

// Key identifies one of the keys the widget reacts to.
// The collaborator reports key presses through Output.Pressed; everything
// else on the keyboard is the collaborator's own business (text entry,
// clipboard, selection) and never reaches this package.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDelete
	KeyBackspace
	keyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyDelete:
		return "Del"
	case KeyBackspace:
		return "Backspace"
	}
	return "--"
}

// KeySet is a bitmask of keys pressed during one frame.
type KeySet uint8

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts a key into the set.
func (s *KeySet) Add(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	*s |= 1 << uint(k)
}

// Has returns true if the key is in the set.
func (s KeySet) Has(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return s&(1<<uint(k)) != 0
}

// Union returns the combination of two sets.
func (s KeySet) Union(other KeySet) KeySet {
	return s | other
}
