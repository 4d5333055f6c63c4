package ecs

// Signature is a fixed-width bitset over component IDs, one bit per
// registered component type up to MaxComponents. It fits in a single
// machine word since MaxComponents == 64, which is why no ecosystem
// bitset package is wired in here (see DESIGN.md).
type Signature uint64

// Set returns a copy of s with bit id set or cleared according to on.
func (s Signature) Set(id ComponentID, on bool) Signature {
	if on {
		return s | (1 << uint(id))
	}
	return s &^ (1 << uint(id))
}

// Test reports whether bit id is set.
func (s Signature) Test(id ComponentID) bool {
	return s&(1<<uint(id)) != 0
}

// Contains reports whether other is a subset of s, i.e. every bit set in
// other is also set in s.
func (s Signature) Contains(other Signature) bool {
	return s&other == other
}

// And returns the bitwise intersection of s and other.
func (s Signature) And(other Signature) Signature {
	return s & other
}

// Empty reports whether no bits are set.
func (s Signature) Empty() bool {
	return s == 0
}
