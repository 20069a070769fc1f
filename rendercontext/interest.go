package rendercontext

import "github.com/duskray/raycore/channel"

// InterestRatchet memoizes the last channel name looked up against a Set:
// a cursor into a channel set that accelerates repeated lookups from the
// same position. AOV handlers filling the same few channel names every
// pixel hit this cache on every call but the first.
type InterestRatchet struct {
	set       *channel.Set
	lastName  string
	lastIndex channel.Index
	primed    bool
}

// NewInterestRatchet returns a ratchet bound to set.
func NewInterestRatchet(set *channel.Set) *InterestRatchet {
	return &InterestRatchet{set: set}
}

// Lookup returns name's channel index, reusing the previous lookup's
// result when name matches it.
func (r *InterestRatchet) Lookup(name string) channel.Index {
	if r.primed && name == r.lastName {
		return r.lastIndex
	}
	idx := r.set.Lookup(name)
	r.lastName = name
	r.lastIndex = idx
	r.primed = true
	return idx
}
