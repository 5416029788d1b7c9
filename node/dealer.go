package node

import (
	"maps"
	"slices"
)

// Dealer hands out capture positions in output order and settles
// backreferences that were emitted before the group they point at.
// Ordinals are capture numbers of the source pattern; positions are 1..K.
type Dealer struct {
	positions map[int]int
	needs     map[int][]*Node
	last      int
}

// Next allocates a position that belongs to no source ordinal.
func (d *Dealer) Next() int {
	d.last++
	return d.last
}

// Done allocates the next position for ordinal and settles every backreference waiting on it.
// An ordinal that already has a position keeps it.
func (d *Dealer) Done(ordinal int) int {
	if pos, ok := d.positions[ordinal]; ok {
		return pos
	}

	if d.positions == nil {
		d.positions = make(map[int]int)
	}

	pos := d.Next()
	d.positions[ordinal] = pos

	for _, n := range d.needs[ordinal] {
		n.Settle(pos)
	}

	delete(d.needs, ordinal)

	return pos
}

// Position returns the position allocated for ordinal, if any.
func (d *Dealer) Position(ordinal int) (int, bool) {
	pos, ok := d.positions[ordinal]
	return pos, ok
}

// Needs returns a backreference node for ordinal. It is settled immediately
// when the ordinal already has a position, otherwise on the matching Done.
func (d *Dealer) Needs(ordinal int) *Node {
	if pos, ok := d.positions[ordinal]; ok {
		return Backref(pos)
	}

	if d.needs == nil {
		d.needs = make(map[int][]*Node)
	}

	n := Backref(0)
	d.needs[ordinal] = append(d.needs[ordinal], n)

	return n
}

// Unsettled returns the ordinals that still have waiting backreferences.
func (d *Dealer) Unsettled() []int {
	return slices.Sorted(maps.Keys(d.needs))
}

// Fail turns every waiting backreference into an assertion that never
// matches and returns their ordinals. A reference to a group that did not
// participate fails in the source dialect, while the target would match empty.
func (d *Dealer) Fail() []int {
	ordinals := d.Unsettled()

	for _, ordinal := range ordinals {
		for _, n := range d.needs[ordinal] {
			n.Value = Never
		}
	}

	d.needs = nil

	return ordinals
}

// Count is the number of positions handed out.
func (d *Dealer) Count() int {
	return d.last
}
