// Package input captures the keyboard state once per tick.
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
)

// Snapshot is the set of keys held at the start of a tick. It is rebuilt by
// Poll and must not be mutated while systems read it.
type Snapshot struct {
	held *intmap.Set[ebiten.Key]
	keys []ebiten.Key
}

// NewSnapshot returns a snapshot with exactly the given keys held.
func NewSnapshot(keys ...ebiten.Key) *Snapshot {
	s := &Snapshot{held: intmap.NewSet[ebiten.Key](8)}
	s.Press(keys...)
	return s
}

// Press marks keys as held.
func (s *Snapshot) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		s.add(k)
	}
}

func (s *Snapshot) add(k ebiten.Key) {
	if s.held.Has(k) {
		return
	}
	s.held.Add(k)
	s.keys = append(s.keys, k)
}

// Pressed reports whether key is held.
func (s *Snapshot) Pressed(key ebiten.Key) bool {
	return s.held.Has(key)
}

// Len returns the number of held keys.
func (s *Snapshot) Len() int {
	return s.held.Len()
}

// Keys returns the held keys in ascending order.
func (s *Snapshot) Keys() []ebiten.Key {
	out := slices.Clone(s.keys)
	slices.Sort(out)
	return out
}

// Reset releases every key.
func (s *Snapshot) Reset() {
	s.held.Clear()
	s.keys = s.keys[:0]
}

// Poll rebuilds dst from the keys ebiten reports as held and returns it. A
// nil dst allocates a new snapshot.
func Poll(dst *Snapshot) *Snapshot {
	if dst == nil {
		dst = NewSnapshot()
	}
	dst.Reset()

	var buf [16]ebiten.Key
	for _, k := range inpututil.AppendPressedKeys(buf[:0]) {
		dst.add(k)
	}
	return dst
}
