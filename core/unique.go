package core

// Ordinal hands out unique ordinals starting at zero. It is an explicit
// counter held and passed by its owner, not a hidden global; components
// that number their objects (command registries, object tables) embed one.
type Ordinal struct {
	next uint32
}

// Next returns the next unused ordinal
func (o *Ordinal) Next() uint32 {
	n := o.next
	o.next++
	return n
}

// Count returns how many ordinals have been handed out
func (o *Ordinal) Count() uint32 {
	return o.next
}
