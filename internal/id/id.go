// Package id hands out monotonically increasing identities for creatures and
// items. A generator is advanced past the highest id seen on load so that
// restored worlds never reuse an identity.
package id

import "sync/atomic"

// ID is a unique 64-bit entity identity.
type ID uint64

// Generator produces strictly increasing IDs.
type Generator struct {
	next uint64
}

// NewGenerator returns a generator whose first Next() call yields 1.
func NewGenerator() *Generator {
	return &Generator{next: 1}
}

// Next returns the next unused ID.
func (g *Generator) Next() ID {
	return ID(atomic.AddUint64(&g.next, 1) - 1)
}

// AdvancePast ensures subsequent IDs are strictly greater than seen, used
// after loading a save file so newly created entities never collide with a
// restored one.
func (g *Generator) AdvancePast(seen ID) {
	for {
		cur := atomic.LoadUint64(&g.next)
		if cur > uint64(seen) {
			return
		}
		if atomic.CompareAndSwapUint64(&g.next, cur, uint64(seen)+1) {
			return
		}
	}
}
