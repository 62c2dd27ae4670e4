//go:build !tinygo

package mmio

import "sync/atomic"

// Reg32 is a 32-bit memory mapped hardware register. On host builds
// the cell is backed by sync/atomic so a simulated peripheral and the
// driver may touch it from different goroutines without data races.
//
// The API mirrors TinyGo's runtime/volatile.Register32 so driver code
// compiles unchanged on hardware and on the host.
type Reg32 struct {
	v    atomic.Uint32
	hook func(uint32)
}

// Observe installs a write hook invoked with every value stored into
// the register. Simulators use it to capture write-only registers.
// Install hooks before the register is shared between goroutines.
func (r *Reg32) Observe(fn func(uint32)) {
	r.hook = fn
}

func (r *Reg32) store(v uint32) {
	if r.hook != nil {
		r.hook(v)
	}
	r.v.Store(v)
}

// Get returns the register value.
func (r *Reg32) Get() uint32 {
	return r.v.Load()
}

// Set stores a value into the register.
func (r *Reg32) Set(v uint32) {
	r.store(v)
}

// SetBits sets the bits in mask.
func (r *Reg32) SetBits(mask uint32) {
	for {
		old := r.v.Load()
		if r.v.CompareAndSwap(old, old|mask) {
			if r.hook != nil {
				r.hook(old | mask)
			}
			return
		}
	}
}

// ClearBits clears the bits in mask.
func (r *Reg32) ClearBits(mask uint32) {
	for {
		old := r.v.Load()
		if r.v.CompareAndSwap(old, old&^mask) {
			if r.hook != nil {
				r.hook(old &^ mask)
			}
			return
		}
	}
}

// HasBits reports whether any bit in mask is set.
func (r *Reg32) HasBits(mask uint32) bool {
	return r.v.Load()&mask != 0
}

// ReplaceBits stores value into the field described by mask and pos.
func (r *Reg32) ReplaceBits(value, mask uint32, pos uint8) {
	for {
		old := r.v.Load()
		new := old&^(mask<<pos) | value<<pos
		if r.v.CompareAndSwap(old, new) {
			if r.hook != nil {
				r.hook(new)
			}
			return
		}
	}
}
