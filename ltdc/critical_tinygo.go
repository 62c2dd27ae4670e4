//go:build tinygo

package ltdc

import "runtime/interrupt"

type sysLock struct{}

// CS witnesses a held driver critical section. On bare metal the
// section masks interrupts, so the LTDC service routines cannot run
// while register work is batched under it.
type CS struct {
	d  *Driver
	is interrupt.State
}

// Lock enters the driver critical section.
func (d *Driver) Lock() CS {
	return CS{d: d, is: interrupt.Disable()}
}

// Unlock leaves the driver critical section.
func (cs CS) Unlock() {
	interrupt.Restore(cs.is)
}
