//go:build !tinygo

package ltdc

import "sync"

type sysLock struct {
	mu sync.Mutex
}

// CS witnesses a held driver critical section. Methods on CS and on
// the layer views derived from it assume the section is held and
// perform no locking of their own; obtain one with Lock, batch the
// register work, then Unlock.
type CS struct {
	d *Driver
}

// Lock enters the driver critical section.
func (d *Driver) Lock() CS {
	d.mu.Lock()
	return CS{d: d}
}

// Unlock leaves the driver critical section.
func (cs CS) Unlock() {
	cs.d.mu.Unlock()
}
