//go:build tinygo

package mmio

import "runtime/volatile"

// Reg32 is a 32-bit memory mapped hardware register. On TinyGo targets
// all accesses go through runtime/volatile so the compiler cannot
// reorder or elide them.
type Reg32 struct {
	volatile.Register32
}
