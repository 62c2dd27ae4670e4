package ltdc

// forceReload requests an immediate shadow reload and spins until the
// hardware clears the request. Only used during Start, before the
// reload interrupt is unmasked.
func (cs CS) forceReload() {
	hw := cs.d.hw
	hw.SRCR.SetBits(srcrIMR)
	for hw.SRCR.HasBits(srcrIMR | srcrVBR) {
		gosched()
	}
}

// IsReloading reports whether a shadow reload is in flight.
func (cs CS) IsReloading() bool {
	return cs.d.hw.SRCR.HasBits(srcrIMR | srcrVBR)
}

// IsReloading reports whether a shadow reload is in flight.
func (d *Driver) IsReloading() bool {
	cs := d.Lock()
	on := cs.IsReloading()
	cs.Unlock()
	return on
}

// StartReload asks the hardware to commit all staged shadow registers,
// either immediately or at the next vertical blank, and moves the
// driver to the Active state. The reload interrupt service returns it
// to Ready once the commit lands.
func (cs CS) StartReload(immediate bool) {
	d := cs.d
	assert(d.state == StateReady, badState)
	d.state = StateActive
	if immediate {
		d.hw.SRCR.SetBits(srcrIMR)
	} else {
		d.hw.SRCR.SetBits(srcrVBR)
	}
}

// StartReload asks the hardware to commit all staged shadow registers
// without waiting for the commit to land.
func (d *Driver) StartReload(immediate bool) {
	cs := d.Lock()
	cs.StartReload(immediate)
	cs.Unlock()
}

// ReloadWait commits all staged shadow registers and blocks until the
// commit lands. An immediate reload is polled; a vertical blank reload
// parks the calling goroutine until the reload interrupt wakes it.
// Only one goroutine may wait at a time: the driver leaves the Ready
// state with the first request, so a second wait trips the state
// check in StartReload.
func (d *Driver) ReloadWait(immediate bool) {
	cs := d.Lock()
	cs.StartReload(immediate)
	if !immediate {
		d.waiting = true
		cs.Unlock()
		<-d.wake
		return
	}
	cs.Unlock()
	for d.hw.SRCR.HasBits(srcrIMR) {
		gosched()
	}
	cs = d.Lock()
	d.state = StateReady
	cs.Unlock()
}
