package ltdc

// ServiceEventInterrupt handles the line and register-reload event
// sources. On hardware it is invoked by the LTDC event vector; a
// simulator standing in for the hardware calls it directly after
// raising the matching status bits.
func (d *Driver) ServiceEventInterrupt() {
	hw := d.hw
	pending := hw.ISR.Get() & hw.IER.Get()

	if pending&intLIF != 0 {
		assert(d.config.OnLine != nil, badCallback)
		d.config.OnLine(d)
		hw.ICR.SetBits(intLIF)
	}

	if pending&intRRIF != 0 {
		if d.config.OnReload != nil {
			d.config.OnReload(d)
		}
		cs := d.Lock()
		assert(d.state == StateActive, badState)
		if d.waiting {
			d.waiting = false
			select {
			case d.wake <- struct{}{}:
			default:
			}
		}
		d.state = StateReady
		cs.Unlock()
		hw.ICR.SetBits(intRRIF)
	}
}

// ServiceErrorInterrupt handles the FIFO underrun and transfer error
// sources. On hardware it is invoked by the LTDC error vector.
func (d *Driver) ServiceErrorInterrupt() {
	hw := d.hw
	pending := hw.ISR.Get() & hw.IER.Get()

	if pending&intFUIF != 0 {
		assert(d.config.OnFIFOUnderrun != nil, badCallback)
		d.config.OnFIFOUnderrun(d)
		hw.ICR.SetBits(intFUIF)
	}

	if pending&intTERRIF != 0 {
		assert(d.config.OnTransferError != nil, badCallback)
		d.config.OnTransferError(d)
		hw.ICR.SetBits(intTERRIF)
	}
}
