//go:build !stm32f429

package ltdc

// Off target there is no peripheral to bring up. Bind the driver to a
// simulated register block instead (see the ltdcsim package).

func (d *Driver) platformInit() {}

func (d *Driver) platformEnableInterrupts() {}
