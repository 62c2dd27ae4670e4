// Package periphbus adapts periph.io bus handles to the pin and SPI
// shapes the display drivers consume, so the same panel code runs on
// a Linux host wired to real hardware.
package periphbus

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// SPI wraps a periph.io SPI connection.
type SPI struct {
	Conn spi.Conn
}

// Tx shifts w out and r in on the wire.
func (s SPI) Tx(w, r []byte) error {
	return s.Conn.Tx(w, r)
}

// Transfer shifts a single byte full duplex.
func (s SPI) Transfer(b byte) (byte, error) {
	var rx [1]byte
	if err := s.Conn.Tx([]byte{b}, rx[:]); err != nil {
		return 0, err
	}
	return rx[0], nil
}

// Pin wraps a periph.io output pin. Drive errors are dropped; control
// lines on memory mapped GPIO cannot fail mid-run.
type Pin struct {
	Out gpio.PinOut
}

// High drives the line high.
func (p Pin) High() {
	p.Out.Out(gpio.High)
}

// Low drives the line low.
func (p Pin) Low() {
	p.Out.Out(gpio.Low)
}
