// Package ili9341 drives the command and data transport of an
// ILI9341 TFT panel controller over 4-wire SPI: a serial bus plus a
// data/command select line that is held low while a command opcode is
// shifted out and high for parameter and pixel data.
//
// The driver deals with framing and bus ownership only. Panel
// initialization sequences and drawing are built on top of it from
// the command constants in this package.
package ili9341

import (
	"sync"

	"tinygo.org/x/drivers"
)

// State is the driver lifecycle state.
type State uint8

const (
	// StateStop means the transport is not configured.
	StateStop State = iota
	// StateReady means configured, chip not selected.
	StateReady
	// StateActive means the chip is selected and transactional
	// commands may be issued.
	StateActive
)

// Programming errors detected by the precondition checks.
const (
	badState  = "ili9341: invalid driver state"
	badConfig = "ili9341: nil config"
	badBus    = "ili9341: nil SPI bus"
	badPin    = "ili9341: nil control pin"
)

func assert(cond bool, msg string) {
	if runtimeChecks && !cond {
		panic(msg)
	}
}

// Pin is a push-pull output line.
type Pin interface {
	High()
	Low()
}

// Config binds the driver to its bus and control lines. It is
// borrowed for the whole running period.
type Config struct {
	// Bus is the SPI bus the panel is wired to. The driver never
	// reconfigures it; set mode 0 and the clock rate before Start.
	Bus drivers.SPI
	// DCX is the data/command select line.
	DCX Pin
	// CS is the active-low chip select line.
	CS Pin
}

// Driver owns one panel transport: the configuration, the lifecycle
// state and the bus ownership lock.
type Driver struct {
	cfg     *Config
	state   State
	bus     sync.Mutex
	scratch [1]byte
}

// NewDriver returns a driver in the Stop state.
func NewDriver() *Driver {
	return &Driver{state: StateStop}
}

// State returns the driver lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Start configures the transport and parks both control lines at
// their idle levels. The driver must be in the Stop or Ready state.
func (d *Driver) Start(cfg *Config) {
	assert(cfg != nil, badConfig)
	assert(cfg.Bus != nil, badBus)
	assert(cfg.DCX != nil && cfg.CS != nil, badPin)
	assert(d.state == StateStop || d.state == StateReady, badState)
	d.cfg = cfg
	cfg.CS.High()
	cfg.DCX.High()
	d.state = StateReady
}

// Stop deactivates the transport. The driver must be in the Ready
// state.
func (d *Driver) Stop() {
	assert(d.state == StateReady, badState)
	d.cfg.CS.High()
	d.state = StateStop
}

// AcquireBus gains exclusive access to the transport for the calling
// task, queueing behind other owners.
func (d *Driver) AcquireBus() {
	d.bus.Lock()
}

// ReleaseBus releases exclusive access to the transport.
func (d *Driver) ReleaseBus() {
	d.bus.Unlock()
}

// Select asserts the chip select line and opens a transaction.
func (d *Driver) Select() {
	assert(d.state == StateReady, badState)
	d.state = StateActive
	d.cfg.CS.Low()
}

// Unselect releases the chip select line and closes the transaction.
func (d *Driver) Unselect() {
	assert(d.state == StateActive, badState)
	d.cfg.CS.High()
	d.state = StateReady
}

// WriteCommand shifts out a command opcode with the data/command line
// low. The chip must be selected.
func (d *Driver) WriteCommand(cmd uint8) error {
	assert(d.state == StateActive, badState)
	d.cfg.DCX.Low()
	d.scratch[0] = cmd
	return d.cfg.Bus.Tx(d.scratch[:], nil)
}

// WriteByte shifts out one data byte with the data/command line high.
// The chip must be selected.
func (d *Driver) WriteByte(b byte) error {
	assert(d.state == StateActive, badState)
	d.cfg.DCX.High()
	d.scratch[0] = b
	return d.cfg.Bus.Tx(d.scratch[:], nil)
}

// ReadByte shifts in one data byte. Most panels need a slower clock
// for reads than the write path tolerates; prefer ReadChunk after a
// dummy byte where timing matters.
func (d *Driver) ReadByte() (byte, error) {
	assert(d.state == StateActive, badState)
	d.cfg.DCX.High()
	err := d.cfg.Bus.Tx(nil, d.scratch[:])
	return d.scratch[0], err
}

// WriteChunk shifts out a data run with the data/command line high.
// A zero-length chunk is a no-op.
func (d *Driver) WriteChunk(chunk []byte) error {
	assert(d.state == StateActive, badState)
	if len(chunk) == 0 {
		return nil
	}
	d.cfg.DCX.High()
	return d.cfg.Bus.Tx(chunk, nil)
}

// ReadChunk shifts in a data run. A zero-length chunk is a no-op.
func (d *Driver) ReadChunk(chunk []byte) error {
	assert(d.state == StateActive, badState)
	if len(chunk) == 0 {
		return nil
	}
	d.cfg.DCX.High()
	return d.cfg.Bus.Tx(nil, chunk)
}

// Cmd shifts out a command opcode followed by its parameter bytes.
// The chip must be selected.
func (d *Driver) Cmd(cmd uint8, args ...uint8) error {
	if err := d.WriteCommand(cmd); err != nil {
		return err
	}
	return d.WriteChunk(args)
}

// Rotation selects one of the four panel orientations.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

var rotationMADCTL = [4]uint8{
	MADCTLColumnOrder | MADCTLBGR,
	MADCTLRowColSwap | MADCTLBGR,
	MADCTLRowOrder | MADCTLBGR,
	MADCTLRowOrder | MADCTLColumnOrder | MADCTLRowColSwap | MADCTLBGR,
}

// SetRotation programs the memory access order for the given
// orientation. The chip must be selected.
func (d *Driver) SetRotation(r Rotation) error {
	return d.Cmd(CmdMemAccessCtl, rotationMADCTL[r&3])
}
