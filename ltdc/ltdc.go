// Package ltdc drives an LCD-TFT display controller: a raster engine
// that fetches pixel data from two memory framebuffers, composes the
// layers and streams the result to a parallel RGB panel interface.
//
// All configuration registers are shadowed by the hardware. Setters
// only stage new values; nothing becomes visible until a reload is
// requested with StartReload or ReloadWait, either immediately or
// synchronized to the next vertical blank.
package ltdc

import (
	"runtime"
	"sync"
)

// State is the driver lifecycle state.
type State uint8

const (
	// StateUninit is the pre-init state of a fresh driver object.
	StateUninit State = iota
	// StateStop means the peripheral is powered but not configured.
	StateStop
	// StateReady means configured and idle.
	StateReady
	// StateActive means a shadow reload has been requested and is in
	// flight.
	StateActive
)

// Programming errors detected by the precondition checks.
const (
	badState       = "ltdc: invalid driver state"
	badConfig      = "ltdc: nil config"
	badRegs        = "ltdc: nil register block"
	outsideRange   = "ltdc: timing value outside hardware bounds"
	badWindow      = "ltdc: window outside active area"
	badFrame       = "ltdc: frame geometry outside hardware bounds"
	badPixelFormat = "ltdc: invalid pixel format"
	badPalette     = "ltdc: invalid palette"
	badLayerState  = "ltdc: palette write requires disabled layer"
	badCallback    = "ltdc: interrupt enabled without callback"
)

func assert(cond bool, msg string) {
	if runtimeChecks && !cond {
		panic(msg)
	}
}

func gosched() {
	runtime.Gosched()
}

// Driver owns the LTDC peripheral state: the register block, the
// cached active window, the reload wait slot and the bus lock. The
// hardware is one of a kind; treat the driver as a singleton.
//
// The driver does not serialize concurrent clients. Use AcquireBus
// and ReleaseBus when more than one task owns the display.
type Driver struct {
	hw      *Regs
	config  *Config
	state   State
	active  Window // active window cache, absolute raster coordinates
	waiting bool
	wake    chan struct{}
	bus     sync.Mutex
	sysLock
}

// NewDriver binds a driver object to a register block and leaves it
// in the Uninit state. On hardware use the LTDC1 singleton instead;
// NewDriver exists so simulators and tests can supply their own
// register block.
func NewDriver(hw *Regs) *Driver {
	if hw == nil {
		panic(badRegs)
	}
	return &Driver{
		hw:     hw,
		state:  StateUninit,
		active: InvalidWindow,
		wake:   make(chan struct{}, 1),
	}
}

// Init performs the one-time peripheral bring-up (reset, pixel clock
// divider, bus clock on hardware targets) and moves the driver to the
// Stop state. Calling Init twice is a programming error.
func (d *Driver) Init() {
	assert(d.state == StateUninit, badState)
	d.platformInit()
	d.state = StateStop
}

// State returns the driver lifecycle state.
func (d *Driver) State() State {
	cs := d.Lock()
	s := cs.State()
	cs.Unlock()
	return s
}

// State returns the driver lifecycle state.
func (cs CS) State() State {
	return cs.d.state
}

// Start configures and activates the controller. The configuration is
// borrowed for the whole running period, including the interrupt
// callbacks it carries. The driver must be in the Stop state.
func (d *Driver) Start(cfg *Config) {
	cs := d.Lock()
	assert(cfg != nil, badConfig)
	assert(d.state == StateStop, badState)
	d.config = cfg
	hw := d.hw

	// Turn the controller and its interrupts off, then flush any
	// shadow writes left over from a previous run.
	hw.GCR.Set(0)
	hw.IER.Set(0)
	cs.forceReload()

	// Synchronization size. The accumulators below carry the running
	// N-1 totals the timing registers expect.
	assert(cfg.HSyncWidth >= MinHSyncWidth && cfg.HSyncWidth <= MaxHSyncWidth, outsideRange)
	assert(cfg.VSyncHeight >= MinVSyncHeight && cfg.VSyncHeight <= MaxVSyncHeight, outsideRange)
	hacc := uint32(cfg.HSyncWidth) - 1
	vacc := uint32(cfg.VSyncHeight) - 1
	hw.SSCR.Set(hacc<<16&sscrHSW | vacc&sscrVSH)

	// Accumulated back porch; its end is the active window origin.
	assert(cfg.HBPWidth <= MaxHBPWidth, outsideRange)
	assert(cfg.VBPHeight <= MaxVBPHeight, outsideRange)
	hacc += uint32(cfg.HBPWidth)
	vacc += uint32(cfg.VBPHeight)
	assert(hacc+1 >= MinAccHBPWidth && hacc+1 <= MaxAccHBPWidth, outsideRange)
	assert(vacc+1 >= MinAccVBPHeight && vacc+1 <= MaxAccVBPHeight, outsideRange)
	hw.BPCR.Set(hacc<<16&bpcrAHBP | vacc&bpcrAVBP)
	d.active.HStart = uint16(hacc + 1)
	d.active.VStart = uint16(vacc + 1)

	// Accumulated active area.
	assert(cfg.ScreenWidth >= MinScreenWidth && cfg.ScreenWidth <= MaxScreenWidth, outsideRange)
	assert(cfg.ScreenHeight >= MinScreenHeight && cfg.ScreenHeight <= MaxScreenHeight, outsideRange)
	hacc += uint32(cfg.ScreenWidth)
	vacc += uint32(cfg.ScreenHeight)
	assert(hacc+1 >= MinAccActiveWidth && hacc+1 <= MaxAccActiveWidth, outsideRange)
	assert(vacc+1 >= MinAccActiveHeight && vacc+1 <= MaxAccActiveHeight, outsideRange)
	hw.AWCR.Set(hacc<<16&awcrAAW | vacc&awcrAAH)
	d.active.HStop = uint16(hacc)
	d.active.VStop = uint16(vacc)

	// Accumulated total frame.
	assert(cfg.HFPWidth <= MaxHFPWidth, outsideRange)
	assert(cfg.VFPHeight <= MaxVFPHeight, outsideRange)
	hacc += uint32(cfg.HFPWidth)
	vacc += uint32(cfg.VFPHeight)
	assert(hacc+1 >= MinAccTotalWidth && hacc+1 <= MaxAccTotalWidth, outsideRange)
	assert(vacc+1 >= MinAccTotalHeight && vacc+1 <= MaxAccTotalHeight, outsideRange)
	hw.TWCR.Set(hacc<<16&twcrTOTALW | vacc&twcrTOTALH)

	// Polarities and dithering. The controller enable bit is applied
	// last, after the layers are programmed.
	cs.SetEnableFlags(cfg.Flags &^ FlagEnable)
	cs.SetClearColor(cfg.ClearColor)

	cs.Bg().SetConfig(cfg.Background)
	cs.Fg().SetConfig(cfg.Foreground)

	d.platformEnableInterrupts()

	// Reload-done is always serviced; the other sources are masked
	// unless the caller supplied a handler.
	ier := uint32(intRRIF)
	if cfg.OnLine != nil {
		ier |= intLIF
	}
	if cfg.OnFIFOUnderrun != nil {
		ier |= intFUIF
	}
	if cfg.OnTransferError != nil {
		ier |= intTERRIF
	}
	hw.IER.Set(ier)

	cs.forceReload()
	hw.GCR.SetBits(gcrLTDCEN)
	cs.forceReload()

	d.state = StateReady
	cs.Unlock()
}

// Stop deactivates the controller. The driver must be in the Ready
// state; it returns to Stop.
func (d *Driver) Stop() {
	cs := d.Lock()
	assert(d.state == StateReady, badState)

	d.hw.GCR.ClearBits(gcrLTDCEN)
	d.hw.IER.Set(0)
	cs.StartReload(true)
	for d.hw.SRCR.HasBits(srcrIMR) {
		gosched()
	}

	d.state = StateStop
	cs.Unlock()
}

// AcquireBus gains exclusive access to the display for the calling
// task, queueing behind other owners.
func (d *Driver) AcquireBus() {
	d.bus.Lock()
}

// ReleaseBus releases exclusive access to the display.
func (d *Driver) ReleaseBus() {
	d.bus.Unlock()
}

// EnableFlags returns the global enable and polarity flags.
func (cs CS) EnableFlags() Flags {
	return Flags(cs.d.hw.GCR.Get()) & flagsMask
}

// EnableFlags returns the global enable and polarity flags.
func (d *Driver) EnableFlags() Flags {
	cs := d.Lock()
	f := cs.EnableFlags()
	cs.Unlock()
	return f
}

// SetEnableFlags sets the global enable and polarity flags at once.
func (cs CS) SetEnableFlags(f Flags) {
	cs.d.hw.GCR.Set(uint32(f & flagsMask))
}

// SetEnableFlags sets the global enable and polarity flags at once.
func (d *Driver) SetEnableFlags(f Flags) {
	cs := d.Lock()
	cs.SetEnableFlags(f)
	cs.Unlock()
}

// IsDitheringEnabled reports whether dithering is enabled.
func (cs CS) IsDitheringEnabled() bool {
	return cs.d.hw.GCR.HasBits(gcrDEN)
}

// IsDitheringEnabled reports whether dithering is enabled.
func (d *Driver) IsDitheringEnabled() bool {
	cs := d.Lock()
	on := cs.IsDitheringEnabled()
	cs.Unlock()
	return on
}

// EnableDithering enables dithering for pixel formats with fewer than
// eight bits per channel.
func (cs CS) EnableDithering() {
	cs.d.hw.GCR.SetBits(gcrDEN)
}

// EnableDithering enables dithering for pixel formats with fewer than
// eight bits per channel.
func (d *Driver) EnableDithering() {
	cs := d.Lock()
	cs.EnableDithering()
	cs.Unlock()
}

// DisableDithering disables dithering.
func (cs CS) DisableDithering() {
	cs.d.hw.GCR.ClearBits(gcrDEN)
}

// DisableDithering disables dithering.
func (d *Driver) DisableDithering() {
	cs := d.Lock()
	cs.DisableDithering()
	cs.Unlock()
}

// ClearColor returns the clear screen color, RGB-888. It is emitted
// wherever no layer contributes a pixel.
func (cs CS) ClearColor() Color {
	return Color(cs.d.hw.BCCR.Get()) & rgbMask
}

// ClearColor returns the clear screen color, RGB-888.
func (d *Driver) ClearColor() Color {
	cs := d.Lock()
	c := cs.ClearColor()
	cs.Unlock()
	return c
}

// SetClearColor sets the clear screen color, RGB-888.
func (cs CS) SetClearColor(c Color) {
	hw := cs.d.hw
	hw.BCCR.Set(hw.BCCR.Get()&^uint32(rgbMask) | uint32(c&rgbMask))
}

// SetClearColor sets the clear screen color, RGB-888.
func (d *Driver) SetClearColor(c Color) {
	cs := d.Lock()
	cs.SetClearColor(c)
	cs.Unlock()
}

// LineInterruptPos returns the scanline at which the line interrupt
// fires.
func (cs CS) LineInterruptPos() uint16 {
	return uint16(cs.d.hw.LIPCR.Get() & lipcrLIPOS)
}

// LineInterruptPos returns the scanline at which the line interrupt
// fires.
func (d *Driver) LineInterruptPos() uint16 {
	cs := d.Lock()
	line := cs.LineInterruptPos()
	cs.Unlock()
	return line
}

// SetLineInterruptPos sets the scanline at which the line interrupt
// fires.
func (cs CS) SetLineInterruptPos(line uint16) {
	hw := cs.d.hw
	hw.LIPCR.Set(hw.LIPCR.Get()&^uint32(lipcrLIPOS) | uint32(line)&lipcrLIPOS)
}

// SetLineInterruptPos sets the scanline at which the line interrupt
// fires.
func (d *Driver) SetLineInterruptPos(line uint16) {
	cs := d.Lock()
	cs.SetLineInterruptPos(line)
	cs.Unlock()
}

// IsLineInterruptEnabled reports whether the line interrupt source is
// unmasked.
func (cs CS) IsLineInterruptEnabled() bool {
	return cs.d.hw.IER.HasBits(intLIF)
}

// IsLineInterruptEnabled reports whether the line interrupt source is
// unmasked.
func (d *Driver) IsLineInterruptEnabled() bool {
	cs := d.Lock()
	on := cs.IsLineInterruptEnabled()
	cs.Unlock()
	return on
}

// EnableLineInterrupt unmasks the line interrupt. The line callback
// must be set in the running configuration.
func (cs CS) EnableLineInterrupt() {
	cs.d.hw.IER.SetBits(intLIF)
}

// EnableLineInterrupt unmasks the line interrupt.
func (d *Driver) EnableLineInterrupt() {
	cs := d.Lock()
	cs.EnableLineInterrupt()
	cs.Unlock()
}

// DisableLineInterrupt masks the line interrupt.
func (cs CS) DisableLineInterrupt() {
	cs.d.hw.IER.ClearBits(intLIF)
}

// DisableLineInterrupt masks the line interrupt.
func (d *Driver) DisableLineInterrupt() {
	cs := d.Lock()
	cs.DisableLineInterrupt()
	cs.Unlock()
}

// CurrentPos returns the raster position currently being scanned out.
func (cs CS) CurrentPos() (x, y uint16) {
	r := cs.d.hw.CPSR.Get()
	return uint16(r >> 16), uint16(r & cpsrCYPOS)
}

// CurrentPos returns the raster position currently being scanned out.
func (d *Driver) CurrentPos() (x, y uint16) {
	cs := d.Lock()
	x, y = cs.CurrentPos()
	cs.Unlock()
	return x, y
}

// ActiveWindow returns the active window cached at Start, in absolute
// raster coordinates. Layer windows are programmed relative to its
// origin.
func (cs CS) ActiveWindow() Window {
	return cs.d.active
}

// ActiveWindow returns the active window cached at Start.
func (d *Driver) ActiveWindow() Window {
	cs := d.Lock()
	w := cs.ActiveWindow()
	cs.Unlock()
	return w
}
