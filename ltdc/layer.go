package ltdc

// Layer is a handle on one of the two hardware layers. The background
// layer is composed first, the foreground layer is blended on top of
// it. Handles are plain values; copy them freely.
type Layer struct {
	d   *Driver
	idx uint8
}

// Bg returns a handle on the background layer.
func (d *Driver) Bg() Layer {
	return Layer{d: d, idx: 0}
}

// Fg returns a handle on the foreground layer.
func (d *Driver) Fg() Layer {
	return Layer{d: d, idx: 1}
}

// Lock enters the driver critical section and returns the locked view
// of the layer.
func (l Layer) Lock() LayerCS {
	return LayerCS{cs: l.d.Lock(), idx: l.idx}
}

// LayerCS is the locked view of a layer, valid while the critical
// section obtained from Layer.Lock or CS.Bg/CS.Fg is held.
type LayerCS struct {
	cs  CS
	idx uint8
}

// Bg returns the locked view of the background layer.
func (cs CS) Bg() LayerCS {
	return LayerCS{cs: cs, idx: 0}
}

// Fg returns the locked view of the foreground layer.
func (cs CS) Fg() LayerCS {
	return LayerCS{cs: cs, idx: 1}
}

// Unlock leaves the driver critical section.
func (l LayerCS) Unlock() {
	l.cs.Unlock()
}

func (l LayerCS) regs() *LayerRegs {
	return &l.cs.d.hw.Layer[l.idx]
}

// EnableFlags returns the layer enable bits (layer, keying, palette).
func (l LayerCS) EnableFlags() LayerFlags {
	return LayerFlags(l.regs().CR.Get()) & layerFlagsMask
}

// EnableFlags returns the layer enable bits (layer, keying, palette).
func (l Layer) EnableFlags() LayerFlags {
	lc := l.Lock()
	f := lc.EnableFlags()
	lc.Unlock()
	return f
}

// SetEnableFlags sets all layer enable bits at once.
func (l LayerCS) SetEnableFlags(f LayerFlags) {
	r := l.regs()
	r.CR.Set(r.CR.Get()&^uint32(layerFlagsMask) | uint32(f&layerFlagsMask))
}

// SetEnableFlags sets all layer enable bits at once.
func (l Layer) SetEnableFlags(f LayerFlags) {
	lc := l.Lock()
	lc.SetEnableFlags(f)
	lc.Unlock()
}

// IsEnabled reports whether the layer is enabled.
func (l LayerCS) IsEnabled() bool {
	return l.regs().CR.HasBits(lcrLEN)
}

// IsEnabled reports whether the layer is enabled.
func (l Layer) IsEnabled() bool {
	lc := l.Lock()
	on := lc.IsEnabled()
	lc.Unlock()
	return on
}

// Enable enables the layer.
func (l LayerCS) Enable() {
	l.regs().CR.SetBits(lcrLEN)
}

// Enable enables the layer.
func (l Layer) Enable() {
	lc := l.Lock()
	lc.Enable()
	lc.Unlock()
}

// Disable disables the layer.
func (l LayerCS) Disable() {
	l.regs().CR.ClearBits(lcrLEN)
}

// Disable disables the layer.
func (l Layer) Disable() {
	lc := l.Lock()
	lc.Disable()
	lc.Unlock()
}

// IsKeyingEnabled reports whether color keying is enabled.
func (l LayerCS) IsKeyingEnabled() bool {
	return l.regs().CR.HasBits(lcrCOLKEN)
}

// IsKeyingEnabled reports whether color keying is enabled.
func (l Layer) IsKeyingEnabled() bool {
	lc := l.Lock()
	on := lc.IsKeyingEnabled()
	lc.Unlock()
	return on
}

// EnableKeying enables color keying: pixels matching the key color are
// dropped from the blend.
func (l LayerCS) EnableKeying() {
	l.regs().CR.SetBits(lcrCOLKEN)
}

// EnableKeying enables color keying.
func (l Layer) EnableKeying() {
	lc := l.Lock()
	lc.EnableKeying()
	lc.Unlock()
}

// DisableKeying disables color keying.
func (l LayerCS) DisableKeying() {
	l.regs().CR.ClearBits(lcrCOLKEN)
}

// DisableKeying disables color keying.
func (l Layer) DisableKeying() {
	lc := l.Lock()
	lc.DisableKeying()
	lc.Unlock()
}

// IsPaletteEnabled reports whether palette (CLUT) lookup is enabled.
func (l LayerCS) IsPaletteEnabled() bool {
	return l.regs().CR.HasBits(lcrCLUTEN)
}

// IsPaletteEnabled reports whether palette (CLUT) lookup is enabled.
func (l Layer) IsPaletteEnabled() bool {
	lc := l.Lock()
	on := lc.IsPaletteEnabled()
	lc.Unlock()
	return on
}

// EnablePalette enables palette lookup for the L-8, AL-44 and AL-88
// pixel formats.
func (l LayerCS) EnablePalette() {
	l.regs().CR.SetBits(lcrCLUTEN)
}

// EnablePalette enables palette lookup.
func (l Layer) EnablePalette() {
	lc := l.Lock()
	lc.EnablePalette()
	lc.Unlock()
}

// DisablePalette disables palette lookup.
func (l LayerCS) DisablePalette() {
	l.regs().CR.ClearBits(lcrCLUTEN)
}

// DisablePalette disables palette lookup.
func (l Layer) DisablePalette() {
	lc := l.Lock()
	lc.DisablePalette()
	lc.Unlock()
}

// SetPaletteColor writes one palette slot, RGB-888. The palette is
// write only and the layer must be disabled while it is loaded.
func (l LayerCS) SetPaletteColor(slot uint8, c Color) {
	assert(!l.IsEnabled(), badLayerState)
	l.regs().CLUTWR.Set(uint32(slot)<<24 | uint32(c&rgbMask))
}

// SetPaletteColor writes one palette slot, RGB-888.
func (l Layer) SetPaletteColor(slot uint8, c Color) {
	lc := l.Lock()
	lc.SetPaletteColor(slot, c)
	lc.Unlock()
}

// SetPalette loads palette slots 0..len(p)-1, RGB-888. The layer must
// be disabled while the palette is loaded.
func (l LayerCS) SetPalette(p []Color) {
	assert(len(p) <= MaxPaletteLength, badPalette)
	assert(!l.IsEnabled(), badLayerState)
	r := l.regs()
	for i, c := range p {
		r.CLUTWR.Set(uint32(i)<<24 | uint32(c&rgbMask))
	}
}

// SetPalette loads palette slots 0..len(p)-1, RGB-888.
func (l Layer) SetPalette(p []Color) {
	lc := l.Lock()
	lc.SetPalette(p)
	lc.Unlock()
}

// PixelFormat returns the framebuffer pixel format of the layer.
func (l LayerCS) PixelFormat() PixelFormat {
	return PixelFormat(l.regs().PFCR.Get() & pfcrPF)
}

// PixelFormat returns the framebuffer pixel format of the layer.
func (l Layer) PixelFormat() PixelFormat {
	lc := l.Lock()
	f := lc.PixelFormat()
	lc.Unlock()
	return f
}

// SetPixelFormat sets the framebuffer pixel format of the layer.
func (l LayerCS) SetPixelFormat(fmt PixelFormat) {
	assert(fmt <= MaxPixelFormatID, badPixelFormat)
	r := l.regs()
	r.PFCR.Set(r.PFCR.Get()&^uint32(pfcrPF) | uint32(fmt)&pfcrPF)
}

// SetPixelFormat sets the framebuffer pixel format of the layer.
func (l Layer) SetPixelFormat(fmt PixelFormat) {
	lc := l.Lock()
	lc.SetPixelFormat(fmt)
	lc.Unlock()
}

// DefaultColor returns the layer default color, ARGB-8888. It stands
// in for every pixel outside the layer window or frame.
func (l LayerCS) DefaultColor() Color {
	return Color(l.regs().DCCR.Get())
}

// DefaultColor returns the layer default color, ARGB-8888.
func (l Layer) DefaultColor() Color {
	lc := l.Lock()
	c := lc.DefaultColor()
	lc.Unlock()
	return c
}

// SetDefaultColor sets the layer default color, ARGB-8888.
func (l LayerCS) SetDefaultColor(c Color) {
	l.regs().DCCR.Set(uint32(c))
}

// SetDefaultColor sets the layer default color, ARGB-8888.
func (l Layer) SetDefaultColor(c Color) {
	lc := l.Lock()
	lc.SetDefaultColor(c)
	lc.Unlock()
}

// KeyColor returns the color key, RGB-888.
func (l LayerCS) KeyColor() Color {
	return Color(l.regs().CKCR.Get()) & rgbMask
}

// KeyColor returns the color key, RGB-888.
func (l Layer) KeyColor() Color {
	lc := l.Lock()
	c := lc.KeyColor()
	lc.Unlock()
	return c
}

// SetKeyColor sets the color key, RGB-888.
func (l LayerCS) SetKeyColor(c Color) {
	r := l.regs()
	r.CKCR.Set(r.CKCR.Get()&^uint32(rgbMask) | uint32(c&rgbMask))
}

// SetKeyColor sets the color key, RGB-888.
func (l Layer) SetKeyColor(c Color) {
	lc := l.Lock()
	lc.SetKeyColor(c)
	lc.Unlock()
}

// ConstantAlpha returns the constant alpha factor of the layer.
func (l LayerCS) ConstantAlpha() uint8 {
	return uint8(l.regs().CACR.Get() & cacrCONSTA)
}

// ConstantAlpha returns the constant alpha factor of the layer.
func (l Layer) ConstantAlpha() uint8 {
	lc := l.Lock()
	a := lc.ConstantAlpha()
	lc.Unlock()
	return a
}

// SetConstantAlpha sets the constant alpha factor of the layer. 255
// means opaque under the fixed blend factors.
func (l LayerCS) SetConstantAlpha(a uint8) {
	r := l.regs()
	r.CACR.Set(r.CACR.Get()&^uint32(cacrCONSTA) | uint32(a))
}

// SetConstantAlpha sets the constant alpha factor of the layer.
func (l Layer) SetConstantAlpha(a uint8) {
	lc := l.Lock()
	lc.SetConstantAlpha(a)
	lc.Unlock()
}

// BlendFactors returns the layer blend factor pair.
func (l LayerCS) BlendFactors() BlendFactors {
	return BlendFactors(l.regs().BFCR.Get() & bfcrBF)
}

// BlendFactors returns the layer blend factor pair.
func (l Layer) BlendFactors() BlendFactors {
	lc := l.Lock()
	b := lc.BlendFactors()
	lc.Unlock()
	return b
}

// SetBlendFactors sets the layer blend factor pair.
func (l LayerCS) SetBlendFactors(b BlendFactors) {
	r := l.regs()
	r.BFCR.Set(r.BFCR.Get()&^uint32(bfcrBF) | uint32(b)&bfcrBF)
}

// SetBlendFactors sets the layer blend factor pair.
func (l Layer) SetBlendFactors(b BlendFactors) {
	lc := l.Lock()
	lc.SetBlendFactors(b)
	lc.Unlock()
}

// Window returns the layer window in absolute raster coordinates.
func (l LayerCS) Window() Window {
	r := l.regs()
	whpcr := r.WHPCR.Get()
	wvpcr := r.WVPCR.Get()
	return Window{
		HStart: uint16(whpcr & whpcrWHSTPOS),
		HStop:  uint16((whpcr & whpcrWHSPPOS) >> 16),
		VStart: uint16(wvpcr & wvpcrWVSTPOS),
		VStop:  uint16((wvpcr & wvpcrWVSPPOS) >> 16),
	}
}

// Window returns the layer window in absolute raster coordinates.
func (l Layer) Window() Window {
	lc := l.Lock()
	w := lc.Window()
	lc.Unlock()
	return w
}

// SetWindow sets the layer window. Coordinates are relative to the
// active window origin and are translated to absolute raster
// positions before programming; the window must fit inside the active
// area cached at Start.
func (l LayerCS) SetWindow(w Window) {
	d := l.cs.d
	hstart := uint32(w.HStart) + uint32(d.active.HStart)
	hstop := uint32(w.HStop) + uint32(d.active.HStart)
	vstart := uint32(w.VStart) + uint32(d.active.VStart)
	vstop := uint32(w.VStop) + uint32(d.active.VStart)
	assert(hstart <= hstop && hstop <= uint32(d.active.HStop), badWindow)
	assert(vstart <= vstop && vstop <= uint32(d.active.VStop), badWindow)

	r := l.regs()
	r.WHPCR.Set(hstart&whpcrWHSTPOS | hstop<<16&whpcrWHSPPOS)
	r.WVPCR.Set(vstart&wvpcrWVSTPOS | vstop<<16&wvpcrWVSPPOS)
}

// SetWindow sets the layer window, relative to the active window
// origin.
func (l Layer) SetWindow(w Window) {
	lc := l.Lock()
	lc.SetWindow(w)
	lc.Unlock()
}

// SetInvalidWindow shrinks the layer window to a single pixel at the
// active window origin, a safe placeholder while the frame is being
// reconfigured.
func (l LayerCS) SetInvalidWindow() {
	l.SetWindow(InvalidWindow)
}

// SetInvalidWindow shrinks the layer window to a single pixel at the
// active window origin.
func (l Layer) SetInvalidWindow() {
	lc := l.Lock()
	lc.SetInvalidWindow()
	lc.Unlock()
}

// Frame returns the framebuffer binding of the layer. The width is
// derived from the programmed line length and the pixel format.
func (l LayerCS) Frame() Frame {
	r := l.regs()
	fmt := PixelFormat(r.PFCR.Get() & pfcrPF)
	cfblr := r.CFBLR.Get()
	linesize := cfblr&cfblrCFBLL - 3
	return Frame{
		Addr:   r.CFBAR.Get(),
		Pitch:  uint16((cfblr & cfblrCFBP) >> 16),
		Width:  uint16(linesize / uint32(BytesPerPixel(fmt))),
		Height: uint16(r.CFBLNR.Get() & cfblnrCFBLNBR),
		Format: fmt,
	}
}

// Frame returns the framebuffer binding of the layer.
func (l Layer) Frame() Frame {
	lc := l.Lock()
	f := lc.Frame()
	lc.Unlock()
	return f
}

// SetFrame binds a framebuffer to the layer. The buffer is caller
// owned and must stay alive while the layer can fetch from it. The
// frame may not exceed the screen dimensions of the running
// configuration.
func (l LayerCS) SetFrame(f *Frame) {
	assert(f != nil, badConfig)
	cfg := l.cs.d.config
	assert(f.Width >= 1 && f.Width <= cfg.ScreenWidth, badFrame)
	assert(f.Height >= 1 && f.Height <= cfg.ScreenHeight, badFrame)
	l.SetPixelFormat(f.Format)
	linesize := uint32(f.Width) * uint32(BytesPerPixel(f.Format))
	assert(linesize >= MinFrameWidthBytes && linesize <= MaxFrameWidthBytes, badFrame)
	assert(uint32(f.Pitch) >= linesize, badFrame)
	assert(f.Height <= MaxFrameHeightLines, badFrame)

	r := l.regs()
	r.CFBAR.Set(f.Addr)
	r.CFBLR.Set(uint32(f.Pitch)<<16&cfblrCFBP | (linesize+3)&cfblrCFBLL)
	r.CFBLNR.Set(uint32(f.Height) & cfblnrCFBLNBR)
}

// SetFrame binds a framebuffer to the layer.
func (l Layer) SetFrame(f *Frame) {
	lc := l.Lock()
	lc.SetFrame(f)
	lc.Unlock()
}

// FrameAddress returns the framebuffer base address.
func (l LayerCS) FrameAddress() uint32 {
	return l.regs().CFBAR.Get()
}

// FrameAddress returns the framebuffer base address.
func (l Layer) FrameAddress() uint32 {
	lc := l.Lock()
	a := lc.FrameAddress()
	lc.Unlock()
	return a
}

// SetFrameAddress retargets the framebuffer base address without
// touching the rest of the frame geometry. This is the page flip fast
// path: stage the new address, then commit it with a vertical blank
// reload.
func (l LayerCS) SetFrameAddress(addr uint32) {
	l.regs().CFBAR.Set(addr)
}

// SetFrameAddress retargets the framebuffer base address.
func (l Layer) SetFrameAddress(addr uint32) {
	lc := l.Lock()
	lc.SetFrameAddress(addr)
	lc.Unlock()
}

// Config returns the full shadow configuration of the layer. The
// palette is write only and always reads back nil.
func (l LayerCS) Config() LayerConfig {
	f := l.Frame()
	w := l.Window()
	return LayerConfig{
		Frame:        &f,
		Window:       &w,
		DefaultColor: l.DefaultColor(),
		KeyColor:     l.KeyColor(),
		ConstAlpha:   l.ConstantAlpha(),
		Palette:      nil,
		Blending:     l.BlendFactors(),
		Flags:        l.EnableFlags(),
	}
}

// Config returns the full shadow configuration of the layer.
func (l Layer) Config() LayerConfig {
	lc := l.Lock()
	cfg := lc.Config()
	lc.Unlock()
	return cfg
}

// SetConfig programs the full shadow configuration of the layer in
// one pass. A nil config selects the safe default (layer disabled,
// invalid frame and window); a nil window falls back to the invalid
// window. The palette is loaded only when non-empty, and the enable
// flags are applied last.
func (l LayerCS) SetConfig(cfg *LayerConfig) {
	if cfg == nil {
		cfg = &defaultLayerConfig
	}
	assert(cfg.Frame != nil, badConfig)
	l.SetFrame(cfg.Frame)
	if cfg.Window != nil {
		l.SetWindow(*cfg.Window)
	} else {
		l.SetInvalidWindow()
	}
	l.SetDefaultColor(cfg.DefaultColor)
	l.SetKeyColor(cfg.KeyColor)
	l.SetConstantAlpha(cfg.ConstAlpha)
	l.SetBlendFactors(cfg.Blending)
	if len(cfg.Palette) > 0 {
		l.SetPalette(cfg.Palette)
	}
	l.SetEnableFlags(cfg.Flags)
}

// SetConfig programs the full shadow configuration of the layer.
func (l Layer) SetConfig(cfg *LayerConfig) {
	lc := l.Lock()
	lc.SetConfig(cfg)
	lc.Unlock()
}
