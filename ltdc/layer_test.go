package ltdc

import "testing"

func startedDriver(t *testing.T) (*Driver, *Regs) {
	t.Helper()
	d, hw := newTestDriver(t)
	d.Start(testConfig())
	return d, hw
}

func TestWindowTranslation(t *testing.T) {
	d, _ := startedDriver(t)
	fg := d.Fg()

	fg.SetWindow(Window{HStart: 0, HStop: 479, VStart: 0, VStop: 271})
	want := Window{HStart: 43, HStop: 522, VStart: 12, VStop: 283}
	if got := fg.Window(); got != want {
		t.Errorf("full window = %+v, want %+v", got, want)
	}

	fg.SetWindow(Window{HStart: 10, HStop: 19, VStart: 20, VStop: 29})
	want = Window{HStart: 53, HStop: 62, VStart: 32, VStop: 41}
	if got := fg.Window(); got != want {
		t.Errorf("offset window = %+v, want %+v", got, want)
	}

	fg.SetInvalidWindow()
	want = Window{HStart: 43, HStop: 44, VStart: 12, VStop: 13}
	if got := fg.Window(); got != want {
		t.Errorf("invalid window = %+v, want %+v", got, want)
	}
}

func TestWindowRejected(t *testing.T) {
	d, _ := startedDriver(t)
	bg := d.Bg()

	// One pixel past the active area on either axis.
	expectPanic(t, badWindow, func() {
		bg.SetWindow(Window{HStart: 0, HStop: 480, VStart: 0, VStop: 271})
	})
	expectPanic(t, badWindow, func() {
		bg.SetWindow(Window{HStart: 0, HStop: 479, VStart: 0, VStop: 272})
	})
	// Inverted extents.
	expectPanic(t, badWindow, func() {
		bg.SetWindow(Window{HStart: 10, HStop: 5, VStart: 0, VStop: 0})
	})
}

func TestFrameEncoding(t *testing.T) {
	d, hw := startedDriver(t)
	bg := d.Bg()

	f := Frame{Addr: 0xD000_0000, Pitch: 960, Width: 480, Height: 272, Format: PixelFormatRGB565}
	bg.SetFrame(&f)

	lr := &hw.Layer[0]
	if got := lr.CFBAR.Get(); got != 0xD000_0000 {
		t.Errorf("CFBAR = %#x", got)
	}
	// Line length is stored as bytes plus three.
	if got, want := lr.CFBLR.Get(), uint32(960<<16|963); got != want {
		t.Errorf("CFBLR = %#x, want %#x", got, want)
	}
	if got := lr.CFBLNR.Get(); got != 272 {
		t.Errorf("CFBLNR = %d, want 272", got)
	}
	if got := lr.PFCR.Get(); got != uint32(PixelFormatRGB565) {
		t.Errorf("PFCR = %d, want %d", got, PixelFormatRGB565)
	}

	if got := bg.Frame(); got != f {
		t.Errorf("Frame round trip = %+v, want %+v", got, f)
	}
	if got := bg.FrameAddress(); got != f.Addr {
		t.Errorf("FrameAddress = %#x", got)
	}
}

func TestFrameRejected(t *testing.T) {
	d, _ := startedDriver(t)
	fg := d.Fg()

	// Wider than the 480 pixel screen of the running configuration.
	expectPanic(t, badFrame, func() {
		fg.SetFrame(&Frame{Addr: 0, Pitch: 1000, Width: 500, Height: 100, Format: PixelFormatRGB565})
	})
	// Taller than the 272 line screen.
	expectPanic(t, badFrame, func() {
		fg.SetFrame(&Frame{Addr: 0, Pitch: 960, Width: 480, Height: 300, Format: PixelFormatRGB565})
	})
	// Degenerate extents.
	expectPanic(t, badFrame, func() {
		fg.SetFrame(&Frame{Addr: 0, Pitch: 960, Width: 0, Height: 272, Format: PixelFormatRGB565})
	})
	// Pitch shorter than one line.
	expectPanic(t, badFrame, func() {
		fg.SetFrame(&Frame{Addr: 0, Pitch: 100, Width: 480, Height: 1, Format: PixelFormatRGB565})
	})
	expectPanic(t, badConfig, func() { fg.SetFrame(nil) })
}

func TestFrameAddressFastPath(t *testing.T) {
	d, _ := startedDriver(t)
	fg := d.Fg()
	fg.SetFrame(&Frame{Addr: 0xD000_0000, Pitch: 960, Width: 480, Height: 272, Format: PixelFormatRGB565})

	fg.SetFrameAddress(0xD004_0000)
	got := fg.Frame()
	if got.Addr != 0xD004_0000 {
		t.Errorf("Addr = %#x, want 0xD0040000", got.Addr)
	}
	// The rest of the geometry is untouched.
	if got.Pitch != 960 || got.Width != 480 || got.Height != 272 {
		t.Errorf("geometry changed: %+v", got)
	}
}

func TestLayerEnableBits(t *testing.T) {
	d, _ := startedDriver(t)
	bg := d.Bg()

	// Keying and palette bits must not read back as layer enable.
	bg.EnableKeying()
	bg.EnablePalette()
	if bg.IsEnabled() {
		t.Error("layer reported enabled with only keying and palette set")
	}
	if !bg.IsKeyingEnabled() || !bg.IsPaletteEnabled() {
		t.Error("keying or palette bit lost")
	}

	bg.Enable()
	if !bg.IsEnabled() {
		t.Error("layer not enabled")
	}
	bg.Disable()
	if bg.IsEnabled() {
		t.Error("layer still enabled")
	}
	if !bg.IsKeyingEnabled() || !bg.IsPaletteEnabled() {
		t.Error("Disable clobbered other enable bits")
	}

	bg.SetEnableFlags(LayerFlagEnable | LayerFlagKeying)
	if got := bg.EnableFlags(); got != LayerFlagEnable|LayerFlagKeying {
		t.Errorf("EnableFlags = %#x", got)
	}
}

func TestPaletteRequiresDisabledLayer(t *testing.T) {
	d, _ := startedDriver(t)
	fg := d.Fg()

	fg.Enable()
	expectPanic(t, badLayerState, func() { fg.SetPaletteColor(0, ColorRed) })
	expectPanic(t, badLayerState, func() { fg.SetPalette([]Color{ColorRed}) })

	fg.Disable()
	fg.SetPaletteColor(0, ColorRed)
	fg.SetPalette([]Color{ColorRed, ColorGreen, ColorBlue})

	expectPanic(t, badPalette, func() { fg.SetPalette(make([]Color, MaxPaletteLength+1)) })
}

func TestLayerColorRegisters(t *testing.T) {
	d, _ := startedDriver(t)
	bg := d.Bg()

	bg.SetDefaultColor(0x80123456)
	if got := bg.DefaultColor(); got != 0x80123456 {
		t.Errorf("DefaultColor = %#x", uint32(got))
	}

	// The key color register only keeps the RGB bits.
	bg.SetKeyColor(0xFFABCDEF)
	if got := bg.KeyColor(); got != 0x00ABCDEF {
		t.Errorf("KeyColor = %#x", uint32(got))
	}

	bg.SetConstantAlpha(0x42)
	if got := bg.ConstantAlpha(); got != 0x42 {
		t.Errorf("ConstantAlpha = %#x", got)
	}

	bg.SetBlendFactors(BlendMod1Mod2)
	if got := bg.BlendFactors(); got != BlendMod1Mod2 {
		t.Errorf("BlendFactors = %#x", uint16(got))
	}
}

func TestLayerConfigDefaults(t *testing.T) {
	d, _ := startedDriver(t)
	fg := d.Fg()

	fg.SetConfig(nil)
	cfg := fg.Config()
	if cfg.Flags != 0 {
		t.Errorf("default flags = %#x, want 0", cfg.Flags)
	}
	if *cfg.Frame != InvalidFrame {
		t.Errorf("default frame = %+v, want %+v", *cfg.Frame, InvalidFrame)
	}
	wantWin := Window{HStart: 43, HStop: 44, VStart: 12, VStop: 13}
	if *cfg.Window != wantWin {
		t.Errorf("default window = %+v, want %+v", *cfg.Window, wantWin)
	}
	if cfg.ConstAlpha != 0 || cfg.DefaultColor != ColorBlack {
		t.Errorf("default color/alpha = %#x/%d", uint32(cfg.DefaultColor), cfg.ConstAlpha)
	}
	if cfg.Palette != nil {
		t.Error("palette read back non-nil")
	}
}

func TestLayerConfigRoundTrip(t *testing.T) {
	d, _ := startedDriver(t)
	bg := d.Bg()

	in := LayerConfig{
		Frame:        &Frame{Addr: 0xD000_0000, Pitch: 960, Width: 480, Height: 272, Format: PixelFormatRGB565},
		Window:       &Window{HStart: 0, HStop: 479, VStart: 0, VStop: 271},
		DefaultColor: 0xFF102030,
		KeyColor:     0x00FF00FF,
		ConstAlpha:   0xFF,
		Blending:     BlendFix1Fix2,
		Flags:        LayerFlagEnable,
	}
	bg.SetConfig(&in)

	out := bg.Config()
	if *out.Frame != *in.Frame {
		t.Errorf("frame = %+v, want %+v", *out.Frame, *in.Frame)
	}
	wantWin := Window{HStart: 43, HStop: 522, VStart: 12, VStop: 283}
	if *out.Window != wantWin {
		t.Errorf("window = %+v, want %+v", *out.Window, wantWin)
	}
	if out.DefaultColor != in.DefaultColor || out.KeyColor != in.KeyColor {
		t.Errorf("colors = %#x/%#x", uint32(out.DefaultColor), uint32(out.KeyColor))
	}
	if out.ConstAlpha != in.ConstAlpha || out.Blending != in.Blending || out.Flags != in.Flags {
		t.Errorf("alpha/blend/flags = %d/%#x/%#x", out.ConstAlpha, uint16(out.Blending), out.Flags)
	}
}
