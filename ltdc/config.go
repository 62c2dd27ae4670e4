package ltdc

// Color is a 32-bit color value. Whether it is interpreted as
// ARGB-8888 or RGB-888 depends on the register it is written to.
type Color uint32

const (
	ColorBlack Color = 0xFF000000
	ColorWhite Color = 0xFFFFFFFF
	ColorRed   Color = 0xFFFF0000
	ColorGreen Color = 0xFF00FF00
	ColorBlue  Color = 0xFF0000FF
)

// Flags is the set of global controller enable and polarity bits
// (GCR layout).
type Flags uint32

const (
	FlagEnable Flags = 1 << 0  // controller enable
	FlagDither Flags = 1 << 16 // dithering enable
	FlagPCPol  Flags = 1 << 28 // inverted pixel clock polarity
	FlagDEPol  Flags = 1 << 29 // inverted data enable polarity
	FlagVSPol  Flags = 1 << 30 // inverted vertical sync polarity
	FlagHSPol  Flags = 1 << 31 // inverted horizontal sync polarity

	flagsMask = FlagEnable | FlagDither | FlagPCPol | FlagDEPol | FlagVSPol | FlagHSPol
)

// LayerFlags is the per-layer enable bitset (layer control register
// layout).
type LayerFlags uint32

const (
	LayerFlagEnable  LayerFlags = lcrLEN    // layer enable
	LayerFlagKeying  LayerFlags = lcrCOLKEN // color keying enable
	LayerFlagPalette LayerFlags = lcrCLUTEN // palette (CLUT) enable

	layerFlagsMask = LayerFlagEnable | LayerFlagKeying | LayerFlagPalette
)

// BlendFactors selects how a layer's pixels are combined with the
// composition below it. The value is the raw (BF1 << 8) | BF2 register
// encoding.
type BlendFactors uint16

const (
	// BlendFix1Fix2 blends with the constant alpha only.
	BlendFix1Fix2 BlendFactors = 0x0405
	// BlendFix1Mod2 uses constant alpha for the layer and
	// 1 - (pixel alpha x constant alpha) for the underlying output.
	BlendFix1Mod2 BlendFactors = 0x0407
	// BlendMod1Fix2 uses pixel alpha x constant alpha for the layer and
	// 1 - constant alpha for the underlying output.
	BlendMod1Fix2 BlendFactors = 0x0605
	// BlendMod1Mod2 blends with pixel alpha x constant alpha.
	BlendMod1Mod2 BlendFactors = 0x0607
)

// Window describes a rectangular layer window. Coordinates passed to
// SetWindow are relative to the active window origin; coordinates read
// back with Window are absolute raster positions.
type Window struct {
	HStart uint16
	HStop  uint16
	VStart uint16
	VStop  uint16
}

// InvalidWindow is a one pixel window at the screen origin, used as a
// safe placeholder while frame extents are being reconfigured.
var InvalidWindow = Window{HStart: 0, HStop: 1, VStart: 0, VStop: 1}

// Frame describes a framebuffer bound to a layer. The buffer is
// caller owned; the driver stores only its bus address and never
// frees it.
type Frame struct {
	// Addr is the bus address of the first pixel. The hardware
	// fetches pixel data directly from this address.
	Addr uint32
	// Pitch is the byte distance between the starts of two
	// consecutive lines. Must be >= Width x bytes-per-pixel.
	Pitch uint16
	// Width in pixels and Height in lines.
	Width  uint16
	Height uint16
	// Format of the stored pixels.
	Format PixelFormat
}

// InvalidFrame is a one pixel L-8 frame with a zero address. A layer
// bound to it must stay disabled: fetching from address zero is
// harmless on the target silicon but is not portable.
var InvalidFrame = Frame{Addr: 0, Pitch: 1, Width: 1, Height: 1, Format: PixelFormatL8}

// LayerConfig aggregates the full shadow configuration of one layer.
type LayerConfig struct {
	Frame        *Frame
	Window       *Window
	DefaultColor Color
	KeyColor     Color
	ConstAlpha   uint8
	// Palette entries, RGB-888, applied to slots 0..len-1. The
	// hardware palette is write only: configurations read back with
	// Layer.Config always carry a nil Palette.
	Palette  []Color
	Blending BlendFactors
	Flags    LayerFlags
}

// defaultLayerConfig is applied when SetConfig is given nil: invalid
// frame and window, zero alpha, black colors, no palette, everything
// disabled.
var defaultLayerConfig = LayerConfig{
	Frame:        &InvalidFrame,
	Window:       &InvalidWindow,
	DefaultColor: ColorBlack,
	KeyColor:     ColorBlack,
	ConstAlpha:   0x00,
	Palette:      nil,
	Blending:     BlendFix1Fix2,
	Flags:        0,
}

// Config is the complete controller configuration consumed by Start.
// It is borrowed by the driver and must outlive the running period.
type Config struct {
	// Sync pulse widths, in pixel clocks and lines.
	HSyncWidth  uint16
	VSyncHeight uint16
	// Back porch widths.
	HBPWidth  uint16
	VBPHeight uint16
	// Visible area.
	ScreenWidth  uint16
	ScreenHeight uint16
	// Front porch widths.
	HFPWidth  uint16
	VFPHeight uint16

	// Polarity and dithering flags. FlagEnable is ignored here; the
	// controller is always enabled at the end of Start.
	Flags Flags

	// ClearColor is emitted outside both layer windows, RGB-888.
	ClearColor Color

	// Initial layer configurations. nil selects the safe default
	// (layer disabled, invalid frame and window).
	Background *LayerConfig
	Foreground *LayerConfig

	// Interrupt callbacks. All are optional; the matching interrupt
	// source stays masked when a callback is nil. Callbacks run in
	// interrupt context: they must not block and may only use the
	// locked (critical-section) driver surface.
	OnLine          func(*Driver)
	OnReload        func(*Driver)
	OnFIFOUnderrun  func(*Driver)
	OnTransferError func(*Driver)
}
