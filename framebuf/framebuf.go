// Package framebuf provides CPU-side framebuffers stored in the
// pixel formats the display controller scans out. A buffer is a
// plain byte slice wrapped with enough geometry to serve three
// audiences at once: the Go image packages draw into it, the text and
// font renderers treat it as a display, and the controller fetches it
// as a layer frame.
package framebuf

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"tftdrv/ltdc"
)

// Image is a framebuffer in one of the controller pixel formats.
// Pixels are stored little endian, lines Pitch bytes apart.
type Image struct {
	Pix    []byte
	Pitch  int
	Rect   image.Rectangle
	Format ltdc.PixelFormat

	// Flush is invoked by Display once a renderer finished a frame.
	// Wire it to the panel write or the shadow reload path. Optional.
	Flush func() error
}

// New allocates a tightly packed w by h framebuffer.
func New(w, h int, format ltdc.PixelFormat) *Image {
	pitch := w * ltdc.BytesPerPixel(format)
	return &Image{
		Pix:    make([]byte, pitch*h),
		Pitch:  pitch,
		Rect:   image.Rect(0, 0, w, h),
		Format: format,
	}
}

// Frame describes the buffer as a controller layer frame fetched at
// the given bus address.
func (m *Image) Frame(addr uint32) ltdc.Frame {
	return ltdc.Frame{
		Addr:   addr,
		Pitch:  uint16(m.Pitch),
		Width:  uint16(m.Rect.Dx()),
		Height: uint16(m.Rect.Dy()),
		Format: m.Format,
	}
}

func (m *Image) pixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Pitch + (x-m.Rect.Min.X)*ltdc.BytesPerPixel(m.Format)
}

func (m *Image) load(x, y int) uint32 {
	o := m.pixOffset(x, y)
	var v uint32
	for i := ltdc.BytesPerPixel(m.Format) - 1; i >= 0; i-- {
		v = v<<8 | uint32(m.Pix[o+i])
	}
	return v
}

func (m *Image) store(x, y int, v uint32) {
	o := m.pixOffset(x, y)
	for i := 0; i < ltdc.BytesPerPixel(m.Format); i++ {
		m.Pix[o+i] = uint8(v)
		v >>= 8
	}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return m.Rect
}

// At implements image.Image. The stored pixel is expanded to RGBA
// with high channel bits replicated, the same way the controller
// expands it on scanout.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return color.RGBA{}
	}
	argb := ltdc.ToARGB8888(ltdc.Color(m.load(x, y)), m.Format)
	return color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// Set implements draw.Image. Channels are truncated to the storage
// format's bit depth.
func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return
	}
	r, g, b, a := c.RGBA()
	argb := ltdc.Color(a>>8)<<24 | ltdc.Color(r>>8)<<16 | ltdc.Color(g>>8)<<8 | ltdc.Color(b>>8)
	m.store(x, y, uint32(ltdc.FromARGB8888(argb, m.Format)))
}

// Fill paints the whole buffer with one color.
func (m *Image) Fill(c color.Color) {
	draw.Draw(m, m.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage scales src to cover dst with nearest-neighbor filtering.
func (m *Image) DrawImage(dst image.Rectangle, src image.Image) {
	xdraw.NearestNeighbor.Scale(m, dst, src, src.Bounds(), xdraw.Src, nil)
}

// Size implements drivers.Displayer.
func (m *Image) Size() (x, y int16) {
	return int16(m.Rect.Dx()), int16(m.Rect.Dy())
}

// SetPixel implements drivers.Displayer.
func (m *Image) SetPixel(x, y int16, c color.RGBA) {
	m.Set(int(x), int(y), c)
}

// Display implements drivers.Displayer.
func (m *Image) Display() error {
	if m.Flush != nil {
		return m.Flush()
	}
	return nil
}
