//go:build !tinygo

// Package ltdcsim is a register-level model of the LCD-TFT controller
// for host builds. It gives the ltdc driver a register block to talk
// to, emulates the shadow reload machinery, captures the write-only
// palette registers and composes the final raster into an image.RGBA
// the same way the hardware blends its two layers.
package ltdcsim

import (
	"image"

	"tftdrv/ltdc"
)

// Hardware bit positions, as seen on the wire.
const (
	srcrIMR = 1 << 0
	srcrVBR = 1 << 1

	intLIF    = 1 << 0
	intFUIF   = 1 << 1
	intTERRIF = 1 << 2
	intRRIF   = 1 << 3

	lcrLEN    = 1 << 0
	lcrCOLKEN = 1 << 1
	lcrCLUTEN = 1 << 4

	rgbMask = 0x00FFFFFF
)

type layerShadow struct {
	cr     uint32
	whpcr  uint32
	wvpcr  uint32
	ckcr   uint32
	pfcr   uint32
	cacr   uint32
	dccr   uint32
	bfcr   uint32
	cfbar  uint32
	cfblr  uint32
	cfblnr uint32
}

type shadow struct {
	bpcr  uint32
	awcr  uint32
	bccr  uint32
	layer [2]layerShadow
}

type region struct {
	base uint32
	mem  []byte
}

// Sim models one LCD-TFT controller. Create it with New, hand Regs to
// ltdc.NewDriver and Attach the driver so the simulated interrupt
// lines reach its service routines.
//
// Immediate reload requests complete synchronously inside the SRCR
// write, so driver code that spins on the reload bit never blocks.
// Vertical blank requests stay pending until CompleteReload, which
// plays the role of the next blanking interval.
type Sim struct {
	regs    *ltdc.Regs
	drv     *ltdc.Driver
	latched shadow
	palette [2][256]uint32
	mapped  []region
}

// New builds a simulated controller with an all-zero register block.
func New() *Sim {
	s := &Sim{regs: new(ltdc.Regs)}

	// Interrupt clear: write-1-to-clear into the status register.
	s.regs.ICR.Observe(func(v uint32) {
		if v == 0 {
			return
		}
		s.regs.ISR.ClearBits(v)
		s.regs.ICR.Set(0)
	})

	// Immediate reloads latch the shadow registers on the spot.
	s.regs.SRCR.Observe(func(v uint32) {
		if v&srcrIMR == 0 {
			return
		}
		s.latch()
		s.regs.SRCR.Set(v &^ srcrIMR)
	})

	// The palette registers are write only; capture them here.
	for i := range s.regs.Layer {
		i := i
		s.regs.Layer[i].CLUTWR.Observe(func(v uint32) {
			s.palette[i][v>>24] = v & rgbMask
		})
	}
	return s
}

// Regs returns the simulated register block.
func (s *Sim) Regs() *ltdc.Regs {
	return s.regs
}

// Attach connects a driver so the simulated interrupt lines invoke
// its service routines.
func (s *Sim) Attach(d *ltdc.Driver) {
	s.drv = d
}

// Map makes a byte slice fetchable at the given bus address. Frames
// programmed into a layer must point into a mapped region before
// Render is called.
func (s *Sim) Map(base uint32, mem []byte) {
	s.mapped = append(s.mapped, region{base: base, mem: mem})
}

func (s *Sim) resolve(addr uint32, n int) []byte {
	for _, r := range s.mapped {
		if addr >= r.base && addr+uint32(n) <= r.base+uint32(len(r.mem)) {
			return r.mem[addr-r.base : addr-r.base+uint32(n)]
		}
	}
	return nil
}

func (s *Sim) latch() {
	r := s.regs
	s.latched.bpcr = r.BPCR.Get()
	s.latched.awcr = r.AWCR.Get()
	s.latched.bccr = r.BCCR.Get()
	for i := range r.Layer {
		lr := &r.Layer[i]
		s.latched.layer[i] = layerShadow{
			cr:     lr.CR.Get(),
			whpcr:  lr.WHPCR.Get(),
			wvpcr:  lr.WVPCR.Get(),
			ckcr:   lr.CKCR.Get(),
			pfcr:   lr.PFCR.Get(),
			cacr:   lr.CACR.Get(),
			dccr:   lr.DCCR.Get(),
			bfcr:   lr.BFCR.Get(),
			cfbar:  lr.CFBAR.Get(),
			cfblr:  lr.CFBLR.Get(),
			cfblnr: lr.CFBLNR.Get(),
		}
	}
}

// CompleteReload plays one vertical blanking interval: a pending
// blanking-synchronized reload is latched, the reload status bit is
// raised and the attached driver's event service routine runs. It is
// a no-op when no reload is pending.
func (s *Sim) CompleteReload() {
	r := s.regs
	if !r.SRCR.HasBits(srcrVBR) {
		return
	}
	s.latch()
	r.SRCR.ClearBits(srcrVBR)
	r.ISR.SetBits(intRRIF)
	if s.drv != nil {
		s.drv.ServiceEventInterrupt()
	}
}

// TriggerLine raises the programmed-line interrupt.
func (s *Sim) TriggerLine() {
	s.regs.ISR.SetBits(intLIF)
	if s.drv != nil {
		s.drv.ServiceEventInterrupt()
	}
}

// TriggerFIFOUnderrun raises the FIFO underrun error interrupt.
func (s *Sim) TriggerFIFOUnderrun() {
	s.regs.ISR.SetBits(intFUIF)
	if s.drv != nil {
		s.drv.ServiceErrorInterrupt()
	}
}

// TriggerTransferError raises the bus transfer error interrupt.
func (s *Sim) TriggerTransferError() {
	s.regs.ISR.SetBits(intTERRIF)
	if s.drv != nil {
		s.drv.ServiceErrorInterrupt()
	}
}

// Render composes the latched configuration into an image the size of
// the active area: the clear color first, then the background layer,
// then the foreground layer, each blended with its latched factors.
func (s *Sim) Render() *image.RGBA {
	sh := &s.latched
	x0 := int(sh.bpcr>>16&0x0FFF) + 1
	y0 := int(sh.bpcr&0x07FF) + 1
	x1 := int(sh.awcr >> 16 & 0x0FFF)
	y1 := int(sh.awcr & 0x07FF)
	w, h := x1-x0+1, y1-y0+1
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out := uint32(sh.bccr)&rgbMask | 0xFF000000
			for li := range sh.layer {
				ls := &sh.layer[li]
				if ls.cr&lcrLEN == 0 {
					continue
				}
				pix := s.layerPixel(li, ls, uint32(x0+x), uint32(y0+y))
				if ls.cr&lcrCOLKEN != 0 && pix&rgbMask == ls.ckcr&rgbMask {
					pix &= rgbMask // keyed pixels lose their alpha
				}
				out = blend(pix, out, ls.bfcr, ls.cacr)
			}
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(out >> 16)
			img.Pix[o+1] = uint8(out >> 8)
			img.Pix[o+2] = uint8(out)
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}

// layerPixel returns the ARGB-8888 contribution of one layer at an
// absolute raster position: the decoded frame pixel inside the window
// and frame extents, the layer default color everywhere else.
func (s *Sim) layerPixel(li int, ls *layerShadow, rx, ry uint32) uint32 {
	hstart := ls.whpcr & 0x0FFF
	hstop := ls.whpcr >> 16 & 0x0FFF
	vstart := ls.wvpcr & 0x07FF
	vstop := ls.wvpcr >> 16 & 0x07FF
	if rx < hstart || rx > hstop || ry < vstart || ry > vstop {
		return ls.dccr
	}

	fmt := ltdc.PixelFormat(ls.pfcr & 7)
	bpp := uint32(ltdc.BytesPerPixel(fmt))
	linesize := ls.cfblr&0x1FFF - 3
	width := linesize / bpp
	height := ls.cfblnr & 0x07FF
	col, row := rx-hstart, ry-vstart
	if col >= width || row >= height {
		return ls.dccr
	}

	pitch := ls.cfblr >> 16 & 0x1FFF
	mem := s.resolve(ls.cfbar+row*pitch+col*bpp, int(bpp))
	if mem == nil {
		return ls.dccr
	}
	var raw uint32
	for i := int(bpp) - 1; i >= 0; i-- {
		raw = raw<<8 | uint32(mem[i])
	}

	if ls.cr&lcrCLUTEN != 0 {
		switch fmt {
		case ltdc.PixelFormatL8:
			return 0xFF000000 | s.palette[li][raw&0xFF]
		case ltdc.PixelFormatAL44:
			a := raw >> 4 & 0xF
			a |= a << 4
			return a<<24 | s.palette[li][raw&0xF]
		case ltdc.PixelFormatAL88:
			return raw>>8&0xFF<<24 | s.palette[li][raw&0xFF]
		}
	}
	return uint32(ltdc.ToARGB8888(ltdc.Color(raw), fmt))
}

// blend combines a layer pixel with the composition below it using
// the hardware blend factor encoding: factor 4 is the constant alpha,
// 6 is pixel alpha times constant alpha, 5 and 7 are their
// complements.
func blend(top, bottom, bfcr, cacr uint32) uint32 {
	a := top >> 24
	consta := cacr & 0xFF

	var f1 uint32
	switch bfcr >> 8 & 7 {
	case 4:
		f1 = consta
	case 6:
		f1 = a * consta / 255
	}
	var f2 uint32
	switch bfcr & 7 {
	case 5:
		f2 = 255 - consta
	case 7:
		f2 = 255 - a*consta/255
	}

	mix := func(shift uint32) uint32 {
		t := top >> shift & 0xFF
		b := bottom >> shift & 0xFF
		v := (t*f1 + b*f2) / 255
		if v > 0xFF {
			v = 0xFF
		}
		return v << shift
	}
	return 0xFF000000 | mix(16) | mix(8) | mix(0)
}
