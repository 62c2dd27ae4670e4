package ltdc

import "tftdrv/internal/mmio"

// Regs is the LTDC register block as laid out on the target silicon.
// The driver only ever writes shadow registers; the hardware commits
// them at the next reload event (see Driver.StartReload).
type Regs struct {
	_     [2]mmio.Reg32 // 0x00..0x04 reserved
	SSCR  mmio.Reg32    // 0x08 synchronization size
	BPCR  mmio.Reg32    // 0x0C accumulated back porch
	AWCR  mmio.Reg32    // 0x10 accumulated active width
	TWCR  mmio.Reg32    // 0x14 accumulated total width
	GCR   mmio.Reg32    // 0x18 global control
	_     [2]mmio.Reg32 // 0x1C..0x20 reserved
	SRCR  mmio.Reg32    // 0x24 shadow reload configuration
	_     mmio.Reg32    // 0x28 reserved
	BCCR  mmio.Reg32    // 0x2C background (clear) color
	_     mmio.Reg32    // 0x30 reserved
	IER   mmio.Reg32    // 0x34 interrupt enable
	ISR   mmio.Reg32    // 0x38 interrupt status
	ICR   mmio.Reg32    // 0x3C interrupt clear
	LIPCR mmio.Reg32    // 0x40 line interrupt position
	CPSR  mmio.Reg32    // 0x44 current position
	CDSR  mmio.Reg32    // 0x48 current display status
	_     [14]mmio.Reg32
	Layer [2]LayerRegs // 0x84 layer 1 (background), 0x104 layer 2 (foreground)
}

// LayerRegs is one per-layer register sub-block. The two blocks are
// identical and 0x80 bytes apart.
type LayerRegs struct {
	CR     mmio.Reg32 // +0x00 layer control
	WHPCR  mmio.Reg32 // +0x04 window horizontal position
	WVPCR  mmio.Reg32 // +0x08 window vertical position
	CKCR   mmio.Reg32 // +0x0C color key
	PFCR   mmio.Reg32 // +0x10 pixel format
	CACR   mmio.Reg32 // +0x14 constant alpha
	DCCR   mmio.Reg32 // +0x18 default color
	BFCR   mmio.Reg32 // +0x1C blending factors
	_      [2]mmio.Reg32
	CFBAR  mmio.Reg32 // +0x28 frame buffer address
	CFBLR  mmio.Reg32 // +0x2C frame buffer length (pitch | line bytes + 3)
	CFBLNR mmio.Reg32 // +0x30 frame buffer line count
	_      [3]mmio.Reg32
	CLUTWR mmio.Reg32 // +0x40 palette write access (write only)
	_      [15]mmio.Reg32
}

// Register bitfields.
const (
	sscrHSW = 0x0FFF0000 // horizontal sync width - 1
	sscrVSH = 0x000007FF // vertical sync height - 1

	bpcrAHBP = 0x0FFF0000
	bpcrAVBP = 0x000007FF

	awcrAAW = 0x0FFF0000
	awcrAAH = 0x000007FF

	twcrTOTALW = 0x0FFF0000
	twcrTOTALH = 0x000007FF

	gcrLTDCEN = 1 << 0
	gcrDEN    = 1 << 16

	srcrIMR = 1 << 0 // immediate reload request
	srcrVBR = 1 << 1 // vertical blanking reload request

	intLIF    = 1 << 0 // line
	intFUIF   = 1 << 1 // FIFO underrun
	intTERRIF = 1 << 2 // transfer error
	intRRIF   = 1 << 3 // register reload

	lipcrLIPOS = 0x000007FF

	cpsrCXPOS = 0xFFFF0000
	cpsrCYPOS = 0x0000FFFF

	lcrLEN    = 1 << 0
	lcrCOLKEN = 1 << 1
	lcrCLUTEN = 1 << 4

	whpcrWHSTPOS = 0x00000FFF
	whpcrWHSPPOS = 0x0FFF0000
	wvpcrWVSTPOS = 0x000007FF
	wvpcrWVSPPOS = 0x07FF0000

	pfcrPF = 0x00000007

	cacrCONSTA = 0x000000FF

	bfcrBF = 0x00000707

	cfbarCFBADD   = 0xFFFFFFFF
	cfblrCFBP     = 0x1FFF0000
	cfblrCFBLL    = 0x00001FFF
	cfblnrCFBLNBR = 0x000007FF

	rgbMask = 0x00FFFFFF
)

// Hardware limits. Configuration values outside these bounds are
// programming errors and trip the precondition checks.
const (
	MinHSyncWidth  = 1
	MaxHSyncWidth  = 1 << 12
	MinVSyncHeight = 1
	MaxVSyncHeight = 1 << 11

	MinHBPWidth  = 0
	MaxHBPWidth  = (1 << 12) - 1
	MinVBPHeight = 0
	MaxVBPHeight = (1 << 11) - 1

	MinAccHBPWidth  = 1
	MaxAccHBPWidth  = 1 << 12
	MinAccVBPHeight = 1
	MaxAccVBPHeight = 1 << 11

	MinScreenWidth  = 1
	MaxScreenWidth  = 800
	MinScreenHeight = 1
	MaxScreenHeight = 600

	MinAccActiveWidth  = 1
	MaxAccActiveWidth  = 1 << 12
	MinAccActiveHeight = 1
	MaxAccActiveHeight = 1 << 11

	MinHFPWidth  = 0
	MaxHFPWidth  = (1 << 12) - 1
	MinVFPHeight = 0
	MaxVFPHeight = (1 << 11) - 1

	MinAccTotalWidth  = 1
	MaxAccTotalWidth  = 1 << 12
	MinAccTotalHeight = 1
	MaxAccTotalHeight = 1 << 11

	// Line byte counts are stored as N+3 in a 13-bit field.
	MinFrameWidthBytes  = 1
	MaxFrameWidthBytes  = (1 << 13) - 1 - 3
	MinFrameHeightLines = 1
	MaxFrameHeightLines = (1 << 11) - 1

	MaxPaletteLength = 256

	MinPixelFormatID = 0
	MaxPixelFormatID = 7
)
