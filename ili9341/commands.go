package ili9341

// ILI9341 command set.
const (
	CmdNop              = 0x00 // no operation
	CmdSoftwareReset    = 0x01
	CmdReadDisplayID    = 0x04
	CmdReadDisplayStat  = 0x09
	CmdReadPowerMode    = 0x0A
	CmdReadMADCTL       = 0x0B
	CmdReadPixelFormat  = 0x0C
	CmdReadImageFormat  = 0x0D
	CmdReadSelfDiag     = 0x0F
	CmdSleepIn          = 0x10
	CmdSleepOut         = 0x11
	CmdPartialModeOn    = 0x12
	CmdNormalModeOn     = 0x13
	CmdInvertOff        = 0x20
	CmdInvertOn         = 0x21
	CmdGammaSet         = 0x26
	CmdDisplayOff       = 0x28
	CmdDisplayOn        = 0x29
	CmdColumnAddressSet = 0x2A
	CmdPageAddressSet   = 0x2B
	CmdMemoryWrite      = 0x2C
	CmdColorSet         = 0x2D
	CmdMemoryRead       = 0x2E
	CmdPartialArea      = 0x30
	CmdVScrollDef       = 0x33
	CmdTearingOff       = 0x34
	CmdTearingOn        = 0x35
	CmdMemAccessCtl     = 0x36
	CmdVScrollStart     = 0x37
	CmdIdleModeOff      = 0x38
	CmdIdleModeOn       = 0x39
	CmdPixelFormatSet   = 0x3A
	CmdWriteMemContinue = 0x3C
	CmdReadMemContinue  = 0x3E
	CmdSetTearScanline  = 0x44
	CmdGetScanline      = 0x45
	CmdWriteBrightness  = 0x51
	CmdReadBrightness   = 0x52
	CmdWriteCTRL        = 0x53
	CmdReadCTRL         = 0x54
	CmdFrameRateCtl     = 0xB1
	CmdFrameRateCtlIdle = 0xB2
	CmdFrameRateCtlPart = 0xB3
	CmdInversionCtl     = 0xB4
	CmdBlankingPorchCtl = 0xB5
	CmdDisplayFuncCtl   = 0xB6
	CmdEntryModeSet     = 0xB7
	CmdPowerCtl1        = 0xC0
	CmdPowerCtl2        = 0xC1
	CmdVCOMCtl1         = 0xC5
	CmdVCOMCtl2         = 0xC7
	CmdPowerCtlA        = 0xCB
	CmdPowerCtlB        = 0xCF
	CmdReadID1          = 0xDA
	CmdReadID2          = 0xDB
	CmdReadID3          = 0xDC
	CmdPosGammaCorrect  = 0xE0
	CmdNegGammaCorrect  = 0xE1
	CmdDrvTimingCtlA    = 0xE8
	CmdDrvTimingCtlB    = 0xEA
	CmdPowerOnSeqCtl    = 0xED
	CmdEnable3Gamma     = 0xF2
	CmdInterfaceCtl     = 0xF6
	CmdPumpRatioCtl     = 0xF7
)

// Memory access control (MADCTL) bits.
const (
	MADCTLRowOrder    = 0x80 // MY, row address order
	MADCTLColumnOrder = 0x40 // MX, column address order
	MADCTLRowColSwap  = 0x20 // MV, row/column exchange
	MADCTLVRefresh    = 0x10 // ML, vertical refresh order
	MADCTLBGR         = 0x08 // BGR subpixel order
	MADCTLHRefresh    = 0x04 // MH, horizontal refresh order
)
