//go:build stm32f429

package ltdc

import (
	"device/stm32"
	"runtime/interrupt"
	"unsafe"
)

const badInstance = "ltdc: not the LTDC1 instance"

const (
	ltdcBase = 0x40016800

	// RCC_DCKCFGR PLLSAIDIVR: PLLSAI R output / 8 as the pixel clock.
	pllsaiDivR8   = 2
	pllsaiDivRPos = 16
	pllsaiDivMask = 0x3

	irqPriority = 0xC0
)

// LTDC1 is the driver bound to the one LTDC peripheral.
var LTDC1 = NewDriver((*Regs)(unsafe.Pointer(uintptr(ltdcBase))))

// Layout guards; a register block that drifts from the hardware map
// makes these array lengths negative and fails to compile.
var (
	_ [unsafe.Sizeof(Regs{}) - 0x184]byte
	_ [0x184 - unsafe.Sizeof(Regs{})]byte
	_ [unsafe.Sizeof(LayerRegs{}) - 0x80]byte
	_ [0x80 - unsafe.Sizeof(LayerRegs{})]byte
)

var (
	ltdcEventInt = interrupt.New(stm32.IRQ_LTDC, handleEventInterrupt)
	ltdcErrorInt = interrupt.New(stm32.IRQ_LTDC_ER, handleErrorInterrupt)
)

func handleEventInterrupt(interrupt.Interrupt) {
	LTDC1.ServiceEventInterrupt()
}

func handleErrorInterrupt(interrupt.Interrupt) {
	LTDC1.ServiceErrorInterrupt()
}

func (d *Driver) platformInit() {
	assert(d == LTDC1, badInstance)

	// Reset the peripheral, select the pixel clock divider and enable
	// the bus clock.
	stm32.RCC.APB2RSTR.SetBits(stm32.RCC_APB2RSTR_LTDCRST)
	stm32.RCC.APB2RSTR.ClearBits(stm32.RCC_APB2RSTR_LTDCRST)
	stm32.RCC.DCKCFGR.ReplaceBits(pllsaiDivR8, pllsaiDivMask, pllsaiDivRPos)
	stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_LTDCEN)
}

func (d *Driver) platformEnableInterrupts() {
	ltdcEventInt.SetPriority(irqPriority)
	ltdcEventInt.Enable()
	ltdcErrorInt.SetPriority(irqPriority)
	ltdcErrorInt.Enable()
}
