package nes

// Bus is the interface the CPU drives: a single address space shared by
// work RAM, the picture generator's register window, the APU/IO
// register file, and the cartridge. Grounded on the teacher's
// nes/bus.go CpuRead/CpuWrite dispatch, generalized to the full iNES
// address map (§3) instead of the teacher's narrowed 0x8000+ cartridge
// window.
type Bus interface {
	CpuRead(addr uint16) byte
	CpuWrite(addr uint16, v byte)
	DMAWrite(oamAddr byte, v byte)
}

const (
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF

	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007

	apuIoMinAddr uint16 = 0x4000
	apuIoMaxAddr uint16 = 0x4017

	dmaRegister uint16 = 0x4014

	testModeMinAddr uint16 = 0x4018
	testModeMaxAddr uint16 = 0x401F

	cartRamMinAddr uint16 = 0x4020
	cartRamMaxAddr uint16 = 0x7FFF

	cartRomMinAddr uint16 = 0x8000
	cartRomMaxAddr uint16 = 0xFFFF
)

// NesBus is the default Bus implementation: 2KB of work RAM, a
// cartridge, and a PictureGenerator standing in for the PPU's register
// file. The APU/IO register file and the disabled CPU test mode window
// are both backed by a flat byte array, since neither is in scope.
type NesBus struct {
	cpu  *Cpu6502
	pg   PictureGenerator
	cart *Cartridge

	ram      [0x0800]byte
	ioRegs   [apuIoMaxAddr - apuIoMinAddr + 1]byte
	testMode [testModeMaxAddr - testModeMinAddr + 1]byte
	lastBus  byte // open-bus latch, see SPEC_FULL §12
}

// NewNesBus wires a CPU, a cartridge, and a picture generator together.
// pg may be nil, in which case a NullPictureGenerator is used.
func NewNesBus(cart *Cartridge, pg PictureGenerator) *NesBus {
	if pg == nil {
		pg = &NullPictureGenerator{}
	}
	bus := &NesBus{cart: cart, pg: pg}
	bus.cpu = NewCpu6502(bus)
	return bus
}

func (b *NesBus) CPU() *Cpu6502 { return b.cpu }

func (b *NesBus) CpuRead(addr uint16) byte {
	var v byte
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		v = b.ram[addr&ramMirror]
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		v = b.readPicture(addr & ppuMirror)
	case addr >= apuIoMinAddr && addr <= apuIoMaxAddr:
		v = b.ioRegs[addr-apuIoMinAddr]
	case addr >= testModeMinAddr && addr <= testModeMaxAddr:
		v = b.testMode[addr-testModeMinAddr] // disabled CPU test mode window, treated as inert RAM (§3)
	case addr >= cartRamMinAddr && addr <= cartRamMaxAddr:
		v = b.cart.CpuRead(addr)
	case addr >= cartRomMinAddr:
		v = b.cart.CpuRead(addr)
	default:
		v = b.lastBus
	}
	b.lastBus = v
	return v
}

func (b *NesBus) CpuWrite(addr uint16, v byte) {
	b.lastBus = v
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		b.ram[addr&ramMirror] = v
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		b.writePicture(addr&ppuMirror, v)
	case addr == dmaRegister:
		b.cpu.TriggerDMA(v)
	case addr >= apuIoMinAddr && addr <= apuIoMaxAddr:
		b.ioRegs[addr-apuIoMinAddr] = v
	case addr >= testModeMinAddr && addr <= testModeMaxAddr:
		b.testMode[addr-testModeMinAddr] = v // §3: behaves as RAM, not wired to any real test hardware
	case addr >= cartRamMinAddr:
		b.cart.CpuWrite(addr, v)
	}
}

// DMAWrite delivers one OAM-DMA byte to the picture generator.
func (b *NesBus) DMAWrite(oamAddr byte, v byte) {
	b.pg.DMAWrite(oamAddr, v)
}

func (b *NesBus) readPicture(reg uint16) byte {
	switch reg {
	case 0x0000:
		return b.pg.ReadCtrl()
	case 0x0001:
		return b.pg.ReadMask()
	case 0x0002:
		return b.pg.ReadStatus()
	case 0x0003:
		return b.pg.ReadOAMAddr()
	case 0x0004:
		return b.pg.ReadOAMData()
	case 0x0005:
		return b.pg.ReadScroll()
	case 0x0006:
		return b.pg.ReadAddr()
	case 0x0007:
		return b.pg.ReadData()
	}
	return b.lastBus
}

func (b *NesBus) writePicture(reg uint16, v byte) {
	switch reg {
	case 0x0000:
		b.pg.WriteCtrl(v)
	case 0x0001:
		b.pg.WriteMask(v)
	case 0x0002:
		b.pg.WriteStatus(v)
	case 0x0003:
		b.pg.WriteOAMAddr(v)
	case 0x0004:
		b.pg.WriteOAMData(v)
	case 0x0005:
		b.pg.WriteScroll(v)
	case 0x0006:
		b.pg.WriteAddr(v)
	case 0x0007:
		b.pg.WriteData(v)
	}
}
