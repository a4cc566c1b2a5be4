package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyPictureGenerator records the last register touched, for asserting
// the bus mapper's 8-byte PPU register mirroring dispatches to the
// right handler regardless of which alias address was used.
type spyPictureGenerator struct {
	NullPictureGenerator
	lastRead  string
	lastWrite string
}

func (s *spyPictureGenerator) ReadCtrl() byte      { s.lastRead = "ctrl"; return s.NullPictureGenerator.ReadCtrl() }
func (s *spyPictureGenerator) WriteCtrl(v byte)    { s.lastWrite = "ctrl"; s.NullPictureGenerator.WriteCtrl(v) }
func (s *spyPictureGenerator) ReadStatus() byte    { s.lastRead = "status"; return s.NullPictureGenerator.ReadStatus() }
func (s *spyPictureGenerator) WriteOAMData(v byte) { s.lastWrite = "oamdata"; s.NullPictureGenerator.WriteOAMData(v) }

func newTestBus() *NesBus {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	cart, err := LoadCartridge(data)
	if err != nil {
		panic(err)
	}
	return NewNesBus(cart, nil)
}

func TestBusRamMirroredFourTimes(t *testing.T) {
	bus := newTestBus()
	bus.CpuWrite(0x0042, 0x99)
	for _, alias := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		assert.Equal(t, byte(0x99), bus.CpuRead(alias), "alias %#04x should read back the RAM write", alias)
	}
}

func TestBusRamReadAfterWriteAcrossEntireMirroredRegion(t *testing.T) {
	bus := newTestBus()
	for addr := 0x0000; addr <= 0x1FFF; addr += 0x0137 {
		a := uint16(addr)
		v := byte(a) ^ byte(a>>8)
		bus.CpuWrite(a, v)
		require.Equal(t, v, bus.CpuRead(a))
	}
}

func TestBusPpuRegistersMirrorEvery8Bytes(t *testing.T) {
	bus := newTestBus()
	spy := &spyPictureGenerator{}
	bus.pg = spy

	bus.CpuRead(0x2000)
	assert.Equal(t, "ctrl", spy.lastRead)
	bus.CpuRead(0x2008) // 0x2000 mirrored
	assert.Equal(t, "ctrl", spy.lastRead)
	bus.CpuRead(0x3FF8) // last mirror of 0x2000 below 0x4000
	assert.Equal(t, "ctrl", spy.lastRead)

	bus.CpuRead(0x2002)
	assert.Equal(t, "status", spy.lastRead)

	bus.CpuWrite(0x2004, 0x55)
	assert.Equal(t, "oamdata", spy.lastWrite)
}

func TestBusDmaTriggerRegisterStallsCpu512Cycles(t *testing.T) {
	bus := newTestBus()
	cpu := bus.CPU()
	cpu.CycleCount = 0
	bus.CpuWrite(0x4014, 0x03)
	require.True(t, cpu.dma.active)

	count := 0
	for cpu.dma.active {
		cpu.Tick()
		count++
	}
	assert.Equal(t, 512, count)
}

func TestBusDmaTriggerOnOddCycleCostsOneExtraCycle(t *testing.T) {
	bus := newTestBus()
	cpu := bus.CPU()
	cpu.CycleCount = 1 // odd: trigger needs the extra alignment cycle
	bus.CpuWrite(0x4014, 0x03)
	require.True(t, cpu.dma.active)
	require.True(t, cpu.dma.needsAlign)

	count := 0
	for cpu.dma.active {
		cpu.Tick()
		count++
	}
	assert.Equal(t, 513, count)
}

func TestBusCartridgeRomMirrorsSingleBankAcrossFullWindow(t *testing.T) {
	bus := newTestBus()
	assert.Equal(t, bus.CpuRead(0x8000), bus.CpuRead(0xC000))
	assert.Equal(t, bus.CpuRead(0xBFFF), bus.CpuRead(0xFFFF))
}

func TestBusDisabledTestRegionBehavesAsInertRAM(t *testing.T) {
	bus := newTestBus()
	bus.CpuWrite(0x4018, 0x7E)
	assert.Equal(t, byte(0x7E), bus.CpuRead(0x4018), "disabled test region behaves as inert RAM, not true open bus")
}
