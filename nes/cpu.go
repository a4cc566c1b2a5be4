package nes

import (
	"github.com/sirupsen/logrus"
)

// SF6502 is a single status-register bit.
type SF6502 byte

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // IRQ disable
	StatusFlagD                    // Decimal (unused by this core: BCD arithmetic is a Non-goal)
	StatusFlagB                    // Break, only ever observed in the byte pushed to the stack
	StatusFlagX                    // Unused, always reads 1
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

const stackBase uint16 = 0x0100

// Cpu6502 is a cycle-accurate 6502 micro-sequencer. Unlike an
// instruction-level interpreter, Tick performs exactly one bus
// transaction and then advances phase; an instruction that takes N
// cycles on real hardware takes N calls to Tick here, and the CPU can be
// inspected or stalled (DMA) between any two of them.
type Cpu6502 struct {
	Pc     uint16
	Sp     byte
	A      byte
	X      byte
	Y      byte
	Status byte

	bus Bus

	phase Phase
	op    Operation
	mode  AddressingMode
	kind  OpKind

	addrAbs     uint16
	addrRel     int16
	ptr         uint16
	fetched     byte
	temp        byte
	pageCrossed bool

	interruptIsBRK  bool
	interruptVector uint16

	nmiLatched  bool
	prevNMILine bool
	irqLine     bool

	dma dmaState

	CycleCount uint64

	Logger *logrus.Logger
	Trace  Trace

	// DMAAlignOverride forces the DMA-trigger alignment decision instead
	// of deriving it from CycleCount's parity, when non-nil. Existing
	// only so test harnesses and the CLI's --dma-align flag can pin down
	// otherwise CycleCount-dependent (513 vs. 512 cycle) DMA timing.
	DMAAlignOverride *bool
}

type dmaState struct {
	active      bool
	needsAlign  bool
	page        byte
	offset      uint16
	buffer      byte
	readPending bool
}

// NewCpu6502 constructs a CPU wired to bus. Logger defaults to a
// warn-level logrus logger writing to stderr and Trace to NopTrace;
// callers replace them to change diagnostics.
func NewCpu6502(bus Bus) *Cpu6502 {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Cpu6502{
		bus:    bus,
		Logger: logger,
		Trace:  NopTrace{},
	}
}

func (c *Cpu6502) getFlag(f SF6502) bool {
	return c.Status&byte(f) != 0
}

func (c *Cpu6502) setFlag(f SF6502, v bool) {
	if v {
		c.Status |= byte(f)
	} else {
		c.Status &^= byte(f)
	}
}

func (c *Cpu6502) setZN(v byte) {
	c.setFlag(StatusFlagZ, v == 0)
	c.setFlag(StatusFlagN, v&0x80 != 0)
}

func (c *Cpu6502) push(v byte) {
	c.bus.CpuWrite(stackBase+uint16(c.Sp), v)
	c.Sp--
}

func (c *Cpu6502) pop() byte {
	c.Sp++
	return c.bus.CpuRead(stackBase + uint16(c.Sp))
}

// Reset decrements Sp by 3 (0x00 -> 0xFD on a freshly constructed CPU),
// sets the I flag, and loads Pc from the reset vector through the bus
// mapper, so a cartridge's NROM window is free to remap 0xFFFC/0xFFFD.
// Execution restarts at Fetch; all other state is left unchanged.
func (c *Cpu6502) Reset() {
	c.Status |= byte(StatusFlagX) | byte(StatusFlagI)
	c.Sp -= 3
	lo := c.bus.CpuRead(0xFFFC)
	hi := c.bus.CpuRead(0xFFFD)
	c.Pc = uint16(hi)<<8 | uint16(lo)
	c.phase = Fetch
}

// RaiseNMI notifies the CPU of the PPU's NMI output line. NMI is edge
// triggered: only a false-to-true transition latches a pending NMI.
func (c *Cpu6502) RaiseNMI(line bool) {
	if line && !c.prevNMILine {
		c.nmiLatched = true
	}
	c.prevNMILine = line
}

// SetIRQ sets the level of the shared IRQ line. Unlike NMI, IRQ is
// level-sensitive and masked by the I flag.
func (c *Cpu6502) SetIRQ(level bool) {
	c.irqLine = level
}

// NMIPending reports whether a latched NMI is still awaiting service.
func (c *Cpu6502) NMIPending() bool {
	return c.nmiLatched
}

// IRQLevel reports the current level of the IRQ line.
func (c *Cpu6502) IRQLevel() bool {
	return c.irqLine
}

// TriggerDMA starts an OAM DMA transfer from page*0x100. The CPU stalls
// for 513 or 512 cycles depending on whether the current cycle count is
// odd (§4.2 DMA alignment rule) and resumes exactly where it left off.
// DMAAlignOverride, when set, replaces the parity check outright.
func (c *Cpu6502) TriggerDMA(page byte) {
	needsAlign := c.CycleCount%2 == 1
	if c.DMAAlignOverride != nil {
		needsAlign = *c.DMAAlignOverride
	}
	c.dma = dmaState{
		active:      true,
		needsAlign:  needsAlign,
		page:        page,
		offset:      0,
		readPending: true,
	}
}

// Tick executes exactly one bus cycle.
func (c *Cpu6502) Tick() {
	c.CycleCount++

	if c.dma.active {
		c.stepDMA()
		return
	}

	switch c.phase {
	case Fetch:
		c.stepFetch()
	case Accumulator:
		c.stepAccumulator()
	case Immediate:
		c.stepImmediate()
	case Branch:
		c.stepBranch()
	case Branch2:
		c.stepBranch2()
	case ZeroBase:
		c.stepZeroBase()
	case ZeroIndexed:
		c.stepZeroIndexed()
	case AbsLow:
		c.stepAbsLow()
	case AbsHigh:
		c.stepAbsHigh()
	case AbsIdxHigh:
		c.stepAbsIdxHigh()
	case AbsFixup:
		c.stepAbsFixup()
	case RmwRead:
		c.stepRmwRead()
	case RmwWrite:
		c.stepRmwWrite()
	case IndexedPtr:
		c.stepIndexedPtr()
	case IndexedPtrAdd:
		c.stepIndexedPtrAdd()
	case IndexedLow:
		c.stepIndexedLow()
	case IndexedHigh:
		c.stepIndexedHigh()
	case IndIdxPtr:
		c.stepIndIdxPtr()
	case IndIdxLow:
		c.stepIndIdxLow()
	case IndIdxHigh:
		c.stepIndIdxHigh()
	case IndIdxFixup:
		c.stepIndIdxFixup()
	case IndirectLow:
		c.stepIndirectLow()
	case IndirectHigh:
		c.stepIndirectHigh()
	case IndirectReadLow:
		c.stepIndirectReadLow()
	case IndirectReadHigh:
		c.stepIndirectReadHigh()
	case Read:
		c.stepRead()
	case Exec1:
		c.stepExec1()
	case Exec2:
		c.stepExec2()
	case Exec3:
		c.stepExec3()
	case Exec4:
		c.stepExec4()
	case Exec5:
		c.stepExec5()
	case Exec6:
		c.stepExec6()
	}
}

func (c *Cpu6502) stepDMA() {
	if c.dma.needsAlign {
		c.bus.CpuRead(c.Pc)
		c.dma.needsAlign = false
		return
	}
	if c.dma.readPending {
		addr := uint16(c.dma.page)<<8 | c.dma.offset
		c.dma.buffer = c.bus.CpuRead(addr)
		c.dma.readPending = false
		return
	}
	c.bus.DMAWrite(byte(c.dma.offset), c.dma.buffer)
	c.dma.offset++
	c.dma.readPending = true
	if c.dma.offset == 256 {
		c.dma = dmaState{}
	}
}

// stepFetch begins a new instruction, unless a pending interrupt takes
// priority: NMI over level-sensitive IRQ, both ahead of opcode decode.
func (c *Cpu6502) stepFetch() {
	if c.nmiLatched {
		c.nmiLatched = false
		c.bus.CpuRead(c.Pc)
		c.beginInterrupt(0xFFFA, false)
		return
	}
	if c.irqLine && !c.getFlag(StatusFlagI) {
		c.bus.CpuRead(c.Pc)
		c.beginInterrupt(0xFFFE, false)
		return
	}

	opcode := c.bus.CpuRead(c.Pc)
	c.Pc++
	entry := instLookup[opcode]
	c.op, c.mode = entry.Op, entry.Mode
	c.kind = kindFor(c.op, c.mode)
	c.Trace.OnFetch(c, opcode)

	switch c.kind {
	case KindImplied:
		c.phase = Read
	case KindAccumulator:
		c.phase = Accumulator
	case KindBranch:
		c.phase = Branch
	case KindJSR:
		c.phase = AbsLow
	case KindRTS:
		c.phase = Exec1
	case KindRTI:
		c.phase = Exec1
	case KindBRK:
		c.interruptIsBRK = true
		c.interruptVector = 0xFFFE
		c.phase = Exec1
	case KindPHA, KindPHP:
		c.phase = Read
	case KindPLA, KindPLP:
		c.phase = Read
	case KindIllegal:
		c.Logger.WithField("opcode", opcode).Warn("unrecognized opcode, treating as NOP")
		c.phase = Read
	default:
		switch c.mode {
		case IMM:
			c.phase = Immediate
		case ZP0:
			c.phase = ZeroBase
		case ZPX, ZPY:
			c.phase = ZeroBase
		case ABS:
			c.phase = AbsLow
		case ABX, ABY:
			c.phase = AbsLow
		case IND:
			c.phase = IndirectLow
		case IZX:
			c.phase = IndexedPtr
		case IZY:
			c.phase = IndIdxPtr
		default:
			c.phase = Read
		}
	}
}

func (c *Cpu6502) beginInterrupt(vector uint16, isBRK bool) {
	c.kind = KindBRK
	c.interruptIsBRK = isBRK
	c.interruptVector = vector
	c.phase = Exec1
}

func (c *Cpu6502) stepAccumulator() {
	c.bus.CpuRead(c.Pc)
	c.A = c.aluShiftRotate(c.op, c.A)
	c.phase = Fetch
}

func (c *Cpu6502) stepImmediate() {
	c.fetched = c.bus.CpuRead(c.Pc)
	c.Pc++
	c.executeRead(c.fetched)
	c.phase = Fetch
}

func (c *Cpu6502) stepBranch() {
	offset := c.bus.CpuRead(c.Pc)
	c.Pc++
	if !c.branchTaken() {
		c.phase = Fetch
		return
	}
	c.addrRel = int16(int8(offset))
	c.addrAbs = uint16(int32(c.Pc) + int32(c.addrRel))
	c.pageCrossed = (c.addrAbs & 0xFF00) != (c.Pc & 0xFF00)
	c.phase = AbsFixup
}

func (c *Cpu6502) branchTaken() bool {
	switch c.op {
	case OpBCC:
		return !c.getFlag(StatusFlagC)
	case OpBCS:
		return c.getFlag(StatusFlagC)
	case OpBEQ:
		return c.getFlag(StatusFlagZ)
	case OpBNE:
		return !c.getFlag(StatusFlagZ)
	case OpBMI:
		return c.getFlag(StatusFlagN)
	case OpBPL:
		return !c.getFlag(StatusFlagN)
	case OpBVC:
		return !c.getFlag(StatusFlagV)
	case OpBVS:
		return c.getFlag(StatusFlagV)
	}
	return false
}

// stepAbsFixup is the branch-taken dummy-read/page-cross-check phase.
// Absolute-indexed page-cross correction is handled separately by
// stepAbsIdxHigh; the two don't share a phase.
// On a page cross, Pc is left with the target's low byte but the old
// page's high byte, and stepBranch2 dummy-reads there before correcting it.
func (c *Cpu6502) stepAbsFixup() {
	c.bus.CpuRead(c.Pc)
	if c.pageCrossed {
		c.Pc = (c.Pc & 0xFF00) | (c.addrAbs & 0x00FF)
		c.phase = Branch2
		return
	}
	c.Pc = c.addrAbs
	c.phase = Fetch
}

func (c *Cpu6502) stepBranch2() {
	c.bus.CpuRead(c.Pc)
	c.Pc = c.addrAbs
	c.phase = Fetch
}

func (c *Cpu6502) stepZeroBase() {
	base := c.bus.CpuRead(c.Pc)
	c.Pc++
	if c.mode == ZPX || c.mode == ZPY {
		c.addrAbs = uint16(base)
		c.phase = ZeroIndexed
		return
	}
	c.addrAbs = uint16(base)
	c.dispatchOperand()
}

func (c *Cpu6502) stepZeroIndexed() {
	c.bus.CpuRead(c.addrAbs)
	idx := c.X
	if c.mode == ZPY {
		idx = c.Y
	}
	c.addrAbs = uint16(byte(c.addrAbs) + idx)
	c.dispatchOperand()
}

func (c *Cpu6502) stepAbsLow() {
	lo := c.bus.CpuRead(c.Pc)
	c.Pc++
	c.addrAbs = uint16(lo)
	if c.kind == KindJSR {
		c.phase = Exec1
		return
	}
	c.phase = AbsHigh
}

func (c *Cpu6502) stepAbsHigh() {
	hi := c.bus.CpuRead(c.Pc)
	c.Pc++
	base := c.addrAbs | uint16(hi)<<8

	switch c.mode {
	case ABX, ABY:
		idx := c.X
		if c.mode == ABY {
			idx = c.Y
		}
		c.addrAbs = (base & 0xFF00) | uint16(byte(base)+idx)
		c.pageCrossed = (byte(base) + idx) < byte(base)
		if !c.pageCrossed && c.kind == KindRead {
			c.phase = Read
			return
		}
		c.phase = AbsIdxHigh
		return
	}
	c.addrAbs = base

	if c.kind == KindJmpAbs {
		c.Pc = c.addrAbs
		c.phase = Fetch
		return
	}
	c.dispatchOperand()
}

// stepAbsIdxHigh only runs when the extra bus cycle is required: either
// the index carried into the high byte, or the kind (write/RMW) always
// takes it regardless of carry. addrAbs still holds the uncorrected
// (pre-carry) address, which is what real hardware dummy-reads here.
func (c *Cpu6502) stepAbsIdxHigh() {
	c.bus.CpuRead(c.addrAbs)
	if c.pageCrossed {
		c.addrAbs += 0x0100
	}
	if c.kind == KindRMW {
		c.phase = RmwRead
		return
	}
	c.phase = Read
}

func (c *Cpu6502) dispatchOperand() {
	switch c.kind {
	case KindRMW:
		c.phase = RmwRead
	default:
		c.phase = Read
	}
}

func (c *Cpu6502) stepRmwRead() {
	c.fetched = c.bus.CpuRead(c.addrAbs)
	c.phase = RmwWrite
}

func (c *Cpu6502) stepRmwWrite() {
	c.bus.CpuWrite(c.addrAbs, c.fetched)
	c.phase = Read
}

func (c *Cpu6502) stepIndexedPtr() {
	base := c.bus.CpuRead(c.Pc)
	c.Pc++
	c.ptr = uint16(base)
	c.phase = IndexedPtrAdd
}

func (c *Cpu6502) stepIndexedPtrAdd() {
	c.bus.CpuRead(c.ptr)
	c.ptr = uint16(byte(c.ptr) + c.X)
	c.phase = IndexedLow
}

func (c *Cpu6502) stepIndexedLow() {
	lo := c.bus.CpuRead(c.ptr)
	c.addrAbs = uint16(lo)
	c.phase = IndexedHigh
}

func (c *Cpu6502) stepIndexedHigh() {
	hi := c.bus.CpuRead(uint16(byte(c.ptr) + 1))
	c.addrAbs |= uint16(hi) << 8
	c.dispatchOperand()
}

func (c *Cpu6502) stepIndIdxPtr() {
	base := c.bus.CpuRead(c.Pc)
	c.Pc++
	c.ptr = uint16(base)
	c.phase = IndIdxLow
}

func (c *Cpu6502) stepIndIdxLow() {
	lo := c.bus.CpuRead(c.ptr)
	c.addrAbs = uint16(lo)
	c.phase = IndIdxHigh
}

func (c *Cpu6502) stepIndIdxHigh() {
	hi := c.bus.CpuRead(uint16(byte(c.ptr) + 1))
	base := uint16(hi)<<8 | (c.addrAbs & 0x00FF)
	indexed := base + uint16(c.Y)
	c.pageCrossed = (indexed & 0xFF00) != (base & 0xFF00)
	c.addrAbs = indexed

	if c.kind != KindRead || c.pageCrossed {
		c.phase = IndIdxFixup
		return
	}
	c.dispatchOperand()
}

func (c *Cpu6502) stepIndIdxFixup() {
	uncorrected := c.addrAbs
	if c.pageCrossed {
		uncorrected -= 0x0100
	}
	c.bus.CpuRead(uncorrected)
	c.dispatchOperand()
}

func (c *Cpu6502) stepIndirectLow() {
	lo := c.bus.CpuRead(c.Pc)
	c.Pc++
	c.ptr = uint16(lo)
	c.phase = IndirectHigh
}

func (c *Cpu6502) stepIndirectHigh() {
	hi := c.bus.CpuRead(c.Pc)
	c.Pc++
	c.ptr |= uint16(hi) << 8
	c.phase = IndirectReadLow
}

func (c *Cpu6502) stepIndirectReadLow() {
	lo := c.bus.CpuRead(c.ptr)
	c.addrAbs = uint16(lo)
	c.phase = IndirectReadHigh
}

// stepIndirectReadHigh reproduces the classic 6502 JMP (IND) bug: if the
// pointer's low byte is 0xFF, the high-byte fetch wraps within the same
// page instead of crossing into the next one.
func (c *Cpu6502) stepIndirectReadHigh() {
	hiAddr := (c.ptr & 0xFF00) | uint16(byte(c.ptr)+1)
	hi := c.bus.CpuRead(hiAddr)
	c.addrAbs |= uint16(hi) << 8
	c.Pc = c.addrAbs
	c.phase = Fetch
}

// stepRead is the terminal phase for read, write, push, and pull kinds:
// by the time it runs, addrAbs (or the stack) holds the operand address.
func (c *Cpu6502) stepRead() {
	switch c.kind {
	case KindImplied:
		c.bus.CpuRead(c.Pc)
		c.executeImplied()
		c.phase = Fetch
	case KindWrite:
		c.bus.CpuWrite(c.addrAbs, c.storeValue())
		c.phase = Fetch
	case KindRMW:
		var v byte
		switch c.op {
		case OpINC:
			v = c.fetched + 1
			c.setZN(v)
		case OpDEC:
			v = c.fetched - 1
			c.setZN(v)
		default:
			v = c.aluShiftRotate(c.op, c.fetched)
		}
		c.bus.CpuWrite(c.addrAbs, v)
		c.phase = Fetch
	case KindPHA:
		c.bus.CpuRead(c.Pc)
		c.phase = Exec1
	case KindPHP:
		c.bus.CpuRead(c.Pc)
		c.phase = Exec1
	case KindPLA:
		c.bus.CpuRead(c.Pc)
		c.phase = Exec1
	case KindPLP:
		c.bus.CpuRead(c.Pc)
		c.phase = Exec1
	case KindIllegal:
		c.bus.CpuRead(c.Pc)
		c.phase = Fetch
	default:
		v := c.bus.CpuRead(c.addrAbs)
		c.executeRead(v)
		c.phase = Fetch
	}
}

func (c *Cpu6502) storeValue() byte {
	switch c.op {
	case OpSTA:
		return c.A
	case OpSTX:
		return c.X
	case OpSTY:
		return c.Y
	}
	return 0
}

func (c *Cpu6502) executeImplied() {
	switch c.op {
	case OpCLC:
		c.setFlag(StatusFlagC, false)
	case OpCLD:
		c.setFlag(StatusFlagD, false)
	case OpCLI:
		c.setFlag(StatusFlagI, false)
	case OpCLV:
		c.setFlag(StatusFlagV, false)
	case OpSEC:
		c.setFlag(StatusFlagC, true)
	case OpSED:
		c.setFlag(StatusFlagD, true)
	case OpSEI:
		c.setFlag(StatusFlagI, true)
	case OpNOP:
	case OpINX:
		c.X++
		c.setZN(c.X)
	case OpINY:
		c.Y++
		c.setZN(c.Y)
	case OpDEX:
		c.X--
		c.setZN(c.X)
	case OpDEY:
		c.Y--
		c.setZN(c.Y)
	case OpTAX:
		c.X = c.A
		c.setZN(c.X)
	case OpTAY:
		c.Y = c.A
		c.setZN(c.Y)
	case OpTXA:
		c.A = c.X
		c.setZN(c.A)
	case OpTYA:
		c.A = c.Y
		c.setZN(c.A)
	case OpTSX:
		c.X = c.Sp
		c.setZN(c.X)
	case OpTXS:
		c.Sp = c.X
	}
}

func (c *Cpu6502) executeRead(v byte) {
	switch c.op {
	case OpLDA:
		c.A = v
		c.setZN(c.A)
	case OpLDX:
		c.X = v
		c.setZN(c.X)
	case OpLDY:
		c.Y = v
		c.setZN(c.Y)
	case OpADC:
		c.aluADC(v)
	case OpSBC:
		c.aluSBC(v)
	case OpAND:
		c.A &= v
		c.setZN(c.A)
	case OpORA:
		c.A |= v
		c.setZN(c.A)
	case OpEOR:
		c.A ^= v
		c.setZN(c.A)
	case OpCMP:
		c.aluCompare(c.A, v)
	case OpCPX:
		c.aluCompare(c.X, v)
	case OpCPY:
		c.aluCompare(c.Y, v)
	case OpBIT:
		c.aluBIT(v)
	}
}

func (c *Cpu6502) stepExec1() {
	switch c.kind {
	case KindJSR:
		c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.phase = Exec2
	case KindRTS, KindRTI:
		c.bus.CpuRead(c.Pc)
		c.phase = Exec2
	case KindBRK:
		if c.interruptIsBRK {
			c.bus.CpuRead(c.Pc)
			c.Pc++
		} else {
			c.bus.CpuRead(c.Pc)
		}
		c.phase = Exec2
	case KindPHA:
		c.push(c.A)
		c.phase = Fetch
	case KindPHP:
		c.push(c.Status | byte(StatusFlagB) | byte(StatusFlagX))
		c.phase = Fetch
	case KindPLA:
		c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.phase = Exec2
	case KindPLP:
		c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.phase = Exec2
	}
}

func (c *Cpu6502) stepExec2() {
	switch c.kind {
	case KindJSR:
		c.push(byte(c.Pc >> 8))
		c.phase = Exec3
	case KindRTS, KindRTI:
		c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.phase = Exec3
	case KindBRK:
		c.push(byte(c.Pc >> 8))
		c.phase = Exec3
	case KindPLA:
		c.A = c.pop()
		c.setZN(c.A)
		c.phase = Fetch
	case KindPLP:
		pulled := c.pop()
		c.Status = (pulled &^ byte(StatusFlagB)) | byte(StatusFlagX)
		c.phase = Fetch
	}
}

func (c *Cpu6502) stepExec3() {
	switch c.kind {
	case KindJSR:
		c.push(byte(c.Pc))
		c.phase = Exec4
	case KindRTS:
		c.Sp++
		lo := c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.temp = lo
		c.phase = Exec4
	case KindRTI:
		c.Sp++
		pulled := c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.Status = (pulled &^ byte(StatusFlagB)) | byte(StatusFlagX)
		c.phase = Exec4
	case KindBRK:
		c.push(byte(c.Pc))
		c.phase = Exec4
	}
}

func (c *Cpu6502) stepExec4() {
	switch c.kind {
	case KindJSR:
		hi := c.bus.CpuRead(c.Pc)
		c.Pc = uint16(hi)<<8 | c.addrAbs
		c.phase = Fetch
	case KindRTS:
		c.Sp++
		hi := c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.Pc = uint16(hi)<<8 | uint16(c.temp)
		c.phase = Exec5
	case KindRTI:
		c.Sp++
		lo := c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.temp = lo
		c.phase = Exec5
	case KindBRK:
		brkStatus := c.Status | byte(StatusFlagX)
		if c.interruptIsBRK {
			brkStatus |= byte(StatusFlagB)
		}
		c.push(brkStatus)
		c.setFlag(StatusFlagI, true)
		c.phase = Exec5
	}
}

func (c *Cpu6502) stepExec5() {
	switch c.kind {
	case KindRTS:
		c.bus.CpuRead(c.Pc)
		c.Pc++
		c.phase = Fetch
	case KindRTI:
		c.Sp++
		hi := c.bus.CpuRead(stackBase + uint16(c.Sp))
		c.Pc = uint16(hi)<<8 | uint16(c.temp)
		c.phase = Fetch
	case KindBRK:
		lo := c.bus.CpuRead(c.interruptVector)
		c.temp = lo
		c.phase = Exec6
	}
}

func (c *Cpu6502) stepExec6() {
	hi := c.bus.CpuRead(c.interruptVector + 1)
	c.Pc = uint16(hi)<<8 | uint16(c.temp)
	c.phase = Fetch
}
