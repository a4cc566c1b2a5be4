package nes

// Phase names the current step of the micro-sequencer. Exactly one phase
// is active at a time; Tick dispatches on it and, except where noted,
// performs one bus transaction before moving to the next phase.
//
// DMA alignment/copy is not a Phase: Tick short-circuits into stepDMA
// whenever dma.active is set, independent of the phase the sequencer
// was in when the DMA trigger landed, and restores that phase once the
// 256-byte copy completes.
type Phase int

const (
	Fetch Phase = iota
	Accumulator
	Immediate
	Branch
	Branch2
	ZeroBase
	ZeroIndexed
	AbsLow
	AbsHigh
	AbsIdxHigh
	AbsFixup
	RmwRead
	RmwWrite
	IndexedPtr
	IndexedPtrAdd
	IndexedLow
	IndexedHigh
	IndIdxPtr
	IndIdxLow
	IndIdxHigh
	IndIdxFixup
	IndirectLow
	IndirectHigh
	IndirectReadLow
	IndirectReadHigh
	Read
	Exec1
	Exec2
	Exec3
	Exec4
	Exec5
	Exec6
)

func (p Phase) String() string {
	switch p {
	case Fetch:
		return "Fetch"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Branch:
		return "Branch"
	case Branch2:
		return "Branch2"
	case ZeroBase:
		return "ZeroBase"
	case ZeroIndexed:
		return "ZeroIndexed"
	case AbsLow:
		return "AbsLow"
	case AbsHigh:
		return "AbsHigh"
	case AbsIdxHigh:
		return "AbsIdxHigh"
	case AbsFixup:
		return "AbsFixup"
	case RmwRead:
		return "RmwRead"
	case RmwWrite:
		return "RmwWrite"
	case IndexedPtr:
		return "IndexedPtr"
	case IndexedPtrAdd:
		return "IndexedPtrAdd"
	case IndexedLow:
		return "IndexedLow"
	case IndexedHigh:
		return "IndexedHigh"
	case IndIdxPtr:
		return "IndIdxPtr"
	case IndIdxLow:
		return "IndIdxLow"
	case IndIdxHigh:
		return "IndIdxHigh"
	case IndIdxFixup:
		return "IndIdxFixup"
	case IndirectLow:
		return "IndirectLow"
	case IndirectHigh:
		return "IndirectHigh"
	case IndirectReadLow:
		return "IndirectReadLow"
	case IndirectReadHigh:
		return "IndirectReadHigh"
	case Read:
		return "Read"
	case Exec1, Exec2, Exec3, Exec4, Exec5, Exec6:
		return "Exec" + string(rune('1'+int(p-Exec1)))
	default:
		return "Unknown"
	}
}
