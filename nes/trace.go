package nes

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Trace is a format-agnostic hook the CPU calls once per fetched
// instruction (§6). Implementations decide what to do with the
// snapshot: drop it, format it as a nestest-style log line, or dump it
// with go-spew for debugging.
type Trace interface {
	OnFetch(c *Cpu6502, opcode byte)
}

// NopTrace discards every event; it's the default so tracing costs
// nothing unless a caller opts in.
type NopTrace struct{}

func (NopTrace) OnFetch(*Cpu6502, byte) {}

// SpewTrace writes a go-spew dump of the CPU's visible register state
// for every fetched opcode to w. Verbose but unambiguous, which is what
// you want while chasing a cycle-count mismatch against a reference log.
type SpewTrace struct {
	W    io.Writer
	conf *spew.ConfigState
}

func NewSpewTrace(w io.Writer) *SpewTrace {
	conf := spew.NewDefaultConfig()
	conf.Indent = ""
	conf.DisableMethods = true
	return &SpewTrace{W: w, conf: conf}
}

type traceSnapshot struct {
	Pc         uint16
	Opcode     byte
	A, X, Y    byte
	Sp         byte
	Status     byte
	CycleCount uint64
}

func (t *SpewTrace) OnFetch(c *Cpu6502, opcode byte) {
	snap := traceSnapshot{
		Pc:         c.Pc - 1, // Pc already advanced past the opcode byte
		Opcode:     opcode,
		A:          c.A,
		X:          c.X,
		Y:          c.Y,
		Sp:         c.Sp,
		Status:     c.Status,
		CycleCount: c.CycleCount,
	}
	fmt.Fprintln(t.W, t.conf.Sdump(snap))
}
