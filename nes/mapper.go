package nes

// Mapper translates a CPU- or PPU-visible address into an offset into
// PRG/CHR memory. ok reports whether this mapper claims the address at
// all; the caller (Cartridge) is responsible for falling through to its
// own cartridge-RAM window when a mapper declines an address.
//
// This supersedes the teacher's nes/mapper.go, whose direct-return
// signature did not match the bool+pointer-out-param style its own
// mapper000.go actually implemented.
type Mapper interface {
	CpuMapRead(addr uint16) (mapped uint16, ok bool)
	CpuMapWrite(addr uint16) (mapped uint16, ok bool)
	PpuMapRead(addr uint16) (mapped uint16, ok bool)
	PpuMapWrite(addr uint16) (mapped uint16, ok bool)
}
