package nes

import "github.com/pkg/errors"

// Sentinel error kinds a cartridge load can fail with (§7). Callers use
// errors.Is against these; the loader wraps them with errors.Wrapf to
// attach positional/file context without losing the kind.
var (
	// ErrInvalidContainer means the file is not a well-formed iNES image:
	// short read, bad magic, or truncated PRG/CHR data.
	ErrInvalidContainer = errors.New("invalid cartridge container")

	// ErrUnsupportedVariant means the header declares an arcade variant
	// (the iNES 2.0 "VS Unisystem"/PlayChoice flag) this core rejects.
	ErrUnsupportedVariant = errors.New("unsupported cartridge variant")

	// ErrUnsupportedMapper means the header names a mapper id other than
	// 0 (NROM), the only mapper this core implements.
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

// errProgrammer panics: it is for a condition the caller violated rather
// than bad cartridge data. Per §7 these are not recoverable and are never
// wrapped into a returned error. No code path in this package calls it.
func errProgrammer(msg string) {
	panic("nes: programmer error: " + msg)
}
