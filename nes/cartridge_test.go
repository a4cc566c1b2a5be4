package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCartridgeRejectsBadMagic(t *testing.T) {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	data[0] = 'X'
	_, err := LoadCartridge(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestLoadCartridgeRejectsUnsupportedMapper(t *testing.T) {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	data[6] = 0x10 // mapper 1 low nibble
	_, err := LoadCartridge(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestLoadCartridgeRejectsVSUnisystem(t *testing.T) {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	data[7] = 0x01
	_, err := LoadCartridge(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestLoadCartridgeRejectsTruncatedPrg(t *testing.T) {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	data = data[:len(data)-100]
	_, err := LoadCartridge(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestLoadCartridgeLoadsTrainerIntoRamWindow(t *testing.T) {
	prg := make([]byte, 16*1024)
	header := make([]byte, 16)
	copy(header[0:4], iNESMagic[:])
	header[4] = 1
	header[5] = 0
	header[6] = 0x04 // trainer present

	trainer := make([]byte, 512)
	for i := range trainer {
		trainer[i] = 0xAB
	}

	data := append(header, trainer...)
	data = append(data, prg...)

	cart, err := LoadCartridge(data)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), cart.ram[0])
	assert.Equal(t, byte(0xAB), cart.ram[511])
}

func TestLoadCartridgeChrRamWhenNoChrBanks(t *testing.T) {
	data := buildINES(make([]byte, 16*1024), 0x8000)
	cart, err := LoadCartridge(data)
	require.NoError(t, err)
	assert.Equal(t, chrBankSize, len(cart.chrMem))
}
