package nes

// PictureGenerator is the CPU-facing register file of the picture
// processing unit. It deliberately does not produce pixels: real pixel
// generation is out of scope (§1 Non-goals). Grounded on the teacher's
// nes/ppu.go cpuRead/cpuWrite switch, whose eight empty cases become the
// eight methods below, plus DMAWrite for the OAM DMA sink the teacher's
// stub never implemented.
//
// References:
// http://wiki.nesdev.com/w/index.php/PPU_registers
type PictureGenerator interface {
	ReadCtrl() byte
	WriteCtrl(v byte)
	ReadMask() byte
	WriteMask(v byte)
	ReadStatus() byte
	WriteStatus(v byte)
	ReadOAMAddr() byte
	WriteOAMAddr(v byte)
	ReadOAMData() byte
	WriteOAMData(v byte)
	ReadScroll() byte
	WriteScroll(v byte)
	ReadAddr() byte
	WriteAddr(v byte)
	ReadData() byte
	WriteData(v byte)
	DMAWrite(oamAddr byte, v byte)
}

// NullPictureGenerator satisfies PictureGenerator with inert registers:
// writes are latched and reads return the last value written to that
// register, which is close enough to open-bus behavior for callers that
// never wire a real PPU in.
type NullPictureGenerator struct {
	ctrl, mask, status, oamAddr, oamData, scroll, addr, data byte
}

func (n *NullPictureGenerator) ReadCtrl() byte      { return n.ctrl }
func (n *NullPictureGenerator) WriteCtrl(v byte)    { n.ctrl = v }
func (n *NullPictureGenerator) ReadMask() byte      { return n.mask }
func (n *NullPictureGenerator) WriteMask(v byte)    { n.mask = v }
func (n *NullPictureGenerator) ReadStatus() byte    { return n.status }
func (n *NullPictureGenerator) WriteStatus(v byte)  { n.status = v }
func (n *NullPictureGenerator) ReadOAMAddr() byte   { return n.oamAddr }
func (n *NullPictureGenerator) WriteOAMAddr(v byte) { n.oamAddr = v }
func (n *NullPictureGenerator) ReadOAMData() byte   { return n.oamData }
func (n *NullPictureGenerator) WriteOAMData(v byte) { n.oamData = v }
func (n *NullPictureGenerator) ReadScroll() byte    { return n.scroll }
func (n *NullPictureGenerator) WriteScroll(v byte)  { n.scroll = v }
func (n *NullPictureGenerator) ReadAddr() byte      { return n.addr }
func (n *NullPictureGenerator) WriteAddr(v byte)    { n.addr = v }
func (n *NullPictureGenerator) ReadData() byte      { return n.data }
func (n *NullPictureGenerator) WriteData(v byte)    { n.data = v }
func (n *NullPictureGenerator) DMAWrite(_ byte, v byte) {
	n.oamData = v
}
