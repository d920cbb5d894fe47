// refs: github.com/fogleman/nes
package famicore

import "encoding/gob"

const (
	MIRROR_HORIZONTAL = 0
	MIRROR_VERTICAL   = 1
	MIRROR_SINGLE0    = 2
	MIRROR_SINGLE1    = 3
	MIRROR_FOUR       = 4
)

// MirrorLookup maps (mirroring mode, nametable index) to the physical
// nametable backing it. The console carries 2 KiB of nametable RAM that the
// four logical tables alias onto; four-screen cartridges bring their own VRAM
// so all four tables are distinct.
var MirrorLookup = [5][4]uint16{
	{0, 0, 1, 1},
	{0, 1, 0, 1},
	{0, 0, 0, 0},
	{1, 1, 1, 1},
	{0, 1, 2, 3},
}

func MirrorAddress(mode byte, address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return 0x2000 + MirrorLookup[mode][table]*0x0400 + offset
}

// Bus routes the CPU and PPU address spaces. Every routed read or write
// latches its value so unmapped regions can return the open-bus value some
// games probe for.
type Bus struct {
	CPU         *CPU
	PPU         *PPU
	APU         *APU
	Controller1 *Controller
	Controller2 *Controller
	Cartridge   *Cartridge
	WRAM        [2048]byte // 2 KiB, mirrored across $0000-$1FFF
	openBus     byte
}

func NewBus(cpu *CPU, ppu *PPU, apu *APU, controller1, controller2 *Controller, cartridge *Cartridge) *Bus {
	return &Bus{
		CPU:         cpu,
		PPU:         ppu,
		APU:         apu,
		Controller1: controller1,
		Controller2: controller2,
		Cartridge:   cartridge,
	}
}

func (b *Bus) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder, b.WRAM, b.openBus)
}

func (b *Bus) Load(decoder *gob.Decoder) error {
	return decodeFields(decoder, &b.WRAM, &b.openBus)
}

func (b *Bus) ReadMemory(address uint16) byte {
	var value byte

	switch {
	case address < 0x2000:
		// $0000-$1FFF: internal RAM mirrored every $800
		value = b.WRAM[address&0x07FF]
	case address < 0x4000:
		// $2000-$3FFF: PPU registers mirrored every 8 bytes
		value = b.PPU.readRegister(0x2000 + address%8)
	case address == 0x4014:
		// write-only DMA port
		value = b.openBus
	case address == 0x4015:
		value = b.APU.readRegister(address)
	case address == 0x4016:
		value = b.Controller1.Read()
	case address == 0x4017:
		value = b.Controller2.Read()
	case address < 0x4014:
		// $4000-$4013: write-only APU channel registers
		value = b.openBus
	case address < 0x6000:
		// $4018-$5FFF: unmapped on a stock console
		value = b.openBus
	default:
		// $6000-$FFFF
		value = b.Cartridge.Mapper.Read(address)
	}

	b.openBus = value
	return value
}

func (b *Bus) WriteMemory(address uint16, value byte) {
	b.openBus = value

	switch {
	case address < 0x2000:
		b.WRAM[address&0x07FF] = value
	case address < 0x4000:
		b.PPU.writeRegister(0x2000+address%8, value)
	case address < 0x4014:
		b.APU.writeRegister(address, value)
	case address == 0x4014:
		b.PPU.writeRegister(address, value)
	case address == 0x4015:
		b.APU.writeRegister(address, value)
	case address == 0x4016:
		b.Controller1.Write(value)
		b.Controller2.Write(value)
	case address == 0x4017:
		b.APU.writeRegister(address, value)
	case address < 0x6000:
		// $4018-$5FFF: unmapped, write dropped
	default:
		b.Cartridge.Mapper.Write(address, value)
	}
}

func (b *Bus) ReadMemory16(address uint16) uint16 {
	lo := uint16(b.ReadMemory(address))
	hi := uint16(b.ReadMemory(address + 1))
	return hi<<8 | lo
}

// ReadVRAM reads the PPU address space: pattern tables through the mapper,
// nametables with the cartridge's mirroring applied, palette RAM on top.
func (b *Bus) ReadVRAM(address uint16) byte {
	address = address % 0x4000
	switch {
	case address < 0x2000:
		return b.Cartridge.Mapper.Read(address)
	case address < 0x3F00:
		mode := b.Cartridge.Mirror
		return b.PPU.nameTableData[MirrorAddress(mode, address)%4096]
	default:
		return b.PPU.readPalette(address % 32)
	}
}

func (b *Bus) WriteVRAM(address uint16, value byte) {
	address = address % 0x4000
	switch {
	case address < 0x2000:
		b.Cartridge.Mapper.Write(address, value)
	case address < 0x3F00:
		mode := b.Cartridge.Mirror
		b.PPU.nameTableData[MirrorAddress(mode, address)%4096] = value
	default:
		b.PPU.writePalette(address%32, value)
	}
}
