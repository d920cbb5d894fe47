// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper007 is AxROM: 32 KiB PRG banks switched at $8000, single-screen
// mirroring with the page selected by bit 4 of the bank register.
type Mapper007 struct {
	*Cartridge
	prgBank int
}

func NewMapper007(cartridge *Cartridge) Mapper {
	return &Mapper007{
		Cartridge: cartridge,
		prgBank:   0,
	}
}

func (m *Mapper007) Save(encoder *gob.Encoder) error {
	return encoder.Encode(m.prgBank)
}

func (m *Mapper007) Load(decoder *gob.Decoder) error {
	return decoder.Decode(&m.prgBank)
}

func (m *Mapper007) Step() {
}

func (m *Mapper007) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return m.CHR[address]
	case address >= 0x8000:
		index := m.prgBank*0x8000 + int(address-0x8000)
		return m.PRG[index]
	case address >= 0x6000:
		return m.SRAM[int(address)-0x6000]
	default:
		log.Fatalf("unhandled mapper007 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper007) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		m.WriteCHR(uint32(address), value)
	case address >= 0x8000:
		m.prgBank = int(value & 7)
		switch value & 0x10 {
		case 0x00:
			m.Cartridge.Mirror = MIRROR_SINGLE0
		case 0x10:
			m.Cartridge.Mirror = MIRROR_SINGLE1
		}
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper007 write at address: 0x%04X", address)
	}
}
