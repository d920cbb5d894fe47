// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper003 is CNROM: 8 KiB CHR bank switched at $8000, PRG fixed.
type Mapper003 struct {
	*Cartridge
	chrBank  int
	prgBank1 int
	prgBank2 int
}

func NewMapper003(cartridge *Cartridge) Mapper {
	prgBanks := len(cartridge.PRG) / 0x4000
	return &Mapper003{
		Cartridge: cartridge,
		chrBank:   0,
		prgBank1:  0,
		prgBank2:  prgBanks - 1,
	}
}

func (m *Mapper003) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder, m.chrBank, m.prgBank1, m.prgBank2)
}

func (m *Mapper003) Load(decoder *gob.Decoder) error {
	return decodeFields(decoder, &m.chrBank, &m.prgBank1, &m.prgBank2)
}

func (m *Mapper003) Step() {
}

func (m *Mapper003) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		index := m.chrBank*0x2000 + int(address)
		return m.CHR[index]
	case address >= 0xC000:
		index := m.prgBank2*0x4000 + int(address-0xC000)
		return m.PRG[index]
	case address >= 0x8000:
		index := m.prgBank1*0x4000 + int(address-0x8000)
		return m.PRG[index]
	case address >= 0x6000:
		return m.SRAM[int(address)-0x6000]
	default:
		log.Fatalf("unhandled mapper003 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper003) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		index := m.chrBank*0x2000 + int(address)
		m.WriteCHR(uint32(index), value)
	case address >= 0x8000:
		m.chrBank = int(value & 3)
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper003 write at address: 0x%04X", address)
	}
}
