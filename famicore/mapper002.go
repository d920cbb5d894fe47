// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper002 is UxROM: 16 KiB PRG bank switched at $8000, last bank fixed at
// $C000, CHR unbanked.
type Mapper002 struct {
	*Cartridge
	prgBanks int
	prgBank1 int
	prgBank2 int
}

func NewMapper002(cartridge *Cartridge) Mapper {
	prgBanks := len(cartridge.PRG) / 0x4000
	return &Mapper002{
		Cartridge: cartridge,
		prgBanks:  prgBanks,
		prgBank1:  0,
		prgBank2:  prgBanks - 1,
	}
}

func (m *Mapper002) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder, m.prgBanks, m.prgBank1, m.prgBank2)
}

func (m *Mapper002) Load(decoder *gob.Decoder) error {
	return decodeFields(decoder, &m.prgBanks, &m.prgBank1, &m.prgBank2)
}

func (m *Mapper002) Step() {
}

func (m *Mapper002) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return m.CHR[address]
	case address >= 0xC000:
		index := m.prgBank2*0x4000 + int(address-0xC000)
		return m.PRG[index]
	case address >= 0x8000:
		index := m.prgBank1*0x4000 + int(address-0x8000)
		return m.PRG[index]
	case address >= 0x6000:
		return m.SRAM[int(address)-0x6000]
	default:
		log.Fatalf("unhandled mapper002 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper002) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		m.WriteCHR(uint32(address), value)
	case address >= 0x8000:
		m.prgBank1 = int(value) % m.prgBanks
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper002 write at address: 0x%04X", address)
	}
}
