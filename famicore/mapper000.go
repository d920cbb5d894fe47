// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper000 is NROM: no bank switching at all. 16 KiB images see the single
// PRG bank mirrored at $8000 and $C000, 32 KiB images map straight through.
type Mapper000 struct {
	*Cartridge
	prgBanks int
	prgBank1 int
	prgBank2 int
}

func NewMapper000(cartridge *Cartridge) Mapper {
	prgBanks := len(cartridge.PRG) / 0x4000
	return &Mapper000{
		Cartridge: cartridge,
		prgBanks:  prgBanks,
		prgBank1:  0,
		prgBank2:  prgBanks - 1,
	}
}

func (m *Mapper000) Save(encoder *gob.Encoder) error {
	return nil
}

func (m *Mapper000) Load(decoder *gob.Decoder) error {
	return nil
}

func (m *Mapper000) Step() {
}

func (m *Mapper000) Read(address uint16) byte {
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
		log.Fatalf("unhandled mapper000 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper000) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		m.WriteCHR(uint32(address), value)
	case address >= 0x8000:
		// no registers; writes to ROM are ignored
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper000 write at address: 0x%04X", address)
	}
}
