// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper001 is MMC1. Registers are loaded serially: five writes to $8000+
// shift one bit each into a buffer, the fifth write commits to the register
// selected by the address. Switches 16 KiB PRG and 4 KiB CHR banks and
// drives the mirroring mode.
type Mapper001 struct {
	*Cartridge
	shiftRegister byte
	control       byte
	prgMode       byte
	chrMode       byte
	prgBank       byte
	chrBank0      byte
	chrBank1      byte
	prgOffsets    [2]int
	chrOffsets    [2]int
}

func NewMapper001(cartridge *Cartridge) Mapper {
	m := &Mapper001{Cartridge: cartridge}
	m.shiftRegister = 0x10
	m.prgOffsets[1] = m.prgBankOffset(-1)
	return m
}

func (m *Mapper001) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder,
		m.shiftRegister,
		m.control,
		m.prgMode,
		m.chrMode,
		m.prgBank,
		m.chrBank0,
		m.chrBank1,
		m.prgOffsets,
		m.chrOffsets,
	)
}

func (m *Mapper001) Load(decoder *gob.Decoder) error {
	return decodeFields(decoder,
		&m.shiftRegister,
		&m.control,
		&m.prgMode,
		&m.chrMode,
		&m.prgBank,
		&m.chrBank0,
		&m.chrBank1,
		&m.prgOffsets,
		&m.chrOffsets,
	)
}

func (m *Mapper001) Step() {
}

func (m *Mapper001) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		bank := address / 0x1000
		offset := address % 0x1000
		return m.CHR[m.chrOffsets[bank]+int(offset)]
	case address >= 0x8000:
		address = address - 0x8000
		bank := address / 0x4000
		offset := address % 0x4000
		return m.PRG[m.prgOffsets[bank]+int(offset)]
	case address >= 0x6000:
		return m.SRAM[int(address)-0x6000]
	default:
		log.Fatalf("unhandled mapper001 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper001) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		bank := address / 0x1000
		offset := address % 0x1000
		m.WriteCHR(uint32(m.chrOffsets[bank]+int(offset)), value)
	case address >= 0x8000:
		m.loadRegister(address, value)
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper001 write at address: 0x%04X", address)
	}
}

func (m *Mapper001) loadRegister(address uint16, value byte) {
	if value&0x80 == 0x80 {
		m.shiftRegister = 0x10
		m.writeControl(m.control | 0x0C)
	} else {
		complete := m.shiftRegister&1 == 1
		m.shiftRegister >>= 1
		m.shiftRegister |= (value & 1) << 4
		if complete {
			m.writeRegister(address, m.shiftRegister)
			m.shiftRegister = 0x10
		}
	}
}

func (m *Mapper001) writeRegister(address uint16, value byte) {
	switch {
	case address <= 0x9FFF:
		m.writeControl(value)
	case address <= 0xBFFF:
		// CHR bank 0 ($A000-$BFFF)
		m.chrBank0 = value
		m.updateOffsets()
	case address <= 0xDFFF:
		// CHR bank 1 ($C000-$DFFF)
		m.chrBank1 = value
		m.updateOffsets()
	case address <= 0xFFFF:
		// PRG bank ($E000-$FFFF)
		m.prgBank = value & 0x0F
		m.updateOffsets()
	}
}

// Control ($8000-$9FFF)
func (m *Mapper001) writeControl(value byte) {
	m.control = value
	m.chrMode = (value >> 4) & 1
	m.prgMode = (value >> 2) & 3
	mirror := value & 3
	switch mirror {
	case 0:
		m.Cartridge.Mirror = MIRROR_SINGLE0
	case 1:
		m.Cartridge.Mirror = MIRROR_SINGLE1
	case 2:
		m.Cartridge.Mirror = MIRROR_VERTICAL
	case 3:
		m.Cartridge.Mirror = MIRROR_HORIZONTAL
	}
	m.updateOffsets()
}

func (m *Mapper001) prgBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.PRG) / 0x4000
	offset := index * 0x4000
	if offset < 0 {
		offset += len(m.PRG)
	}
	return offset
}

func (m *Mapper001) chrBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.CHR) / 0x1000
	offset := index * 0x1000
	if offset < 0 {
		offset += len(m.CHR)
	}
	return offset
}

// PRG mode 0, 1: switch 32 KiB at $8000
// PRG mode 2: fix first bank at $8000, switch 16 KiB at $C000
// PRG mode 3: switch 16 KiB at $8000, fix last bank at $C000
// CHR mode 0: switch 8 KiB
// CHR mode 1: switch two separate 4 KiB banks
func (m *Mapper001) updateOffsets() {
	switch m.prgMode {
	case 0, 1:
		m.prgOffsets[0] = m.prgBankOffset(int(m.prgBank & 0xFE))
		m.prgOffsets[1] = m.prgBankOffset(int(m.prgBank | 0x01))
	case 2:
		m.prgOffsets[0] = 0
		m.prgOffsets[1] = m.prgBankOffset(int(m.prgBank))
	case 3:
		m.prgOffsets[0] = m.prgBankOffset(int(m.prgBank))
		m.prgOffsets[1] = m.prgBankOffset(-1)
	}
	switch m.chrMode {
	case 0:
		m.chrOffsets[0] = m.chrBankOffset(int(m.chrBank0 & 0xFE))
		m.chrOffsets[1] = m.chrBankOffset(int(m.chrBank0 | 0x01))
	case 1:
		m.chrOffsets[0] = m.chrBankOffset(int(m.chrBank0))
		m.chrOffsets[1] = m.chrBankOffset(int(m.chrBank1))
	}
}
