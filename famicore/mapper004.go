// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

// Mapper004 is MMC3: 8 KiB PRG and 1 KiB CHR banks, mirroring control, and a
// scanline counter that asserts an IRQ on the CPU. The counter is clocked
// once per rendered scanline at dot 280, approximating the PPU A12 rise the
// real chip watches.
type Mapper004 struct {
	*Cartridge
	console    *Console
	register   byte
	registers  [8]byte
	prgMode    byte
	chrMode    byte
	prgOffsets [4]int
	chrOffsets [8]int
	reload     byte
	counter    byte
	irqEnable  bool
}

func NewMapper004(cartridge *Cartridge, console *Console) Mapper {
	m := &Mapper004{Cartridge: cartridge, console: console}
	m.prgOffsets[0] = m.prgBankOffset(0)
	m.prgOffsets[1] = m.prgBankOffset(1)
	m.prgOffsets[2] = m.prgBankOffset(-2)
	m.prgOffsets[3] = m.prgBankOffset(-1)
	return m
}

func (m *Mapper004) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder,
		m.register,
		m.registers,
		m.prgMode,
		m.chrMode,
		m.prgOffsets,
		m.chrOffsets,
		m.reload,
		m.counter,
		m.irqEnable,
	)
}

func (m *Mapper004) Load(decoder *gob.Decoder) error {
	return decodeFields(decoder,
		&m.register,
		&m.registers,
		&m.prgMode,
		&m.chrMode,
		&m.prgOffsets,
		&m.chrOffsets,
		&m.reload,
		&m.counter,
		&m.irqEnable,
	)
}

// Step is called once per PPU dot. The scanline counter clocks at dot 280 of
// every rendering line (visible and pre-render) while rendering is enabled.
func (m *Mapper004) Step() {
	ppu := m.console.PPU
	if ppu.Cycle != 280 {
		return
	}
	if ppu.ScanLine > 239 && ppu.ScanLine < 261 {
		return
	}
	if !ppu.flagShowBackground && !ppu.flagShowSprites {
		return
	}
	m.HandleScanLine()
}

func (m *Mapper004) HandleScanLine() {
	if m.counter == 0 {
		m.counter = m.reload
	} else {
		m.counter--
		if m.counter == 0 && m.irqEnable {
			m.console.CPU.triggerIRQ()
		}
	}
}

func (m *Mapper004) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		bank := address / 0x0400
		offset := address % 0x0400
		return m.CHR[m.chrOffsets[bank]+int(offset)]
	case address >= 0x8000:
		address = address - 0x8000
		bank := address / 0x2000
		offset := address % 0x2000
		return m.PRG[m.prgOffsets[bank]+int(offset)]
	case address >= 0x6000:
		return m.SRAM[int(address)-0x6000]
	default:
		log.Fatalf("unhandled mapper004 read at address: 0x%04X", address)
	}
	return 0
}

func (m *Mapper004) Write(address uint16, value byte) {
	switch {
	case address < 0x2000:
		bank := address / 0x0400
		offset := address % 0x0400
		m.WriteCHR(uint32(m.chrOffsets[bank]+int(offset)), value)
	case address >= 0x8000:
		m.writeRegister(address, value)
	case address >= 0x6000:
		m.SRAM[int(address)-0x6000] = value
	default:
		log.Fatalf("unhandled mapper004 write at address: 0x%04X", address)
	}
}

func (m *Mapper004) writeRegister(address uint16, value byte) {
	switch {
	case address <= 0x9FFF && address%2 == 0:
		m.writeBankSelect(value)
	case address <= 0x9FFF && address%2 == 1:
		m.writeBankData(value)
	case address <= 0xBFFF && address%2 == 0:
		m.writeMirror(value)
	case address <= 0xBFFF && address%2 == 1:
		// PRG-RAM protect: not emulated
	case address <= 0xDFFF && address%2 == 0:
		m.reload = value
	case address <= 0xDFFF && address%2 == 1:
		m.counter = 0
	case address <= 0xFFFF && address%2 == 0:
		m.irqEnable = false
	case address <= 0xFFFF && address%2 == 1:
		m.irqEnable = true
	}
}

func (m *Mapper004) writeBankSelect(value byte) {
	m.prgMode = (value >> 6) & 1
	m.chrMode = (value >> 7) & 1
	m.register = value & 7
	m.updateOffsets()
}

func (m *Mapper004) writeBankData(value byte) {
	m.registers[m.register] = value
	m.updateOffsets()
}

func (m *Mapper004) writeMirror(value byte) {
	if m.Cartridge.Mirror == MIRROR_FOUR {
		return
	}
	switch value & 1 {
	case 0:
		m.Cartridge.Mirror = MIRROR_VERTICAL
	case 1:
		m.Cartridge.Mirror = MIRROR_HORIZONTAL
	}
}

func (m *Mapper004) prgBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.PRG) / 0x2000
	offset := index * 0x2000
	if offset < 0 {
		offset += len(m.PRG)
	}
	return offset
}

func (m *Mapper004) chrBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.CHR) / 0x0400
	offset := index * 0x0400
	if offset < 0 {
		offset += len(m.CHR)
	}
	return offset
}

func (m *Mapper004) updateOffsets() {
	switch m.prgMode {
	case 0:
		m.prgOffsets[0] = m.prgBankOffset(int(m.registers[6]))
		m.prgOffsets[1] = m.prgBankOffset(int(m.registers[7]))
		m.prgOffsets[2] = m.prgBankOffset(-2)
		m.prgOffsets[3] = m.prgBankOffset(-1)
	case 1:
		m.prgOffsets[0] = m.prgBankOffset(-2)
		m.prgOffsets[1] = m.prgBankOffset(int(m.registers[7]))
		m.prgOffsets[2] = m.prgBankOffset(int(m.registers[6]))
		m.prgOffsets[3] = m.prgBankOffset(-1)
	}
	switch m.chrMode {
	case 0:
		m.chrOffsets[0] = m.chrBankOffset(int(m.registers[0] & 0xFE))
		m.chrOffsets[1] = m.chrBankOffset(int(m.registers[0] | 0x01))
		m.chrOffsets[2] = m.chrBankOffset(int(m.registers[1] & 0xFE))
		m.chrOffsets[3] = m.chrBankOffset(int(m.registers[1] | 0x01))
		m.chrOffsets[4] = m.chrBankOffset(int(m.registers[2]))
		m.chrOffsets[5] = m.chrBankOffset(int(m.registers[3]))
		m.chrOffsets[6] = m.chrBankOffset(int(m.registers[4]))
		m.chrOffsets[7] = m.chrBankOffset(int(m.registers[5]))
	case 1:
		m.chrOffsets[0] = m.chrBankOffset(int(m.registers[2]))
		m.chrOffsets[1] = m.chrBankOffset(int(m.registers[3]))
		m.chrOffsets[2] = m.chrBankOffset(int(m.registers[4]))
		m.chrOffsets[3] = m.chrBankOffset(int(m.registers[5]))
		m.chrOffsets[4] = m.chrBankOffset(int(m.registers[0] & 0xFE))
		m.chrOffsets[5] = m.chrBankOffset(int(m.registers[0] | 0x01))
		m.chrOffsets[6] = m.chrBankOffset(int(m.registers[1] & 0xFE))
		m.chrOffsets[7] = m.chrBankOffset(int(m.registers[1] | 0x01))
	}
}
