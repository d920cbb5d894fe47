// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"fmt"
)

const CPUFrequency = 1789773

const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

type AddressingMode byte

// addressing modes
const (
	_ AddressingMode = iota
	modeAccumulator
	modeImplied
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// interrupt types
const (
	interruptNone = iota
	interruptNMI
	interruptIRQ
)

// stepInfo carries the resolved operand of the current instruction into the
// instruction functions
type stepInfo struct {
	address uint16
	pc      uint16
	mode    AddressingMode
}

type CPU struct {
	bus    *Bus
	state  CPUState
	Cycles uint64 // total cycle counter

	interrupt byte // pending interrupt, checked before each fetch
	stall     int  // cycles to stall (DMA suspends the CPU)

	table [256]CPUInstruction
}

func NewCPU(console *Console) *CPU {
	cpu := CPU{}
	cpu.createTable()
	return &cpu
}

func (cpu *CPU) Save(encoder *gob.Encoder) error {
	return encodeFields(encoder,
		cpu.Cycles,
		cpu.state.PC,
		cpu.state.SP,
		cpu.state.A,
		cpu.state.X,
		cpu.state.Y,
		cpu.Flags(),
		cpu.interrupt,
		cpu.stall,
	)
}

func (cpu *CPU) Load(decoder *gob.Decoder) error {
	var flags byte
	err := decodeFields(decoder,
		&cpu.Cycles,
		&cpu.state.PC,
		&cpu.state.SP,
		&cpu.state.A,
		&cpu.state.X,
		&cpu.state.Y,
		&flags,
		&cpu.interrupt,
		&cpu.stall,
	)
	if err != nil {
		return err
	}
	cpu.SetAllFlags(flags)
	return nil
}

// Reset resets the CPU to its initial powerup state
func (cpu *CPU) Reset() {
	cpu.Cycles = 0
	cpu.state.PC = cpu.bus.ReadMemory16(ResetVector)
	cpu.state.A = 0
	cpu.state.X = 0
	cpu.state.Y = 0
	cpu.state.SP = 0xFD
	cpu.SetAllFlags(0x24)
	cpu.interrupt = interruptNone
	cpu.stall = 0
}

// Step executes a single CPU instruction and returns the cycles consumed.
// A pending interrupt is dispatched instead of a normal fetch.
func (cpu *CPU) Step() int {
	if cpu.stall > 0 {
		cpu.stall--
		return 1
	}

	cycles := cpu.Cycles

	switch cpu.interrupt {
	case interruptNMI:
		cpu.nmi()
	case interruptIRQ:
		cpu.irq()
	}
	cpu.interrupt = interruptNone

	opcode := cpu.bus.ReadMemory(cpu.state.PC)
	instruction := &cpu.table[opcode]
	if instruction.fn == nil {
		panic(fmt.Sprintf("cpu: no handler for opcode 0x%02X at PC 0x%04X", opcode, cpu.state.PC))
	}
	mode := instruction.mode

	var address uint16
	var pageCrossed bool
	switch mode {
	case modeAbsolute:
		address = cpu.read16(cpu.state.PC + 1)
	case modeAbsoluteX:
		address = cpu.read16(cpu.state.PC+1) + uint16(cpu.state.X)
		pageCrossed = pagesDiffer(address-uint16(cpu.state.X), address)
	case modeAbsoluteY:
		address = cpu.read16(cpu.state.PC+1) + uint16(cpu.state.Y)
		pageCrossed = pagesDiffer(address-uint16(cpu.state.Y), address)
	case modeAccumulator:
		address = 0
	case modeImmediate:
		address = cpu.state.PC + 1
	case modeImplied:
		address = 0
	case modeIndirectX:
		address = cpu.read16bug(uint16(cpu.bus.ReadMemory(cpu.state.PC+1) + cpu.state.X))
	case modeIndirect:
		address = cpu.read16bug(cpu.read16(cpu.state.PC + 1))
	case modeIndirectY:
		address = cpu.read16bug(uint16(cpu.bus.ReadMemory(cpu.state.PC+1))) + uint16(cpu.state.Y)
		pageCrossed = pagesDiffer(address-uint16(cpu.state.Y), address)
	case modeRelative:
		offset := uint16(cpu.bus.ReadMemory(cpu.state.PC + 1))
		if offset < 0x80 {
			address = cpu.state.PC + 2 + offset
		} else {
			address = cpu.state.PC + 2 + offset - 0x100
		}
	case modeZeroPage:
		address = uint16(cpu.bus.ReadMemory(cpu.state.PC + 1))
	case modeZeroPageX:
		address = uint16(cpu.bus.ReadMemory(cpu.state.PC+1)+cpu.state.X) & 0xFF
	case modeZeroPageY:
		address = uint16(cpu.bus.ReadMemory(cpu.state.PC+1)+cpu.state.Y) & 0xFF
	}

	cpu.state.PC += uint16(instruction.size)
	cpu.Cycles += uint64(instruction.cycles)
	if pageCrossed {
		cpu.Cycles += uint64(instruction.pageCycles)
	}

	instruction.fn(&stepInfo{address, cpu.state.PC, mode})

	return int(cpu.Cycles - cycles)
}

// triggerNMI latches a non-maskable interrupt request
func (cpu *CPU) triggerNMI() {
	cpu.interrupt = interruptNMI
}

// triggerIRQ latches an interrupt request unless interrupts are disabled
func (cpu *CPU) triggerIRQ() {
	if cpu.state.I == 0 {
		cpu.interrupt = interruptIRQ
	}
}

// AddStall suspends the CPU for the given number of cycles (sprite DMA, DMC
// sample fetches).
func (cpu *CPU) AddStall(cycles int) {
	cpu.stall += cycles
}

// nmi performs a non-maskable interrupt sequence
func (cpu *CPU) nmi() {
	cpu.push16(cpu.state.PC)
	cpu.push(cpu.Flags() | PSFlagsReserved)
	cpu.state.PC = cpu.bus.ReadMemory16(NMIVector)
	cpu.state.I = 1
	cpu.Cycles += 7
}

// irq performs an IRQ interrupt sequence
func (cpu *CPU) irq() {
	cpu.push16(cpu.state.PC)
	cpu.push(cpu.Flags() | PSFlagsReserved)
	cpu.state.PC = cpu.bus.ReadMemory16(IRQVector)
	cpu.state.I = 1
	cpu.Cycles += 7
}

// read16 reads two bytes using ReadMemory to return a double-word value
func (cpu *CPU) read16(address uint16) uint16 {
	return cpu.bus.ReadMemory16(address)
}

// read16bug emulates a 6502 bug that caused the low byte to wrap without
// incrementing the high byte
func (cpu *CPU) read16bug(address uint16) uint16 {
	a := address
	b := (a & 0xFF00) | uint16(byte(a)+1)
	lo := cpu.bus.ReadMemory(a)
	hi := cpu.bus.ReadMemory(b)
	return uint16(hi)<<8 | uint16(lo)
}

// pagesDiffer returns true if the two addresses reference different pages
func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// addBranchCycles adds a cycle for taking a branch and another cycle if the
// branch jumps to a new page
func (cpu *CPU) addBranchCycles(info *stepInfo) {
	cpu.Cycles++
	if pagesDiffer(info.pc, info.address) {
		cpu.Cycles++
	}
}

func (cpu *CPU) compare(a, b byte) {
	cpu.setZN(a - b)
	if a >= b {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
}

// push pushes a byte onto the stack
func (cpu *CPU) push(value byte) {
	cpu.bus.WriteMemory(0x100|uint16(cpu.state.SP), value)
	cpu.state.SP--
}

// pull pops a byte from the stack
func (cpu *CPU) pull() byte {
	cpu.state.SP++
	return cpu.bus.ReadMemory(0x100 | uint16(cpu.state.SP))
}

// push16 pushes two bytes onto the stack
func (cpu *CPU) push16(value uint16) {
	hi := byte(value >> 8)
	lo := byte(value & 0xFF)
	cpu.push(hi)
	cpu.push(lo)
}

// pull16 pops two bytes from the stack
func (cpu *CPU) pull16() uint16 {
	lo := uint16(cpu.pull())
	hi := uint16(cpu.pull())
	return hi<<8 | lo
}

// PrintInstruction prints the current CPU state in nestest log format
func (cpu *CPU) PrintInstruction() {
	opcode := cpu.bus.ReadMemory(cpu.state.PC)
	instruction := &cpu.table[opcode]
	bytes := instruction.size
	name := instruction.name
	w0 := fmt.Sprintf("%02X", opcode)
	w1 := fmt.Sprintf("%02X", cpu.bus.ReadMemory(cpu.state.PC+1))
	w2 := fmt.Sprintf("%02X", cpu.bus.ReadMemory(cpu.state.PC+2))
	if bytes < 2 {
		w1 = "  "
	}
	if bytes < 3 {
		w2 = "  "
	}
	fmt.Printf(
		"%4X  %s %s %s  %s %28s"+
			"A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%3d\n",
		cpu.state.PC, w0, w1, w2, name, "",
		cpu.state.A, cpu.state.X, cpu.state.Y, cpu.Flags(), cpu.state.SP,
		(cpu.Cycles*3)%341)
}
