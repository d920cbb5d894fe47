// refs: github.com/fogleman/nes
package famicore

type CPUInstruction struct {
	opcode byte
	// name indicates the mnemonic of the instruction
	name string
	// addressing mode
	mode AddressingMode
	// size indicates the size of the instruction in bytes
	size byte
	// cycles indicates the number of cycles used by the instruction, not including conditional cycles
	cycles byte
	// pageCycles indicates the number of extra cycles used when a page is crossed
	pageCycles byte
	// instruction function
	fn func(info *stepInfo)
}

// createTable builds a function table for each instruction. Unofficial
// opcodes with stable, commonly documented semantics (LAX, SAX, DCP, ISC,
// SLO, RLA, SRE, RRA, ANC, ALR, ARR, AXS, LAS) execute those semantics;
// the unstable ones (AHX, SHX, SHY, TAS, XAA) and KIL are no-ops of the
// documented cycle cost. Whatever the choice, it is applied uniformly.
func (c *CPU) createTable() {
	c.table = [256]CPUInstruction{
		{opcode: 0x00, name: "BRK", mode: modeImplied, size: 1, cycles: 7, pageCycles: 0, fn: c.brk},
		{opcode: 0x01, name: "ORA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.ora},
		{opcode: 0x02, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x03, name: "SLO", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x04, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x05, name: "ORA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ora},
		{opcode: 0x06, name: "ASL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.asl},
		{opcode: 0x07, name: "SLO", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.slo},
		{opcode: 0x08, name: "PHP", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.php},
		{opcode: 0x09, name: "ORA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ora},
		{opcode: 0x0A, name: "ASL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.asl},
		{opcode: 0x0B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x0C, name: "NOP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x0D, name: "ORA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x0E, name: "ASL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x0F, name: "SLO", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x10, name: "BPL", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bpl},
		{opcode: 0x11, name: "ORA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.ora},
		{opcode: 0x12, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x13, name: "SLO", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x14, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x15, name: "ORA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x16, name: "ASL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x17, name: "SLO", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x18, name: "CLC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clc},
		{opcode: 0x19, name: "ORA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x1B, name: "SLO", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x1C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x1D, name: "ORA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1E, name: "ASL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.asl},
		{opcode: 0x1F, name: "SLO", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x20, name: "JSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.jsr},
		{opcode: 0x21, name: "AND", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.and},
		{opcode: 0x22, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x23, name: "RLA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x24, name: "BIT", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.bit},
		{opcode: 0x25, name: "AND", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.and},
		{opcode: 0x26, name: "ROL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rol},
		{opcode: 0x27, name: "RLA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rla},
		{opcode: 0x28, name: "PLP", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.plp},
		{opcode: 0x29, name: "AND", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.and},
		{opcode: 0x2A, name: "ROL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.rol},
		{opcode: 0x2B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x2C, name: "BIT", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.bit},
		{opcode: 0x2D, name: "AND", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x2E, name: "ROL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x2F, name: "RLA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x30, name: "BMI", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bmi},
		{opcode: 0x31, name: "AND", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.and},
		{opcode: 0x32, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x33, name: "RLA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x34, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x35, name: "AND", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x36, name: "ROL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x37, name: "RLA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x38, name: "SEC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sec},
		{opcode: 0x39, name: "AND", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x3B, name: "RLA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x3C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x3D, name: "AND", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3E, name: "ROL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rol},
		{opcode: 0x3F, name: "RLA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x40, name: "RTI", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rti},
		{opcode: 0x41, name: "EOR", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.eor},
		{opcode: 0x42, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x43, name: "SRE", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x44, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x45, name: "EOR", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.eor},
		{opcode: 0x46, name: "LSR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.lsr},
		{opcode: 0x47, name: "SRE", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.sre},
		{opcode: 0x48, name: "PHA", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.pha},
		{opcode: 0x49, name: "EOR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.eor},
		{opcode: 0x4A, name: "LSR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4B, name: "ALR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.alr},
		{opcode: 0x4C, name: "JMP", mode: modeAbsolute, size: 3, cycles: 3, pageCycles: 0, fn: c.jmp},
		{opcode: 0x4D, name: "EOR", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x4E, name: "LSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4F, name: "SRE", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x50, name: "BVC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvc},
		{opcode: 0x51, name: "EOR", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.eor},
		{opcode: 0x52, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x53, name: "SRE", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x54, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x55, name: "EOR", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x56, name: "LSR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x57, name: "SRE", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x58, name: "CLI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cli},
		{opcode: 0x59, name: "EOR", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x5B, name: "SRE", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x5C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x5D, name: "EOR", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5E, name: "LSR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.lsr},
		{opcode: 0x5F, name: "SRE", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x60, name: "RTS", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rts},
		{opcode: 0x61, name: "ADC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.adc},
		{opcode: 0x62, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x63, name: "RRA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x64, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x65, name: "ADC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.adc},
		{opcode: 0x66, name: "ROR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.ror},
		{opcode: 0x67, name: "RRA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rra},
		{opcode: 0x68, name: "PLA", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.pla},
		{opcode: 0x69, name: "ADC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.adc},
		{opcode: 0x6A, name: "ROR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.ror},
		{opcode: 0x6B, name: "ARR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.arr},
		{opcode: 0x6C, name: "JMP", mode: modeIndirect, size: 3, cycles: 5, pageCycles: 0, fn: c.jmp},
		{opcode: 0x6D, name: "ADC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x6E, name: "ROR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x6F, name: "RRA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x70, name: "BVS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvs},
		{opcode: 0x71, name: "ADC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.adc},
		{opcode: 0x72, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x73, name: "RRA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x74, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x75, name: "ADC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x76, name: "ROR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x77, name: "RRA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x78, name: "SEI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sei},
		{opcode: 0x79, name: "ADC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x7B, name: "RRA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x7C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x7D, name: "ADC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7E, name: "ROR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.ror},
		{opcode: 0x7F, name: "RRA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x80, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x81, name: "STA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x82, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x83, name: "SAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sax},
		{opcode: 0x84, name: "STY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sty},
		{opcode: 0x85, name: "STA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sta},
		{opcode: 0x86, name: "STX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.stx},
		{opcode: 0x87, name: "SAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sax},
		{opcode: 0x88, name: "DEY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dey},
		{opcode: 0x89, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x8A, name: "TXA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txa},
		{opcode: 0x8B, name: "XAA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.xaa},
		{opcode: 0x8C, name: "STY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x8D, name: "STA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x8E, name: "STX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x8F, name: "SAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x90, name: "BCC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcc},
		{opcode: 0x91, name: "STA", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x92, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x93, name: "AHX", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.ahx},
		{opcode: 0x94, name: "STY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x95, name: "STA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x96, name: "STX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x97, name: "SAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x98, name: "TYA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tya},
		{opcode: 0x99, name: "STA", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9A, name: "TXS", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txs},
		{opcode: 0x9B, name: "TAS", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.tas},
		{opcode: 0x9C, name: "SHY", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.shy},
		{opcode: 0x9D, name: "STA", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9E, name: "SHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.shx},
		{opcode: 0x9F, name: "AHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.ahx},
		{opcode: 0xA0, name: "LDY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA1, name: "LDA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lda},
		{opcode: 0xA2, name: "LDX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA3, name: "LAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lax},
		{opcode: 0xA4, name: "LDY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA5, name: "LDA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lda},
		{opcode: 0xA6, name: "LDX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA7, name: "LAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lax},
		{opcode: 0xA8, name: "TAY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tay},
		{opcode: 0xA9, name: "LDA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lda},
		{opcode: 0xAA, name: "TAX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tax},
		{opcode: 0xAB, name: "LAX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lax},
		{opcode: 0xAC, name: "LDY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xAD, name: "LDA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xAE, name: "LDX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xAF, name: "LAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB0, name: "BCS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcs},
		{opcode: 0xB1, name: "LDA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lda},
		{opcode: 0xB2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xB3, name: "LAX", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lax},
		{opcode: 0xB4, name: "LDY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xB5, name: "LDA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xB6, name: "LDX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xB7, name: "LAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB8, name: "CLV", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clv},
		{opcode: 0xB9, name: "LDA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBA, name: "TSX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tsx},
		{opcode: 0xBB, name: "LAS", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.las},
		{opcode: 0xBC, name: "LDY", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ldy},
		{opcode: 0xBD, name: "LDA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBE, name: "LDX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ldx},
		{opcode: 0xBF, name: "LAX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lax},
		{opcode: 0xC0, name: "CPY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC1, name: "CMP", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xC3, name: "DCP", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC4, name: "CPY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC5, name: "CMP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC6, name: "DEC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dec},
		{opcode: 0xC7, name: "DCP", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC8, name: "INY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.iny},
		{opcode: 0xC9, name: "CMP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCA, name: "DEX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dex},
		{opcode: 0xCB, name: "AXS", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.axs},
		{opcode: 0xCC, name: "CPY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpy},
		{opcode: 0xCD, name: "CMP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCE, name: "DEC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xCF, name: "DCP", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD0, name: "BNE", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bne},
		{opcode: 0xD1, name: "CMP", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.cmp},
		{opcode: 0xD2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xD3, name: "DCP", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xD5, name: "CMP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xD6, name: "DEC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xD7, name: "DCP", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD8, name: "CLD", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cld},
		{opcode: 0xD9, name: "CMP", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xDB, name: "DCP", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xDC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xDD, name: "CMP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDE, name: "DEC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dec},
		{opcode: 0xDF, name: "DCP", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xE0, name: "CPX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE1, name: "SBC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xE3, name: "ISC", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xE4, name: "CPX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE5, name: "SBC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE6, name: "INC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.inc},
		{opcode: 0xE7, name: "ISC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.isc},
		{opcode: 0xE8, name: "INX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.inx},
		{opcode: 0xE9, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xEB, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEC, name: "CPX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpx},
		{opcode: 0xED, name: "SBC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEE, name: "INC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xEF, name: "ISC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF0, name: "BEQ", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.beq},
		{opcode: 0xF1, name: "SBC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.sbc},
		{opcode: 0xF2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xF3, name: "ISC", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xF4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xF5, name: "SBC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xF6, name: "INC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xF7, name: "ISC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF8, name: "SED", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sed},
		{opcode: 0xF9, name: "SBC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xFB, name: "ISC", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
		{opcode: 0xFC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xFD, name: "SBC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFE, name: "INC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.inc},
		{opcode: 0xFF, name: "ISC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
	}
}

// ADC - Add with Carry
func (cpu *CPU) adc(info *stepInfo) {
	a := cpu.state.A
	b := cpu.bus.ReadMemory(info.address)
	c := cpu.state.C
	cpu.state.A = a + b + c
	cpu.setZN(cpu.state.A)
	if int(a)+int(b)+int(c) > 0xFF {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
	if (a^b)&0x80 == 0 && (a^cpu.state.A)&0x80 != 0 {
		cpu.state.V = 1
	} else {
		cpu.state.V = 0
	}
}

// AND - Logical AND
func (cpu *CPU) and(info *stepInfo) {
	cpu.state.A = cpu.state.A & cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.A)
}

// ASL - Arithmetic Shift Left
func (cpu *CPU) asl(info *stepInfo) {
	if info.mode == modeAccumulator {
		cpu.state.C = (cpu.state.A >> 7) & 1
		cpu.state.A <<= 1
		cpu.setZN(cpu.state.A)
	} else {
		value := cpu.bus.ReadMemory(info.address)
		cpu.state.C = (value >> 7) & 1
		value <<= 1
		cpu.bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// BCC - Branch if Carry Clear
func (cpu *CPU) bcc(info *stepInfo) {
	if cpu.state.C == 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BCS - Branch if Carry Set
func (cpu *CPU) bcs(info *stepInfo) {
	if cpu.state.C != 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BEQ - Branch if Equal
func (cpu *CPU) beq(info *stepInfo) {
	if cpu.state.Z != 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BIT - Bit Test
func (cpu *CPU) bit(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.V = (value >> 6) & 1
	cpu.setZ(value & cpu.state.A)
	cpu.setN(value)
}

// BMI - Branch if Minus
func (cpu *CPU) bmi(info *stepInfo) {
	if cpu.state.N != 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BNE - Branch if Not Equal
func (cpu *CPU) bne(info *stepInfo) {
	if cpu.state.Z == 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BPL - Branch if Positive
func (cpu *CPU) bpl(info *stepInfo) {
	if cpu.state.N == 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BRK - Force Interrupt
func (cpu *CPU) brk(info *stepInfo) {
	cpu.push16(cpu.state.PC + 1)
	cpu.push(cpu.Flags() | PSFlagsBreak | PSFlagsReserved)
	cpu.state.I = 1
	cpu.state.PC = cpu.bus.ReadMemory16(IRQVector)
}

// BVC - Branch if Overflow Clear
func (cpu *CPU) bvc(info *stepInfo) {
	if cpu.state.V == 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BVS - Branch if Overflow Set
func (cpu *CPU) bvs(info *stepInfo) {
	if cpu.state.V != 0 {
		cpu.state.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// CLC - Clear Carry Flag
func (cpu *CPU) clc(info *stepInfo) {
	cpu.state.C = 0
}

// CLD - Clear Decimal Mode
func (cpu *CPU) cld(info *stepInfo) {
	cpu.state.D = 0
}

// CLI - Clear Interrupt Disable
func (cpu *CPU) cli(info *stepInfo) {
	cpu.state.I = 0
}

// CLV - Clear Overflow Flag
func (cpu *CPU) clv(info *stepInfo) {
	cpu.state.V = 0
}

// CMP - Compare
func (cpu *CPU) cmp(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.compare(cpu.state.A, value)
}

// CPX - Compare X Register
func (cpu *CPU) cpx(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.compare(cpu.state.X, value)
}

// CPY - Compare Y Register
func (cpu *CPU) cpy(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.compare(cpu.state.Y, value)
}

// DEC - Decrement Memory
func (cpu *CPU) dec(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address) - 1
	cpu.bus.WriteMemory(info.address, value)
	cpu.setZN(value)
}

// DEX - Decrement X Register
func (cpu *CPU) dex(info *stepInfo) {
	cpu.state.X--
	cpu.setZN(cpu.state.X)
}

// DEY - Decrement Y Register
func (cpu *CPU) dey(info *stepInfo) {
	cpu.state.Y--
	cpu.setZN(cpu.state.Y)
}

// EOR - Exclusive OR
func (cpu *CPU) eor(info *stepInfo) {
	cpu.state.A = cpu.state.A ^ cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.A)
}

// INC - Increment Memory
func (cpu *CPU) inc(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address) + 1
	cpu.bus.WriteMemory(info.address, value)
	cpu.setZN(value)
}

// INX - Increment X Register
func (cpu *CPU) inx(info *stepInfo) {
	cpu.state.X++
	cpu.setZN(cpu.state.X)
}

// INY - Increment Y Register
func (cpu *CPU) iny(info *stepInfo) {
	cpu.state.Y++
	cpu.setZN(cpu.state.Y)
}

// JMP - Jump
func (cpu *CPU) jmp(info *stepInfo) {
	cpu.state.PC = info.address
}

// JSR - Jump to Subroutine
func (cpu *CPU) jsr(info *stepInfo) {
	cpu.push16(cpu.state.PC - 1)
	cpu.state.PC = info.address
}

// LDA - Load Accumulator
func (cpu *CPU) lda(info *stepInfo) {
	cpu.state.A = cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.A)
}

// LDX - Load X Register
func (cpu *CPU) ldx(info *stepInfo) {
	cpu.state.X = cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.X)
}

// LDY - Load Y Register
func (cpu *CPU) ldy(info *stepInfo) {
	cpu.state.Y = cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.Y)
}

// LSR - Logical Shift Right
func (cpu *CPU) lsr(info *stepInfo) {
	if info.mode == modeAccumulator {
		cpu.state.C = cpu.state.A & 1
		cpu.state.A >>= 1
		cpu.setZN(cpu.state.A)
	} else {
		value := cpu.bus.ReadMemory(info.address)
		cpu.state.C = value & 1
		value >>= 1
		cpu.bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// NOP - No Operation
func (cpu *CPU) nop(info *stepInfo) {
}

// ORA - Logical Inclusive OR
func (cpu *CPU) ora(info *stepInfo) {
	cpu.state.A = cpu.state.A | cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.A)
}

// PHA - Push Accumulator
func (cpu *CPU) pha(info *stepInfo) {
	cpu.push(cpu.state.A)
}

// PHP - Push Processor Status
func (cpu *CPU) php(info *stepInfo) {
	cpu.push(cpu.Flags() | PSFlagsBreak | PSFlagsReserved)
}

// PLA - Pull Accumulator
func (cpu *CPU) pla(info *stepInfo) {
	cpu.state.A = cpu.pull()
	cpu.setZN(cpu.state.A)
}

// PLP - Pull Processor Status
func (cpu *CPU) plp(info *stepInfo) {
	cpu.SetAllFlags(cpu.pull()&0xEF | PSFlagsReserved)
}

// ROL - Rotate Left
func (cpu *CPU) rol(info *stepInfo) {
	if info.mode == modeAccumulator {
		c := cpu.state.C
		cpu.state.C = (cpu.state.A >> 7) & 1
		cpu.state.A = (cpu.state.A << 1) | c
		cpu.setZN(cpu.state.A)
	} else {
		c := cpu.state.C
		value := cpu.bus.ReadMemory(info.address)
		cpu.state.C = (value >> 7) & 1
		value = (value << 1) | c
		cpu.bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// ROR - Rotate Right
func (cpu *CPU) ror(info *stepInfo) {
	if info.mode == modeAccumulator {
		c := cpu.state.C
		cpu.state.C = cpu.state.A & 1
		cpu.state.A = (cpu.state.A >> 1) | (c << 7)
		cpu.setZN(cpu.state.A)
	} else {
		c := cpu.state.C
		value := cpu.bus.ReadMemory(info.address)
		cpu.state.C = value & 1
		value = (value >> 1) | (c << 7)
		cpu.bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// RTI - Return from Interrupt
func (cpu *CPU) rti(info *stepInfo) {
	cpu.SetAllFlags(cpu.pull()&0xEF | PSFlagsReserved)
	cpu.state.PC = cpu.pull16()
}

// RTS - Return from Subroutine
func (cpu *CPU) rts(info *stepInfo) {
	cpu.state.PC = cpu.pull16() + 1
}

// SBC - Subtract with Carry
func (cpu *CPU) sbc(info *stepInfo) {
	a := cpu.state.A
	b := cpu.bus.ReadMemory(info.address)
	c := cpu.state.C
	cpu.state.A = a - b - (1 - c)
	cpu.setZN(cpu.state.A)
	if int(a)-int(b)-int(1-c) >= 0 {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
	if (a^b)&0x80 != 0 && (a^cpu.state.A)&0x80 != 0 {
		cpu.state.V = 1
	} else {
		cpu.state.V = 0
	}
}

// SEC - Set Carry Flag
func (cpu *CPU) sec(info *stepInfo) {
	cpu.state.C = 1
}

// SED - Set Decimal Flag
func (cpu *CPU) sed(info *stepInfo) {
	cpu.state.D = 1
}

// SEI - Set Interrupt Disable
func (cpu *CPU) sei(info *stepInfo) {
	cpu.state.I = 1
}

// STA - Store Accumulator
func (cpu *CPU) sta(info *stepInfo) {
	cpu.bus.WriteMemory(info.address, cpu.state.A)
}

// STX - Store X Register
func (cpu *CPU) stx(info *stepInfo) {
	cpu.bus.WriteMemory(info.address, cpu.state.X)
}

// STY - Store Y Register
func (cpu *CPU) sty(info *stepInfo) {
	cpu.bus.WriteMemory(info.address, cpu.state.Y)
}

// TAX - Transfer Accumulator to X
func (cpu *CPU) tax(info *stepInfo) {
	cpu.state.X = cpu.state.A
	cpu.setZN(cpu.state.X)
}

// TAY - Transfer Accumulator to Y
func (cpu *CPU) tay(info *stepInfo) {
	cpu.state.Y = cpu.state.A
	cpu.setZN(cpu.state.Y)
}

// TSX - Transfer Stack Pointer to X
func (cpu *CPU) tsx(info *stepInfo) {
	cpu.state.X = cpu.state.SP
	cpu.setZN(cpu.state.X)
}

// TXA - Transfer X to Accumulator
func (cpu *CPU) txa(info *stepInfo) {
	cpu.state.A = cpu.state.X
	cpu.setZN(cpu.state.A)
}

// TXS - Transfer X to Stack Pointer
func (cpu *CPU) txs(info *stepInfo) {
	cpu.state.SP = cpu.state.X
}

// TYA - Transfer Y to Accumulator
func (cpu *CPU) tya(info *stepInfo) {
	cpu.state.A = cpu.state.Y
	cpu.setZN(cpu.state.A)
}

// unofficial opcodes below

// LAX - Load Accumulator and X
func (cpu *CPU) lax(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.A = value
	cpu.state.X = value
	cpu.setZN(value)
}

// SAX - Store Accumulator AND X
func (cpu *CPU) sax(info *stepInfo) {
	cpu.bus.WriteMemory(info.address, cpu.state.A&cpu.state.X)
}

// DCP - Decrement Memory then Compare
func (cpu *CPU) dcp(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address) - 1
	cpu.bus.WriteMemory(info.address, value)
	cpu.compare(cpu.state.A, value)
}

// ISC - Increment Memory then Subtract with Carry
func (cpu *CPU) isc(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address) + 1
	cpu.bus.WriteMemory(info.address, value)
	a := cpu.state.A
	c := cpu.state.C
	cpu.state.A = a - value - (1 - c)
	cpu.setZN(cpu.state.A)
	if int(a)-int(value)-int(1-c) >= 0 {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
	if (a^value)&0x80 != 0 && (a^cpu.state.A)&0x80 != 0 {
		cpu.state.V = 1
	} else {
		cpu.state.V = 0
	}
}

// SLO - Shift Left then OR
func (cpu *CPU) slo(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.C = (value >> 7) & 1
	value <<= 1
	cpu.bus.WriteMemory(info.address, value)
	cpu.state.A |= value
	cpu.setZN(cpu.state.A)
}

// RLA - Rotate Left then AND
func (cpu *CPU) rla(info *stepInfo) {
	c := cpu.state.C
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.C = (value >> 7) & 1
	value = (value << 1) | c
	cpu.bus.WriteMemory(info.address, value)
	cpu.state.A &= value
	cpu.setZN(cpu.state.A)
}

// SRE - Shift Right then EOR
func (cpu *CPU) sre(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.C = value & 1
	value >>= 1
	cpu.bus.WriteMemory(info.address, value)
	cpu.state.A ^= value
	cpu.setZN(cpu.state.A)
}

// RRA - Rotate Right then Add with Carry
func (cpu *CPU) rra(info *stepInfo) {
	c := cpu.state.C
	value := cpu.bus.ReadMemory(info.address)
	cpu.state.C = value & 1
	value = (value >> 1) | (c << 7)
	cpu.bus.WriteMemory(info.address, value)

	a := cpu.state.A
	c = cpu.state.C
	cpu.state.A = a + value + c
	cpu.setZN(cpu.state.A)
	if int(a)+int(value)+int(c) > 0xFF {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
	if (a^value)&0x80 == 0 && (a^cpu.state.A)&0x80 != 0 {
		cpu.state.V = 1
	} else {
		cpu.state.V = 0
	}
}

// ANC - AND then copy N to C
func (cpu *CPU) anc(info *stepInfo) {
	cpu.state.A = cpu.state.A & cpu.bus.ReadMemory(info.address)
	cpu.setZN(cpu.state.A)
	cpu.state.C = cpu.state.N
}

// ALR - AND then Logical Shift Right
func (cpu *CPU) alr(info *stepInfo) {
	value := cpu.state.A & cpu.bus.ReadMemory(info.address)
	cpu.state.C = value & 1
	cpu.state.A = value >> 1
	cpu.setZN(cpu.state.A)
}

// ARR - AND then Rotate Right; C and V come from bits 6 and 5 of the result
func (cpu *CPU) arr(info *stepInfo) {
	value := cpu.state.A & cpu.bus.ReadMemory(info.address)
	cpu.state.A = (value >> 1) | (cpu.state.C << 7)
	cpu.setZN(cpu.state.A)
	cpu.state.C = (cpu.state.A >> 6) & 1
	cpu.state.V = ((cpu.state.A >> 6) ^ (cpu.state.A >> 5)) & 1
}

// AXS - (A AND X) minus immediate into X
func (cpu *CPU) axs(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address)
	t := cpu.state.A & cpu.state.X
	if t >= value {
		cpu.state.C = 1
	} else {
		cpu.state.C = 0
	}
	cpu.state.X = t - value
	cpu.setZN(cpu.state.X)
}

// LAS - memory AND SP into A, X and SP
func (cpu *CPU) las(info *stepInfo) {
	value := cpu.bus.ReadMemory(info.address) & cpu.state.SP
	cpu.state.A = value
	cpu.state.X = value
	cpu.state.SP = value
	cpu.setZN(value)
}

// the remaining unofficial opcodes are unstable on hardware and treated as
// no-ops of their documented cycle cost

func (cpu *CPU) ahx(info *stepInfo) {
}

func (cpu *CPU) shx(info *stepInfo) {
}

func (cpu *CPU) shy(info *stepInfo) {
}

func (cpu *CPU) tas(info *stepInfo) {
}

func (cpu *CPU) xaa(info *stepInfo) {
}

func (cpu *CPU) kil(info *stepInfo) {
}
