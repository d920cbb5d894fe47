package famicore

import "testing"

func TestCPUReset(t *testing.T) {
	console := newTestConsole(t, nil)
	cpu := console.CPU

	if cpu.state.PC != 0x8000 {
		t.Errorf("PC = 0x%04X, want 0x8000", cpu.state.PC)
	}
	if cpu.state.SP != 0xFD {
		t.Errorf("SP = 0x%02X, want 0xFD", cpu.state.SP)
	}
	if cpu.Flags() != 0x24 {
		t.Errorf("flags = 0x%02X, want 0x24", cpu.Flags())
	}
}

func TestLoadStore(t *testing.T) {
	// LDA #$42; STA $10; LDA #$00
	console := newTestConsole(t, []byte{0xA9, 0x42, 0x85, 0x10, 0xA9, 0x00})
	cpu := console.CPU

	cpu.Step()
	if cpu.state.A != 0x42 {
		t.Fatalf("A = 0x%02X, want 0x42", cpu.state.A)
	}
	cpu.Step()
	if got := console.Bus.ReadMemory(0x0010); got != 0x42 {
		t.Errorf("mem[$10] = 0x%02X, want 0x42", got)
	}
	cpu.Step()
	if cpu.state.Z != 1 {
		t.Errorf("Z = %d after LDA #$00, want 1", cpu.state.Z)
	}
}

func TestADCFlags(t *testing.T) {
	tests := []struct {
		name    string
		a, m, c byte
		wantA   byte
		wantC   byte
		wantV   byte
		wantZ   byte
		wantN   byte
	}{
		{"simple", 0x01, 0x01, 0, 0x02, 0, 0, 0, 0},
		{"with carry in", 0x01, 0x01, 1, 0x03, 0, 0, 0, 0},
		{"carry out", 0xFF, 0x01, 0, 0x00, 1, 0, 1, 0},
		{"signed overflow", 0x50, 0x50, 0, 0xA0, 0, 1, 0, 1},
		{"negative overflow", 0xD0, 0x90, 0, 0x60, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := newTestConsole(t, nil)
			cpu := console.CPU
			console.Bus.WriteMemory(0x0020, tt.m)
			cpu.state.A = tt.a
			cpu.state.C = tt.c
			cpu.adc(&stepInfo{address: 0x0020})
			if cpu.state.A != tt.wantA {
				t.Errorf("A = 0x%02X, want 0x%02X", cpu.state.A, tt.wantA)
			}
			if cpu.state.C != tt.wantC {
				t.Errorf("C = %d, want %d", cpu.state.C, tt.wantC)
			}
			if cpu.state.V != tt.wantV {
				t.Errorf("V = %d, want %d", cpu.state.V, tt.wantV)
			}
			if cpu.state.Z != tt.wantZ {
				t.Errorf("Z = %d, want %d", cpu.state.Z, tt.wantZ)
			}
			if cpu.state.N != tt.wantN {
				t.Errorf("N = %d, want %d", cpu.state.N, tt.wantN)
			}
		})
	}
}

func TestSBCFlags(t *testing.T) {
	tests := []struct {
		name    string
		a, m, c byte
		wantA   byte
		wantC   byte
		wantV   byte
	}{
		{"no borrow", 0x05, 0x03, 1, 0x02, 1, 0},
		{"borrow", 0x03, 0x05, 1, 0xFE, 0, 0},
		{"signed overflow", 0x50, 0xB0, 1, 0xA0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := newTestConsole(t, nil)
			cpu := console.CPU
			console.Bus.WriteMemory(0x0020, tt.m)
			cpu.state.A = tt.a
			cpu.state.C = tt.c
			cpu.sbc(&stepInfo{address: 0x0020})
			if cpu.state.A != tt.wantA {
				t.Errorf("A = 0x%02X, want 0x%02X", cpu.state.A, tt.wantA)
			}
			if cpu.state.C != tt.wantC {
				t.Errorf("C = %d, want %d", cpu.state.C, tt.wantC)
			}
			if cpu.state.V != tt.wantV {
				t.Errorf("V = %d, want %d", cpu.state.V, tt.wantV)
			}
		})
	}
}

func TestBranchCycles(t *testing.T) {
	// SEC; BCS +0 (taken); BCC +0 (not taken)
	console := newTestConsole(t, []byte{0x38, 0xB0, 0x00, 0x90, 0x00})
	cpu := console.CPU

	if got := cpu.Step(); got != 2 {
		t.Errorf("SEC took %d cycles, want 2", got)
	}
	if got := cpu.Step(); got != 3 {
		t.Errorf("taken branch took %d cycles, want 3", got)
	}
	if got := cpu.Step(); got != 2 {
		t.Errorf("untaken branch took %d cycles, want 2", got)
	}
}

func TestPageCrossPenalty(t *testing.T) {
	// LDX #$20; LDA $80F0,X -> effective $8110, crosses a page
	console := newTestConsole(t, []byte{0xA2, 0x20, 0xBD, 0xF0, 0x80})
	cpu := console.CPU

	cpu.Step()
	if got := cpu.Step(); got != 5 {
		t.Errorf("absolute,X with page cross took %d cycles, want 5", got)
	}
}

func TestIndirectPageWrapBug(t *testing.T) {
	console := newTestConsole(t, nil)
	cpu := console.CPU
	console.Bus.WriteMemory(0x02FF, 0x34)
	console.Bus.WriteMemory(0x0200, 0x12)
	console.Bus.WriteMemory(0x0300, 0x56)

	// the high byte must come from $0200, not $0300
	if got := cpu.read16bug(0x02FF); got != 0x1234 {
		t.Errorf("read16bug(0x02FF) = 0x%04X, want 0x1234", got)
	}
}

func TestStackRoundTrip(t *testing.T) {
	console := newTestConsole(t, nil)
	cpu := console.CPU

	cpu.push16(0xBEEF)
	cpu.push(0x42)
	if got := cpu.pull(); got != 0x42 {
		t.Errorf("pull = 0x%02X, want 0x42", got)
	}
	if got := cpu.pull16(); got != 0xBEEF {
		t.Errorf("pull16 = 0x%04X, want 0xBEEF", got)
	}
	if cpu.state.SP != 0xFD {
		t.Errorf("SP = 0x%02X after balanced push/pull, want 0xFD", cpu.state.SP)
	}
}

func TestNMIDispatch(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA}) // NOP
	cpu := console.CPU

	cpu.triggerNMI()
	cycles := cpu.Step()
	if cpu.state.PC != 0x9000+1 {
		// the NMI handler at $9000 runs its first instruction in the same step
		t.Errorf("PC = 0x%04X, want 0x9001", cpu.state.PC)
	}
	if cpu.state.I != 1 {
		t.Errorf("I = %d after NMI, want 1", cpu.state.I)
	}
	if cycles < 7 {
		t.Errorf("NMI step took %d cycles, want >= 7", cycles)
	}
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA, 0xEA})
	cpu := console.CPU

	// I is set after reset, the request must be dropped
	cpu.triggerIRQ()
	if cpu.interrupt != interruptNone {
		t.Fatalf("IRQ latched while I=1")
	}

	cpu.state.I = 0
	cpu.triggerIRQ()
	cpu.Step()
	if cpu.state.PC != 0xA000+1 {
		t.Errorf("PC = 0x%04X, want 0xA001", cpu.state.PC)
	}
}

func TestBRK(t *testing.T) {
	console := newTestConsole(t, []byte{0x00})
	cpu := console.CPU

	cpu.Step()
	// BRK pushes PC+2 and the flags with B set, then jumps through $FFFE
	if cpu.state.PC != 0xA000 {
		t.Errorf("PC = 0x%04X, want 0xA000", cpu.state.PC)
	}
	flags := console.Bus.ReadMemory(0x0100 | uint16(cpu.state.SP+1))
	if flags&PSFlagsBreak == 0 {
		t.Errorf("pushed flags 0x%02X missing break bit", flags)
	}
	lo := console.Bus.ReadMemory(0x0100 | uint16(cpu.state.SP+2))
	hi := console.Bus.ReadMemory(0x0100 | uint16(cpu.state.SP+3))
	if ret := uint16(hi)<<8 | uint16(lo); ret != 0x8002 {
		t.Errorf("pushed return address = 0x%04X, want 0x8002", ret)
	}
}

func TestDMAStall(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA, 0xEA})
	cpu := console.CPU

	console.Bus.WriteMemory(0x4014, 0x02)
	if cpu.stall != 513 && cpu.stall != 514 {
		t.Fatalf("stall = %d after OAM DMA, want 513 or 514", cpu.stall)
	}
	if got := cpu.Step(); got != 1 {
		t.Errorf("stalled step took %d cycles, want 1", got)
	}
}

func TestUnofficialLAX(t *testing.T) {
	// LAX $10
	console := newTestConsole(t, []byte{0xA7, 0x10})
	console.Bus.WriteMemory(0x0010, 0x37)
	cpu := console.CPU

	cpu.Step()
	if cpu.state.A != 0x37 || cpu.state.X != 0x37 {
		t.Errorf("A = 0x%02X X = 0x%02X, want both 0x37", cpu.state.A, cpu.state.X)
	}
}

func TestUnofficialDCP(t *testing.T) {
	// DCP $10 with A=$41, mem=$42: memory becomes $41, compare sets Z and C
	console := newTestConsole(t, []byte{0xC7, 0x10})
	console.Bus.WriteMemory(0x0010, 0x42)
	cpu := console.CPU
	cpu.state.A = 0x41

	cpu.Step()
	if got := console.Bus.ReadMemory(0x0010); got != 0x41 {
		t.Errorf("mem[$10] = 0x%02X, want 0x41", got)
	}
	if cpu.state.Z != 1 || cpu.state.C != 1 {
		t.Errorf("Z = %d C = %d, want both 1", cpu.state.Z, cpu.state.C)
	}
}

func TestInstructionTableComplete(t *testing.T) {
	console := newTestConsole(t, nil)
	for opcode := 0; opcode < 256; opcode++ {
		entry := console.CPU.table[opcode]
		if entry.fn == nil {
			t.Errorf("opcode 0x%02X has no handler", opcode)
		}
		if entry.opcode != byte(opcode) {
			t.Errorf("table[0x%02X] carries opcode 0x%02X", opcode, entry.opcode)
		}
		if entry.size == 0 || entry.cycles == 0 {
			t.Errorf("opcode 0x%02X has zero size or cycles", opcode)
		}
	}
}
