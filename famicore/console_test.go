package famicore

import "testing"

func TestStepFanOut(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80}) // JMP $8000
	ppu := console.PPU

	before := ppu.Frame*341*262 + uint64(ppu.ScanLine)*341 + uint64(ppu.Cycle)
	cycles := console.Step()
	after := ppu.Frame*341*262 + uint64(ppu.ScanLine)*341 + uint64(ppu.Cycle)

	if got := after - before; got != uint64(cycles)*3 {
		t.Errorf("PPU advanced %d dots for %d CPU cycles, want %d", got, cycles, cycles*3)
	}
	if console.APU.cycle != uint64(cycles) {
		t.Errorf("APU advanced %d cycles, want %d", console.APU.cycle, cycles)
	}
}

func TestFrameCadence(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})

	// discard the first partial frame after reset
	console.StepFrame()

	total := 0
	const frames = 4
	for i := 0; i < frames; i++ {
		total += console.StepFrame()
	}
	average := float64(total) / frames
	// 341*262/3 = 29780.67 CPU cycles per frame with rendering disabled
	if average < 29770 || average > 29800 {
		t.Errorf("average frame length %.1f CPU cycles, want about 29780", average)
	}
}

func TestStepSeconds(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})

	console.StepSeconds(0.01)
	want := uint64(CPUFrequency) / 100
	if console.CPU.Cycles < want {
		t.Errorf("cycles = %d after 10ms, want at least %d", console.CPU.Cycles, want)
	}
	// overshoot is bounded by one instruction
	if console.CPU.Cycles > want+8 {
		t.Errorf("cycles = %d after 10ms, overshoot too large", console.CPU.Cycles)
	}
}

func TestBufferDimensions(t *testing.T) {
	console := newTestConsole(t, nil)
	bounds := console.Buffer().Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 240 {
		t.Errorf("frame buffer is %dx%d, want 256x240", bounds.Dx(), bounds.Dy())
	}
}

func TestAudioSampleDelivery(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})
	channel := make(chan float32, 4096)
	console.SetAudioChannel(channel)
	console.SetAudioSampleRate(44100)

	console.StepSeconds(0.05)

	// 50ms at 44.1kHz is roughly 2205 samples
	got := len(channel)
	if got < 2000 || got > 2400 {
		t.Errorf("received %d samples in 50ms, want about 2205", got)
	}
}

func TestResetPreservesRAM(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})
	console.Bus.WriteMemory(0x0200, 0x77)
	console.Reset()
	if got := console.Bus.ReadMemory(0x0200); got != 0x77 {
		t.Errorf("mem[$0200] = 0x%02X after reset, want 0x77", got)
	}
	if console.CPU.state.PC != 0x8000 {
		t.Errorf("PC = 0x%04X after reset, want 0x8000", console.CPU.state.PC)
	}
}
