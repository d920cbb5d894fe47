package famicore

import "testing"

func TestPaletteBackdropMirroring(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	// $3F10/$3F14/$3F18/$3F1C alias $3F00/$3F04/$3F08/$3F0C
	ppu.writePalette(0x10, 0x2A)
	if got := ppu.readPalette(0x00); got != 0x2A {
		t.Errorf("palette[0x00] = 0x%02X, want 0x2A", got)
	}
	ppu.writePalette(0x04, 0x15)
	if got := ppu.readPalette(0x14); got != 0x15 {
		t.Errorf("palette[0x14] = 0x%02X, want 0x15", got)
	}
}

func TestStatusReadClearsLatch(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.writeRegister(0x2005, 0x10)
	if ppu.w != 1 {
		t.Fatalf("w = %d after first scroll write, want 1", ppu.w)
	}
	ppu.readRegister(0x2002)
	if ppu.w != 0 {
		t.Errorf("w = %d after status read, want 0", ppu.w)
	}
}

func TestStatusReadClearsVBlank(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.ScanLine = 241
	ppu.Cycle = 0
	ppu.Step() // advances to dot 1 and raises vblank

	status := ppu.readRegister(0x2002)
	if status&0x80 == 0 {
		t.Fatalf("vblank bit not set at scanline 241 dot 1")
	}
	status = ppu.readRegister(0x2002)
	if status&0x80 != 0 {
		t.Errorf("vblank bit still set after status read")
	}
}

func TestWriteOnlyRegistersReadLatch(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	// any register write charges the latch that write-only ports read back
	ppu.writeRegister(0x2001, 0x3C)
	for _, address := range []uint16{0x2000, 0x2001, 0x2003, 0x2005, 0x2006} {
		if got := ppu.readRegister(address); got != 0x3C {
			t.Errorf("$%04X read = 0x%02X, want latch 0x3C", address, got)
		}
	}
}

func TestAddressIncrementMode(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.writeRegister(0x2006, 0x20)
	ppu.writeRegister(0x2006, 0x00)
	ppu.writeRegister(0x2007, 0xAA)
	if ppu.v != 0x2001 {
		t.Errorf("v = 0x%04X after +1 increment, want 0x2001", ppu.v)
	}

	ppu.writeRegister(0x2000, 0x04) // increment by 32
	ppu.writeRegister(0x2006, 0x20)
	ppu.writeRegister(0x2006, 0x00)
	ppu.writeRegister(0x2007, 0xAA)
	if ppu.v != 0x2020 {
		t.Errorf("v = 0x%04X after +32 increment, want 0x2020", ppu.v)
	}
}

func TestDataReadBuffering(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	console.Bus.WriteVRAM(0x2100, 0x5A)
	ppu.writeRegister(0x2006, 0x21)
	ppu.writeRegister(0x2006, 0x00)

	// first read primes the buffer, second returns the value behind it
	ppu.readRegister(0x2007)
	if got := ppu.readRegister(0x2007); got != 0x5A {
		t.Errorf("second buffered read = 0x%02X, want 0x5A", got)
	}
	if ppu.v != 0x2102 {
		t.Errorf("v = 0x%04X after two reads, want 0x2102", ppu.v)
	}
}

func TestScrollWriteSequence(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.writeRegister(0x2005, 0x7D) // coarse X = 15, fine x = 5
	if ppu.x != 5 {
		t.Errorf("fine x = %d, want 5", ppu.x)
	}
	if ppu.t&0x1F != 15 {
		t.Errorf("coarse X = %d, want 15", ppu.t&0x1F)
	}
	ppu.writeRegister(0x2005, 0x5E) // coarse Y = 11, fine y = 6
	if (ppu.t>>5)&0x1F != 11 {
		t.Errorf("coarse Y = %d, want 11", (ppu.t>>5)&0x1F)
	}
	if (ppu.t>>12)&0x7 != 6 {
		t.Errorf("fine y = %d, want 6", (ppu.t>>12)&0x7)
	}
	if ppu.w != 0 {
		t.Errorf("w = %d after second write, want 0", ppu.w)
	}
}

func TestSpriteZeroHit(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.flagShowBackground = true
	ppu.flagShowSprites = true
	ppu.flagShowLeftBackground = 1
	ppu.flagShowLeftSprites = 1

	// opaque background pixel and an opaque sprite-zero pixel at x=2
	ppu.tileData = 0x1111111100000000
	ppu.x = 0
	ppu.spriteCount = 1
	ppu.spriteIndexes[0] = 0
	ppu.spritePositions[0] = 2
	ppu.spritePriorities[0] = 0
	ppu.spritePatterns[0] = 0x10000000

	ppu.Cycle = 3
	ppu.ScanLine = 10
	ppu.renderPixel()

	if ppu.flagSpriteZeroHit != 1 {
		t.Errorf("sprite zero hit not flagged")
	}
}

func TestSpriteOverflowFlag(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	// nine sprites on the same scanline
	for i := 0; i < 9; i++ {
		ppu.oamData[i*4+0] = 10
		ppu.oamData[i*4+3] = byte(i * 8)
	}
	for i := 9; i < 64; i++ {
		ppu.oamData[i*4+0] = 0xFF
	}
	ppu.ScanLine = 12
	ppu.evaluateSprites()

	if ppu.spriteCount != 8 {
		t.Errorf("spriteCount = %d, want 8", ppu.spriteCount)
	}
	if ppu.flagSpriteOverflow != 1 {
		t.Errorf("overflow flag not set with 9 sprites in range")
	}
}

func TestOddFrameSkip(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU

	ppu.flagShowBackground = true
	ppu.f = 1
	ppu.ScanLine = 261
	ppu.Cycle = 339
	frame := ppu.Frame
	ppu.Step()

	if ppu.ScanLine != 0 || ppu.Cycle != 0 {
		t.Errorf("scanline/dot = %d/%d after odd-frame skip, want 0/0", ppu.ScanLine, ppu.Cycle)
	}
	if ppu.Frame != frame+1 {
		t.Errorf("frame counter not advanced")
	}
}

func TestVBlankTriggersNMIWhenEnabled(t *testing.T) {
	console := newTestConsole(t, nil)
	ppu := console.PPU
	cpu := console.CPU

	ppu.writeRegister(0x2000, 0x80) // enable NMI output
	ppu.ScanLine = 241
	ppu.Cycle = 0
	// the NMI edge is delayed a few dots
	for i := 0; i < 20; i++ {
		ppu.Step()
	}
	if cpu.interrupt != interruptNMI {
		t.Errorf("NMI not latched after vblank start with NMI enabled")
	}
}
