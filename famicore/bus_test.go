package famicore

import "testing"

func TestRAMMirroring(t *testing.T) {
	console := newTestConsole(t, nil)
	bus := console.Bus

	bus.WriteMemory(0x0000, 0xAB)
	for _, address := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := bus.ReadMemory(address); got != 0xAB {
			t.Errorf("mem[0x%04X] = 0x%02X, want 0xAB", address, got)
		}
	}

	bus.WriteMemory(0x1FFF, 0xCD)
	if got := bus.ReadMemory(0x07FF); got != 0xCD {
		t.Errorf("mem[0x07FF] = 0x%02X, want 0xCD", got)
	}
}

func TestOpenBusReads(t *testing.T) {
	console := newTestConsole(t, nil)
	bus := console.Bus

	// latch a known value, then read an unmapped region
	bus.WriteMemory(0x0000, 0x5E)
	bus.ReadMemory(0x0000)
	if got := bus.ReadMemory(0x5000); got != 0x5E {
		t.Errorf("unmapped read = 0x%02X, want open-bus 0x5E", got)
	}
	// write-only APU register range behaves the same
	if got := bus.ReadMemory(0x4000); got != 0x5E {
		t.Errorf("write-only register read = 0x%02X, want open-bus 0x5E", got)
	}
	// $4014 is write-only too
	if got := bus.ReadMemory(0x4014); got != 0x5E {
		t.Errorf("$4014 read = 0x%02X, want open-bus 0x5E", got)
	}
}

func TestMirrorAddress(t *testing.T) {
	tests := []struct {
		name    string
		mode    byte
		address uint16
		want    uint16
	}{
		{"horizontal pairs top", MIRROR_HORIZONTAL, 0x2400, 0x2000},
		{"horizontal pairs bottom", MIRROR_HORIZONTAL, 0x2C00, 0x2400},
		{"vertical pairs left", MIRROR_VERTICAL, 0x2800, 0x2000},
		{"vertical pairs right", MIRROR_VERTICAL, 0x2C00, 0x2400},
		{"single screen 0", MIRROR_SINGLE0, 0x2C00, 0x2000},
		{"single screen 1", MIRROR_SINGLE1, 0x2000, 0x2400},
		{"offset preserved", MIRROR_VERTICAL, 0x2801, 0x2001},
		{"3xxx aliases 2xxx", MIRROR_VERTICAL, 0x3000, 0x2000},
		{"four screen table 2", MIRROR_FOUR, 0x2800, 0x2800},
		{"four screen table 3", MIRROR_FOUR, 0x2C00, 0x2C00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MirrorAddress(tt.mode, tt.address); got != tt.want {
				t.Errorf("MirrorAddress(%d, 0x%04X) = 0x%04X, want 0x%04X",
					tt.mode, tt.address, got, tt.want)
			}
		})
	}
}

func TestNametableMirroring(t *testing.T) {
	console := newTestConsole(t, nil)
	bus := console.Bus

	// test console uses vertical mirroring: $2000 and $2800 share a table
	bus.WriteVRAM(0x2005, 0x77)
	if got := bus.ReadVRAM(0x2805); got != 0x77 {
		t.Errorf("vertical mirror: $2805 = 0x%02X, want 0x77", got)
	}

	console.Cartridge.Mirror = MIRROR_HORIZONTAL
	bus.WriteVRAM(0x2005, 0x33)
	if got := bus.ReadVRAM(0x2405); got != 0x33 {
		t.Errorf("horizontal mirror: $2405 = 0x%02X, want 0x33", got)
	}
}

func TestFourScreenNametablesAreDistinct(t *testing.T) {
	rom := buildTestROM(nil, testROMOptions{fourScreen: true, numPRG: 2, numCHR: 1})
	console, err := NewConsoleFromData(rom)
	if err != nil {
		t.Fatalf("NewConsoleFromData: %v", err)
	}
	bus := console.Bus

	values := map[uint16]byte{
		0x2005: 0x11,
		0x2405: 0x22,
		0x2805: 0x33,
		0x2C05: 0x44,
	}
	for address, value := range values {
		bus.WriteVRAM(address, value)
	}
	for address, want := range values {
		if got := bus.ReadVRAM(address); got != want {
			t.Errorf("four screen: $%04X = 0x%02X, want 0x%02X", address, got, want)
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	console := newTestConsole(t, nil)
	bus := console.Bus

	// $3FF6 aliases $2006
	bus.WriteMemory(0x3FF6, 0x21)
	bus.WriteMemory(0x3FF6, 0x08)
	if console.PPU.v != 0x2108 {
		t.Errorf("v = 0x%04X after mirrored $2006 writes, want 0x2108", console.PPU.v)
	}
}

func TestControllerPortRouting(t *testing.T) {
	console := newTestConsole(t, nil)
	bus := console.Bus

	var buttons [8]bool
	buttons[ButtonA] = true
	console.SetButtons1(buttons)

	// strobe then read serially
	bus.WriteMemory(0x4016, 1)
	bus.WriteMemory(0x4016, 0)
	if got := bus.ReadMemory(0x4016); got&1 != 1 {
		t.Errorf("first $4016 read = 0x%02X, want A pressed", got)
	}
	if got := bus.ReadMemory(0x4016); got&1 != 0 {
		t.Errorf("second $4016 read = 0x%02X, want B released", got)
	}
}
