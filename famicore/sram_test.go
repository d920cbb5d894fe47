package famicore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveRAMPersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.nes")

	first, err := NewSaveRAM(romPath, SRAM_SIZE)
	if err != nil {
		t.Fatalf("NewSaveRAM: %v", err)
	}
	if len(first.Data) != SRAM_SIZE {
		t.Fatalf("mapped %d bytes, want %d", len(first.Data), SRAM_SIZE)
	}
	first.Data[0] = 0xAA
	first.Data[SRAM_SIZE-1] = 0x55
	if err := first.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	first.Close()

	second, err := NewSaveRAM(romPath, SRAM_SIZE)
	if err != nil {
		t.Fatalf("NewSaveRAM reopen: %v", err)
	}
	defer second.Close()
	if second.Data[0] != 0xAA || second.Data[SRAM_SIZE-1] != 0x55 {
		t.Errorf("save RAM contents lost across sessions")
	}
}

func TestSaveFilePath(t *testing.T) {
	got := saveFilePath("/roms/zelda.nes")
	want := filepath.Join("/roms", "zelda.sav")
	if got != want {
		t.Errorf("saveFilePath = %q, want %q", got, want)
	}
}

func TestBatteryCartridgeOpensSaveFile(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "battery.nes")
	rom := buildTestROM(nil, testROMOptions{mapperID: 0, numPRG: 2, numCHR: 1, battery: true})
	if err := os.WriteFile(romPath, rom, 0644); err != nil {
		t.Fatalf("write rom: %v", err)
	}

	console, err := NewConsole(romPath)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	console.Cartridge.Mapper.Write(0x6000, 0x42)
	console.Close()

	savePath := filepath.Join(dir, "battery.sav")
	data, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("read save file: %v", err)
	}
	if data[0] != 0x42 {
		t.Errorf("save file byte 0 = 0x%02X, want 0x42", data[0])
	}
}
