package famicore

import (
	"strings"
	"testing"
)

func TestDecodeNESData(t *testing.T) {
	rom := buildTestROM(nil, testROMOptions{mapperID: 0, mirror: 1, numPRG: 2, numCHR: 1})
	console := &Console{}
	cartridge, err := DecodeNESData(rom, "", console)
	if err != nil {
		t.Fatalf("DecodeNESData: %v", err)
	}
	if cartridge.MapperID != 0 {
		t.Errorf("mapper ID = %d, want 0", cartridge.MapperID)
	}
	if cartridge.Mirror != MIRROR_VERTICAL {
		t.Errorf("mirror = %d, want vertical", cartridge.Mirror)
	}
	if len(cartridge.PRG) != 2*PRG_BLOCK_SIZE {
		t.Errorf("PRG size = %d, want %d", len(cartridge.PRG), 2*PRG_BLOCK_SIZE)
	}
	if len(cartridge.CHR) != CHR_BLOCK_SIZE {
		t.Errorf("CHR size = %d, want %d", len(cartridge.CHR), CHR_BLOCK_SIZE)
	}
	if cartridge.CHRRAM {
		t.Errorf("CHRRAM set for a CHR-ROM image")
	}
}

func TestDecodeNESDataFourScreen(t *testing.T) {
	// bit 3 takes precedence over the horizontal/vertical bit
	rom := buildTestROM(nil, testROMOptions{mirror: 1, fourScreen: true, numPRG: 2, numCHR: 1})
	console := &Console{}
	cartridge, err := DecodeNESData(rom, "", console)
	if err != nil {
		t.Fatalf("DecodeNESData: %v", err)
	}
	if cartridge.Mirror != MIRROR_FOUR {
		t.Errorf("mirror = %d, want four-screen", cartridge.Mirror)
	}
}

func TestDecodeNESDataCHRRAM(t *testing.T) {
	rom := buildTestROM(nil, testROMOptions{mapperID: 0, numPRG: 2, numCHR: 0})
	console := &Console{}
	cartridge, err := DecodeNESData(rom, "", console)
	if err != nil {
		t.Fatalf("DecodeNESData: %v", err)
	}
	if !cartridge.CHRRAM {
		t.Fatalf("CHRRAM not set when the image declares zero CHR banks")
	}
	if len(cartridge.CHR) != CHR_BLOCK_SIZE {
		t.Errorf("CHR-RAM size = %d, want %d", len(cartridge.CHR), CHR_BLOCK_SIZE)
	}
	cartridge.Mapper.Write(0x0123, 0x45)
	if got := cartridge.Mapper.Read(0x0123); got != 0x45 {
		t.Errorf("CHR-RAM readback = 0x%02X, want 0x45", got)
	}
}

func TestDecodeNESDataErrors(t *testing.T) {
	valid := buildTestROM(nil, testROMOptions{mapperID: 0, numPRG: 2, numCHR: 1})

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, "truncated header"},
		{"bad magic", append([]byte("NOPE"), valid[4:]...), "invalid magic"},
		{"truncated PRG", valid[:16+100], "truncated PRG-ROM"},
		{"truncated CHR", valid[:16+2*PRG_BLOCK_SIZE+100], "truncated CHR-ROM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &Console{}
			_, err := DecodeNESData(tt.data, "", console)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDecodeNESDataTrainerSkip(t *testing.T) {
	rom := buildTestROM(nil, testROMOptions{mapperID: 0, numPRG: 2, numCHR: 1})
	// set the trainer bit and splice 512 bytes between header and PRG
	rom[6] |= 0x04
	withTrainer := make([]byte, 0, len(rom)+512)
	withTrainer = append(withTrainer, rom[:16]...)
	withTrainer = append(withTrainer, make([]byte, 512)...)
	withTrainer = append(withTrainer, rom[16:]...)

	console := &Console{}
	cartridge, err := DecodeNESData(withTrainer, "", console)
	if err != nil {
		t.Fatalf("DecodeNESData with trainer: %v", err)
	}
	// PRG must start after the trainer, so the reset vector is intact
	if cartridge.PRG[len(cartridge.PRG)-3] != 0x80 {
		t.Errorf("reset vector corrupted, trainer not skipped")
	}
}
