package famicore

import (
	"bytes"
	"errors"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	// LDA #$42; STA $10; JMP $8000
	console := newTestConsole(t, []byte{0xA9, 0x42, 0x85, 0x10, 0x4C, 0x00, 0x80})
	for i := 0; i < 1000; i++ {
		console.Step()
	}

	var snapshot bytes.Buffer
	if err := console.SaveState(&snapshot); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	savedPC := console.CPU.state.PC
	savedCycles := console.CPU.Cycles
	savedDot := console.PPU.Cycle
	savedLine := console.PPU.ScanLine

	for i := 0; i < 500; i++ {
		console.Step()
	}
	if console.CPU.Cycles == savedCycles {
		t.Fatalf("console did not advance after snapshot")
	}

	if err := console.LoadState(bytes.NewReader(snapshot.Bytes())); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if console.CPU.state.PC != savedPC {
		t.Errorf("PC = 0x%04X after restore, want 0x%04X", console.CPU.state.PC, savedPC)
	}
	if console.CPU.Cycles != savedCycles {
		t.Errorf("cycles = %d after restore, want %d", console.CPU.Cycles, savedCycles)
	}
	if console.PPU.Cycle != savedDot || console.PPU.ScanLine != savedLine {
		t.Errorf("PPU at %d/%d after restore, want %d/%d",
			console.PPU.ScanLine, console.PPU.Cycle, savedLine, savedDot)
	}
	if got := console.Bus.ReadMemory(0x0010); got != 0x42 {
		t.Errorf("mem[$10] = 0x%02X after restore, want 0x42", got)
	}

	// a restored console must resume deterministically: re-saving right away
	// yields an identical stream
	var again bytes.Buffer
	if err := console.SaveState(&again); err != nil {
		t.Fatalf("SaveState after restore: %v", err)
	}
	if !bytes.Equal(snapshot.Bytes(), again.Bytes()) {
		t.Errorf("snapshot not stable across save/load/save")
	}
}

func TestSnapshotRejectsBadMagic(t *testing.T) {
	console := newTestConsole(t, nil)
	pc := console.CPU.state.PC

	stream := []byte{'X', 'X', 'X', 'X', snapshotVersion, 0, 1, 2, 3}
	err := console.LoadState(bytes.NewReader(stream))
	if err == nil {
		t.Fatalf("expected error for bad magic")
	}
	var snapErr *SnapshotError
	if !errors.As(err, &snapErr) {
		t.Errorf("error type = %T, want *SnapshotError", err)
	}
	if console.CPU.state.PC != pc {
		t.Errorf("machine state modified by rejected snapshot")
	}
}

func TestSnapshotRejectsWrongVersion(t *testing.T) {
	console := newTestConsole(t, nil)

	var snapshot bytes.Buffer
	if err := console.SaveState(&snapshot); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	data := snapshot.Bytes()
	data[4] = snapshotVersion + 1

	var snapErr *SnapshotError
	if err := console.LoadState(bytes.NewReader(data)); !errors.As(err, &snapErr) {
		t.Fatalf("expected *SnapshotError for version mismatch, got %v", err)
	}
}

func TestSnapshotRejectsMapperMismatch(t *testing.T) {
	source := newMapperConsole(t, testROMOptions{mapperID: 2, numPRG: 2, numCHR: 1}, false)
	target := newMapperConsole(t, testROMOptions{mapperID: 0, numPRG: 2, numCHR: 1}, false)

	var snapshot bytes.Buffer
	if err := source.SaveState(&snapshot); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	pc := target.CPU.state.PC
	var snapErr *SnapshotError
	if err := target.LoadState(bytes.NewReader(snapshot.Bytes())); !errors.As(err, &snapErr) {
		t.Fatalf("expected *SnapshotError for mapper mismatch, got %v", err)
	}
	if target.CPU.state.PC != pc {
		t.Errorf("machine state modified by rejected snapshot")
	}
}

func TestSnapshotRejectsTruncatedPayload(t *testing.T) {
	console := newTestConsole(t, []byte{0xA9, 0x42, 0x85, 0x10, 0x4C, 0x00, 0x80})
	for i := 0; i < 1000; i++ {
		console.Step()
	}

	var snapshot bytes.Buffer
	if err := console.SaveState(&snapshot); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	// valid header, payload cut short mid-stream
	truncated := snapshot.Bytes()[:6+64]

	for i := 0; i < 500; i++ {
		console.Step()
	}
	cycles := console.CPU.Cycles
	pc := console.CPU.state.PC
	dot := console.PPU.Cycle
	line := console.PPU.ScanLine

	err := console.LoadState(bytes.NewReader(truncated))
	if err == nil {
		t.Fatalf("expected error for truncated payload")
	}
	var snapErr *SnapshotError
	if !errors.As(err, &snapErr) {
		t.Errorf("error type = %T, want *SnapshotError", err)
	}
	if console.CPU.Cycles != cycles || console.CPU.state.PC != pc {
		t.Errorf("CPU at cycles=%d PC=0x%04X after rejected restore, want cycles=%d PC=0x%04X",
			console.CPU.Cycles, console.CPU.state.PC, cycles, pc)
	}
	if console.PPU.Cycle != dot || console.PPU.ScanLine != line {
		t.Errorf("PPU at %d/%d after rejected restore, want %d/%d",
			console.PPU.ScanLine, console.PPU.Cycle, line, dot)
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})
	console.Step()

	path := t.TempDir() + "/state.fcss"
	if err := console.SaveStateToFile(path); err != nil {
		t.Fatalf("SaveStateToFile: %v", err)
	}
	if err := console.LoadStateFromFile(path); err != nil {
		t.Fatalf("LoadStateFromFile: %v", err)
	}
}
