package famicore

// helpers for building minimal iNES images in memory

type testROMOptions struct {
	mapperID   byte
	mirror     byte
	fourScreen bool
	battery    bool
	numPRG     byte
	numCHR     byte
}

// buildTestROM assembles an iNES image whose PRG starts with program and
// whose reset vector points at $8000
func buildTestROM(program []byte, opts testROMOptions) []byte {
	if opts.numPRG == 0 {
		opts.numPRG = 2
	}
	prg := make([]byte, int(opts.numPRG)*PRG_BLOCK_SIZE)
	for i := range prg {
		prg[i] = 0xEA // NOP sled so stray execution stays harmless
	}
	copy(prg, program)
	// interrupt vectors live at the top of the last bank
	prg[len(prg)-4] = 0x00 // reset -> $8000
	prg[len(prg)-3] = 0x80
	prg[len(prg)-6] = 0x00 // NMI -> $9000
	prg[len(prg)-5] = 0x90
	prg[len(prg)-2] = 0x00 // IRQ/BRK -> $A000
	prg[len(prg)-1] = 0xA0

	chr := make([]byte, int(opts.numCHR)*CHR_BLOCK_SIZE)

	header := make([]byte, 16)
	header[0] = 'N'
	header[1] = 'E'
	header[2] = 'S'
	header[3] = 0x1A
	header[4] = opts.numPRG
	header[5] = opts.numCHR
	control1 := (opts.mapperID & 0x0F) << 4
	control1 |= opts.mirror & 1
	if opts.battery {
		control1 |= 0x02
	}
	if opts.fourScreen {
		control1 |= 0x08
	}
	header[6] = control1
	header[7] = opts.mapperID & 0xF0

	rom := append(header, prg...)
	rom = append(rom, chr...)
	return rom
}

// newTestConsole builds a console around the given program with sensible
// defaults: mapper 0, vertical mirroring, one CHR bank
func newTestConsole(t interface{ Fatalf(string, ...interface{}) }, program []byte) *Console {
	rom := buildTestROM(program, testROMOptions{mirror: 1, numCHR: 1})
	console, err := NewConsoleFromData(rom)
	if err != nil {
		t.Fatalf("NewConsoleFromData: %v", err)
	}
	return console
}
