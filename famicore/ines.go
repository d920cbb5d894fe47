// refs: github.com/fogleman/nes
package famicore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const iNESFileMagic = 0x1a53454e

// 16KiB (0x4000)
const PRG_BLOCK_SIZE = 16384

// 8KiB (0x2000)
const CHR_BLOCK_SIZE = 8192

type iNESFileHeader struct {
	Magic    uint32  // iNES magic number
	NumPRG   byte    // number of PRG-ROM banks (16KB each)
	NumCHR   byte    // number of CHR-ROM banks (8KB each)
	Control1 byte    // control bits
	Control2 byte    // control bits
	NumRAM   byte    // PRG-RAM size (x 8KB)
	_        [7]byte // unused padding
}

// DecodeNESData parses an iNES image (.nes) from memory and returns a
// Cartridge on success. romFilePath is only used to derive the battery
// save-RAM file location and may be empty for battery-less images.
// http://wiki.nesdev.com/w/index.php/INES
func DecodeNESData(data []byte, romFilePath string, console *Console) (*Cartridge, error) {
	r := bytes.NewReader(data)

	header := iNESFileHeader{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("ines: truncated header: %w", err)
	}

	if header.Magic != iNESFileMagic {
		return nil, fmt.Errorf("ines: invalid magic number: 0x%08X", header.Magic)
	}

	// mapper ID
	mapper1 := header.Control1 >> 4
	mapper2 := header.Control2 >> 4
	mapperID := mapper1 | mapper2<<4

	// mirroring type: bit 3 (cartridge VRAM for all four tables) overrides
	// the horizontal/vertical bit
	mirror := header.Control1 & 1
	if header.Control1&8 == 8 {
		mirror = MIRROR_FOUR
	}

	// battery-backed RAM
	battery := (header.Control1 >> 1) & 1

	// skip trainer if present (unused)
	if header.Control1&4 == 4 {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, fmt.Errorf("ines: truncated trainer: %w", err)
		}
	}

	// read prg-rom bank(s)
	prg := make([]byte, int(header.NumPRG)*PRG_BLOCK_SIZE)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("ines: truncated PRG-ROM (%d banks declared): %w", header.NumPRG, err)
	}

	// read chr-rom bank(s)
	chr := make([]byte, int(header.NumCHR)*CHR_BLOCK_SIZE)
	if _, err := io.ReadFull(r, chr); err != nil {
		return nil, fmt.Errorf("ines: truncated CHR-ROM (%d banks declared): %w", header.NumCHR, err)
	}

	// provide chr-ram if not in file
	chrRAM := header.NumCHR == 0
	if chrRAM {
		chr = make([]byte, CHR_BLOCK_SIZE)
	}

	cartridge, err := NewCartridge(
		console, prg, chr, mapperID, mirror,
		battery, chrRAM, romFilePath, header.NumPRG, header.NumCHR,
	)
	if err != nil {
		return nil, err
	}
	console.Cartridge = cartridge

	mapper, err := NewMapper(console)
	if err != nil {
		return nil, err
	}
	cartridge.Mapper = mapper

	return cartridge, nil
}

// LoadNESFile reads an iNES file from disk and returns a Cartridge on success.
func LoadNESFile(path string, console *Console) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeNESData(data, path, console)
}
