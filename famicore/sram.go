package famicore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// 8KiB (0x2000)
const SRAM_SIZE = 8192

// SaveRAM persists battery-backed cartridge RAM to a .sav file next to the
// ROM image. The file is memory mapped so every CPU write lands in the page
// cache immediately; no explicit flush pass is needed during emulation.
type SaveRAM struct {
	file *os.File
	mmap mmap.MMap

	// Data aliases the mapped region and is exactly size bytes long.
	Data []byte
}

func NewSaveRAM(romFilePath string, size int) (*SaveRAM, error) {
	savePath := saveFilePath(romFilePath)

	_, err := os.Stat(savePath)
	if os.IsNotExist(err) {
		file, err := os.Create(savePath)
		if err != nil {
			return nil, fmt.Errorf("sram: create %s: %w", savePath, err)
		}
		if err := file.Truncate(int64(size)); err != nil {
			file.Close()
			return nil, fmt.Errorf("sram: resize %s: %w", savePath, err)
		}
		if err := file.Close(); err != nil {
			return nil, fmt.Errorf("sram: close %s: %w", savePath, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("sram: stat %s: %w", savePath, err)
	}

	file, err := os.OpenFile(savePath, os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("sram: open %s: %w", savePath, err)
	}

	m, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("sram: map %s: %w", savePath, err)
	}
	if len(m) < size {
		m.Unmap()
		file.Close()
		return nil, fmt.Errorf("sram: %s is %d bytes, want %d", savePath, len(m), size)
	}

	return &SaveRAM{
		file: file,
		mmap: m,
		Data: m[:size],
	}, nil
}

func (s *SaveRAM) Flush() error {
	return s.mmap.Flush()
}

func (s *SaveRAM) Close() {
	s.mmap.Unmap()
	s.file.Close()
}

func saveFilePath(romFilePath string) string {
	fileName := filepath.Base(romFilePath)
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	dir := filepath.Dir(filepath.Clean(romFilePath))
	return filepath.Join(dir, fileName+`.sav`)
}
