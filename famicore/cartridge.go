// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"log"
)

type Cartridge struct {
	console *Console

	PRG      []byte // PRG-ROM banks
	CHR      []byte // CHR-ROM (or CHR-RAM) banks
	SRAM     []byte // battery-backed save RAM, 8 KiB
	MapperID byte   // mapper ID
	Mapper   Mapper
	Mirror   byte  // mirroring mode, mutable by the mapper
	Battery  byte  // battery present
	CHRRAM   bool  // CHR is RAM (writable)
	saveRAM  *SaveRAM

	// Meta data (from iNES header)
	ROMFilePath string
	NumPRG      byte
	NumCHR      byte
}

func NewCartridge(console *Console, prg, chr []byte, mapperID, mirror, battery byte, chrRAM bool, romFilePath string, numPRG, numCHR byte) (*Cartridge, error) {
	log.Printf("PRG banks: %d", numPRG)
	log.Printf("CHR banks: %d", numCHR)
	log.Printf("Has Battery: %v", battery == 1)
	log.Printf("Mapper ID: %d", mapperID)
	log.Printf("Mirroring: %d", mirror)

	c := &Cartridge{
		console:     console,
		PRG:         prg,
		CHR:         chr,
		MapperID:    mapperID,
		Mapper:      nil,
		Mirror:      mirror,
		Battery:     battery,
		CHRRAM:      chrRAM,
		ROMFilePath: romFilePath,
		NumPRG:      numPRG,
		NumCHR:      numCHR,
	}

	if battery == 1 && romFilePath != "" {
		saveRAM, err := NewSaveRAM(romFilePath, SRAM_SIZE)
		if err != nil {
			return nil, err
		}
		c.saveRAM = saveRAM
		c.SRAM = saveRAM.Data
	} else {
		c.SRAM = make([]byte, SRAM_SIZE)
	}

	return c, nil
}

// Save snapshots the mutable cartridge state. PRG is never written so only
// SRAM, CHR-RAM and the current mirroring mode go into the stream.
func (c *Cartridge) Save(encoder *gob.Encoder) error {
	if err := encodeFields(encoder, c.SRAM, c.Mirror, c.CHRRAM); err != nil {
		return err
	}
	if c.CHRRAM {
		return encoder.Encode(c.CHR)
	}
	return nil
}

func (c *Cartridge) Load(decoder *gob.Decoder) error {
	var sram []byte
	var mirror byte
	var chrRAM bool
	if err := decodeFields(decoder, &sram, &mirror, &chrRAM); err != nil {
		return err
	}
	copy(c.SRAM, sram)
	c.Mirror = mirror
	if chrRAM {
		return decoder.Decode(&c.CHR)
	}
	return nil
}

func (c *Cartridge) HasBattery() bool {
	return c.Battery == 1
}

// WriteCHR stores a byte into character memory. CHR-ROM carts ignore writes;
// some games probe for CHR-RAM this way.
func (c *Cartridge) WriteCHR(offset uint32, value byte) {
	if c.CHRRAM {
		c.CHR[offset%uint32(len(c.CHR))] = value
	}
}

func (c *Cartridge) Close() {
	if c.saveRAM != nil {
		c.saveRAM.Close()
	}
}
