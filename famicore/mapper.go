// refs: github.com/fogleman/nes
package famicore

import (
	"encoding/gob"
	"fmt"
)

// Mapper is the bank-switching circuit on the cartridge. It owns every
// register the circuit carries; the raw PRG/CHR banks stay on the Cartridge
// and are shared by reference.
//
// Read/Write cover the cartridge-visible CPU range ($6000-$FFFF) and the
// PPU pattern range ($0000-$1FFF). Step is called once per PPU dot and is
// where scanline counters advance.
type Mapper interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Step()
	Save(encoder *gob.Encoder) error
	Load(decoder *gob.Decoder) error
}

func NewMapper(console *Console) (Mapper, error) {
	cartridge := console.Cartridge
	switch cartridge.MapperID {
	case 0:
		return NewMapper000(cartridge), nil
	case 1:
		return NewMapper001(cartridge), nil
	case 2:
		return NewMapper002(cartridge), nil
	case 3:
		return NewMapper003(cartridge), nil
	case 4:
		return NewMapper004(cartridge, console), nil
	case 7:
		return NewMapper007(cartridge), nil
	}
	return nil, fmt.Errorf("unsupported mapper: %d", cartridge.MapperID)
}
