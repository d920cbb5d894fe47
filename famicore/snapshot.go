// refs: github.com/fogleman/nes
package famicore

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Snapshot stream layout: a 6-byte header followed by a gob payload holding
// every mutable piece of machine state.
//
//	offset  size  field
//	0       4     magic "FCSS"
//	4       1     snapshot version
//	5       1     mapper ID of the inserted cartridge
//
// The header is validated in full before any machine state is touched, so a
// snapshot for the wrong cartridge or format leaves the console running as it
// was.
const snapshotVersion = 1

var snapshotMagic = [4]byte{'F', 'C', 'S', 'S'}

type SnapshotError struct {
	Reason string
}

func (e *SnapshotError) Error() string {
	return "snapshot: " + e.Reason
}

// encodeFields gob-encodes each value in order, stopping at the first error
func encodeFields(encoder *gob.Encoder, fields ...interface{}) error {
	for _, field := range fields {
		if err := encoder.Encode(field); err != nil {
			return err
		}
	}
	return nil
}

// decodeFields gob-decodes into each pointer in order, stopping at the first
// error
func decodeFields(decoder *gob.Decoder, fields ...interface{}) error {
	for _, field := range fields {
		if err := decoder.Decode(field); err != nil {
			return err
		}
	}
	return nil
}

func (console *Console) saveComponents(encoder *gob.Encoder) error {
	if err := console.CPU.Save(encoder); err != nil {
		return err
	}
	if err := console.Bus.Save(encoder); err != nil {
		return err
	}
	if err := console.PPU.Save(encoder); err != nil {
		return err
	}
	if err := console.APU.Save(encoder); err != nil {
		return err
	}
	if err := console.Cartridge.Save(encoder); err != nil {
		return err
	}
	return console.Cartridge.Mapper.Save(encoder)
}

func (console *Console) loadComponents(decoder *gob.Decoder) error {
	if err := console.CPU.Load(decoder); err != nil {
		return err
	}
	if err := console.Bus.Load(decoder); err != nil {
		return err
	}
	if err := console.PPU.Load(decoder); err != nil {
		return err
	}
	if err := console.APU.Load(decoder); err != nil {
		return err
	}
	if err := console.Cartridge.Load(decoder); err != nil {
		return err
	}
	return console.Cartridge.Mapper.Load(decoder)
}

// SaveState writes a snapshot of the full machine state
func (console *Console) SaveState(w io.Writer) error {
	header := make([]byte, 6)
	copy(header, snapshotMagic[:])
	header[4] = snapshotVersion
	header[5] = console.Cartridge.MapperID
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	if err := console.saveComponents(gob.NewEncoder(w)); err != nil {
		return fmt.Errorf("snapshot: encode state: %w", err)
	}
	return nil
}

// LoadState restores a snapshot previously written by SaveState. Header
// mismatches (format, version, or a snapshot taken with a different mapper)
// are rejected before any state is modified. A payload that fails to decode
// rolls the machine back to the state it had when LoadState was called.
func (console *Console) LoadState(r io.Reader) error {
	header := make([]byte, 6)
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("snapshot: read header: %w", err)
	}
	if header[0] != snapshotMagic[0] || header[1] != snapshotMagic[1] ||
		header[2] != snapshotMagic[2] || header[3] != snapshotMagic[3] {
		return &SnapshotError{Reason: "bad magic, not a snapshot stream"}
	}
	if header[4] != snapshotVersion {
		return &SnapshotError{Reason: fmt.Sprintf(
			"unsupported version %d (want %d)", header[4], snapshotVersion)}
	}
	if header[5] != console.Cartridge.MapperID {
		return &SnapshotError{Reason: fmt.Sprintf(
			"mapper mismatch: snapshot has %d, cartridge has %d",
			header[5], console.Cartridge.MapperID)}
	}

	var backup bytes.Buffer
	if err := console.saveComponents(gob.NewEncoder(&backup)); err != nil {
		return fmt.Errorf("snapshot: back up current state: %w", err)
	}
	if err := console.loadComponents(gob.NewDecoder(r)); err != nil {
		// undo the partial restore; the backup was just written so this
		// cannot fail
		console.loadComponents(gob.NewDecoder(&backup))
		return &SnapshotError{Reason: fmt.Sprintf("corrupt payload: %v", err)}
	}
	return nil
}

// SaveStateToFile writes a snapshot to path, creating directories as needed
func (console *Console) SaveStateToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return console.SaveState(file)
}

// LoadStateFromFile restores a snapshot from path
func (console *Console) LoadStateFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return console.LoadState(file)
}
