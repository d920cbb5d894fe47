// Package wavcapture records the emulated audio stream to a RIFF WAV file.
package wavcapture

import (
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const captureBitDepth = 16

// Recorder accumulates mono float samples and writes them out as 16-bit PCM.
// Safe to feed from the audio callback while the main goroutine closes it.
type Recorder struct {
	mu      sync.Mutex
	file    *os.File
	encoder *wav.Encoder
	format  *goaudio.Format
	pending []int
	closed  bool
}

func NewRecorder(path string, sampleRate int) (*Recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	encoder := wav.NewEncoder(file, sampleRate, captureBitDepth, 1, 1)
	return &Recorder{
		file:    file,
		encoder: encoder,
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
	}, nil
}

// WriteSample queues one mono sample in the -1..1 range
func (r *Recorder) WriteSample(sample float32) {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	r.mu.Lock()
	if !r.closed {
		r.pending = append(r.pending, int(sample*32767))
	}
	r.mu.Unlock()
}

// Flush writes all queued samples to the encoder
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushLocked()
}

func (r *Recorder) flushLocked() error {
	if len(r.pending) == 0 || r.closed {
		return nil
	}
	buffer := &goaudio.IntBuffer{
		Format:         r.format,
		Data:           r.pending,
		SourceBitDepth: captureBitDepth,
	}
	r.pending = nil
	return r.encoder.Write(buffer)
}

// Close flushes, finalizes the WAV header and closes the file
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	if err := r.flushLocked(); err != nil {
		return err
	}
	r.closed = true
	if err := r.encoder.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
