package wavcapture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestRecorderWritesDecodableWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wav")

	recorder, err := NewRecorder(path, 44100)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 1000; i++ {
		recorder.WriteSample(0.25)
	}
	if err := recorder.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	if decoder.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", decoder.SampleRate)
	}
	if len(buffer.Data) != 1000 {
		t.Errorf("decoded %d samples, want 1000", len(buffer.Data))
	}
	want := 8191 // 0.25 * 32767, truncated
	if buffer.Data[0] != want {
		t.Errorf("sample 0 = %d, want %d", buffer.Data[0], want)
	}
}

func TestRecorderClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	recorder, err := NewRecorder(path, 44100)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	recorder.WriteSample(2.0)
	recorder.WriteSample(-2.0)
	recorder.mu.Lock()
	if recorder.pending[0] != 32767 || recorder.pending[1] != -32767 {
		t.Errorf("pending = %v, want clamped full scale", recorder.pending)
	}
	recorder.mu.Unlock()
	recorder.Close()
}

func TestWriteAfterCloseIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.wav")
	recorder, err := NewRecorder(path, 44100)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := recorder.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	recorder.WriteSample(0.5) // must not panic or reopen the file
	if err := recorder.Flush(); err != nil {
		t.Errorf("Flush after close: %v", err)
	}
}
