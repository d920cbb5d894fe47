// refs: github.com/fogleman/nes
package famicore

import (
	"image"
	"image/color"
)

// Console is the full machine: CPU, PPU and APU lock-stepped over the shared
// bus with a cartridge inserted. Step drives everything from the CPU clock;
// each CPU cycle fans out to three PPU dots and one APU cycle, so all units
// observe a single consistent timeline.
type Console struct {
	CPU         *CPU
	APU         *APU
	PPU         *PPU
	Bus         *Bus
	Cartridge   *Cartridge
	Controller1 *Controller
	Controller2 *Controller
}

// NewConsole builds a console around the iNES file at path
func NewConsole(path string) (*Console, error) {
	console := &Console{}

	console.Controller1 = NewController()
	console.Controller2 = NewController()
	console.CPU = NewCPU(console)
	console.APU = NewAPU(console)
	console.PPU = NewPPU(console)

	cartridge, err := LoadNESFile(path, console)
	if err != nil {
		return nil, err
	}
	console.Cartridge = cartridge

	console.Bus = NewBus(console.CPU, console.PPU, console.APU,
		console.Controller1, console.Controller2, cartridge)
	console.CPU.bus = console.Bus

	console.Reset()
	return console, nil
}

// NewConsoleFromData builds a console from an in-memory iNES image. Battery
// save RAM is held in memory only since there is no file to map it next to.
func NewConsoleFromData(data []byte) (*Console, error) {
	console := &Console{}

	console.Controller1 = NewController()
	console.Controller2 = NewController()
	console.CPU = NewCPU(console)
	console.APU = NewAPU(console)
	console.PPU = NewPPU(console)

	cartridge, err := DecodeNESData(data, "", console)
	if err != nil {
		return nil, err
	}
	console.Cartridge = cartridge

	console.Bus = NewBus(console.CPU, console.PPU, console.APU,
		console.Controller1, console.Controller2, cartridge)
	console.CPU.bus = console.Bus

	console.Reset()
	return console, nil
}

// Reset performs a power-on reset. RAM and cartridge state are left alone,
// matching the console's reset button rather than a power cycle.
func (console *Console) Reset() {
	console.CPU.Reset()
	console.PPU.Reset()
}

// Step runs one CPU instruction and keeps the PPU and APU in lockstep: three
// PPU dots and one APU cycle per CPU cycle consumed. Returns the CPU cycles
// consumed.
func (console *Console) Step() int {
	cpuCycles := console.CPU.Step()
	ppuCycles := cpuCycles * 3
	for i := 0; i < ppuCycles; i++ {
		console.PPU.Step()
		console.Cartridge.Mapper.Step()
	}
	for i := 0; i < cpuCycles; i++ {
		console.APU.Step()
	}
	return cpuCycles
}

// StepFrame runs the console until the PPU finishes the current frame and
// returns the CPU cycles consumed
func (console *Console) StepFrame() int {
	cpuCycles := 0
	frame := console.PPU.Frame
	for frame == console.PPU.Frame {
		cpuCycles += console.Step()
	}
	return cpuCycles
}

// StepSeconds runs the console for the given stretch of emulated time
func (console *Console) StepSeconds(seconds float64) {
	cycles := int(CPUFrequency * seconds)
	for cycles > 0 {
		cycles -= console.Step()
	}
}

// Buffer returns the most recently completed frame
func (console *Console) Buffer() *image.RGBA {
	return console.PPU.front
}

// BackgroundColor returns the current universal background palette entry
func (console *Console) BackgroundColor() color.RGBA {
	return Palette[console.PPU.readPalette(0)%64]
}

func (console *Console) SetButtons1(buttons [8]bool) {
	console.Controller1.SetButtons(buttons)
}

func (console *Console) SetButtons2(buttons [8]bool) {
	console.Controller2.SetButtons(buttons)
}

// SetAudioChannel installs the channel emulated audio samples are delivered
// on. Samples are dropped, not blocked on, when the consumer falls behind.
func (console *Console) SetAudioChannel(channel chan float32) {
	console.APU.channel = channel
}

// SetAudioSampleRate sets the output sample rate in Hz and installs the
// filter chain approximating the console's analog output stage
func (console *Console) SetAudioSampleRate(sampleRate float64) {
	if sampleRate != 0 {
		// Convert samples per second to cpu steps per sample
		console.APU.sampleRate = CPUFrequency / sampleRate
		console.APU.filterChain = APUFilterChain{
			HighPassFilter(float32(sampleRate), 90),
			HighPassFilter(float32(sampleRate), 440),
			LowPassFilter(float32(sampleRate), 14000),
		}
	} else {
		console.APU.filterChain = nil
	}
}

// Close flushes and unmaps battery save RAM
func (console *Console) Close() {
	if console.Cartridge != nil {
		console.Cartridge.Close()
	}
}
