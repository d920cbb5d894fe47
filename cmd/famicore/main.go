package main

import (
	"flag"
	"image"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gordonklaus/portaudio"
	"github.com/udatsu/famicore/famicore"
	"github.com/udatsu/famicore/internal/audio"
	"github.com/udatsu/famicore/internal/wavcapture"
	"golang.org/x/image/draw"
)

const (
	SCREEN_WIDTH  int = 256
	SCREEN_HEIGHT int = 240
)

var (
	scale      = flag.Int("scale", 2, "window scale factor")
	statePath  = flag.String("state", "", "snapshot file (F5 saves, F7 loads)")
	recordPath = flag.String("record", "", "record audio output to a WAV file")
	traceCount = flag.Int("trace", 0, "print the first N instructions in nestest log format")
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if len(flag.Args()) < 1 {
		log.Fatalln("usage: famicore [flags] rom.nes")
	}
	romPath := flag.Arg(0)
	if _, err := os.Stat(romPath); err != nil {
		log.Fatalln("no rom file specified or found")
	}

	console, err := famicore.NewConsole(romPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer console.Close()

	for i := 0; i < *traceCount; i++ {
		console.CPU.PrintInstruction()
		console.Step()
	}

	// audio
	portaudio.Initialize()
	defer portaudio.Terminate()

	audioOut := audio.NewAudio()
	if err := audioOut.Start(); err != nil {
		log.Fatalln(err)
	}
	defer audioOut.Stop()

	if *recordPath != "" {
		recorder, err := wavcapture.NewRecorder(*recordPath, int(audioOut.SampleRate))
		if err != nil {
			log.Fatalln(err)
		}
		defer recorder.Close()
		audioOut.Tap = recorder.WriteSample
		log.Printf("recording audio to %s", *recordPath)
	}

	console.SetAudioChannel(audioOut.Channel)
	console.SetAudioSampleRate(audioOut.SampleRate)

	// video
	if err := glfw.Init(); err != nil {
		log.Fatalln(err)
	}
	defer glfw.Terminate()

	windowWidth := SCREEN_WIDTH * *scale
	windowHeight := SCREEN_HEIGHT * *scale
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "famicore", nil, nil)
	if err != nil {
		log.Fatalln(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalln(err)
	}
	gl.Enable(gl.TEXTURE_2D)

	createTexture()
	screenImage := image.NewRGBA(image.Rect(0, 0, windowWidth, windowHeight))

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF5:
			if *statePath == "" {
				return
			}
			if err := console.SaveStateToFile(*statePath); err != nil {
				log.Printf("save state: %v", err)
			} else {
				log.Printf("state saved to %s", *statePath)
			}
		case glfw.KeyF7:
			if *statePath == "" {
				return
			}
			if err := console.LoadStateFromFile(*statePath); err != nil {
				log.Printf("load state: %v", err)
			} else {
				log.Printf("state loaded from %s", *statePath)
			}
		}
	})

	prevTimestamp := glfw.GetTime()
	for !window.ShouldClose() {
		curTimestamp := glfw.GetTime()
		glfw.PollEvents()

		console.SetButtons1(processInputController1(window))
		console.SetButtons2(processInputController2(window))

		dt := curTimestamp - prevTimestamp
		prevTimestamp = curTimestamp
		if dt > 1 {
			// window was dragged or suspended, skip the gap
			dt = 0
		}
		console.StepSeconds(dt)

		buffer := console.Buffer()
		draw.NearestNeighbor.Scale(screenImage, screenImage.Bounds(), buffer, buffer.Bounds(), draw.Src, nil)
		setTexture(screenImage)
		drawBuffer(window)

		window.SwapBuffers()
	}
}

func createTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texture
}

func setTexture(im *image.RGBA) {
	size := im.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(im.Pix))
}

func drawBuffer(window *glfw.Window) {
	fw, fh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()
}

func processInputController1(window *glfw.Window) [8]bool {
	var result [8]bool
	result[famicore.ButtonA] = window.GetKey(glfw.KeyZ) == glfw.Press
	result[famicore.ButtonB] = window.GetKey(glfw.KeyX) == glfw.Press
	result[famicore.ButtonSelect] = window.GetKey(glfw.KeyRightShift) == glfw.Press
	result[famicore.ButtonStart] = window.GetKey(glfw.KeyEnter) == glfw.Press
	result[famicore.ButtonUp] = window.GetKey(glfw.KeyUp) == glfw.Press
	result[famicore.ButtonDown] = window.GetKey(glfw.KeyDown) == glfw.Press
	result[famicore.ButtonLeft] = window.GetKey(glfw.KeyLeft) == glfw.Press
	result[famicore.ButtonRight] = window.GetKey(glfw.KeyRight) == glfw.Press
	return result
}

func processInputController2(window *glfw.Window) [8]bool {
	var result [8]bool
	result[famicore.ButtonA] = window.GetKey(glfw.KeyA) == glfw.Press
	result[famicore.ButtonB] = window.GetKey(glfw.KeyS) == glfw.Press
	result[famicore.ButtonSelect] = window.GetKey(glfw.KeyLeftShift) == glfw.Press
	result[famicore.ButtonStart] = window.GetKey(glfw.KeyE) == glfw.Press
	result[famicore.ButtonUp] = window.GetKey(glfw.KeyI) == glfw.Press
	result[famicore.ButtonDown] = window.GetKey(glfw.KeyK) == glfw.Press
	result[famicore.ButtonLeft] = window.GetKey(glfw.KeyJ) == glfw.Press
	result[famicore.ButtonRight] = window.GetKey(glfw.KeyL) == glfw.Press
	return result
}
