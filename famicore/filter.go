// refs: github.com/fogleman/nes
package famicore

import "math"

// APUFilter shapes the raw channel mix the way the console's analog output
// stage does
type APUFilter interface {
	Step(x float32) float32
}

// firstOrderFilter implements y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1]
type firstOrderFilter struct {
	B0 float32
	B1 float32
	A1 float32

	prevX float32
	prevY float32
}

func (f *firstOrderFilter) Step(x float32) float32 {
	y := f.B0*x + f.B1*f.prevX - f.A1*f.prevY
	f.prevY = y
	f.prevX = x
	return y
}

// LowPassFilter cuts frequencies above the given point
func LowPassFilter(sampleRate, cutoffFreq float32) APUFilter {
	c := sampleRate / math.Pi / cutoffFreq
	a0i := 1 / (1 + c)
	return &firstOrderFilter{
		B0: a0i,
		B1: a0i,
		A1: (1 - c) * a0i,
	}
}

// HighPassFilter cuts frequencies below the given point
func HighPassFilter(sampleRate, cutoffFreq float32) APUFilter {
	c := sampleRate / math.Pi / cutoffFreq
	a0i := 1 / (1 + c)
	return &firstOrderFilter{
		B0: c * a0i,
		B1: -c * a0i,
		A1: (1 - c) * a0i,
	}
}

type APUFilterChain []APUFilter

func (fc APUFilterChain) Step(x float32) float32 {
	if fc != nil {
		for i := range fc {
			x = fc[i].Step(x)
		}
	}
	return x
}
