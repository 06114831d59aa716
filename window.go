package algodft

import "math"

// Exp returns a sampled complex exponential of the given length:
// sample k is e^{i·freq·(k+shift)}. With freq = 2π·m/size for integer m,
// the forward transform concentrates all energy in bin m.
func Exp(size int, freq, shift float64) []float32 {
	seq := make([]float32, 2*size)
	for k := 0; k < size; k++ {
		phase := freq * (float64(k) + shift)
		seq[2*k] = float32(math.Cos(phase))
		seq[2*k+1] = float32(math.Sin(phase))
	}

	return seq
}

// Gaussian returns a real Gaussian window of the given length, wrapped
// modulo size so the bell stays centered on sample -shift across the buffer
// edge. The window value at the center is 1.
func Gaussian(size int, sigma, shift float64) []float32 {
	out := make([]float32, size)
	for k := 0; k < size; k++ {
		d := math.Mod(float64(k)+shift, float64(size))
		if d < 0 {
			d += float64(size)
		}
		if d > float64(size)/2 {
			d -= float64(size)
		}

		out[k] = float32(math.Exp(-d * d / (2 * sigma * sigma)))
	}

	return out
}
