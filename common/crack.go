package common

import (
	"math"
	"math/rand/v2"
	"time"
)

// CrackDuration is the length of the synthesized cookie crack.
const CrackDuration = 250 * time.Millisecond

// crackSnaps are the sharp clicks layered over the noise, as offsets into
// the sound and their peak level.
var crackSnaps = []struct {
	at    time.Duration
	level float64
}{
	{0, 1.0},
	{35 * time.Millisecond, 0.7},
	{80 * time.Millisecond, 0.45},
}

// CrackSamples synthesizes a mono crack in [-1, 1]. The output is the same
// for a given sample rate.
func CrackSamples(sampleRate int) []float64 {
	if sampleRate <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * CrackDuration.Seconds())
	out := make([]float64, n)
	rng := rand.New(rand.NewPCG(0x636f6f6b, 0x6965))

	for i := range out {
		t := float64(i) / float64(sampleRate)
		// crumble: noise under a decaying envelope
		env := math.Exp(-18 * t)
		sample := (rng.Float64()*2 - 1) * env * 0.35

		for _, s := range crackSnaps {
			dt := t - s.at.Seconds()
			if dt < 0 {
				continue
			}
			snap := math.Exp(-220 * dt)
			if snap < 1e-4 {
				continue
			}
			sample += (rng.Float64()*2 - 1) * snap * s.level
		}

		// short fade-in keeps the first sample from clicking
		if fade := float64(i) / (float64(sampleRate) * 0.002); fade < 1 {
			sample *= float64(Lerp(0, 1, float32(fade)))
		}
		out[i] = Clamp(sample, -1, 1)
	}
	return out
}

// CrackPCM renders CrackSamples as 16-bit signed little-endian stereo.
func CrackPCM(sampleRate int) []byte {
	samples := CrackSamples(sampleRate)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(s * 0.9 * math.MaxInt16)
		idx := i * 4
		buf[idx] = byte(v)
		buf[idx+1] = byte(v >> 8)
		buf[idx+2] = byte(v)
		buf[idx+3] = byte(v >> 8)
	}
	return buf
}
