package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/fortunecookie/common"
)

const sampleRate = beep.SampleRate(44100)

// crackStreamer plays back a synthesized crack once.
type crackStreamer struct {
	samples []float64
	volume  float64
	pos     int
}

func newCrackStreamer(samples []float64, volume float64) *crackStreamer {
	return &crackStreamer{samples: samples, volume: volume}
}

func (c *crackStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	for i := range samples {
		if c.pos >= len(c.samples) {
			return i, true
		}
		v := c.samples[c.pos] * c.volume
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *crackStreamer) Err() error { return nil }

// crackSound plays the crack through the speaker. Without an audio device
// it stays silent.
type crackSound struct {
	ready   bool
	volume  float64
	samples []float64
	start   func(sr beep.SampleRate, bufferSize int) error
	play    func(s beep.Streamer)
}

func newCrackSound(volume float64) *crackSound {
	return &crackSound{
		volume:  volume,
		samples: common.CrackSamples(int(sampleRate)),
		start:   speaker.Init,
		play:    func(s beep.Streamer) { speaker.Play(s) },
	}
}

func (c *crackSound) init() error {
	if err := c.start(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

func (c *crackSound) Play() {
	if c == nil || !c.ready {
		return
	}
	c.play(newCrackStreamer(c.samples, c.volume))
}
