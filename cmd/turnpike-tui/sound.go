package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tones plays short sine beeps. Without a working speaker it stays silent.
type tones struct {
	enabled bool
}

func newTones() (*tones, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &tones{}, err
	}
	return &tones{enabled: true}, nil
}

func (t *tones) play(freq int, d time.Duration) {
	if !t.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (t *tones) crash()      { t.play(180, 120*time.Millisecond) }
func (t *tones) checkpoint() { t.play(880, 80*time.Millisecond) }
func (t *tones) finish()     { t.play(660, 300*time.Millisecond) }

func (t *tones) close() {
	if t.enabled {
		speaker.Close()
	}
}
