package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Chime timing
const (
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 220 * time.Millisecond
	ChimeAttack        = 4 * time.Millisecond
	ChimeRelease       = 60 * time.Millisecond
)

// Chime note frequencies (C6, G6)
const (
	chimeNote1Freq = 1046.50
	chimeNote2Freq = 1567.98
)

// Chime builds the two-note render-complete cue at the given linear volume
func Chime(rate beep.SampleRate, volume float64) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, ChimeAttack, ChimeRelease, rate)
		over := NewEnvelope(NewOscillator(freq*2, d, WaveTriangle, rate), d, ChimeAttack, ChimeRelease/2, rate)
		return beep.Mix(newVolume(fund, 0.8), newVolume(over, 0.2))
	}

	return newVolume(beep.Seq(
		note(chimeNote1Freq, ChimeNote1Duration),
		note(chimeNote2Freq, ChimeNote2Duration),
	), volume)
}

// Play opens the speaker, plays the chime and blocks until it finishes or ctx ends
// The speaker is closed before returning
func Play(ctx context.Context, sampleRate int, volume float64) error {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(Chime(rate, volume), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
