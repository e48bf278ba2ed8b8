package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(NewOscillator(1000, 20*time.Millisecond, wave, rate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d: %v", wave, i, s)
			}
		}
	}
}

func TestOscillatorSineStartsAtZero(t *testing.T) {
	samples := drain(NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(44100)))
	if len(samples) == 0 || samples[0][0] != 0 {
		t.Errorf("Expected first sine sample 0, got %v", samples[:1])
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Expected half volume mid attack, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half volume mid release, got %f", samples[90][0])
	}
}

func TestChimeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(Chime(rate, 1))

	max := rate.N(ChimeNote1Duration) + rate.N(ChimeNote2Duration)
	if len(samples) == 0 || len(samples) > max {
		t.Fatalf("Expected up to %d samples, got %d", max, len(samples))
	}

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1.0001 {
		t.Errorf("Expected peak in (0, 1], got %f", peak)
	}
}

func TestChimeSilentAtZeroVolume(t *testing.T) {
	for _, s := range drain(Chime(beep.SampleRate(22050), 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}
