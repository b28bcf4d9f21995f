package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := abs(buf[i][0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, w, rate, 1)
		n, peak := drain(osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", w, rate.N(100*time.Millisecond), n)
		}
		if peak > 1 {
			t.Errorf("Wave %d: sample out of range %f", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Wave %d: unexpected error %v", w, osc.Err())
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate, 1), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release ramp, got %f >= %f", buf[99][0], buf[90][0])
	}
}

func TestSetGain(t *testing.T) {
	v := newVolume(nil, 0)
	if !v.Silent {
		t.Error("Expected zero gain to be silent")
	}
	setGain(v, 0.5)
	if v.Silent || v.Volume != -1 {
		t.Errorf("Expected log2(0.5) = -1, got %f silent=%v", v.Volume, v.Silent)
	}
	setGain(v, 1)
	if v.Volume != 0 {
		t.Errorf("Expected unity volume 0, got %f", v.Volume)
	}
}

func TestSynthesize(t *testing.T) {
	rate := beep.SampleRate(22050)
	buf, err := Synthesize(3, rate)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	want := rate.N(1200 * time.Millisecond)
	if buf.Len() != want {
		t.Errorf("Expected %d samples, got %d", want, buf.Len())
	}
	_, peak := drain(buf.Streamer(0, buf.Len()))
	if peak == 0 {
		t.Error("Expected audible placeholder")
	}
}
