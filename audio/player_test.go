package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/nextbot-maze/parameter"
)

// loudest pulls n samples from s and returns the peak magnitude
func loudest(s beep.Streamer, n int) float64 {
	buf := make([][2]float64, 512)
	peak := 0.0
	for n > 0 {
		k := min(n, len(buf))
		s.Stream(buf[:k])
		for _, smp := range buf[:k] {
			peak = max(peak, math.Abs(smp[0]), math.Abs(smp[1]))
		}
		n -= k
	}
	return peak
}

func TestBeepPlayerVoiceLifecycle(t *testing.T) {
	rate := beep.SampleRate(8000)
	p := NewBeepPlayer(rate, 1)
	if p.Loaded(0) {
		t.Fatal("Expected empty player")
	}
	if _, ok := p.Play(0, 1, nil); ok {
		t.Fatal("Expected play to fail without a buffer")
	}

	if err := p.LoadSynth(0); err != nil {
		t.Fatalf("LoadSynth: %v", err)
	}
	if !p.Loaded(0) {
		t.Fatal("Expected slot 0 loaded")
	}

	finished := 0
	v, ok := p.Play(0, 0.5, func() { finished++ })
	if !ok || v == nil {
		t.Fatal("Expected a voice")
	}
	if p.Voices() != 1 {
		t.Errorf("Expected 1 mixer voice, got %d", p.Voices())
	}
	v.SetGain(0.25)

	// Pull the whole sound through the master chain as the speaker would
	out := p.Output()
	buf := make([][2]float64, 1024)
	for i := 0; i < 20 && finished == 0; i++ {
		out.Stream(buf)
	}
	if finished != 1 {
		t.Fatalf("Expected completion callback once, got %d", finished)
	}
	out.Stream(buf)
	if p.Voices() != 0 {
		t.Errorf("Expected drained voice removed, got %d", p.Voices())
	}
}

func TestBeepPlayerStop(t *testing.T) {
	p := NewBeepPlayer(beep.SampleRate(8000), 1)
	if err := p.LoadSynth(1); err != nil {
		t.Fatal(err)
	}
	finished := false
	v, _ := p.Play(1, 1, func() { finished = true })
	v.Stop()

	buf := make([][2]float64, 256)
	p.Output().Stream(buf)
	if p.Voices() != 0 {
		t.Errorf("Expected stopped voice removed, got %d", p.Voices())
	}
	if finished {
		t.Error("Stopped voice must not report completion")
	}
}

func TestBeepPlayerMuteAndLoad(t *testing.T) {
	rate := beep.SampleRate(8000)
	p := NewBeepPlayer(rate, 0.8)
	p.SetMuted(true)
	if !p.Muted() || !p.master.Silent {
		t.Error("Expected muted master")
	}
	p.SetMaster(0.5)
	if !p.master.Silent {
		t.Error("Expected master to stay silent while muted")
	}
	p.SetMuted(false)
	if p.master.Silent || p.master.Volume != -1 {
		t.Errorf("Expected master at 0.5, got %f", p.master.Volume)
	}

	// Resampled load
	src, _ := Synthesize(0, beep.SampleRate(16000))
	p.Load(2, src.Streamer(0, src.Len()), src.Format())
	if !p.Loaded(2) {
		t.Error("Expected resampled buffer loaded")
	}
	if err := p.LoadWav(3, "does-not-exist.wav"); err == nil {
		t.Error("Expected error for missing wav")
	}
}

func TestBeepPlayerWithGate(t *testing.T) {
	p := NewBeepPlayer(beep.SampleRate(8000), 1)
	if err := p.LoadSynth(0); err != nil {
		t.Fatal(err)
	}
	g := NewGate(p, DefaultBands(), 0)
	g.Update(0, mgl64.Vec3{}, []mgl64.Vec3{{1, 0, 0}})
	if !g.Playing(0) {
		t.Fatal("Expected gate to start a beep voice")
	}

	buf := make([][2]float64, 1024)
	for i := 0; i < 20; i++ {
		p.Output().Stream(buf)
	}
	g.Update(1, mgl64.Vec3{}, []mgl64.Vec3{{100, 0, 0}})
	if g.Playing(0) {
		t.Error("Expected completion to reach the gate")
	}
}

func TestBeepPlayerBuses(t *testing.T) {
	p := NewBeepPlayer(beep.SampleRate(8000), 1)
	if p.effects.Volume != math.Log2(parameter.AudioEffectsVolume) {
		t.Errorf("Expected default effects gain, got %f", p.effects.Volume)
	}
	if p.music.Volume != math.Log2(parameter.AudioMusicVolume) {
		t.Errorf("Expected default music gain, got %f", p.music.Volume)
	}

	if err := p.LoadSynth(0); err != nil {
		t.Fatal(err)
	}

	// Effects bus silenced, voice plays into nothing
	p.SetEffects(0)
	p.Play(0, 1, nil)
	if peak := loudest(p.Output(), 4000); peak != 0 {
		t.Errorf("Expected silence with effects bus at 0, got peak %f", peak)
	}

	p.SetEffects(0.5)
	if p.effects.Silent || p.effects.Volume != -1 {
		t.Errorf("Expected effects at 0.5, got %f", p.effects.Volume)
	}
	if peak := loudest(p.Output(), 2000); peak == 0 {
		t.Error("Expected voice audible through the effects bus")
	}
}

func TestBeepPlayerMusicLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	p := NewBeepPlayer(rate, 1)
	if p.MusicPlaying() {
		t.Fatal("Expected no music before load")
	}

	track, err := Synthesize(1, rate)
	if err != nil {
		t.Fatal(err)
	}
	p.PlayMusic(track.Streamer(0, track.Len()), track.Format())
	if !p.MusicPlaying() {
		t.Fatal("Expected music on the bus")
	}

	// Stream past three track lengths; a looped track stays on the bus
	loudest(p.Output(), 3*track.Len()+100)
	if !p.MusicPlaying() {
		t.Error("Expected music to loop")
	}
	if peak := loudest(p.Output(), track.Len()); peak == 0 {
		t.Error("Expected looped music audible")
	}

	p.SetMusic(0)
	if peak := loudest(p.Output(), track.Len()); peak != 0 {
		t.Errorf("Expected silent music bus, got peak %f", peak)
	}

	p.StopMusic()
	if p.MusicPlaying() {
		t.Error("Expected music stopped")
	}
}

func TestBeepPlayerLoadMusic(t *testing.T) {
	rate := beep.SampleRate(8000)
	track, err := Synthesize(2, rate)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "theme.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.Encode(f, track.Streamer(0, track.Len()), track.Format()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f.Close()

	p := NewBeepPlayer(rate, 1)
	if err := p.LoadMusic(path); err != nil {
		t.Fatalf("LoadMusic: %v", err)
	}
	if !p.MusicPlaying() {
		t.Error("Expected wav looping on the music bus")
	}
	if err := p.LoadMusic(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Expected error for missing music")
	}
}
