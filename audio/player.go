package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/nextbot-maze/parameter"
)

// ErrNotLoaded is returned when playing an index with no buffer
var ErrNotLoaded = errors.New("audio: buffer not loaded")

// BeepPlayer mixes agent voices onto the speaker
// Buffers can be loaded from any goroutine while the game runs
//
//	voices -> effects bus \
//	                       master -> speaker
//	music  -> music bus   /
type BeepPlayer struct {
	rate beep.SampleRate

	mu      sync.RWMutex
	buffers map[int]*beep.Buffer

	mixer   *beep.Mixer // Agent voices
	effects *effects.Volume
	tracks  *beep.Mixer // Looped background music
	music   *effects.Volume
	master  *effects.Volume
	out     *beep.Ctrl

	gain  float64
	muted bool

	initialized bool
}

// NewBeepPlayer builds the mixer chain without touching the sound device
// The effects and music buses start at their parameter defaults
func NewBeepPlayer(rate beep.SampleRate, masterGain float64) *BeepPlayer {
	p := &BeepPlayer{
		rate:    rate,
		buffers: make(map[int]*beep.Buffer),
		mixer:   &beep.Mixer{},
		tracks:  &beep.Mixer{},
		gain:    masterGain,
	}
	p.effects = newVolume(p.mixer, parameter.AudioEffectsVolume)
	p.music = newVolume(p.tracks, parameter.AudioMusicVolume)

	bus := &beep.Mixer{}
	bus.Add(p.effects, p.music)
	p.master = newVolume(bus, masterGain)
	p.out = &beep.Ctrl{Streamer: p.master}
	return p
}

// Init opens the speaker and starts streaming the mixer
func (p *BeepPlayer) Init(bufferSize int) error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(p.out)
	p.initialized = true
	return nil
}

// Close stops all voices and releases the speaker
func (p *BeepPlayer) Close() {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	p.tracks.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Output is the master stream, played by Init
func (p *BeepPlayer) Output() beep.Streamer {
	return p.out
}

// Load installs a decoded buffer for agent index, resampling to the player rate
func (p *BeepPlayer) Load(index int, s beep.Streamer, format beep.Format) {
	buf := p.buffer(s, format)

	p.mu.Lock()
	p.buffers[index] = buf
	p.mu.Unlock()
}

func (p *BeepPlayer) buffer(s beep.Streamer, format beep.Format) *beep.Buffer {
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// LoadWav decodes a wav file into slot index
func (p *BeepPlayer) LoadWav(index int, path string) error {
	s, format, err := decodeWav(path)
	if err != nil {
		return err
	}
	defer s.Close()
	p.Load(index, s, format)
	return nil
}

func decodeWav(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, format, nil
}

// PlayMusic loops s on the music bus until StopMusic or Close
func (p *BeepPlayer) PlayMusic(s beep.Streamer, format beep.Format) {
	buf := p.buffer(s, format)
	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))

	speaker.Lock()
	p.tracks.Clear()
	p.tracks.Add(loop)
	speaker.Unlock()
}

// LoadMusic decodes a wav file and loops it on the music bus
func (p *BeepPlayer) LoadMusic(path string) error {
	s, format, err := decodeWav(path)
	if err != nil {
		return err
	}
	defer s.Close()
	p.PlayMusic(s, format)
	return nil
}

// StopMusic silences background music
func (p *BeepPlayer) StopMusic() {
	speaker.Lock()
	p.tracks.Clear()
	speaker.Unlock()
}

// MusicPlaying reports whether a track is on the music bus
func (p *BeepPlayer) MusicPlaying() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.tracks.Len() > 0
}

// LoadSynth fills slot index with the synthesized placeholder
func (p *BeepPlayer) LoadSynth(index int) error {
	buf, err := Synthesize(index, p.rate)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.buffers[index] = buf
	p.mu.Unlock()
	return nil
}

// Loaded implements Player
func (p *BeepPlayer) Loaded(index int) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.buffers[index]
	return ok
}

// Play implements Player; done runs on the speaker goroutine after the last sample
func (p *BeepPlayer) Play(index int, gain float64, done func()) (Voice, bool) {
	p.mu.RLock()
	buf, ok := p.buffers[index]
	p.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if done == nil {
		done = func() {}
	}
	vol := newVolume(buf.Streamer(0, buf.Len()), gain)
	seq := beep.Seq(vol, beep.Callback(done))
	ctrl := &beep.Ctrl{Streamer: seq}

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()

	return &beepVoice{vol: vol, ctrl: ctrl}, true
}

// SetMaster changes master gain
func (p *BeepPlayer) SetMaster(gain float64) {
	speaker.Lock()
	p.gain = gain
	if !p.muted {
		setGain(p.master, gain)
	}
	speaker.Unlock()
}

// SetEffects changes the gain of the bot voice bus
func (p *BeepPlayer) SetEffects(gain float64) {
	speaker.Lock()
	setGain(p.effects, gain)
	speaker.Unlock()
}

// SetMusic changes the gain of the music bus
func (p *BeepPlayer) SetMusic(gain float64) {
	speaker.Lock()
	setGain(p.music, gain)
	speaker.Unlock()
}

// SetMuted silences the master bus without stopping voices
func (p *BeepPlayer) SetMuted(muted bool) {
	speaker.Lock()
	p.muted = muted
	if muted {
		setGain(p.master, 0)
	} else {
		setGain(p.master, p.gain)
	}
	speaker.Unlock()
}

// Muted reports the mute state
func (p *BeepPlayer) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.muted
}

// SetPaused freezes every voice in place
func (p *BeepPlayer) SetPaused(paused bool) {
	speaker.Lock()
	p.out.Paused = paused
	speaker.Unlock()
}

// Voices is the number of streams in the mixer
func (p *BeepPlayer) Voices() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

type beepVoice struct {
	vol  *effects.Volume
	ctrl *beep.Ctrl
}

func (v *beepVoice) SetGain(gain float64) {
	speaker.Lock()
	setGain(v.vol, gain)
	speaker.Unlock()
}

// Stop drops the stream; the mixer removes it on its next pass and done never runs
func (v *beepVoice) Stop() {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

// NopPlayer never loads nor plays
type NopPlayer struct{}

func (NopPlayer) Play(int, float64, func()) (Voice, bool) { return nil, false }
func (NopPlayer) Loaded(int) bool                          { return false }
