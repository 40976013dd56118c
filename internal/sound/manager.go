// Package sound manages playback of the game's audio samples: loading from
// the embedded archive, resampling to a unified format, interrupting a
// sample that is restarted, and muting.
package sound

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/wav"
	"github.com/vinser/snaked/internal/embeddata"
)

// Sample names as stored in the embedded archive.
const (
	INTRO      = "intro.wav"
	EAT        = "eat.wav"
	STEP       = "step.wav"
	GAME_OVER  = "game_over.wav"
	HIGH_SCORE = "high_score.wav"
	QUIT       = "quit.wav"
)

// CommonSampleRate is the rate all samples are normalized to.
const CommonSampleRate = 44100

// Manager controls the loading and playback of audio samples.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB

	backend   any
	pulseCtrl *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// LoadSamples reads every WAV file from the embedded sounds archive into
// memory.
func (mgr *Manager) LoadSamples() error {
	soundsZip, err := embeddata.ReadSoundsZip()
	if err != nil {
		return err
	}
	reader, err := zip.NewReader(bytes.NewReader(soundsZip), int64(len(soundsZip)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		fileName := path.Base(file.Name)
		if path.Ext(fileName) != ".wav" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		// Load into memory to enable seeking
		buf := new(bytes.Buffer)
		_, err = io.Copy(buf, rc)
		rc.Close()
		if err != nil {
			return err
		}
		if err := mgr.LoadWAV(fileName, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// LoadWAV loads and resamples a WAV sample into memory.
func (mgr *Manager) LoadWAV(name string, data []byte) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	stream, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer stream.Close()

	resampled := beep.Resample(3, format.SampleRate, mgr.format.SampleRate, stream)
	buf := beep.NewBuffer(mgr.format)
	buf.Append(resampled)

	mgr.samples[name] = buf
	return nil
}

// SetVolume sets the playback volume of a single sample in dB.
// A nil manager (failed audio init) ignores the call, as do the other
// playback controls.
func (mgr *Manager) SetVolume(name string, db float64) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// playInternal plays the sample by name, optionally looping it.
func (mgr *Manager) playInternal(name string, loop bool) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}

	var stream beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		looped, err := beep.Loop2(buf.Streamer(0, buf.Len()))
		if err != nil {
			return err
		}
		stream = looped
	}

	// Wrap with per-sample volume
	vol := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   mgr.sampleVols[name], // default 0 if not set
		Silent:   false,
	}

	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}

	var streamWithMute beep.Streamer = ctrl
	if mgr.muted {
		streamWithMute = beep.Callback(func() {})
	}

	mgr.mix.Add(streamWithMute)
	mgr.ctrl[name] = ctrl
	return nil
}

// Play stops current playback of the sample (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	return mgr.playInternal(name, false)
}

// PlayWithVolume plays the sample with the specified volume in dB.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	mgr.SetVolume(name, db)
	return mgr.playInternal(name, false)
}

// PlayLoop plays the sample in a continuous loop until stopped.
func (mgr *Manager) PlayLoop(name string) error {
	return mgr.playInternal(name, true)
}

// StopListed stops playback of the specified samples by name.
// A sample that is not currently playing is ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// Close stops playback and frees backend resources.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.closeBackend()
}
