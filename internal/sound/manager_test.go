package sound

import (
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

var (
	soundMgr *Manager
	once     sync.Once
)

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_AUDIO") == "1" { // For CI without sound on host
		os.Exit(0)
	}
	once.Do(func() {
		var err error
		soundMgr, err = NewManager(beep.SampleRate(CommonSampleRate))
		if err != nil {
			log.Fatalf("Failed to create sound manager: %v", err)
		}
		if err := soundMgr.LoadSamples(); err != nil {
			log.Fatalf("Failed to load samples: %v", err)
		}
	})

	code := m.Run()

	soundMgr.Close()
	os.Exit(code)
}

func TestSamplesLoaded(t *testing.T) {
	for _, name := range []string{INTRO, EAT, STEP, GAME_OVER, HIGH_SCORE, QUIT} {
		if _, ok := soundMgr.samples[name]; !ok {
			t.Errorf("sample %s not loaded from archive", name)
		}
	}
}

func TestPlayUnknownSample(t *testing.T) {
	if err := soundMgr.Play("nope.wav"); err == nil {
		t.Error("Play(unknown) = nil error; want error")
	}
}

func TestPlayAndStop(t *testing.T) {
	if err := soundMgr.Play(EAT); err != nil {
		t.Fatalf("Failed to play EAT: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	soundMgr.StopListed(EAT)
}

func TestMutedPlaybackStillSucceeds(t *testing.T) {
	soundMgr.Mute()
	defer soundMgr.Unmute()
	if err := soundMgr.Play(STEP); err != nil {
		t.Fatalf("Play while muted: %v", err)
	}
}

// BenchmarkStepPlayback simulates gameplay step sounds with realistic key press delays.
func BenchmarkStepPlayback(b *testing.B) {
	delay := 50 * time.Millisecond

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := soundMgr.Play(STEP); err != nil {
			b.Fatalf("Play failed: %v", err)
		}
		time.Sleep(delay)
	}
}

// TestConcurrency exercises concurrent playback of the same sample.
func TestConcurrency(t *testing.T) {
	t.Parallel()
	numPlayers := 50
	done := make(chan bool)
	for i := 0; i < numPlayers; i++ {
		go func() {
			soundMgr.Play(STEP)
			done <- true
		}()
	}
	for i := 0; i < numPlayers; i++ {
		<-done
	}
	time.Sleep(500 * time.Millisecond)
}
