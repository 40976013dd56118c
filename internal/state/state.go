// Package state holds the game's persistent data: settings, per-mode high
// score tables and the cached player location. The save file is encrypted
// with a machine-bound key and integrity-checked, so the tables are not
// trivially editable.
package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/snaked/internal/geoip"
	"github.com/vinser/snaked/internal/sound"
)

const (
	// Game modes
	ModeChill   = "chill"
	ModeClassic = "classic"
	ModeFrantic = "frantic"
	ModeDefault = ModeClassic

	// Night options
	NightNever   = "never"
	NightAlways  = "always"
	NightReal    = "real"
	NightDefault = NightNever
)

// HighScoreSize is how many entries each mode's table keeps.
const HighScoreSize = 5

// HighScore is one entry in a mode's high score table.
type HighScore struct {
	Nick  string `json:"nick"`
	Score int    `json:"score"`
}

// State holds persistent game data.
type State struct {
	GameMode    string                 `json:"game_mode"`    // chill, classic or frantic
	NightOption string                 `json:"night_option"` // never, always or real
	Mute        bool                   `json:"mute"`         // Mute all sounds
	HighScores  map[string][]HighScore `json:"high_scores"`  // Per-mode tables, best first
	Location    geoip.Location         `json:"location"`     // Cached player location

	SoundManager *sound.Manager `json:"-"`
}

// ModePreset returns the board dimensions and starting tick interval in
// milliseconds for a game mode.
func ModePreset(mode string) (rows, cols, speed int) {
	switch mode {
	case ModeChill:
		return 15, 30, 800
	case ModeFrantic:
		return 25, 60, 300
	default: // ModeClassic
		return 20, 40, 500
	}
}

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("snaked")
	if err != nil {
		appID = "default-snaked-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

var fallbackLocation = geoip.Location{
	Country:   "The Netherlands",
	City:      "Amsterdam",
	Lat:       52.3728,
	Lon:       4.88805,
	Timezone:  "Europe/Amsterdam",
	IP:        "193.0.11.51",
	TimeStamp: time.Now(),
}

func New() *State {
	loc, err := geoip.Lookup()
	if err != nil {
		loc = &fallbackLocation
	}
	soundMgr, soundInitFailed := initializeSound()
	s := &State{
		GameMode:     ModeDefault,
		NightOption:  NightDefault,
		HighScores:   make(map[string][]HighScore),
		Location:     *loc,
		SoundManager: soundMgr,
	}
	s.SetMute(soundInitFailed)
	return s
}

// Load reads the state from disk, decrypts and verifies it. Any failure
// falls back to fresh defaults.
func Load() *State {
	path, err := getSavePath()
	if err != nil {
		return New()
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New()
	}

	s := &State{}
	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	if s.HighScores == nil {
		s.HighScores = make(map[string][]HighScore)
	}

	// Initialize sound. If it fails the session is forced to mute, but the
	// saved preference survives for the next run.
	soundMgr, soundInitFailed := initializeSound()
	s.SoundManager = soundMgr
	if soundInitFailed {
		s.Mute = true
	}
	s.SetMute(s.Mute)
	return s
}

// initializeSound creates and loads a sound manager. The boolean reports
// whether initialization failed and playback should stay muted.
func initializeSound() (*sound.Manager, bool) {
	soundMgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		return nil, true
	}
	if err := soundMgr.LoadSamples(); err != nil {
		return nil, true
	}
	return soundMgr, false
}

// SetMute toggles the mute state and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	if s.SoundManager == nil {
		return
	}
	if s.Mute {
		s.SoundManager.Mute()
	} else {
		s.SoundManager.Unmute()
	}
}

// HighTable returns the current mode's high score table, best first.
func (s *State) HighTable() []HighScore {
	return s.HighScores[s.GameMode]
}

// TopScore returns the best recorded score for the current mode.
func (s *State) TopScore() (score int, nick string) {
	table := s.HighTable()
	if len(table) == 0 {
		return 0, ""
	}
	return table[0].Score, table[0].Nick
}

// IsHighScore reports whether score would enter the current mode's table.
func (s *State) IsHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	table := s.HighTable()
	return len(table) < HighScoreSize || score > table[len(table)-1].Score
}

// RecordScore inserts the score into the current mode's table, keeping it
// sorted best first and capped at HighScoreSize. It reports whether the
// score made the table.
func (s *State) RecordScore(nick string, score int) bool {
	if !s.IsHighScore(score) {
		return false
	}
	if nick == "" {
		nick = "anonymous"
	}
	table := s.HighTable()
	pos := len(table)
	for i, hs := range table {
		if score > hs.Score {
			pos = i
			break
		}
	}
	table = append(table, HighScore{})
	copy(table[pos+1:], table[pos:])
	table[pos] = HighScore{Nick: nick, Score: score}
	if len(table) > HighScoreSize {
		table = table[:HighScoreSize]
	}
	s.HighScores[s.GameMode] = table
	return true
}

// Save persists the current state to an encrypted file with an integrity
// check.
func (s *State) Save() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}

	return os.WriteFile(path, encrypted, 0644)
}

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config
// directory.
func getSavePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(configDir, "snaked")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
