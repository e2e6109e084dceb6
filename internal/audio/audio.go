// Package audio plays the game's sound cues through Ebiten's audio stack.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/game"
)

// Bank holds the decoded cues and the players currently sounding.
// A cue that failed to load stays silent.
type Bank struct {
	ctx    *audio.Context
	cues   map[game.Cue][]byte
	volume float64
	logger *log.Logger

	mu      sync.Mutex
	players []*audio.Player
	closed  bool
}

// New creates the audio context and decodes both cues.
// Only one Bank may exist per process.
func New(cfg config.AudioConfig, logger *log.Logger) *Bank {
	b := &Bank{
		ctx:    audio.NewContext(cfg.SampleRate),
		cues:   make(map[game.Cue][]byte),
		volume: cfg.Volume,
		logger: logger,
	}

	paths := map[game.Cue]string{
		game.CueMissionComplete: cfg.MissionComplete,
		game.CueLevelChange:     cfg.LevelChange,
	}
	for cue, path := range paths {
		data, err := Decode(path, cfg.SampleRate)
		if err != nil {
			logger.Warn("sound unavailable, using silence", "cue", cue, "path", path, "err", err)
			continue
		}
		b.cues[cue] = data
		logger.Debug("sound loaded", "cue", cue, "bytes", len(data))
	}

	return b
}

// Play starts the cue without waiting for it to finish.
func (b *Bank) Play(c game.Cue) {
	data, ok := b.cues[c]
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.prune()
	p := b.ctx.NewPlayerFromBytes(data)
	p.SetVolume(b.volume)
	p.Play()
	b.players = append(b.players, p)
}

// Loaded reports whether the cue has real audio behind it.
func (b *Bank) Loaded(c game.Cue) bool {
	_, ok := b.cues[c]
	return ok
}

// Close stops and releases every player.
func (b *Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	var firstErr error
	for _, p := range b.players {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("audio: cannot close player: %w", err)
		}
	}
	b.players = nil
	return firstErr
}

// prune drops players that finished. Caller holds b.mu.
func (b *Bank) prune() {
	live := b.players[:0]
	for _, p := range b.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	b.players = live
}

// Decode reads a WAV or Ogg Vorbis file and returns 16-bit stereo PCM at sampleRate.
func Decode(path string, sampleRate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("audio: unsupported format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read decoded %s: %w", path, err)
	}
	return decoded, nil
}

var _ game.Sounds = (*Bank)(nil)
