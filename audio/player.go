package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/downtoearth/ecs"
)

// SampleRate is used for every synthesised cue.
const SampleRate = beep.SampleRate(44100)

// Player plays cues through the system speaker. A Player that was never
// initialised, or whose Init failed, silently drops cues so headless runs
// work unchanged.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *slog.Logger
}

func NewPlayer(volume float64, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s := Synth(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Handle plays one cue per distinct event kind in events.
func (p *Player) Handle(events []ecs.Event) {
	for _, c := range Cues(events) {
		p.log.Debug("cue", "cue", c.String())
		p.Play(c)
	}
}
