package main

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/downtoearth/audio"
	"github.com/milk9111/downtoearth/ecs"
)

// Sounds plays synthesised cues through ebiten's audio context. The speaker
// backend used by the terminal frontend cannot share a process with ebiten's,
// so cues are rendered to PCM once and replayed from memory.
type Sounds struct {
	ctx *ebaudio.Context
	pcm map[audio.Cue][]byte
}

func NewSounds(volume float64) *Sounds {
	s := &Sounds{
		ctx: ebaudio.NewContext(int(audio.SampleRate)),
		pcm: make(map[audio.Cue][]byte),
	}
	for _, c := range []audio.Cue{
		audio.CueShot, audio.CueEnemyShot, audio.CueBeamWarning, audio.CueBeamFire,
		audio.CueHit, audio.CueContact, audio.CueExplosion, audio.CueGameOver,
	} {
		s.pcm[c] = audio.Render(c, audio.SampleRate, volume)
	}
	return s
}

func (s *Sounds) Handle(events []ecs.Event) {
	for _, c := range audio.Cues(events) {
		data := s.pcm[c]
		if len(data) == 0 {
			continue
		}
		s.ctx.NewPlayerFromBytes(data).Play()
	}
}
