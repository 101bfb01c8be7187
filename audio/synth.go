package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone, optionally sweeping linearly from
// freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		f := o.freq
		if o.duration > 0 {
			f += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, endFreq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, endFreq, d, wave, rate), d, attack, release, rate)
}

// Synth builds a fresh streamer for cue at volume vol in [0, 1].
func Synth(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var s beep.Streamer
	switch c {
	case CueShot:
		s = tone(1200, 600, ms(60), ms(2), ms(40), WaveSquare, rate)
	case CueEnemyShot:
		s = newVolume(tone(500, 300, ms(80), ms(2), ms(60), WaveSaw, rate), 0.5)
	case CueBeamWarning:
		s = beep.Seq(
			tone(880, 880, ms(90), ms(5), ms(30), WaveSine, rate),
			tone(660, 660, ms(90), ms(5), ms(30), WaveSine, rate),
		)
	case CueBeamFire:
		s = beep.Mix(
			tone(110, 90, ms(400), ms(10), ms(200), WaveSaw, rate),
			newVolume(tone(0, 0, ms(400), ms(10), ms(300), WaveNoise, rate), 0.3),
		)
	case CueHit:
		s = tone(300, 120, ms(70), ms(1), ms(50), WaveSquare, rate)
	case CueContact:
		s = newVolume(tone(0, 0, ms(90), ms(1), ms(70), WaveNoise, rate), 0.6)
	case CueExplosion:
		s = beep.Mix(
			tone(0, 0, ms(350), ms(2), ms(300), WaveNoise, rate),
			newVolume(tone(160, 40, ms(350), ms(2), ms(250), WaveSine, rate), 0.7),
		)
	case CueGameOver:
		s = beep.Seq(
			tone(440, 440, ms(200), ms(5), ms(60), WaveSquare, rate),
			tone(330, 330, ms(200), ms(5), ms(60), WaveSquare, rate),
			tone(220, 110, ms(500), ms(5), ms(300), WaveSquare, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// Render synthesises cue into 16-bit signed little-endian stereo PCM, the
// format ebiten's audio context plays.
func Render(c Cue, rate beep.SampleRate, vol float64) []byte {
	s := Synth(c, rate, vol)
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				x := int16(math.Round(max(-1, min(1, v)) * math.MaxInt16))
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
