package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/brain-trainer/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly, zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// createCorrectSound is a short rising blip
func createCorrectSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1046.5, constants.CorrectSoundDuration, WaveSine, rate)
	return NewEnvelope(osc, constants.CorrectSoundDuration, constants.CorrectSoundAttack, constants.CorrectSoundRelease, rate)
}

// createIncorrectSound is a harsh low buzz
func createIncorrectSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(100.0, constants.IncorrectSoundDuration, WaveSaw, rate)
	return NewEnvelope(osc, constants.IncorrectSoundDuration, constants.IncorrectSoundAttack, constants.IncorrectSoundRelease, rate)
}

// createMatchSound is a bell with an octave overtone
func createMatchSound(rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(880.0, constants.MatchSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, constants.MatchSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundOvertoneRelease, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// createMismatchSound is a soft noise whoosh
func createMismatchSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constants.MismatchSoundDuration, WaveNoise, rate)
	return NewEnvelope(noise, constants.MismatchSoundDuration, constants.MismatchSoundAttack, constants.MismatchSoundRelease, rate)
}

// createFinishSound is a two-note chime
func createFinishSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, constants.FinishSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.FinishSoundNote1Duration, constants.FinishSoundAttack, constants.FinishSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.FinishSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.FinishSoundNote2Duration, constants.FinishSoundAttack, constants.FinishSoundNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// CueStreamer returns the volume-scaled streamer for a cue, nil for unknown cues
func CueStreamer(cue Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueCorrect:
		s = createCorrectSound(rate)
	case CueIncorrect:
		s = createIncorrectSound(rate)
	case CueMatch:
		s = createMatchSound(rate)
	case CueMismatch:
		s = createMismatchSound(rate)
	case CueFinish:
		s = createFinishSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
