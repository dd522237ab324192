package audio

import "github.com/lixenwraith/brain-trainer/constants"

// Cue is a short sound played on a game transition
type Cue int

const (
	CueCorrect   Cue = iota // right answer or number
	CueIncorrect            // wrong answer
	CueMatch                // pair locked
	CueMismatch             // pair flipped back
	CueFinish               // session finished
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CueMatch:
		return "match"
	case CueMismatch:
		return "mismatch"
	case CueFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Config controls the sound manager
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns audio settings with every cue at a moderate level
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		CueVolumes: [cueCount]float64{
			CueCorrect:   0.6,
			CueIncorrect: 0.5,
			CueMatch:     0.6,
			CueMismatch:  0.4,
			CueFinish:    0.7,
		},
	}
}

// WithMasterVolume returns cfg with a 0-100 volume clamped and scaled
func (c Config) WithMasterVolume(percent int) Config {
	v := float64(percent) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.MasterVolume = v
	return c
}
