package constants

import "time"

// Correct Sound Timing
const (
	CorrectSoundDuration = 150 * time.Millisecond
	CorrectSoundAttack   = 5 * time.Millisecond
	CorrectSoundRelease  = 100 * time.Millisecond
)

// Incorrect Sound Timing
const (
	IncorrectSoundDuration = 80 * time.Millisecond
	IncorrectSoundAttack   = 5 * time.Millisecond
	IncorrectSoundRelease  = 20 * time.Millisecond
)

// Match Sound Timing
const (
	MatchSoundDuration           = 600 * time.Millisecond
	MatchSoundAttack             = 5 * time.Millisecond
	MatchSoundFundamentalRelease = 550 * time.Millisecond
	MatchSoundOvertoneRelease    = 200 * time.Millisecond
)

// Mismatch Sound Timing
const (
	MismatchSoundDuration = 300 * time.Millisecond
	MismatchSoundAttack   = 150 * time.Millisecond
	MismatchSoundRelease  = 150 * time.Millisecond
)

// Finish Sound Timing
const (
	FinishSoundNote1Duration = 100 * time.Millisecond
	FinishSoundNote2Duration = 400 * time.Millisecond
	FinishSoundAttack        = 5 * time.Millisecond
	FinishSoundNote1Release  = 50 * time.Millisecond
	FinishSoundNote2Release  = 350 * time.Millisecond
)

// AudioSampleRate is the speaker sample rate
const AudioSampleRate = 48000

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond
