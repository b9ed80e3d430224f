package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatTone      = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	GameOverTone = Tone{Freq: 220, Duration: 300 * time.Millisecond}
)

// Sound plays tones through the default audio device. Every method is a
// no-op when the device could not be opened.
type Sound struct {
	ready bool
}

func NewSound() *Sound {
	return &Sound{}
}

func (s *Sound) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *Sound) streamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(sampleRate.N(t.Duration), quiet), nil
}

func (s *Sound) Play(t Tone) {
	if !s.ready {
		return
	}
	st, err := s.streamer(t)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// PlayAndWait blocks until the tone finished or twice its duration passed
func (s *Sound) PlayAndWait(t Tone) {
	if !s.ready {
		return
	}
	st, err := s.streamer(t)
	if err != nil {
		return
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(st, beep.Callback(func() {
		close(done)
	})))
	select {
	case <-done:
	case <-time.After(2 * t.Duration):
	}
}

func (s *Sound) Close() {
	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ready = false
}
