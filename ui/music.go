package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const musicVolume = 0.3

// Music loops a background track. A missing file or audio device leaves it
// silent.
type Music struct {
	stream  rl.Music
	device  bool
	playing bool
}

func NewMusic() *Music {
	return &Music{}
}

// Load opens the audio device and starts looping path
func (m *Music) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "music file not found")
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return errors.New("audio device unavailable")
	}
	m.device = true

	m.stream = rl.LoadMusicStream(path)
	rl.SetMusicVolume(m.stream, musicVolume)
	rl.PlayMusicStream(m.stream)
	m.playing = true
	return nil
}

// Update refills the stream buffers; call once per frame
func (m *Music) Update() {
	if m.playing {
		rl.UpdateMusicStream(m.stream)
	}
}

func (m *Music) Close() {
	if m.playing {
		rl.StopMusicStream(m.stream)
		rl.UnloadMusicStream(m.stream)
		m.playing = false
	}
	if m.device {
		rl.CloseAudioDevice()
		m.device = false
	}
}
