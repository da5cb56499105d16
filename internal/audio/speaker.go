package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Start opens the default output device and begins streaming d. A machine
// without audio returns an error; callers run silently in that case.
func Start(d *Drone) error {
	bufferSize := d.sampleRate.N(time.Second / 20)
	if err := speaker.Init(d.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(beep.Streamer(d))
	return nil
}

// Stop silences all playback.
func Stop() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
