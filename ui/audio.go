package ui

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/user-none/wsparallax/emu"
)

// queueLimit is ~170ms of 48kHz stereo 16-bit audio.
const queueLimit = 32768

// playerBufferBytes is the oto player's own buffer, ~100ms.
const playerBufferBytes = 19200

// AudioPlayer streams the emulator's PCM output through oto. Its buffer
// level is also the emulation goroutine's pacing clock.
type AudioPlayer struct {
	player  *oto.Player
	queue   *AudioQueue
	scratch []byte
}

var (
	otoCtx     *oto.Context
	otoCtxOnce sync.Once
	otoCtxErr  error
)

// audioContext returns the process-wide oto context. oto allows only one.
func audioContext() (*oto.Context, error) {
	otoCtxOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoCtxErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   emu.SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		})
		if otoCtxErr != nil {
			return
		}
		<-ready
	})
	return otoCtx, otoCtxErr
}

// NewAudioPlayer starts playback at the given volume (0.0-1.0).
func NewAudioPlayer(volume float64) (*AudioPlayer, error) {
	ctx, err := audioContext()
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	q := NewAudioQueue(queueLimit)
	p := ctx.NewPlayer(q)
	p.SetBufferSize(playerBufferBytes)
	p.SetVolume(volume)
	p.Play()

	return &AudioPlayer{player: p, queue: q}, nil
}

// QueueSamples queues interleaved stereo samples.
func (a *AudioPlayer) QueueSamples(samples []int16) {
	a.scratch = encodeSamples(a.scratch, samples)
	a.queue.Write(a.scratch)
}

// encodeSamples writes samples as little-endian bytes into buf.
func encodeSamples(buf []byte, samples []int16) []byte {
	buf = buf[:0]
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

// BufferLevel returns the bytes waiting to be played.
func (a *AudioPlayer) BufferLevel() int {
	return a.queue.Buffered() + a.player.BufferedSize()
}

// Close stops playback.
func (a *AudioPlayer) Close() {
	a.queue.Close()
	a.player.Close()
}
