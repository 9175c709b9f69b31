package emu

// SampleRate is the output rate of GetAudioSamples.
const SampleRate = 48000

const samplesPerFrame = SampleRate / FPS

// fillAudio produces one frame of silent 16-bit stereo PCM. The sound
// unit is not emulated; frontends still pace on the audio stream.
func (e *Emulator) fillAudio() {
	e.audioBuffer = e.audioBuffer[:0]
	for i := 0; i < samplesPerFrame; i++ {
		e.audioBuffer = append(e.audioBuffer, 0, 0)
	}
}

// GetAudioSamples returns accumulated audio samples as 16-bit stereo PCM.
func (e *Emulator) GetAudioSamples() []int16 {
	return e.audioBuffer
}
