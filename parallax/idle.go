package parallax

// FrameSync is the flag raised by the frame reconciler and consumed by
// the idle loop.
type FrameSync struct {
	fired bool
}

// Signal marks the start of a new frame.
func (f *FrameSync) Signal() {
	f.fired = true
}

// Take reports whether a frame started since the last call and clears
// the flag.
func (f *FrameSync) Take() bool {
	if !f.fired {
		return false
	}
	f.fired = false
	return true
}

// Pending reports the flag without clearing it.
func (f *FrameSync) Pending() bool {
	return f.fired
}

// Set forces the flag, used when restoring state.
func (f *FrameSync) Set(fired bool) {
	f.fired = fired
}

// IdleLoop is the foreground loop that halts between frames. The halted
// processor is woken by every serviced interrupt; Wake is called at that
// point and returns true once per frame.
type IdleLoop struct {
	sync *FrameSync
	tic  uint16
}

// NewIdleLoop creates an idle loop consuming sync.
func NewIdleLoop(sync *FrameSync) *IdleLoop {
	return &IdleLoop{sync: sync}
}

// Wake resumes the loop after an interrupt. If the reconciler has run it
// clears the flag, bumps the tic counter and returns true; otherwise the
// loop halts again and false is returned.
func (l *IdleLoop) Wake() bool {
	if !l.sync.Take() {
		return false
	}
	l.tic++
	return true
}

// Tic returns the number of frames the loop has observed.
func (l *IdleLoop) Tic() uint16 {
	return l.tic
}

// SetTic restores the tic counter.
func (l *IdleLoop) SetTic(tic uint16) {
	l.tic = tic
}
