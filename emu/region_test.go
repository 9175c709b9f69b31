package emu

import "testing"

func TestRegion_TimingIndependent(t *testing.T) {
	e := makeTestEmulator(t, staticTable())
	ntsc := e.GetTiming()

	e.SetRegion(RegionPAL)
	if e.GetRegion() != RegionPAL {
		t.Errorf("expected PAL region, got %v", e.GetRegion())
	}
	if e.GetTiming() != ntsc {
		t.Errorf("expected timing unchanged by region, got %+v", e.GetTiming())
	}
}

func TestSamplesPerFrame(t *testing.T) {
	if samplesPerFrame*FPS != SampleRate {
		t.Errorf("expected whole samples per frame, got %d at %d FPS", samplesPerFrame, FPS)
	}
}
