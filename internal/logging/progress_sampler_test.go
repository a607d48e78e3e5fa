package logging

import "testing"

func TestProgressSamplerDefaultsStep(t *testing.T) {
	if got := NewProgressSampler(0).step; got != 5 {
		t.Fatalf("step = %v, want 5", got)
	}
	if got := NewProgressSampler(-3).step; got != 5 {
		t.Fatalf("step = %v, want 5", got)
	}
}

func TestProgressSamplerEmitsOncePerStep(t *testing.T) {
	s := NewProgressSampler(10)
	samples := []struct {
		percent float64
		want    bool
	}{
		{-1, false},
		{0, true},
		{4, false},
		{9.9, false},
		{10, true},
		{35, true},
		{38, false},
		{40, true},
		{99.9, true},
		{100, true},
		{100, false},
	}
	for _, sample := range samples {
		if got := s.ShouldLog(sample.percent); got != sample.want {
			t.Fatalf("ShouldLog(%v) = %v, want %v", sample.percent, got, sample.want)
		}
	}
}

func TestProgressSamplerNil(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(50) {
		t.Fatal("nil sampler should always log")
	}
}
