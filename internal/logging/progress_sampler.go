package logging

// ProgressSampler thins progress logging to one record per step of percent.
// A final sample at 100% is always emitted once.
type ProgressSampler struct {
	step float64
	next float64
}

// NewProgressSampler returns a sampler emitting every step percent (5 when
// step is not positive).
func NewProgressSampler(step float64) *ProgressSampler {
	if step <= 0 {
		step = 5
	}
	return &ProgressSampler{step: step}
}

// ShouldLog reports whether percent has reached the next step. Negative
// values mean progress is unknown and never emit.
func (s *ProgressSampler) ShouldLog(percent float64) bool {
	if s == nil {
		return true
	}
	if percent < 0 || percent < s.next || s.next > 100 {
		return false
	}
	if percent >= 100 {
		s.next = 100 + s.step
		return true
	}
	s.next = (float64(int(percent/s.step)) + 1) * s.step
	return true
}
