package encoding

import (
	"math"
	"slices"
	"sync"
	"testing"
	"time"
)

type recordingIndicator struct {
	mu       sync.Mutex
	updates  []float64
	finished []bool
	onUpdate func(float64)
}

func (r *recordingIndicator) Update(percent float64) {
	r.mu.Lock()
	r.updates = append(r.updates, percent)
	hook := r.onUpdate
	r.mu.Unlock()
	if hook != nil {
		hook(percent)
	}
}

func (r *recordingIndicator) Finish(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, success)
}

func (r *recordingIndicator) snapshot() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.updates)
}

func TestParseOutTime(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"00:01:30.50", 90.5, true},
		{"01:00:00", 3600, true},
		{"00:00:05.000000", 5, true},
		{"123:00:00", 123 * 3600, true},
		{"N/A", 0, false},
		{"-00:00:00.023", 0, false},
		{"00:1:30", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseOutTime(tt.in)
		if ok != tt.ok || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseOutTime(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTrackerFeed(t *testing.T) {
	tr := NewTracker(180)

	if !tr.Feed("out_time=00:01:30.50") {
		t.Fatal("expected out_time to advance")
	}
	if got := tr.Percent(); math.Abs(got-50.2777) > 0.01 {
		t.Fatalf("percent = %v, want ~50.28", got)
	}

	for _, line := range []string{
		"out_time=garbage",
		"out_time=N/A",
		"frame=120",
		"progress=continue",
		"not a record",
		"out_time=00:00:10.00",
	} {
		if tr.Feed(line) {
			t.Fatalf("line %q should not change progress", line)
		}
	}
	if got := tr.Percent(); math.Abs(got-50.2777) > 0.01 {
		t.Fatalf("percent changed to %v", got)
	}

	if !tr.Feed("out_time=00:10:00.00") || tr.Percent() != 100 {
		t.Fatalf("percent should clamp at 100, got %v", tr.Percent())
	}
	if tr.Ended() {
		t.Fatal("tracker should not end before progress=end")
	}
	tr.Feed("progress=end")
	if !tr.Ended() || tr.Percent() != 100 {
		t.Fatalf("progress=end should force 100, got %v", tr.Percent())
	}
}

func TestTrackerUnknownDuration(t *testing.T) {
	tr := NewTracker(0)
	if tr.Feed("out_time=00:00:30.00") {
		t.Fatal("out_time must be ignored without a duration")
	}
	if !tr.Feed("progress=end") || tr.Percent() != 100 {
		t.Fatalf("progress=end should reach 100, got %v", tr.Percent())
	}
}

func TestMailboxKeepsLatest(t *testing.T) {
	box := newMailbox()
	for _, v := range []float64{10, 20, 30} {
		box.post(v)
	}
	select {
	case v := <-box.ch:
		if v != 30 {
			t.Fatalf("mailbox held %v, want 30", v)
		}
	default:
		t.Fatal("mailbox empty")
	}
	select {
	case v := <-box.ch:
		t.Fatalf("unexpected extra value %v", v)
	default:
	}
}

func TestRenderFlushesOnDone(t *testing.T) {
	ind := &recordingIndicator{}
	box := newMailbox()
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		render(ind, box, done, time.Hour)
	}()

	box.post(42)
	close(done)
	<-finished

	updates := ind.snapshot()
	if len(updates) == 0 || updates[len(updates)-1] != 42 {
		t.Fatalf("updates = %v, want final 42", updates)
	}
}
