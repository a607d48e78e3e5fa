package encoding

import (
	"time"
)

// Indicator displays progress. Update receives non-decreasing percentages;
// Finish is called exactly once after the last Update.
type Indicator interface {
	Update(percent float64)
	Finish(success bool)
}

type nopIndicator struct{}

func (nopIndicator) Update(float64) {}
func (nopIndicator) Finish(bool)    {}

// mailbox holds only the most recent percentage. Posting never blocks: a
// value the renderer has not yet picked up is replaced.
type mailbox struct {
	ch chan float64
}

func newMailbox() *mailbox {
	return &mailbox{ch: make(chan float64, 1)}
}

// post must only be called from a single goroutine.
func (m *mailbox) post(percent float64) {
	for {
		select {
		case m.ch <- percent:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// render forwards mailbox values to ind at most once per refresh interval
// until done is closed, then flushes whatever is left.
func render(ind Indicator, box *mailbox, done <-chan struct{}, refresh time.Duration) {
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	shown := -1.0
	pending := -1.0
	flush := func() {
		if pending > shown {
			ind.Update(pending)
			shown = pending
		}
	}
	for {
		select {
		case v := <-box.ch:
			pending = max(pending, v)
		case <-ticker.C:
			flush()
		case <-done:
			select {
			case v := <-box.ch:
				pending = max(pending, v)
			default:
			}
			flush()
			return
		}
	}
}
