package encoding

import (
	"regexp"
	"strconv"
	"strings"
)

var outTimePattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2}(?:\.\d+)?)$`)

// ParseOutTime converts an ffmpeg out_time value (HH:MM:SS[.fraction]) into
// seconds. Anything else, including "N/A" and negative timestamps, is
// rejected.
func ParseOutTime(value string) (float64, bool) {
	m := outTimePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, false
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds, true
}

// Tracker folds progress records into a completion percentage. The
// percentage never decreases.
type Tracker struct {
	duration float64
	percent  float64
	done     bool
}

// NewTracker creates a tracker for a media file of the given duration in
// seconds. A duration <= 0 means unknown: only the end record moves the
// percentage.
func NewTracker(duration float64) *Tracker {
	return &Tracker{duration: duration}
}

// Feed consumes one line of progress output and reports whether the
// percentage advanced.
func (t *Tracker) Feed(line string) bool {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return false
	}
	switch key {
	case "out_time":
		if t.duration <= 0 {
			return false
		}
		seconds, ok := ParseOutTime(value)
		if !ok {
			return false
		}
		return t.advance(min(100, seconds/t.duration*100))
	case "progress":
		if strings.TrimSpace(value) != "end" {
			return false
		}
		t.done = true
		return t.advance(100)
	}
	return false
}

func (t *Tracker) advance(percent float64) bool {
	if percent <= t.percent {
		return false
	}
	t.percent = percent
	return true
}

// Percent returns the current completion percentage in [0, 100].
func (t *Tracker) Percent() float64 {
	return t.percent
}

// Ended reports whether ffmpeg announced the end of the progress stream.
func (t *Tracker) Ended() bool {
	return t.done
}
