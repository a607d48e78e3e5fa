package transcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	sizePattern   = regexp.MustCompile(`^(\d+)x(\d+)$`)
	heightPattern = regexp.MustCompile(`^\d+$`)
)

// Scale is a parsed target resolution.
type Scale struct {
	// Spec is the argument to ffmpeg's scale filter.
	Spec string
	// Height is the requested output height in pixels.
	Height int
}

// Filter returns the -vf value for the scale.
func (s Scale) Filter() string {
	return "scale=" + s.Spec
}

// ParseResolution accepts WIDTHxHEIGHT (passed through verbatim) or a bare
// height, for which the width is derived by ffmpeg as the nearest even value
// preserving the aspect ratio.
func ParseResolution(value string) (Scale, error) {
	value = strings.TrimSpace(value)
	if m := sizePattern.FindStringSubmatch(value); m != nil {
		height, err := strconv.Atoi(m[2])
		if err != nil || height <= 0 {
			return Scale{}, fmt.Errorf("invalid resolution %q", value)
		}
		return Scale{Spec: value, Height: height}, nil
	}
	if heightPattern.MatchString(value) {
		height, err := strconv.Atoi(value)
		if err != nil || height <= 0 {
			return Scale{}, fmt.Errorf("invalid resolution %q", value)
		}
		return Scale{Spec: "-2:" + value, Height: height}, nil
	}
	return Scale{}, fmt.Errorf("invalid resolution %q: use WIDTHxHEIGHT or a height such as 720", value)
}

func isResolution(value string) bool {
	_, err := ParseResolution(value)
	return err == nil
}
