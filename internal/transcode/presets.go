package transcode

import (
	"math"
	"slices"
)

// CRF bounds accepted for the quality parameter.
const (
	MinQuality = 0
	MaxQuality = 51
)

// presets is ordered fastest to slowest.
var presets = []string{
	"ultrafast",
	"superfast",
	"veryfast",
	"faster",
	"fast",
	"medium",
	"slow",
	"slower",
	"veryslow",
}

// Presets returns the software encoder speed presets, fastest first.
func Presets() []string {
	return slices.Clone(presets)
}

// IsPreset reports whether name is a known speed preset.
func IsPreset(name string) bool {
	return slices.Contains(presets, name)
}

// HardwareQuality maps a CRF-style quality (lower is better) onto the hardware
// encoder's 0-100 scale.
func HardwareQuality(quality int) int {
	value := int(math.Round(20 + float64(quality-18)*3.5))
	return max(0, min(100, value))
}
