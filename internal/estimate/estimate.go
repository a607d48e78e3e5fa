// Package estimate predicts encoded output sizes from a fixed, empirically
// chosen table of output-to-input ratios keyed by quality value.
//
// The numbers are rough: actual results depend heavily on the content, so
// callers must present every result as an approximation.
package estimate

const (
	// MinQuality is the lowest quality value the table covers.
	MinQuality = 18
	// MaxQuality is the highest quality value the table covers.
	MaxQuality = 35
)

// multipliers maps each quality value to the expected output/input size ratio
// at unchanged resolution. Edit the table, not the lookup, to retune.
var multipliers = map[int]float64{
	18: 0.65,
	19: 0.58,
	20: 0.50,
	21: 0.45,
	22: 0.40,
	23: 0.35,
	24: 0.30,
	25: 0.27,
	26: 0.24,
	27: 0.21,
	28: 0.18,
	29: 0.16,
	30: 0.14,
	31: 0.12,
	32: 0.11,
	33: 0.10,
	34: 0.09,
	35: 0.08,
}

// ClampQuality limits quality to the range covered by the table.
func ClampQuality(quality int) int {
	return max(MinQuality, min(MaxQuality, quality))
}

// Multiplier returns the size ratio for quality after clamping.
func Multiplier(quality int) float64 {
	return multipliers[ClampQuality(quality)]
}

// Size estimates the output size in the same unit as inputSize. The
// resolution scale is applied quadratically because encoded size tracks pixel
// area.
func Size(inputSize float64, quality int, resolutionScale float64) float64 {
	return inputSize * Multiplier(quality) * resolutionScale * resolutionScale
}

// ReductionPercent reports how much smaller estimated is than input, in
// percent. A zero input yields zero.
func ReductionPercent(input, estimated float64) float64 {
	if input <= 0 {
		return 0
	}
	return (input - estimated) / input * 100
}

// ResolutionScale returns targetHeight/sourceHeight, or 1 when either is unknown.
func ResolutionScale(targetHeight, sourceHeight int) float64 {
	if targetHeight <= 0 || sourceHeight <= 0 {
		return 1
	}
	return float64(targetHeight) / float64(sourceHeight)
}
