package presenter

import (
	"fmt"
	"math"
	"strconv"
)

// FormatSize renders a size given in MiB as "X.X MB", switching to GB from
// 1000 MB upward.
func FormatSize(mib float64) string {
	if mib >= 1000 {
		return fmt.Sprintf("%.1f GB", mib/1024)
	}
	return fmt.Sprintf("%.1f MB", mib)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatFrameRate renders frames per second rounded to two decimals.
func FormatFrameRate(fps float64) string {
	rounded := math.Round(fps*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " fps"
}
