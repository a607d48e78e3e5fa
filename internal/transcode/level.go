package transcode

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"proteus/internal/estimate"
	"proteus/internal/services"
)

// Level is a named compression preset used by `compress`.
type Level struct {
	Name         string
	Quality      int
	Preset       string
	AudioBitrate string
}

// DefaultLevel is applied when compress is run without --level.
const DefaultLevel = "medium"

// DefaultQuality is the convert CRF when neither -q nor the config sets one.
const DefaultQuality = 23

// levels is ordered lightest to heaviest.
var levels = []Level{
	{Name: "light", Quality: 20, Preset: "fast", AudioBitrate: "128k"},
	{Name: "medium", Quality: 26, Preset: "medium", AudioBitrate: "96k"},
	{Name: "heavy", Quality: 30, Preset: "slow", AudioBitrate: "64k"},
	{Name: "extreme", Quality: 35, Preset: "slower", AudioBitrate: "48k"},
}

const suggestionThreshold = 0.5

// Levels returns every compression level, lightest first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelNames returns the level names, lightest first.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for _, level := range levels {
		names = append(names, level.Name)
	}
	return names
}

// LookupLevel resolves a level by name.
func LookupLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, level := range levels {
		if level.Name == normalized {
			return level, nil
		}
	}
	return Level{}, &UnknownLevelError{Name: name, Suggestion: suggestLevel(normalized)}
}

// LevelForQuality returns the level whose quality matches exactly.
func LevelForQuality(quality int) (Level, bool) {
	for _, level := range levels {
		if level.Quality == quality {
			return level, true
		}
	}
	return Level{}, false
}

// LevelForTargetSize picks the lightest level whose estimated output, in the
// same unit as inputSize, fits within target. The heaviest level is returned
// when none fits.
func LevelForTargetSize(inputSize, target, resolutionScale float64) Level {
	for _, level := range levels {
		if estimate.Size(inputSize, level.Quality, resolutionScale) <= target {
			return level
		}
	}
	return levels[len(levels)-1]
}

// Next returns the next heavier level, if any.
func (l Level) Next() (Level, bool) {
	for i, level := range levels {
		if level.Name == l.Name && i+1 < len(levels) {
			return levels[i+1], true
		}
	}
	return Level{}, false
}

func suggestLevel(name string) string {
	if name == "" {
		return ""
	}
	metric := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for _, level := range levels {
		score := strutil.Similarity(name, level.Name, metric)
		if score > bestScore {
			best, bestScore = level.Name, score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}

// UnknownLevelError reports a compression level outside the fixed set.
type UnknownLevelError struct {
	Name       string
	Suggestion string
}

func (e *UnknownLevelError) Error() string {
	msg := fmt.Sprintf("unknown level %q; use: %s", e.Name, strings.Join(LevelNames(), ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *UnknownLevelError) Is(target error) bool {
	return target == services.ErrUnknownLevel
}
