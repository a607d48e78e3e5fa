package estimate

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTableCoversEveryQuality(t *testing.T) {
	for q := MinQuality; q <= MaxQuality; q++ {
		if _, ok := multipliers[q]; !ok {
			t.Fatalf("missing multiplier for quality %d", q)
		}
	}
	if len(multipliers) != MaxQuality-MinQuality+1 {
		t.Fatalf("unexpected table size %d", len(multipliers))
	}
}

func TestSizeClampsOutOfRangeQuality(t *testing.T) {
	cases := []struct {
		quality int
		clamped int
	}{
		{0, MinQuality},
		{17, MinQuality},
		{-5, MinQuality},
		{36, MaxQuality},
		{51, MaxQuality},
		{1000, MaxQuality},
	}
	for _, tc := range cases {
		got := Size(100, tc.quality, 1)
		want := Size(100, tc.clamped, 1)
		if !approxEqual(got, want) {
			t.Fatalf("Size(q=%d) = %v, want clamped %v", tc.quality, got, want)
		}
		if ClampQuality(ClampQuality(tc.quality)) != ClampQuality(tc.quality) {
			t.Fatalf("clamping is not idempotent for %d", tc.quality)
		}
	}
}

func TestSizeMonotonicInQuality(t *testing.T) {
	prev := math.Inf(1)
	for q := 10; q <= 40; q++ {
		got := Size(1000, q, 1)
		if got > prev {
			t.Fatalf("estimate increased from %v to %v at quality %d", prev, got, q)
		}
		prev = got
	}
}

func TestSizeScalesQuadratically(t *testing.T) {
	base := Size(400, 26, 0.5)
	doubled := Size(400, 26, 1.0)
	if !approxEqual(doubled, base*4) {
		t.Fatalf("doubling scale: got %v, want %v", doubled, base*4)
	}
}

func TestSizeEndToEndDefaultQuality(t *testing.T) {
	got := Size(500, 23, 1)
	if !approxEqual(got, 175) {
		t.Fatalf("Size(500, 23, 1) = %v, want 175", got)
	}
}

func TestReductionPercent(t *testing.T) {
	if got := ReductionPercent(500, 175); !approxEqual(got, 65) {
		t.Fatalf("ReductionPercent = %v", got)
	}
	if got := ReductionPercent(0, 10); got != 0 {
		t.Fatalf("ReductionPercent with zero input = %v", got)
	}
}

func TestResolutionScale(t *testing.T) {
	if got := ResolutionScale(720, 1440); !approxEqual(got, 0.5) {
		t.Fatalf("ResolutionScale = %v", got)
	}
	if got := ResolutionScale(720, 0); got != 1 {
		t.Fatalf("unknown source should yield 1, got %v", got)
	}
	if got := ResolutionScale(0, 1080); got != 1 {
		t.Fatalf("unknown target should yield 1, got %v", got)
	}
}
