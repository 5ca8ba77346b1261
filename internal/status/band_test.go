package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		score  int
		expect Band
	}{
		{0, BandBlocked},
		{1, BandBlocked},
		{3, BandBlocked},
		{4, BandLimited},
		{5, BandLimited},
		{6, BandLimited},
		{7, BandGood},
		{10, BandGood},
		{-1, BandUnknown},
		{11, BandUnknown},
		{99, BandUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, BandFor(tt.score), "score %d", tt.score)
	}
}

func TestBandFor_CoversFullContractRange(t *testing.T) {
	// Every in-contract score maps to one of the three real bands.
	for s := MinScore; s <= MaxScore; s++ {
		band := BandFor(s)
		assert.Contains(t, []Band{BandBlocked, BandLimited, BandGood}, band, "score %d", s)
	}
}

func TestBandFor_Monotonic(t *testing.T) {
	// Band never decreases as the score increases.
	prev := BandFor(MinScore)
	for s := MinScore + 1; s <= MaxScore; s++ {
		band := BandFor(s)
		assert.GreaterOrEqual(t, int(band), int(prev), "score %d", s)
		prev = band
	}
}

func TestBand_String(t *testing.T) {
	tests := []struct {
		band   Band
		expect string
	}{
		{BandBlocked, "Blocked/Failed"},
		{BandLimited, "Limited"},
		{BandGood, "Good"},
		{BandUnknown, "Unknown"},
		{Band(42), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, tt.band.String())
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 7, Clamp(7))
	assert.Equal(t, 10, Clamp(10))
	assert.Equal(t, 10, Clamp(100))
}
