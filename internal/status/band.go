package status

// Score bounds for the normalized health scale.
const (
	MinScore = 0
	MaxScore = 10
)

// Band is the qualitative health classification derived from a score.
type Band int

const (
	BandBlocked Band = iota // 0-3: blocked or failed outright
	BandLimited             // 4-6: reachable but degraded
	BandGood                // 7-10: healthy
	BandUnknown             // out-of-contract score, defensive default
)

// String returns the label shown in the dashboard for this band.
func (b Band) String() string {
	switch b {
	case BandBlocked:
		return "Blocked/Failed"
	case BandLimited:
		return "Limited"
	case BandGood:
		return "Good"
	default:
		return "Unknown"
	}
}

// BandFor classifies a score into its health band. Total over all ints:
// scores outside 0-10 map to BandUnknown rather than panicking, since the
// classification is also used on values that bypassed Clamp.
func BandFor(score int) Band {
	switch {
	case score < MinScore || score > MaxScore:
		return BandUnknown
	case score <= 3:
		return BandBlocked
	case score <= 6:
		return BandLimited
	default:
		return BandGood
	}
}

// Clamp bounds a raw score to the 0-10 scale.
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
