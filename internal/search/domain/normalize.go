package domain

import "strings"

// NormalizeCode canonicalizes a part/OEM code: uppercase, letters and
// digits only. Two codes identify the same part iff their normalized
// forms are equal. Idempotent; empty input yields empty output.
func NormalizeCode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ThresholdForLength picks the trigram similarity cutoff for a trimmed
// query of the given length. Longer queries get a lower threshold because
// false positives become rarer as strings get more specific.
func ThresholdForLength(length int) float64 {
	switch {
	case length <= 3:
		return 0.35
	case length == 4:
		return 0.30
	case length <= 6:
		return 0.25
	default:
		return 0.20
	}
}
