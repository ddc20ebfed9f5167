package matching

import "strings"

// experienceBucket is the coarse seniority band derived from a job's
// free-text experience descriptor.
type experienceBucket int

const (
	bucketUnknown experienceBucket = iota
	bucketEntry                    // 0-2 years
	bucketMid                      // 2-5 years
	bucketSenior                   // 5+ years
)

// Bucket midpoints used to measure how far a candidate is from a band
// they fall outside of.
const (
	entryMidpointYears  = 1
	midMidpointYears    = 3
	seniorMidpointYears = 6
)

// parseExperienceBucket maps a free-text experience descriptor to a bucket
// via substring heuristics. Unrecognized descriptors return bucketUnknown,
// which callers treat as an automatic match.
func parseExperienceBucket(descriptor string) experienceBucket {
	level := strings.ToLower(descriptor)
	switch {
	case strings.Contains(level, "entry"), strings.Contains(level, "junior"), strings.Contains(level, "0-2"):
		return bucketEntry
	case strings.Contains(level, "mid"), strings.Contains(level, "2-5"), strings.Contains(level, "3-5"):
		return bucketMid
	case strings.Contains(level, "senior"), strings.Contains(level, "5+"), strings.Contains(level, "lead"):
		return bucketSenior
	default:
		return bucketUnknown
	}
}

// contains reports whether the candidate's years of experience fall inside
// the bucket. Unknown buckets always match.
func (b experienceBucket) contains(years int) bool {
	switch b {
	case bucketEntry:
		return years <= 2
	case bucketMid:
		return years >= 2 && years <= 5
	case bucketSenior:
		return years >= 5
	default:
		return true
	}
}

// gapYears returns the distance between the candidate's years and the
// bucket midpoint. Unknown buckets have no midpoint and report zero.
func (b experienceBucket) gapYears(years int) int {
	var midpoint int
	switch b {
	case bucketEntry:
		midpoint = entryMidpointYears
	case bucketMid:
		midpoint = midMidpointYears
	case bucketSenior:
		midpoint = seniorMidpointYears
	default:
		return 0
	}
	gap := years - midpoint
	if gap < 0 {
		gap = -gap
	}
	return gap
}
