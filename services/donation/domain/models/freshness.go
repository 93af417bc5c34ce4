package models

import "fmt"

// Freshness is a qualitative perishability tag used for display and
// filtering only; it never gates a lifecycle transition.
type Freshness string

const (
	FreshnessHot  Freshness = "hot"
	FreshnessWarm Freshness = "warm"
	FreshnessCold Freshness = "cold"
)

// ParseFreshness validates a raw freshness string.
func ParseFreshness(s string) (Freshness, error) {
	switch Freshness(s) {
	case FreshnessHot, FreshnessWarm, FreshnessCold:
		return Freshness(s), nil
	}
	return "", fmt.Errorf("freshness must be hot, warm, or cold; got %q", s)
}

func (f Freshness) String() string {
	return string(f)
}
