package delivery

import "strings"

// RestrictedRegion is the destination a driver may serve at most once, ever.
const RestrictedRegion = "NORDESTE"

// regionFactors maps recognized tax regions to their price multipliers.
// Destinations outside this set keep their declared value unchanged.
// Factors are decimal strings so the adjustment stays exact.
func regionFactors() map[string]string {
	return map[string]string{
		"NORDESTE":  "1.20",
		"ARGENTINA": "1.40",
		"AMAZONIA":  "1.30",
	}
}

// RegionFactor returns the price multiplier for a destination and whether the
// destination is a recognized tax region. Matching is case-insensitive.
func RegionFactor(destination string) (string, bool) {
	factor, ok := regionFactors()[strings.ToUpper(destination)]
	return factor, ok
}

// IsRestrictedDestination reports whether the destination is the
// single-use restricted region, compared case-insensitively.
func IsRestrictedDestination(destination string) bool {
	return strings.EqualFold(destination, RestrictedRegion)
}
