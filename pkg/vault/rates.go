package vault

import "strings"

// ProviderName is the nominal insurer stamped on every quote.
const ProviderName = "AssetGuard Insurance"

const defaultRateKey = "default"

var categoryRates = map[string]float64{
	"electronics":  0.02,
	"watches":      0.03,
	"furniture":    0.015,
	defaultRateKey: 0.025,
}

// RateForCategory resolves the premium rate for an asset category,
// case-insensitively. Unknown categories get the default rate, there
// is no failure path.
func RateForCategory(category string) float64 {
	if rate, ok := categoryRates[strings.ToLower(category)]; ok {
		return rate
	}
	return categoryRates[defaultRateKey]
}
