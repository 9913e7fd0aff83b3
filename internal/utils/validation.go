package utils

import "regexp"

var addressRegex = regexp.MustCompile(`^[0-9a-zA-Z][0-9a-zA-Z._-]{0,127}$`)

// IsValidAddress checks an account address used as a document key: non-empty,
// bounded length and free of the characters the composite keys are built
// with (":" in particular).
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}

// IsValidAssetID applies the same key discipline to asset identifiers.
func IsValidAssetID(assetID string) bool {
	return addressRegex.MatchString(assetID)
}
