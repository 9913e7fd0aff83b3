package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	valid := []string{
		"staker-1.test",
		"a",
		"Account_42",
		"some.address-with_mixed.Parts",
		strings.Repeat("a", 128),
	}
	for _, address := range valid {
		assert.True(t, IsValidAddress(address), "expected %q to be valid", address)
	}

	invalid := []string{
		"",
		".leadingdot",
		"-leadingdash",
		"has:colon",
		"has space",
		"has/slash",
		strings.Repeat("a", 129),
	}
	for _, address := range invalid {
		assert.False(t, IsValidAddress(address), "expected %q to be invalid", address)
	}
}

func TestIsValidAssetID(t *testing.T) {
	assert.True(t, IsValidAssetID("asset-gold"))
	assert.True(t, IsValidAssetID("0xdeadbeef"))
	assert.False(t, IsValidAssetID("asset:gold"))
	assert.False(t, IsValidAssetID(""))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b", "c"}, "b"))
	assert.False(t, Contains([]string{"a", "b", "c"}, "d"))
	assert.False(t, Contains([]string{}, "a"))
	assert.True(t, Contains([]int64{1, 2, 3}, int64(3)))
}
