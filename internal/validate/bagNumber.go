package validate

import (
	"regexp"
	"strings"
)

var bagNoPattern = regexp.MustCompile(`^[BG]-\d+$`)

// NormalizeBagNo is applied at entry time, before validation.
func NormalizeBagNo(bagNo string) string {
	return strings.ToUpper(strings.TrimSpace(bagNo))
}

// BagNo checks the value as given; "b-1" fails here and must be normalized first.
func BagNo(bagNo string) bool {
	return bagNoPattern.MatchString(bagNo)
}
