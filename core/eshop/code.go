package eshop

import (
	"regexp"
	"strings"
	"time"
)

// gameCodePattern matches Switch product codes such as HACPAAAAA or
// HAC-P-AAAAA; the four characters after the content type are shared by
// every regional release of a title.
var gameCodePattern = regexp.MustCompile(`HAC\w(\w{4})`)

// ResolveCode derives the cross-region game code of a storefront record.
// It returns false when the record carries no usable product code.
func ResolveCode(game RawGame, region Region) (string, bool) {
	var source string
	switch region {
	case RegionAmericas, RegionEurope:
		source = game.ProductCode
	default:
		return "", false
	}

	// Dashed product codes (HAC-P-AAAAA) from either feed are normalized before matching.
	source = strings.ToUpper(strings.ReplaceAll(source, "-", ""))
	match := gameCodePattern.FindStringSubmatch(source)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// ResolveNSUID returns the region's numeric store id used to look prices up.
func ResolveNSUID(game RawGame, region Region) (string, bool) {
	if region != RegionAmericas && region != RegionEurope {
		return "", false
	}
	nsuid := strings.TrimSpace(game.NSUID)
	if nsuid == "" {
		return "", false
	}
	for _, r := range nsuid {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return nsuid, true
}

var releaseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseReleaseDate parses the release date formats used by both storefronts.
// Unknown or malformed dates yield nil.
func ParseReleaseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
