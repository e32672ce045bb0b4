package domain

import (
	"fmt"
	"strings"
)

// Known base categories from the department sheet. Anything else flows
// through the pipeline untouched and simply gets no action buttons.
const (
	CategoryParking  = "주차"
	CategoryFacility = "시설/비품"
	CategoryNetwork  = "네트워크"
	CategoryHomepage = "홈페이지"
	CategoryVenue    = "대관"
	CategoryCatchAll = "기타"
)

// Location is a site refinement appended to a category, e.g. "주차(마포)".
type Location string

const (
	LocationNone      Location = ""
	LocationMapo      Location = "마포"
	LocationSeolleung Location = "선릉"
)

// siteTokens maps substrings of a Slack channel name to a site. Channels are
// conventionally named with the romanized site, but Korean names occur too.
var siteTokens = []struct {
	token string
	loc   Location
}{
	{"mapo", LocationMapo},
	{"마포", LocationMapo},
	{"seolleung", LocationSeolleung},
	{"선릉", LocationSeolleung},
}

// locationSensitive lists the base categories whose owning team differs per
// site, so a site hint from the channel name should override the suffix.
var locationSensitive = map[string]bool{
	CategoryParking:  true,
	CategoryFacility: true,
}

// Category is a classification outcome: a base category plus an optional
// location refinement. Keeping the two parts separate makes suffix handling
// total and idempotent instead of repeated string surgery at call sites.
type Category struct {
	Base     string
	Location Location
}

// CatchAll is the category meaning "no confident classification".
var CatchAll = Category{Base: CategoryCatchAll}

// ParseCategory splits a raw category string into its base and a single
// trailing parenthetical location suffix, if present. It never fails; an
// unsuffixed or novel string becomes a bare base.
func ParseCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, ")") {
		if i := strings.LastIndex(raw, "("); i > 0 {
			return Category{
				Base:     strings.TrimSpace(raw[:i]),
				Location: Location(strings.TrimSpace(raw[i+1 : len(raw)-1])),
			}
		}
	}
	return Category{Base: raw}
}

// String renders the category back to its sheet form.
func (c Category) String() string {
	if c.Location == LocationNone {
		return c.Base
	}
	return fmt.Sprintf("%s(%s)", c.Base, c.Location)
}

// BaseOnly strips the location refinement.
func (c Category) BaseOnly() Category {
	return Category{Base: c.Base}
}

// IsCatchAll reports whether this is the designated catch-all category,
// regardless of any location suffix.
func (c Category) IsCatchAll() bool {
	return c.Base == CategoryCatchAll
}

// LocationFromChannel extracts a site hint from a channel name.
func LocationFromChannel(channelName string) (Location, bool) {
	name := strings.ToLower(channelName)
	for _, st := range siteTokens {
		if strings.Contains(name, st.token) {
			return st.loc, true
		}
	}
	return LocationNone, false
}

// RefineByLocation re-points a location-sensitive category at the site named
// in the originating channel. Categories outside the location-sensitive set,
// and channels without a site token, pass through unchanged (keeping any
// suffix already present). Applying it twice yields the same result as once.
func (c Category) RefineByLocation(channelName string) Category {
	if !locationSensitive[c.Base] {
		return c
	}
	loc, ok := LocationFromChannel(channelName)
	if !ok {
		return c
	}
	return Category{Base: c.Base, Location: loc}
}

// BaseCategory strips exactly one trailing parenthetical suffix from a raw
// category string. Used before comparing against the fixed set of known
// categories for action-button routing; novel strings pass through unchanged.
func BaseCategory(raw string) string {
	return ParseCategory(raw).Base
}
