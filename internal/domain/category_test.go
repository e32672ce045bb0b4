package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Category
	}{
		{"bare", "주차", Category{Base: "주차"}},
		{"with suffix", "주차(마포)", Category{Base: "주차", Location: LocationMapo}},
		{"novel with suffix", "parking(siteA)", Category{Base: "parking", Location: "siteA"}},
		{"whitespace", "  주차 ( 선릉 ) ", Category{Base: "주차", Location: LocationSeolleung}},
		{"leading paren only", "(마포)", Category{Base: "(마포)"}},
		{"empty", "", Category{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.raw))
		})
	}
}

func TestCategoryString_RoundTrip(t *testing.T) {
	for _, raw := range []string{"주차", "주차(마포)", "시설/비품(선릉)", "기타"} {
		assert.Equal(t, raw, ParseCategory(raw).String())
	}
}

func TestBaseCategory(t *testing.T) {
	assert.Equal(t, "parking", BaseCategory("parking(siteA)"))
	assert.Equal(t, "parking", BaseCategory("parking"))
	assert.Equal(t, "주차", BaseCategory("주차(마포)"))
	// unknown categories pass through unchanged
	assert.Equal(t, "정산", BaseCategory("정산"))
}

func TestRefineByLocation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		channel  string
		expected string
	}{
		{"appends site", "주차", "front1-mapo-ask", "주차(마포)"},
		{"replaces existing suffix", "주차(선릉)", "front1-mapo-ask", "주차(마포)"},
		{"korean channel token", "시설/비품", "선릉-문의", "시설/비품(선릉)"},
		{"no site token keeps suffix", "주차(선릉)", "general", "주차(선릉)"},
		{"insensitive category untouched", "홈페이지", "front1-mapo-ask", "홈페이지"},
		{"catch-all untouched", "기타", "front1-mapo-ask", "기타"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCategory(tt.category).RefineByLocation(tt.channel)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestRefineByLocation_Idempotent(t *testing.T) {
	categories := []string{"주차", "주차(마포)", "주차(선릉)", "홈페이지", "기타", "novel(thing)"}
	channels := []string{"front1-mapo-ask", "seolleung-lounge", "general", ""}

	for _, raw := range categories {
		for _, ch := range channels {
			once := ParseCategory(raw).RefineByLocation(ch)
			twice := once.RefineByLocation(ch)
			assert.Equal(t, once, twice, "refine(%q, %q) must be idempotent", raw, ch)
		}
	}
}

func TestCategoryIsCatchAll(t *testing.T) {
	assert.True(t, CatchAll.IsCatchAll())
	assert.True(t, ParseCategory("기타").IsCatchAll())
	assert.False(t, ParseCategory("주차").IsCatchAll())
}

func TestLocationFromChannel(t *testing.T) {
	loc, ok := LocationFromChannel("FRONT1-Mapo-Ask")
	assert.True(t, ok)
	assert.Equal(t, LocationMapo, loc)

	_, ok = LocationFromChannel("general")
	assert.False(t, ok)
}
