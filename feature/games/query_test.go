package games

import (
	"fmt"
	"math"
	"testing"
	"time"

	"eshop-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(code, title string) catalog.GameRecord {
	return catalog.GameRecord{Code: code, ID: "id-" + code, Title: title}
}

func dated(r catalog.GameRecord, date string) catalog.GameRecord {
	d, _ := time.Parse("2006-01-02", date)
	r.ReleaseDate = &d
	return r
}

func codes(records []catalog.GameRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Code)
	}
	return out
}

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		order      string
		wantOffset int
		wantLimit  int
		wantOrder  Order
	}{
		{"Defaults", 1, 0, "", 0, DefaultLimit, Ascending},
		{"NegativeLimit", 1, -5, "asc", 0, DefaultLimit, Ascending},
		{"LimitCapped", 2, 500, "desc", MaxLimit, MaxLimit, Descending},
		{"PageBelowOne", 0, 10, "DESC", 0, 10, Descending},
		{"ThirdPage", 3, 10, "sideways", 20, 10, Ascending},
		{"MaxPage", math.MaxInt, 10, "", (math.MaxInt/10 - 1) * 10, 10, Ascending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery("", "", tt.order, tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, q.Offset)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantOrder, q.Order)
			assert.Equal(t, DefaultSort, q.Sort)
		})
	}
}

func TestRun_Pagination(t *testing.T) {
	records := make([]catalog.GameRecord, 0, 25)
	for i := range 25 {
		records = append(records, record(fmt.Sprintf("C%03d", i), fmt.Sprintf("Game %02d", i)))
	}

	first := Run(records, NewQuery("", "title", "asc", 1, 10))
	assert.True(t, first.HasMore)
	assert.Equal(t, 25, first.Total)
	assert.Equal(t, 25, first.Count)
	require.Len(t, first.Data, 10)
	assert.Equal(t, "Game 00", first.Data[0].Title)

	third := Run(records, NewQuery("", "title", "asc", 3, 10))
	assert.False(t, third.HasMore)
	assert.Equal(t, 25, third.Count)
	require.Len(t, third.Data, 5)
	assert.Equal(t, []string{"C020", "C021", "C022", "C023", "C024"}, codes(third.Data))

	for _, p := range []int{math.MaxInt / 10, math.MaxInt} {
		huge := Run(records, NewQuery("", "title", "asc", p, 10))
		assert.False(t, huge.HasMore, "page %d", p)
		assert.Empty(t, huge.Data, "page %d", p)
		assert.Equal(t, 25, huge.Count)
	}

	nearMax := Run(records, Query{Offset: math.MaxInt - 5, Limit: 10})
	assert.False(t, nearMax.HasMore)
	assert.Empty(t, nearMax.Data)

	beyond := Run(records, NewQuery("", "title", "asc", 9, 10))
	assert.False(t, beyond.HasMore)
	assert.NotNil(t, beyond.Data)
	assert.Empty(t, beyond.Data)
}

func TestRun_Filter(t *testing.T) {
	records := []catalog.GameRecord{
		record("AAAA", "Super Mario Odyssey"),
		record("BBBB", "MARIO KART 8 DELUXE"),
		record("CCCC", "The Legend of Zelda"),
		record("DDDD", "Mario + Rabbids"),
	}

	page := Run(records, NewQuery("mario", "title", "asc", 1, 10))
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 3, page.Count)
	assert.False(t, page.HasMore)
	assert.Equal(t, []string{"BBBB", "DDDD", "AAAA"}, codes(page.Data))

	none := Run(records, NewQuery("metroid", "", "", 1, 10))
	assert.Zero(t, none.Count)
	assert.Empty(t, none.Data)
}

func TestRun_HasMoreUsesFilteredCount(t *testing.T) {
	records := make([]catalog.GameRecord, 0, 30)
	for i := range 30 {
		title := fmt.Sprintf("Other %02d", i)
		if i < 5 {
			title = fmt.Sprintf("Mario %02d", i)
		}
		records = append(records, record(fmt.Sprintf("C%03d", i), title))
	}

	page := Run(records, NewQuery("mario", "", "", 1, 10))
	assert.Equal(t, 30, page.Total)
	assert.Equal(t, 5, page.Count)
	assert.False(t, page.HasMore)
}

func TestRun_SortReleaseDate(t *testing.T) {
	records := []catalog.GameRecord{
		record("NONE", "Unknown"),
		dated(record("OLD", "Old"), "2017-03-03"),
		dated(record("NEW", "New"), "2023-05-12"),
	}

	asc := Run(append([]catalog.GameRecord(nil), records...), NewQuery("", "release_date", "asc", 1, 10))
	assert.Equal(t, []string{"OLD", "NEW", "NONE"}, codes(asc.Data))

	desc := Run(append([]catalog.GameRecord(nil), records...), NewQuery("", "release_date", "desc", 1, 10))
	assert.Equal(t, []string{"NONE", "NEW", "OLD"}, codes(desc.Data))
}

func TestRun_SortFields(t *testing.T) {
	a, b := "2", "1"
	first := record("BBBB", "Alpha")
	first.AmericasNSUID = &a
	second := record("AAAA", "Beta")
	second.AmericasNSUID = &b

	byCode := Run([]catalog.GameRecord{first, second}, NewQuery("", "code", "", 1, 10))
	assert.Equal(t, []string{"AAAA", "BBBB"}, codes(byCode.Data))

	byNSUID := Run([]catalog.GameRecord{first, second}, NewQuery("", "a_nsuid", "", 1, 10))
	assert.Equal(t, []string{"AAAA", "BBBB"}, codes(byNSUID.Data))

	byTitleDesc := Run([]catalog.GameRecord{first, second}, NewQuery("", "title", "desc", 1, 10))
	assert.Equal(t, []string{"AAAA", "BBBB"}, codes(byTitleDesc.Data))
}

func TestRun_UnknownSortIsStable(t *testing.T) {
	records := []catalog.GameRecord{
		record("CCCC", "Charlie"),
		record("AAAA", "Alpha"),
		record("BBBB", "Bravo"),
	}

	page := Run(records, NewQuery("", "popularity", "desc", 1, 10))
	assert.Equal(t, []string{"CCCC", "AAAA", "BBBB"}, codes(page.Data))
}

func TestCompareDates(t *testing.T) {
	d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, compareDates(nil, nil))
	assert.Equal(t, 1, compareDates(nil, &d))
	assert.Equal(t, -1, compareDates(&d, nil))
	assert.Equal(t, 0, compareDates(&d, &d))
}

func TestCompareOptional(t *testing.T) {
	one, two := "1", "2"
	assert.Equal(t, 0, compareOptional(nil, &one))
	assert.Equal(t, 0, compareOptional(&two, nil))
	assert.Equal(t, -1, compareOptional(&one, &two))
}
