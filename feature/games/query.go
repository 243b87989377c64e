package games

import (
	"math"
	"slices"
	"strings"
	"time"

	"eshop-catalog/core/catalog"

	"golang.org/x/text/cases"
)

const (
	// DefaultLimit is the page size used when none, or a non-positive one, is given.
	DefaultLimit = 10
	// MaxLimit caps the page size.
	MaxLimit = 50
	// DefaultSort is the field listings are sorted by when none is given.
	DefaultSort = "title"
)

// Order is the sort direction of a listing.
type Order int

const (
	Ascending  Order = 1
	Descending Order = -1
)

// ParseOrder maps "desc" to Descending. Anything else is Ascending.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, "desc") {
		return Descending
	}
	return Ascending
}

// String returns the query parameter form of the order.
func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Query describes one listing request.
type Query struct {
	// Filter is a case-insensitive title substring; empty matches all.
	Filter string
	Sort   string
	Order  Order
	Offset int
	Limit  int
}

// NewQuery builds a normalized query from 1-based page parameters.
func NewQuery(filter, sort, order string, page, limit int) Query {
	limit = clampLimit(limit)
	if page < 1 {
		page = 1
	}
	// Keep (page-1)*limit representable.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Query{
		Filter: filter,
		Sort:   sort,
		Order:  ParseOrder(order),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}.normalize()
}

func (q Query) normalize() Query {
	q.Limit = clampLimit(q.Limit)
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	if q.Order != Descending {
		q.Order = Ascending
	}
	return q
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page is one page of a listing.
type Page struct {
	// HasMore reports whether records remain after this page.
	HasMore bool `json:"has_more"`
	// Total is the size of the whole catalog.
	Total int `json:"total"`
	// Count is the number of records matching the filter.
	Count int                  `json:"count"`
	Data  []catalog.GameRecord `json:"data"`
}

// Run filters, sorts and paginates records. Records must be a snapshot of
// the whole catalog; they are reordered in place.
func Run(records []catalog.GameRecord, q Query) Page {
	q = q.normalize()

	filtered := filter(records, q.Filter)
	if cmp := comparator(q.Sort); cmp != nil {
		dir := int(q.Order)
		slices.SortStableFunc(filtered, func(a, b catalog.GameRecord) int {
			return dir * cmp(&a, &b)
		})
	}

	page := Page{
		Total: len(records),
		Count: len(filtered),
		Data:  []catalog.GameRecord{},
	}
	if q.Offset < len(filtered) {
		end := min(q.Offset+q.Limit, len(filtered))
		page.Data = filtered[q.Offset:end]
	}
	page.HasMore = q.Offset < page.Count && q.Limit < page.Count-q.Offset
	return page
}

func filter(records []catalog.GameRecord, needle string) []catalog.GameRecord {
	if needle == "" {
		return records
	}
	fold := cases.Fold()
	needle = fold.String(needle)

	out := make([]catalog.GameRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

type compareFunc func(a, b *catalog.GameRecord) int

// comparator returns the ascending comparison for a field, or nil for an
// unknown field.
func comparator(field string) compareFunc {
	switch field {
	case "code":
		return func(a, b *catalog.GameRecord) int { return strings.Compare(a.Code, b.Code) }
	case "id":
		return func(a, b *catalog.GameRecord) int { return strings.Compare(a.ID, b.ID) }
	case "title":
		return func(a, b *catalog.GameRecord) int { return strings.Compare(a.Title, b.Title) }
	case "art":
		return func(a, b *catalog.GameRecord) int { return strings.Compare(a.Art, b.Art) }
	case "release_date":
		return func(a, b *catalog.GameRecord) int { return compareDates(a.ReleaseDate, b.ReleaseDate) }
	case "a_nsuid":
		return func(a, b *catalog.GameRecord) int { return compareOptional(a.AmericasNSUID, b.AmericasNSUID) }
	case "e_nsuid":
		return func(a, b *catalog.GameRecord) int { return compareOptional(a.EuropeNSUID, b.EuropeNSUID) }
	default:
		return nil
	}
}

// compareDates orders an unknown date after every known one.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// compareOptional treats a missing value as equal to anything. This is not a
// strict weak order: with mixed nil and set values the result depends on
// input order.
func compareOptional(a, b *string) int {
	if a == nil || b == nil {
		return 0
	}
	return strings.Compare(*a, *b)
}
