// Package listing holds the filter/sort/page state of the admin product table and the
// controller that keeps one page of results in sync with it.
package listing

import (
	"errors"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

// Publication is the tri-state publication filter.
type Publication int

const (
	PublicationAny Publication = iota
	PublicationPublished
	PublicationUnpublished
)

// SortField names a sortable column. The values are the server's sort_by names.
type SortField string

const (
	SortSKU          SortField = "sku"
	SortPrice        SortField = "price"
	SortManufacturer SortField = "manufacturer"
	SortStatus       SortField = "status"
	SortViews        SortField = "views"
	SortOrder        SortField = "sort_order"
	SortTitle        SortField = "title"
)

var sortFields = []SortField{SortSKU, SortPrice, SortManufacturer, SortStatus, SortViews, SortOrder, SortTitle}

// ParseSortField accepts the wire name of a column.
func ParseSortField(s string) (SortField, bool) {
	for _, f := range sortFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{10, 25, 50, 100}

const (
	DefaultPageSize = 10
	DefaultSort     = SortOrder
)

var ErrInvalidPageSize = errors.New("listing: page size must be one of 10, 25, 50, 100")

// Filter is the filter part of a query. The draft and the applied query both carry one.
type Filter struct {
	Search       string
	CategoryID   string
	Manufacturer string
	Publication  Publication
}

// Query is what is actually sent to the server.
type Query struct {
	Filter
	Page      int
	PageSize  int
	Sort      SortField
	Direction Direction
}

func DefaultQuery() Query {
	return Query{Page: 1, PageSize: DefaultPageSize, Sort: DefaultSort, Direction: Asc}
}

// ProductQuery maps q onto the client request. Blank filters stay unset.
func (q Query) ProductQuery() admin.ProductQuery {
	opt := func(s string) *string {
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		return &s
	}
	out := admin.ProductQuery{
		Search:       opt(q.Search),
		CategoryID:   opt(q.CategoryID),
		Manufacturer: opt(q.Manufacturer),
		Page:         q.Page,
		PerPage:      q.PageSize,
		SortBy:       string(q.Sort),
		SortOrder:    string(q.Direction),
	}
	switch q.Publication {
	case PublicationPublished:
		v := true
		out.IsPublished = &v
	case PublicationUnpublished:
		v := false
		out.IsPublished = &v
	}
	return out
}

// State is the draft filter, the applied query and the total of the last page received.
// Every method that changes Applied reports true; the caller then fetches exactly once.
type State struct {
	Draft   Filter
	Applied Query
	Total   int
}

func NewState() State {
	return State{Applied: DefaultQuery()}
}

// EditDraft changes the draft only. It never causes a fetch.
func (s *State) EditDraft(edit func(*Filter)) {
	edit(&s.Draft)
}

// Apply commits the draft and returns to the first page.
func (s *State) Apply() bool {
	s.Applied.Filter = s.Draft
	s.Applied.Page = 1
	return true
}

// Reset clears both filters. Sort and page size are kept.
func (s *State) Reset() bool {
	s.Draft = Filter{}
	s.Applied.Filter = Filter{}
	s.Applied.Page = 1
	return true
}

// ToggleSort flips the direction of the active column, or switches to another column in
// ascending order.
func (s *State) ToggleSort(field SortField) bool {
	if s.Applied.Sort == field {
		if s.Applied.Direction == Asc {
			s.Applied.Direction = Desc
		} else {
			s.Applied.Direction = Asc
		}
	} else {
		s.Applied.Sort = field
		s.Applied.Direction = Asc
	}
	s.Applied.Page = 1
	return true
}

func (s *State) SetPageSize(n int) (bool, error) {
	for _, size := range PageSizes {
		if size == n {
			s.Applied.PageSize = n
			s.Applied.Page = 1
			return true, nil
		}
	}
	return false, ErrInvalidPageSize
}

// SetPage moves to page n. Pages outside 1..TotalPages are ignored, as their controls are
// disabled.
func (s *State) SetPage(n int) bool {
	if n < 1 || n > s.TotalPages() || n == s.Applied.Page {
		return false
	}
	s.Applied.Page = n
	return true
}

// TotalPages is ceil(Total / PageSize).
func (s *State) TotalPages() int {
	if s.Total <= 0 || s.Applied.PageSize <= 0 {
		return 0
	}
	return (s.Total + s.Applied.PageSize - 1) / s.Applied.PageSize
}

func (s *State) PrevDisabled() bool { return s.Applied.Page == 1 }

func (s *State) NextDisabled() bool { return s.Applied.Page >= s.TotalPages() }
