package listing

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

const dash = "-"

// Render prints a page as a table followed by the pager line. Variant sub-rows are
// printed under every product listed in expanded.
func Render(w io.Writer, st State, page *apicontract.ProductListResponse, expanded map[string]bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header(st.Applied))

	if page == nil || len(page.Items) == 0 {
		fmt.Fprintln(tw, "(no products)")
	} else {
		for _, p := range page.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				marker(p, expanded),
				orDash(p.SKU),
				p.Title,
				price(p),
				orDash(p.Manufacturer),
				p.ViewCount,
				p.SortOrder,
				status(p.IsPublished),
			)
			if !expanded[p.ID] {
				continue
			}
			for _, v := range p.Variants {
				fmt.Fprintf(tw, "\t\t  %s: %s\tstock %d\tin order %d\t\t\t\n",
					v.OptionName, v.OptionValue, v.StockQty, v.InOrderQty)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, Pager(st))
	return err
}

// Pager describes the pager state, for example "page 2/5 · 47 products · [prev] [next]".
func Pager(st State) string {
	pages := st.TotalPages()
	var b strings.Builder
	fmt.Fprintf(&b, "page %d/%d · %d products · %d per page", st.Applied.Page, pages, st.Total, st.Applied.PageSize)
	if !st.PrevDisabled() {
		b.WriteString(" · [prev]")
	}
	if !st.NextDisabled() {
		b.WriteString(" · [next]")
	}
	return b.String()
}

func header(q Query) string {
	cols := []struct {
		label string
		field SortField
	}{
		{"", ""},
		{"SKU", SortSKU},
		{"TITLE", SortTitle},
		{"PRICE", SortPrice},
		{"MANUFACTURER", SortManufacturer},
		{"VIEWS", SortViews},
		{"ORDER", SortOrder},
		{"STATUS", SortStatus},
	}
	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.label
		if c.field != "" && c.field == q.Sort {
			if q.Direction == Desc {
				labels[i] += " ↓"
			} else {
				labels[i] += " ↑"
			}
		}
	}
	return strings.Join(labels, "\t")
}

func marker(p apicontract.ProductSummary, expanded map[string]bool) string {
	switch {
	case len(p.Variants) == 0:
		return " "
	case expanded[p.ID]:
		return "▾"
	default:
		return "▸"
	}
}

func price(p apicontract.ProductSummary) string {
	if p.PriceAmount == nil {
		return dash
	}
	s := p.PriceAmount.StringFixed(2)
	if p.PriceCurrency != nil {
		s += " " + *p.PriceCurrency
	}
	return s
}

func status(published bool) string {
	if published {
		return "published"
	}
	return "draft"
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return dash
	}
	return *s
}
