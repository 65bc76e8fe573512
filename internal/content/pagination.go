package content

// PageLink is one element of the pagination control: either a numbered link
// (Active marks the current page) or an ellipsis placeholder.
type PageLink struct {
	Page     int
	Active   bool
	Ellipsis bool
}

// Pagination is the computed display window for the pagination control.
type Pagination struct {
	Current int
	Total   int
	Links   []PageLink
	HasPrev bool
	HasNext bool
}

func (p Pagination) Prev() int { return p.Current - 1 }
func (p Pagination) Next() int { return p.Current + 1 }

// Paginate computes the bounded window of page links around currentPage:
// a window of up to 3 numbered links, plus explicit first/last links with
// ellipsis markers when the window does not reach an edge. A single page
// produces no links at all and the control renders nothing.
func Paginate(currentPage, totalPages int) Pagination {
	p := Pagination{Current: currentPage, Total: totalPages}
	if totalPages <= 1 {
		return p
	}

	p.HasPrev = currentPage > 1
	p.HasNext = currentPage < totalPages

	startPage := max(1, currentPage-1)
	endPage := min(totalPages, startPage+2)
	if endPage-startPage < 2 {
		startPage = max(1, endPage-2)
	}

	if startPage > 1 {
		p.Links = append(p.Links, PageLink{Page: 1})
		if startPage > 2 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
		}
	}

	for page := startPage; page <= endPage; page++ {
		p.Links = append(p.Links, PageLink{Page: page, Active: page == currentPage})
	}

	if endPage < totalPages {
		if endPage < totalPages-1 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
		}
		p.Links = append(p.Links, PageLink{Page: totalPages})
	}

	return p
}
