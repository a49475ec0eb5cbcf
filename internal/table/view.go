package table

import (
	"net/url"
	"strconv"
)

// Header is a rendered column heading with its sort-toggle link.
type Header struct {
	Title    string
	Sortable bool
	Active   bool
	Desc     bool
	URL      string
}

// Headers builds the heading row for a list page. Changing the sort resets
// the page back to the first window.
func Headers[T any](basePath string, cols []Column[T], st State) []Header {
	headers := make([]Header, 0, len(cols))
	for _, col := range cols {
		h := Header{Title: col.Title, Sortable: !col.NoSort}
		if h.Sortable {
			next := st
			next.Sort, next.Desc = NextSort(st, col.Key)
			next.Page = 0
			h.URL = encode(basePath, next)
			h.Active = st.Sort == col.Key
			h.Desc = st.Desc
		}
		headers = append(headers, h)
	}
	return headers
}

// SizeLink is one entry of the rows-per-page selector.
type SizeLink struct {
	Size   int
	URL    string
	Active bool
}

// Pager carries everything the pagination footer needs.
type Pager struct {
	Total    int
	From, To int // 1-based bounds of the visible window, 0 when empty
	PrevURL  string
	NextURL  string
	Sizes    []SizeLink
}

// NewPager builds pagination links for a filtered result set. Changing the
// page size restarts at the first page.
func NewPager(basePath string, st State, info Info) Pager {
	st.Page = info.Page
	st.PageSize = info.PageSize

	p := Pager{Total: info.Total}
	if info.Total > 0 {
		p.From = info.Page*info.PageSize + 1
		p.To = p.From + minInt(info.PageSize, info.Total-info.Page*info.PageSize) - 1
	}
	if info.Page > 0 {
		prev := st
		prev.Page = info.Page - 1
		p.PrevURL = encode(basePath, prev)
	}
	if info.Page < info.Pages-1 {
		next := st
		next.Page = info.Page + 1
		p.NextURL = encode(basePath, next)
	}
	for _, size := range PageSizes {
		resized := st
		resized.Page = 0
		resized.PageSize = size
		p.Sizes = append(p.Sizes, SizeLink{
			Size:   size,
			URL:    encode(basePath, resized),
			Active: size == info.PageSize,
		})
	}
	return p
}

func encode(basePath string, st State) string {
	vals := url.Values{}
	if st.Query != "" {
		vals.Set("q", st.Query)
	}
	if st.Sort != "" {
		vals.Set("sort", st.Sort)
		if st.Desc {
			vals.Set("dir", "desc")
		}
	}
	if st.Page > 0 {
		vals.Set("page", strconv.Itoa(st.Page))
	}
	if st.PageSize != DefaultPageSize {
		vals.Set("size", strconv.Itoa(st.PageSize))
	}
	if len(vals) == 0 {
		return basePath
	}
	return basePath + "?" + vals.Encode()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
