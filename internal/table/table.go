// Package table implements the shared list-view engine: one free-text fuzzy
// filter over every column, a single-column sort that cycles ascending,
// descending, unsorted, and page-size-bounded pagination. State lives in URL
// query parameters so list pages stay stateless between requests.
package table

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var PageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 10

// Column projects one cell of a row. Key identifies the column in the sort
// query parameter.
type Column[T any] struct {
	Key    string
	Title  string
	Value  func(T) string
	NoSort bool
}

// State is the decoded query-parameter state of a list view.
type State struct {
	Query    string
	Sort     string // column key, empty means unsorted
	Desc     bool
	Page     int // 0-based
	PageSize int
}

// FromQuery decodes list state, normalizing out-of-range values.
func FromQuery(vals url.Values) State {
	st := State{
		Query:    strings.TrimSpace(vals.Get("q")),
		Sort:     vals.Get("sort"),
		Desc:     vals.Get("dir") == "desc",
		PageSize: DefaultPageSize,
	}
	if p, err := strconv.Atoi(vals.Get("page")); err == nil && p > 0 {
		st.Page = p
	}
	if s, err := strconv.Atoi(vals.Get("size")); err == nil {
		for _, allowed := range PageSizes {
			if s == allowed {
				st.PageSize = s
				break
			}
		}
	}
	return st
}

// Info describes the filtered result set independent of the row type.
type Info struct {
	Total    int // filtered count, not the unfiltered total
	Page     int // clamped
	PageSize int
	Pages    int
}

type Page[T any] struct {
	Rows []T
	Info
}

// Apply filters, sorts and pages rows. The returned window never exceeds the
// page size, and the page index is clamped against the filtered set.
func Apply[T any](rows []T, cols []Column[T], st State) Page[T] {
	if st.PageSize <= 0 {
		st.PageSize = DefaultPageSize
	}

	filtered := rows
	if st.Query != "" {
		filtered = make([]T, 0, len(rows))
		for _, row := range rows {
			if matches(row, cols, st.Query) {
				filtered = append(filtered, row)
			}
		}
	}

	if col := findColumn(cols, st.Sort); col != nil {
		sorted := make([]T, len(filtered))
		copy(sorted, filtered)
		sort.SliceStable(sorted, func(i, j int) bool {
			a := strings.ToLower(col.Value(sorted[i]))
			b := strings.ToLower(col.Value(sorted[j]))
			if st.Desc {
				return a > b
			}
			return a < b
		})
		filtered = sorted
	}

	info := Info{
		Total:    len(filtered),
		PageSize: st.PageSize,
		Pages:    (len(filtered) + st.PageSize - 1) / st.PageSize,
	}
	if info.Pages > 0 {
		info.Page = st.Page
		if info.Page >= info.Pages {
			info.Page = info.Pages - 1
		}
		if info.Page < 0 {
			info.Page = 0
		}
	}

	start := info.Page * info.PageSize
	end := start + info.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page[T]{Rows: filtered[start:end], Info: info}
}

// matches reports whether any cell of the row ranks against the query. This
// mirrors the list views' per-cell approximate ranking: a row passes as soon
// as one column matches.
func matches[T any](row T, cols []Column[T], query string) bool {
	for i := range cols {
		if cols[i].Value == nil {
			continue
		}
		if fuzzy.RankMatchNormalizedFold(query, cols[i].Value(row)) >= 0 {
			return true
		}
	}
	return false
}

func findColumn[T any](cols []Column[T], key string) *Column[T] {
	if key == "" {
		return nil
	}
	for i := range cols {
		if cols[i].Key == key && !cols[i].NoSort && cols[i].Value != nil {
			return &cols[i]
		}
	}
	return nil
}

// NextSort returns the sort state a header click on key should link to:
// ascending, then descending, then unsorted.
func NextSort(st State, key string) (string, bool) {
	if st.Sort != key {
		return key, false
	}
	if !st.Desc {
		return key, true
	}
	return "", false
}
