package services

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"travelrecords/internal/domain"
	"travelrecords/internal/utils"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListQuery carries the raw paging/sort query params of a collection listing.
type ListQuery struct {
	Q      string
	Sort   string
	Limit  string
	Offset string
}

// Page is the paginated envelope returned by Client and Airline search.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Count  int    `json:"count"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Sort   string `json:"sort"`
}

// sortKeys maps an allowed sort name to the comparison it uses.
type sortKeys[T any] map[string]func(a, b T) int

func byID[T any](id func(T) domain.ID) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(id(a), id(b)) }
}

func byText[T any](field func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// parsePage clamps limit to [0, MaxLimit] and offset to >= 0.
// Non-integer values are rejected.
func parsePage(limitRaw, offsetRaw string) (domain.Page, error) {
	p := domain.Page{Limit: DefaultLimit}
	if s := strings.TrimSpace(limitRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, pageError("limit", s)
		}
		p.Limit = min(max(n, 0), MaxLimit)
	}
	if s := strings.TrimSpace(offsetRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, pageError("offset", s)
		}
		p.Offset = max(n, 0)
	}
	return p, nil
}

func pageError(field, value string) error {
	return domain.ValidationError{
		Field:   field,
		Msg:     "limit/offset must be integers",
		Details: map[string]any{field: value},
	}
}

func resolveSort[T any](raw string, keys sortKeys[T]) (string, func(a, b T) int, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		key = "id"
	}
	fn, ok := keys[key]
	if !ok {
		allowed := make([]string, 0, len(keys))
		for k := range keys {
			allowed = append(allowed, k)
		}
		slices.Sort(allowed)
		return "", nil, domain.ValidationError{
			Field:   "sort",
			Msg:     "invalid sort key. Allowed: " + strings.Join(allowed, ", "),
			Details: map[string]any{"sort": raw, "allowed": allowed},
		}
	}
	return key, fn, nil
}

// paginate filters rows with keep, stable-sorts by the requested key and
// slices out the requested window. Count is the number of matches.
func paginate[T any](rows []T, q ListQuery, keys sortKeys[T], keep func(T) bool) (Page[T], error) {
	page, err := parsePage(q.Limit, q.Offset)
	if err != nil {
		return Page[T]{}, err
	}
	key, compare, err := resolveSort(q.Sort, keys)
	if err != nil {
		return Page[T]{}, err
	}

	matched := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, compare)

	start, end := page.Window(len(matched))
	return Page[T]{
		Data:   slices.Clip(matched[start:end]),
		Count:  len(matched),
		Limit:  page.Limit,
		Offset: page.Offset,
		Sort:   key,
	}, nil
}

// matchExact is a case-insensitive equality filter; an empty want matches.
func matchExact(want, got string) bool {
	return strings.TrimSpace(want) == "" || utils.EqualFoldTrim(want, got)
}
