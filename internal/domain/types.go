package domain

import "strconv"

// ID is the user-supplied identifier of clients and airlines.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Page carries paging params after clamping.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Window returns the slice bounds of the page over n items.
// A zero limit means "everything from offset".
func (p Page) Window(n int) (int, int) {
	start := p.Offset
	if start > n {
		start = n
	}
	end := n
	if p.Limit > 0 && start+p.Limit < n {
		end = start + p.Limit
	}
	return start, end
}
