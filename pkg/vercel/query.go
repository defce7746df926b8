package vercel

import (
	"net/url"
	"strconv"
)

// ListOptions expresses the query parameters shared by list endpoints. Until
// and Since are millisecond epoch timestamps; Until doubles as the pagination
// cursor. Limit bounds the page size (each endpoint has its own default when
// zero).
type ListOptions struct {
	Limit int
	Since *int64
	Until *int64
}

// NewListOptions creates an empty ListOptions.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithLimit sets the page size bound.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// WithSince sets the lower timestamp bound (milliseconds).
func (o *ListOptions) WithSince(since int64) *ListOptions {
	o.Since = &since

	return o
}

// WithUntil sets the timestamp to page backward from (milliseconds).
func (o *ListOptions) WithUntil(until int64) *ListOptions {
	o.Until = &until

	return o
}

// Clone returns a copy so an iterator can advance the cursor without
// mutating the caller's options.
func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return &ListOptions{}
	}

	clone := &ListOptions{Limit: o.Limit}

	if o.Since != nil {
		since := *o.Since
		clone.Since = &since
	}

	if o.Until != nil {
		until := *o.Until
		clone.Until = &until
	}

	return clone
}

// ToValues converts the options to URL query values. Nil receivers are valid
// and produce an empty set.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Since != nil {
		values.Set("since", strconv.FormatInt(*o.Since, 10))
	}

	if o.Until != nil {
		values.Set("until", strconv.FormatInt(*o.Until, 10))
	}

	return values
}
