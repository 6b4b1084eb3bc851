// Package paginate slices a fully derived, sorted result set into fixed-size
// pages. Page numbers are 1-indexed; navigation never leaves the valid range.
package paginate

type Pager[T any] struct {
	items   []T
	size    int
	current int
}

// New builds a pager positioned on page 1. A non-positive size falls back to
// a single page holding everything.
func New[T any](items []T, size int) *Pager[T] {
	if size <= 0 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}
	return &Pager[T]{items: items, size: size, current: 1}
}

// TotalPages is ceil(len/size); zero for an empty set.
func (p *Pager[T]) TotalPages() int {
	return (len(p.items) + p.size - 1) / p.size
}

func (p *Pager[T]) TotalItems() int {
	return len(p.items)
}

func (p *Pager[T]) Current() int {
	return p.current
}

// Page returns the current page's slice. An empty source yields an empty
// slice, never an out-of-range access.
func (p *Pager[T]) Page() []T {
	start := (p.current - 1) * p.size
	if start >= len(p.items) {
		return nil
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// SetPage moves to page n, clamped to [1, TotalPages].
func (p *Pager[T]) SetPage(n int) {
	total := p.TotalPages()
	if n < 1 || total == 0 {
		n = 1
	} else if n > total {
		n = total
	}
	p.current = n
}

// Next advances one page; reports whether the position changed.
func (p *Pager[T]) Next() bool {
	if p.current >= p.TotalPages() {
		return false
	}
	p.current++
	return true
}

// Prev steps back one page; reports whether the position changed.
func (p *Pager[T]) Prev() bool {
	if p.current <= 1 {
		return false
	}
	p.current--
	return true
}

func (p *Pager[T]) HasNext() bool {
	return p.current < p.TotalPages()
}

func (p *Pager[T]) HasPrev() bool {
	return p.current > 1
}
