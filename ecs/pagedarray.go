package ecs

// pageSize is the number of elements per lazily-allocated page, matching
// the original C++ PagedArray's page/book layout
// (_examples/original_source/SparseSetECS/PagedArray.h).
const pageSize = 4096

// pagedArray is a logical array of length MaxEntities+1 over an element
// type T with a fixed default value. Storage is a slice of page pointers;
// a page is allocated on first write to any slot it covers and filled
// with the default. Reads from unallocated pages return the default
// without allocating. Pages are never freed.
type pagedArray[T any] struct {
	def   T
	pages []*[pageSize]T
}

func newPagedArray[T any](def T) *pagedArray[T] {
	return &pagedArray[T]{def: def}
}

func (p *pagedArray[T]) split(index uint32) (page, offset int) {
	return int(index) / pageSize, int(index) % pageSize
}

// Get returns the value stored at index, or the default if its page was
// never allocated.
func (p *pagedArray[T]) Get(index uint32) T {
	page, offset := p.split(index)
	if page >= len(p.pages) || p.pages[page] == nil {
		return p.def
	}
	return p.pages[page][offset]
}

// Set writes value at index, lazily allocating and default-filling the
// covering page if needed.
func (p *pagedArray[T]) Set(index uint32, value T) {
	page, offset := p.split(index)
	p.ensurePage(page)
	p.pages[page][offset] = value
}

// Ptr returns a pointer into the backing page for index, allocating the
// page if needed. The pointer is invalidated by nothing this array does
// internally (pages are never moved or freed), but callers must not use
// it across further pagedArray allocation that reassigns p.pages itself.
func (p *pagedArray[T]) Ptr(index uint32) *T {
	page, offset := p.split(index)
	p.ensurePage(page)
	return &p.pages[page][offset]
}

func (p *pagedArray[T]) ensurePage(page int) {
	if page >= len(p.pages) {
		grown := make([]*[pageSize]T, page+1)
		copy(grown, p.pages)
		p.pages = grown
	}
	if p.pages[page] == nil {
		newPage := new([pageSize]T)
		for i := range newPage {
			newPage[i] = p.def
		}
		p.pages[page] = newPage
	}
}
