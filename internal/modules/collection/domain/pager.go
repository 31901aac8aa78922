package domain

// Pager is the page cursor of one view. The page goes back to 1 when the
// identity of the underlying data changes and is re-clamped whenever the
// record count changes.
type Pager struct {
	size     int
	page     int
	total    int
	identity string
	started  bool
}

func NewPager(pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = 20
	}
	return Pager{size: pageSize, page: 1, total: 1}
}

func (p Pager) Page() int       { return p.page }
func (p Pager) Size() int       { return p.size }
func (p Pager) TotalPages() int { return p.total }
func (p Pager) Identity() string {
	return p.identity
}

// Reset returns to page 1 if identity differs from the last one seen. A
// refresh of the same identity keeps the page.
func (p *Pager) Reset(identity string) bool {
	if p.started && identity == p.identity {
		return false
	}
	p.started = true
	p.identity = identity
	p.page = 1
	return true
}

// Sync recomputes the page count for n records and clamps the page.
func (p *Pager) Sync(n int) {
	p.total = TotalPages(n, p.size)
	p.page = ClampPage(p.page, p.total)
}

func (p *Pager) Go(page int) { p.page = ClampPage(page, p.total) }
func (p *Pager) Next()       { p.Go(p.page + 1) }
func (p *Pager) Prev()       { p.Go(p.page - 1) }
func (p *Pager) First()      { p.Go(1) }
func (p *Pager) Last()       { p.Go(p.total) }

func (p Pager) HasNext() bool { return p.page < p.total }
func (p Pager) HasPrev() bool { return p.page > 1 }

// Window is Page applied with the pager's state.
func Window[T any](p Pager, records []T) []T {
	return Page(records, p.page, p.size)
}
