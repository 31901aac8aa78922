package domain_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lotus/internal/modules/collection/domain"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	t.Parallel()
	cases := map[int]int{0: 1, 1: 1, 20: 1, 21: 2, 25: 2, 40: 2, 41: 3}
	for n, want := range cases {
		if got := domain.TotalPages(n, 20); got != want {
			t.Fatalf("TotalPages(%d, 20) = %d, want %d", n, got, want)
		}
	}
}

func TestPageWindows(t *testing.T) {
	t.Parallel()
	records := seq(25)
	if got := domain.Page(records, 1, 20); len(got) != 20 || got[0] != 0 {
		t.Fatalf("page 1 = %v", got)
	}
	if diff := cmp.Diff([]int{20, 21, 22, 23, 24}, domain.Page(records, 2, 20)); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	if got := domain.Page(records, 3, 20); len(got) != 0 {
		t.Fatalf("page 3 = %v, want empty", got)
	}
	if got := domain.Page(records, 0, 20); len(got) != 0 {
		t.Fatalf("page 0 = %v, want empty", got)
	}
}

func TestPagesPartitionEverySize(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 45; n++ {
		records := seq(n)
		var joined []int
		for p := 1; p <= domain.TotalPages(n, 20); p++ {
			joined = append(joined, domain.Page(records, p, 20)...)
		}
		if n == 0 {
			continue
		}
		if diff := cmp.Diff(records, joined); diff != "" {
			t.Fatalf("n=%d concatenated pages mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()
	if got := domain.ClampPage(5, 2); got != 2 {
		t.Fatalf("ClampPage(5,2) = %d", got)
	}
	if got := domain.ClampPage(0, 2); got != 1 {
		t.Fatalf("ClampPage(0,2) = %d", got)
	}
	if got := domain.ClampPage(3, 0); got != 1 {
		t.Fatalf("ClampPage(3,0) = %d", got)
	}
}

func TestPagerClampsAfterRemovalShrinksPages(t *testing.T) {
	t.Parallel()
	p := domain.NewPager(20)
	p.Reset("gen")
	p.Sync(25)
	p.Next()
	if p.Page() != 2 {
		t.Fatalf("page = %d, want 2", p.Page())
	}
	for n := 24; n >= 20; n-- {
		p.Sync(n)
	}
	if p.Page() != 1 || p.TotalPages() != 1 {
		t.Fatalf("page=%d total=%d, want 1/1", p.Page(), p.TotalPages())
	}
}

func TestPagerResetsOnlyWhenIdentityChanges(t *testing.T) {
	t.Parallel()
	p := domain.NewPager(20)
	if !p.Reset("dopamine") {
		t.Fatalf("first Reset should report a change")
	}
	p.Sync(60)
	p.Last()
	if p.Page() != 3 {
		t.Fatalf("page = %d, want 3", p.Page())
	}
	if p.Reset("dopamine") {
		t.Fatalf("same identity should not reset")
	}
	if p.Page() != 3 {
		t.Fatalf("page = %d after refresh, want 3", p.Page())
	}
	p.Reset("serotonin")
	if p.Page() != 1 {
		t.Fatalf("page = %d after new query, want 1", p.Page())
	}
}

func TestPagerNavigationStaysInRange(t *testing.T) {
	t.Parallel()
	p := domain.NewPager(10)
	p.Sync(15)
	p.Prev()
	if p.Page() != 1 || p.HasPrev() {
		t.Fatalf("prev from first page moved to %d", p.Page())
	}
	p.Next()
	p.Next()
	if p.Page() != 2 || p.HasNext() {
		t.Fatalf("next past last page moved to %d", p.Page())
	}
	if got := domain.Window(p, seq(15)); len(got) != 5 {
		t.Fatalf("window len = %d, want 5", len(got))
	}
	p.First()
	if got := domain.Offset(p.Page(), p.Size()); got != 0 {
		t.Fatalf("offset = %d", got)
	}
}

func TestHugePageNumberIsEmptyNotPanic(t *testing.T) {
	t.Parallel()
	for _, page := range []int{math.MaxInt / 10, math.MaxInt / 20, math.MaxInt} {
		if got := domain.Page([]int{1, 2, 3}, page, 20); got != nil {
			t.Fatalf("Page(..., %d, 20) = %v, want nil", page, got)
		}
		if got := domain.Offset(page, 20); got < 0 {
			t.Fatalf("Offset(%d, 20) overflowed to %d", page, got)
		}
	}
	if got := domain.Offset(3, 20); got != 40 {
		t.Fatalf("Offset(3, 20) = %d, want 40", got)
	}
}
