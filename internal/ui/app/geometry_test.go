package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCellWidthsSumToTotal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		widths []float64
		want   []int
	}{
		{name: "exact", widths: []float64{20, 35, 45}, want: []int{20, 35, 45}},
		{name: "fractional", widths: []float64{33.3, 33.3, 33.4}, want: []int{33, 34, 33}},
		{name: "negative as zero", widths: []float64{50, -3, 50}, want: []int{50, 0, 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := cellWidths(tc.widths)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaneAt(t *testing.T) {
	t.Parallel()
	cols := []int{10, 20, 30}
	for x, want := range map[int]int{0: 0, 9: 0, 10: 1, 29: 1, 30: 2, 59: 2} {
		got, ok := paneAt(cols, x)
		if !ok || got != want {
			t.Fatalf("paneAt(%d) = %d, %v; want %d", x, got, ok, want)
		}
	}
	if _, ok := paneAt(cols, 60); ok {
		t.Fatalf("column past the last pane matched")
	}
}
