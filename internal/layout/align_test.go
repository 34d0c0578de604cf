package layout

import "testing"

func TestPageAlignUp(t *testing.T) {
	cases := []struct {
		in, want uintptr
	}{
		{0, 0},
		{1, PageSize},
		{PageSize - 1, PageSize},
		{PageSize, PageSize},
		{PageSize + 1, 2 * PageSize},
		{3*PageSize + 17, 4 * PageSize},
	}
	for _, c := range cases {
		if got := PageAlignUp(c.in); got != c.want {
			t.Errorf("PageAlignUp(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestPageAlignDown(t *testing.T) {
	cases := []struct {
		in, want uintptr
	}{
		{0, 0},
		{1, 0},
		{PageSize - 1, 0},
		{PageSize, PageSize},
		{2*PageSize - 1, PageSize},
	}
	for _, c := range cases {
		if got := PageAlignDown(c.in); got != c.want {
			t.Errorf("PageAlignDown(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestIsPageAligned(t *testing.T) {
	if !IsPageAligned(0) || !IsPageAligned(PageSize) || !IsPageAligned(7*PageSize) {
		t.Error("expected page-multiple addresses to be aligned")
	}
	if IsPageAligned(1) || IsPageAligned(PageSize+8) {
		t.Error("expected non-multiples to be unaligned")
	}
}
