package mask

import "testing"

type fakeSource struct {
	w, h int
	px   []RGB
}

func (f fakeSource) At(x, y int) RGB { return f.px[y*f.w+x] }

func TestFilterRoundTrip(t *testing.T) {
	src := fakeSource{w: 2, h: 2, px: []RGB{
		{0, 10, 20}, {10, 20, 30},
		{15, 25, 35}, {20, 30, 40},
	}}

	m := Filter(src, RGB{10, 20, 30}, 5, Rect{0, 0, 2, 2})
	if m.Width() != 2 || m.Height() != 2 {
		t.Fatalf("unexpected mask dimensions %dx%d", m.Width(), m.Height())
	}

	want := []byte{0, 255, 255, 0}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := m.Pixel(x, y)
			exp := want[y*2+x]
			if got != exp {
				t.Errorf("pixel(%d,%d) = %d, want %d", x, y, got, exp)
			}

			p := src.At(x, y)
			withinTol := absDiff(p.R, 10) <= 5 && absDiff(p.G, 20) <= 5 && absDiff(p.B, 30) <= 5
			if withinTol != (got == 255) {
				t.Errorf("pixel(%d,%d) tolerance check disagrees with mask value", x, y)
			}
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestRFindRectMaximality(t *testing.T) {
	m := New(3, 2, []byte{
		255, 255, 0,
		255, 255, 0,
	})

	if _, _, ok := m.RFindRect(10, 10); ok {
		t.Fatal("expected no rect for oversized request")
	}
	if _, _, ok := m.RFindRect(3, 2); ok {
		t.Fatal("expected no rect spanning the zero column")
	}

	x, y, ok := m.RFindRect(2, 1)
	if !ok || x != 0 || y != 1 {
		t.Fatalf("got (%d,%d,%v), want (0,1,true)", x, y, ok)
	}

	x, y, ok = m.RFindRect(2, 2)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("got (%d,%d,%v), want (0,0,true)", x, y, ok)
	}
}

func TestRFindRectNoLaterCandidate(t *testing.T) {
	// Two disjoint filled rects; the bottom-right-most one must win.
	m := New(4, 4, []byte{
		255, 255, 0, 0,
		255, 255, 0, 0,
		0, 0, 255, 255,
		0, 0, 255, 255,
	})
	x, y, ok := m.RFindRect(2, 2)
	if !ok || x != 2 || y != 2 {
		t.Fatalf("got (%d,%d,%v), want (2,2,true)", x, y, ok)
	}
}

func TestColumnsUsage(t *testing.T) {
	m := New(3, 2, []byte{
		255, 0, 0,
		0, 0, 255,
	})
	got := m.ColumnsUsage()
	want := []bool{true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("columns_usage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRowsUsage(t *testing.T) {
	m := New(2, 3, []byte{
		255, 0,
		0, 0,
		0, 255,
	})
	got := m.RowsUsage()
	want := []bool{true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rows_usage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRectHull(t *testing.T) {
	m := New(5, 5, []byte{
		0, 0, 0, 0, 0,
		0, 255, 255, 255, 255,
		0, 255, 0, 0, 255,
		0, 255, 255, 0, 255,
		0, 255, 255, 255, 255,
	})

	hull, ok := m.RectHull(Rect{0, 0, 5, 5})
	if !ok || hull != (Rect{1, 1, 5, 5}) {
		t.Fatalf("got %+v, ok=%v", hull, ok)
	}

	hull, ok = m.RectHull(Rect{2, 2, 4, 4})
	if !ok || hull != (Rect{2, 3, 3, 4}) {
		t.Fatalf("got %+v, ok=%v", hull, ok)
	}

	_, ok = m.RectHull(Rect{2, 2, 3, 3})
	if ok {
		t.Fatal("expected no hull in an all-zero sub-region")
	}
}

func TestTemplateMatchErrorExactMatch(t *testing.T) {
	template := New(4, 4, []byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 255, 255,
		0, 0, 255, 255,
	})

	src := New(6, 6, []byte{
		255, 255, 255, 255, 255, 255,
		255, 0, 0, 0, 0, 255,
		255, 0, 0, 0, 0, 255,
		255, 0, 0, 255, 255, 255,
		255, 0, 0, 255, 255, 255,
		255, 255, 255, 255, 255, 255,
	})

	err := src.TemplateMatchError(Rect{1, 1, 5, 5}, template)
	if err != 0 {
		t.Fatalf("expected exact match (error 0), got %v", err)
	}
}

func TestTemplateMatchErrorFullMismatch(t *testing.T) {
	template := New(4, 4, []byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 255, 255,
		0, 0, 255, 255,
	})

	src := New(4, 4, []byte{
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 255, 0, 0,
		255, 255, 0, 0,
	})

	err := src.TemplateMatchError(Rect{0, 0, 4, 4}, template)
	if err != 1 {
		t.Fatalf("expected full mismatch (error 1), got %v", err)
	}
}

// TemplateMatchError(R, M|R) == 0 for any sub-rectangle of M used as its
// own template: property 3 of the spec.
func TestTemplateMatchErrorSelfSimilarity(t *testing.T) {
	m := New(4, 3, []byte{
		0, 255, 0, 255,
		255, 0, 255, 0,
		0, 0, 255, 255,
	})

	sub := Rect{1, 0, 4, 2}
	data := make([]byte, sub.Width()*sub.Height())
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			data[y*sub.Width()+x] = m.Pixel(sub.Left+x, sub.Top+y)
		}
	}
	template := New(sub.Width(), sub.Height(), data)

	if err := m.TemplateMatchError(sub, template); err != 0 {
		t.Fatalf("self-similar template should match exactly, got %v", err)
	}
}
