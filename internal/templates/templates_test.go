package templates

import "testing"

func TestMasksCoverAlphabet(t *testing.T) {
	if len(Masks) != len(Alphabet) {
		t.Fatalf("got %d masks, want %d", len(Masks), len(Alphabet))
	}
	for _, hb := range Alphabet {
		m, ok := Masks[hb]
		if !ok {
			t.Fatalf("missing mask for %s", hb)
		}
		if m.Width() != glyphW || m.Height() != glyphH {
			t.Fatalf("%s: got %dx%d, want %dx%d", hb, m.Width(), m.Height(), glyphW, glyphH)
		}
	}
}

func TestMasksAreMutuallyDistinguishable(t *testing.T) {
	for i, a := range Alphabet {
		for j, b := range Alphabet {
			if i >= j {
				continue
			}
			ma, mb := Masks[a], Masks[b]
			diff := 0
			for y := 0; y < glyphH; y++ {
				for x := 0; x < glyphW; x++ {
					if ma.Pixel(x, y) != mb.Pixel(x, y) {
						diff++
					}
				}
			}
			if diff == 0 {
				t.Fatalf("%s and %s are pixel-identical templates", a, b)
			}
		}
	}
}

func TestHexByteString(t *testing.T) {
	if got := Hex1C.String(); got != "1C" {
		t.Fatalf("got %q, want 1C", got)
	}
	if got := HexFF.String(); got != "FF" {
		t.Fatalf("got %q, want FF", got)
	}
}
